// Package engine wires the extractors and HTML sources into a ready to use
// linkcard.Parser and exposes package-level helpers over a shared default.
package engine

import (
	"log/slog"

	"github.com/fwojciec/linkcard"
	"github.com/fwojciec/linkcard/gjson"
	"github.com/fwojciec/linkcard/goldmark"
	"github.com/fwojciec/linkcard/goquery"
	lcslog "github.com/fwojciec/linkcard/slog"
	"github.com/fwojciec/linkcard/tokenizer"
)

// Strategy selects how HTML fragments are parsed.
type Strategy string

// HTML parsing strategies.
const (
	// StrategyStructural builds a DOM tree with goquery and falls back to
	// the token stream when that fails.
	StrategyStructural Strategy = "structural"

	// StrategyToken reads the token stream and falls back to the DOM tree.
	StrategyToken Strategy = "token"
)

// ParseStrategy returns the Strategy named s.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyStructural, StrategyToken:
		return Strategy(s), nil
	}
	return "", linkcard.Errorf(linkcard.EINVALID, "unknown HTML strategy %q", s)
}

type config struct {
	strategy Strategy
	logger   *slog.Logger
}

// Option configures the Parser built by New.
type Option func(*config)

// WithStrategy sets the HTML parsing strategy.
// Defaults to StrategyStructural; unknown values are ignored.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		if _, err := ParseStrategy(string(s)); err == nil {
			c.strategy = s
		}
	}
}

// WithLogger wraps every extractor and HTML source with debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New creates a Parser running the standard cascade.
func New(opts ...Option) *linkcard.Parser {
	c := &config{strategy: StrategyStructural}
	for _, opt := range opts {
		opt(c)
	}

	var structural, token linkcard.HTMLSource = goquery.NewSource(), tokenizer.NewSource()
	if c.logger != nil {
		structural = lcslog.NewLoggingHTMLSource(structural, string(StrategyStructural), c.logger)
		token = lcslog.NewLoggingHTMLSource(token, string(StrategyToken), c.logger)
	}

	source := &linkcard.FallbackHTMLSource{Primary: structural, Secondary: token}
	if c.strategy == StrategyToken {
		source = &linkcard.FallbackHTMLSource{Primary: token, Secondary: structural}
	}

	e := linkcard.Extractors{
		HTML:      linkcard.NewHTMLExtractor(source),
		JSON:      gjson.NewExtractor(),
		KeyValue:  linkcard.NewKeyValueExtractor(),
		Markdown:  goldmark.NewExtractor(),
		PlainText: linkcard.NewPlainTextExtractor(),
	}
	if c.logger != nil {
		e.HTML = lcslog.NewLoggingExtractor(e.HTML, linkcard.FormatHTML, c.logger)
		e.JSON = lcslog.NewLoggingExtractor(e.JSON, linkcard.FormatJSON, c.logger)
		e.KeyValue = lcslog.NewLoggingExtractor(e.KeyValue, linkcard.FormatKeyValue, c.logger)
		e.Markdown = lcslog.NewLoggingExtractor(e.Markdown, linkcard.FormatMarkdown, c.logger)
		e.PlainText = lcslog.NewLoggingExtractor(e.PlainText, linkcard.FormatText, c.logger)
	}

	return linkcard.NewParser(linkcard.NewClassifier(e))
}

var defaultParser = New()

// ParseContentPreview returns the preview for raw message text, or nil when
// raw is blank or carries no recognizable preview.
func ParseContentPreview(raw string) *linkcard.Preview {
	return defaultParser.Parse(raw)
}

// GetPreviewDisplayText returns the text to display for raw, falling back
// to linkcard.DefaultFallback.
func GetPreviewDisplayText(raw string) string {
	return defaultParser.DisplayText(raw, linkcard.DefaultFallback)
}

// GetPreviewDisplayTextOr is GetPreviewDisplayText with a caller-chosen
// fallback.
func GetPreviewDisplayTextOr(raw, fallback string) string {
	return defaultParser.DisplayText(raw, fallback)
}

// ExtractPreviewImageURL returns an image URL referenced by raw, or an
// empty string.
func ExtractPreviewImageURL(raw string) string {
	return defaultParser.ImageURL(raw)
}
