package linkcard

import "strings"

// Stage is one step of the format cascade.
type Stage struct {
	Format Format

	// Match reports whether the stage applies. A nil Match leaves the
	// decision to the Extractor.
	Match func(content string) bool

	Extractor Extractor

	// Terminal stops the cascade once Match succeeds, whatever the
	// Extractor returns.
	Terminal bool
}

// Extractors holds one Extractor per format.
type Extractors struct {
	HTML      Extractor
	JSON      Extractor
	KeyValue  Extractor
	Markdown  Extractor
	PlainText Extractor
}

// Classifier runs format detectors in a fixed order and returns the first
// preview an extractor accepts.
type Classifier struct {
	stages []Stage
}

// NewClassifier creates a Classifier with the standard cascade:
// HTML, JSON, key-value, Markdown, then plain text. Nil extractors are skipped.
func NewClassifier(e Extractors) *Classifier {
	return NewClassifierWithStages([]Stage{
		{Format: FormatHTML, Match: LooksLikeHTML, Extractor: e.HTML, Terminal: true},
		{Format: FormatJSON, Match: LooksLikeJSON, Extractor: e.JSON},
		{Format: FormatKeyValue, Extractor: e.KeyValue},
		{Format: FormatMarkdown, Match: LooksLikeMarkdown, Extractor: e.Markdown},
		{Format: FormatText, Extractor: e.PlainText},
	})
}

// NewClassifierWithStages creates a Classifier running stages in order.
func NewClassifierWithStages(stages []Stage) *Classifier {
	s := make([]Stage, 0, len(stages))
	for _, stage := range stages {
		if stage.Extractor != nil {
			s = append(s, stage)
		}
	}
	return &Classifier{stages: s}
}

// Formats returns the formats of the configured stages in cascade order.
func (c *Classifier) Formats() []Format {
	formats := make([]Format, 0, len(c.stages))
	for _, stage := range c.stages {
		formats = append(formats, stage.Format)
	}
	return formats
}

// Classify returns the preview produced by the first matching stage, or
// nil when no stage accepts the content. Extractor errors never escape;
// they only move the cascade on.
func (c *Classifier) Classify(raw string) *Preview {
	content := strings.TrimSpace(raw)
	if content == "" {
		return nil
	}

	for _, stage := range c.stages {
		if stage.Match != nil && !stage.Match(content) {
			continue
		}

		p, err := extract(stage.Extractor, content)
		if err == nil && p != nil {
			p.Format = stage.Format
			return p
		}
		if stage.Terminal {
			return nil
		}
	}

	return nil
}

// extract calls the extractor, converting a panic on hostile input into
// an EINTERNAL error so that classification stays total.
func extract(e Extractor, content string) (p *Preview, err error) {
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, Errorf(EINTERNAL, "extractor panic: %v", r)
		}
	}()
	return e.Extract(content)
}
