package linkcard

import (
	"html"
	"regexp"
	"strings"
)

// Meta keys probed per field, in priority order.
var (
	htmlTitleKeys       = []string{"og:title", "twitter:title"}
	htmlDescriptionKeys = []string{"og:description", "twitter:description", "description"}
	htmlURLKeys         = []string{"og:url", "twitter:url"}
	htmlImageKeys       = []string{"og:image", "og:image:url", "og:image:secure_url", "twitter:image", "twitter:image:src"}
)

var tagOpenRe = regexp.MustCompile(`<[A-Za-z][A-Za-z0-9-]*(?:\s[^<>]*)?/?>`)

// LooksLikeHTML reports whether content contains an HTML tag opening.
func LooksLikeHTML(content string) bool {
	return tagOpenRe.MatchString(content)
}

var imgSrcRe = regexp.MustCompile(`(?i)<img\b[^>]*?\bsrc\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)

// htmlImageSources returns the src attributes of <img> tags in order.
func htmlImageSources(content string) []string {
	matches := imgSrcRe.FindAllStringSubmatch(content, -1)
	sources := make([]string, 0, len(matches))
	for _, m := range matches {
		sources = append(sources, html.UnescapeString(firstNonEmpty(m[1], m[2], m[3])))
	}
	return sources
}

// Ensure HTMLExtractor implements Extractor at compile time.
var _ Extractor = (*HTMLExtractor)(nil)

// HTMLExtractor extracts Open Graph and Twitter card metadata, with
// document fallbacks, from an HTML fragment.
type HTMLExtractor struct {
	Source HTMLSource
}

// NewHTMLExtractor creates a new HTMLExtractor reading through source.
func NewHTMLExtractor(source HTMLSource) *HTMLExtractor {
	return &HTMLExtractor{Source: source}
}

// Extract never returns ENOMATCH: when the source fails, the preview carries
// the tag-stripped fragment as plain text.
func (e *HTMLExtractor) Extract(content string) (*Preview, error) {
	facts, err := e.Source.Read(content)
	if err != nil || facts == nil {
		return &Preview{Format: FormatHTML, PlainText: StripTags(content)}, nil
	}

	return &Preview{
		Format:      FormatHTML,
		Title:       firstNonEmpty(metaValue(facts, htmlTitleKeys), facts.Title, facts.Heading),
		Description: firstNonEmpty(metaValue(facts, htmlDescriptionKeys), facts.Paragraph),
		URL:         firstNonEmpty(metaValue(facts, htmlURLKeys), facts.Link),
		Image:       firstNonEmpty(metaValue(facts, htmlImageKeys), facts.Image),
		PlainText:   NormalizeWhitespace(facts.Text),
	}, nil
}

// metaValue returns the content of the first key present in facts.
func metaValue(facts *HTMLFacts, keys []string) string {
	for _, key := range keys {
		if v := facts.Meta[key]; v != "" {
			return v
		}
	}
	return ""
}

func normalizeMetaKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// Ensure FallbackHTMLSource implements HTMLSource at compile time.
var _ HTMLSource = (*FallbackHTMLSource)(nil)

// FallbackHTMLSource reads with Primary and switches to Secondary when
// Primary is unavailable or reports an error.
type FallbackHTMLSource struct {
	Primary   HTMLSource
	Secondary HTMLSource
}

// Read implements HTMLSource.
func (s *FallbackHTMLSource) Read(fragment string) (*HTMLFacts, error) {
	if s.Primary != nil {
		facts, err := s.Primary.Read(fragment)
		if err == nil && facts != nil {
			return facts, nil
		}
		if s.Secondary == nil {
			return nil, err
		}
	}
	if s.Secondary == nil {
		return nil, Errorf(EINTERNAL, "no HTML source configured")
	}
	return s.Secondary.Read(fragment)
}
