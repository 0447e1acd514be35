package linkcard

import "strings"

// DefaultFallback is the display text used when nothing better exists.
const DefaultFallback = "..."

// Parser is the public face of the engine. It classifies raw message text
// and enforces the preview invariants on every result.
//
// A Parser holds no mutable state and is safe for concurrent use.
type Parser struct {
	classifier *Classifier
}

// NewParser creates a new Parser classifying with c.
func NewParser(c *Classifier) *Parser {
	return &Parser{classifier: c}
}

// Formats returns the formats Parse can produce, in the order they are
// tried.
func (p *Parser) Formats() []Format {
	return p.classifier.Formats()
}

// Parse returns the preview for raw, or nil when raw is empty or matches
// no format.
func (p *Parser) Parse(raw string) *Preview {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	preview := p.classifier.Classify(raw)
	if preview == nil {
		return nil
	}
	return finalize(preview)
}

// DisplayText returns the best single string to show for raw: the
// preview's description, plain text or title, else the normalized raw
// text, else fallback.
func (p *Parser) DisplayText(raw, fallback string) string {
	if preview := p.Parse(raw); preview != nil {
		return firstNonEmpty(preview.Description, preview.PlainText, preview.Title, fallback)
	}
	if text := NormalizeWhitespace(raw); text != "" {
		return text
	}
	return fallback
}

// ImageURL returns an image URL referenced by raw, or an empty string.
// The preview image is preferred. Otherwise raw is rescanned regardless of
// format for a Markdown image, an HTML <img src>, then any bare URL that
// looks like an image, so plain messages carrying only a photo link still
// yield one.
func (p *Parser) ImageURL(raw string) string {
	if preview := p.Parse(raw); preview != nil && preview.Image != "" {
		return preview.Image
	}

	for _, target := range markdownImageTargets(raw) {
		if u := NormalizeURL(target, ""); u != "" {
			return u
		}
	}
	for _, src := range htmlImageSources(raw) {
		if u := NormalizeURL(src, ""); u != "" {
			return u
		}
	}
	_, image := firstLinkAndImage(raw)
	return image
}

// finalize normalizes text fields and drops URL fields that fail validation.
func finalize(p *Preview) *Preview {
	p.Title = NormalizeWhitespace(p.Title)
	p.Description = NormalizeWhitespace(p.Description)
	p.PlainText = NormalizeWhitespace(p.PlainText)
	p.URL = NormalizeURL(p.URL, "")
	p.Image = NormalizeURL(p.Image, p.URL)
	if p.Image != "" && !LooksLikeImage(p.Image) {
		p.Image = ""
	}
	return p
}
