package linkcard

// Ensure PlainTextExtractor implements Extractor at compile time.
var _ Extractor = (*PlainTextExtractor)(nil)

// PlainTextExtractor is the last resort for unstructured text. It only
// accepts text that mentions at least one valid http(s) URL.
type PlainTextExtractor struct{}

// NewPlainTextExtractor creates a new PlainTextExtractor.
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// Extract leaves title and description empty; callers fall back to the
// plain text for display.
func (e *PlainTextExtractor) Extract(content string) (*Preview, error) {
	link, image := firstLinkAndImage(content)
	if link == "" && image == "" {
		return nil, Errorf(ENOMATCH, "no URL in plain text")
	}

	return &Preview{
		Format:    FormatText,
		URL:       link,
		Image:     image,
		PlainText: NormalizeWhitespace(content),
	}, nil
}
