package linkcard

import "slices"

// Format identifies which detector produced a preview.
type Format string

// Formats in cascade order.
const (
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatKeyValue Format = "kv"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// Formats returns all formats in the order the Classifier tries them.
func Formats() []Format {
	return []Format{FormatHTML, FormatJSON, FormatKeyValue, FormatMarkdown, FormatText}
}

// Valid reports whether f is one of the known formats.
func (f Format) Valid() bool {
	return slices.Contains(Formats(), f)
}

// Preview is the normalized preview record extracted from raw message text.
// Empty optional fields are absent.
type Preview struct {
	Format      Format `json:"format"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Image       string `json:"image,omitempty"`
	PlainText   string `json:"plainText"`
}

// Validate returns an error if the preview breaks one of its invariants.
func (p *Preview) Validate() error {
	if !p.Format.Valid() {
		return Errorf(EINVALID, "preview format %q unknown", p.Format)
	}
	if !isNormalized(p.Title) {
		return Errorf(EINVALID, "preview title not normalized")
	}
	if !isNormalized(p.Description) {
		return Errorf(EINVALID, "preview description not normalized")
	}
	if !isNormalized(p.PlainText) {
		return Errorf(EINVALID, "preview plain text not normalized")
	}
	if p.URL != "" && NormalizeURL(p.URL, "") != p.URL {
		return Errorf(EINVALID, "preview URL %q is not an absolute http(s) URL", p.URL)
	}
	if p.Image != "" {
		if NormalizeURL(p.Image, "") != p.Image {
			return Errorf(EINVALID, "preview image %q is not an absolute http(s) URL", p.Image)
		}
		if !LooksLikeImage(p.Image) {
			return Errorf(EINVALID, "preview image %q does not look like an image", p.Image)
		}
	}
	return nil
}

// isNormalized reports whether s is already whitespace-normalized.
func isNormalized(s string) bool {
	return NormalizeWhitespace(s) == s
}
