package linkcard

// Extractor extracts a preview from content of one format.
type Extractor interface {
	// Extract reads trimmed, non-empty content and returns the raw preview
	// candidates it finds. Fields are normalized and validated later by the
	// Parser. Returns ENOMATCH when the content lacks the format's
	// structure and EINVALID when it is malformed.
	Extract(content string) (*Preview, error)
}

// HTMLFacts holds the raw signals an HTMLSource reads from an HTML fragment.
type HTMLFacts struct {
	// Meta maps a lowercased meta property or name to its first non-empty content.
	Meta map[string]string

	// Title is the text of the <title> element.
	Title string

	// Heading is the text of the first non-empty h1, h2 or h3.
	Heading string

	// Paragraph is the text of the first non-empty <p>.
	Paragraph string

	// Link is the href of the first anchor carrying one.
	Link string

	// Image is the src of the first image carrying one.
	Image string

	// Text is the visible text of the fragment.
	Text string
}

// AddMeta records content for a meta property or name.
// The first non-empty value for a key wins.
func (f *HTMLFacts) AddMeta(key, content string) {
	key = normalizeMetaKey(key)
	content = NormalizeWhitespace(content)
	if key == "" || content == "" {
		return
	}
	if f.Meta == nil {
		f.Meta = make(map[string]string)
	}
	if _, ok := f.Meta[key]; !ok {
		f.Meta[key] = content
	}
}

// HTMLSource reads metadata and visible text from an HTML fragment.
// Implementations differ in how they parse (DOM tree or token stream) but
// must report identical facts for well-formed input.
type HTMLSource interface {
	Read(html string) (*HTMLFacts, error)
}
