package linkcard

import (
	"regexp"
	"strings"
)

// kvLineRe matches "Label: value" lines. Labels start with a letter and are
// at most 24 runes of letters, marks, digits, spaces, underscores or
// hyphens. Both ASCII and full-width colons separate label and value.
var kvLineRe = regexp.MustCompile(`^(\pL[\pL\pM\pN _-]{0,23}?)\s*[:：]\s*(.*)$`)

// Ensure KeyValueExtractor implements Extractor at compile time.
var _ Extractor = (*KeyValueExtractor)(nil)

// KeyValueExtractor extracts previews from loosely structured
// "Label: value" lines, common in scraped and forwarded text.
type KeyValueExtractor struct{}

// NewKeyValueExtractor creates a new KeyValueExtractor.
func NewKeyValueExtractor() *KeyValueExtractor {
	return &KeyValueExtractor{}
}

// Extract returns ENOMATCH unless at least one line carries a recognized label.
func (e *KeyValueExtractor) Extract(content string) (*Preview, error) {
	values := make(map[Field][]string)
	var fallback []string
	recognized := 0

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		label, value, ok := splitLabel(line)
		if !ok {
			fallback = append(fallback, line)
			continue
		}

		field, ok := LookupLabel(label)
		if !ok {
			fallback = append(fallback, line)
			continue
		}

		recognized++
		values[field] = append(values[field], value)
	}

	if recognized == 0 {
		return nil, Errorf(ENOMATCH, "no recognized key-value labels")
	}

	p := &Preview{
		Format:    FormatKeyValue,
		Title:     firstNonEmpty(values[FieldTitle]...),
		PlainText: NormalizeWhitespace(content),
	}

	p.Description = firstNonEmpty(values[FieldDescription]...)
	if p.Description == "" {
		p.Description = NormalizeWhitespace(strings.Join(fallback, " "))
	}

	for _, v := range values[FieldURL] {
		if u := NormalizeURL(v, ""); u != "" {
			p.URL = u
			break
		}
	}
	for _, v := range values[FieldImage] {
		if u := NormalizeURL(v, p.URL); u != "" {
			p.Image = u
			break
		}
	}

	if p.URL == "" || p.Image == "" {
		link, image := firstLinkAndImage(content)
		if p.URL == "" {
			p.URL = link
		}
		if p.Image == "" {
			p.Image = image
		}
	}

	return p, nil
}

// splitLabel splits a "Label: value" line. Values starting with "//" are
// rejected so bare URLs are not read as a label named after their scheme.
func splitLabel(line string) (label, value string, ok bool) {
	m := kvLineRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	label = strings.TrimSpace(m[1])
	value = strings.TrimSpace(m[2])
	if value == "" || strings.HasPrefix(value, "//") {
		return "", "", false
	}
	return label, value, true
}
