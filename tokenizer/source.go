// Package tokenizer reads HTML fragments from a single pass over the
// golang.org/x/net/html token stream, without building a tree.
package tokenizer

import (
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/linkcard"
	"golang.org/x/net/html"
)

// Ensure Source implements linkcard.HTMLSource at compile time.
var _ linkcard.HTMLSource = (*Source)(nil)

// Source reads HTML fragments from the token stream. It allocates far less
// than a DOM parser but does not repair markup beyond the implied closing
// of paragraphs and headings.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// capture accumulates the text of one element until it closes.
type capture struct {
	tag    string
	active bool
	buf    strings.Builder
}

func (c *capture) start(tag string) {
	c.tag = tag
	c.active = true
	c.buf.Reset()
}

// finish closes the capture and returns its normalized text.
func (c *capture) finish() string {
	c.active = false
	return linkcard.NormalizeWhitespace(c.buf.String())
}

// Read implements linkcard.HTMLSource.
func (s *Source) Read(fragment string) (*linkcard.HTMLFacts, error) {
	z := html.NewTokenizer(strings.NewReader(fragment))
	facts := &linkcard.HTMLFacts{}

	var (
		text      strings.Builder
		title     strings.Builder
		hidden    []string
		heading   capture
		paragraph capture
	)

	endParagraph := func() {
		if paragraph.active {
			if t := paragraph.finish(); facts.Paragraph == "" {
				facts.Paragraph = t
			}
		}
	}
	endHeading := func() {
		if heading.active {
			if t := heading.finish(); facts.Heading == "" {
				facts.Heading = t
			}
		}
	}
	writeText := func(t string) {
		text.WriteString(t)
		if heading.active {
			heading.buf.WriteString(t)
		}
		if paragraph.active {
			paragraph.buf.WriteString(t)
		}
	}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, linkcard.Errorf(linkcard.EINVALID, "failed to tokenize HTML: %v", err)
			}
			endHeading()
			endParagraph()
			if facts.Title == "" {
				facts.Title = linkcard.NormalizeWhitespace(title.String())
			}
			facts.Text = linkcard.NormalizeWhitespace(text.String())
			return facts, nil

		case html.TextToken:
			if len(hidden) == 0 {
				// The tree builder drops NUL characters from body text.
				writeText(strings.ReplaceAll(string(z.Text()), "\x00", ""))
			} else if hidden[len(hidden)-1] == "title" && facts.Title == "" {
				title.Write(z.Text())
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			var attrs map[string]string
			if hasAttr {
				attrs = readAttrs(z)
			}

			switch tag {
			case "meta":
				if content, ok := attrs["content"]; ok {
					if property, ok := attrs["property"]; ok {
						facts.AddMeta(property, content)
					}
					if key, ok := attrs["name"]; ok {
						facts.AddMeta(key, content)
					}
				}
				continue
			case "a":
				if facts.Link == "" {
					facts.Link = strings.TrimSpace(attrs["href"])
				}
			case "img":
				if facts.Image == "" {
					facts.Image = strings.TrimSpace(attrs["src"])
				}
			}

			if linkcard.IsHiddenElement(tag) {
				if tt == html.StartTagToken {
					hidden = append(hidden, tag)
				}
				continue
			}
			if len(hidden) > 0 {
				continue
			}

			if linkcard.IsBlockElement(tag) {
				// Block starts imply the end of an open paragraph, and a new
				// heading implies the end of the previous one.
				if tag != "br" {
					endParagraph()
				}
				if isHeading(tag) {
					endHeading()
				}
				writeText(" ")
			}
			if tt == html.SelfClosingTagToken {
				continue
			}
			switch {
			case tag == "p" && facts.Paragraph == "":
				paragraph.start(tag)
			case isCapturedHeading(tag) && facts.Heading == "":
				heading.start(tag)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)

			if n := len(hidden); n > 0 {
				if hidden[n-1] == tag {
					hidden = hidden[:n-1]
				}
				if tag == "title" && facts.Title == "" {
					facts.Title = linkcard.NormalizeWhitespace(title.String())
					title.Reset()
				}
				continue
			}

			if linkcard.IsBlockElement(tag) {
				writeText(" ")
			}
			if paragraph.active && tag == paragraph.tag {
				endParagraph()
			}
			if heading.active && tag == heading.tag {
				endHeading()
			}
		}
	}
}

// readAttrs returns the attributes of the current tag. The first
// occurrence of a repeated attribute wins, as in the HTML5 parser.
func readAttrs(z *html.Tokenizer) map[string]string {
	attrs := make(map[string]string)
	for {
		key, val, more := z.TagAttr()
		if _, ok := attrs[string(key)]; !ok {
			attrs[string(key)] = string(val)
		}
		if !more {
			return attrs
		}
	}
}

func isHeading(tag string) bool {
	return len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6'
}

func isCapturedHeading(tag string) bool {
	return tag == "h1" || tag == "h2" || tag == "h3"
}
