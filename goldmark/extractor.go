// Package goldmark extracts previews from Markdown by walking the
// CommonMark AST built by yuin/goldmark.
package goldmark

import (
	"strings"

	"github.com/fwojciec/linkcard"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Ensure Extractor implements linkcard.Extractor at compile time.
var _ linkcard.Extractor = (*Extractor)(nil)

// maxNesting is the deepest list or blockquote nesting accepted. The block
// parser revisits every open container on each line, so deeper input is
// declined before parsing.
const maxNesting = 32

// Extractor reads a preview from Markdown. Content must contain at least
// one heading, image or link once parsed.
type Extractor struct {
	md goldmark.Markdown
}

// NewExtractor creates a new Extractor accepting CommonMark plus tables and
// strikethrough.
func NewExtractor() *Extractor {
	return &Extractor{
		md: goldmark.New(goldmark.WithExtensions(extension.Table, extension.Strikethrough)),
	}
}

// document holds what a single walk over the AST collects.
type document struct {
	heading    string
	linkLabel  string
	links      []string
	images     []string
	structured bool
}

// Extract implements linkcard.Extractor.
func (e *Extractor) Extract(content string) (*linkcard.Preview, error) {
	if nestingDepth(content) > maxNesting {
		return nil, linkcard.Errorf(linkcard.ENOMATCH, "Markdown nested deeper than %d containers", maxNesting)
	}

	source := []byte(content)
	root := e.md.Parser().Parse(text.NewReader(source))

	doc := collect(root, source)
	if !doc.structured {
		return nil, linkcard.Errorf(linkcard.ENOMATCH, "no heading, image or link in Markdown")
	}

	p := &linkcard.Preview{
		Format: linkcard.FormatMarkdown,
		Title:  doc.heading,
	}
	if p.Title == "" {
		p.Title = doc.linkLabel
	}

	for _, dest := range doc.links {
		if u := linkcard.NormalizeURL(dest, ""); u != "" {
			p.URL = u
			break
		}
	}
	if p.URL == "" {
		p.URL = firstBareLink(content)
	}
	for _, dest := range doc.images {
		if u := linkcard.NormalizeURL(dest, p.URL); u != "" {
			p.Image = u
			break
		}
	}

	var description, plain strings.Builder
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if _, ok := n.(*ast.Heading); !ok {
			writeText(&description, n, source, false)
		}
		writeText(&plain, n, source, true)
	}
	p.Description = linkcard.NormalizeWhitespace(description.String())
	p.PlainText = linkcard.NormalizeWhitespace(plain.String())

	return p, nil
}

// collect walks the tree once, recording the first heading, link label,
// and every link and image destination in document order.
func collect(root ast.Node, source []byte) document {
	var doc document
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := n.(type) {
		case *ast.Heading:
			doc.structured = true
			if doc.heading == "" {
				doc.heading = inlineText(n, source)
			}
		case *ast.Image:
			doc.structured = true
			doc.images = append(doc.images, string(n.Destination))
			return ast.WalkSkipChildren, nil
		case *ast.Link:
			doc.structured = true
			doc.links = append(doc.links, string(n.Destination))
			if doc.linkLabel == "" {
				doc.linkLabel = inlineText(n, source)
			}
		case *ast.AutoLink:
			doc.structured = true
			if n.AutoLinkType == ast.AutoLinkURL {
				doc.links = append(doc.links, string(n.URL(source)))
			}
		}
		return ast.WalkContinue, nil
	})
	return doc
}

// inlineText returns the normalized label text under n.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		writeText(&b, c, source, false)
	}
	return linkcard.NormalizeWhitespace(b.String())
}

// writeText appends the readable text under n. Images are dropped and
// Markdown markers never appear. Links are reduced to their label, or to
// "label target" when flatten is set.
func writeText(b *strings.Builder, n ast.Node, source []byte, flatten bool) {
	switch n := n.(type) {
	case *ast.Text:
		value := n.Segment.Value(source)
		if !n.IsRaw() {
			value = util.ResolveEntityNames(util.ResolveNumericReferences(util.UnescapePunctuations(value)))
		}
		b.Write(value)
		if n.SoftLineBreak() || n.HardLineBreak() {
			b.WriteByte(' ')
		}
		return
	case *ast.String:
		b.Write(n.Value)
		return
	case *ast.Image, *ast.HTMLBlock, *ast.RawHTML:
		return
	case *ast.AutoLink:
		b.Write(n.Label(source))
		return
	case *ast.Link:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			writeText(b, c, source, flatten)
		}
		if flatten {
			b.WriteByte(' ')
			b.Write(n.Destination)
			b.WriteByte(' ')
		}
		return
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			segment := lines.At(i)
			b.Write(segment.Value(source))
			b.WriteByte(' ')
		}
		return
	}

	block := n.Type() == ast.TypeBlock
	if block {
		b.WriteByte(' ')
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		writeText(b, c, source, flatten)
	}
	if block {
		b.WriteByte(' ')
	}
}

// firstBareLink returns the first URL in content that does not look like
// an image.
func firstBareLink(content string) string {
	for _, candidate := range linkcard.FindURLs(content) {
		if u := linkcard.NormalizeURL(candidate, ""); u != "" && !linkcard.LooksLikeImage(u) {
			return u
		}
	}
	return ""
}

// nestingDepth returns an upper bound on the container nesting any line of
// content can open. Every list or blockquote marker at the start of a line
// counts as one level, and every two columns of leading indentation count
// as one more, since a nested list item is indented past its parent's
// marker.
func nestingDepth(content string) int {
	deepest := 0
	for line := range strings.Lines(content) {
		if d := lineDepth(line); d > deepest {
			deepest = d
		}
	}
	return deepest
}

func lineDepth(line string) int {
	markers, columns := 0, 0
	i := 0
	for i < len(line) {
		switch c := line[i]; {
		case c == ' ':
			columns++
			i++
		case c == '\t':
			columns += 4
			i++
		case c == '>':
			markers++
			i++
		case c == '-' || c == '*' || c == '+':
			if !markerEnd(line, i+1) {
				return markers + columns/2
			}
			markers++
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(line) && j-i < 9 && line[j] >= '0' && line[j] <= '9' {
				j++
			}
			if j == len(line) || (line[j] != '.' && line[j] != ')') || !markerEnd(line, j+1) {
				return markers + columns/2
			}
			markers++
			i = j + 1
		default:
			return markers + columns/2
		}
	}
	return markers + columns/2
}

// markerEnd reports whether a list marker ending before position i is
// followed by whitespace or the end of the line.
func markerEnd(line string, i int) bool {
	return i >= len(line) || line[i] == ' ' || line[i] == '\t' || line[i] == '\n' || line[i] == '\r'
}
