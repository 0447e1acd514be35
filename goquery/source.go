// Package goquery reads HTML fragments through a goquery DOM.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkcard"
	"golang.org/x/net/html"
)

// Ensure Source implements linkcard.HTMLSource at compile time.
var _ linkcard.HTMLSource = (*Source)(nil)

// Source reads HTML fragments by building a full DOM tree. The HTML5
// parser repairs malformed markup the same way a browser would, which makes
// this the most faithful but also the most allocation-heavy source.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Read parses fragment and collects meta tags, document fallbacks and
// visible text.
func (s *Source) Read(fragment string) (*linkcard.HTMLFacts, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, linkcard.Errorf(linkcard.EINVALID, "failed to parse HTML: %v", err)
	}

	facts := &linkcard.HTMLFacts{}

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		content, exists := sel.Attr("content")
		if !exists {
			return
		}
		if property, ok := sel.Attr("property"); ok {
			facts.AddMeta(property, content)
		}
		if name, ok := sel.Attr("name"); ok {
			facts.AddMeta(name, content)
		}
	})

	facts.Title = linkcard.NormalizeWhitespace(doc.Find("title").First().Text())
	facts.Heading = firstText(doc, "h1, h2, h3")
	facts.Paragraph = firstText(doc, "p")
	facts.Link = firstAttr(doc, "a[href]", "href")
	facts.Image = firstAttr(doc, "img[src]", "src")

	var b strings.Builder
	for _, n := range doc.Find("body").Nodes {
		writeVisibleText(&b, n)
	}
	facts.Text = linkcard.NormalizeWhitespace(b.String())

	return facts, nil
}

// firstText returns the visible text of the first element matching selector
// whose text is not blank.
func firstText(doc *goquery.Document, selector string) string {
	var text string
	doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var b strings.Builder
		for _, n := range sel.Nodes {
			writeVisibleText(&b, n)
		}
		text = linkcard.NormalizeWhitespace(b.String())
		return text == ""
	})
	return text
}

// firstAttr returns the first non-blank attr value among elements matching
// selector.
func firstAttr(doc *goquery.Document, selector, attr string) string {
	var value string
	doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		value = strings.TrimSpace(sel.AttrOr(attr, ""))
		return value == ""
	})
	return value
}

// writeVisibleText appends the text under n, skipping hidden elements and
// separating block elements with spaces.
func writeVisibleText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if linkcard.IsHiddenElement(n.Data) {
			return
		}
	case html.CommentNode, html.DoctypeNode:
		return
	}

	block := n.Type == html.ElementNode && linkcard.IsBlockElement(n.Data)
	if block {
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeVisibleText(b, c)
	}
	if block {
		b.WriteByte(' ')
	}
}
