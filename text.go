package linkcard

import (
	"html"
	"regexp"
	"strings"
)

// NormalizeWhitespace collapses every run of whitespace, newlines included,
// into a single space and trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// blockElements are HTML elements whose boundaries separate words in
// visible text.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}

// IsBlockElement reports whether an HTML tag starts a new line of visible text.
func IsBlockElement(tag string) bool {
	return blockElements[strings.ToLower(tag)]
}

// hiddenElements never contribute to visible text.
var hiddenElements = map[string]bool{
	"noscript": true, "script": true, "style": true, "template": true,
	"textarea": true, "title": true,
}

// IsHiddenElement reports whether the content of an HTML tag is excluded
// from visible text.
func IsHiddenElement(tag string) bool {
	return hiddenElements[strings.ToLower(tag)]
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

// StripTags removes anything that looks like a tag, decodes entities and
// normalizes the remaining whitespace. It is the last resort when no HTML
// source could read a fragment.
func StripTags(s string) string {
	return NormalizeWhitespace(html.UnescapeString(tagRe.ReplaceAllString(s, " ")))
}
