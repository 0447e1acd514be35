// Package gjson extracts previews from JSON payloads using tidwall/gjson.
package gjson

import (
	"strings"

	"github.com/fwojciec/linkcard"
	"github.com/tidwall/gjson"
)

// Ensure Extractor implements linkcard.Extractor at compile time.
var _ linkcard.Extractor = (*Extractor)(nil)

// Extractor reads preview fields from a JSON object, or from the first
// element of a JSON array. Keys listed in linkcard.JSONNestedKeys are
// consulted before the top-level object.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract implements linkcard.Extractor.
func (e *Extractor) Extract(content string) (*linkcard.Preview, error) {
	if !gjson.Valid(content) {
		return nil, linkcard.Errorf(linkcard.EINVALID, "malformed JSON")
	}

	root := gjson.Parse(content)
	obj := root
	if root.IsArray() {
		obj = root.Get("0")
	}
	if !obj.IsObject() {
		return nil, linkcard.Errorf(linkcard.ENOMATCH, "JSON value is not an object")
	}

	scopes := make([]gjson.Result, 0, len(linkcard.JSONNestedKeys)+1)
	for _, key := range linkcard.JSONNestedKeys {
		if nested := lookup(obj, key); nested.IsObject() {
			scopes = append(scopes, nested)
		}
	}
	scopes = append(scopes, obj)

	p := &linkcard.Preview{
		Format:      linkcard.FormatJSON,
		Title:       firstString(scopes, linkcard.JSONTitleKeys),
		Description: firstString(scopes, linkcard.JSONDescriptionKeys),
		URL:         linkcard.NormalizeURL(firstString(scopes, linkcard.JSONURLKeys), ""),
	}
	if image := linkcard.NormalizeURL(firstImage(scopes, linkcard.JSONImageKeys), p.URL); linkcard.LooksLikeImage(image) {
		p.Image = image
	}
	if p.Title == "" && p.Description == "" && p.URL == "" && p.Image == "" {
		return nil, linkcard.Errorf(linkcard.ENOMATCH, "no preview fields in JSON")
	}
	p.PlainText = gjson.Get(content, "@ugly").String()

	return p, nil
}

// lookup returns the value stored under key in obj. Keys are compared
// literally, so dots and wildcards carry no path meaning.
func lookup(obj gjson.Result, key string) gjson.Result {
	var found gjson.Result
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			found = v
			return false
		}
		return true
	})
	return found
}

// firstString returns the first non-blank string stored under one of keys,
// trying every key in a scope before moving to the next scope.
func firstString(scopes []gjson.Result, keys []string) string {
	for _, scope := range scopes {
		for _, key := range keys {
			if s := stringValue(lookup(scope, key)); s != "" {
				return s
			}
		}
	}
	return ""
}

// firstImage is firstString for image keys, which also accept an object
// carrying url or src and an array of candidates.
func firstImage(scopes []gjson.Result, keys []string) string {
	for _, scope := range scopes {
		for _, key := range keys {
			if s := imageValue(lookup(scope, key)); s != "" {
				return s
			}
		}
	}
	return ""
}

func imageValue(v gjson.Result) string {
	switch {
	case v.Type == gjson.String:
		return stringValue(v)
	case v.IsObject():
		if s := stringValue(lookup(v, "url")); s != "" {
			return s
		}
		return stringValue(lookup(v, "src"))
	case v.IsArray():
		var s string
		v.ForEach(func(_, item gjson.Result) bool {
			if item.IsArray() {
				return true
			}
			s = imageValue(item)
			return s == ""
		})
		return s
	}
	return ""
}

func stringValue(v gjson.Result) string {
	if v.Type != gjson.String {
		return ""
	}
	return strings.TrimSpace(v.Str)
}
