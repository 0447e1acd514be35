package linkcard

import "strings"

// LooksLikeJSON reports whether trimmed content is shaped like a JSON
// object or array. It does not validate the document.
func LooksLikeJSON(content string) bool {
	s := strings.TrimSpace(content)
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return (first == '{' && last == '}') || (first == '[' && last == ']')
}
