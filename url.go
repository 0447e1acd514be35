package linkcard

import (
	"net/url"
	"regexp"
	"strings"
)

// bareURLRe matches http(s) URLs embedded in prose. The character class is
// restricted to ASCII URL characters so that CJK punctuation, quotes and
// angle brackets end a match.
var bareURLRe = regexp.MustCompile(`(?i)https?://[a-z0-9\-._~:/?#@!$&()*+,;=%]+`)

// FindURLs returns the http(s) URL-looking substrings of text in order of
// appearance. Results are raw candidates; pass them through NormalizeURL.
func FindURLs(text string) []string {
	return bareURLRe.FindAllString(text, -1)
}

// NormalizeURL resolves candidate into an absolute http or https URL.
// Trailing punctuation picked up from surrounding prose is trimmed, and
// relative references are resolved against base when base is set.
// It returns an empty string when the candidate cannot be accepted.
func NormalizeURL(candidate, base string) string {
	s := trimURLPunctuation(strings.TrimPrefix(strings.TrimSpace(candidate), "<"))
	if s == "" {
		return ""
	}

	ref, err := url.Parse(s)
	if err != nil {
		return ""
	}

	if base != "" && !ref.IsAbs() {
		b, err := url.Parse(base)
		if err != nil || !isHTTP(b) {
			return ""
		}
		ref = b.ResolveReference(ref)
	}

	if !isHTTP(ref) {
		return ""
	}
	return ref.String()
}

// isHTTP reports whether u is an absolute http(s) URL with a host.
func isHTTP(u *url.URL) bool {
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != "" && u.Opaque == ""
}

// trimURLPunctuation strips characters that commonly trail a URL in prose.
// A closing parenthesis is only stripped while it is unbalanced.
func trimURLPunctuation(s string) string {
	open, closed := strings.Count(s, "("), strings.Count(s, ")")
	for s != "" {
		last := s[len(s)-1]
		switch last {
		case '.', ',', ';', '!', '?', '>':
			s = s[:len(s)-1]
			continue
		case ')':
			if open < closed {
				s = s[:len(s)-1]
				closed--
				continue
			}
		}
		break
	}
	return s
}

// firstLinkAndImage scans text for bare URLs and returns the first valid
// URL that does not look like an image and the first one that does.
func firstLinkAndImage(text string) (link, image string) {
	for _, candidate := range FindURLs(text) {
		u := NormalizeURL(candidate, "")
		if u == "" {
			continue
		}
		if LooksLikeImage(u) {
			if image == "" {
				image = u
			}
		} else if link == "" {
			link = u
		}
		if link != "" && image != "" {
			break
		}
	}
	return link, image
}
