package linkcard

import "regexp"

var (
	mdHeadingRe = regexp.MustCompile(`(?m)^ {0,3}#{1,6}[ \t]+\S`)
	mdImageRe   = regexp.MustCompile(`!\[[^\]\n]*\]\(\s*([^)\s]+)[^)\n]*\)`)
	mdLinkRe    = regexp.MustCompile(`\[[^\]\n]+\]\(\s*[^)\s]+[^)\n]*\)`)
)

// LooksLikeMarkdown reports whether content carries a structural Markdown
// signal: an ATX heading line, an image token or a link token.
func LooksLikeMarkdown(content string) bool {
	return mdHeadingRe.MatchString(content) ||
		mdImageRe.MatchString(content) ||
		mdLinkRe.MatchString(content)
}

// markdownImageTargets returns the targets of ![alt](target) tokens in order.
func markdownImageTargets(content string) []string {
	matches := mdImageRe.FindAllStringSubmatch(content, -1)
	targets := make([]string, 0, len(matches))
	for _, m := range matches {
		targets = append(targets, m[1])
	}
	return targets
}
