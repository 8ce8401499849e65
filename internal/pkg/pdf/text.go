package pdf

import (
	"html"
	"regexp"
	"strings"
)

var (
	blockEndRegex = regexp.MustCompile(`(?i)<br\s*/?>|</(p|div|li|tr|h[1-6])>`)
	tagRegex      = regexp.MustCompile(`<[^>]*>`)
	blankRunRegex = regexp.MustCompile(`\n{3,}`)
)

// htmlToText flattens template HTML into paragraphs of plain text.
func htmlToText(s string) string {
	s = blockEndRegex.ReplaceAllString(s, "\n")
	s = tagRegex.ReplaceAllString(s, "")
	s = html.UnescapeString(s)

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return blankRunRegex.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
}
