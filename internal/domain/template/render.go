package template

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var tokenRegex = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Token wraps a key in placeholder braces.
func Token(key string) string {
	return "{{" + key + "}}"
}

type RenderResult struct {
	Content string
	// Unresolved lists placeholder keys left in Content, in order of first appearance.
	Unresolved []string
}

// Render substitutes every {{KEY}} with its value. Values are inserted verbatim.
// Tokens without a value stay in the output and are reported as unresolved.
func Render(content string, values map[string]string) RenderResult {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, Token(k), values[k])
	}
	rendered := strings.NewReplacer(pairs...).Replace(content)

	var unresolved []string
	seen := make(map[string]bool)
	for _, m := range tokenRegex.FindAllStringSubmatch(rendered, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			unresolved = append(unresolved, m[1])
		}
	}

	return RenderResult{Content: rendered, Unresolved: unresolved}
}

// FormatAmount renders d with thousands separators and two decimals, e.g. 1,234,567.80.
func FormatAmount(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.IsNegative() && !d.Round(2).IsZero() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
