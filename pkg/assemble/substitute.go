package assemble

import (
	"regexp"
	"sort"

	"github.com/goliatone/go-articlegen/pkg/fields"
)

var tokenPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// Substitute replaces every {{TOKEN}} whose name is present in values. The
// scan runs once over text, so values that themselves contain
// placeholder-shaped text are inserted verbatim and never expanded. Tokens
// without a value are left untouched.
func Substitute(text string, values fields.Values) string {
	if len(values) == 0 {
		return text
	}
	return tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := match[2 : len(match)-2]
		if value, ok := values[name]; ok {
			return value
		}
		return match
	})
}

// FindTokens returns the sorted, de-duplicated names from known that still
// appear as placeholders in text.
func FindTokens(text string, known []string) []string {
	if len(known) == 0 {
		return nil
	}
	wanted := make(map[string]struct{}, len(known))
	for _, name := range known {
		wanted[name] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, match := range tokenPattern.FindAllStringSubmatch(text, -1) {
		if _, ok := wanted[match[1]]; ok {
			seen[match[1]] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
