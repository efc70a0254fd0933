package fields

import (
	"strings"

	"golang.org/x/net/html"
)

// TextContent returns the concatenated text of an HTML fragment with entities
// decoded, the way a DOM textContent read would.
func TextContent(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return fragment
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
