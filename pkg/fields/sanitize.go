package fields

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	articlePolicyOnce sync.Once
	articlePolicy     *bluemonday.Policy
)

// SanitizeHTML strips scripts, event handlers and editing attributes from
// article markup while keeping the formatting the editor toolbar produces.
func SanitizeHTML(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(articleSanitizer().Sanitize(trimmed))
}

func articleSanitizer() *bluemonday.Policy {
	articlePolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(false)
		policy.AllowDataURIImages()
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
		policy.AllowStyles("text-align").OnElements("p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "li")
		policy.AllowStyles("max-width", "height").OnElements("img")

		articlePolicy = policy
	})
	return articlePolicy
}
