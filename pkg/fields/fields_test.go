package fields_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-articlegen/pkg/fields"
)

func TestDefaultMapTokens(t *testing.T) {
	want := []string{
		"META_JOURNAL_INFO", "ARTICLE_TITLE", "ARTICLE_TITLE_EN", "META_EDITORIAL",
		"META_DOI", "AUTHOR_LIST", "AFFILIATIONS", "ARTICLE_DATES",
		"ARTICLE_ABSTRACT_ES", "ARTICLE_ABSTRACT_EN", "ARTICLE_KEYWORDS_ES",
		"ARTICLE_KEYWORDS_EN", "ARTICLE_BODY", "ARTICLE_ACKNOWLEDGMENTS",
		"ARTICLE_REFERENCES", "NUMBER",
	}
	m := fields.Default()
	if diff := cmp.Diff(want, m.Tokens()); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("default map invalid: %v", err)
	}

	doi, ok := m.Lookup(fields.TokenDOI)
	if !ok || doi.Format != fields.FormatText || doi.Region != "meta-doi" {
		t.Fatalf("unexpected DOI field %+v", doi)
	}
	if doi.Placeholder() != "{{META_DOI}}" {
		t.Fatalf("unexpected placeholder %q", doi.Placeholder())
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	m := fields.Default()
	m[0].Token = "CHANGED"
	if fields.Default()[0].Token != fields.TokenJournalInfo {
		t.Fatalf("mutating a copy leaked into the default map")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]fields.Map{
		"duplicate": {{Token: "A", Region: "a", Format: fields.FormatHTML}, {Token: "A", Region: "b", Format: fields.FormatHTML}},
		"braces":    {{Token: "{{A}}", Region: "a", Format: fields.FormatHTML}},
		"format":    {{Token: "A", Region: "a", Format: "rtf"}},
		"region":    {{Token: "A", Format: fields.FormatHTML}},
	}
	for name, m := range cases {
		if err := m.Validate(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestCaptureDefaultsMissingRegions(t *testing.T) {
	values := fields.Capture(fields.Default(), fields.MapRegions{
		"article-title": "  <em>Hola</em> mundo  ",
		"meta-doi":      "<b>10.1000/x&lt;1&gt;</b>",
	})

	if got := values[fields.TokenTitle]; got != "<em>Hola</em> mundo" {
		t.Fatalf("title mismatch: %q", got)
	}
	if got := values[fields.TokenDOI]; got != "10.1000/x&lt;1&gt;" {
		t.Fatalf("doi mismatch: %q", got)
	}
	if len(values) != len(fields.Default()) {
		t.Fatalf("expected a value for every field, got %d", len(values))
	}
	if got, ok := values[fields.TokenBody]; !ok || got != "" {
		t.Fatalf("missing region should default to empty, got %q (present=%v)", got, ok)
	}
}

func TestCaptureNilRegions(t *testing.T) {
	values := fields.Capture(fields.Default(), nil)
	for token, value := range values {
		if value != "" {
			t.Fatalf("token %s expected empty, got %q", token, value)
		}
	}
}

func TestCaptureWithSanitizer(t *testing.T) {
	values := fields.Capture(fields.Default(), fields.MapRegions{
		"article-body": `<p class="lead" contenteditable="true" onclick="steal()">Texto<script>alert(1)</script></p>`,
	}, fields.WithSanitizer(fields.SanitizeHTML))

	body := values[fields.TokenBody]
	for _, banned := range []string{"script", "contenteditable", "onclick", "alert"} {
		if strings.Contains(body, banned) {
			t.Fatalf("sanitized body still contains %q: %q", banned, body)
		}
	}
	if !strings.Contains(body, `class="lead"`) || !strings.Contains(body, "Texto") {
		t.Fatalf("sanitizer dropped allowed content: %q", body)
	}
}

func TestTextContent(t *testing.T) {
	cases := map[string]string{
		"plain text":                          "plain text",
		`<a href="x">10.1/abc</a> &amp; more`: "10.1/abc & more",
		"<p>a</p><p>b</p>":                    "ab",
		"":                                    "",
	}
	for in, want := range cases {
		if got := fields.TextContent(in); got != want {
			t.Fatalf("TextContent(%q) = %q, want %q", in, got, want)
		}
	}
}
