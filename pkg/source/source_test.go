package source_test

import (
	"testing"

	"github.com/goliatone/go-articlegen/pkg/source"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in       string
		kind     source.Kind
		location string
	}{
		{in: "/templates/template.html", kind: source.KindFS, location: "templates/template.html"},
		{in: "template1.css", kind: source.KindFS, location: "template1.css"},
		{in: "https://example.org/t.css", kind: source.KindURL, location: "https://example.org/t.css"},
		{in: "file:testdata/t.html", kind: source.KindFile, location: "testdata/t.html"},
	}

	for _, tc := range cases {
		src, err := source.Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if src.Kind() != tc.kind {
			t.Fatalf("parse %q: kind want %s, got %s", tc.in, tc.kind, src.Kind())
		}
		if src.Location() != tc.location {
			t.Fatalf("parse %q: location want %q, got %q", tc.in, tc.location, src.Location())
		}
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := source.Parse("   "); err == nil {
		t.Fatalf("expected error for empty location")
	}
	if _, err := source.Parse("file:"); err == nil {
		t.Fatalf("expected error for empty file path")
	}
}
