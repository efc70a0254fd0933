// Package fields defines the Field Map: the fixed, ordered association between
// placeholder tokens and the editable regions that feed them.
package fields

import (
	"fmt"
	"strings"
)

// Format selects how a region's content is read.
type Format string

const (
	// FormatHTML keeps the region markup.
	FormatHTML Format = "html"
	// FormatText keeps only the region's text content.
	FormatText Format = "text"
)

// Token names. These strings are part of the template contract and must not
// change.
const (
	TokenJournalInfo     = "META_JOURNAL_INFO"
	TokenTitle           = "ARTICLE_TITLE"
	TokenTitleEN         = "ARTICLE_TITLE_EN"
	TokenEditorial       = "META_EDITORIAL"
	TokenDOI             = "META_DOI"
	TokenAuthorList      = "AUTHOR_LIST"
	TokenAffiliations    = "AFFILIATIONS"
	TokenDates           = "ARTICLE_DATES"
	TokenAbstractES      = "ARTICLE_ABSTRACT_ES"
	TokenAbstractEN      = "ARTICLE_ABSTRACT_EN"
	TokenKeywordsES      = "ARTICLE_KEYWORDS_ES"
	TokenKeywordsEN      = "ARTICLE_KEYWORDS_EN"
	TokenBody            = "ARTICLE_BODY"
	TokenAcknowledgments = "ARTICLE_ACKNOWLEDGMENTS"
	TokenReferences      = "ARTICLE_REFERENCES"
	TokenNumber          = "NUMBER"
)

// Region identifiers used by the built-in skeleton.
const (
	RegionTitle      = "article-title"
	RegionBody       = "article-body"
	RegionReferences = "article-references"
)

// Field binds one placeholder token to a source region.
type Field struct {
	Token  string `json:"token" yaml:"token"`
	Region string `json:"region" yaml:"region"`
	Format Format `json:"format" yaml:"format"`
}

// Placeholder returns the literal token as it appears in templates.
func (f Field) Placeholder() string {
	return Placeholder(f.Token)
}

// Placeholder wraps a token name in double braces.
func Placeholder(token string) string {
	return "{{" + token + "}}"
}

// Map is an ordered list of fields. Order only matters for listings and
// prompts; substitution is order independent.
type Map []Field

var defaultMap = Map{
	{Token: TokenJournalInfo, Region: "meta-journal-info", Format: FormatHTML},
	{Token: TokenTitle, Region: RegionTitle, Format: FormatHTML},
	{Token: TokenTitleEN, Region: "article-title-en", Format: FormatHTML},
	{Token: TokenEditorial, Region: "meta-editorial", Format: FormatHTML},
	{Token: TokenDOI, Region: "meta-doi", Format: FormatText},
	{Token: TokenAuthorList, Region: "author-list", Format: FormatHTML},
	{Token: TokenAffiliations, Region: "affiliations", Format: FormatHTML},
	{Token: TokenDates, Region: "article-dates", Format: FormatHTML},
	{Token: TokenAbstractES, Region: "article-abstract-es", Format: FormatHTML},
	{Token: TokenAbstractEN, Region: "article-abstract-en", Format: FormatHTML},
	{Token: TokenKeywordsES, Region: "article-keywords-es", Format: FormatHTML},
	{Token: TokenKeywordsEN, Region: "article-keywords-en", Format: FormatHTML},
	{Token: TokenBody, Region: RegionBody, Format: FormatHTML},
	{Token: TokenAcknowledgments, Region: "article-acknowledgments", Format: FormatHTML},
	{Token: TokenReferences, Region: RegionReferences, Format: FormatHTML},
	{Token: TokenNumber, Region: "number", Format: FormatHTML},
}

// Default returns a copy of the built-in Field Map.
func Default() Map {
	return append(Map(nil), defaultMap...)
}

// Tokens lists the token names in map order.
func (m Map) Tokens() []string {
	out := make([]string, 0, len(m))
	for _, f := range m {
		out = append(out, f.Token)
	}
	return out
}

// Regions lists the region identifiers in map order.
func (m Map) Regions() []string {
	out := make([]string, 0, len(m))
	for _, f := range m {
		out = append(out, f.Region)
	}
	return out
}

// Lookup finds the field bound to token.
func (m Map) Lookup(token string) (Field, bool) {
	for _, f := range m {
		if f.Token == token {
			return f, true
		}
	}
	return Field{}, false
}

// ByRegion finds the field reading from region.
func (m Map) ByRegion(region string) (Field, bool) {
	for _, f := range m {
		if f.Region == region {
			return f, true
		}
	}
	return Field{}, false
}

// Validate rejects empty or duplicate tokens and unknown formats.
func (m Map) Validate() error {
	seen := make(map[string]struct{}, len(m))
	for idx, f := range m {
		token := strings.TrimSpace(f.Token)
		if token == "" || strings.TrimSpace(f.Region) == "" {
			return fmt.Errorf("fields: entry %d needs a token and a region", idx)
		}
		if strings.ContainsAny(token, "{} ") {
			return fmt.Errorf("fields: token %q must be a bare name", token)
		}
		if _, dup := seen[token]; dup {
			return fmt.Errorf("fields: duplicate token %q", token)
		}
		seen[token] = struct{}{}
		switch f.Format {
		case FormatHTML, FormatText:
		default:
			return fmt.Errorf("fields: token %q has unknown format %q", token, f.Format)
		}
	}
	return nil
}
