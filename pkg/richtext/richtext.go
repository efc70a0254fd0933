// Package richtext implements the editor toolbar commands over region HTML.
//
// Regions are plain HTML strings held by a RegionStore. A Selection addresses
// a byte range inside one region; every command validates that the range
// neither splits a tag nor crosses element boundaries before rewriting the
// region.
package richtext

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptySelection is returned when a link is requested without any
	// selected text.
	ErrEmptySelection = errors.New("richtext: selection is empty")
	// ErrInvalidSelection is returned for ranges outside the region, ranges
	// that split markup, or unknown regions.
	ErrInvalidSelection = errors.New("richtext: invalid selection")
	// ErrNotImage is returned when inserted data is not an image.
	ErrNotImage = errors.New("richtext: data is not an image")
	// ErrEmptyURL is returned when a link has no target.
	ErrEmptyURL = errors.New("richtext: link url is empty")
	// ErrUnknownCommand is returned by Exec for unsupported toolbar commands.
	ErrUnknownCommand = errors.New("richtext: unknown command")
)

// InlineStyle names a character-level format.
type InlineStyle string

const (
	Bold          InlineStyle = "bold"
	Italic        InlineStyle = "italic"
	Underline     InlineStyle = "underline"
	Strikethrough InlineStyle = "strikethrough"
	Superscript   InlineStyle = "superscript"
	Subscript     InlineStyle = "subscript"
)

var inlineTags = map[InlineStyle]string{
	Bold:          "b",
	Italic:        "i",
	Underline:     "u",
	Strikethrough: "s",
	Superscript:   "sup",
	Subscript:     "sub",
}

// Tag returns the element used for the style.
func (s InlineStyle) Tag() (string, bool) {
	tag, ok := inlineTags[s]
	return tag, ok
}

// BlockStyle names a paragraph-level format.
type BlockStyle string

const (
	Paragraph BlockStyle = "p"
	Heading1  BlockStyle = "h1"
	Heading2  BlockStyle = "h2"
	Heading3  BlockStyle = "h3"
	// Center toggles centered alignment on the enclosing block.
	Center BlockStyle = "center"
)

func (s BlockStyle) valid() bool {
	switch s {
	case Paragraph, Heading1, Heading2, Heading3, Center:
		return true
	}
	return false
}

// Selection is a byte range [Start, End) inside one region's HTML. An empty
// Region means nothing is focused.
type Selection struct {
	Region string `json:"region"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
}

// Collapsed reports whether the selection is a caret.
func (s Selection) Collapsed() bool {
	return s.Start == s.End
}

// Image is binary image data to embed in a region.
type Image struct {
	Data []byte
	// Target picks the region used when the selection has no region. Empty
	// means the article body.
	Target string
}

// Commands is the rich-text capability the editor exposes to its hosts.
type Commands interface {
	ApplyInlineStyle(sel Selection, style InlineStyle) error
	ApplyBlockStyle(sel Selection, style BlockStyle) error
	InsertLink(sel Selection, url string) error
	InsertImage(sel Selection, img Image) error
	ToggleList(sel Selection) error
}

// RegionStore holds the HTML of editable regions.
type RegionStore interface {
	Region(id string) (string, bool)
	SetRegion(id, html string) error
}

func validate(content string, sel Selection) error {
	if sel.Start < 0 || sel.End < sel.Start || sel.End > len(content) {
		return fmt.Errorf("%w: range [%d,%d) outside region %q of length %d",
			ErrInvalidSelection, sel.Start, sel.End, sel.Region, len(content))
	}
	for _, pos := range []int{sel.Start, sel.End} {
		if pos < len(content) && !utf8.RuneStart(content[pos]) {
			return fmt.Errorf("%w: offset %d splits a character", ErrInvalidSelection, pos)
		}
		if insideTag(content, pos) {
			return fmt.Errorf("%w: offset %d is inside a tag", ErrInvalidSelection, pos)
		}
	}
	return nil
}

func insideTag(s string, pos int) bool {
	head := s[:pos]
	return strings.LastIndexByte(head, '<') > strings.LastIndexByte(head, '>')
}
