package richtext

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/net/html"

	"github.com/goliatone/go-articlegen/pkg/fields"
)

const (
	// LinkClass marks every anchor created by InsertLink.
	LinkClass = "a_doi"
	// CenterClass marks blocks centered by ApplyBlockStyle(Center).
	CenterClass = "text-align"
	// ImageAlt is used for images inserted at a selection.
	ImageAlt = "Imagen insertada (RAE-USFX)"
	// FallbackImageAlt is used for images appended to a region.
	FallbackImageAlt = "Imagen insertada"
	fallbackImageStyle = "max-width: 100%; height: auto;"
)

// Editor applies Commands to regions held by a RegionStore.
type Editor struct {
	store RegionStore
}

var _ Commands = (*Editor)(nil)

// New returns an Editor over store.
func New(store RegionStore) *Editor {
	return &Editor{store: store}
}

func (e *Editor) load(sel Selection) (string, error) {
	if sel.Region == "" {
		return "", fmt.Errorf("%w: no region focused", ErrInvalidSelection)
	}
	content, ok := e.store.Region(sel.Region)
	if !ok {
		return "", fmt.Errorf("%w: unknown region %q", ErrInvalidSelection, sel.Region)
	}
	if err := validate(content, sel); err != nil {
		return "", err
	}
	return content, nil
}

// ApplyInlineStyle wraps the selection in the style's element, or unwraps it
// when the selection is already exactly wrapped.
func (e *Editor) ApplyInlineStyle(sel Selection, style InlineStyle) error {
	tag, ok := style.Tag()
	if !ok {
		return fmt.Errorf("richtext: unknown inline style %q", style)
	}
	content, err := e.load(sel)
	if err != nil {
		return err
	}
	if sel.Collapsed() {
		return nil
	}

	open, closing := "<"+tag+">", "</"+tag+">"
	selected := content[sel.Start:sel.End]

	if strings.HasSuffix(content[:sel.Start], open) && strings.HasPrefix(content[sel.End:], closing) {
		return e.store.SetRegion(sel.Region,
			content[:sel.Start-len(open)]+selected+content[sel.End+len(closing):])
	}
	if strings.HasPrefix(selected, open) && strings.HasSuffix(selected, closing) && len(selected) >= len(open)+len(closing) {
		inner := selected[len(open) : len(selected)-len(closing)]
		if balanced(inner) {
			return e.store.SetRegion(sel.Region, content[:sel.Start]+inner+content[sel.End:])
		}
	}

	if !balanced(selected) {
		return fmt.Errorf("%w: selection crosses element boundaries", ErrInvalidSelection)
	}
	return e.store.SetRegion(sel.Region, content[:sel.Start]+open+selected+closing+content[sel.End:])
}

// ApplyBlockStyle reformats the top-level block holding the selection start.
// Center toggles the text-align class and inline style; the other styles
// rename the block, keeping its attributes.
func (e *Editor) ApplyBlockStyle(sel Selection, style BlockStyle) error {
	if !style.valid() {
		return fmt.Errorf("richtext: unknown block style %q", style)
	}
	content, err := e.load(sel)
	if err != nil {
		return err
	}

	target, err := blockAt(content, sel.Start)
	if err != nil {
		return err
	}

	var replacement string
	if style == Center {
		replacement = toggleCenter(content, target)
	} else {
		replacement, err = renameBlock(content, target, string(style))
		if err != nil {
			return err
		}
	}
	return e.store.SetRegion(sel.Region, content[:target.start]+replacement+content[target.end:])
}

// InsertLink wraps the selection in an anchor pointing at url.
func (e *Editor) InsertLink(sel Selection, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrEmptyURL
	}
	content, err := e.load(sel)
	if err != nil {
		return err
	}

	selected := content[sel.Start:sel.End]
	if strings.TrimSpace(fields.TextContent(selected)) == "" {
		return ErrEmptySelection
	}
	if !balanced(selected) {
		return fmt.Errorf("%w: selection crosses element boundaries", ErrInvalidSelection)
	}

	return e.store.SetRegion(sel.Region, content[:sel.Start]+LinkTag(url)+selected+"</a>"+content[sel.End:])
}

// LinkTag renders the opening anchor for url. DOI and web links open in a
// new tab.
func LinkTag(url string) string {
	tok := html.Token{
		Type: html.StartTagToken,
		Data: "a",
		Attr: []html.Attribute{
			{Key: "href", Val: url},
			{Key: "class", Val: LinkClass},
		},
	}
	if strings.Contains(url, "doi.org") || strings.Contains(url, "http") {
		tok.Attr = append(tok.Attr,
			html.Attribute{Key: "target", Val: "_blank"},
			html.Attribute{Key: "rel", Val: "noopener noreferrer"},
		)
	}
	return tok.String()
}

// InsertImage embeds img as a data URL. With a focused region the image goes
// at the selection start; otherwise it is appended to img.Target (the
// article body by default) followed by an empty paragraph.
func (e *Editor) InsertImage(sel Selection, img Image) error {
	src, err := DataURL(img.Data)
	if err != nil {
		return err
	}

	if sel.Region != "" {
		content, err := e.load(sel)
		if err != nil {
			return err
		}
		tag := imageTag(src, ImageAlt, "")
		return e.store.SetRegion(sel.Region, content[:sel.Start]+tag+content[sel.Start:])
	}

	target := img.Target
	if target == "" {
		target = fields.RegionBody
	}
	content, ok := e.store.Region(target)
	if !ok {
		return fmt.Errorf("%w: unknown region %q", ErrInvalidSelection, target)
	}
	return e.store.SetRegion(target, content+imageTag(src, FallbackImageAlt, fallbackImageStyle)+"<p></p>")
}

// DataURL sniffs data and encodes it as a base64 data URL. Anything that is
// not an image yields ErrNotImage.
func DataURL(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNotImage
	}
	mime, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	mime = strings.TrimSpace(mime)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func imageTag(src, alt, style string) string {
	tok := html.Token{
		Type: html.StartTagToken,
		Data: "img",
		Attr: []html.Attribute{{Key: "src", Val: src}},
	}
	if style != "" {
		tok.Attr = append(tok.Attr, html.Attribute{Key: "style", Val: style})
	}
	tok.Attr = append(tok.Attr, html.Attribute{Key: "alt", Val: alt})
	return tok.String()
}

// ToggleList turns the enclosing block into a bulleted list, or a list back
// into paragraphs.
func (e *Editor) ToggleList(sel Selection) error {
	content, err := e.load(sel)
	if err != nil {
		return err
	}
	target, err := blockAt(content, sel.Start)
	if err != nil {
		return err
	}

	var replacement string
	switch {
	case target.tag == "ul" || target.tag == "ol":
		inner := target.inner(content)
		var b strings.Builder
		for _, item := range scanBlocks(inner) {
			text := item.inner(inner)
			if item.tag != "li" && strings.TrimSpace(text) == "" {
				continue
			}
			b.WriteString("<p>" + text + "</p>")
		}
		replacement = b.String()
	case target.tag == "" || textBlocks[target.tag]:
		replacement = "<ul><li>" + target.inner(content) + "</li></ul>"
	default:
		return fmt.Errorf("%w: cannot list <%s>", ErrInvalidSelection, target.tag)
	}
	return e.store.SetRegion(sel.Region, content[:target.start]+replacement+content[target.end:])
}

func blockAt(content string, pos int) (span, error) {
	spans := scanBlocks(content)
	if len(spans) == 0 {
		return span{}, nil
	}
	target, ok := enclosing(spans, pos)
	if !ok {
		return span{}, fmt.Errorf("%w: no block at offset %d", ErrInvalidSelection, pos)
	}
	return target, nil
}

func renameBlock(content string, target span, tag string) (string, error) {
	if target.tag == "" {
		return "<" + tag + ">" + target.inner(content) + "</" + tag + ">", nil
	}
	if !textBlocks[target.tag] {
		return "", fmt.Errorf("%w: cannot reformat <%s>", ErrInvalidSelection, target.tag)
	}
	tok, ok := startToken(target.openTag(content))
	if !ok {
		return "", fmt.Errorf("%w: malformed <%s>", ErrInvalidSelection, target.tag)
	}
	tok.Data = tag
	return tok.String() + target.inner(content) + "</" + tag + ">", nil
}

func toggleCenter(content string, target span) string {
	if target.tag == "" {
		return `<p class="` + CenterClass + `" style="text-align: center">` + target.inner(content) + `</p>`
	}
	tok, ok := startToken(target.openTag(content))
	if !ok {
		return content[target.start:target.end]
	}

	classValue, _ := attr(tok, "class")
	styleValue, _ := attr(tok, "style")
	classes := strings.Fields(classValue)
	decls := withoutTextAlign(styleValue)

	centered := false
	kept := classes[:0]
	for _, c := range classes {
		if c == CenterClass {
			centered = true
			continue
		}
		kept = append(kept, c)
	}
	if !centered {
		kept = append(kept, CenterClass)
		decls = append(decls, "text-align: center")
	}

	if len(kept) == 0 {
		dropAttr(&tok, "class")
	} else {
		setAttr(&tok, "class", strings.Join(kept, " "))
	}
	if len(decls) == 0 {
		dropAttr(&tok, "style")
	} else {
		setAttr(&tok, "style", strings.Join(decls, "; "))
	}
	return tok.String() + content[target.innerStart:target.end]
}

func withoutTextAlign(style string) []string {
	var decls []string
	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		prop, _, _ := strings.Cut(decl, ":")
		if strings.EqualFold(strings.TrimSpace(prop), "text-align") {
			continue
		}
		decls = append(decls, decl)
	}
	return decls
}
