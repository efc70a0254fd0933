package richtext

import (
	"strings"

	"golang.org/x/net/html"
)

var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

var blockTags = map[string]bool{
	"p": true, "div": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "ul": true, "ol": true, "li": true,
	"blockquote": true, "pre": true, "table": true, "figure": true,
	"section": true, "article": true, "header": true, "footer": true,
}

// textBlocks can be renamed by ApplyBlockStyle.
var textBlocks = map[string]bool{
	"p": true, "div": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "blockquote": true, "pre": true,
}

// span is a top-level piece of a region: a block element or a run of inline
// content between blocks.
type span struct {
	start, end           int
	innerStart, innerEnd int
	// tag is empty for inline runs.
	tag string
}

func (s span) inner(content string) string {
	return content[s.innerStart:s.innerEnd]
}

func (s span) openTag(content string) string {
	return content[s.start:s.innerStart]
}

// scanBlocks splits content into top-level spans using byte offsets from the
// tokenizer's raw token text.
func scanBlocks(content string) []span {
	z := html.NewTokenizer(strings.NewReader(content))

	var (
		out   []span
		pos   int
		depth int
		block *span
		run   *span
	)
	flushRun := func() {
		if run != nil {
			run.innerStart, run.innerEnd = run.start, run.end
			out = append(out, *run)
			run = nil
		}
	}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		start := pos
		pos += len(z.Raw())

		if block != nil {
			switch tt {
			case html.StartTagToken:
				name, _ := z.TagName()
				if !voidTags[string(name)] {
					depth++
				}
			case html.EndTagToken:
				depth--
				if depth == 0 {
					block.innerEnd = start
					block.end = pos
					out = append(out, *block)
					block = nil
				}
			}
			continue
		}

		if tt == html.StartTagToken {
			name, _ := z.TagName()
			tag := string(name)
			if blockTags[tag] {
				flushRun()
				block = &span{start: start, innerStart: pos, tag: tag}
				depth = 1
				continue
			}
		}
		if run == nil {
			run = &span{start: start}
		}
		run.end = pos
	}

	if block != nil {
		block.innerEnd = len(content)
		block.end = len(content)
		out = append(out, *block)
	}
	flushRun()
	return out
}

// enclosing returns the span holding pos. A caret at the very end of the
// region belongs to the last span.
func enclosing(spans []span, pos int) (span, bool) {
	for _, s := range spans {
		if pos >= s.start && pos < s.end {
			return s, true
		}
	}
	if n := len(spans); n > 0 && pos == spans[n-1].end {
		return spans[n-1], true
	}
	return span{}, false
}

// balanced reports whether fragment closes every element it opens and opens
// every element it closes.
func balanced(fragment string) bool {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var stack []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			return len(stack) == 0
		case html.StartTagToken:
			name, _ := z.TagName()
			if !voidTags[string(name)] {
				stack = append(stack, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if len(stack) == 0 || stack[len(stack)-1] != string(name) {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// startToken parses a single start tag such as `<p class="x">`.
func startToken(tag string) (html.Token, bool) {
	z := html.NewTokenizer(strings.NewReader(tag))
	if z.Next() != html.StartTagToken {
		return html.Token{}, false
	}
	return z.Token(), true
}

func attr(tok html.Token, key string) (string, bool) {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(tok *html.Token, key, val string) {
	for i, a := range tok.Attr {
		if a.Key == key {
			tok.Attr[i].Val = val
			return
		}
	}
	tok.Attr = append(tok.Attr, html.Attribute{Key: key, Val: val})
}

func dropAttr(tok *html.Token, key string) {
	kept := tok.Attr[:0]
	for _, a := range tok.Attr {
		if a.Key != key {
			kept = append(kept, a)
		}
	}
	tok.Attr = kept
}
