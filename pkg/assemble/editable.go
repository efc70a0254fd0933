package assemble

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

const editableAttr = "contenteditable"

// StripEditable parses doc and removes every contenteditable attribute,
// whatever its value, so the result cannot be edited in a browser.
func StripEditable(doc string) (string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("assemble: parse document: %w", err)
	}

	removeAttr(root, editableAttr)

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return "", fmt.Errorf("assemble: render document: %w", err)
	}
	return buf.String(), nil
}

func removeAttr(n *html.Node, key string) {
	if n.Type == html.ElementNode && len(n.Attr) > 0 {
		kept := n.Attr[:0]
		for _, attr := range n.Attr {
			if strings.EqualFold(attr.Key, key) {
				continue
			}
			kept = append(kept, attr)
		}
		n.Attr = kept
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		removeAttr(c, key)
	}
}
