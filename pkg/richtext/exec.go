package richtext

import (
	"fmt"
	"strings"
)

// Exec runs a toolbar command by the name its button carries (bold,
// formatBlock, createLink, ...). value holds the block tag or link URL.
func Exec(c Commands, command, value string, sel Selection) error {
	switch strings.ToLower(strings.TrimSpace(command)) {
	case "bold":
		return c.ApplyInlineStyle(sel, Bold)
	case "italic":
		return c.ApplyInlineStyle(sel, Italic)
	case "underline":
		return c.ApplyInlineStyle(sel, Underline)
	case "strikethrough":
		return c.ApplyInlineStyle(sel, Strikethrough)
	case "superscript":
		return c.ApplyInlineStyle(sel, Superscript)
	case "subscript":
		return c.ApplyInlineStyle(sel, Subscript)
	case "formatblock":
		return c.ApplyBlockStyle(sel, BlockStyle(strings.Trim(strings.ToLower(value), "<> ")))
	case "aligncenter":
		return c.ApplyBlockStyle(sel, Center)
	case "createlink":
		return c.InsertLink(sel, value)
	case "insertunorderedlist":
		return c.ToggleList(sel)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}
