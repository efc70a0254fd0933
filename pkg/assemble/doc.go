// Package assemble turns a template skeleton, its stylesheet and the captured
// field values into a complete, standalone HTML document.
//
// Assembly runs in three steps: the skeleton and CSS are wrapped in the
// embedded document template, every known {{TOKEN}} placeholder is replaced
// in a single pass, and, outside edit mode, contenteditable attributes are
// removed from the result.
package assemble
