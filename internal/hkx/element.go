package hkx

import (
	"bytes"
	"fmt"
	"strings"
)

// xmlDeclaration matches the tooling the engine's files were written with.
const xmlDeclaration = "<?xml version='1.0' encoding='ascii'?>"

// Attr is a single XML attribute. Order is insertion order.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of a packfile document. A comment node carries its body
// in Text and renders as <!-- Text -->.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Element

	comment bool
}

func newElement(tag string) *Element {
	return &Element{Tag: tag}
}

// Set appends an attribute.
func (e *Element) Set(name, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// Add appends and returns a child element.
func (e *Element) Add(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// Comment appends a comment node. Behavior files carry one per field the
// engine skips during serialization.
func (e *Element) Comment(text string) {
	e.Children = append(e.Children, &Element{Text: text, comment: true})
}

// render writes the element subtree. The caller writes the leading
// indentation; nested children are indented one tab per depth level.
// Childless elements keep their text inline, which preserves the raw
// newline/tab blocks some params embed (the state machine's states list).
func (e *Element) render(buf *bytes.Buffer, depth int) {
	if e.comment {
		buf.WriteString("<!-- ")
		buf.WriteString(e.Text)
		buf.WriteString(" -->")
		return
	}
	buf.WriteByte('<')
	buf.WriteString(e.Tag)
	for _, a := range e.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		buf.WriteString(escape(a.Value, true))
		buf.WriteByte('"')
	}
	buf.WriteByte('>')
	if len(e.Children) == 0 {
		buf.WriteString(escape(e.Text, false))
	} else {
		buf.WriteByte('\n')
		indent := strings.Repeat("\t", depth+1)
		for _, c := range e.Children {
			buf.WriteString(indent)
			c.render(buf, depth+1)
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat("\t", depth))
	}
	buf.WriteString("</")
	buf.WriteString(e.Tag)
	buf.WriteByte('>')
}

// escape applies ascii-document escaping: markup characters always, double
// quotes inside attribute values, and numeric references for anything outside
// ASCII. Newlines and tabs pass through untouched.
func escape(s string, attr bool) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '&':
			b.WriteString("&amp;")
		case r == '<':
			b.WriteString("&lt;")
		case r == '>':
			b.WriteString("&gt;")
		case r == '"' && attr:
			b.WriteString("&quot;")
		case r > 0x7f:
			fmt.Fprintf(&b, "&#%d;", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
