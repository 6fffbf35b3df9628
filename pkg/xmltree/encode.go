package xmltree

import (
	"encoding/xml"
	"io"
	"strings"
)

// Encode writes the element and its subtree as compact XML text. Empty
// elements are written self-closing.
func (e *Element) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, "<"+e.Tag); err != nil {
		return err
	}
	for _, a := range e.Attrs {
		if _, err := io.WriteString(w, " "+a.Name+`="`); err != nil {
			return err
		}
		if err := xml.EscapeText(w, []byte(a.Value)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `"`); err != nil {
			return err
		}
	}

	if e.Text == "" && len(e.Children) == 0 {
		_, err := io.WriteString(w, "/>")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if e.Text != "" {
		if err := xml.EscapeText(w, []byte(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := c.Encode(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+e.Tag+">")
	return err
}

// String returns the element and its subtree as compact XML text.
func (e *Element) String() string {
	var b strings.Builder
	// strings.Builder writes cannot fail.
	_ = e.Encode(&b)
	return b.String()
}
