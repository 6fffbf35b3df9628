// Package xmltree provides the in-memory element tree the conversion engine
// reads and constructs. The tree is namespace-unaware: elements and
// attributes are addressed by local name only.
package xmltree

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a mutable XML tree node. Text holds the character data of the
// element itself; for elements with children the text is written before the
// first child when encoding.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// New returns an element with the given tag and no content.
func New(tag string) *Element {
	return &Element{Tag: tag}
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing an existing value.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Append adds child elements in order.
func (e *Element) Append(children ...*Element) {
	e.Children = append(e.Children, children...)
}

// Find returns the first child element with the given tag, or nil.
func (e *Element) Find(tag string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// FindAll returns all child elements with the given tag in document order.
func (e *Element) FindAll(tag string) []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, c := range e.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}
