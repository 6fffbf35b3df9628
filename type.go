package xmlserdes

import (
	"bytes"
	"fmt"

	serdeserrors "github.com/goserdes/xmlserdes/errors"
	"github.com/goserdes/xmlserdes/pkg/xmltree"
)

// Type is the resolved, immutable descriptor table for one class of
// serializable values: attribute descriptors first, then element
// descriptors, each group in declaration order. Build a Type once per class
// with NewType and reuse it; a Type is safe for concurrent use by any
// number of simultaneous conversions.
type Type struct {
	name       string
	defaultTag string
	attrs      []elementDescriptor
	elems      []elementDescriptor
}

// A *Type is itself a terse specification: using it as a field type
// declares a nested instance of that type.
func (*Type) typeSpec() {}

// NewType resolves an ordered schema of field declarations into a
// descriptor table. Tags must be unique across attributes and elements;
// attribute fields must carry atomic types; malformed terse specifications
// are rejected here rather than at conversion time.
func NewType(name string, fields ...Field) (*Type, error) {
	if name == "" {
		return nil, serdeserrors.New(serdeserrors.ErrConfiguration, "", "type with empty name")
	}

	t := &Type{name: name}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		d, err := resolveField(f)
		if err != nil {
			return nil, fmt.Errorf("resolve type %s: %w", name, err)
		}
		if _, dup := seen[d.tag]; dup {
			return nil, serdeserrors.Newf(serdeserrors.ErrConfiguration, "", "duplicate tag %q in type %s", d.tag, name)
		}
		seen[d.tag] = struct{}{}

		if d.attr {
			t.attrs = append(t.attrs, d)
		} else {
			t.elems = append(t.elems, d)
		}
	}
	return t, nil
}

// MustType resolves a schema and panics on error. Intended for package-level
// type declarations, where a schema mistake should fail at init.
func MustType(name string, fields ...Field) *Type {
	t, err := NewType(name, fields...)
	if err != nil {
		panic(err)
	}
	return t
}

// WithDefaultTag returns a copy of the type carrying a default root tag,
// used by ListOf items and by tag-less Serialize and Deserialize calls.
func (t *Type) WithDefaultTag(tag string) *Type {
	c := *t
	c.defaultTag = tag
	return &c
}

// Name returns the declared type name.
func (t *Type) Name() string { return t.name }

// DefaultTag returns the default root tag, or "" when none is declared.
func (t *Type) DefaultTag() string { return t.defaultTag }

func (t *Type) resolveTag(tag string) (string, error) {
	if tag != "" {
		return tag, nil
	}
	if t.defaultTag != "" {
		return t.defaultTag, nil
	}
	return "", serdeserrors.Newf(serdeserrors.ErrConfiguration, "", "type %s has no default tag", t.name)
}

// Serialize converts a record into a new element with the given tag, or the
// type's default tag when tag is empty. Attributes are set from attribute
// descriptors, children appended in declared element order. Every declared
// field must be present in the record.
func (t *Type) Serialize(rec Record, tag string) (*xmltree.Element, error) {
	root, err := t.resolveTag(tag)
	if err != nil {
		return nil, err
	}
	return t.serialize(rec, root, []string{root})
}

func (t *Type) serialize(rec Record, tag string, path []string) (*xmltree.Element, error) {
	el := xmltree.New(tag)
	for _, d := range t.attrs {
		v, ok := rec[d.field]
		if !ok {
			return nil, serdeserrors.Newf(serdeserrors.ErrConfiguration, renderPath(path), "record for type %s has no field %q", t.name, d.field)
		}
		text, err := d.td.encodeText(v, childPath(path, "@"+d.tag))
		if err != nil {
			return nil, err
		}
		el.SetAttr(d.tag, text)
	}
	for _, d := range t.elems {
		v, ok := rec[d.field]
		if !ok {
			return nil, serdeserrors.Newf(serdeserrors.ErrConfiguration, renderPath(path), "record for type %s has no field %q", t.name, d.field)
		}
		child, err := d.td.encode(v, d.tag, childPath(path, d.tag))
		if err != nil {
			return nil, err
		}
		el.Append(child)
	}
	return el, nil
}

// Deserialize converts an element into a record of field values. The
// element's tag must match the given tag (or the type's default tag when
// tag is empty). Singular child elements are located by tag; a list field
// whose grouping element is absent decodes to an empty list.
func (t *Type) Deserialize(el *xmltree.Element, tag string) (Record, error) {
	if el == nil {
		return nil, serdeserrors.New(serdeserrors.ErrMissingElement, "", "nil element")
	}
	root, err := t.resolveTag(tag)
	if err != nil {
		return nil, err
	}
	if el.Tag != root {
		return nil, serdeserrors.Newf(serdeserrors.ErrUnexpectedTag, "/", "expected tag %q but got %q", root, el.Tag)
	}
	return t.deserialize(el, []string{el.Tag})
}

func (t *Type) deserialize(el *xmltree.Element, path []string) (Record, error) {
	rec := make(Record, len(t.attrs)+len(t.elems))
	for _, d := range t.attrs {
		text, ok := el.Attr(d.tag)
		if !ok {
			return nil, serdeserrors.Newf(serdeserrors.ErrMissingAttribute, renderPath(path), "required attribute %q missing on <%s>", d.tag, el.Tag)
		}
		v, err := d.td.decodeText(text, childPath(path, "@"+d.tag))
		if err != nil {
			return nil, err
		}
		rec[d.field] = v
	}
	for _, d := range t.elems {
		child := el.Find(d.tag)
		switch {
		case child != nil:
			v, err := d.td.decode(child, childPath(path, d.tag))
			if err != nil {
				return nil, err
			}
			rec[d.field] = v
		case d.td.kind == kindList:
			// Zero matches is a valid empty sequence.
			rec[d.field] = []any{}
		default:
			return nil, serdeserrors.Newf(serdeserrors.ErrMissingElement, renderPath(path), "required element <%s> missing", d.tag)
		}
	}
	return rec, nil
}

// Marshal serializes a record to compact XML text.
func (t *Type) Marshal(rec Record, tag string) ([]byte, error) {
	el, err := t.Serialize(rec, tag)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if err := el.Encode(&b); err != nil {
		return nil, fmt.Errorf("encode xml: %w", err)
	}
	return b.Bytes(), nil
}

// Unmarshal parses XML text and deserializes the document element.
func (t *Type) Unmarshal(data []byte, tag string) (Record, error) {
	el, err := xmltree.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}
	return t.Deserialize(el, tag)
}
