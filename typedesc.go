package xmlserdes

import (
	"encoding/base64"
	"fmt"
	"strings"

	serdeserrors "github.com/goserdes/xmlserdes/errors"
	"github.com/goserdes/xmlserdes/pkg/numvec"
	"github.com/goserdes/xmlserdes/pkg/xmltree"
)

type descKind uint8

const (
	kindAtomic descKind = iota
	kindEnum
	kindList
	kindInstance
	kindVector
	kindRecords
	kindBlob
)

// typeDescriptor is the resolved form of a terse specification: a closed
// tagged variant carrying only the configuration for its kind. Descriptors
// are stateless; conversion never mutates them.
type typeDescriptor struct {
	kind descKind

	scalar ScalarType // kindAtomic

	names     []string       // kindEnum, index order
	nameIndex map[string]int // kindEnum

	item    *typeDescriptor // kindList
	itemTag string          // kindList, kindRecords

	inst *Type // kindInstance

	vecKind numvec.Kind   // kindVector
	dtype   *numvec.DType // kindRecords, kindBlob
}

// resolveSpec interprets a terse specification into a concrete descriptor.
// All shape checks happen here so a malformed schema fails when the type is
// declared, not on first conversion.
func resolveSpec(spec TypeSpec) (*typeDescriptor, error) {
	switch s := spec.(type) {
	case nil:
		return nil, serdeserrors.New(serdeserrors.ErrConfiguration, "", "nil type specification")

	case ScalarType:
		if !s.valid() {
			return nil, serdeserrors.Newf(serdeserrors.ErrConfiguration, "", "invalid scalar type %d", int(s))
		}
		return &typeDescriptor{kind: kindAtomic, scalar: s}, nil

	case enumSpec:
		if len(s.names) == 0 {
			return nil, serdeserrors.New(serdeserrors.ErrConfiguration, "", "enumeration with no values")
		}
		index := make(map[string]int, len(s.names))
		for i, name := range s.names {
			if name == "" {
				return nil, serdeserrors.New(serdeserrors.ErrConfiguration, "", "enumeration with empty value")
			}
			if _, dup := index[name]; dup {
				return nil, serdeserrors.Newf(serdeserrors.ErrConfiguration, "", "duplicate enumeration value %q", name)
			}
			index[name] = i
		}
		names := make([]string, len(s.names))
		copy(names, s.names)
		return &typeDescriptor{kind: kindEnum, names: names, nameIndex: index}, nil

	case listSpec:
		if s.item == nil {
			return nil, serdeserrors.New(serdeserrors.ErrConfiguration, "", "list specification has no item type")
		}
		itemTag := s.itemTag
		if itemTag == "" {
			t, ok := s.item.(*Type)
			if !ok || t == nil || t.defaultTag == "" {
				return nil, serdeserrors.New(serdeserrors.ErrConfiguration, "", "list specification has no item tag")
			}
			itemTag = t.defaultTag
		}
		item, err := resolveSpec(s.item)
		if err != nil {
			return nil, err
		}
		return &typeDescriptor{kind: kindList, item: item, itemTag: itemTag}, nil

	case *Type:
		if s == nil {
			return nil, serdeserrors.New(serdeserrors.ErrConfiguration, "", "nil nested type")
		}
		return &typeDescriptor{kind: kindInstance, inst: s}, nil

	case vectorSpec:
		if s.kind.Stride() == 0 {
			return nil, serdeserrors.New(serdeserrors.ErrConfiguration, "", "vector specification has invalid element kind")
		}
		return &typeDescriptor{kind: kindVector, vecKind: s.kind}, nil

	case recordsSpec:
		if s.dtype == nil {
			return nil, serdeserrors.New(serdeserrors.ErrConfiguration, "", "record vector specification has no dtype")
		}
		if s.itemTag == "" {
			return nil, serdeserrors.New(serdeserrors.ErrConfiguration, "", "record vector specification has no item tag")
		}
		return &typeDescriptor{kind: kindRecords, dtype: s.dtype, itemTag: s.itemTag}, nil

	case blobSpec:
		if s.dtype == nil {
			return nil, serdeserrors.New(serdeserrors.ErrConfiguration, "", "blob specification has no dtype")
		}
		return &typeDescriptor{kind: kindBlob, dtype: s.dtype}, nil

	default:
		return nil, serdeserrors.Newf(serdeserrors.ErrConfiguration, "", "unhandled terse specification %T", spec)
	}
}

// textual reports whether the descriptor's value fits in attribute text.
func (td *typeDescriptor) textual() bool {
	return td.kind == kindAtomic || td.kind == kindEnum
}

// encodeText renders an atomic or enum value as text.
func (td *typeDescriptor) encodeText(v any, path []string) (string, error) {
	switch td.kind {
	case kindAtomic:
		text, err := formatScalar(td.scalar, v)
		if err != nil {
			return "", serdeserrors.Newf(serdeserrors.ErrValue, renderPath(path), "%v", err)
		}
		return text, nil
	case kindEnum:
		i, ok := v.(int)
		if !ok {
			return "", serdeserrors.Newf(serdeserrors.ErrValue, renderPath(path), "expected enumeration index, got %T", v)
		}
		if i < 0 || i >= len(td.names) {
			return "", serdeserrors.Newf(serdeserrors.ErrValue, renderPath(path), "enumeration index %d out of range", i)
		}
		return td.names[i], nil
	default:
		return "", serdeserrors.New(serdeserrors.ErrValue, renderPath(path), "non-atomic descriptor has no text form")
	}
}

// decodeText parses atomic or enum text into a value.
func (td *typeDescriptor) decodeText(text string, path []string) (any, error) {
	switch td.kind {
	case kindAtomic:
		v, err := parseScalar(td.scalar, text)
		if err != nil {
			return nil, serdeserrors.Newf(serdeserrors.ErrParse, renderPath(path), "%v", err)
		}
		return v, nil
	case kindEnum:
		name := strings.TrimSpace(text)
		i, ok := td.nameIndex[name]
		if !ok {
			return nil, serdeserrors.Newf(serdeserrors.ErrParse, renderPath(path), "could not parse %q as member of enumeration", name)
		}
		return i, nil
	default:
		return nil, serdeserrors.New(serdeserrors.ErrParse, renderPath(path), "non-atomic descriptor has no text form")
	}
}

// encode serializes a field value into a new element with the given tag.
func (td *typeDescriptor) encode(v any, tag string, path []string) (*xmltree.Element, error) {
	switch td.kind {
	case kindAtomic, kindEnum:
		text, err := td.encodeText(v, path)
		if err != nil {
			return nil, err
		}
		el := xmltree.New(tag)
		el.Text = text
		return el, nil

	case kindList:
		var items []any
		if v != nil {
			vs, ok := v.([]any)
			if !ok {
				return nil, serdeserrors.Newf(serdeserrors.ErrValue, renderPath(path), "expected []any list value, got %T", v)
			}
			items = vs
		}
		el := xmltree.New(tag)
		for i, item := range items {
			p := childPath(path, fmt.Sprintf("%s[%d]", td.itemTag, i+1))
			child, err := td.item.encode(item, td.itemTag, p)
			if err != nil {
				return nil, err
			}
			el.Append(child)
		}
		return el, nil

	case kindInstance:
		rec, ok := v.(Record)
		if !ok {
			return nil, serdeserrors.Newf(serdeserrors.ErrValue, renderPath(path), "expected record value for type %s, got %T", td.inst.name, v)
		}
		return td.inst.serialize(rec, tag, path)

	case kindVector:
		vec, ok := v.(*numvec.Vector)
		if !ok || vec == nil {
			return nil, serdeserrors.Newf(serdeserrors.ErrValue, renderPath(path), "expected *numvec.Vector value, got %T", v)
		}
		if vec.Kind() != td.vecKind {
			return nil, serdeserrors.Newf(serdeserrors.ErrValue, renderPath(path), "expected %s vector, got %s", td.vecKind, vec.Kind())
		}
		el := xmltree.New(tag)
		el.Text = vec.EncodeText()
		return el, nil

	case kindRecords:
		rv, err := td.recordValue(v, path)
		if err != nil {
			return nil, err
		}
		el := xmltree.New(tag)
		for i := 0; i < rv.Len(); i++ {
			p := childPath(path, fmt.Sprintf("%s[%d]", td.itemTag, i+1))
			row := xmltree.New(td.itemTag)
			if err := encodeRow(rv, i, td.dtype, 0, row, p); err != nil {
				return nil, err
			}
			el.Append(row)
		}
		return el, nil

	case kindBlob:
		rv, err := td.recordValue(v, path)
		if err != nil {
			return nil, err
		}
		el := xmltree.New(tag)
		el.Text = base64.StdEncoding.EncodeToString(rv.Bytes())
		return el, nil

	default:
		return nil, serdeserrors.New(serdeserrors.ErrConfiguration, renderPath(path), "unresolved descriptor")
	}
}

func (td *typeDescriptor) recordValue(v any, path []string) (*numvec.RecordVector, error) {
	rv, ok := v.(*numvec.RecordVector)
	if !ok || rv == nil {
		return nil, serdeserrors.Newf(serdeserrors.ErrValue, renderPath(path), "expected *numvec.RecordVector value, got %T", v)
	}
	if !rv.DType().Equal(td.dtype) {
		return nil, serdeserrors.New(serdeserrors.ErrValue, renderPath(path), "record vector layout differs from declared dtype")
	}
	return rv, nil
}

// decode deserializes a located element into a field value. The element's
// tag has already been matched by the caller.
func (td *typeDescriptor) decode(el *xmltree.Element, path []string) (any, error) {
	switch td.kind {
	case kindAtomic, kindEnum:
		return td.decodeText(el.Text, path)

	case kindList:
		out := make([]any, 0, len(el.Children))
		for i, child := range el.Children {
			p := childPath(path, fmt.Sprintf("%s[%d]", td.itemTag, i+1))
			if child.Tag != td.itemTag {
				return nil, serdeserrors.Newf(serdeserrors.ErrUnexpectedTag, renderPath(p), "expected tag %q but got %q", td.itemTag, child.Tag)
			}
			v, err := td.item.decode(child, p)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case kindInstance:
		return td.inst.deserialize(el, path)

	case kindVector:
		vec, err := numvec.DecodeText(td.vecKind, el.Text)
		if err != nil {
			return nil, serdeserrors.Newf(serdeserrors.ErrParse, renderPath(path), "invalid %s vector text: %v", td.vecKind, err)
		}
		return vec, nil

	case kindRecords:
		rv := numvec.NewRecordVector(td.dtype, 0)
		for i, child := range el.Children {
			p := childPath(path, fmt.Sprintf("%s[%d]", td.itemTag, i+1))
			if child.Tag != td.itemTag {
				return nil, serdeserrors.Newf(serdeserrors.ErrUnexpectedTag, renderPath(p), "expected tag %q but got %q", td.itemTag, child.Tag)
			}
			row := rv.AppendRow()
			if err := decodeRow(rv, row, td.dtype, 0, child, p); err != nil {
				return nil, err
			}
		}
		return rv, nil

	case kindBlob:
		raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(el.Text))
		if err != nil {
			return nil, serdeserrors.Newf(serdeserrors.ErrParse, renderPath(path), "invalid base64 payload: %v", err)
		}
		rv, err := numvec.RecordsFromBytes(td.dtype, raw)
		if err != nil {
			return nil, serdeserrors.Newf(serdeserrors.ErrShape, renderPath(path), "%d bytes not divisible by stride %d", len(raw), td.dtype.Stride())
		}
		return rv, nil

	default:
		return nil, serdeserrors.New(serdeserrors.ErrConfiguration, renderPath(path), "unresolved descriptor")
	}
}

// encodeRow appends one named child element per dtype field to parent,
// recursing into nested record fields. base is the byte offset of the
// enclosing record within the row.
func encodeRow(rv *numvec.RecordVector, row int, d *numvec.DType, base int, parent *xmltree.Element, path []string) error {
	for _, f := range d.Fields() {
		p := childPath(path, f.Name)
		child := xmltree.New(f.Name)
		if f.Record != nil {
			if err := encodeRow(rv, row, f.Record, base+f.Offset, child, p); err != nil {
				return err
			}
		} else {
			text, err := numvec.FormatValue(f.Kind, rv.ValueAt(row, base+f.Offset, f.Kind))
			if err != nil {
				return serdeserrors.Newf(serdeserrors.ErrValue, renderPath(p), "%v", err)
			}
			child.Text = text
		}
		parent.Append(child)
	}
	return nil
}

// decodeRow reads one named child element per dtype field out of el into
// row, recursing into nested record fields.
func decodeRow(rv *numvec.RecordVector, row int, d *numvec.DType, base int, el *xmltree.Element, path []string) error {
	for _, f := range d.Fields() {
		p := childPath(path, f.Name)
		child := el.Find(f.Name)
		if child == nil {
			return serdeserrors.Newf(serdeserrors.ErrMissingElement, renderPath(path), "required element <%s> missing", f.Name)
		}
		if f.Record != nil {
			if err := decodeRow(rv, row, f.Record, base+f.Offset, child, p); err != nil {
				return err
			}
			continue
		}
		v, err := numvec.ParseValue(f.Kind, strings.TrimSpace(child.Text))
		if err != nil {
			return serdeserrors.Newf(serdeserrors.ErrParse, renderPath(p), "%v", err)
		}
		if err := rv.SetValueAt(row, base+f.Offset, f.Kind, v); err != nil {
			return serdeserrors.Newf(serdeserrors.ErrValue, renderPath(p), "%v", err)
		}
	}
	return nil
}
