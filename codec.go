package xmlserdes

import (
	serdeserrors "github.com/goserdes/xmlserdes/errors"
	"github.com/goserdes/xmlserdes/pkg/xmltree"
)

// Binding connects one declared field to a struct: a getter producing the
// engine-level value and a setter accepting it back. Most bindings are built
// with Bind, BindNested, or BindNestedList rather than by hand.
type Binding[T any] struct {
	Field string
	Get   func(*T) any
	Set   func(*T, any) error
}

// Bind builds the accessor pair for a plain field from a single
// pointer-returning accessor. The struct field type must match the
// engine-level value type of the declared field.
func Bind[T, F any](field string, access func(*T) *F) Binding[T] {
	return Binding[T]{
		Field: field,
		Get: func(o *T) any {
			return *access(o)
		},
		Set: func(o *T, v any) error {
			fv, ok := v.(F)
			if !ok {
				return serdeserrors.Newf(serdeserrors.ErrValue, "", "field %q: cannot assign %T", field, v)
			}
			*access(o) = fv
			return nil
		},
	}
}

// BindNested builds the accessor pair for a nested instance field, using the
// inner codec to convert between the nested struct and its record form.
func BindNested[T, F any](field string, access func(*T) *F, inner *Codec[F]) Binding[T] {
	return Binding[T]{
		Field: field,
		Get: func(o *T) any {
			return inner.toRecord(access(o))
		},
		Set: func(o *T, v any) error {
			rec, ok := v.(Record)
			if !ok {
				return serdeserrors.Newf(serdeserrors.ErrValue, "", "field %q: expected record, got %T", field, v)
			}
			nested, err := inner.fromRecord(rec)
			if err != nil {
				return err
			}
			*access(o) = *nested
			return nil
		},
	}
}

// BindNestedList builds the accessor pair for a list-of-instances field.
func BindNestedList[T, F any](field string, access func(*T) *[]F, inner *Codec[F]) Binding[T] {
	return Binding[T]{
		Field: field,
		Get: func(o *T) any {
			items := *access(o)
			out := make([]any, len(items))
			for i := range items {
				out[i] = inner.toRecord(&items[i])
			}
			return out
		},
		Set: func(o *T, v any) error {
			items, ok := v.([]any)
			if !ok {
				return serdeserrors.Newf(serdeserrors.ErrValue, "", "field %q: expected list, got %T", field, v)
			}
			out := make([]F, len(items))
			for i, item := range items {
				rec, ok := item.(Record)
				if !ok {
					return serdeserrors.Newf(serdeserrors.ErrValue, "", "field %q: expected record item, got %T", field, item)
				}
				nested, err := inner.fromRecord(rec)
				if err != nil {
					return err
				}
				out[i] = *nested
			}
			*access(o) = out
			return nil
		},
	}
}

// Codec binds a descriptor table to a concrete struct type, exposing
// serialization as operations on the struct itself. A Codec is immutable
// after construction and safe for concurrent use.
type Codec[T any] struct {
	typ   *Type
	tag   string
	binds []Binding[T]
}

// NewCodec builds a codec for the given type and root tag (the type's
// default tag when tag is empty). Bindings must cover the type's declared
// fields exactly, one binding per field.
func NewCodec[T any](t *Type, tag string, binds ...Binding[T]) (*Codec[T], error) {
	if t == nil {
		return nil, serdeserrors.New(serdeserrors.ErrConfiguration, "", "nil type")
	}
	root, err := t.resolveTag(tag)
	if err != nil {
		return nil, err
	}

	declared := make(map[string]struct{}, len(t.attrs)+len(t.elems))
	for _, d := range t.attrs {
		declared[d.field] = struct{}{}
	}
	for _, d := range t.elems {
		declared[d.field] = struct{}{}
	}

	bound := make(map[string]struct{}, len(binds))
	for _, b := range binds {
		if _, ok := declared[b.Field]; !ok {
			return nil, serdeserrors.Newf(serdeserrors.ErrConfiguration, "", "binding for undeclared field %q in type %s", b.Field, t.name)
		}
		if _, dup := bound[b.Field]; dup {
			return nil, serdeserrors.Newf(serdeserrors.ErrConfiguration, "", "duplicate binding for field %q in type %s", b.Field, t.name)
		}
		bound[b.Field] = struct{}{}
	}
	for field := range declared {
		if _, ok := bound[field]; !ok {
			return nil, serdeserrors.Newf(serdeserrors.ErrConfiguration, "", "no binding for field %q in type %s", field, t.name)
		}
	}

	c := &Codec[T]{typ: t, tag: root, binds: make([]Binding[T], len(binds))}
	copy(c.binds, binds)
	return c, nil
}

// MustCodec builds a codec and panics on error. Intended for package-level
// codec declarations.
func MustCodec[T any](t *Type, tag string, binds ...Binding[T]) *Codec[T] {
	c, err := NewCodec(t, tag, binds...)
	if err != nil {
		panic(err)
	}
	return c
}

// Encode serializes a struct into a new element with the codec's root tag.
func (c *Codec[T]) Encode(obj *T) (*xmltree.Element, error) {
	return c.typ.Serialize(c.toRecord(obj), c.tag)
}

// Decode deserializes an element into a new struct.
func (c *Codec[T]) Decode(el *xmltree.Element) (*T, error) {
	rec, err := c.typ.Deserialize(el, c.tag)
	if err != nil {
		return nil, err
	}
	return c.fromRecord(rec)
}

// Marshal serializes a struct to compact XML text.
func (c *Codec[T]) Marshal(obj *T) ([]byte, error) {
	return c.typ.Marshal(c.toRecord(obj), c.tag)
}

// Unmarshal parses XML text and decodes the document element into a new
// struct.
func (c *Codec[T]) Unmarshal(data []byte) (*T, error) {
	rec, err := c.typ.Unmarshal(data, c.tag)
	if err != nil {
		return nil, err
	}
	return c.fromRecord(rec)
}

func (c *Codec[T]) toRecord(obj *T) Record {
	rec := make(Record, len(c.binds))
	for _, b := range c.binds {
		rec[b.Field] = b.Get(obj)
	}
	return rec
}

func (c *Codec[T]) fromRecord(rec Record) (*T, error) {
	obj := new(T)
	for _, b := range c.binds {
		v, ok := rec[b.Field]
		if !ok {
			return nil, serdeserrors.Newf(serdeserrors.ErrConfiguration, "", "record has no field %q", b.Field)
		}
		if err := b.Set(obj, v); err != nil {
			return nil, err
		}
	}
	return obj, nil
}
