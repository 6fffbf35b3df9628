package numvec

import "fmt"

// Field declares one named field of a record dtype. Record, when non-nil,
// makes the field a nested record and Kind is ignored.
type Field struct {
	Name   string
	Kind   Kind
	Record *DType
}

// FieldInfo describes one resolved field of a record dtype, including its
// byte offset within a packed row.
type FieldInfo struct {
	Name   string
	Kind   Kind
	Record *DType
	Offset int
}

// DType is an immutable record layout: an ordered sequence of named fields,
// each a scalar kind or a nested record. Rows pack fields in declaration
// order with no padding.
type DType struct {
	fields []FieldInfo
	stride int
}

// NewDType resolves field declarations into a record layout. Field names
// must be non-empty and unique; scalar fields must carry a valid kind.
func NewDType(fields ...Field) (*DType, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("numvec: record dtype needs at least one field")
	}

	d := &DType{fields: make([]FieldInfo, 0, len(fields))}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("numvec: record field with empty name")
		}
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("numvec: duplicate record field %q", f.Name)
		}
		seen[f.Name] = struct{}{}

		info := FieldInfo{Name: f.Name, Offset: d.stride}
		switch {
		case f.Record != nil:
			info.Record = f.Record
			d.stride += f.Record.Stride()
		case f.Kind.valid():
			info.Kind = f.Kind
			d.stride += f.Kind.Stride()
		default:
			return nil, fmt.Errorf("numvec: record field %q has invalid kind", f.Name)
		}
		d.fields = append(d.fields, info)
	}
	return d, nil
}

// MustDType resolves field declarations and panics on error.
func MustDType(fields ...Field) *DType {
	d, err := NewDType(fields...)
	if err != nil {
		panic(err)
	}
	return d
}

// Stride returns the packed per-row byte width.
func (d *DType) Stride() int { return d.stride }

// Fields returns the resolved fields in declaration order.
func (d *DType) Fields() []FieldInfo {
	out := make([]FieldInfo, len(d.fields))
	copy(out, d.fields)
	return out
}

// Equal reports whether two dtypes have the same field names, kinds, and
// nesting in the same order.
func (d *DType) Equal(other *DType) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.fields) != len(other.fields) {
		return false
	}
	for i, f := range d.fields {
		g := other.fields[i]
		if f.Name != g.Name || f.Kind != g.Kind {
			return false
		}
		if (f.Record == nil) != (g.Record == nil) {
			return false
		}
		if f.Record != nil && !f.Record.Equal(g.Record) {
			return false
		}
	}
	return true
}
