package xmlserdes

import "github.com/goserdes/xmlserdes/pkg/numvec"

// TypeSpec is a terse type specification for one field. The closed set of
// forms is: a ScalarType, Enum, List or ListOf, a *Type (nested instance),
// Vector, Records, and Blob. Specs resolve into concrete type descriptors
// when a Type is built; a malformed spec fails at that point, never during
// conversion.
type TypeSpec interface {
	typeSpec()
}

// ScalarType names an atomic scalar convertible to and from element or
// attribute text.
type ScalarType int

const (
	Bool ScalarType = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	String
)

func (ScalarType) typeSpec() {}

func (s ScalarType) String() string {
	switch s {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint:
		return "uint"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case String:
		return "string"
	default:
		return "invalid"
	}
}

func (s ScalarType) valid() bool {
	return s >= Bool && s <= String
}

type enumSpec struct {
	names []string
}

func (enumSpec) typeSpec() {}

// Enum declares an enumeration whose Go value is the 0-based index into
// names and whose XML text is the name itself.
func Enum(names ...string) TypeSpec {
	return enumSpec{names: names}
}

type listSpec struct {
	item    TypeSpec
	itemTag string
}

func (listSpec) typeSpec() {}

// List declares a homogeneous sequence serialized as repeated itemTag
// children under the field's grouping element.
func List(item TypeSpec, itemTag string) TypeSpec {
	return listSpec{item: item, itemTag: itemTag}
}

// ListOf declares a sequence of nested instances using the nested type's
// default tag for each item.
func ListOf(t *Type) TypeSpec {
	return listSpec{item: t}
}

type vectorSpec struct {
	kind numvec.Kind
}

func (vectorSpec) typeSpec() {}

// Vector declares a numeric vector of one scalar kind, serialized as
// comma-separated text inside the field's element.
func Vector(k numvec.Kind) TypeSpec {
	return vectorSpec{kind: k}
}

type recordsSpec struct {
	dtype   *numvec.DType
	itemTag string
}

func (recordsSpec) typeSpec() {}

// Records declares a record vector serialized row by row: one itemTag child
// per row, each with one named sub-element per dtype field, nested record
// fields recursing.
func Records(d *numvec.DType, itemTag string) TypeSpec {
	return recordsSpec{dtype: d, itemTag: itemTag}
}

type blobSpec struct {
	dtype *numvec.DType
}

func (blobSpec) typeSpec() {}

// Blob declares a record vector serialized as its packed little-endian rows
// in standard base64 text inside the field's element.
func Blob(d *numvec.DType) TypeSpec {
	return blobSpec{dtype: d}
}
