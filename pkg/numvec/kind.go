// Package numvec provides fixed-stride typed buffers for bulk numeric
// payloads: flat vectors of one scalar kind and vectors of packed records.
// Buffers store elements little-endian and expose text and binary codecs.
package numvec

// Kind identifies the scalar element type of a buffer.
type Kind uint8

const (
	// Invalid is the zero Kind and matches no element type.
	Invalid Kind = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

// Stride returns the per-element byte width, or 0 for an invalid kind.
func (k Kind) Stride() int {
	switch k {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
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
	default:
		return "invalid"
	}
}

func (k Kind) valid() bool {
	return k.Stride() != 0
}

func (k Kind) isSigned() bool {
	switch k {
	case Int8, Int16, Int32, Int64:
		return true
	}
	return false
}

func (k Kind) isUnsigned() bool {
	switch k {
	case Uint8, Uint16, Uint32, Uint64:
		return true
	}
	return false
}

func (k Kind) isFloat() bool {
	return k == Float32 || k == Float64
}
