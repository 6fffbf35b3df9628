package numvec

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadLength reports a byte payload whose length is not a multiple of the
// element stride.
var ErrBadLength = errors.New("numvec: byte length not a multiple of stride")

// Vector is a fixed-stride buffer of one scalar kind, packed little-endian.
type Vector struct {
	kind Kind
	data []byte
}

// NewVector returns a zero-filled vector of n elements of kind k.
// It panics when k is invalid or n is negative.
func NewVector(k Kind, n int) *Vector {
	if !k.valid() {
		panic("numvec: invalid kind")
	}
	if n < 0 {
		panic("numvec: negative length")
	}
	return &Vector{kind: k, data: make([]byte, n*k.Stride())}
}

// FromInts builds a signed vector of kind k from values, truncating each to
// the element width. It panics when k is not a signed kind.
func FromInts(k Kind, values []int64) *Vector {
	v := NewVector(k, len(values))
	for i, x := range values {
		v.SetInt(i, x)
	}
	return v
}

// FromUints builds an unsigned vector of kind k from values, truncating each
// to the element width. It panics when k is not an unsigned kind.
func FromUints(k Kind, values []uint64) *Vector {
	v := NewVector(k, len(values))
	for i, x := range values {
		v.SetUint(i, x)
	}
	return v
}

// FromFloats builds a float vector of kind k from values.
// It panics when k is not a float kind.
func FromFloats(k Kind, values []float64) *Vector {
	v := NewVector(k, len(values))
	for i, x := range values {
		v.SetFloat(i, x)
	}
	return v
}

// FromBytes wraps a raw little-endian payload as a vector of kind k. The
// payload length must be a multiple of the element stride, otherwise
// ErrBadLength is returned.
func FromBytes(k Kind, b []byte) (*Vector, error) {
	if !k.valid() {
		return nil, fmt.Errorf("numvec: invalid kind")
	}
	if len(b)%k.Stride() != 0 {
		return nil, fmt.Errorf("%w: %d bytes, stride %d", ErrBadLength, len(b), k.Stride())
	}
	data := make([]byte, len(b))
	copy(data, b)
	return &Vector{kind: k, data: data}, nil
}

// Kind returns the element kind.
func (v *Vector) Kind() Kind { return v.kind }

// Stride returns the per-element byte width.
func (v *Vector) Stride() int { return v.kind.Stride() }

// Len returns the element count.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return len(v.data) / v.kind.Stride()
}

// Bytes returns a copy of the packed little-endian payload.
func (v *Vector) Bytes() []byte {
	out := make([]byte, len(v.data))
	copy(out, v.data)
	return out
}

func (v *Vector) at(i int) []byte {
	s := v.kind.Stride()
	return v.data[i*s : (i+1)*s]
}

// Value returns element i with the exact Go type for the vector kind.
// It panics when i is out of range, like slice indexing.
func (v *Vector) Value(i int) any {
	return getScalar(v.at(i), v.kind)
}

// Int returns element i of a signed vector, sign-extended.
// It panics for non-signed kinds or an out-of-range index.
func (v *Vector) Int(i int) int64 {
	if !v.kind.isSigned() {
		panic("numvec: Int on " + v.kind.String() + " vector")
	}
	switch x := v.Value(i).(type) {
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	default:
		return x.(int64)
	}
}

// Uint returns element i of an unsigned vector.
// It panics for non-unsigned kinds or an out-of-range index.
func (v *Vector) Uint(i int) uint64 {
	if !v.kind.isUnsigned() {
		panic("numvec: Uint on " + v.kind.String() + " vector")
	}
	switch x := v.Value(i).(type) {
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	default:
		return x.(uint64)
	}
}

// Float returns element i of a float vector.
// It panics for non-float kinds or an out-of-range index.
func (v *Vector) Float(i int) float64 {
	if !v.kind.isFloat() {
		panic("numvec: Float on " + v.kind.String() + " vector")
	}
	if x, ok := v.Value(i).(float32); ok {
		return float64(x)
	}
	return v.Value(i).(float64)
}

// SetInt stores x into element i of a signed vector, truncating to the
// element width. It panics for non-signed kinds or an out-of-range index.
func (v *Vector) SetInt(i int, x int64) {
	switch v.kind {
	case Int8:
		_ = putScalar(v.at(i), v.kind, int8(x))
	case Int16:
		_ = putScalar(v.at(i), v.kind, int16(x))
	case Int32:
		_ = putScalar(v.at(i), v.kind, int32(x))
	case Int64:
		_ = putScalar(v.at(i), v.kind, x)
	default:
		panic("numvec: SetInt on " + v.kind.String() + " vector")
	}
}

// SetUint stores x into element i of an unsigned vector, truncating to the
// element width. It panics for non-unsigned kinds or an out-of-range index.
func (v *Vector) SetUint(i int, x uint64) {
	switch v.kind {
	case Uint8:
		_ = putScalar(v.at(i), v.kind, uint8(x))
	case Uint16:
		_ = putScalar(v.at(i), v.kind, uint16(x))
	case Uint32:
		_ = putScalar(v.at(i), v.kind, uint32(x))
	case Uint64:
		_ = putScalar(v.at(i), v.kind, x)
	default:
		panic("numvec: SetUint on " + v.kind.String() + " vector")
	}
}

// SetFloat stores x into element i of a float vector.
// It panics for non-float kinds or an out-of-range index.
func (v *Vector) SetFloat(i int, x float64) {
	switch v.kind {
	case Float32:
		_ = putScalar(v.at(i), v.kind, float32(x))
	case Float64:
		_ = putScalar(v.at(i), v.kind, x)
	default:
		panic("numvec: SetFloat on " + v.kind.String() + " vector")
	}
}

// EncodeText renders the vector as comma-separated decimal text.
func (v *Vector) EncodeText() string {
	var b strings.Builder
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		s, _ := FormatValue(v.kind, v.Value(i))
		b.WriteString(s)
	}
	return b.String()
}

// DecodeText parses comma-separated decimal text into a vector of kind k.
// Surrounding whitespace per token is ignored; empty text yields an empty
// vector.
func DecodeText(k Kind, text string) (*Vector, error) {
	if !k.valid() {
		return nil, fmt.Errorf("numvec: invalid kind")
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return NewVector(k, 0), nil
	}

	tokens := strings.Split(trimmed, ",")
	v := NewVector(k, len(tokens))
	for i, tok := range tokens {
		x, err := ParseValue(k, strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		if err := putScalar(v.at(i), k, x); err != nil {
			return nil, err
		}
	}
	return v, nil
}
