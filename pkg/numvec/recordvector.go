package numvec

import "fmt"

// RecordVector is a fixed-stride buffer of packed records of one dtype.
type RecordVector struct {
	dtype *DType
	data  []byte
}

// NewRecordVector returns a zero-filled vector of n rows of dtype d.
// It panics when d is nil or n is negative.
func NewRecordVector(d *DType, n int) *RecordVector {
	if d == nil {
		panic("numvec: nil dtype")
	}
	if n < 0 {
		panic("numvec: negative length")
	}
	return &RecordVector{dtype: d, data: make([]byte, n*d.Stride())}
}

// RecordsFromBytes wraps a raw packed payload as a record vector of dtype d.
// The payload length must be a multiple of the row stride, otherwise
// ErrBadLength is returned.
func RecordsFromBytes(d *DType, b []byte) (*RecordVector, error) {
	if d == nil {
		return nil, fmt.Errorf("numvec: nil dtype")
	}
	if len(b)%d.Stride() != 0 {
		return nil, fmt.Errorf("%w: %d bytes, stride %d", ErrBadLength, len(b), d.Stride())
	}
	data := make([]byte, len(b))
	copy(data, b)
	return &RecordVector{dtype: d, data: data}, nil
}

// DType returns the row layout.
func (rv *RecordVector) DType() *DType { return rv.dtype }

// Stride returns the packed per-row byte width.
func (rv *RecordVector) Stride() int { return rv.dtype.Stride() }

// Len returns the row count.
func (rv *RecordVector) Len() int {
	if rv == nil {
		return 0
	}
	return len(rv.data) / rv.dtype.Stride()
}

// Bytes returns a copy of the packed payload, rows in order.
func (rv *RecordVector) Bytes() []byte {
	out := make([]byte, len(rv.data))
	copy(out, rv.data)
	return out
}

// AppendRow grows the vector by one zero-filled row and returns its index.
func (rv *RecordVector) AppendRow() int {
	i := rv.Len()
	rv.data = append(rv.data, make([]byte, rv.dtype.Stride())...)
	return i
}

// ValueAt reads the scalar of kind k at byte offset off within row i. The
// offset is relative to the row start, as reported by the dtype's field
// info. It panics when the location is out of range.
func (rv *RecordVector) ValueAt(i, off int, k Kind) any {
	return getScalar(rv.field(i, off, k), k)
}

// SetValueAt stores a scalar of kind k at byte offset off within row i. The
// value must have the exact Go type for k.
func (rv *RecordVector) SetValueAt(i, off int, k Kind, v any) error {
	return putScalar(rv.field(i, off, k), k, v)
}

func (rv *RecordVector) field(i, off int, k Kind) []byte {
	base := i*rv.dtype.Stride() + off
	return rv.data[base : base+k.Stride()]
}
