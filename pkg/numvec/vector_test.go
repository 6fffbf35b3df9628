package numvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserdes/xmlserdes/pkg/numvec"
)

func TestKindStride(t *testing.T) {
	tests := []struct {
		kind numvec.Kind
		want int
	}{
		{numvec.Int8, 1},
		{numvec.Uint8, 1},
		{numvec.Int16, 2},
		{numvec.Uint16, 2},
		{numvec.Int32, 4},
		{numvec.Uint32, 4},
		{numvec.Float32, 4},
		{numvec.Int64, 8},
		{numvec.Uint64, 8},
		{numvec.Float64, 8},
		{numvec.Invalid, 0},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.kind.Stride())
		})
	}
}

func TestVectorAccessors(t *testing.T) {
	v := numvec.NewVector(numvec.Int16, 3)
	v.SetInt(0, -1)
	v.SetInt(1, 300)
	v.SetInt(2, 32767)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, int64(-1), v.Int(0))
	assert.Equal(t, int64(300), v.Int(1))
	assert.Equal(t, int16(32767), v.Value(2))
}

func TestVectorFloat(t *testing.T) {
	v := numvec.NewVector(numvec.Float64, 2)
	v.SetFloat(0, 0.1)
	v.SetFloat(1, -2.5)

	assert.Equal(t, 0.1, v.Float(0))
	assert.Equal(t, -2.5, v.Float(1))
}

func TestVectorUint(t *testing.T) {
	v := numvec.NewVector(numvec.Uint8, 2)
	v.SetUint(0, 255)
	v.SetUint(1, 7)

	assert.Equal(t, uint64(255), v.Uint(0))
	assert.Equal(t, uint8(7), v.Value(1))
}

func TestFromSlices(t *testing.T) {
	v := numvec.FromInts(numvec.Int32, []int64{1, -2, 3})
	assert.Equal(t, "1,-2,3", v.EncodeText())

	u := numvec.FromUints(numvec.Uint8, []uint64{0, 255})
	assert.Equal(t, "0,255", u.EncodeText())

	f := numvec.FromFloats(numvec.Float64, []float64{0.5, -1.25})
	assert.Equal(t, "0.5,-1.25", f.EncodeText())

	assert.Panics(t, func() { numvec.FromInts(numvec.Float32, []int64{1}) })
}

func TestVectorKindMismatchPanics(t *testing.T) {
	v := numvec.NewVector(numvec.Int32, 1)
	assert.Panics(t, func() { v.SetFloat(0, 1.5) })
	assert.Panics(t, func() { v.Uint(0) })
	assert.Panics(t, func() { v.Float(0) })
}

func TestFromBytes(t *testing.T) {
	v, err := numvec.FromBytes(numvec.Uint16, []byte{0x01, 0x00, 0xff, 0x00})
	require.NoError(t, err)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, uint64(1), v.Uint(0))
	assert.Equal(t, uint64(255), v.Uint(1))
}

func TestFromBytesBadLength(t *testing.T) {
	_, err := numvec.FromBytes(numvec.Int32, []byte{1, 2, 3})
	require.ErrorIs(t, err, numvec.ErrBadLength)
}

func TestBytesRoundTrip(t *testing.T) {
	v := numvec.NewVector(numvec.Int32, 2)
	v.SetInt(0, 1)
	v.SetInt(1, -2)

	got, err := numvec.FromBytes(numvec.Int32, v.Bytes())
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestEncodeText(t *testing.T) {
	v := numvec.NewVector(numvec.Int32, 3)
	v.SetInt(0, 1)
	v.SetInt(1, -2)
	v.SetInt(2, 3)
	assert.Equal(t, "1,-2,3", v.EncodeText())

	f := numvec.NewVector(numvec.Float64, 2)
	f.SetFloat(0, 1)
	f.SetFloat(1, 2.5)
	assert.Equal(t, "1,2.5", f.EncodeText())

	assert.Empty(t, numvec.NewVector(numvec.Int8, 0).EncodeText())
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name    string
		kind    numvec.Kind
		input   string
		wantLen int
		wantErr bool
	}{
		{name: "ints", kind: numvec.Int32, input: "10,20,30", wantLen: 3},
		{name: "spaced", kind: numvec.Int32, input: " 10 , 20 ", wantLen: 2},
		{name: "empty", kind: numvec.Int32, input: "", wantLen: 0},
		{name: "blank", kind: numvec.Int32, input: "   ", wantLen: 0},
		{name: "floats", kind: numvec.Float32, input: "0.5,-1.25", wantLen: 2},
		{name: "bad token", kind: numvec.Int32, input: "1,x,3", wantErr: true},
		{name: "overflow", kind: numvec.Int8, input: "300", wantErr: true},
		{name: "negative unsigned", kind: numvec.Uint16, input: "-1", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := numvec.DecodeText(tc.kind, tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLen, v.Len())
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	v := numvec.NewVector(numvec.Float64, 3)
	v.SetFloat(0, 0.1)
	v.SetFloat(1, 1.0/3.0)
	v.SetFloat(2, -1e-9)

	got, err := numvec.DecodeText(numvec.Float64, v.EncodeText())
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestFormatParseValue(t *testing.T) {
	s, err := numvec.FormatValue(numvec.Uint64, uint64(18446744073709551615))
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551615", s)

	got, err := numvec.ParseValue(numvec.Uint64, s)
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), got)

	_, err = numvec.FormatValue(numvec.Int8, "nope")
	assert.Error(t, err)
}
