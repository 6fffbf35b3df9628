package numvec

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

// getScalar reads one element of kind k from the start of b.
// The returned value has the exact Go type for k (int8, uint16, ...).
func getScalar(b []byte, k Kind) any {
	switch k {
	case Int8:
		return int8(b[0])
	case Int16:
		return int16(binary.LittleEndian.Uint16(b))
	case Int32:
		return int32(binary.LittleEndian.Uint32(b))
	case Int64:
		return int64(binary.LittleEndian.Uint64(b))
	case Uint8:
		return b[0]
	case Uint16:
		return binary.LittleEndian.Uint16(b)
	case Uint32:
		return binary.LittleEndian.Uint32(b)
	case Uint64:
		return binary.LittleEndian.Uint64(b)
	case Float32:
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	case Float64:
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	default:
		panic("numvec: invalid kind")
	}
}

// putScalar writes one element of kind k at the start of b. The value must
// have the exact Go type for k.
func putScalar(b []byte, k Kind, v any) error {
	switch k {
	case Int8:
		x, ok := v.(int8)
		if !ok {
			return typeMismatch(k, v)
		}
		b[0] = byte(x)
	case Int16:
		x, ok := v.(int16)
		if !ok {
			return typeMismatch(k, v)
		}
		binary.LittleEndian.PutUint16(b, uint16(x))
	case Int32:
		x, ok := v.(int32)
		if !ok {
			return typeMismatch(k, v)
		}
		binary.LittleEndian.PutUint32(b, uint32(x))
	case Int64:
		x, ok := v.(int64)
		if !ok {
			return typeMismatch(k, v)
		}
		binary.LittleEndian.PutUint64(b, uint64(x))
	case Uint8:
		x, ok := v.(uint8)
		if !ok {
			return typeMismatch(k, v)
		}
		b[0] = x
	case Uint16:
		x, ok := v.(uint16)
		if !ok {
			return typeMismatch(k, v)
		}
		binary.LittleEndian.PutUint16(b, x)
	case Uint32:
		x, ok := v.(uint32)
		if !ok {
			return typeMismatch(k, v)
		}
		binary.LittleEndian.PutUint32(b, x)
	case Uint64:
		x, ok := v.(uint64)
		if !ok {
			return typeMismatch(k, v)
		}
		binary.LittleEndian.PutUint64(b, x)
	case Float32:
		x, ok := v.(float32)
		if !ok {
			return typeMismatch(k, v)
		}
		binary.LittleEndian.PutUint32(b, math.Float32bits(x))
	case Float64:
		x, ok := v.(float64)
		if !ok {
			return typeMismatch(k, v)
		}
		binary.LittleEndian.PutUint64(b, math.Float64bits(x))
	default:
		return fmt.Errorf("numvec: invalid kind")
	}
	return nil
}

func typeMismatch(k Kind, v any) error {
	return fmt.Errorf("numvec: expected %s value, got %T", k, v)
}

// FormatValue renders one scalar value of kind k as decimal text. Float
// values use the shortest representation that parses back exactly.
func FormatValue(k Kind, v any) (string, error) {
	switch k {
	case Int8, Int16, Int32, Int64:
		switch x := v.(type) {
		case int8:
			return strconv.FormatInt(int64(x), 10), nil
		case int16:
			return strconv.FormatInt(int64(x), 10), nil
		case int32:
			return strconv.FormatInt(int64(x), 10), nil
		case int64:
			return strconv.FormatInt(x, 10), nil
		}
	case Uint8, Uint16, Uint32, Uint64:
		switch x := v.(type) {
		case uint8:
			return strconv.FormatUint(uint64(x), 10), nil
		case uint16:
			return strconv.FormatUint(uint64(x), 10), nil
		case uint32:
			return strconv.FormatUint(uint64(x), 10), nil
		case uint64:
			return strconv.FormatUint(x, 10), nil
		}
	case Float32:
		if x, ok := v.(float32); ok {
			return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
		}
	case Float64:
		if x, ok := v.(float64); ok {
			return strconv.FormatFloat(x, 'g', -1, 64), nil
		}
	}
	return "", typeMismatch(k, v)
}

// ParseValue parses decimal text into one scalar value of kind k. The
// returned value has the exact Go type for k.
func ParseValue(k Kind, s string) (any, error) {
	switch k {
	case Int8, Int16, Int32, Int64:
		x, err := strconv.ParseInt(s, 10, 8*k.Stride())
		if err != nil {
			return nil, fmt.Errorf("numvec: parse %s %q: %w", k, s, err)
		}
		switch k {
		case Int8:
			return int8(x), nil
		case Int16:
			return int16(x), nil
		case Int32:
			return int32(x), nil
		default:
			return x, nil
		}
	case Uint8, Uint16, Uint32, Uint64:
		x, err := strconv.ParseUint(s, 10, 8*k.Stride())
		if err != nil {
			return nil, fmt.Errorf("numvec: parse %s %q: %w", k, s, err)
		}
		switch k {
		case Uint8:
			return uint8(x), nil
		case Uint16:
			return uint16(x), nil
		case Uint32:
			return uint32(x), nil
		default:
			return x, nil
		}
	case Float32, Float64:
		x, err := strconv.ParseFloat(s, 8*k.Stride())
		if err != nil {
			return nil, fmt.Errorf("numvec: parse %s %q: %w", k, s, err)
		}
		if k == Float32 {
			return float32(x), nil
		}
		return x, nil
	default:
		return nil, fmt.Errorf("numvec: invalid kind")
	}
}
