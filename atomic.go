package xmlserdes

import (
	"fmt"
	"strconv"
	"strings"
)

// formatScalar renders a field value as element or attribute text. The value
// must have the exact Go type for the scalar type. Booleans use the tokens
// "true" and "false"; floats use the shortest text that parses back exactly.
func formatScalar(s ScalarType, v any) (string, error) {
	switch s {
	case Bool:
		b, ok := v.(bool)
		if !ok {
			return "", scalarMismatch(s, v)
		}
		if b {
			return "true", nil
		}
		return "false", nil
	case Int:
		if x, ok := v.(int); ok {
			return strconv.Itoa(x), nil
		}
	case Int8:
		if x, ok := v.(int8); ok {
			return strconv.FormatInt(int64(x), 10), nil
		}
	case Int16:
		if x, ok := v.(int16); ok {
			return strconv.FormatInt(int64(x), 10), nil
		}
	case Int32:
		if x, ok := v.(int32); ok {
			return strconv.FormatInt(int64(x), 10), nil
		}
	case Int64:
		if x, ok := v.(int64); ok {
			return strconv.FormatInt(x, 10), nil
		}
	case Uint:
		if x, ok := v.(uint); ok {
			return strconv.FormatUint(uint64(x), 10), nil
		}
	case Uint8:
		if x, ok := v.(uint8); ok {
			return strconv.FormatUint(uint64(x), 10), nil
		}
	case Uint16:
		if x, ok := v.(uint16); ok {
			return strconv.FormatUint(uint64(x), 10), nil
		}
	case Uint32:
		if x, ok := v.(uint32); ok {
			return strconv.FormatUint(uint64(x), 10), nil
		}
	case Uint64:
		if x, ok := v.(uint64); ok {
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
	case String:
		if x, ok := v.(string); ok {
			return x, nil
		}
	default:
		return "", fmt.Errorf("invalid scalar type")
	}
	return "", scalarMismatch(s, v)
}

func scalarMismatch(s ScalarType, v any) error {
	return fmt.Errorf("expected %s value, got %T", s, v)
}

// parseScalar parses element or attribute text into a field value with the
// exact Go type for the scalar type. Numeric and boolean text tolerates
// surrounding whitespace; string text is kept verbatim.
func parseScalar(s ScalarType, text string) (any, error) {
	if s == String {
		return text, nil
	}

	t := strings.TrimSpace(text)
	switch s {
	case Bool:
		switch t {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, fmt.Errorf(`expected "true" or "false" but got %q`, t)
	case Int, Int8, Int16, Int32, Int64:
		x, err := strconv.ParseInt(t, 10, intBits(s))
		if err != nil {
			return nil, parseFailure(s, t, err)
		}
		switch s {
		case Int:
			return int(x), nil
		case Int8:
			return int8(x), nil
		case Int16:
			return int16(x), nil
		case Int32:
			return int32(x), nil
		default:
			return x, nil
		}
	case Uint, Uint8, Uint16, Uint32, Uint64:
		x, err := strconv.ParseUint(t, 10, intBits(s))
		if err != nil {
			return nil, parseFailure(s, t, err)
		}
		switch s {
		case Uint:
			return uint(x), nil
		case Uint8:
			return uint8(x), nil
		case Uint16:
			return uint16(x), nil
		case Uint32:
			return uint32(x), nil
		default:
			return x, nil
		}
	case Float32:
		x, err := strconv.ParseFloat(t, 32)
		if err != nil {
			return nil, parseFailure(s, t, err)
		}
		return float32(x), nil
	case Float64:
		x, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, parseFailure(s, t, err)
		}
		return x, nil
	default:
		return nil, fmt.Errorf("invalid scalar type")
	}
}

func parseFailure(s ScalarType, text string, err error) error {
	return fmt.Errorf("could not parse %q as %s: %w", text, s, err)
}

func intBits(s ScalarType) int {
	switch s {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32:
		return 32
	case Int64, Uint64:
		return 64
	default:
		// int and uint parse at platform width.
		return 0
	}
}
