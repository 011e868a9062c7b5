package autodiff

import (
	"errors"
	"fmt"
	"math"
)

// ErrConversion is returned (wrapped in a *ConversionError) when a value cannot
// be turned into a node.
var ErrConversion = errors.New("value is not representable as float64")

// ConversionError describes a failed conversion at the graph boundary.
type ConversionError struct {
	Value  any    // the rejected input
	Reason string // why it was rejected
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("autodiff: cannot convert %v (%T) to float64: %s", e.Value, e.Value, e.Reason)
}

// Unwrap returns ErrConversion.
func (e *ConversionError) Unwrap() error {
	return ErrConversion
}

// maxExactInt is the largest magnitude below which every integer has an exact
// float64 representation (2^53).
const maxExactInt = 1 << 53

// ToFloat64 converts any Go integer or floating-point value to float64.
//
// Integers beyond ±2^53 that do not survive the round trip, and every
// non-numeric type, are rejected with a *ConversionError.
func ToFloat64(x any) (float64, error) {
	switch v := x.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return fromInt(x, int64(v))
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return fromInt(x, v)
	case uint:
		return fromUint(x, uint64(v))
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return fromUint(x, v)
	case uintptr:
		return fromUint(x, uint64(v))
	case nil:
		return 0, &ConversionError{Value: x, Reason: "nil value"}
	default:
		return 0, &ConversionError{Value: x, Reason: "unsupported type"}
	}
}

func fromInt(orig any, v int64) (float64, error) {
	if v > -maxExactInt && v < maxExactInt {
		return float64(v), nil
	}
	f := float64(v)
	// float64(MaxInt64) rounds up to 2^63, which does not convert back.
	if f >= math.MaxInt64 || f < math.MinInt64 || int64(f) != v {
		return 0, &ConversionError{Value: orig, Reason: "integer loses precision"}
	}
	return f, nil
}

func fromUint(orig any, v uint64) (float64, error) {
	if v < maxExactInt {
		return float64(v), nil
	}
	f := float64(v)
	if f >= math.MaxUint64 || uint64(f) != v {
		return 0, &ConversionError{Value: orig, Reason: "integer loses precision"}
	}
	return f, nil
}
