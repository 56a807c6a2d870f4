package obf

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrUnsupportedNumType is returned when a numeric type outside the supported set is requested.
	ErrUnsupportedNumType = errors.New("unsupported numeric type")
)

// NumType identifies a numeric width supported by the deterministic random-value facility.
// The facility turns a 64-bit entropy value into a value of the requested type; integers cover their full range, floats land in [1.0, 2.0).
type NumType uint8

const (
	U8 NumType = iota
	U16
	U32
	U64
	Usize
	I8
	I16
	I32
	I64
	Isize
	Bool
	F32
	F64
)

var numTypeNames = map[string]NumType{
	"u8":    U8,
	"u16":   U16,
	"u32":   U32,
	"u64":   U64,
	"usize": Usize,
	"i8":    I8,
	"i16":   I16,
	"i32":   I32,
	"i64":   I64,
	"isize": Isize,
	"bool":  Bool,
	"f32":   F32,
	"f64":   F64,
}

// ParseNumType resolves a type name to a NumType.
// Unsupported names are rejected here, at definition time, never at use time.
func ParseNumType(name string) (NumType, error) {
	t, ok := numTypeNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedNumType, name)
	}
	return t, nil
}

// String returns the definition-file name of the type.
func (t NumType) String() string {
	for name, nt := range numTypeNames {
		if nt == t {
			return name
		}
	}
	return fmt.Sprintf("NumType(%d)", uint8(t))
}

// GoType returns the Go type the facility generates for t.
func (t NumType) GoType() string {
	switch t {
	case U8:
		return "uint8"
	case U16:
		return "uint16"
	case U32:
		return "uint32"
	case U64:
		return "uint64"
	case Usize:
		return "uint"
	case I8:
		return "int8"
	case I16:
		return "int16"
	case I32:
		return "int32"
	case I64:
		return "int64"
	case Isize:
		return "int"
	case Bool:
		return "bool"
	case F32:
		return "float32"
	case F64:
		return "float64"
	default:
		panic("obf: unknown NumType")
	}
}

// Float returns the [1.0, 2.0) value derived from entropy for the float types.
// The mantissa is filled with the high entropy bits and the exponent is pinned to zero.
func (t NumType) Float(entropy uint64) float64 {
	switch t {
	case F32:
		return float64(math.Float32frombits(0x3f800000 | uint32(entropy)>>9))
	case F64:
		return math.Float64frombits(0x3ff0000000000000 | entropy>>12)
	default:
		panic("obf: Float called on integer NumType")
	}
}

// Literal renders the value derived from entropy as a Go literal for generated code.
func (t NumType) Literal(entropy uint64) string {
	switch t {
	case U8:
		return fmt.Sprintf("0x%02x", uint8(entropy))
	case U16:
		return fmt.Sprintf("0x%04x", uint16(entropy))
	case U32:
		return fmt.Sprintf("0x%08x", uint32(entropy))
	case U64, Usize:
		return fmt.Sprintf("0x%016x", entropy)
	case I8:
		return strconv.FormatInt(int64(int8(entropy)), 10)
	case I16:
		return strconv.FormatInt(int64(int16(entropy)), 10)
	case I32:
		return strconv.FormatInt(int64(int32(entropy)), 10)
	case I64, Isize:
		return strconv.FormatInt(int64(entropy), 10)
	case Bool:
		return strconv.FormatBool(int64(entropy) >= 0)
	case F32:
		return strconv.FormatFloat(t.Float(entropy), 'g', -1, 32)
	case F64:
		return strconv.FormatFloat(t.Float(entropy), 'g', -1, 64)
	default:
		panic("obf: unknown NumType")
	}
}
