package obf

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumType(t *testing.T) {
	for name := range numTypeNames {
		nt, err := ParseNumType(name)
		assert.NoError(t, err)
		assert.Equal(t, name, nt.String())
		assert.NotEmpty(t, nt.GoType())
	}
}

func TestParseNumType_Unsupported(t *testing.T) {
	for _, name := range []string{"u128", "string", "", "U8", "float"} {
		_, err := ParseNumType(name)
		assert.ErrorIs(t, err, ErrUnsupportedNumType, "%q must be rejected at definition time", name)
	}
}

func TestNumType_FloatRange(t *testing.T) {
	seed := NewSeed("float range")
	e := uint64(seed)
	for i := 0; i < 1000; i++ {
		e = Mix(e)
		f32 := F32.Float(e)
		f64 := F64.Float(e)
		assert.GreaterOrEqual(t, f32, 1.0)
		assert.Less(t, f32, 2.0)
		assert.GreaterOrEqual(t, f64, 1.0)
		assert.Less(t, f64, 2.0)
	}
}

func TestNumType_Literal(t *testing.T) {
	assert.Equal(t, "0xef", U8.Literal(0xdeadbeef))
	assert.Equal(t, "0xbeef", U16.Literal(0xdeadbeef))
	assert.Equal(t, "0xdeadbeef", U32.Literal(0xdeadbeef))
	assert.Equal(t, "0x00000000deadbeef", U64.Literal(0xdeadbeef))
	assert.Equal(t, "-1", I8.Literal(0xff))
	assert.Equal(t, "-1", I64.Literal(0xffffffffffffffff))
	assert.Equal(t, "true", Bool.Literal(1))
	assert.Equal(t, "false", Bool.Literal(0x8000000000000000))
}

func TestNumType_FloatLiteralRoundTrips(t *testing.T) {
	e := Mix(42)
	f64lit := F64.Literal(e)
	parsed, err := strconv.ParseFloat(f64lit, 64)
	assert.NoError(t, err)
	assert.Equal(t, F64.Float(e), parsed)

	f32lit := F32.Literal(e)
	parsed32, err := strconv.ParseFloat(f32lit, 32)
	assert.NoError(t, err)
	assert.Equal(t, F32.Float(e), parsed32)
}
