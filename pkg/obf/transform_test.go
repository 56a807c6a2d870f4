package obf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTripBytes(t *testing.T) {
	texts := []string{
		"",
		"a",
		"Hello World",
		"This literal is very very very long to see if it correctly handles long strings",
		"Hello 🌍",
		"\"\n\t\\'\"",
	}
	keys := []uint32{0, 1, 0xdeadbeef, 0xffffffff}
	for _, s := range texts {
		for _, key := range keys {
			ks := KeystreamBytes(key, len(s))
			data := ObfuscateBytes([]byte(s), ks)
			assert.Equal(t, []byte(s), DeobfuscateBytes(data, ks))
			if len(s) > 0 {
				assert.NotEqual(t, []byte(s), data, "payload must not contain the plain text")
			}
		}
	}
}

func TestRoundTripWords(t *testing.T) {
	for _, s := range []string{"", "Wide\x00", "Hello 🌍"} {
		wide := ToWide(s)
		ks := KeystreamWords(77, len(wide))
		data := ObfuscateWords(wide, ks)
		assert.Equal(t, wide, DeobfuscateWords(data, ks))
	}
}

func TestEqualsBytes(t *testing.T) {
	const s = "some text"
	ks := KeystreamBytes(99, len(s))
	data := ObfuscateBytes([]byte(s), ks)

	assert.True(t, EqualsBytes(data, ks, s))
	assert.False(t, EqualsBytes(data, ks, "some texT"))
	assert.False(t, EqualsBytes(data, ks, "some tex"), "length mismatch is never equal")
	assert.False(t, EqualsBytes(data, ks, "some text "))
	assert.False(t, EqualsBytes(data, ks, ""))
}

func TestEqualsBytes_ZeroLength(t *testing.T) {
	assert.True(t, EqualsBytes(nil, nil, ""))
	assert.False(t, EqualsBytes(nil, nil, "x"))
}

func TestEqualsWords(t *testing.T) {
	wide := ToWide("Wide\x00")
	ks := KeystreamWords(7, len(wide))
	data := ObfuscateWords(wide, ks)

	assert.True(t, EqualsWords(data, ks, ToWide("Wide\x00")))
	assert.False(t, EqualsWords(data, ks, ToWide("Wide")))
	assert.False(t, EqualsWords(data, ks, ToWide("wide\x00")))
}

func TestObfuscate_LengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		ObfuscateBytes([]byte("abc"), KeystreamBytes(1, 2))
	})
	assert.Panics(t, func() {
		ObfuscateWords([]uint16{1, 2, 3}, KeystreamWords(1, 4))
	})
}
