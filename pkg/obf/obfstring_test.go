package obf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObfString_RoundTrip(t *testing.T) {
	const text = "Hello World"
	o := ObfuscateString(0xabad1dea, text)
	assert.Equal(t, text, o.Deobfuscate().String())
	assert.Equal(t, uint32(0xabad1dea), o.Key())
	assert.NotContains(t, string(o.Data()), text)
}

func TestObfString_Empty(t *testing.T) {
	o := ObfuscateString(1, "")
	assert.Equal(t, 0, o.Len())
	assert.Equal(t, "", o.Deobfuscate().String())
	assert.True(t, o.Equals(""))
	assert.False(t, o.Equals("x"))
}

func TestObfString_Equals(t *testing.T) {
	const text = "This literal is very very very long to see if it correctly handles long strings"
	o := ObfuscateString(5, text)
	assert.True(t, o.Equals(text))
	assert.False(t, o.Equals(text+"!"))
	assert.False(t, o.Equals(text[:len(text)-1]))
	assert.False(t, o.Equals(strings.ToUpper(text)))
}

func TestObfString_DeobfuscateTo(t *testing.T) {
	const text = "hello"
	o := ObfuscateString(9, text)

	buf := make([]byte, 16)
	recovered := o.DeobfuscateTo(buf)
	assert.Equal(t, text, recovered.String())
	assert.Equal(t, len(text), recovered.Len())

	assert.Panics(t, func() {
		o.DeobfuscateTo(make([]byte, len(text)-1))
	}, "too small destination is a programming error")
}

func TestObfString_ReconstructedFromParts(t *testing.T) {
	// Simulates the generated-code path: key and payload baked in, decode on use.
	orig := ObfuscateString(0x1234, "baked in")
	o := NewObfString(orig.Key(), orig.Data())
	assert.Equal(t, "baked in", o.Deobfuscate().String())
}

func TestObfString_StringDoesNotLeak(t *testing.T) {
	o := ObfuscateString(3, "super hidden")
	assert.NotContains(t, o.String(), "super hidden")
}

func TestWideString_RoundTrip(t *testing.T) {
	const text = "Hello 🌍"
	w := ObfuscateWide(0xbeef, text)
	assert.Equal(t, ToWide(text), w.Deobfuscate().Units())
	assert.Equal(t, text, w.Deobfuscate().String())
}

func TestWideString_Equals(t *testing.T) {
	w := ObfuscateWide(11, "Wide\x00")
	assert.True(t, w.Equals(ToWide("Wide\x00")))
	assert.True(t, w.EqualsString("Wide\x00"))
	assert.False(t, w.EqualsString("Wide"))
	assert.False(t, w.Equals(nil))
}

func TestWideString_DeobfuscateTo(t *testing.T) {
	w := ObfuscateWide(2, "abc")
	buf := make([]uint16, 3)
	assert.Equal(t, "abc", w.DeobfuscateTo(buf).String())
	assert.Panics(t, func() {
		w.DeobfuscateTo(make([]uint16, 2))
	})
}

func TestBuffer_InvalidRecoveryPanics(t *testing.T) {
	// A wrong key produces bytes that almost certainly aren't valid UTF-8.
	orig := ObfuscateString(100, "🌍🌍🌍🌍🌍🌍")
	corrupted := NewObfString(101, orig.Data())
	buf := corrupted.Deobfuscate()
	assert.Panics(t, func() {
		_ = buf.String()
	}, "recovery with the wrong key must fail validation in checked builds")
	assert.Len(t, buf.Bytes(), orig.Len(), "raw access stays available")
}

func TestWideBuffer_InvalidSurrogateRendersReplacement(t *testing.T) {
	ks := KeystreamWords(8, 3)
	data := ObfuscateWords([]uint16{'a', 0xd800, 'b'}, ks) // unpaired high surrogate
	buf := NewWideString(8, data).Deobfuscate()
	assert.Equal(t, "a�b", buf.String(), "invalid surrogates render as the replacement character")
}
