package obf

import "unicode/utf16"

// Buffer is a recovered byte payload.
// It can only be produced by deobfuscating an ObfString, so its contents are the exact bytes that were originally screened.
type Buffer struct {
	data []byte
}

// Bytes returns the recovered bytes.
func (b Buffer) Bytes() []byte {
	return b.data
}

// Len returns the recovered length in bytes.
func (b Buffer) Len() int {
	return len(b.data)
}

// String returns the recovered text.
// The bytes are trusted to be the valid UTF-8 that went in; that trust is asserted unless the build opted out with the obfunchecked tag.
func (b Buffer) String() string {
	assertValidUTF8(b.data)
	return string(b.data)
}

// WideBuffer is a recovered UTF-16 payload.
type WideBuffer struct {
	data []uint16
}

// Units returns the recovered code units.
func (b WideBuffer) Units() []uint16 {
	return b.data
}

// Len returns the recovered length in code units.
func (b WideBuffer) Len() int {
	return len(b.data)
}

// String decodes the code units as UTF-16.
// Unpaired or invalid surrogates render as the Unicode replacement character rather than failing.
func (b WideBuffer) String() string {
	return string(utf16.Decode(b.data))
}
