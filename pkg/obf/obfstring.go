package obf

// ObfString is an obfuscated byte-string constant: the decode key and the screened payload, exactly as baked into a binary.
// The zero value is an empty constant.
type ObfString struct {
	key  uint32
	data []byte
}

// NewObfString wraps an already-obfuscated payload with its key.
// This is the constructor used by generated code; the payload must not be mutated afterwards.
func NewObfString(key uint32, data []byte) ObfString {
	return ObfString{key: key, data: data}
}

// ObfuscateString screens s with the keystream expanded from key.
func ObfuscateString(key uint32, s string) ObfString {
	ks := KeystreamBytes(key, len(s))
	return ObfString{key: key, data: ObfuscateBytes([]byte(s), ks)}
}

// Key returns the decode key stored with the payload.
func (o ObfString) Key() uint32 {
	return o.key
}

// Data returns the obfuscated payload. Callers must treat it as read-only.
func (o ObfString) Data() []byte {
	return o.data
}

// Len returns the payload length in bytes, which equals the plain text length.
func (o ObfString) Len() int {
	return len(o.data)
}

// Deobfuscate regenerates the keystream and recovers the plain bytes into a fresh Buffer.
func (o ObfString) Deobfuscate() Buffer {
	ks := KeystreamBytes(o.key, len(o.data))
	return Buffer{data: DeobfuscateBytes(o.data, ks)}
}

// DeobfuscateTo recovers the plain bytes into dst and returns the filled prefix as a Buffer.
// It panics if dst is shorter than the payload, since that is a programming error at the call site.
// A dst shared across goroutines must be serialized by the caller.
func (o ObfString) DeobfuscateTo(dst []byte) Buffer {
	if len(dst) < len(o.data) {
		panic("obf: destination buffer too small for payload")
	}
	state := uint64(o.key)
	for i, b := range o.data {
		state = Mix(state)
		dst[i] = b ^ byte(state)
	}
	return Buffer{data: dst[:len(o.data)]}
}

// Equals reports whether candidate is the plain text of this constant.
// The keystream is re-derived on every call and the plain text is never materialized.
func (o ObfString) Equals(candidate string) bool {
	ks := KeystreamBytes(o.key, len(o.data))
	return EqualsBytes(o.data, ks, candidate)
}

// String renders the constant for debugging without revealing the plain text.
func (o ObfString) String() string {
	return "ObfString(****)"
}

// WideString is an obfuscated UTF-16 string constant: the decode key and the screened code units.
type WideString struct {
	key  uint32
	data []uint16
}

// NewWideString wraps an already-obfuscated code-unit payload with its key.
func NewWideString(key uint32, data []uint16) WideString {
	return WideString{key: key, data: data}
}

// ObfuscateWide converts s to UTF-16 and screens it with the keystream expanded from key.
func ObfuscateWide(key uint32, s string) WideString {
	wide := ToWide(s)
	ks := KeystreamWords(key, len(wide))
	return WideString{key: key, data: ObfuscateWords(wide, ks)}
}

// Key returns the decode key stored with the payload.
func (w WideString) Key() uint32 {
	return w.key
}

// Data returns the obfuscated payload. Callers must treat it as read-only.
func (w WideString) Data() []uint16 {
	return w.data
}

// Len returns the payload length in code units.
func (w WideString) Len() int {
	return len(w.data)
}

// Deobfuscate regenerates the keystream and recovers the code units into a fresh WideBuffer.
func (w WideString) Deobfuscate() WideBuffer {
	ks := KeystreamWords(w.key, len(w.data))
	return WideBuffer{data: DeobfuscateWords(w.data, ks)}
}

// DeobfuscateTo recovers the code units into dst and returns the filled prefix as a WideBuffer.
// It panics if dst is shorter than the payload.
func (w WideString) DeobfuscateTo(dst []uint16) WideBuffer {
	if len(dst) < len(w.data) {
		panic("obf: destination buffer too small for payload")
	}
	state := uint64(w.key)
	for i, u := range w.data {
		state = Mix(state)
		dst[i] = u ^ uint16(state)
	}
	return WideBuffer{data: dst[:len(w.data)]}
}

// Equals reports whether candidate is the code-unit sequence of this constant, re-deriving the keystream per call.
func (w WideString) Equals(candidate []uint16) bool {
	ks := KeystreamWords(w.key, len(w.data))
	return EqualsWords(w.data, ks, candidate)
}

// EqualsString reports whether the UTF-16 encoding of candidate matches this constant.
func (w WideString) EqualsString(candidate string) bool {
	return w.Equals(ToWide(candidate))
}

// String renders the constant for debugging without revealing the plain text.
func (w WideString) String() string {
	return "WideString(****)"
}
