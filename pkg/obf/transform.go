package obf

// ObfuscateBytes XORs plain against keystream element-wise.
// The keystream must be exactly as long as the input; anything else is a programming error.
func ObfuscateBytes(plain, keystream []byte) []byte {
	if len(keystream) != len(plain) {
		panic("obf: keystream length does not match input length")
	}
	out := make([]byte, len(plain))
	for i := range plain {
		out[i] = plain[i] ^ keystream[i]
	}
	return out
}

// DeobfuscateBytes recovers the plain bytes from data.
// XOR is self-inverse, so this is the same transform as ObfuscateBytes.
func DeobfuscateBytes(data, keystream []byte) []byte {
	return ObfuscateBytes(data, keystream)
}

// EqualsBytes reports whether candidate is the plain text behind data without materializing it.
// The keystream is XOR-ed into the candidate position by position and compared against the stored payload.
func EqualsBytes(data, keystream []byte, candidate string) bool {
	if len(candidate) != len(data) {
		return false
	}
	for i := 0; i < len(data); i++ {
		if candidate[i]^keystream[i] != data[i] {
			return false
		}
	}
	return true
}

// ObfuscateWords XORs plain against keystream element-wise, 16 bits at a time.
func ObfuscateWords(plain, keystream []uint16) []uint16 {
	if len(keystream) != len(plain) {
		panic("obf: keystream length does not match input length")
	}
	out := make([]uint16, len(plain))
	for i := range plain {
		out[i] = plain[i] ^ keystream[i]
	}
	return out
}

// DeobfuscateWords recovers the plain code units from data.
func DeobfuscateWords(data, keystream []uint16) []uint16 {
	return ObfuscateWords(data, keystream)
}

// EqualsWords reports whether candidate is the code-unit sequence behind data without materializing it.
func EqualsWords(data, keystream, candidate []uint16) bool {
	if len(candidate) != len(data) {
		return false
	}
	for i := range data {
		if candidate[i]^keystream[i] != data[i] {
			return false
		}
	}
	return true
}
