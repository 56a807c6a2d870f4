package obf

// KeystreamBytes expands key into length single-byte sub-keys.
// The same (key, length) always yields the same sequence, and a shorter keystream is a prefix of any longer one for the same key.
func KeystreamBytes(key uint32, length int) []byte {
	ks := make([]byte, length)
	state := uint64(key)
	for i := range ks {
		state = Mix(state)
		ks[i] = byte(state)
	}
	return ks
}

// KeystreamWords expands key into length 16-bit sub-keys.
// It walks the same state sequence as KeystreamBytes, truncating to 16 bits instead of 8.
func KeystreamWords(key uint32, length int) []uint16 {
	ks := make([]uint16, length)
	state := uint64(key)
	for i := range ks {
		state = Mix(state)
		ks[i] = uint16(state)
	}
	return ks
}
