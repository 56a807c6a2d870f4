package obf

const replacementChar = 0xfffd

// WideLen returns the number of UTF-16 code units needed to encode s.
// It runs the same decode loop as ToWide so callers can size a destination up front.
func WideLen(s string) int {
	n := 0
	for i := 0; i < len(s); {
		scalar, size := decodeScalar(s, i)
		i += size
		if scalar >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// ToWide encodes s as UTF-16 code units, emitting a surrogate pair for every scalar at or above 0x10000.
func ToWide(s string) []uint16 {
	out := make([]uint16, 0, WideLen(s))
	for i := 0; i < len(s); {
		scalar, size := decodeScalar(s, i)
		i += size
		if scalar >= 0x10000 {
			out = append(out, uint16(0xd800+(scalar-0x10000)/0x400), uint16(0xdc00+(scalar-0x10000)%0x400))
		} else {
			out = append(out, uint16(scalar))
		}
	}
	return out
}

// decodeScalar reads one UTF-8 sequence starting at s[i] and returns the scalar and the bytes consumed.
// Source text is expected to be valid UTF-8 already; an invalid or truncated sequence decodes as U+FFFD consuming one byte, so both ToWide and WideLen stay total and agree with each other.
func decodeScalar(s string, i int) (uint32, int) {
	b := s[i]
	switch {
	case b&0x80 == 0x00:
		return uint32(b), 1
	case b&0xe0 == 0xc0:
		if i+2 > len(s) {
			return replacementChar, 1
		}
		return uint32(b&0x1f)<<6 | uint32(s[i+1]&0x3f), 2
	case b&0xf0 == 0xe0:
		if i+3 > len(s) {
			return replacementChar, 1
		}
		return uint32(b&0x0f)<<12 | uint32(s[i+1]&0x3f)<<6 | uint32(s[i+2]&0x3f), 3
	case b&0xf8 == 0xf0:
		if i+4 > len(s) {
			return replacementChar, 1
		}
		return uint32(b&0x07)<<18 | uint32(s[i+1]&0x3f)<<12 | uint32(s[i+2]&0x3f)<<6 | uint32(s[i+3]&0x3f), 4
	default:
		return replacementChar, 1
	}
}
