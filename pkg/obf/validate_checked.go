//go:build !obfunchecked

package obf

import "unicode/utf8"

// assertValidUTF8 panics when a recovered payload is not valid UTF-8, which means the key or payload was corrupted.
// Build with the obfunchecked tag to skip the check.
func assertValidUTF8(data []byte) {
	if !utf8.Valid(data) {
		panic("obf: recovered payload is not valid UTF-8, key or payload is corrupted")
	}
}
