//go:build obfunchecked

package obf

// assertValidUTF8 is a no-op in unchecked builds.
// The obfunchecked tag is an explicit opt-in: recovered payloads are assumed to be the valid UTF-8 that was originally screened.
func assertValidUTF8(data []byte) {}
