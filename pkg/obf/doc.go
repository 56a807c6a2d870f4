/*
Package obf implements deterministic obfuscation of string constants so that the plain text never appears in a compiled binary's static data.

Note that this is NOT encryption, since it is trivially reversible and the decode key is stored right next to the payload.
This falls squarely under the obfuscation category, and its only goal is to defeat casual static analysis like running strings over a binary.
It will not slow down a dedicated reverse engineer, and it must never be used to protect secrets.

# How it works:

Every obfuscated constant is a 32-bit key plus a payload of the same length as the source text, either bytes (UTF-8) or 16-bit words (UTF-16).
The payload is the source text XOR-ed against a keystream expanded from the key with the splitmix64 mixing function, one state advance per position.
Because the keystream is a pure function of the key and the length, the decode side regenerates it on every use and never stores it.

Keys are not random at runtime.
The code generator derives each key from a build seed and the definition's source location (file, line, column), so two generation passes over the same source produce bit-identical output, while two different definitions of the same literal get unrelated keys.

# Important note:

Deobfuscation always produces a fresh buffer owned by the caller of that one use.
If an application instead decodes into a shared destination buffer with DeobfuscateTo, concurrent use of that buffer from multiple goroutines is a data race.
Callers reusing a destination buffer must serialize access to it themselves; this package does not.

Buffer.String assumes the recovered bytes are the exact UTF-8 input that was obfuscated.
It validates that assumption and panics on failure, since an invalid recovery means the key or payload was corrupted.
Builds that have proven their call sites correct can opt out of the validation with the "obfunchecked" build tag.

# General guidelines:
  - Treat the deobfuscated value as scoped to the statement that produced it; don't squirrel it away, or the plain text lives in memory for longer than needed.
  - Use Equals for comparisons so the plain text is never materialized at all.
  - Changing the build seed changes every key, which is the intent: re-generate, don't try to decode old payloads with a new seed.
  - The key is a decoding parameter, not a secret. Anyone with the binary has it.
*/
package obf
