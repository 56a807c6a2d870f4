package obf

import "os"

// EnvSeed is the environment variable consulted by SeedFromEnv.
const EnvSeed = "STROBF_SEED"

// Seed is the process-wide generation seed.
// It is fixed for the lifetime of a build; changing it invalidates every previously generated constant.
type Seed uint64

// NewSeed derives a Seed from an arbitrary phrase.
// The empty phrase is the fixed default used when no seed is configured.
func NewSeed(phrase string) Seed {
	return Seed(Mix(uint64(Hash(phrase))))
}

// SeedFromEnv derives a Seed from the STROBF_SEED environment variable, falling back to the fixed default when unset.
func SeedFromEnv() Seed {
	return NewSeed(os.Getenv(EnvSeed))
}

// Mix applies the splitmix64 finalizer to x.
// A one-bit change in x flips about half the output bits, which is what makes chained Entropy values look uniform.
// The constants and shift amounts must never change, or previously generated payloads can't be decoded.
func Mix(x uint64) uint64 {
	z := x + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Hash returns the DJB2-style hash of s, iterating its UTF-8 bytes.
func Hash(s string) uint32 {
	acc := uint32(3581)
	for i := 0; i < len(s); i++ {
		acc = acc*33 + uint32(s[i])
	}
	return acc
}

// Entropy folds the seed and a source location into a 64-bit value unique to that location.
// It is fully deterministic, so the generate and decode sides of a constant agree without communicating.
func Entropy(seed Seed, file string, line, column int) uint64 {
	return Mix(Mix(Mix(uint64(seed)^uint64(Hash(file)))^uint64(line)) ^ uint64(column))
}
