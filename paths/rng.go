// Random sources for Sample.
//
// Sample never reaches for a global generator: callers pass a Source
// explicitly, so a fixed seed reproduces the same path on every platform.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one *rand.Rand
//     across goroutines; use DeriveSource for independent streams.
package paths

import "math/rand"

// Source yields uniform draws in [0,1). *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// defaultSeed is used when callers pass seed==0 or a nil Source.
const defaultSeed int64 = 1

// NewSource returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSource creates an independent deterministic stream from a parent
// seed and a stream identifier; session derives one stream per animation run.
// The seed is mixed with a SplitMix64 finalizer so neighbouring stream ids
// produce unrelated sequences.
//
// Complexity: O(1).
func DeriveSource(parent int64, stream uint64) *rand.Rand {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return NewSource(int64(x))
}
