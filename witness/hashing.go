package witness

import (
	"github.com/OneOfOne/xxhash"
	"github.com/amp-labs/amp-witness/hashing"
	"github.com/zeebo/xxh3"
)

// Hashing maps values of A to 64-bit hashes. Values considered equal by
// whatever Equating travels with it must hash the same.
type Hashing[A any] struct {
	Hash func(A) uint64
}

// NewHashing wraps hash.
func NewHashing[A any](hash func(A) uint64) Hashing[A] {
	return Hashing[A]{Hash: hash}
}

// XXH3 hashes strings with XXH3-64.
func XXH3() Hashing[string] {
	return NewHashing(xxh3.HashString)
}

// XXHash64 hashes strings with XXH64.
func XXHash64() Hashing[string] {
	return NewHashing(func(s string) uint64 {
		return xxhash.Checksum64([]byte(s))
	})
}

// HashingFromHashable lifts a type's own UpdateHash method into a witness,
// feeding it into an XXH3 hasher. A value whose UpdateHash fails hashes to
// 0.
func HashingFromHashable[T hashing.Hashable]() Hashing[T] {
	return NewHashing(func(v T) uint64 {
		h := xxh3.New()

		if err := v.UpdateHash(h); err != nil {
			return 0
		}

		return h.Sum64()
	})
}

// ContramapHashing derives a Hashing for B that hashes f(b).
func ContramapHashing[A, B any](h Hashing[A], f func(B) A) Hashing[B] {
	return NewHashing(func(b B) uint64 {
		return h.Hash(f(b))
	})
}
