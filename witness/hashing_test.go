package witness

import (
	"testing"

	"github.com/OneOfOne/xxhash"
	"github.com/amp-labs/amp-witness/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/zeebo/xxh3"
)

func TestHashing(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "Grand Carousel", "Spooky Hollow"} {
		assert.Equal(t, xxh3.HashString(s), XXH3().Hash(s))
		assert.Equal(t, xxhash.Checksum64([]byte(s)), XXHash64().Hash(s))
	}

	assert.NotEqual(t, XXH3().Hash("a"), XXH3().Hash("b"))
}

func TestHashingFromHashable(t *testing.T) {
	t.Parallel()

	h := HashingFromHashable[hashing.HashableString]()

	assert.Equal(t, h.Hash("Bumper Boats"), h.Hash("Bumper Boats"))
	assert.Equal(t, xxh3.HashString("Bumper Boats"), h.Hash("Bumper Boats"))

	ints := HashingFromHashable[hashing.HashableInt]()
	assert.Equal(t, ints.Hash(42), ints.Hash(42))
	assert.NotEqual(t, ints.Hash(42), ints.Hash(43))
}

func TestContramapHashing(t *testing.T) {
	t.Parallel()

	byHost := ContramapHashing(XXH3(), func(e endpoint) string { return e.Host })

	assert.Equal(t, byHost.Hash(endpoint{"h", 1}), byHost.Hash(endpoint{"h", 2}))
	assert.Equal(t, XXH3().Hash("h"), byHost.Hash(endpoint{"h", 1}))
}
