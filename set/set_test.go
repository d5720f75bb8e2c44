package set

import (
	"strings"
	"testing"

	"github.com/amp-labs/amp-witness/witness"
	"github.com/stretchr/testify/assert"
)

func exact() *Set[string] {
	return New(witness.XXH3(), witness.Equal[string]())
}

func caseInsensitive() *Set[string] {
	return New(witness.ContramapHashing(witness.XXH3(), strings.ToLower), witness.EqualFold())
}

// Every value lands in one bucket.
func colliding() *Set[string] {
	return New(witness.NewHashing(func(string) uint64 { return 7 }), witness.Equal[string]())
}

func TestSet_AddRemove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		newSet func() *Set[string]
	}{
		{name: "xxh3", newSet: exact},
		{name: "colliding", newSet: colliding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := tt.newSet()

			assert.True(t, s.Add("Bumper Boats"))
			assert.False(t, s.Add("Bumper Boats"))
			assert.True(t, s.Add("Grand Carousel"))
			assert.Equal(t, 2, s.Size())
			assert.True(t, s.Contains("Grand Carousel"))
			assert.False(t, s.Contains("Spooky Hollow"))

			assert.True(t, s.Remove("Bumper Boats"))
			assert.False(t, s.Remove("Bumper Boats"))
			assert.Equal(t, 1, s.Size())
			assert.Equal(t, []string{"Grand Carousel"}, s.Entries())

			s.Clear()
			assert.Equal(t, 0, s.Size())
			assert.Empty(t, s.Entries())
		})
	}
}

func TestSet_WitnessesDecideEquality(t *testing.T) {
	t.Parallel()

	words := []string{"Tea Cups", "TEA CUPS", "tea cups", "Carousel"}

	assert.Equal(t, 4, Of(witness.XXH3(), witness.Equal[string](), words...).Size())

	folded := caseInsensitive()
	folded.AddAll(words...)
	assert.Equal(t, 2, folded.Size())
	assert.True(t, folded.Contains("CAROUSEL"))
	assert.Equal(t, []string{"Carousel", "Tea Cups"}, folded.Sorted(witness.Natural[string]()))
}

func TestSet_UnionIntersection(t *testing.T) {
	t.Parallel()

	a := Of(witness.XXH3(), witness.Equal[string](), "a", "b", "c")
	b := Of(witness.XXH3(), witness.Equal[string](), "b", "c", "d")

	assert.Equal(t, []string{"a", "b", "c", "d"}, a.Union(b).Sorted(witness.Natural[string]()))
	assert.Equal(t, []string{"b", "c"}, a.Intersection(b).Sorted(witness.Natural[string]()))

	// Inputs are unchanged.
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, 3, b.Size())
}

func TestSet_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	s := Of(witness.XXH3(), witness.Equal[string](), "a")
	c := s.Clone()
	c.Add("b")

	assert.Equal(t, 1, s.Size())
	assert.Equal(t, 2, c.Size())
}

func TestUnionMonoid(t *testing.T) {
	t.Parallel()

	m := UnionMonoid(witness.XXH3(), witness.Equal[string]())
	sets := []*Set[string]{
		Of(witness.XXH3(), witness.Equal[string](), "x"),
		Of(witness.XXH3(), witness.Equal[string](), "y", "x"),
		Of(witness.XXH3(), witness.Equal[string](), "z"),
	}

	assert.Equal(t, []string{"x", "y", "z"}, witness.Fold(sets, m).Sorted(witness.Natural[string]()))
	assert.Equal(t, 0, witness.Fold(nil, m).Size())
}
