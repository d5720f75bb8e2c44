package hashing

import (
	"errors"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBroken = errors.New("broken")

type brokenHashable struct{}

func (brokenHashable) UpdateHash(hash.Hash) error {
	return errBroken
}

func TestSha256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Hashable
		expected string
	}{
		{
			name:     "empty string",
			input:    HashableString(""),
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "simple string",
			input:    HashableString("hello"),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Sha256(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSha256_Int(t *testing.T) {
	t.Parallel()

	a, err := Sha256(HashableInt(8080))
	require.NoError(t, err)

	b, err := Sha256(HashableInt(8080))
	require.NoError(t, err)

	c, err := Sha256(HashableInt(5432))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestSha256_Error(t *testing.T) {
	t.Parallel()

	_, err := Sha256(brokenHashable{})
	require.ErrorIs(t, err, errBroken)
}
