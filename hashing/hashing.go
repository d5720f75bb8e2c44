// Package hashing lets values feed their own contents into a hash.Hash.
// See witness.HashingFromHashable for the value form.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
)

// Hashable is implemented by types that can write themselves into a hash.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the hex-encoded SHA-256 digest of hashable.
func Sha256(hashable Hashable) (string, error) {
	h := sha256.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

type HashableString string

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

type HashableInt int

func (i HashableInt) UpdateHash(h hash.Hash) error {
	return binary.Write(h, binary.LittleEndian, int64(i))
}
