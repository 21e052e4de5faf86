package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
)

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Shuffled returns a shuffled copy of slice.
func Shuffled[T any](r *rand.Rand, slice []T) []T {
	shuffled := make([]T, len(slice))
	copy(shuffled, slice)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// NewSeed draws a seed for a pseudo-random source from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewRand returns a source seeded with seed, or with a fresh crypto seed when
// seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			panic(err)
		}
	}
	return rand.New(rand.NewSource(seed))
}
