// Package randutil centralizes the crypto/rand-backed randomness shared by
// the Sudoku generator, the commitment primitive, and the ZKP challenge
// sampler. Nothing in this package is protocol-specific.
package randutil

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Uint64 draws a uniform value in [1, 2^64-1], matching the original
// prototype's rand::Rng::random_range(1..=u64::MAX) used for commitment
// randomness.
func Uint64() uint64 {
	max := new(big.Int).SetUint64(^uint64(0))
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic(fmt.Sprintf("randutil: crypto/rand failed: %v", err))
	}
	return n.Uint64() + 1
}

// IntN returns a uniform value in [0, n).
func IntN(n int) int {
	if n <= 0 {
		panic("randutil: IntN requires n > 0")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("randutil: crypto/rand failed: %v", err))
	}
	return int(v.Int64())
}

// Shuffle performs an in-place Fisher-Yates shuffle using crypto/rand, the
// same algorithm the original Rust source gets for free from
// rand::seq::SliceRandom::shuffle.
func Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := IntN(i + 1)
		swap(i, j)
	}
}

// Perm returns a random permutation of [0, n).
func Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}
