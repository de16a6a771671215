// Package gc implements the Half-Gate AND construction with free-XOR,
// transcribed from Rust's circuit/{utils,gates}.rs.
package gc

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// Block is a 128-bit wire label.
type Block [16]byte

// LSB reports the least significant bit of a label, used as the
// point-and-permute select bit.
func (b Block) LSB() bool {
	return b[0]&1 == 1
}

// XOR returns a ^ b.
func XOR(a, b Block) Block {
	var out Block
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// RandBlock draws a uniformly random label from crypto/rand.
func RandBlock() Block {
	var b Block
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("gc: crypto/rand failed: %v", err))
	}
	return b
}

// RandDelta draws a fresh free-XOR global offset with its LSB forced to 1,
// matching GarblerGate::new's `delta[0] |= 1`.
func RandDelta() Block {
	d := RandBlock()
	d[0] |= 1
	return d
}

// HashLabel is the Half-Gate gate hash H(label, gid, tweak): tweak is 0 for
// the left input wire and 1 for the right, domain-separating the two
// sub-hashes of a single AND gate. Output is truncated to 16 bytes.
func HashLabel(label Block, gid, tweak uint64) Block {
	h := sha256.New()
	h.Write(label[:])
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], gid)
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], tweak)
	h.Write(buf[:])

	var out Block
	copy(out[:], h.Sum(nil)[:16])
	return out
}
