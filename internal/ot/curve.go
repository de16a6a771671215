// Package ot implements the Simplest OT (Chou-Orlandi) 1-out-of-2 oblivious
// transfer protocol over secp256k1, transcribed from the original
// prototype's simplest_ot/{utils,ot_sender,ot_receiver}.rs, which used the
// k256 crate for the same curve.
package ot

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Point is a secp256k1 group element in Jacobian form.
type Point = secp256k1.JacobianPoint

// Scalar is a secp256k1 scalar (an exponent mod the group order).
type Scalar = secp256k1.ModNScalar

// GenerateScalar draws a uniformly random scalar, matching
// generate_scalar's Scalar::random(&mut OsRng).
func GenerateScalar() (Scalar, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return Scalar{}, fmt.Errorf("ot: generate scalar: %w", err)
	}
	return priv.Key, nil
}

// Generator returns the secp256k1 base point G.
func Generator() Point {
	var g Point
	one := new(Scalar).SetInt(1)
	secp256k1.ScalarBaseMultNonConst(one, &g)
	return g
}

// ScalarMult returns scalar*point.
func ScalarMult(scalar *Scalar, point *Point) Point {
	var result Point
	secp256k1.ScalarMultNonConst(scalar, point, &result)
	return result
}

// ScalarBaseMult returns scalar*G.
func ScalarBaseMult(scalar *Scalar) Point {
	var result Point
	secp256k1.ScalarBaseMultNonConst(scalar, &result)
	return result
}

// AddPoints returns p1+p2.
func AddPoints(p1, p2 *Point) Point {
	var result Point
	secp256k1.AddNonConst(p1, p2, &result)
	return result
}

// NegatePoint returns -p.
func NegatePoint(p *Point) Point {
	affine := *p
	affine.ToAffine()
	var neg Point
	neg.X.Set(&affine.X)
	neg.Y.Set(&affine.Y).Negate(1).Normalize()
	neg.Z.SetInt(1)
	return neg
}

// SubPoints returns p1-p2, matching sub_points (Sender computing
// K1 = K0 - a*A).
func SubPoints(p1, p2 *Point) Point {
	neg := NegatePoint(p2)
	return AddPoints(p1, &neg)
}

// PointToBytes serializes a point to SEC1 compressed form (33 bytes),
// matching point_to_bytes.
func PointToBytes(p Point) []byte {
	affine := p
	affine.ToAffine()
	pub := secp256k1.NewPublicKey(&affine.X, &affine.Y)
	return pub.SerializeCompressed()
}

// BytesToPoint parses a SEC1-encoded point, validating it lies on the
// curve, matching bytes_to_point.
func BytesToPoint(data []byte) (Point, error) {
	pub, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return Point{}, fmt.Errorf("ot: invalid curve point: %w", err)
	}
	var p Point
	pub.AsJacobian(&p)
	return p, nil
}

// HashPoint is the OT key-derivation function KDF(K, seed, id) =
// SHA256(point_bytes(K) || seed || BE64(id)), matching hash_point.
func HashPoint(key Point, seed []byte, id uint64) []byte {
	h := sha256.New()
	h.Write(PointToBytes(key))
	h.Write(seed)
	var idBuf [8]byte
	binary.BigEndian.PutUint64(idBuf[:], id)
	h.Write(idBuf[:])
	return h.Sum(nil)
}

// SHA256 hashes data, matching utils::sha256 (used for the commit-then-open
// seed binding).
func SHA256(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// RandomSeed draws a 32-byte random seed, matching generate_random_seed.
func RandomSeed() ([]byte, error) {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("ot: generate seed: %w", err)
	}
	return seed, nil
}

// XORBytes XORs two equal-length byte slices, matching xor_bytes.
func XORBytes(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] ^ b[i]
	}
	return out
}
