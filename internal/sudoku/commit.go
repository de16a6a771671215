package sudoku

import (
	"crypto/sha256"
	"encoding/binary"
	"hash/fnv"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"zkgc/internal/randutil"
	"zkgc/pkg/constants"
)

// HashMode selects the digest used by the commitment primitive. The
// recommended default is SHA-256 truncated to 128 bits; HashFNV reproduces
// the non-cryptographic std::hash::DefaultHasher digest for demonstration
// purposes only.
type HashMode int

const (
	HashSHA256 HashMode = iota
	HashFNV
)

// Commitment is a fixed-width commitment digest. In HashFNV mode only the
// low 8 bytes are meaningful; the high 8 bytes are zero.
type Commitment [constants.CommitDigestSize]byte

// Commit computes the commitment digest for a single (value, randomness)
// pair, matching Rust's per-cell hash_input.hash(&mut
// hasher) call in both SHA-256 and legacy FNV form.
func Commit(mode HashMode, value uint8, randomness uint64) Commitment {
	switch mode {
	case HashFNV:
		h := fnv.New64a()
		h.Write([]byte{value})
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], randomness)
		h.Write(buf[:])
		var c Commitment
		binary.BigEndian.PutUint64(c[8:], h.Sum64())
		return c
	default:
		h := sha256.New()
		h.Write([]byte{value})
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], randomness)
		h.Write(buf[:])
		var c Commitment
		copy(c[:], h.Sum(nil)[:constants.CommitDigestSize])
		return c
	}
}

// Verify checks whether (value, randomness) opens commitment c under mode.
func Verify(mode HashMode, value uint8, randomness uint64, c Commitment) bool {
	return Commit(mode, value, randomness) == c
}

// BoardRandom holds the per-cell randomness used to commit a Grid.
type BoardRandom [constants.GridSize][constants.GridSize]uint64

// BoardCommit holds the per-cell commitment digests of a Grid.
type BoardCommit [constants.GridSize][constants.GridSize]Commitment

// CommitBoard commits to every cell of g independently, drawing fresh
// randomness per cell. Rows are committed in parallel via errgroup, mirroring
// Rust's whole-matrix commit() but fanned out locally
// across the 9 rows instead of processed as one sequential loop.
func CommitBoard(mode HashMode, g Grid) (BoardCommit, BoardRandom) {
	var commit BoardCommit
	var random BoardRandom

	var grp errgroup.Group
	for row := 0; row < constants.GridSize; row++ {
		row := row
		grp.Go(func() error {
			for col := 0; col < constants.GridSize; col++ {
				r := randutil.Uint64()
				random[row][col] = r
				commit[row][col] = Commit(mode, g[row][col], r)
			}
			return nil
		})
	}
	_ = grp.Wait() // cell commitment never returns an error; kept for the fan-out idiom

	return commit, random
}

// VerifyBoard checks that every cell of g opens its corresponding entry in
// commit under random.
func VerifyBoard(mode HashMode, g Grid, commit BoardCommit, random BoardRandom) bool {
	for row := 0; row < constants.GridSize; row++ {
		for col := 0; col < constants.GridSize; col++ {
			if !Verify(mode, g[row][col], random[row][col], commit[row][col]) {
				return false
			}
		}
	}
	return true
}

// MapRandom and MapCommit mirror BoardRandom/BoardCommit for a Mapping;
// index 0 is committed too for simplicity even though it is never opened.
type MapRandom [constants.GridSize + 1]uint64
type MapCommit [constants.GridSize + 1]Commitment

// CommitMapping commits to every entry of m.
func CommitMapping(mode HashMode, m Mapping) (MapCommit, MapRandom) {
	var commit MapCommit
	var random MapRandom
	for i := range m {
		r := randutil.Uint64()
		random[i] = r
		commit[i] = Commit(mode, m[i], r)
	}
	return commit, random
}

// VerifyMapping checks that every entry of m opens its corresponding entry
// in commit under random.
func VerifyMapping(mode HashMode, m Mapping, commit MapCommit, random MapRandom) bool {
	for i := range m {
		if !Verify(mode, m[i], random[i], commit[i]) {
			return false
		}
	}
	return true
}

// IsPermutationOfNine reports whether values is exactly the digit set
// {1..9}, using a bitset population check in place of Rust's
// sort-then-compare (verifier.rs's check_line).
func IsPermutationOfNine(values [constants.GridSize]uint8) bool {
	seen := bitset.New(constants.GridSize + 1)
	for _, v := range values {
		if v < 1 || v > constants.GridSize {
			return false
		}
		seen.Set(uint(v))
	}
	return seen.Count() == constants.GridSize
}

// MissingDigits returns, in ascending order, the digits in {1..9} absent
// from values. Used to build a precise rejection reason when a revealed
// line or box fails IsPermutationOfNine.
func MissingDigits(values [constants.GridSize]uint8) []uint8 {
	present := bitset.New(constants.GridSize + 1)
	for _, v := range values {
		if v >= 1 && v <= constants.GridSize {
			present.Set(uint(v))
		}
	}
	var missing []uint8
	for d := uint8(1); d <= constants.GridSize; d++ {
		if !present.Test(uint(d)) {
			missing = append(missing, d)
		}
	}
	slices.Sort(missing)
	return missing
}
