// Package constants holds the small fixed values shared across the Sudoku
// ZKP and garbled-circuit subsystems: grid geometry, protocol defaults, and
// the retry/backoff schedule used by the CLIs.
package constants

import "time"

// Grid geometry.
const (
	GridSize   = 9
	BoxSize    = 3
	TotalCells = 81
)

// MinClues is the floor on the number of clues the prover's puzzle must
// retain; Rust's default of 30 is clamped up to this
// value when a caller asks for fewer.
const MinClues = 30

// DefaultRounds is how many challenge-response rounds a verifier runs when
// none is given explicitly.
const DefaultRounds = 10

// ZKP subsystem network defaults.
const (
	DefaultProverHost   = "127.0.0.1"
	DefaultProverPort   = "8899"
	DefaultVerifierBind = "0.0.0.0"
)

// Garbled-circuit/OT subsystem network defaults.
const (
	DefaultEvaluatorHost = "0.0.0.0"
	DefaultGCPort        = 8888
)

// ProverConnectRetries and ProverConnectBackoff govern the prover's
// initial connection attempts to the verifier.
const (
	ProverConnectRetries = 5
	ProverConnectBackoff = 1 * time.Second
)

// CommitDigestSize is the size in bytes of the default (SHA-256-truncated)
// commitment digest.
const CommitDigestSize = 16
