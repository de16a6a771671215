package zkp

import "zkgc/internal/sudoku"

// The prover/verifier message types below are Go's rendition of Rust's
// tagged enums (ProverMessage, VerifierMessage, RevealPayload in
// lab04/zkp/src/networks.rs). Go has no sum types, so each message
// carries a Kind discriminator plus one
// populated optional payload field per variant.

// PuzzleMessage is the prover's opening announcement of its puzzle.
type PuzzleMessage struct {
	Board sudoku.Grid `cbor:"board"`
	Clues int         `cbor:"clues"`
}

// CommitmentMessage is the prover's per-round commitment to its mapped
// solution board and its digit mapping.
type CommitmentMessage struct {
	Round         int              `cbor:"round"`
	BoardCommit   sudoku.BoardCommit `cbor:"board_commit"`
	MappingCommit sudoku.MapCommit   `cbor:"mapping_commit"`
}

// LineReveal opens a full row or column of the mapped solution.
type LineReveal struct {
	Index      int                              `cbor:"index"`
	Values     [9]uint8                         `cbor:"values"`
	Randomness [9]uint64                        `cbor:"randomness"`
}

// BoxReveal opens a full 3x3 box of the mapped solution.
type BoxReveal struct {
	Index      int       `cbor:"index"`
	Values     [9]uint8  `cbor:"values"`
	Randomness [9]uint64 `cbor:"randomness"`
}

// ClueReveal opens one original clue cell's mapped value.
type ClueReveal struct {
	Row         int    `cbor:"row"`
	Col         int    `cbor:"col"`
	MappedValue uint8  `cbor:"mapped_value"`
	Randomness  uint64 `cbor:"randomness"`
}

// ClueResponse opens the full mapping and every clue cell, so the verifier
// can check the mapped clues agree with the original puzzle under the
// revealed mapping.
type ClueResponse struct {
	Mapping           sudoku.Mapping  `cbor:"mapping"`
	MappingRandomness sudoku.MapRandom `cbor:"mapping_randomness"`
	Clues             []ClueReveal    `cbor:"clues"`
}

// RevealKind discriminates ResponseMessage's payload.
type RevealKind string

const (
	RevealRow   RevealKind = "row"
	RevealCol   RevealKind = "col"
	RevealBox   RevealKind = "box"
	RevealClue  RevealKind = "clue"
)

// ResponseMessage is the prover's reply to a single round's challenge.
type ResponseMessage struct {
	Round int        `cbor:"round"`
	Kind  RevealKind `cbor:"kind"`
	Line  *LineReveal   `cbor:"line,omitempty"`
	Box   *BoxReveal    `cbor:"box,omitempty"`
	Clue  *ClueResponse `cbor:"clue,omitempty"`
}

// ProverKind discriminates ProverMessage's payload.
type ProverKind string

const (
	ProverPuzzle     ProverKind = "puzzle"
	ProverCommitment ProverKind = "commitment"
	ProverResponse   ProverKind = "response"
	ProverAbort      ProverKind = "abort"
)

// ProverMessage is every message shape the prover may send.
type ProverMessage struct {
	Kind       ProverKind         `cbor:"kind"`
	Puzzle     *PuzzleMessage     `cbor:"puzzle,omitempty"`
	Commitment *CommitmentMessage `cbor:"commitment,omitempty"`
	Response   *ResponseMessage   `cbor:"response,omitempty"`
	Abort      *string            `cbor:"abort,omitempty"`
}

// ChallengeMessage is the verifier's per-round challenge.
type ChallengeMessage struct {
	Round int           `cbor:"round"`
	Kind  ChallengeKind `cbor:"kind"`
	Index int           `cbor:"index"`
}

// RoundResult is the verifier's verdict on a single round.
type RoundResult struct {
	Round    int     `cbor:"round"`
	Accepted bool    `cbor:"accepted"`
	Reason   *string `cbor:"reason,omitempty"`
}

// FinalResult is the verifier's verdict on the whole session.
type FinalResult struct {
	Accepted bool `cbor:"accepted"`
}

// VerifierKind discriminates VerifierMessage's payload.
type VerifierKind string

const (
	VerifierPuzzleAck   VerifierKind = "puzzle_ack"
	VerifierChallenge   VerifierKind = "challenge"
	VerifierRoundResult VerifierKind = "round_result"
	VerifierFinalResult VerifierKind = "final_result"
	VerifierAbort       VerifierKind = "abort"
)

// PuzzleAck acknowledges the puzzle and fixes the round count for the
// session.
type PuzzleAck struct {
	Rounds int `cbor:"rounds"`
}

// VerifierMessage is every message shape the verifier may send.
type VerifierMessage struct {
	Kind        VerifierKind      `cbor:"kind"`
	PuzzleAck   *PuzzleAck        `cbor:"puzzle_ack,omitempty"`
	Challenge   *ChallengeMessage `cbor:"challenge,omitempty"`
	RoundResult *RoundResult      `cbor:"round_result,omitempty"`
	FinalResult *FinalResult      `cbor:"final_result,omitempty"`
	Abort       *string           `cbor:"abort,omitempty"`
}
