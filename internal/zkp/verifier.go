package zkp

import (
	"io"
	"log"

	"zkgc/internal/sudoku"
)

// Verifier drives the verifier side of a ZKP session over rw: receive the
// puzzle, run a fixed number of challenge-response rounds, and accept only
// if every round passes.
type Verifier struct {
	RW     io.ReadWriter
	Rounds int
	Mode   sudoku.HashMode
	Log    *log.Logger

	puzzle sudoku.Grid
}

// Run executes the full verifier side of the session and returns whether
// the proof was accepted.
func (v *Verifier) Run() (bool, error) {
	puzzleMsg, err := ReceiveProverMessage(v.RW)
	if err != nil {
		return false, err
	}
	if puzzleMsg.Kind == ProverAbort {
		return false, protocolErrorf("prover aborted before sending puzzle: %s", safeString(puzzleMsg.Abort))
	}
	if puzzleMsg.Kind != ProverPuzzle || puzzleMsg.Puzzle == nil {
		return false, protocolErrorf("expected puzzle, got %s", puzzleMsg.Kind)
	}
	v.puzzle = puzzleMsg.Puzzle.Board
	v.logf("received puzzle with %d clues", puzzleMsg.Puzzle.Clues)

	if err := SendVerifierMessage(v.RW, &VerifierMessage{
		Kind:      VerifierPuzzleAck,
		PuzzleAck: &PuzzleAck{Rounds: v.Rounds},
	}); err != nil {
		return false, err
	}

	for i := 0; i < v.Rounds; i++ {
		accepted, err := v.runRound(i)
		if err != nil {
			return false, err
		}
		if !accepted {
			_ = SendVerifierMessage(v.RW, &VerifierMessage{Kind: VerifierFinalResult, FinalResult: &FinalResult{Accepted: false}})
			return false, nil
		}
	}

	if err := SendVerifierMessage(v.RW, &VerifierMessage{Kind: VerifierFinalResult, FinalResult: &FinalResult{Accepted: true}}); err != nil {
		return false, err
	}
	v.logf("proof accepted after %d rounds", v.Rounds)
	return true, nil
}

func (v *Verifier) runRound(index int) (bool, error) {
	commitMsg, err := ReceiveProverMessage(v.RW)
	if err != nil {
		return false, err
	}
	if commitMsg.Kind == ProverAbort {
		return false, protocolErrorf("prover aborted round %d: %s", index, safeString(commitMsg.Abort))
	}
	if commitMsg.Kind != ProverCommitment || commitMsg.Commitment == nil {
		return false, protocolErrorf("expected commitment for round %d, got %s", index, commitMsg.Kind)
	}

	challenge := RandomChallenge()
	if err := SendVerifierMessage(v.RW, &VerifierMessage{
		Kind:      VerifierChallenge,
		Challenge: &ChallengeMessage{Round: index, Kind: challenge.Kind, Index: challenge.Index},
	}); err != nil {
		return false, err
	}

	responseMsg, err := ReceiveProverMessage(v.RW)
	if err != nil {
		return false, err
	}
	if responseMsg.Kind == ProverAbort {
		return false, protocolErrorf("prover aborted round %d: %s", index, safeString(responseMsg.Abort))
	}
	if responseMsg.Kind != ProverResponse || responseMsg.Response == nil {
		return false, protocolErrorf("expected response for round %d, got %s", index, responseMsg.Kind)
	}

	reason := v.check(commitMsg.Commitment, challenge, responseMsg.Response)
	accepted := reason == ""
	var reasonPtr *string
	if !accepted {
		reasonPtr = &reason
	}
	if err := SendVerifierMessage(v.RW, &VerifierMessage{
		Kind:        VerifierRoundResult,
		RoundResult: &RoundResult{Round: index, Accepted: accepted, Reason: reasonPtr},
	}); err != nil {
		return false, err
	}
	return accepted, nil
}

// check verifies a single round's response against its commitment and the
// challenge the verifier itself sampled, returning "" on success or a
// human-readable rejection reason. The two reasons below ("Sudoku
// constraint" and "Clue mapping inconsistent") are the two ways a
// cheating prover's commitment can fail an honest challenge.
func (v *Verifier) check(commit *CommitmentMessage, challenge Challenge, resp *ResponseMessage) string {
	if resp.Round != commit.Round {
		return "round mismatch between commitment and response"
	}

	switch challenge.Kind {
	case ChallengeRow:
		if resp.Kind != RevealRow || resp.Line == nil || resp.Line.Index != challenge.Index {
			return "response does not match the row challenge"
		}
		return v.checkLine(commit.BoardCommit[challenge.Index], resp.Line.Values, resp.Line.Randomness)

	case ChallengeCol:
		if resp.Kind != RevealCol || resp.Line == nil || resp.Line.Index != challenge.Index {
			return "response does not match the column challenge"
		}
		var colCommit [9]sudoku.Commitment
		for r := 0; r < 9; r++ {
			colCommit[r] = commit.BoardCommit[r][challenge.Index]
		}
		return v.checkLine(colCommit, resp.Line.Values, resp.Line.Randomness)

	case ChallengeBox:
		if resp.Kind != RevealBox || resp.Box == nil || resp.Box.Index != challenge.Index {
			return "response does not match the box challenge"
		}
		startRow, startCol := (challenge.Index/3)*3, (challenge.Index%3)*3
		var boxCommit [9]sudoku.Commitment
		k := 0
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				boxCommit[k] = commit.BoardCommit[startRow+dr][startCol+dc]
				k++
			}
		}
		return v.checkLine(boxCommit, resp.Box.Values, resp.Box.Randomness)

	default: // ChallengeClue
		if resp.Kind != RevealClue || resp.Clue == nil {
			return "response does not match the clue challenge"
		}
		return v.checkClue(commit, resp.Clue)
	}
}

// checkLine verifies a revealed 9-cell line or box opens its commitments
// and is a permutation of 1..9, matching the digit-set + commitment checks
// Rust's check_line/check_cell compute and then discard.
func (v *Verifier) checkLine(cellCommit [9]sudoku.Commitment, values [9]uint8, randomness [9]uint64) string {
	if !sudoku.IsPermutationOfNine(values) {
		return "Sudoku constraint"
	}
	for i := 0; i < 9; i++ {
		if !sudoku.Verify(v.Mode, values[i], randomness[i], cellCommit[i]) {
			return "commitment mismatch"
		}
	}
	return ""
}

// checkClue verifies the revealed mapping opens the mapping commitment,
// the revealed mapping is consistent with the original puzzle's clue at
// each clue cell, and each clue cell's mapped value opens the matching
// board commitment.
func (v *Verifier) checkClue(commit *CommitmentMessage, clue *ClueResponse) string {
	if !sudoku.VerifyMapping(v.Mode, clue.Mapping, commit.MappingCommit, clue.MappingRandomness) {
		return "commitment mismatch"
	}

	seen := make(map[[2]int]bool, len(clue.Clues))
	for _, c := range clue.Clues {
		if c.Row < 0 || c.Row > 8 || c.Col < 0 || c.Col > 8 {
			return "clue position out of range"
		}
		seen[[2]int{c.Row, c.Col}] = true

		original := v.puzzle[c.Row][c.Col]
		if original == 0 {
			return "clue revealed at a non-clue cell"
		}
		if clue.Mapping[original] != c.MappedValue {
			return "Clue mapping inconsistent"
		}

		if !sudoku.Verify(v.Mode, c.MappedValue, c.Randomness, v.boardCommitCell(commit, c.Row, c.Col)) {
			return "commitment mismatch"
		}
	}

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v.puzzle[r][c] != 0 && !seen[[2]int{r, c}] {
				return "missing clue reveal"
			}
		}
	}
	return ""
}

func (v *Verifier) boardCommitCell(commit *CommitmentMessage, row, col int) sudoku.Commitment {
	return commit.BoardCommit[row][col]
}

func (v *Verifier) logf(format string, args ...any) {
	if v.Log != nil {
		v.Log.Printf("[Verifier] "+format, args...)
	}
}
