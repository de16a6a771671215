package zkp

import (
	"io"
	"log"

	"zkgc/internal/sudoku"
)

// Round holds one round's Prover-side state: the fresh random relabeling of
// the solution committed this round, the randomness behind that commitment,
// and (once received) the verifier's challenge. It is discarded once the
// round's verdict arrives.
type Round struct {
	Index          int
	Mapping        sudoku.Mapping
	MappingRandom  sudoku.MapRandom
	MappedSolution sudoku.Grid
	BoardRandom    sudoku.BoardRandom
	BoardCommit    sudoku.BoardCommit
	MappingCommit  sudoku.MapCommit
	Challenge      Challenge
}

// Prover drives the prover side of a ZKP session over rw: announce the
// puzzle, then answer `rounds` challenges with a freshly re-randomized
// commitment each round.
type Prover struct {
	RW     io.ReadWriter
	Puzzle sudoku.Puzzle
	Mode   sudoku.HashMode
	Log    *log.Logger
}

// Run executes the full prover side of the session, returning nil only if
// the verifier's FinalResult accepted the proof.
func (p *Prover) Run() error {
	if err := SendProverMessage(p.RW, &ProverMessage{
		Kind: ProverPuzzle,
		Puzzle: &PuzzleMessage{
			Board: p.Puzzle.Board,
			Clues: countClues(p.Puzzle.Board),
		},
	}); err != nil {
		return err
	}

	ack, err := ReceiveVerifierMessage(p.RW)
	if err != nil {
		return err
	}
	if ack.Kind == VerifierAbort {
		return protocolErrorf("verifier aborted before puzzle ack: %s", safeString(ack.Abort))
	}
	if ack.Kind != VerifierPuzzleAck || ack.PuzzleAck == nil {
		return protocolErrorf("expected puzzle_ack, got %s", ack.Kind)
	}
	rounds := ack.PuzzleAck.Rounds
	p.logf("puzzle acknowledged, running %d rounds", rounds)

	for i := 0; i < rounds; i++ {
		accepted, err := p.runRound(i)
		if err != nil {
			return err
		}
		if !accepted {
			return protocolErrorf("round %d rejected", i)
		}
	}

	final, err := ReceiveVerifierMessage(p.RW)
	if err != nil {
		return err
	}
	if final.Kind != VerifierFinalResult || final.FinalResult == nil || !final.FinalResult.Accepted {
		return protocolErrorf("verifier did not accept the proof")
	}
	p.logf("proof accepted after %d rounds", rounds)
	return nil
}

func (p *Prover) runRound(index int) (bool, error) {
	round := p.newRound(index)

	if err := SendProverMessage(p.RW, &ProverMessage{
		Kind: ProverCommitment,
		Commitment: &CommitmentMessage{
			Round:         index,
			BoardCommit:   round.BoardCommit,
			MappingCommit: round.MappingCommit,
		},
	}); err != nil {
		return false, err
	}

	challengeMsg, err := ReceiveVerifierMessage(p.RW)
	if err != nil {
		return false, err
	}
	if challengeMsg.Kind == VerifierAbort {
		return false, protocolErrorf("verifier aborted round %d: %s", index, safeString(challengeMsg.Abort))
	}
	if challengeMsg.Kind != VerifierChallenge || challengeMsg.Challenge == nil {
		return false, protocolErrorf("expected challenge for round %d, got %s", index, challengeMsg.Kind)
	}
	round.Challenge = Challenge{Kind: challengeMsg.Challenge.Kind, Index: challengeMsg.Challenge.Index}

	response := p.respond(round)
	if err := SendProverMessage(p.RW, &ProverMessage{Kind: ProverResponse, Response: response}); err != nil {
		return false, err
	}

	result, err := ReceiveVerifierMessage(p.RW)
	if err != nil {
		return false, err
	}
	if result.Kind != VerifierRoundResult || result.RoundResult == nil {
		return false, protocolErrorf("expected round_result for round %d, got %s", index, result.Kind)
	}
	if !result.RoundResult.Accepted {
		p.logf("round %d rejected: %s", index, safeString(result.RoundResult.Reason))
	}
	return result.RoundResult.Accepted, nil
}

// newRound draws a fresh random relabeling of the solution and commits to
// it, matching the per-round re-randomization every interactive Sudoku ZKP
// construction relies on for soundness across repeated rounds.
func (p *Prover) newRound(index int) *Round {
	mapping := sudoku.RandomMapping()
	mapped := mapping.Apply(p.Puzzle.Solution)
	boardCommit, boardRandom := sudoku.CommitBoard(p.Mode, mapped)
	mappingCommit, mappingRandom := sudoku.CommitMapping(p.Mode, mapping)

	return &Round{
		Index:          index,
		Mapping:        mapping,
		MappingRandom:  mappingRandom,
		MappedSolution: mapped,
		BoardRandom:    boardRandom,
		BoardCommit:    boardCommit,
		MappingCommit:  mappingCommit,
	}
}

func (p *Prover) respond(round *Round) *ResponseMessage {
	switch round.Challenge.Kind {
	case ChallengeRow:
		i := round.Challenge.Index
		values := round.MappedSolution.Row(i)
		return &ResponseMessage{
			Round: round.Index,
			Kind:  RevealRow,
			Line:  &LineReveal{Index: i, Values: values, Randomness: round.BoardRandom[i]},
		}
	case ChallengeCol:
		i := round.Challenge.Index
		values := round.MappedSolution.Col(i)
		var randomness [9]uint64
		for r := 0; r < 9; r++ {
			randomness[r] = round.BoardRandom[r][i]
		}
		return &ResponseMessage{
			Round: round.Index,
			Kind:  RevealCol,
			Line:  &LineReveal{Index: i, Values: values, Randomness: randomness},
		}
	case ChallengeBox:
		i := round.Challenge.Index
		values := round.MappedSolution.Box(i)
		startRow, startCol := (i/3)*3, (i%3)*3
		var randomness [9]uint64
		k := 0
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				randomness[k] = round.BoardRandom[startRow+dr][startCol+dc]
				k++
			}
		}
		return &ResponseMessage{
			Round: round.Index,
			Kind:  RevealBox,
			Box:   &BoxReveal{Index: i, Values: values, Randomness: randomness},
		}
	default: // ChallengeClue
		var clues []ClueReveal
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if p.Puzzle.Board[r][c] == 0 {
					continue
				}
				clues = append(clues, ClueReveal{
					Row:         r,
					Col:         c,
					MappedValue: round.MappedSolution[r][c],
					Randomness:  round.BoardRandom[r][c],
				})
			}
		}
		return &ResponseMessage{
			Round: round.Index,
			Kind:  RevealClue,
			Clue: &ClueResponse{
				Mapping:           round.Mapping,
				MappingRandomness: round.MappingRandom,
				Clues:             clues,
			},
		}
	}
}

func (p *Prover) logf(format string, args ...any) {
	if p.Log != nil {
		p.Log.Printf("[Prover] "+format, args...)
	}
}

func countClues(g sudoku.Grid) int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

func safeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
