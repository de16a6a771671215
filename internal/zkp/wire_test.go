package zkp

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"zkgc/internal/sudoku"
)

func TestProverMessageWireRoundTrip(t *testing.T) {
	original := &ProverMessage{
		Kind: ProverCommitment,
		Commitment: &CommitmentMessage{
			Round: 3,
		},
	}
	board, random := sudoku.CommitBoard(sudoku.HashSHA256, sudoku.Generate(30).Solution)
	original.Commitment.BoardCommit = board
	mapCommit, _ := sudoku.CommitMapping(sudoku.HashSHA256, sudoku.RandomMapping())
	original.Commitment.MappingCommit = mapCommit
	_ = random

	var buf bytes.Buffer
	if err := SendProverMessage(&buf, original); err != nil {
		t.Fatalf("SendProverMessage failed: %v", err)
	}

	got, err := ReceiveProverMessage(&buf)
	if err != nil {
		t.Fatalf("ReceiveProverMessage failed: %v", err)
	}

	if diff := cmp.Diff(original, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestVerifierMessageWireRoundTrip(t *testing.T) {
	reason := "Sudoku constraint"
	original := &VerifierMessage{
		Kind: VerifierRoundResult,
		RoundResult: &RoundResult{
			Round:    5,
			Accepted: false,
			Reason:   &reason,
		},
	}

	var buf bytes.Buffer
	if err := SendVerifierMessage(&buf, original); err != nil {
		t.Fatalf("SendVerifierMessage failed: %v", err)
	}

	got, err := ReceiveVerifierMessage(&buf)
	if err != nil {
		t.Fatalf("ReceiveVerifierMessage failed: %v", err)
	}

	if diff := cmp.Diff(original, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
