package sudoku

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"zkgc/pkg/constants"
)

func TestGenerateClampsClues(t *testing.T) {
	p := Generate(5)
	clues := 0
	for r := 0; r < constants.GridSize; r++ {
		for c := 0; c < constants.GridSize; c++ {
			if p.Board[r][c] != 0 {
				clues++
			}
		}
	}
	if clues < constants.MinClues {
		t.Fatalf("got %d clues, want at least %d", clues, constants.MinClues)
	}
}

func TestGenerateBoardIsSubsetOfSolution(t *testing.T) {
	p := Generate(40)
	for r := 0; r < constants.GridSize; r++ {
		for c := 0; c < constants.GridSize; c++ {
			if p.Board[r][c] != 0 && p.Board[r][c] != p.Solution[r][c] {
				t.Fatalf("board[%d][%d]=%d disagrees with solution %d", r, c, p.Board[r][c], p.Solution[r][c])
			}
		}
	}
}

func TestMappingApplyRoundTrip(t *testing.T) {
	p := Generate(30)
	mapped := p.Mapping.Apply(p.Solution)
	for r := 0; r < constants.GridSize; r++ {
		for c := 0; c < constants.GridSize; c++ {
			if mapped[r][c] != p.Mapping[p.Solution[r][c]] {
				t.Fatalf("mapped[%d][%d] does not match mapping application", r, c)
			}
		}
	}
}

// TestSolutionRowsColsBoxesArePermutations checks the generated solution is
// a valid Sudoku grid across many random generations (a property the
// band/stack/digit relabeling must preserve).
func TestSolutionRowsColsBoxesArePermutations(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("every row, column, and box of a generated solution is a permutation of 1..9", prop.ForAll(
		func(clues int) bool {
			p := Generate(clues)
			for i := 0; i < constants.GridSize; i++ {
				if !IsPermutationOfNine(p.Solution.Row(i)) {
					return false
				}
				if !IsPermutationOfNine(p.Solution.Col(i)) {
					return false
				}
				if !IsPermutationOfNine(p.Solution.Box(i)) {
					return false
				}
			}
			return true
		},
		gen.IntRange(30, 60),
	))

	properties.TestingRun(t)
}
