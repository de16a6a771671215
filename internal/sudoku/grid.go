// Package sudoku generates Sudoku solutions and puzzles and commits to them
// cell-by-cell, mirroring Rust's sudoku_gen.rs and
// commit.rs but built around a fixed-size Grid instead of Vec<Vec<u8>>.
package sudoku

import (
	"zkgc/internal/randutil"
	"zkgc/pkg/constants"
)

// Grid is a 9x9 Sudoku board; 0 marks an unknown (blanked) cell.
type Grid [constants.GridSize][constants.GridSize]uint8

// Mapping is a digit permutation: Mapping[d] is what digit d (1..9) is
// relabeled to. Index 0 is unused, matching Rust's
// cast vector that keeps a throwaway slot 0.
type Mapping [constants.GridSize + 1]uint8

// Puzzle holds a generated Sudoku instance: the full solution, the
// clue-only puzzle derived from it, and a random digit mapping (cast). The
// ZKP session does not use this mapping; its prover draws a fresh one with
// RandomMapping every round.
type Puzzle struct {
	Solution Grid
	Board    Grid
	Mapping  Mapping
}

// Generate produces a fresh, randomly relabeled Sudoku solution, blanks all
// but clues cells to form the puzzle, and draws a fresh digit mapping.
// clues is clamped up to constants.MinClues, resolving the original
// prototype's inconsistency between its default of 30 and its otherwise
// unenforced clue count.
func Generate(clues int) Puzzle {
	if clues < constants.MinClues {
		clues = constants.MinClues
	}

	solution := baseSolution()
	solution = relabel(solution)

	board := blank(solution, clues)
	mapping := RandomMapping()

	return Puzzle{Solution: solution, Board: board, Mapping: mapping}
}

// baseSolution returns the canonical, unshuffled Latin-square solution,
// matching Rust's base_mod.
func baseSolution() Grid {
	var g Grid
	for row := 0; row < constants.GridSize; row++ {
		for col := 0; col < constants.GridSize; col++ {
			g[row][col] = uint8((row*3+row/3+col)%9 + 1)
		}
	}
	return g
}

// relabel applies a random band/stack permutation and digit relabeling to a
// valid solution, producing another valid solution indistinguishable from a
// uniformly random one among band/stack/digit symmetries. Matches the
// Rust's full_mod.
func relabel(g Grid) Grid {
	rowOrder := bandPermutation()
	colOrder := bandPermutation()
	digits := randutil.Perm(constants.GridSize)

	var digitMap [constants.GridSize + 1]uint8
	for i, d := range digits {
		digitMap[i+1] = uint8(d + 1)
	}

	var out Grid
	for rNew, rOld := range rowOrder {
		for cNew, cOld := range colOrder {
			out[rNew][cNew] = digitMap[g[rOld][cOld]]
		}
	}
	return out
}

// bandPermutation shuffles the three 3-row (or 3-column) bands and,
// independently, the three rows within each band, producing a full
// 0..8 row/column ordering that preserves Sudoku validity.
func bandPermutation() []int {
	bands := randutil.Perm(constants.BoxSize)
	order := make([]int, 0, constants.GridSize)
	for _, band := range bands {
		inner := randutil.Perm(constants.BoxSize)
		for _, i := range inner {
			order = append(order, band*constants.BoxSize+i)
		}
	}
	return order
}

// blank clears cells until only clues remain filled, matching the original
// prototype's gen_puzzle.
func blank(solution Grid, clues int) Grid {
	board := solution
	remove := constants.TotalCells - clues
	if remove < 0 {
		remove = 0
	}

	positions := randutil.Perm(constants.TotalCells)
	for _, pos := range positions[:remove] {
		board[pos/constants.GridSize][pos%constants.GridSize] = 0
	}
	return board
}

// RandomMapping draws a fresh random permutation of 1..9, matching the
// Rust's gen_cast. Exported so the ZKP session can draw a new
// mapping each round without regenerating an entire puzzle.
func RandomMapping() Mapping {
	var m Mapping
	for d := 1; d <= constants.GridSize; d++ {
		m[d] = uint8(d)
	}
	perm := randutil.Perm(constants.GridSize)
	for i, p := range perm {
		m[i+1] = uint8(p + 1)
	}
	return m
}

// Apply returns the grid obtained by relabeling every nonzero cell of g
// through m (the "mapped solution" M in the ZKP session).
func (m Mapping) Apply(g Grid) Grid {
	var out Grid
	for r := 0; r < constants.GridSize; r++ {
		for c := 0; c < constants.GridSize; c++ {
			if g[r][c] != 0 {
				out[r][c] = m[g[r][c]]
			}
		}
	}
	return out
}

// Row returns the nine cell values of row i.
func (g Grid) Row(i int) [constants.GridSize]uint8 {
	return g[i]
}

// Col returns the nine cell values of column i.
func (g Grid) Col(i int) [constants.GridSize]uint8 {
	var out [constants.GridSize]uint8
	for r := 0; r < constants.GridSize; r++ {
		out[r] = g[r][i]
	}
	return out
}

// Box returns the nine cell values of 3x3 box i (row-major, 0..8), matching
// Rust's get_a_cell box numbering.
func (g Grid) Box(i int) [constants.GridSize]uint8 {
	startRow := (i / constants.BoxSize) * constants.BoxSize
	startCol := (i % constants.BoxSize) * constants.BoxSize
	var out [constants.GridSize]uint8
	k := 0
	for dr := 0; dr < constants.BoxSize; dr++ {
		for dc := 0; dc < constants.BoxSize; dc++ {
			out[k] = g[startRow+dr][startCol+dc]
			k++
		}
	}
	return out
}
