// Package solvability implements the parity check that rejects
// unreachable (start, goal) pairs before any search begins.
//
// A classic 15-puzzle-style parity argument: the permutation parity of
// the tiles, adjusted for the empty cell's row on even-sided boards, is
// invariant under any legal move. Two boards are mutually reachable iff
// they agree on this parity.
package solvability

import "github.com/roman-hakh/npuzzle/board"

// IsSolvable reports whether goal is reachable from start on a grid of
// side n, per the parity invariant of sliding-tile puzzles:
//
//  1. inv(b) = number of pairs (i<j) with b[i] > b[j], both non-zero.
//  2. For odd n, parity(b) = inv(b) mod 2.
//     For even n, parity(b) = (inv(b) + row_of_zero(b)) mod 2,
//     row_of_zero being 0-based from the top.
//  3. start and goal are mutually reachable iff their parities match.
//
// Complexity: O(L^2), L = n*n (inversion counting is the dominant cost).
func IsSolvable(start, goal board.Board, n int) bool {
	return parity(start, n) == parity(goal, n)
}

func parity(b board.Board, n int) int {
	p := inversions(b) % 2
	if n%2 == 0 {
		zero, _ := b.EmptyIndex()
		_, y := board.Coord(zero, n)
		p = (p + y) % 2
	}

	return p
}

func inversions(b board.Board) int {
	count := 0
	for i := 0; i < len(b); i++ {
		if b[i] == 0 {
			continue
		}
		for j := i + 1; j < len(b); j++ {
			if b[j] == 0 {
				continue
			}
			if b[i] > b[j] {
				count++
			}
		}
	}

	return count
}
