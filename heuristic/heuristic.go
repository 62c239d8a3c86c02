// Package heuristic implements the family of admissible (and one
// non-admissible) estimators the A* engine can be configured with.
//
// Every heuristic has the signature Func: it takes a board and a goal
// board of the same side length and returns a non-negative integer
// estimate of the remaining distance; the 0 tile is never counted.
//
// Admissibility:
//
//	MisplacedTiles, Manhattan, and ManhattanPlusLC (with the ×2 linear-
//	conflict weighting used here) never overestimate the true remaining
//	cost. MisplacedPlusLC likewise never overestimates, since every
//	misplaced tile is at least one step from its goal cell, so it never
//	exceeds ManhattanPlusLC on the same board. NMaxSwap is NOT admissible: it can overestimate,
//	and using it trades A*'s optimality guarantee for a cheaper, greedier
//	search. The engine applies every Func identically; only the choice of
//	Tag determines whether the returned path is guaranteed shortest.
package heuristic

import (
	"errors"

	"github.com/roman-hakh/npuzzle/board"
)

// ErrUnknownHeuristic indicates an unrecognized Tag.
var ErrUnknownHeuristic = errors.New("heuristic: unrecognized heuristic tag")

// Tag selects a heuristic without exposing a raw function pointer across
// the API boundary.
type Tag int

const (
	// MisplacedTiles counts non-zero tiles out of place.
	MisplacedTiles Tag = iota
	// Manhattan sums per-tile grid distance to each tile's goal cell.
	Manhattan
	// ManhattanPlusLC adds 2x the row/column linear-conflict count to Manhattan.
	ManhattanPlusLC
	// MisplacedPlusLC adds 2x the row/column linear-conflict count to MisplacedTiles.
	MisplacedPlusLC
	// NMaxSwap simulates repeated 0-tile swaps toward the goal. Non-admissible.
	NMaxSwap
)

// Func estimates the distance from b to goal, both boards of side n.
type Func func(b, goal board.Board, n int) int

// Lookup resolves a Tag to its Func through a small, explicit dispatch
// table; no raw function pointer crosses the API boundary.
func Lookup(tag Tag) (Func, error) {
	switch tag {
	case MisplacedTiles:
		return Misplaced, nil
	case Manhattan:
		return ManhattanDistance, nil
	case ManhattanPlusLC:
		return ManhattanPlusLinearConflicts, nil
	case MisplacedPlusLC:
		return MisplacedPlusLinearConflicts, nil
	case NMaxSwap:
		return NMaxSwapHeuristic, nil
	default:
		return nil, ErrUnknownHeuristic
	}
}

// Misplaced counts the positions holding a non-zero tile that differs
// from the goal board at that position.
//
// Complexity: O(L).
func Misplaced(b, goal board.Board, n int) int {
	count := 0
	for i, v := range b {
		if v != 0 && v != goal[i] {
			count++
		}
	}

	return count
}

// goalIndex returns a table mapping each tile value to its flat index
// in goal. Built from the goal board itself rather than assumed to
// follow a value-1 formula, since that formula only holds for the
// Regular layout. Evaluations sit in the search's innermost loop, so
// the table is a flat slice indexed by value, not a map.
func goalIndex(goal board.Board) []int {
	idx := make([]int, len(goal))
	for i, v := range goal {
		idx[v] = i
	}

	return idx
}

// ManhattanDistance sums, over every non-zero tile, the grid distance
// between its position in b and its position in goal.
//
// Complexity: O(L).
func ManhattanDistance(b, goal board.Board, n int) int {
	idx := goalIndex(goal)
	total := 0

	for i, v := range b {
		if v == 0 {
			continue
		}
		x, y := board.Coord(i, n)
		gx, gy := board.Coord(idx[v], n)
		total += abs(x-gx) + abs(y-gy)
	}

	return total
}

// linearConflicts counts, for each row and each column of goal, the pairs
// of tiles that both belong to that row (resp. column) in goal but
// appear in reversed relative order in b. Each such pair must pass each
// other to reach its goal cell, forcing at least two extra moves beyond
// the Manhattan estimate; the caller weights the returned count by 2 to
// keep the combined heuristic admissible.
//
// Complexity: O(n^3); for each of the n rows/columns, all O(n^2) pairs
// are inspected.
func linearConflicts(b, goal board.Board, n int) int {
	idx := goalIndex(goal)
	conflicts := 0

	// Rows: pairs of tiles that both belong to the row they occupy but
	// sit in reversed goal-column order.
	for row := 0; row < n; row++ {
		rowStart := row * n
		for a := rowStart; a < rowStart+n; a++ {
			if b[a] == 0 || idx[b[a]]/n != row {
				continue
			}
			for c := a + 1; c < rowStart+n; c++ {
				if b[c] == 0 || idx[b[c]]/n != row {
					continue
				}
				if idx[b[a]]%n > idx[b[c]]%n {
					conflicts++
				}
			}
		}
	}

	// Columns: same test with rows and columns exchanged.
	for col := 0; col < n; col++ {
		for a := col; a < n*n; a += n {
			if b[a] == 0 || idx[b[a]]%n != col {
				continue
			}
			for c := a + n; c < n*n; c += n {
				if b[c] == 0 || idx[b[c]]%n != col {
					continue
				}
				if idx[b[a]]/n > idx[b[c]]/n {
					conflicts++
				}
			}
		}
	}

	return conflicts
}

// ManhattanPlusLinearConflicts adds 2x the linear-conflict count to the
// Manhattan distance, the weighting required for admissibility.
//
// Complexity: O(n^3).
func ManhattanPlusLinearConflicts(b, goal board.Board, n int) int {
	return ManhattanDistance(b, goal, n) + 2*linearConflicts(b, goal, n)
}

// MisplacedPlusLinearConflicts adds 2x the linear-conflict count to the
// misplaced-tiles count.
//
// Complexity: O(n^3).
func MisplacedPlusLinearConflicts(b, goal board.Board, n int) int {
	return Misplaced(b, goal, n) + 2*linearConflicts(b, goal, n)
}

// NMaxSwapHeuristic repeatedly swaps the 0 tile with the tile that
// belongs at 0's current cell in goal on a working copy of b, counting
// swaps until the working copy equals goal. The count is returned as
// the estimate. Whenever 0 already sits at its own goal cell, the swap
// goes to tile 1 instead, or, when tile 1 is home as well, to the first
// misplaced tile. Every non-escape swap places one tile directly onto
// its goal cell and every escape swap is followed by such a swap, so the
// loop follows the permutation's cycles and always terminates.
//
// This heuristic is NOT admissible: swaps are not sliding moves, and
// the count can overestimate the true distance, so pairing it with
// this package's A* engine sacrifices the optimal-path guarantee in
// exchange for a cheaper estimate.
//
// Complexity: O(L) per swap, bounded by O(L) swaps in the worst case.
func NMaxSwapHeuristic(b, goal board.Board, n int) int {
	work := b.Clone()

	tileAt := make([]int, len(work))
	for i, v := range work {
		tileAt[v] = i
	}

	swaps := 0
	for !board.Equal(work, goal) {
		zero := tileAt[0]

		swapWith := goal[zero]
		if swapWith == 0 {
			// 0 is already home; break the cycle through tile 1, or
			// through the first misplaced tile when 1 is home too.
			swapWith = 1
			if goal[tileAt[1]] == 1 {
				for i, v := range work {
					if v != 0 && v != goal[i] {
						swapWith = v
						break
					}
				}
			}
		}

		swapIdx := tileAt[swapWith]
		work[zero], work[swapIdx] = work[swapIdx], work[zero]
		tileAt[0], tileAt[swapWith] = swapIdx, zero
		swaps++
	}

	return swaps
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
