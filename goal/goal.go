// Package goal builds target boards for the layouts an N-puzzle solve
// can be asked to reach.
//
// Regular lays tiles out row-major, 1..L-1 then 0 last. Snail lays tiles
// out along an inward spiral starting at the top-left, moving
// right→down→left→up, with 0 occupying the spiral's final interior cell.
package goal

import (
	"errors"

	"github.com/roman-hakh/npuzzle/board"
)

// ErrInvalidLayout indicates an unrecognized Layout tag.
var ErrInvalidLayout = errors.New("goal: unrecognized layout")

// Layout selects the target board shape.
type Layout int

const (
	// Regular lays tiles out row-major with 0 last.
	Regular Layout = iota
	// Snail lays tiles out along an inward spiral with 0 at the center.
	Snail
)

// Build constructs the goal board for side length n and the chosen
// Layout. n must be ≥ 1; callers are expected to have already validated
// n ≥ 3 per the solve-level contract.
//
// Complexity: O(L), L = n*n.
func Build(n int, layout Layout) (board.Board, error) {
	switch layout {
	case Regular:
		return buildRegular(n), nil
	case Snail:
		return buildSnail(n), nil
	default:
		return nil, ErrInvalidLayout
	}
}

// buildRegular fills row-major with 1..L-1 then 0 at the last cell.
func buildRegular(n int) board.Board {
	l := n * n
	b := make(board.Board, l)
	for i := 0; i < l-1; i++ {
		b[i] = uint8(i + 1)
	}
	b[l-1] = 0

	return b
}

// buildSnail walks a shrinking rectangular frontier top row left→right,
// right column top→bottom, bottom row right→left, left column
// bottom→top, recording the inward-spiral visiting order of every cell.
// Values 1..L-1 are then assigned along that order; the last cell
// visited (the spiral's interior terminus) is left as 0.
func buildSnail(n int) board.Board {
	l := n * n
	order := make([]int, 0, l)
	x0, y0, x1, y1 := 0, 0, n-1, n-1

	for x0 <= x1 && y0 <= y1 {
		for x := x0; x <= x1; x++ {
			order = append(order, board.Index(x, y0, n))
		}
		y0++
		if y0 > y1 {
			break
		}

		for y := y0; y <= y1; y++ {
			order = append(order, board.Index(x1, y, n))
		}
		x1--
		if x0 > x1 {
			break
		}

		for x := x1; x >= x0; x-- {
			order = append(order, board.Index(x, y1, n))
		}
		y1--
		if y0 > y1 {
			break
		}

		for y := y1; y >= y0; y-- {
			order = append(order, board.Index(x0, y, n))
		}
		x0++
	}

	b := make(board.Board, l)
	for i, idx := range order {
		if i == len(order)-1 {
			b[idx] = 0
		} else {
			b[idx] = uint8(i + 1)
		}
	}

	return b
}
