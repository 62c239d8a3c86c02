// Package npuzzle_test provides examples demonstrating how to run a solve
// end to end. Each example is runnable via “go test -run Example”, showing
// both code and expected output.
package npuzzle_test

import (
	"fmt" // fmt is used to print results in examples

	"github.com/roman-hakh/npuzzle/goal"
	"github.com/roman-hakh/npuzzle/heuristic"
	"github.com/roman-hakh/npuzzle/npuzzle"
)

// ExampleSolve demonstrates solving a 3x3 board that is one slide away
// from the regular goal.
// Complexity: dominated by the A* run; trivial for this instance.
func ExampleSolve() {
	// 1) The start board, row-major, 0 marking the empty cell.
	//    Sliding the empty cell right yields 1..8,0.
	start := []int{1, 2, 3, 4, 5, 6, 7, 0, 8}

	// 2) Run the solver with the Manhattan heuristic against the
	//    regular (row-major) goal layout.
	res, err := npuzzle.Solve(heuristic.Manhattan, goal.Regular, start, 3)
	// 3) Handle any potential error (malformed board, unsolvable pair, …).
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) Print each move of the returned path.
	for i, m := range res.Path {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(m)
	}
	fmt.Println()
	// Output: ROOT RIGHT
}

// ExampleSolve_snail demonstrates the snail (inward spiral) goal layout:
// a board already in snail order solves with an empty path.
func ExampleSolve_snail() {
	// 1) The 3x3 snail goal itself: 1..8 spiralling inward, 0 at the center.
	start := []int{1, 2, 3, 8, 0, 4, 7, 6, 5}

	// 2) Solve against the Snail layout; the start is already the goal.
	res, err := npuzzle.Solve(heuristic.Manhattan, goal.Snail, start, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The path holds only the root marker; no moves are needed.
	fmt.Printf("moves=%d closed=%d\n", len(res.Path)-1, res.Closed)
	// Output: moves=0 closed=1
}
