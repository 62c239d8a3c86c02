package solvability_test

import (
	"testing"

	"github.com/roman-hakh/npuzzle/board"
	"github.com/roman-hakh/npuzzle/goal"
	"github.com/roman-hakh/npuzzle/solvability"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, flat []int, n int) board.Board {
	t.Helper()
	b, err := board.Parse(flat, n)
	require.NoError(t, err)

	return b
}

func TestIsSolvable_GoalIsAlwaysSolvableFromItself(t *testing.T) {
	g, err := goal.Build(3, goal.Regular)
	require.NoError(t, err)
	require.True(t, solvability.IsSolvable(g, g, 3))
}

func TestIsSolvable_SingleSwapOnOddGridIsUnsolvable(t *testing.T) {
	// One transposition away from solved is an odd permutation, which
	// never matches the goal's even parity on a 3x3.
	g, err := goal.Build(3, goal.Regular)
	require.NoError(t, err)

	start := mustBoard(t, []int{1, 2, 3, 4, 5, 6, 8, 7, 0}, 3)
	require.False(t, solvability.IsSolvable(start, g, 3))
}

func TestIsSolvable_EvenGridAccountsForZeroRow(t *testing.T) {
	g, err := goal.Build(4, goal.Regular)
	require.NoError(t, err)

	// Swapping the last two non-zero tiles of a solved 4x4 is the
	// classic unsolvable configuration for the 15-puzzle.
	start := mustBoard(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15, 14, 0}, 4)
	require.False(t, solvability.IsSolvable(start, g, 4))
}

func TestIsSolvable_ReachableRotationIsSolvable(t *testing.T) {
	g, err := goal.Build(3, goal.Regular)
	require.NoError(t, err)

	start := mustBoard(t, []int{1, 2, 3, 4, 5, 6, 0, 7, 8}, 3)
	up, err := start.Apply(board.Up, 3)
	require.NoError(t, err)

	require.True(t, solvability.IsSolvable(up, g, 3))
}
