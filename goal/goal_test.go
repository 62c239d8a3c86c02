package goal_test

import (
	"testing"

	"github.com/roman-hakh/npuzzle/board"
	"github.com/roman-hakh/npuzzle/goal"
	"github.com/stretchr/testify/require"
)

func TestBuild_Regular(t *testing.T) {
	b, err := goal.Build(3, goal.Regular)
	require.NoError(t, err)
	require.Equal(t, board.Board{1, 2, 3, 4, 5, 6, 7, 8, 0}, b)
}

func TestBuild_Snail_3x3(t *testing.T) {
	b, err := goal.Build(3, goal.Snail)
	require.NoError(t, err)
	require.Equal(t, board.Board{1, 2, 3, 8, 0, 4, 7, 6, 5}, b)
}

func TestBuild_UnknownLayout(t *testing.T) {
	_, err := goal.Build(3, goal.Layout(99))
	require.ErrorIs(t, err, goal.ErrInvalidLayout)
}

func TestBuild_IsPermutationWithOneZero(t *testing.T) {
	for n := 3; n <= 6; n++ {
		for _, layout := range []goal.Layout{goal.Regular, goal.Snail} {
			b, err := goal.Build(n, layout)
			require.NoError(t, err)

			seen := make(map[uint8]bool, len(b))
			zeros := 0
			for _, v := range b {
				require.False(t, seen[v], "duplicate value %d for n=%d layout=%v", v, n, layout)
				seen[v] = true
				if v == 0 {
					zeros++
				}
			}
			require.Equal(t, 1, zeros, "n=%d layout=%v", n, layout)
			require.Len(t, b, n*n)
		}
	}
}
