// Package npuzzle is the façade an external transport would import: it
// wires board, goal, heuristic, solvability, and astar behind a single
// Solve operation. Request parsing, response formatting, CLI flags,
// logging, and puzzle-file parsing are out of scope here; callers hand
// Solve a fully-parsed request and receive a fully-formed Result.
package npuzzle

import (
	"context"
	"errors"
	"fmt"

	"github.com/roman-hakh/npuzzle/astar"
	"github.com/roman-hakh/npuzzle/board"
	"github.com/roman-hakh/npuzzle/goal"
	"github.com/roman-hakh/npuzzle/heuristic"
	"github.com/roman-hakh/npuzzle/solvability"
)

// Sentinel errors forming the public error taxonomy. Each wraps the
// originating package's sentinel (where one exists) so callers can match
// with errors.Is against either the specific or the top-level error.
var (
	// ErrInvalidMapSize indicates L is not a positive perfect square, or N < 3.
	ErrInvalidMapSize = errors.New("npuzzle: invalid map size")

	// ErrInvalidMap indicates the board is not a permutation of
	// {0,…,L-1} with exactly one zero.
	ErrInvalidMap = errors.New("npuzzle: invalid map")

	// ErrUnsolvable indicates the parity oracle rejected the (start, goal) pair.
	ErrUnsolvable = errors.New("npuzzle: unsolvable")

	// ErrUnknownHeuristic indicates an unrecognized heuristic tag.
	ErrUnknownHeuristic = errors.New("npuzzle: unknown heuristic")

	// ErrCancelled indicates the caller's context ended the search early.
	ErrCancelled = errors.New("npuzzle: cancelled")

	// ErrInternal indicates a defensive invariant failed (search space
	// exhausted after a passing solvability check). This signals a bug,
	// not a legitimate outcome for a well-formed request.
	ErrInternal = errors.New("npuzzle: internal error")
)

// Result is the fully-formed outcome of a successful Solve call.
type Result struct {
	// Path begins with board.Root, followed by zero or more moves. The
	// number of non-Root moves equals the solution's path length.
	Path []board.Move

	// MaxOpen is the peak size the open set reached during search.
	MaxOpen int

	// Closed is the final size of the closed set.
	Closed int

	// ApproxBytes is an informational order-of-magnitude memory estimate.
	ApproxBytes int
}

// Option configures a Solve call.
type Option func(*astar.Options)

// WithContext attaches a cancellation context to the search, checked at
// the top of every A* iteration. A done context aborts the search with
// ErrCancelled.
func WithContext(ctx context.Context) Option {
	return func(o *astar.Options) {
		o.Ctx = ctx
	}
}

// Solve validates (heuristicTag, layoutTag, start, n), rejects unsolvable
// or malformed requests, and otherwise runs the A* engine to completion.
//
// Validation order (first failing check wins):
//
//  1. InvalidMapSize - L is not a positive perfect square, or n < 3.
//  2. InvalidMap     - start is not a permutation of {0,…,L-1} with
//     exactly one zero.
//  3. UnknownHeuristic - heuristicTag/layoutTag do not resolve.
//  4. Unsolvable       - the parity oracle rejects the pair.
//
// Only after all four pass does the A* loop run.
func Solve(heuristicTag heuristic.Tag, layoutTag goal.Layout, start []int, n int, opts ...Option) (Result, error) {
	if n < 3 || n*n != len(start) {
		return Result{}, ErrInvalidMapSize
	}

	startBoard, err := board.Parse(start, n)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidMap, err)
	}

	h, err := heuristic.Lookup(heuristicTag)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUnknownHeuristic, err)
	}

	// An unrecognized layout shares the unknown-tag slot of the taxonomy:
	// both are "the request names a selector this engine does not have".
	goalBoard, err := goal.Build(n, layoutTag)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUnknownHeuristic, err)
	}

	if !solvability.IsSolvable(startBoard, goalBoard, n) {
		return Result{}, ErrUnsolvable
	}

	engineOpts := astar.DefaultOptions(h)
	for _, opt := range opts {
		opt(&engineOpts)
	}

	res, err := astar.Solve(startBoard, goalBoard, n, engineOpts)
	if err != nil {
		switch {
		case errors.Is(err, astar.ErrCancelled):
			return Result{}, fmt.Errorf("%w: %w", ErrCancelled, err)
		case errors.Is(err, astar.ErrNoSolution):
			return Result{}, fmt.Errorf("%w: %w", ErrInternal, err)
		default:
			return Result{}, fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	return Result{
		Path:        res.Path,
		MaxOpen:     res.MaxOpen,
		Closed:      res.Closed,
		ApproxBytes: res.ApproxBytes,
	}, nil
}
