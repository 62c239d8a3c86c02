// Package astar implements the A* search loop over N-puzzle board
// states: the open priority queue, the closed set keyed on board
// contents, successor expansion, termination, path reconstruction, and
// run statistics.
//
// The search is single-threaded and synchronous relative to its caller:
// one Solve call occupies one goroutine from start to return, and there
// are no internal suspension points other than the cancellation check at
// the top of each iteration. Each call owns its open set, closed set,
// and state chain exclusively, so concurrent Solve calls from separate
// goroutines do not interfere with one another.
//
// Errors:
//
//	ErrNoSolution    - open emptied without reaching a zero-heuristic
//	                   state; defensive, should not occur once the
//	                   caller has validated solvability beforehand.
//	ErrCancelled     - the supplied context was done before or during
//	                   the search.
package astar

import (
	"context"
	"errors"

	"github.com/roman-hakh/npuzzle/board"
	"github.com/roman-hakh/npuzzle/heuristic"
)

// Sentinel errors for the A* engine.
var (
	// ErrNoSolution indicates open drained without finding the goal.
	// After a passing solvability check this is a defect, not an
	// expected outcome; it is defined so the engine always terminates
	// through an explicit result rather than running unbounded.
	ErrNoSolution = errors.New("astar: search space exhausted without reaching goal")

	// ErrCancelled indicates the caller's context was done before the
	// search completed.
	ErrCancelled = errors.New("astar: search cancelled")
)

// State is a single search-tree node: a board, its cost components, the
// move that produced it from its parent, and a back-link used only for
// path reconstruction once a goal node is popped. Parent chains are kept
// alive by Go's garbage collector for exactly as long as some open or
// closed entry still references them; Solve never frees them by hand.
type State struct {
	Board  board.Board
	G      int
	H      int
	Move   board.Move
	Parent *State
}

// f is this state's A* priority key: total estimated cost of the
// cheapest path through it.
func (s *State) f() int {
	return s.G + s.H
}

// Options configures a Solve call.
type Options struct {
	// Heuristic estimates remaining distance to Goal. Required.
	Heuristic heuristic.Func

	// Ctx, if non-nil, is checked at the top of every loop iteration;
	// a done context terminates the search with ErrCancelled. Defaults
	// to context.Background() (no cancellation) when nil.
	Ctx context.Context
}

// Option is a functional option that adjusts an Options value before it
// is passed to Solve; Solve itself takes the Options struct.
type Option func(*Options)

// WithContext attaches a cancellation context to the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// DefaultOptions returns an Options configured with the given heuristic
// and no cancellation context.
func DefaultOptions(h heuristic.Func) Options {
	return Options{
		Heuristic: h,
		Ctx:       context.Background(),
	}
}

// Result is the outcome of a successful Solve call.
type Result struct {
	// Path begins with board.Root and is followed by zero or more
	// moves; its non-Root length equals the solution's G.
	Path []board.Move

	// MaxOpen is the peak size the open set reached during the run.
	MaxOpen int

	// Closed is the final size of the closed set.
	Closed int

	// ApproxBytes is an order-of-magnitude memory estimate over the
	// states touched by the run. Informational only.
	ApproxBytes int
}
