package astar

import (
	"container/heap"
	"context"

	"github.com/roman-hakh/npuzzle/board"
)

// stateOverheadBytes approximates the fixed per-state bookkeeping cost
// (struct header, G/H/Move fields, parent pointer) outside of the board
// payload itself. It is implementation-defined and purely informational.
const stateOverheadBytes = 48

// Solve runs A* from start to goal on a grid of side n using the
// heuristic and cancellation context carried in opts.
//
// Algorithm:
//
//  1. Push the root state (start, G=0, H=heuristic(start,goal)) onto open.
//  2. Pop the state with smallest f=G+H (ties broken by smaller H, then
//     insertion order). If its board is already in closed, discard it:
//     lazy deletion is the single point of truth for deduplication.
//  3. Insert the popped state into closed.
//  4. If H==0, the popped board equals goal: reconstruct the move
//     sequence by walking Parent links back to the root and return.
//  5. Otherwise, for each legal direction, push a successor with
//     G=parent.G+1 and a freshly evaluated H. Successors are not
//     filtered against closed here; step 2's lazy check is sufficient.
//  6. Repeat until open is empty (ErrNoSolution) or opts.Ctx is done
//     (ErrCancelled).
//
// Complexity: each state is expanded at most once; per expansion cost is
// O(L) successor generation (each successor copies the board) plus one
// heuristic evaluation per successor.
func Solve(start, goalBoard board.Board, n int, opts Options) (Result, error) {
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	open := &openQueue{}
	heap.Init(open)
	closed := make(map[string]*State)

	root := &State{
		Board: start,
		G:     0,
		H:     opts.Heuristic(start, goalBoard, n),
		Move:  board.Root,
	}
	heap.Push(open, &queueItem{state: root})

	maxOpen := 1
	seq := 0

	for open.Len() > 0 {
		select {
		case <-ctx.Done():
			return Result{}, ErrCancelled
		default:
		}

		item := heap.Pop(open).(*queueItem)
		cur := item.state

		if _, ok := closed[cur.Board.Key()]; ok {
			continue
		}
		closed[cur.Board.Key()] = cur

		if cur.H == 0 {
			return Result{
				Path:        reconstruct(cur),
				MaxOpen:     maxOpen,
				Closed:      len(closed),
				ApproxBytes: approxBytes(open.Len(), len(closed), len(start)),
			}, nil
		}

		for _, nb := range board.Neighbors(mustEmptyIndex(cur.Board), n) {
			if !nb.Valid {
				continue
			}

			succBoard, err := cur.Board.Apply(nb.Move, n)
			if err != nil {
				continue
			}

			succ := &State{
				Board:  succBoard,
				G:      cur.G + 1,
				H:      opts.Heuristic(succBoard, goalBoard, n),
				Move:   nb.Move,
				Parent: cur,
			}
			seq++
			heap.Push(open, &queueItem{state: succ, seq: seq})
		}

		if open.Len() > maxOpen {
			maxOpen = open.Len()
		}
	}

	return Result{}, ErrNoSolution
}

// mustEmptyIndex locates the empty cell of a board already validated by
// board.Parse/board.Apply; it cannot fail within Solve's loop.
func mustEmptyIndex(b board.Board) int {
	idx, _ := b.EmptyIndex()

	return idx
}

// reconstruct walks cur's Parent chain back to the root, collecting
// moves, then prepends board.Root.
func reconstruct(cur *State) []board.Move {
	var moves []board.Move
	for s := cur; s.Move != board.Root; s = s.Parent {
		moves = append(moves, s.Move)
	}

	path := make([]board.Move, 0, len(moves)+1)
	path = append(path, board.Root)
	for i := len(moves) - 1; i >= 0; i-- {
		path = append(path, moves[i])
	}

	return path
}

// approxBytes gives an order-of-magnitude estimate of memory held by the
// run's open and closed sets at the moment of success.
func approxBytes(openLen, closedLen, boardLen int) int {
	return (openLen + closedLen) * (stateOverheadBytes + boardLen)
}

// queueItem wraps a State with an insertion sequence number, used only
// to make the total order over equal (f, H) pairs deterministic.
type queueItem struct {
	state *State
	seq   int
}

// openQueue is a min-heap of *queueItem ordered by (f, H, seq) ascending:
// smaller f first, ties broken by smaller H (prefer states closer to
// goal), remaining ties broken by insertion order. Duplicate boards may
// be pushed with different G/H; Solve's lazy closed-set check on pop is
// the single point of deduplication, so no decrease-key operation is
// needed.
type openQueue []*queueItem

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	fi, fj := q[i].state.f(), q[j].state.f()
	if fi != fj {
		return fi < fj
	}
	if q[i].state.H != q[j].state.H {
		return q[i].state.H < q[j].state.H
	}

	return q[i].seq < q[j].seq
}

func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openQueue) Push(x interface{}) {
	*q = append(*q, x.(*queueItem))
}

func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}
