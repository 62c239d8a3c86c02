// Package npuzzle (root) documents this module as a whole.
//
//	A focused, dependency-light library for solving the N-puzzle
//	(the classic 8/15/24-tile sliding puzzle) with A*.
//
// Under the hood, everything is organized under subpackages:
//
//	board/       — flat-array board representation, moves, neighbors
//	goal/        — goal layout construction (row-major, inward spiral)
//	heuristic/   — admissible and non-admissible distance estimators
//	solvability/ — parity-based reachability oracle
//	astar/       — the search engine: open/closed sets, cancellation,
//	               path reconstruction, run statistics
//	npuzzle/     — the external façade tying the above together
//
// Start with the npuzzle subpackage's Solve function; the rest compose on
// their own for callers who want finer control: a custom heuristic, a
// pre-built goal board, or direct access to search statistics.
//
//	go get github.com/roman-hakh/npuzzle
package npuzzle
