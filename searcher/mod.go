package searcher

import (
	"cmp"
	"iter"
)

// Move is an atomic action recorded in a node's move history.
type Move interface {
	String() string
}

// Node is a position in a two-player, zero-sum game tree. Any game that
// wants to be searched by AlphaBeta implements this contract.
type Node interface {
	// Score is exact for terminal nodes and a cheap heuristic otherwise.
	Score() int
	IsTerminal() bool
	// IsMaximizing is derived from depth parity: odd plies maximize.
	IsMaximizing() bool
	// Depth is the 1-based ply index of the next move.
	Depth() int
	// Moves is the move history from the start of the game.
	Moves() []Move
	// Children yields each child once, at Depth()+1. The sequence is not restartable.
	Children() iter.Seq[Node]
	// Minimum and Maximum return sentinel bounds whose scores dominate any real score.
	Minimum() Node
	Maximum() Node
}

// Compare orders nodes by score only. Sentinel bounds take part in the same order.
func Compare(a, b Node) int {
	return cmp.Compare(a.Score(), b.Score())
}

// Bound is a degenerate terminal node used to seed the search window.
type Bound struct {
	Value int
	Move  Move
}

func (b Bound) Score() int         { return b.Value }
func (b Bound) IsTerminal() bool   { return true }
func (b Bound) IsMaximizing() bool { return false }
func (b Bound) Depth() int         { return 1 }
func (b Bound) Moves() []Move      { return []Move{b.Move} }
func (b Bound) Minimum() Node      { return b }
func (b Bound) Maximum() Node      { return b }

func (b Bound) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {}
}

// Sentinel is a plain string move, used by bounds that have no move of their own.
type Sentinel string

func (s Sentinel) String() string { return string(s) }

const (
	MinusInfinity Sentinel = "-inf"
	PlusInfinity  Sentinel = "+inf"
)
