package tictactoe

import (
	"fmt"
	"iter"
	"strings"

	"minimax/searcher"
)

const (
	WinScore  = 10
	LossScore = -10
	DrawScore = 0
	bound     = 100
)

// Node is a tic-tac-toe position. X always opens, so X moves on odd plies and
// maximizes.
type Node struct {
	board Board
	depth int
	moves []searcher.Move
}

func New() *Node {
	return &Node{board: emptyBoard(), depth: 1, moves: []searcher.Move{}}
}

// FromString reads nine marks in row-major order. Whitespace and '/' are
// ignored, so "XO./.X./..O" is accepted.
func FromString(s string) (*Node, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '/':
			return -1
		}
		return r
	}, strings.ToUpper(s))
	if len(s) != Size*Size {
		return nil, fmt.Errorf("%d cells: %w", len(s), ErrInvalidBoard)
	}

	b := emptyBoard()
	for i := 0; i < len(s); i++ {
		switch m := Mark(s[i]); m {
		case X, O, Empty:
			b[i/Size][i%Size] = m
		default:
			return nil, fmt.Errorf("mark %q: %w", s[i], ErrInvalidBoard)
		}
	}

	xCount, oCount := b.count(X), b.count(O)
	if xCount != oCount && xCount != oCount+1 {
		return nil, fmt.Errorf("%d X against %d O: %w", xCount, oCount, ErrInvalidBoard)
	}
	return &Node{board: b, depth: xCount + oCount + 1, moves: []searcher.Move{}}, nil
}

func (n *Node) Board() Board           { return n.board }
func (n *Node) Depth() int             { return n.depth }
func (n *Node) Moves() []searcher.Move { return n.moves }
func (n *Node) IsMaximizing() bool     { return n.depth%2 == 1 }

// ToMove is the mark placed by the next move.
func (n *Node) ToMove() Mark {
	if n.IsMaximizing() {
		return X
	}
	return O
}

func (n *Node) IsTerminal() bool {
	return n.board.Winner() != Empty || n.board.Full()
}

func (n *Node) Score() int {
	switch n.board.Winner() {
	case X:
		return WinScore
	case O:
		return LossScore
	}
	return DrawScore
}

func (n *Node) Children() iter.Seq[searcher.Node] {
	return func(yield func(searcher.Node) bool) {
		if n.IsTerminal() {
			return
		}
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				if n.board[r][c] != Empty {
					continue
				}
				if !yield(n.play(Cell{Row: r, Col: c})) {
					return
				}
			}
		}
	}
}

func (n *Node) Minimum() searcher.Node {
	return searcher.Bound{Value: -bound, Move: searcher.MinusInfinity}
}

func (n *Node) Maximum() searcher.Node {
	return searcher.Bound{Value: bound, Move: searcher.PlusInfinity}
}

// Play marks cell for the side to move.
func (n *Node) Play(cell Cell) (*Node, error) {
	switch {
	case n.IsTerminal():
		return nil, fmt.Errorf("game is over: %w", ErrIllegalMove)
	case !cell.onBoard():
		return nil, fmt.Errorf("cell %v off board: %w", cell, ErrIllegalMove)
	case n.board[cell.Row][cell.Col] != Empty:
		return nil, fmt.Errorf("cell %v taken: %w", cell, ErrIllegalMove)
	}
	return n.play(cell), nil
}

func (n *Node) play(cell Cell) *Node {
	moves := make([]searcher.Move, len(n.moves), len(n.moves)+1)
	copy(moves, n.moves)
	child := &Node{board: n.board, depth: n.depth + 1, moves: append(moves, cell)}
	child.board[cell.Row][cell.Col] = n.ToMove()
	return child
}

// Empties lists the open cells in row-major order.
func (n *Node) Empties() []Cell {
	var cells []Cell
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if n.board[r][c] == Empty {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

func (n *Node) String() string {
	return n.board.String()
}
