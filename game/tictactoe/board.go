package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

const Size = 3

type Mark byte

const (
	Empty Mark = '.'
	X     Mark = 'X'
	O     Mark = 'O'
)

func (m Mark) String() string { return string(rune(m)) }

var (
	ErrInvalidBoard = errors.New("invalid board")
	ErrIllegalMove  = errors.New("illegal move")
)

// Cell is a move: the coordinates of the square being marked.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string { return fmt.Sprintf("%d,%d", c.Row, c.Col) }

// ParseCell reads "row,col" with 0-based coordinates.
func ParseCell(s string) (Cell, error) {
	var c Cell
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d,%d", &c.Row, &c.Col); err != nil {
		return Cell{}, fmt.Errorf("cell %q: %w", s, ErrIllegalMove)
	}
	if !c.onBoard() {
		return Cell{}, fmt.Errorf("cell %v off board: %w", c, ErrIllegalMove)
	}
	return c, nil
}

func (c Cell) onBoard() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

type Board [Size][Size]Mark

func emptyBoard() Board {
	var b Board
	for r := range b {
		for c := range b[r] {
			b[r][c] = Empty
		}
	}
	return b
}

var lines = [][Size]Cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Winner returns the mark holding three in a row, or Empty.
func (b Board) Winner() Mark {
	for _, line := range lines {
		m := b[line[0].Row][line[0].Col]
		if m == Empty {
			continue
		}
		if b[line[1].Row][line[1].Col] == m && b[line[2].Row][line[2].Col] == m {
			return m
		}
	}
	return Empty
}

func (b Board) Full() bool {
	return b.count(Empty) == 0
}

func (b Board) count(m Mark) int {
	n := 0
	for r := range b {
		for c := range b[r] {
			if b[r][c] == m {
				n++
			}
		}
	}
	return n
}

func (b Board) String() string {
	var sb strings.Builder
	for r := range b {
		for c := range b[r] {
			sb.WriteByte(byte(b[r][c]))
		}
		if r < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
