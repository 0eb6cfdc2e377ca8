package engine

import (
	"errors"

	"minimax/searcher"
)

var ErrOutOfTurn = errors.New("move played out of turn")

type Engine interface {
	// Run plays until the game ends and returns the final score from the
	// maximizing side's point of view.
	Run() (score int, moves []MoveMetric, err error)
}

// MoveMetric describes one ply played by the engine.
type MoveMetric struct {
	Step int    // 1-based ply index
	Side string // Who moved: guesser/scorer, X/O
	Move string
	searcher.SearchMetrics
}

var (
	_ Engine = (*Wordle)(nil)
	_ Engine = (*TicTacToe)(nil)
)
