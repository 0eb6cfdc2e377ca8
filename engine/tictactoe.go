package engine

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"minimax/agent"
	"minimax/game/tictactoe"
)

// TicTacToe runs a game between two players, X first.
type TicTacToe struct {
	players [2]agent.Player // X, O
	node    *tictactoe.Node
	out     io.Writer
}

// NewTicTacToe starts from start, or the empty board when start is nil.
// Boards are printed to out after every move.
func NewTicTacToe(x, o agent.Player, start *tictactoe.Node, out io.Writer) *TicTacToe {
	if start == nil {
		start = tictactoe.New()
	}
	if out == nil {
		out = io.Discard
	}
	return &TicTacToe{players: [2]agent.Player{x, o}, node: start, out: out}
}

func (e *TicTacToe) Node() *tictactoe.Node { return e.node }

// Run returns +10 if X wins, -10 if O wins and 0 for a draw.
func (e *TicTacToe) Run() (int, []MoveMetric, error) {
	var moves []MoveMetric
	for step := 1; !e.node.IsTerminal(); step++ {
		side := e.node.ToMove()
		player := e.players[0]
		if side == tictactoe.O {
			player = e.players[1]
		}

		cell, metrics, err := player.Play(e.node)
		if err != nil {
			return 0, moves, fmt.Errorf("%c move %d: %w", side, step, err)
		}
		next, err := e.node.Play(cell)
		if err != nil {
			return 0, moves, fmt.Errorf("%c move %d: %w", side, step, err)
		}
		e.node = next
		moves = append(moves, MoveMetric{Step: step, Side: side.String(), Move: cell.String(), SearchMetrics: metrics})

		log.Debug().Stringer("side", side).Stringer("cell", cell).Int64("nodes", metrics.Nodes).Msg("tictactoe move")
		fmt.Fprintf(e.out, "%s\n---\n", e.node)
	}

	score := e.node.Score()
	log.Info().Int("score", score).Msg("tictactoe over")
	return score, moves, nil
}
