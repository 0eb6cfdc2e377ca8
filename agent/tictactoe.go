package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"minimax/game/tictactoe"
	"minimax/searcher"
)

// Player picks a tic-tac-toe move for the side to move.
type Player interface {
	Play(n *tictactoe.Node) (tictactoe.Cell, searcher.SearchMetrics, error)
}

type AlphaBetaPlayer struct {
	search *searcher.AlphaBeta
}

func NewAlphaBetaPlayer(search *searcher.AlphaBeta) *AlphaBetaPlayer {
	if search == nil {
		search = searcher.NewAlphaBeta()
	}
	return &AlphaBetaPlayer{search: search}
}

func (p *AlphaBetaPlayer) Play(n *tictactoe.Node) (tictactoe.Cell, searcher.SearchMetrics, error) {
	move, metrics, err := p.search.FindNextMove(n)
	if err != nil {
		return tictactoe.Cell{}, metrics, err
	}
	return move.(tictactoe.Cell), metrics, nil
}

// RandomPlayer plays any open cell.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) Play(n *tictactoe.Node) (tictactoe.Cell, searcher.SearchMetrics, error) {
	cells := n.Empties()
	if n.IsTerminal() || len(cells) == 0 {
		return tictactoe.Cell{}, searcher.SearchMetrics{}, searcher.ErrNoMove
	}
	return cells[p.rng.Intn(len(cells))], searcher.SearchMetrics{}, nil
}

// ConsolePlayer reads "row,col" moves, re-prompting on taken or off-board cells.
type ConsolePlayer struct {
	*Prompter
}

func NewConsolePlayer(p *Prompter) *ConsolePlayer {
	return &ConsolePlayer{Prompter: p}
}

func (p *ConsolePlayer) Play(n *tictactoe.Node) (tictactoe.Cell, searcher.SearchMetrics, error) {
	var cell tictactoe.Cell
	_, err := p.ask("Move: ", func(s string) string {
		c, err := tictactoe.ParseCell(s)
		if err != nil {
			return fmt.Sprintf("Move must be row,col between 0 and %d.", tictactoe.Size-1)
		}
		if _, err := n.Play(c); err != nil {
			return "Cell is taken."
		}
		cell = c
		return ""
	})
	return cell, searcher.SearchMetrics{}, err
}
