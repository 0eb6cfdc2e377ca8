package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"minimax/agent"
	"minimax/game/wordle"
)

type WordleOption func(w *Wordle)

func WithMaxGuesses(guesses int) WordleOption {
	return func(w *Wordle) {
		if guesses > 0 {
			w.maxGuesses = guesses
		}
	}
}

// WithTranscript prints the board after every scored round. render draws one
// round; nil prints the plain "guess pattern" line.
func WithTranscript(out io.Writer, render func(guess string, feedback wordle.Pattern) string) WordleOption {
	return func(w *Wordle) {
		w.out = out
		w.render = render
	}
}

// Wordle runs a game between a guesser and a scorer, alternating guess and
// score plies.
type Wordle struct {
	guesser    agent.Guesser
	scorer     agent.Scorer
	maxGuesses int
	guesses    []string
	scores     []wordle.Pattern
	out        io.Writer
	render     func(string, wordle.Pattern) string
}

func NewWordle(guesser agent.Guesser, scorer agent.Scorer, options ...WordleOption) *Wordle {
	w := &Wordle{
		guesser:    guesser,
		scorer:     scorer,
		maxGuesses: wordle.DefaultMaxGuesses,
		out:        io.Discard,
	}
	for _, option := range options {
		option(w)
	}
	return w
}

func (w *Wordle) Guesses() []string        { return w.guesses }
func (w *Wordle) Scores() []wordle.Pattern { return w.scores }
func (w *Wordle) guessNext() bool          { return len(w.guesses) == len(w.scores) }

// Guess records the next guess. A guess waiting for its score must be scored first.
func (w *Wordle) Guess(guess string) error {
	if !w.guessNext() {
		return fmt.Errorf("guess %q before scoring %q: %w", guess, w.guesses[len(w.guesses)-1], ErrOutOfTurn)
	}
	w.guesses = append(w.guesses, guess)
	return nil
}

// Score asks the scorer about the pending guess and records the answer.
func (w *Wordle) Score() (wordle.Pattern, error) {
	if w.guessNext() {
		return "", fmt.Errorf("score with no pending guess: %w", ErrOutOfTurn)
	}
	score, err := w.scorer.Score(w.guesses[len(w.guesses)-1])
	if err != nil {
		return "", err
	}
	w.scores = append(w.scores, score)
	return score, nil
}

// Move plays the next ply, asking the guesser or the scorer as appropriate.
func (w *Wordle) Move() (MoveMetric, error) {
	step := len(w.guesses) + len(w.scores) + 1
	log.Debug().Int("step", step).Strs("guesses", w.guesses).Msg("move")

	if !w.guessNext() {
		score, err := w.Score()
		if err != nil {
			return MoveMetric{}, err
		}
		return MoveMetric{Step: step, Side: "scorer", Move: string(score)}, nil
	}

	guess, metrics, err := w.guesser.Guess(w.guesses, w.scores)
	if err != nil {
		return MoveMetric{}, fmt.Errorf("guess %d: %w", len(w.guesses)+1, err)
	}
	if err := w.Guess(guess); err != nil {
		return MoveMetric{}, err
	}
	return MoveMetric{Step: step, Side: "guesser", Move: guess, SearchMetrics: metrics}, nil
}

// IsTerminal reports whether a guess was scored all-exact or the guesses ran out.
func (w *Wordle) IsTerminal() bool {
	for _, s := range w.scores {
		if s.IsCorrect() {
			return true
		}
	}
	return len(w.scores) >= w.maxGuesses
}

// Solved reports whether the last score was all-exact.
func (w *Wordle) Solved() bool {
	return len(w.scores) > 0 && w.scores[len(w.scores)-1].IsCorrect()
}

// Run plays to the end and returns the evaluation of the final pattern.
func (w *Wordle) Run() (int, []MoveMetric, error) {
	var moves []MoveMetric
	for !w.IsTerminal() {
		m, err := w.Move()
		if err != nil {
			return 0, moves, err
		}
		moves = append(moves, m)
		if w.guessNext() {
			w.print()
		}
	}

	final := w.scores[len(w.scores)-1]
	log.Info().Int("guesses", len(w.guesses)).Bool("solved", w.Solved()).Msg("wordle over")
	return wordle.ScoreEvaluation(final), moves, nil
}

func (w *Wordle) print() {
	if w.render == nil {
		fmt.Fprintln(w.out, w.String())
	} else {
		for i, s := range w.scores {
			fmt.Fprintln(w.out, w.render(w.guesses[i], s))
		}
	}
	fmt.Fprintln(w.out, "---")
}

// String lists one "guess pattern" line per round, then any pending guess.
func (w *Wordle) String() string {
	lines := make([]string, 0, len(w.guesses))
	for i, s := range w.scores {
		lines = append(lines, w.guesses[i]+" "+string(s))
	}
	if !w.guessNext() {
		lines = append(lines, w.guesses[len(w.guesses)-1])
	}
	return strings.Join(lines, "\n")
}
