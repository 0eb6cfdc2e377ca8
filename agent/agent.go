// Package agent holds the players of the games: search-driven, scripted and
// console-driven guessers, scorers and tic-tac-toe players.
package agent

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"minimax/game/wordle"
	"minimax/searcher"
)

var (
	ErrUnknownTruth  = errors.New("truth is not in the vocabulary")
	ErrNoCandidates  = errors.New("no word is consistent with the feedback")
	ErrUnexpectedEnd = errors.New("input ended before a valid answer")
)

// Guesser picks the next guess from the rounds played so far. Metrics are
// zero for guessers that do not search.
type Guesser interface {
	Guess(guesses []string, scores []wordle.Pattern) (string, searcher.SearchMetrics, error)
}

// Scorer answers a guess with its feedback pattern.
type Scorer interface {
	Score(guess string) (wordle.Pattern, error)
}

type AutoScorer struct {
	truth     string
	evaluator *wordle.Evaluator
}

// NewAutoScorer scores against a known truth. A nil evaluator gets a fresh one.
func NewAutoScorer(truth string, vocabulary []string, evaluator *wordle.Evaluator) (*AutoScorer, error) {
	if !slices.Contains(vocabulary, truth) {
		return nil, fmt.Errorf("%q: %w", truth, ErrUnknownTruth)
	}
	if evaluator == nil {
		evaluator = wordle.NewEvaluator()
	}
	return &AutoScorer{truth: truth, evaluator: evaluator}, nil
}

func (s *AutoScorer) Truth() string { return s.truth }

func (s *AutoScorer) Score(guess string) (wordle.Pattern, error) {
	if len(guess) != len(s.truth) {
		return "", fmt.Errorf("guess %q: %w", guess, wordle.ErrPatternLength)
	}
	return s.evaluator.Evaluate(s.truth, guess), nil
}

type GuesserOption func(g *AlphaBetaGuesser)

// WithOpeners sets the scripted opening. The first opener is always played
// first; the second only follows an all-absent first round.
func WithOpeners(openers ...string) GuesserOption {
	return func(g *AlphaBetaGuesser) {
		g.openers = openers
	}
}

// WithNodeOptions forwards options to every searched root.
func WithNodeOptions(options ...wordle.Option) GuesserOption {
	return func(g *AlphaBetaGuesser) {
		g.nodeOptions = append(g.nodeOptions, options...)
	}
}

// AlphaBetaGuesser searches the adversarial Wordle tree for the guess with the
// best worst case.
type AlphaBetaGuesser struct {
	vocabulary  []string
	search      *searcher.AlphaBeta
	openers     []string
	nodeOptions []wordle.Option
}

func NewAlphaBetaGuesser(vocabulary []string, search *searcher.AlphaBeta, options ...GuesserOption) *AlphaBetaGuesser {
	g := &AlphaBetaGuesser{ // Default values
		vocabulary: vocabulary,
		search:     search,
		openers:    []string{"crate", "bogus"},
	}
	if g.search == nil {
		g.search = searcher.NewAlphaBeta()
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *AlphaBetaGuesser) Guess(guesses []string, scores []wordle.Pattern) (string, searcher.SearchMetrics, error) {
	if opener, ok := g.opener(guesses, scores); ok {
		log.Debug().Str("guess", opener).Msg("opener")
		return opener, searcher.SearchMetrics{}, nil
	}

	candidates, err := wordle.Prune(g.vocabulary, guesses, scores, true)
	if err != nil {
		return "", searcher.SearchMetrics{}, fmt.Errorf("prune: %w", err)
	}
	if len(candidates) == 0 {
		return "", searcher.SearchMetrics{}, ErrNoCandidates
	}
	log.Debug().Int("candidates", len(candidates)).Msg("pruned vocabulary")

	root, err := wordle.Resume(candidates, guesses, scores, g.nodeOptions...)
	if err != nil {
		return "", searcher.SearchMetrics{}, err
	}
	move, metrics, err := g.search.FindNextMove(root)
	if err != nil {
		return "", metrics, fmt.Errorf("search after %d guesses: %w", len(guesses), err)
	}

	guess, ok := move.(wordle.Word)
	if !ok {
		panic(fmt.Sprintf("guesser ply played %T %v", move, move))
	}
	log.Info().Str("guess", string(guess)).Int64("nodes", metrics.Nodes).Msg("best guess")
	return string(guess), metrics, nil
}

func (g *AlphaBetaGuesser) opener(guesses []string, scores []wordle.Pattern) (string, bool) {
	switch {
	case len(guesses) == 0 && len(g.openers) > 0:
		return g.openers[0], true
	case len(guesses) == 1 && len(scores) == 1 && len(g.openers) > 1 && allAbsent(scores[0]):
		return g.openers[1], true
	}
	return "", false
}

func allAbsent(p wordle.Pattern) bool {
	return len(p) > 0 && strings.Count(string(p), string(wordle.Absent)) == len(p)
}
