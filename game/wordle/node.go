package wordle

import (
	"fmt"
	"iter"
	"slices"

	"github.com/rs/zerolog/log"

	"minimax/searcher"
)

const (
	DefaultMaxGuesses     = 6
	DefaultHeuristicDepth = 4
	defaultWordLength     = 5
)

type Option func(n *Node)

// WithEvaluator shares a feedback cache across nodes. Children always inherit
// their parent's evaluator.
func WithEvaluator(evaluator *Evaluator) Option {
	return func(n *Node) {
		if evaluator != nil {
			n.evaluator = evaluator
		}
	}
}

func WithHeuristic(heuristic Heuristic) Option {
	return func(n *Node) {
		if heuristic != nil {
			n.heuristic = heuristic
		}
	}
}

func WithMaxGuesses(guesses int) Option {
	return func(n *Node) {
		if guesses > 0 {
			n.maxGuesses = guesses
		}
	}
}

// Node is a Wordle position seen as a two-player game. Odd plies belong to the
// guesser, who maximizes by picking a word from the vocabulary. Even plies
// belong to an adversary, who minimizes by picking which candidate is the
// truth, that is, which feedback the last guess receives.
type Node struct {
	moves      []searcher.Move
	vocabulary []string
	depth      int
	pruned     bool
	length     int
	maxGuesses int
	evaluator  *Evaluator
	heuristic  Heuristic
}

// NewRoot starts a game with the guesser to move.
func NewRoot(vocabulary []string, options ...Option) *Node {
	n := &Node{
		moves:      []searcher.Move{},
		vocabulary: slices.Clone(vocabulary),
		depth:      1,
		length:     defaultWordLength,
		maxGuesses: DefaultMaxGuesses,
		evaluator:  NewEvaluator(),
		heuristic:  DistinctLetters(DefaultHeuristicDepth),
	}
	if len(vocabulary) > 0 {
		n.length = len(vocabulary[0])
	}
	for _, option := range options {
		option(n)
	}
	return n
}

// Resume rebuilds the node reached after the given guess/feedback rounds, with
// the guesser to move. vocabulary should already be consistent with all but
// possibly the last round, which the node prunes itself before branching.
func Resume(vocabulary, guesses []string, feedbacks []Pattern, options ...Option) (*Node, error) {
	if len(guesses) != len(feedbacks) {
		return nil, fmt.Errorf("resume with %d guesses, %d feedbacks: %w", len(guesses), len(feedbacks), ErrHistoryMismatch)
	}

	n := NewRoot(vocabulary, options...)
	for i, guess := range guesses {
		feedback, err := ParsePattern(string(feedbacks[i]), len(guess))
		if err != nil {
			return nil, fmt.Errorf("resume round %d: %w", i+1, err)
		}
		n.moves = append(n.moves, Word(guess), feedback)
	}
	n.depth = len(n.moves) + 1
	if len(guesses) > 0 {
		n.length = len(guesses[0])
	}
	return n, nil
}

func (n *Node) Depth() int             { return n.depth }
func (n *Node) Moves() []searcher.Move { return n.moves }
func (n *Node) IsMaximizing() bool     { return n.depth%2 == 1 }
func (n *Node) Evaluator() *Evaluator  { return n.evaluator }
func (n *Node) Vocabulary() []string   { return n.vocabulary }

func (n *Node) IsTerminal() bool {
	if n.depth > 2*n.maxGuesses {
		return true
	}
	last, ok := n.lastPattern()
	return ok && last.IsCorrect()
}

// Score is the final pattern's evaluation on terminal nodes and the heuristic
// value of the most recent guess elsewhere.
func (n *Node) Score() int {
	if last, ok := n.lastPattern(); ok && (last.IsSentinel() || n.IsTerminal()) {
		return ScoreEvaluation(last)
	}
	guess, ok := n.lastGuess()
	if !ok {
		return 0
	}
	return n.heuristic(n.depth, guess)
}

func (n *Node) Children() iter.Seq[searcher.Node] {
	if n.IsMaximizing() {
		n.prune()
		return func(yield func(searcher.Node) bool) {
			for _, word := range n.vocabulary {
				if !yield(n.child(Word(word))) {
					return
				}
			}
		}
	}

	guess, _ := n.lastGuess()
	return func(yield func(searcher.Node) bool) {
		// Candidates sharing a pattern are not merged
		for _, truth := range n.vocabulary {
			feedback := n.evaluator.Evaluate(truth, guess)
			if !yield(n.child(feedback)) {
				return
			}
		}
	}
}

func (n *Node) Minimum() searcher.Node {
	p := MinimumPattern(n.length)
	return searcher.Bound{Value: ScoreEvaluation(p), Move: p}
}

func (n *Node) Maximum() searcher.Node {
	p := MaximumPattern(n.length)
	return searcher.Bound{Value: ScoreEvaluation(p), Move: p}
}

func (n *Node) child(move searcher.Move) *Node {
	moves := make([]searcher.Move, len(n.moves), len(n.moves)+1)
	copy(moves, n.moves)
	log.Trace().Int("depth", n.depth+1).Stringer("move", move).Msg("create node")
	return &Node{
		moves:      append(moves, move),
		vocabulary: slices.Clone(n.vocabulary),
		depth:      n.depth + 1,
		length:     n.length,
		maxGuesses: n.maxGuesses,
		evaluator:  n.evaluator,
		heuristic:  n.heuristic,
	}
}

// prune applies the latest guess/feedback round to this node's own vocabulary,
// once, before it branches.
func (n *Node) prune() {
	if n.pruned {
		return
	}
	n.pruned = true
	if len(n.moves) < 2 {
		return
	}

	guess, _ := n.moves[len(n.moves)-2].(Word)
	feedback, _ := n.moves[len(n.moves)-1].(Pattern)
	pruned, err := Prune(n.vocabulary, []string{string(guess)}, []Pattern{feedback}, false)
	if err != nil {
		panic(fmt.Sprintf("prune node at depth %d: %v", n.depth, err))
	}
	n.vocabulary = pruned
}

func (n *Node) lastPattern() (Pattern, bool) {
	if len(n.moves) == 0 {
		return "", false
	}
	p, ok := n.moves[len(n.moves)-1].(Pattern)
	return p, ok
}

func (n *Node) lastGuess() (string, bool) {
	for i := len(n.moves) - 1; i >= 0; i-- {
		if w, ok := n.moves[i].(Word); ok {
			return string(w), true
		}
	}
	return "", false
}
