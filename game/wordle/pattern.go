package wordle

import (
	"errors"
	"fmt"
	"strings"
)

// Feedback symbols, one per letter position.
const (
	Exact   = '='
	Present = '-'
	Absent  = '.'
)

// Sentinel symbols. A pattern made only of these marks a bound node and is
// never produced by Evaluate.
const (
	minimumSymbol = '_'
	maximumSymbol = '^'
)

// Sentinel scores, beyond any real pattern score.
const (
	MinimumScore = -100
	MaximumScore = 100
)

var (
	ErrUnknownSymbol   = errors.New("unknown feedback symbol")
	ErrPatternLength   = errors.New("feedback length does not match word length")
	ErrHistoryMismatch = errors.New("guesses and feedbacks differ in length")
)

// Word is a guess move.
type Word string

func (w Word) String() string { return string(w) }

// Pattern is a feedback move: one of Exact, Present or Absent per position.
type Pattern string

func (p Pattern) String() string { return string(p) }

func CorrectPattern(length int) Pattern {
	return Pattern(strings.Repeat(string(Exact), length))
}

func MinimumPattern(length int) Pattern {
	return Pattern(strings.Repeat(string(minimumSymbol), length))
}

func MaximumPattern(length int) Pattern {
	return Pattern(strings.Repeat(string(maximumSymbol), length))
}

func (p Pattern) IsCorrect() bool { return uniform(p, Exact) }
func (p Pattern) IsMinimum() bool { return uniform(p, minimumSymbol) }
func (p Pattern) IsMaximum() bool { return uniform(p, maximumSymbol) }

// IsSentinel reports whether p marks a bound node.
func (p Pattern) IsSentinel() bool { return p.IsMinimum() || p.IsMaximum() }

func uniform(p Pattern, symbol byte) bool {
	if len(p) == 0 {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i] != symbol {
			return false
		}
	}
	return true
}

// ParsePattern validates user or wire input as a real feedback pattern for
// words of the given length.
func ParsePattern(s string, length int) (Pattern, error) {
	s = strings.TrimSpace(s)
	if len(s) != length {
		return "", fmt.Errorf("%q: %w", s, ErrPatternLength)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case Exact, Present, Absent:
		default:
			return "", fmt.Errorf("%q at position %d: %w", s[i], i, ErrUnknownSymbol)
		}
	}
	return Pattern(s), nil
}

// ScoreEvaluation sums absent=0, present=1 and exact=2 over the pattern.
// Sentinel patterns score MinimumScore and MaximumScore.
func ScoreEvaluation(p Pattern) int {
	switch {
	case p.IsMinimum():
		return MinimumScore
	case p.IsMaximum():
		return MaximumScore
	}

	score := 0
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case Absent:
		case Present:
			score++
		case Exact:
			score += 2
		default:
			panic(fmt.Sprintf("score pattern %q: %v", p, ErrUnknownSymbol))
		}
	}
	return score
}
