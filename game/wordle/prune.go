package wordle

import (
	"fmt"
	"strings"
)

// Prune narrows words to the candidates consistent with the guess/feedback
// history. Pairs are applied from the most recent backwards; unless
// fullHistory is set only the most recent pair is applied. Every word must be
// as long as the guesses. words is not modified.
func Prune(words, guesses []string, feedbacks []Pattern, fullHistory bool) ([]string, error) {
	if len(guesses) != len(feedbacks) {
		return nil, fmt.Errorf("%d guesses, %d feedbacks: %w", len(guesses), len(feedbacks), ErrHistoryMismatch)
	}

	for i := len(guesses) - 1; i >= 0; i-- {
		guess, feedback := guesses[i], feedbacks[i]
		if len(guess) != len(feedback) {
			return nil, fmt.Errorf("guess %q, feedback %q: %w", guess, feedback, ErrPatternLength)
		}
		for _, w := range words {
			if len(w) != len(guess) {
				return nil, fmt.Errorf("guess %q, word %q: %w", guess, w, ErrPatternLength)
			}
		}
		if feedback.IsCorrect() {
			return []string{guess}, nil
		}

		// Not all exact, so the guess itself cannot be the truth
		words = filter(words, func(w string) bool { return w != guess })

		for j := 0; j < len(guess); j++ {
			c := guess[j]
			switch feedback[j] {
			case Exact:
				words = filter(words, func(w string) bool { return w[j] == c })
			case Present:
				words = filter(words, func(w string) bool { return displaced(w, j, c) })
			case Absent:
				if markedElsewhere(guess, feedback, c) {
					words = filter(words, func(w string) bool { return displaced(w, j, c) })
				} else {
					words = filter(words, func(w string) bool { return strings.IndexByte(w, c) < 0 })
				}
			default:
				return nil, fmt.Errorf("%q in feedback %q: %w", feedback[j], feedback, ErrUnknownSymbol)
			}
		}

		if !fullHistory {
			break
		}
	}
	return words, nil
}

// displaced reports whether w holds c somewhere other than position i.
func displaced(w string, i int, c byte) bool {
	return strings.IndexByte(w, c) >= 0 && w[i] != c
}

// markedElsewhere reports whether another occurrence of c in guess scored
// exact or present, so an absent mark for c only means it is used up.
func markedElsewhere(guess string, feedback Pattern, c byte) bool {
	for i := 0; i < len(guess); i++ {
		if guess[i] == c && feedback[i] != Absent {
			return true
		}
	}
	return false
}

func filter(words []string, keep func(string) bool) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}
