package agent

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"minimax/game/wordle"
	"minimax/searcher"
	"minimax/words"
)

// Prompter reads answers line by line. Console agents playing in the same
// game share one Prompter so that buffered input is not split between them.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// ask repeats prompt until check accepts the answer. check returns a
// complaint to print before asking again, or "" to accept.
func (p *Prompter) ask(prompt string, check func(string) string) (string, error) {
	for {
		fmt.Fprint(p.out, prompt)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", err
			}
			return "", ErrUnexpectedEnd
		}
		answer := strings.ToLower(strings.TrimSpace(p.in.Text()))
		if complaint := check(answer); complaint != "" {
			fmt.Fprintln(p.out, complaint)
			continue
		}
		return answer, nil
	}
}

// ConsoleGuesser lets a person guess. Unknown words and wrong lengths are
// re-prompted.
type ConsoleGuesser struct {
	*Prompter
	vocabulary []string
}

func NewConsoleGuesser(p *Prompter, vocabulary []string) *ConsoleGuesser {
	return &ConsoleGuesser{Prompter: p, vocabulary: vocabulary}
}

func (g *ConsoleGuesser) Guess(guesses []string, scores []wordle.Pattern) (string, searcher.SearchMetrics, error) {
	length := 0
	if len(g.vocabulary) > 0 {
		length = len(g.vocabulary[0])
	}
	guess, err := g.ask("Guess: ", func(s string) string {
		switch {
		case len(s) != length:
			return fmt.Sprintf("Guess must be %d letters long. Enter another.", length)
		case !words.Contains(g.vocabulary, s):
			return "Guess not a known word."
		}
		return ""
	})
	return guess, searcher.SearchMetrics{}, err
}

// ConsoleScorer lets a person score guesses against a word only they know.
type ConsoleScorer struct {
	*Prompter
	length int
}

func NewConsoleScorer(p *Prompter, length int) *ConsoleScorer {
	return &ConsoleScorer{Prompter: p, length: length}
}

func (s *ConsoleScorer) Score(guess string) (wordle.Pattern, error) {
	fmt.Fprintf(s.out, "Guess: %s\n", guess)
	answer, err := s.ask("Score: ", func(a string) string {
		if _, err := wordle.ParsePattern(a, s.length); err != nil {
			return fmt.Sprintf("Score must be %d of %c %c %c. Enter another.", s.length, wordle.Exact, wordle.Present, wordle.Absent)
		}
		return ""
	})
	if err != nil {
		return "", err
	}
	return wordle.Pattern(answer), nil
}

// Render colors each letter of guess by its feedback, the way the board
// shows tiles. Terminals without color support get the plain guess.
func Render(guess string, feedback wordle.Pattern) string {
	p := termenv.ColorProfile()
	var sb strings.Builder
	for i := 0; i < len(guess); i++ {
		tile := termenv.String(" " + strings.ToUpper(guess[i:i+1]) + " ").Foreground(p.Color("#ffffff"))
		if i < len(feedback) {
			switch feedback[i] {
			case wordle.Exact:
				tile = tile.Background(p.Color("#6aaa64"))
			case wordle.Present:
				tile = tile.Background(p.Color("#c9b458"))
			default:
				tile = tile.Background(p.Color("#787c7e"))
			}
		}
		sb.WriteString(tile.String())
	}
	return sb.String()
}
