// Package words loads the vocabulary a Wordle game is played over.
//
// A vocabulary is newline-delimited, one lowercase word per line, all of the
// same length. Blank lines and lines starting with '#' are skipped. Duplicates
// keep their first occurrence only, so a guess removed from the candidates can
// never take an identical entry with it.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

//go:embed words.txt
var embedded string

var (
	ErrInvalidWord     = errors.New("invalid word")
	ErrEmptyVocabulary = errors.New("vocabulary is empty")
)

// Load reads the vocabulary at path, or the embedded default list when path
// is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		return Parse(strings.NewReader(embedded))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	vocabulary, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("vocabulary %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("words", len(vocabulary)).Msg("loaded vocabulary")
	return vocabulary, nil
}

// Default returns the embedded vocabulary.
func Default() []string {
	vocabulary, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("embedded vocabulary: %v", err))
	}
	return vocabulary
}

func Parse(r io.Reader) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if !isAlpha(w) {
			return nil, fmt.Errorf("line %d %q: %w", line, w, ErrInvalidWord)
		}
		if len(out) > 0 && len(w) != len(out[0]) {
			return nil, fmt.Errorf("line %d %q is not %d letters: %w", line, w, len(out[0]), ErrInvalidWord)
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmptyVocabulary
	}
	return out, nil
}

// Contains reports whether w is in the vocabulary, ignoring case.
func Contains(vocabulary []string, w string) bool {
	return slices.Contains(vocabulary, strings.ToLower(strings.TrimSpace(w)))
}

// Picker draws truth words. A fixed seed replays the same sequence.
type Picker struct {
	rng *rand.Rand
}

func NewPicker(seed uint64) *Picker {
	return &Picker{rng: rand.New(rand.NewSource(seed))}
}

func (p *Picker) Pick(vocabulary []string) string {
	return vocabulary[p.rng.Intn(len(vocabulary))]
}

// Sample returns n distinct words in random order, or the whole vocabulary
// shuffled when n exceeds its size.
func (p *Picker) Sample(vocabulary []string, n int) []string {
	out := slices.Clone(vocabulary)
	p.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if n < len(out) {
		out = out[:n]
	}
	return out
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
