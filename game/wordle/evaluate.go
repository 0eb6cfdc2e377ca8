package wordle

type pair struct {
	truth string
	guess string
}

// Evaluator computes feedback patterns and remembers every pair it has seen.
// The cache lives as long as the evaluator; share one per game or benchmark run.
// It is not safe for concurrent use.
type Evaluator struct {
	cache map[pair]Pattern
}

func NewEvaluator() *Evaluator {
	return &Evaluator{cache: make(map[pair]Pattern)}
}

// Evaluate returns the feedback guess receives when the hidden word is truth.
func (e *Evaluator) Evaluate(truth, guess string) Pattern {
	key := pair{truth: truth, guess: guess}
	if p, ok := e.cache[key]; ok {
		return p
	}
	p := evaluate(truth, guess)
	e.cache[key] = p
	return p
}

// Len reports how many distinct pairs have been evaluated.
func (e *Evaluator) Len() int {
	return len(e.cache)
}

// evaluate scans left to right. A displaced letter is marked present only while
// the letters already marked for it in the guess prefix number fewer than its
// occurrences in truth, so each repeated letter in truth is consumed once.
func evaluate(truth, guess string) Pattern {
	n := min(len(truth), len(guess))
	var inTruth [256]int
	for i := 0; i < len(truth); i++ {
		inTruth[truth[i]]++
	}

	var marked [256]int
	status := make([]byte, n)
	for i := 0; i < n; i++ {
		c := guess[i]
		switch {
		case c == truth[i]:
			status[i] = Exact
			marked[c]++
		case inTruth[c] > 0 && marked[c] < inTruth[c]:
			status[i] = Present
			marked[c]++
		default:
			status[i] = Absent
		}
	}
	return Pattern(status)
}
