package wordle

// Heuristic scores a non-terminal node from its depth and the most recent guess.
type Heuristic func(depth int, guess string) int

// DistinctLetters rewards guesses that probe many different letters early on.
// Past threshold plies the heuristic is flat.
func DistinctLetters(threshold int) Heuristic {
	return func(depth int, guess string) int {
		if depth > threshold {
			return 0
		}
		var seen [256]bool
		count := 0
		for i := 0; i < len(guess); i++ {
			if !seen[guess[i]] {
				seen[guess[i]] = true
				count++
			}
		}
		return count
	}
}
