package wordle

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"minimax/searcher"
)

var small = []string{"abc", "abd", "xyz"}

func collect(n *Node) []*Node {
	var out []*Node
	for c := range n.Children() {
		out = append(out, c.(*Node))
	}
	return out
}

func TestNode(t *testing.T) {
	t.Run("root belongs to the guesser", func(t *testing.T) {
		root := NewRoot(small)

		require.Equal(t, 1, root.Depth())
		require.True(t, root.IsMaximizing())
		require.False(t, root.IsTerminal())
		require.Empty(t, root.Moves())
		require.Equal(t, 0, root.Score(), "Empty history has no heuristic value")
	})

	t.Run("guesser children play each word", func(t *testing.T) {
		children := collect(NewRoot(small))

		require.Len(t, children, 3)
		for i, c := range children {
			require.Equal(t, 2, c.Depth())
			require.False(t, c.IsMaximizing())
			require.Equal(t, []searcher.Move{Word(small[i])}, c.Moves())
			require.Len(t, c.Moves(), c.Depth()-1)
		}
		require.Equal(t, 3, children[0].Score(), "Heuristic should count distinct letters of the guess")
	})

	t.Run("adversary children answer with feedback per candidate truth", func(t *testing.T) {
		guessed := collect(NewRoot(small))[0]
		children := collect(guessed)

		require.Len(t, children, 3)
		got := make([]string, 0, len(children))
		for _, c := range children {
			got = append(got, c.Moves()[1].String())
		}
		require.Equal(t, []string{"===", "==.", "..."}, got)
		require.True(t, children[0].IsTerminal(), "Correct feedback should end the game")
		require.Equal(t, 6, children[0].Score())
	})

	t.Run("pruning stays local to the branching node", func(t *testing.T) {
		guessed := collect(NewRoot(small))[0]
		answered := collect(guessed)[1]
		require.Equal(t, small, answered.Vocabulary())

		next := collect(answered)

		require.Equal(t, []string{"abd"}, answered.Vocabulary())
		require.Len(t, next, 1)
		require.Equal(t, small, guessed.Vocabulary(), "Parent vocabulary should be untouched")
	})

	t.Run("game ends after the last guess is answered", func(t *testing.T) {
		root := NewRoot(small, WithMaxGuesses(1))
		answered := collect(collect(root)[0])[2]

		require.Equal(t, 3, answered.Depth())
		require.True(t, answered.IsTerminal())
		require.Equal(t, 0, answered.Score())
	})

	t.Run("bounds carry sentinel patterns", func(t *testing.T) {
		root := NewRoot(small)

		require.Equal(t, MinimumScore, root.Minimum().Score())
		require.Equal(t, MaximumScore, root.Maximum().Score())
		require.Equal(t, []searcher.Move{MinimumPattern(3)}, root.Minimum().Moves())
	})

	t.Run("children share the evaluator", func(t *testing.T) {
		e := NewEvaluator()
		root := NewRoot(small, WithEvaluator(e))
		for c := range collect(root)[0].Children() {
			require.Same(t, e, c.(*Node).Evaluator())
		}
		require.Equal(t, 3, e.Len())
	})
}

func TestResume(t *testing.T) {
	t.Run("history is replayed with the guesser to move", func(t *testing.T) {
		n, err := Resume(small, []string{"abc"}, []Pattern{"==."})
		require.NoError(t, err)

		require.Equal(t, 3, n.Depth())
		require.True(t, n.IsMaximizing())
		require.Equal(t, []searcher.Move{Word("abc"), Pattern("==.")}, n.Moves())
		require.Equal(t, 3, n.Score())
	})

	t.Run("mismatched history is rejected", func(t *testing.T) {
		_, err := Resume(small, []string{"abc", "abd"}, []Pattern{"==."})
		require.ErrorIs(t, err, ErrHistoryMismatch)
	})

	t.Run("bad feedback is rejected", func(t *testing.T) {
		_, err := Resume(small, []string{"abc"}, []Pattern{"=x."})
		require.ErrorIs(t, err, ErrUnknownSymbol)
	})
}

func TestSearchWordle(t *testing.T) {
	for _, soft := range []bool{true, false} {
		root := NewRoot(small, WithMaxGuesses(2))

		got := searcher.Search(root, root.Minimum(), root.Maximum(), soft)

		require.Equal(t, 6, got.Score(), "Guesser can always solve three words in two guesses")
		require.True(t, got.IsTerminal())
		last := got.Moves()[len(got.Moves())-1].(Pattern)
		require.True(t, last.IsCorrect())
		require.True(t, slices.Contains(small, got.Moves()[0].String()))
	}
}
