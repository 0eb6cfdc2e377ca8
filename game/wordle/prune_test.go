package wordle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrune(t *testing.T) {
	t.Run("correct feedback short-circuits to the guess", func(t *testing.T) {
		got, err := Prune([]string{"abcde", "xbcde", "abcfe"}, []string{"abcde"}, []Pattern{"====="}, false)
		require.NoError(t, err)
		require.Equal(t, []string{"abcde"}, got)
	})

	t.Run("history lengths must match", func(t *testing.T) {
		_, err := Prune([]string{"abcde"}, []string{"abcde"}, nil, false)
		require.ErrorIs(t, err, ErrHistoryMismatch)
	})

	t.Run("unknown symbol is rejected", func(t *testing.T) {
		_, err := Prune([]string{"abcde"}, []string{"abcde"}, []Pattern{"==x=="}, false)
		require.ErrorIs(t, err, ErrUnknownSymbol)
	})

	t.Run("guess longer than the words is rejected", func(t *testing.T) {
		_, err := Prune([]string{"abc", "abd"}, []string{"abcd"}, []Pattern{"...="}, false)
		require.ErrorIs(t, err, ErrPatternLength)

		_, err = Prune([]string{"abc", "abd"}, []string{"abcd"}, []Pattern{"===="}, true)
		require.ErrorIs(t, err, ErrPatternLength)
	})

	t.Run("present letters must move", func(t *testing.T) {
		got, err := Prune([]string{"abc", "bca", "cab", "xyz"}, []string{"axx"}, []Pattern{"-.."}, false)
		require.NoError(t, err)
		require.Equal(t, []string{"bca", "cab"}, got)
	})

	t.Run("absent duplicate only rules out its own position", func(t *testing.T) {
		got, err := Prune([]string{"abcde", "abade", "aacde"}, []string{"aafgh"}, []Pattern{"=...."}, false)
		require.NoError(t, err)
		require.Equal(t, []string{"abcde", "abade"}, got)
	})

	t.Run("only the latest round applies without full history", func(t *testing.T) {
		words := []string{"abc", "abd", "abe", "xbc"}
		guesses := []string{"xbc", "abd"}
		feedbacks := []Pattern{".==", "==."}

		latest, err := Prune(words, guesses, feedbacks, false)
		require.NoError(t, err)
		require.Equal(t, []string{"abc", "abe"}, latest)

		full, err := Prune(words, guesses, feedbacks, true)
		require.NoError(t, err)
		require.Equal(t, []string{"abc"}, full)

		require.Equal(t, []string{"abc", "abd", "abe", "xbc"}, words, "Input should not be modified")
	})
}
