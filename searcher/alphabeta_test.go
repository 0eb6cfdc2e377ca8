package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlphaBetaSearch(t *testing.T) {
	t.Run("fail-soft returns the leaf holding the minimax value", func(t *testing.T) {
		root, _ := classic()

		got := Search(root, root.Minimum(), root.Maximum(), true)

		require.Equal(t, 3, got.Score(), "Root minimax value should be 3")
		require.Equal(t, []Move{mockMove("a0"), mockMove("b0")}, got.Moves(),
			"Variation should run through the first branch")
	})

	t.Run("fail-hard picks an explored child when the window never cuts the root", func(t *testing.T) {
		root, _ := classic()

		got := Search(root, root.Minimum(), root.Maximum(), false)

		require.Equal(t, 3, got.Score(), "Root minimax value should be 3")
		require.Equal(t, mockMove("a0"), got.Moves()[0], "Chosen move should be an explored child")
	})

	t.Run("terminal root is returned unchanged", func(t *testing.T) {
		root, _ := tree(leaf(7))

		got := Search(root, root.Minimum(), root.Maximum(), true)

		require.Same(t, root, got, "Terminal root should be its own variation")
	})

	t.Run("minimizing root picks the lowest child", func(t *testing.T) {
		root, _ := tree(branch(leaf(4), leaf(1), leaf(9)))
		root.depth = 2 // Even plies minimize

		got := Search(root, root.Minimum(), root.Maximum(), true)

		require.Equal(t, 1, got.Score())
	})

	t.Run("ties keep the first child yielded", func(t *testing.T) {
		root, _ := tree(branch(leaf(5), leaf(5), leaf(5)))

		soft := Search(root, root.Minimum(), root.Maximum(), true)
		hard := Search(root, root.Minimum(), root.Maximum(), false)

		require.Equal(t, []Move{mockMove("a0")}, soft.Moves(), "Fail-soft should keep the first tie")
		require.Equal(t, []Move{mockMove("a0")}, hard.Moves(), "Fail-hard should keep the first tie")
	})

	t.Run("inner node without children stands as a leaf", func(t *testing.T) {
		empty := &mockNode{score: 6, depth: 2, inner: true, visits: new(int)}
		got := Search(empty, empty.Minimum(), empty.Maximum(), true)

		require.Same(t, empty, got)
	})
}

func TestAlphaBetaWindow(t *testing.T) {
	t.Run("pruning visits fewer children than an exhaustive walk", func(t *testing.T) {
		root, visits := classic()
		exhaustive := root.size() - 1

		Search(root, root.Minimum(), root.Maximum(), true)

		require.Less(t, *visits, exhaustive, "Second and third branches should be cut")
		require.Equal(t, 10, *visits)
	})

	t.Run("narrow window containing the value keeps the fail-soft score", func(t *testing.T) {
		root, visits := classic()
		full := Search(root, root.Minimum(), root.Maximum(), true)
		fullVisits := *visits

		*visits = 0
		narrow := Search(root, Bound{Value: 1, Move: MinusInfinity}, Bound{Value: 10, Move: PlusInfinity}, true)

		require.Equal(t, full.Score(), narrow.Score(), "Score should not change")
		require.LessOrEqual(t, *visits, fullVisits, "Narrow window should not visit more children")
		require.LessOrEqual(t, *visits, root.size()-1)
	})

	t.Run("fail-hard clamps to the bound when the value lies below the window", func(t *testing.T) {
		root, _ := classic()
		low := Bound{Value: 5, Move: MinusInfinity}
		high := Bound{Value: 100, Move: PlusInfinity}

		got := Search(root, low, high, false)

		require.Equal(t, low, got, "Fail-hard should return the alpha bound itself")
	})

	t.Run("fail-soft keeps an explored node when the value lies below the window", func(t *testing.T) {
		root, _ := classic()
		low := Bound{Value: 5, Move: MinusInfinity}
		high := Bound{Value: 100, Move: PlusInfinity}

		got := Search(root, low, high, true)

		require.Equal(t, 5, got.Score(), "Fail-soft should report the best value it saw")
		require.Equal(t, []Move{mockMove("a2"), mockMove("b1")}, got.Moves(),
			"Variation should be the explored node that attained it")
	})
}

func TestFindNextMove(t *testing.T) {
	t.Run("returns the first move of the variation", func(t *testing.T) {
		root, _ := classic()
		collector := NewMetricsCollector()
		ab := NewAlphaBeta(WithSoft(true), WithMetrics(collector))

		move, metric, err := ab.FindNextMove(root)

		require.NoError(t, err)
		require.Equal(t, mockMove("a0"), move)
		require.Equal(t, int64(11), metric.Nodes, "Root and ten visited children")
		require.Equal(t, int64(2), metric.Cutoffs)
		require.Equal(t, int64(7), metric.Leaves)
	})

	t.Run("returns the move after an existing history", func(t *testing.T) {
		root, _ := classic()
		var shift func(node *mockNode)
		shift = func(node *mockNode) {
			node.moves = append([]Move{mockMove("x"), mockMove("y")}, node.moves...)
			node.depth += 2
			for _, child := range node.children {
				shift(child)
			}
		}
		shift(root)

		move, _, err := NewAlphaBeta().FindNextMove(root)

		require.NoError(t, err)
		require.Equal(t, mockMove("a0"), move)
	})

	t.Run("fails on a terminal root", func(t *testing.T) {
		root, _ := tree(leaf(1))

		_, _, err := NewAlphaBeta().FindNextMove(root)

		require.ErrorIs(t, err, ErrNoMove)
	})
}

func TestCompare(t *testing.T) {
	require.Equal(t, -1, Compare(leaf(1), leaf(2)))
	require.Equal(t, 0, Compare(leaf(2), Bound{Value: 2}))
	require.Equal(t, 1, Compare(Bound{Value: 100}, leaf(10)))
}
