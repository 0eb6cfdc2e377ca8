package searcher

import (
	"iter"
	"strconv"
)

type mockMove string

func (m mockMove) String() string {
	return string(m)
}

// mockNode is a hand-built game tree. Leaves are terminal, inner nodes alternate
// roles by depth like any real node.
type mockNode struct {
	score    int
	depth    int
	moves    []Move
	children []*mockNode
	inner    bool // Non-terminal even without children
	visits   *int
}

func leaf(score int) *mockNode {
	return &mockNode{score: score}
}

func branch(children ...*mockNode) *mockNode {
	return &mockNode{children: children}
}

// tree assigns depths and move paths below root and shares one visit counter.
func tree(root *mockNode) (*mockNode, *int) {
	visits := 0
	var assign func(node *mockNode, depth int, moves []Move)
	assign = func(node *mockNode, depth int, moves []Move) {
		node.depth = depth
		node.moves = moves
		node.visits = &visits
		for i, child := range node.children {
			path := append(append([]Move{}, moves...), mockMove(string(rune('a'+depth-1))+strconv.Itoa(i)))
			assign(child, depth+1, path)
		}
	}
	assign(root, 1, []Move{})
	return root, &visits
}

func (m *mockNode) Score() int         { return m.score }
func (m *mockNode) IsTerminal() bool   { return len(m.children) == 0 && !m.inner }
func (m *mockNode) IsMaximizing() bool { return m.depth%2 == 1 }
func (m *mockNode) Depth() int         { return m.depth }
func (m *mockNode) Moves() []Move      { return m.moves }
func (m *mockNode) Minimum() Node      { return Bound{Value: -100, Move: MinusInfinity} }
func (m *mockNode) Maximum() Node      { return Bound{Value: 100, Move: PlusInfinity} }

func (m *mockNode) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, child := range m.children {
			*m.visits++
			if !yield(child) {
				return
			}
		}
	}
}

// size counts every node in the subtree, root included.
func (m *mockNode) size() int {
	n := 1
	for _, child := range m.children {
		n += child.size()
	}
	return n
}

// classic is the textbook three-by-three tree with a minimax value of 3.
func classic() (*mockNode, *int) {
	return tree(branch(
		branch(leaf(3), leaf(12), leaf(8)),
		branch(leaf(2), leaf(4), leaf(6)),
		branch(leaf(14), leaf(5), leaf(2)),
	))
}
