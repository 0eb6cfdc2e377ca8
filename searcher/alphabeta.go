package searcher

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrNoMove = errors.New("no move to play: search did not extend the root")

type Option func(ab *AlphaBeta)

// AlphaBeta is a depth-first minimax search with alpha-beta pruning.
// It keeps no state between searches other than its metrics collector.
type AlphaBeta struct {
	soft    bool
	metrics MetricsCollector
}

// WithSoft selects fail-soft (true) or fail-hard (false) pruning.
func WithSoft(soft bool) Option {
	return func(ab *AlphaBeta) {
		ab.soft = soft
	}
}

func WithMetrics(collector MetricsCollector) Option {
	return func(ab *AlphaBeta) {
		if collector != nil {
			ab.metrics = collector
		}
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		soft:    true,
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

// Search runs a single alpha-beta pass over root with the window [a, b].
func Search(root, a, b Node, soft bool) Node {
	return NewAlphaBeta(WithSoft(soft)).Search(root, a, b)
}

// Search returns the node ending the principal variation found from root, or
// root itself when it is terminal. Under fail-hard pruning the result may be
// one of the window bounds.
func (ab *AlphaBeta) Search(root, a, b Node) Node {
	return ab.search(root, a, b)
}

// FindNextMove searches root over its full sentinel window and returns the
// move the variation plays from root.
func (ab *AlphaBeta) FindNextMove(root Node) (Move, SearchMetrics, error) {
	if root.IsTerminal() {
		return nil, SearchMetrics{}, ErrNoMove
	}

	ab.metrics.Start()
	variation := ab.search(root, root.Minimum(), root.Maximum())
	metric := ab.metrics.Complete()

	ply := len(root.Moves())
	moves := variation.Moves()
	if _, isBound := variation.(Bound); isBound || len(moves) <= ply {
		return nil, metric, ErrNoMove
	}

	log.Debug().
		Int("score", variation.Score()).
		Int64("nodes", metric.Nodes).
		Int64("cutoffs", metric.Cutoffs).
		Str("variation", formatMoves(moves[ply:])).
		Msg("alphabeta variation")
	return moves[ply], metric, nil
}

func (ab *AlphaBeta) search(node, a, b Node) Node {
	ab.metrics.AddNode()
	if node.IsTerminal() {
		ab.metrics.AddLeaf()
		return node
	}

	maximizing := node.IsMaximizing()
	var best Node
	if !ab.soft { // Fail-hard starts from the bound it may fall back to
		if maximizing {
			best = a
		} else {
			best = b
		}
	}

	explored := false
	for child := range node.Children() {
		explored = true
		candidate := ab.search(child, a, b)
		if maximizing {
			if best == nil || Compare(candidate, best) > 0 {
				best = candidate
			}
			if Compare(best, a) > 0 {
				a = best
			}
		} else {
			if best == nil || Compare(candidate, best) < 0 {
				best = candidate
			}
			if Compare(best, b) < 0 {
				b = best
			}
		}

		if Compare(a, b) >= 0 {
			ab.metrics.AddCutoff()
			log.Trace().Int("depth", node.Depth()).Int("alpha", a.Score()).Int("beta", b.Score()).Msg("cutoff")
			if !ab.soft {
				if maximizing {
					return a
				}
				return b
			}
			break
		}
	}

	if !explored { // No children: the node stands as a leaf
		ab.metrics.AddLeaf()
		return node
	}
	return best
}

func formatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, move := range moves {
		parts[i] = move.String()
	}
	return strings.Join(parts, " ")
}
