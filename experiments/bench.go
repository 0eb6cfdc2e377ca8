// Package experiments benchmarks the alpha-beta guesser against automatic
// scorers and records the results as CSV and, optionally, in SQLite.
package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"minimax/agent"
	"minimax/engine"
	"minimax/experiments/metrics"
	"minimax/game/wordle"
	"minimax/searcher"
)

type Bench struct {
	Vocabulary     []string
	Truths         []string
	Soft           bool
	Openers        []string
	MaxGuesses     int
	HeuristicDepth int
	Collector      searcher.MetricsCollector // Optional
}

type Results struct {
	Started time.Time
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
}

// Solved counts the solved games.
func (r Results) Solved() int {
	n := 0
	for _, g := range r.Games {
		if g.Solved {
			n++
		}
	}
	return n
}

// Run plays one game per truth. One evaluator is shared by the whole run.
func (b Bench) Run(ctx context.Context) (Results, error) {
	res := Results{Started: time.Now()}
	evaluator := wordle.NewEvaluator()
	search := searcher.NewAlphaBeta(searcher.WithSoft(b.Soft), searcher.WithMetrics(b.Collector))

	nodeOptions := []wordle.Option{wordle.WithEvaluator(evaluator)}
	if b.MaxGuesses > 0 {
		nodeOptions = append(nodeOptions, wordle.WithMaxGuesses(b.MaxGuesses))
	}
	if b.HeuristicDepth > 0 {
		nodeOptions = append(nodeOptions, wordle.WithHeuristic(wordle.DistinctLetters(b.HeuristicDepth)))
	}
	guesserOptions := []agent.GuesserOption{agent.WithNodeOptions(nodeOptions...)}
	if b.Openers != nil {
		guesserOptions = append(guesserOptions, agent.WithOpeners(b.Openers...))
	}

	log.Info().Msgf("starting benchmark over %d truths...", len(b.Truths))
	for i, truth := range b.Truths {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		scorer, err := agent.NewAutoScorer(truth, b.Vocabulary, evaluator)
		if err != nil {
			return res, err
		}
		guesser := agent.NewAlphaBetaGuesser(b.Vocabulary, search, guesserOptions...)
		game := engine.NewWordle(guesser, scorer, engine.WithMaxGuesses(b.MaxGuesses))

		start := time.Now()
		score, moves, err := game.Run()
		if err != nil {
			return res, fmt.Errorf("game %d (%s): %w", i+1, truth, err)
		}

		record := metrics.GameRecord{
			ID:        i + 1,
			Truth:     truth,
			Guesses:   len(game.Guesses()),
			Solved:    game.Solved(),
			Score:     score,
			StartTime: start,
			Duration:  time.Since(start),
		}
		for j, m := range moves {
			if m.Side != "guesser" {
				continue
			}
			record.Nodes += m.Nodes
			record.Cutoffs += m.Cutoffs
			move := metrics.MoveRecord{
				Game:     record.ID,
				Step:     m.Step,
				Guess:    m.Move,
				Nodes:    m.Nodes,
				Cutoffs:  m.Cutoffs,
				Duration: m.Duration,
			}
			if j+1 < len(moves) {
				move.Feedback = moves[j+1].Move
			}
			res.Moves = append(res.Moves, move)
		}
		res.Games = append(res.Games, record)

		log.Info().Msgf("completed game %d of %d: %s in %d guesses (solved=%t)", i+1, len(b.Truths), truth, record.Guesses, record.Solved)
	}
	log.Info().Msgf("completed benchmark: %d of %d solved", res.Solved(), len(res.Games))
	return res, nil
}

// Save writes the CSV files under dir and, when store is not nil, the
// SQLite rows. It returns the CSV directory.
func Save(ctx context.Context, res Results, dir string, store *Store, soft bool, vocabulary int) (string, error) {
	writer, err := metrics.NewWriter(dir, "bench")
	if err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(res.Games); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(res.Moves); err != nil {
		return "", err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored game and move records")

	if store != nil {
		runID, err := store.SaveRun(ctx, res.Started, soft, vocabulary, res.Games)
		if err != nil {
			return writer.Dir(), err
		}
		log.Info().Int64("run", runID).Msg("stored benchmark run")
	}
	return writer.Dir(), nil
}
