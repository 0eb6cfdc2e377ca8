package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"minimax/agent"
	"minimax/experiments/metrics"
	"minimax/game/wordle"
	"minimax/searcher"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the alpha-beta guesser over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}
		vocabulary, err := loadVocabulary()
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		evaluator := wordle.NewEvaluator()
		search := searcher.NewAlphaBeta(
			searcher.WithSoft(cfg.Soft),
			searcher.WithMetrics(metrics.NewCollector(reg, "wordle")),
		)
		guesser := agent.NewAlphaBetaGuesser(vocabulary, search,
			agent.WithOpeners(cfg.Openers...),
			agent.WithNodeOptions(
				wordle.WithEvaluator(evaluator),
				wordle.WithMaxGuesses(cfg.MaxGuesses),
				wordle.WithHeuristic(wordle.DistinctLetters(cfg.HeuristicDepth)),
			),
		)
		return agent.NewServer(vocabulary, guesser, evaluator, reg).Start(cfg.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address (default: config addr)")
	rootCmd.AddCommand(serveCmd)
}
