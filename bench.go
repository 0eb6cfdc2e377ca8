package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"minimax/experiments"
	"minimax/searcher"
	"minimax/words"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Play the alpha-beta guesser against many truths and record the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		games, _ := flags.GetInt("games")
		seed, _ := flags.GetUint64("seed")
		out, _ := flags.GetString("out")
		if flags.Changed("db") {
			cfg.DB, _ = flags.GetString("db")
		}
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}

		vocabulary, err := loadVocabulary()
		if err != nil {
			return err
		}

		bench := experiments.Bench{
			Vocabulary:     vocabulary,
			Truths:         words.NewPicker(seed).Sample(vocabulary, games),
			Soft:           cfg.Soft,
			Openers:        cfg.Openers,
			MaxGuesses:     cfg.MaxGuesses,
			HeuristicDepth: cfg.HeuristicDepth,
			Collector:      searcher.NewMetricsCollector(),
		}
		res, err := bench.Run(cmd.Context())
		if err != nil {
			return err
		}

		var store *experiments.Store
		if cfg.DB != "" {
			if store, err = experiments.OpenStore(cfg.DB); err != nil {
				return err
			}
			defer store.Close()
		}
		dir, err := experiments.Save(cmd.Context(), res, out, store, cfg.Soft, len(vocabulary))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "solved %d of %d, results in %s\n", res.Solved(), len(res.Games), dir)
		return nil
	},
}

func init() {
	benchCmd.Flags().Int("games", 20, "Number of truths to play")
	benchCmd.Flags().Uint64("seed", 0, "Seed for picking truths (default: time based)")
	benchCmd.Flags().String("out", "experiments", "Directory for CSV results")
	benchCmd.Flags().String("db", "", "SQLite file for results (default: config db)")
	rootCmd.AddCommand(benchCmd)
}
