package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"minimax/agent"
	"minimax/engine"
	"minimax/game/wordle"
	"minimax/searcher"
	"minimax/words"
)

var wordleCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Play one game of Wordle",
	Long: `Play one game of Wordle. By default the alpha-beta guesser plays against a scorer
that knows the truth; either side can be handed to the terminal instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		truth, _ := flags.GetString("truth")
		seed, _ := flags.GetUint64("seed")
		interactiveGuess, _ := flags.GetBool("interactive-guess")
		interactiveScore, _ := flags.GetBool("interactive-score")
		remote, _ := flags.GetString("remote")

		vocabulary, err := loadVocabulary()
		if err != nil {
			return err
		}
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		if truth == "" && !interactiveScore {
			truth = words.NewPicker(seed).Pick(vocabulary)
		}

		evaluator := wordle.NewEvaluator()
		prompter := agent.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		var guesser agent.Guesser
		switch {
		case interactiveGuess:
			guesser = agent.NewConsoleGuesser(prompter, vocabulary)
		case remote != "":
			guesser = agent.NewRemoteGuesser(remote, time.Minute)
		default:
			guesser = agent.NewAlphaBetaGuesser(vocabulary,
				searcher.NewAlphaBeta(searcher.WithSoft(cfg.Soft), searcher.WithMetrics(searcher.NewMetricsCollector())),
				agent.WithOpeners(cfg.Openers...),
				agent.WithNodeOptions(
					wordle.WithEvaluator(evaluator),
					wordle.WithMaxGuesses(cfg.MaxGuesses),
					wordle.WithHeuristic(wordle.DistinctLetters(cfg.HeuristicDepth)),
				),
			)
		}

		var scorer agent.Scorer
		if interactiveScore {
			scorer = agent.NewConsoleScorer(prompter, len(vocabulary[0]))
		} else {
			scorer, err = agent.NewAutoScorer(truth, vocabulary, evaluator)
			if err != nil {
				return err
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), "=== Wordle ===")
		game := engine.NewWordle(guesser, scorer,
			engine.WithMaxGuesses(cfg.MaxGuesses),
			engine.WithTranscript(cmd.OutOrStdout(), agent.Render),
		)
		score, _, err := game.Run()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "score %d\n", score)
		if truth != "" {
			fmt.Fprintln(cmd.OutOrStdout(), truth)
		}
		return nil
	},
}

func init() {
	wordleCmd.Flags().String("truth", "", "Hidden word (default: random word from the vocabulary)")
	wordleCmd.Flags().Uint64("seed", 0, "Seed for the random truth (default: time based)")
	wordleCmd.Flags().Bool("interactive-guess", false, "Guess from the terminal")
	wordleCmd.Flags().Bool("interactive-score", false, "Score from the terminal")
	wordleCmd.Flags().String("remote", "", "Ask the agent server at this URL for guesses")
	rootCmd.AddCommand(wordleCmd)
}
