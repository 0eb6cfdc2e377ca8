package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"minimax/agent"
	"minimax/game/wordle"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <truth> <guess>",
	Short: "Print the feedback a guess receives against a truth",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		truth, guess := strings.ToLower(args[0]), strings.ToLower(args[1])
		if len(truth) != len(guess) {
			return fmt.Errorf("%q and %q: %w", truth, guess, wordle.ErrPatternLength)
		}
		p := wordle.NewEvaluator().Evaluate(truth, guess)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d\n", agent.Render(guess, p), p, wordle.ScoreEvaluation(p))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}
