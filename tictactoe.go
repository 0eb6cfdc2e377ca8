package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"minimax/agent"
	"minimax/engine"
	"minimax/game/tictactoe"
	"minimax/searcher"
)

var tictactoeCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Play tic-tac-toe against alpha-beta search",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		xKind, _ := flags.GetString("x")
		oKind, _ := flags.GetString("o")
		board, _ := flags.GetString("board")
		seed, _ := flags.GetUint64("seed")
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}

		prompter := agent.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		x, err := newPlayer(prompter, xKind, seed)
		if err != nil {
			return err
		}
		o, err := newPlayer(prompter, oKind, seed+1)
		if err != nil {
			return err
		}

		var start *tictactoe.Node
		if board != "" {
			if start, err = tictactoe.FromString(board); err != nil {
				return err
			}
		}

		score, _, err := engine.NewTicTacToe(x, o, start, cmd.OutOrStdout()).Run()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), score)
		return nil
	},
}

// newPlayer builds a player of the given kind. Console players share prompter.
func newPlayer(prompter *agent.Prompter, kind string, seed uint64) (agent.Player, error) {
	switch kind {
	case "alphabeta":
		return agent.NewAlphaBetaPlayer(searcher.NewAlphaBeta(searcher.WithSoft(cfg.Soft))), nil
	case "random":
		return agent.NewRandomPlayer(seed), nil
	case "console":
		return agent.NewConsolePlayer(prompter), nil
	}
	return nil, fmt.Errorf("unknown player %q (alphabeta, random, console)", kind)
}

func init() {
	tictactoeCmd.Flags().String("x", "alphabeta", "X player: alphabeta, random or console")
	tictactoeCmd.Flags().String("o", "console", "O player: alphabeta, random or console")
	tictactoeCmd.Flags().String("board", "", `Starting board, e.g. "X../.O./..."`)
	tictactoeCmd.Flags().Uint64("seed", 0, "Seed for random players (default: time based)")
	rootCmd.AddCommand(tictactoeCmd)
}
