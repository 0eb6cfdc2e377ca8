package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"minimax/config"
	"minimax/words"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "minimax",
	Short: "Alpha-beta search over Wordle and tic-tac-toe",
	Long: `minimax plays two-player games with alpha-beta search. Wordle is played as a game
against an adversary who picks the hidden word as late as possible.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded

		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.LogLevel, _ = flags.GetString("log-level")
		}
		if flags.Changed("vocabulary") {
			cfg.Vocabulary, _ = flags.GetString("vocabulary")
		}
		if flags.Changed("hard") {
			hard, _ := flags.GetBool("hard")
			cfg.Soft = !hard
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(cfg.Level())
		log.Debug().Interface("config", cfg).Msg("loaded config")
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "YAML config file")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("vocabulary", "", "Word list file, one word per line (default: embedded list)")
	rootCmd.PersistentFlags().Bool("hard", false, "Use fail-hard instead of fail-soft pruning")
}

func loadVocabulary() ([]string, error) {
	return words.Load(cfg.Vocabulary)
}
