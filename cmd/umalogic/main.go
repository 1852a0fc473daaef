package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	appName = "umalogic"
	version = "v1.0.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Horse race ensemble scoring and weight tuning",
		Version: version,
		Long: `umalogic scores race entries with a weighted ensemble of heuristic
agents, backtests flat win bets against historical results, and tunes
the ensemble weights with a greedy hill-climb search.`,
		Run: runDefaultEntry,
	}
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(newTuneCmd())
	rootCmd.AddCommand(newEvaluateCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// runDefaultEntry prints usage guidance; the tool is automation-first and
// has no interactive surface.
func runDefaultEntry(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "umalogic requires a subcommand in non-interactive use:\n\n")
		fmt.Fprintf(os.Stderr, "  umalogic tune --data-dir data/races --train-years 2020,2021 --test-years 2022\n")
		fmt.Fprintf(os.Stderr, "  umalogic evaluate --years 2022 --weights artifacts/weights.json\n\n")
		os.Exit(2)
	}
	_ = cmd.Help()
}

// applyVerbosity lowers the global log level when --verbose is set.
func applyVerbosity(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
