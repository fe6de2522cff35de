package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"termhack/cmd/termhack/ui"
	"termhack/internal/logging"
	"termhack/internal/simulate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	simWorkers    int
	simMaxGuesses int
	simShowGames  bool
)

// simulateCmd plays every candidate as the secret
var simulateCmd = &cobra.Command{
	Use:   "simulate [passwords...]",
	Short: "Measure how many guesses the recommender needs for each secret",
	Long: `Plays one game for every candidate taken as the secret, always guessing
the recommended password, and reports how many guesses each game took.
Games that need more than --max-guesses guesses count as failures
(a RobCo terminal locks after 4).`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simWorkers, "workers", 0, "Concurrent games (default from config, 0 = all CPUs)")
	simulateCmd.Flags().IntVar(&simMaxGuesses, "max-guesses", 0, "Guess limit per game (default from config)")
	simulateCmd.Flags().BoolVar(&simShowGames, "games", false, "List every game's guesses")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	h, err := loadPool(cmd, args)
	if err != nil {
		return err
	}

	opts := simulate.Options{
		Workers:    cfg.GetWorkers(),
		MaxGuesses: cfg.Simulate.MaxGuesses,
		Log:        logger.Get(logging.CategorySimulate),
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = simWorkers
	}
	if cmd.Flags().Changed("max-guesses") {
		opts.MaxGuesses = simMaxGuesses
	}

	report, err := simulate.Run(cmd.Context(), slices.Collect(h.Candidates()), opts)
	if err != nil {
		opts.Log.Error("simulation failed", zap.Error(err))
		return fmt.Errorf("simulate: %w", err)
	}

	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
	out := cmd.OutOrStdout()

	if simShowGames {
		games := ui.NewSimpleTable("Games", "Secret", "Solved", "Guesses")
		for _, g := range report.Games {
			games.AddRow(g.Secret, strconv.FormatBool(g.Solved), strings.Join(g.Guesses, " "))
		}
		fmt.Fprintln(out, games.View(styles))
	}

	summary := ui.NewSimpleTable("Summary", "Games", "Solved", "Failed", "Mean guesses", "Max guesses")
	summary.AddRow(
		strconv.Itoa(len(report.Games)),
		strconv.Itoa(report.Solved),
		strconv.Itoa(report.Failed),
		strconv.FormatFloat(report.Mean, 'f', 2, 64),
		strconv.Itoa(report.Max),
	)
	fmt.Fprint(out, summary.View(styles))

	if len(report.Histogram) > 0 {
		hist := ui.NewSimpleTable("Guesses needed", "Guesses", "Games")
		keys := make([]int, 0, len(report.Histogram))
		for k := range report.Histogram {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			hist.AddRow(strconv.Itoa(k), strconv.Itoa(report.Histogram[k]))
		}
		fmt.Fprint(out, "\n"+hist.View(styles))
	}
	return nil
}
