package main

import (
	"fmt"
	"strconv"

	"termhack/cmd/termhack/ui"
	"termhack/internal/hacker"
	"termhack/internal/session"

	"github.com/spf13/cobra"
)

// recommendCmd prints the best next guess for a candidate list
var recommendCmd = &cobra.Command{
	Use:   "recommend [passwords...]",
	Short: "Print the most informative password to guess first",
	Long: `Scores every candidate as a possible guess and prints the one expected
to leave the fewest candidates. Ties go to the alphabetically first candidate.

Example:
  termhack recommend TIRES WIRES FIRES TRIES TRICK`,
	RunE: runRecommend,
}

// rankCmd prints every candidate with its score
var rankCmd = &cobra.Command{
	Use:   "rank [passwords...]",
	Short: "List every candidate with its score, best first",
	Long: `The score is the expected number of surviving candidates after
guessing that password, multiplied by the number of candidates. Lower is better.`,
	RunE: runRank,
}

func loadPool(cmd *cobra.Command, args []string) (*hacker.Hacker, error) {
	candidates, err := loadCandidates(cmd.Context(), args, session.NewLineReader(cmd.InOrStdin()), cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return newPool(candidates)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	h, err := loadPool(cmd, args)
	if err != nil {
		return err
	}
	pw, err := h.Recommend()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), pw)
	return nil
}

func runRank(cmd *cobra.Command, args []string) error {
	h, err := loadPool(cmd, args)
	if err != nil {
		return err
	}
	tbl := ui.NewSimpleTable("", "Score", "Password")
	for _, r := range h.Rankings() {
		tbl.AddRow(strconv.Itoa(r.Power), r.Password)
	}
	fmt.Fprint(cmd.OutOrStdout(), tbl.View(ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))))
	return nil
}
