package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"termhack/cmd/termhack/tui"
	"termhack/cmd/termhack/ui"
	"termhack/internal/hacker"
	"termhack/internal/logging"
	"termhack/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// useTUI reports whether cmd should run the full-screen interface.
func useTUI(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("tui")
	if flag == nil {
		return false
	}
	if flag.Changed {
		return flag.Value.String() == "true"
	}
	return cfg != nil && cfg.UI.Mode == "tui"
}

// runSession starts an interactive session on the candidate pool. An
// interrupt ends the session like exit does.
func runSession(cmd *cobra.Command, args []string) error {
	in := session.NewLineReader(cmd.InOrStdin())
	candidates, err := loadCandidates(cmd.Context(), args, in, cmd.ErrOrStderr())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}
	h, err := newPool(candidates)
	if err != nil {
		return err
	}

	log := logger.Get(logging.CategorySession)
	if useTUI(cmd) {
		return runTUI(cmd, h, tuiInput(cmd, in))
	}

	u := session.NewTextUser(in, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Session.Prompt)
	app := session.NewApp(h, u, log)
	err = app.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(cmd.ErrOrStderr())
		return nil
	}
	if err != nil {
		return fmt.Errorf("session %s: %w", app.ID, err)
	}
	return nil
}

// tuiInput keeps input already buffered during candidate entry. With nothing
// buffered the raw stream is used, so a terminal on stdin can enter raw mode.
func tuiInput(cmd *cobra.Command, in *session.LineReader) io.Reader {
	if in.Buffered() > 0 {
		return in
	}
	return cmd.InOrStdin()
}

func runTUI(cmd *cobra.Command, h *hacker.Hacker, in io.Reader) error {
	m := tui.New(h, ui.NewStyles(ui.ThemeByName(cfg.UI.Theme)), logger.Get(logging.CategoryUI))
	logger.Get(logging.CategoryUI).Info("tui started", zap.String("session_id", m.SessionID()))

	final, err := tui.Run(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(in),
		tea.WithOutput(cmd.ErrOrStderr()),
	)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if answer := final.Answer(); answer != "" {
		fmt.Fprintln(cmd.OutOrStdout(), answer)
	}
	return nil
}
