package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"termhack/internal/config"
	"termhack/internal/hacker"
	"termhack/internal/logging"
	"termhack/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string
	wordlist   string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *logging.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "termhack [passwords...]",
	Short: "Crack RobCo terminal passwords by elimination",
	Long: `termhack narrows a list of candidate terminal passwords using the
"N/M correct" likeness feedback the terminal gives for each wrong guess,
and recommends the guess expected to eliminate the most candidates.

Candidates come from the arguments, from --wordlist, or, when neither is
given, are read from standard input one per line, ending with a blank line.

Run without a subcommand to start an interactive session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if wordlist != "" {
			cfg.Session.Wordlist = wordlist
		}

		// The TUI owns the terminal; only log there when writing to a file.
		if useTUI(cmd) && cfg.Logging.File == "" {
			logger = logging.Nop()
			return nil
		}
		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logger.Get(logging.CategoryBoot).Debug("config loaded",
			zap.String("path", configPath),
			zap.String("ui", cfg.UI.Mode))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSession,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file path")
	rootCmd.PersistentFlags().StringVarP(&wordlist, "wordlist", "w", "", "File of candidate passwords, one per line")
	rootCmd.Flags().Bool("tui", false, "Use the full-screen interface")

	rootCmd.AddCommand(recommendCmd, rankCmd, simulateCmd, configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadCandidates resolves the candidate list: arguments first, then the
// configured wordlist, then interactive entry on in.
func loadCandidates(ctx context.Context, args []string, in *session.LineReader, prompt io.Writer) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if cfg != nil && cfg.Session.Wordlist != "" {
		return session.LoadWordlist(cfg.Session.Wordlist)
	}
	return session.ReadCandidates(ctx, in, prompt)
}

func newPool(candidates []string) (*hacker.Hacker, error) {
	h, err := hacker.New(candidates)
	if errors.Is(err, hacker.ErrEmptyPool) {
		return nil, fmt.Errorf("no candidate passwords: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("bad candidate list: %w", err)
	}
	return h, nil
}
