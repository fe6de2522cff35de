// Package simulate measures how well the recommender plays: it solves the
// puzzle once for every candidate taken as the secret, always guessing the
// recommended password, and summarizes how many guesses each game took.
package simulate

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"termhack/internal/hacker"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options controls a simulation run.
type Options struct {
	Workers    int // concurrent games; <= 0 means GOMAXPROCS
	MaxGuesses int // games needing more guesses are failures; <= 0 means unlimited
	Log        *zap.Logger
}

// Game is the record of one simulated puzzle.
type Game struct {
	Secret  string
	Guesses []string
	Solved  bool
}

// Report summarizes a simulation run. Games are in pool order.
type Report struct {
	Games     []Game
	Solved    int
	Failed    int
	Max       int         // most guesses any solved game needed
	Mean      float64     // mean guesses over solved games
	Histogram map[int]int // guesses -> solved games
}

// Play solves one puzzle on h, which it consumes. The game ends when the
// recommended guess is the secret or maxGuesses guesses have been spent.
func Play(h *hacker.Hacker, secret string, maxGuesses int) (Game, error) {
	game := Game{Secret: secret}
	if !h.Contains(secret) {
		return game, fmt.Errorf("secret %q is not a candidate", secret)
	}
	for maxGuesses <= 0 || len(game.Guesses) < maxGuesses {
		guess, err := h.Recommend()
		if err != nil {
			return game, fmt.Errorf("recommend for secret %q: %w", secret, err)
		}
		game.Guesses = append(game.Guesses, guess)
		if guess == secret {
			game.Solved = true
			return game, nil
		}
		if err := h.Filter(guess, hacker.Commonality(secret, guess)); err != nil {
			return game, fmt.Errorf("filter for secret %q: %w", secret, err)
		}
	}
	return game, nil
}

// Run plays one game per distinct candidate. Each game works on its own copy
// of the pool, so games run in parallel without sharing state.
func Run(ctx context.Context, candidates []string, opts Options) (*Report, error) {
	base, err := hacker.New(candidates)
	if err != nil {
		return nil, err
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	secrets := slices.Collect(base.Candidates())
	games := make([]Game, len(secrets))
	log.Info("simulation started",
		zap.Int("candidates", len(secrets)),
		zap.Int("workers", workers),
		zap.Int("max_guesses", opts.MaxGuesses))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, secret := range secrets {
		if egCtx.Err() != nil {
			break
		}
		h := base.Clone()
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			game, err := Play(h, secret, opts.MaxGuesses)
			if err != nil {
				return err
			}
			games[i] = game
			log.Debug("game finished",
				zap.String("secret", secret),
				zap.Int("guesses", len(game.Guesses)),
				zap.Bool("solved", game.Solved))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := summarize(games)
	log.Info("simulation finished",
		zap.Int("solved", report.Solved),
		zap.Int("failed", report.Failed),
		zap.Float64("mean_guesses", report.Mean),
		zap.Int("max_guesses", report.Max))
	return report, nil
}

func summarize(games []Game) *Report {
	r := &Report{Games: games, Histogram: make(map[int]int)}
	total := 0
	for _, g := range games {
		if !g.Solved {
			r.Failed++
			continue
		}
		n := len(g.Guesses)
		r.Solved++
		r.Histogram[n]++
		total += n
		r.Max = max(r.Max, n)
	}
	if r.Solved > 0 {
		r.Mean = float64(total) / float64(r.Solved)
	}
	return r
}
