// Package session drives a Hacker from line-oriented user input: it reads
// commands, applies them to the candidate pool, and reports the results.
package session

import (
	"context"
	"errors"
	"io"

	"termhack/internal/command"
	"termhack/internal/hacker"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// User is the front end a session talks to.
type User interface {
	// Request blocks until the user issues a command or ctx is done. It
	// returns io.EOF once input is exhausted.
	Request(ctx context.Context) (command.Command, error)

	ShowCandidates(candidates []string) error
	ShowRecommended(password string) error
	ShowRankings(rankings []hacker.Ranking) error
	ShowAnswer(password string) error
	ShowError(err error) error
	ShowHelp() error
}

// App binds one candidate pool to one user.
type App struct {
	ID     string
	Hacker *hacker.Hacker
	User   User

	log     *zap.Logger
	guesses int
}

// NewApp creates a session with a fresh ID attached to every log entry.
func NewApp(h *hacker.Hacker, u User, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	return &App{
		ID:     id,
		Hacker: h,
		User:   u,
		log:    log.With(zap.String("session_id", id)),
	}
}

// Guesses returns the number of accepted guesses so far.
func (a *App) Guesses() int {
	return a.guesses
}

// Run processes commands until the password is deduced, the user exits,
// input runs out, or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.log.Info("session started", zap.Int("candidates", a.Hacker.Len()))
	for {
		if err := ctx.Err(); err != nil {
			a.log.Info("session interrupted", zap.Int("remaining", a.Hacker.Len()))
			return err
		}
		if answer, err := a.Hacker.Answer(); err == nil {
			a.log.Info("password deduced", zap.String("password", answer), zap.Int("guesses", a.guesses))
			return a.User.ShowAnswer(answer)
		}

		done, err := a.Step(ctx)
		switch {
		case ctx.Err() != nil:
			continue
		case errors.Is(err, io.EOF):
			a.log.Info("input closed", zap.Int("remaining", a.Hacker.Len()))
			return nil
		case err != nil:
			return err
		case done:
			a.log.Info("session exited", zap.Int("remaining", a.Hacker.Len()))
			return nil
		}
	}
}

// Step reads and executes a single command. done is true after exit.
func (a *App) Step(ctx context.Context) (done bool, err error) {
	cmd, err := a.User.Request(ctx)
	if err != nil {
		return false, err
	}
	return a.Dispatch(cmd)
}

// Dispatch executes cmd against the pool. done is true for exit.
// Rejected pool operations are shown to the user and are not errors here;
// the returned error is from the User itself.
func (a *App) Dispatch(cmd command.Command) (done bool, err error) {
	a.log.Debug("command", zap.Stringer("verb", cmd.Verb), zap.String("password", cmd.Password))

	switch cmd.Verb {
	case command.Exit:
		return true, nil

	case command.View:
		var list []string
		for pw := range a.Hacker.Candidates() {
			list = append(list, pw)
		}
		return false, a.User.ShowCandidates(list)

	case command.Recommend:
		pw, err := a.Hacker.Recommend()
		if err != nil {
			return false, a.reject(cmd, err)
		}
		return false, a.User.ShowRecommended(pw)

	case command.Rank:
		return false, a.User.ShowRankings(a.Hacker.Rankings())

	case command.Answer:
		pw, err := a.Hacker.Answer()
		if err != nil {
			return false, a.reject(cmd, err)
		}
		return false, a.User.ShowAnswer(pw)

	case command.Guess:
		before := a.Hacker.Len()
		if err := a.Hacker.Filter(cmd.Password, cmd.Correctness); err != nil {
			return false, a.reject(cmd, err)
		}
		a.guesses++
		a.log.Info("filtered",
			zap.String("guess", cmd.Password),
			zap.Int("correctness", cmd.Correctness),
			zap.Int("before", before),
			zap.Int("remaining", a.Hacker.Len()))
		return false, nil

	case command.Add:
		if err := a.Hacker.Add(cmd.Password); err != nil {
			return false, a.reject(cmd, err)
		}
		return false, nil

	case command.Remove:
		if err := a.Hacker.Remove(cmd.Password); err != nil {
			return false, a.reject(cmd, err)
		}
		return false, nil

	case command.Help:
		return false, a.User.ShowHelp()
	}
	return false, nil
}

func (a *App) reject(cmd command.Command, err error) error {
	a.log.Debug("command rejected",
		zap.Stringer("verb", cmd.Verb),
		zap.Stringer("kind", hacker.KindOf(err)),
		zap.Error(err))
	return a.User.ShowError(err)
}
