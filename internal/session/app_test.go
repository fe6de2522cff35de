package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"termhack/internal/command"
	"termhack/internal/hacker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type harness struct {
	app    *App
	out    *bytes.Buffer
	errOut *bytes.Buffer
	logs   *observer.ObservedLogs
}

func newHarness(t *testing.T, input string, candidates ...string) *harness {
	t.Helper()
	h, err := hacker.New(candidates)
	require.NoError(t, err)

	core, logs := observer.New(zap.DebugLevel)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	u := NewTextUser(strings.NewReader(input), out, errOut, "> ")
	return &harness{app: NewApp(h, u, zap.New(core)), out: out, errOut: errOut, logs: logs}
}

func TestRun_Solves(t *testing.T) {
	hs := newHarness(t, "recommend\nguess aaaa 2\nguess abab 2\n", "aaaa", "aabb", "abab")

	require.NoError(t, hs.app.Run(context.Background()))

	assert.Equal(t, "aaaa\naabb\n", hs.out.String())
	assert.Contains(t, hs.errOut.String(), "Recommended: ")
	assert.Contains(t, hs.errOut.String(), "Password deduced: ")
	assert.Equal(t, 2, hs.app.Guesses())

	solved := hs.logs.FilterMessage("password deduced").All()
	require.Len(t, solved, 1)
	fields := solved[0].ContextMap()
	assert.Equal(t, "aabb", fields["password"])
	assert.Equal(t, hs.app.ID, fields["session_id"])
}

func TestRun_RejectionsLeavePoolIntact(t *testing.T) {
	input := strings.Join([]string{
		"guess zz 1",
		"guess ab 3",
		"guess ab 1",
		"add ab",
		"remove xy",
		"dance",
		"answer",
		"exit",
		"view",
	}, "\n")
	hs := newHarness(t, input, "ab", "ba")

	require.NoError(t, hs.app.Run(context.Background()))

	errs := hs.errOut.String()
	assert.Contains(t, errs, `"zz" is not in the list of candidate passwords`)
	assert.Contains(t, errs, `"ab" cannot have 3 characters correct`)
	assert.Contains(t, errs, `no candidate has 1 characters in common with "ab"`)
	assert.Contains(t, errs, `cannot add "ab": already present`)
	assert.Contains(t, errs, `"xy" is not in the list`)
	assert.Contains(t, errs, "command not recognised: dance")
	assert.Contains(t, errs, "password not yet determined")
	assert.Empty(t, hs.out.String(), "view after exit must not run")
	assert.Equal(t, 2, hs.app.Hacker.Len())
	assert.Zero(t, hs.app.Guesses())
	assert.Equal(t, 6, hs.logs.FilterMessage("command rejected").Len())
}

func TestRun_AddRemoveView(t *testing.T) {
	hs := newHarness(t, "add cd\nremove ab\nview\nrank\nexit\n", "ab", "xy")

	require.NoError(t, hs.app.Run(context.Background()))

	assert.Contains(t, hs.errOut.String(), "Remaining candidate passwords: (2)")
	assert.Contains(t, hs.out.String(), " * xy\n * cd\n")
	assert.Contains(t, hs.out.String(), "      2  xy\n      2  cd\n")
}

func TestRun_EOFEndsQuietly(t *testing.T) {
	hs := newHarness(t, "view", "ab", "cd")
	require.NoError(t, hs.app.Run(context.Background()))
	assert.Equal(t, " * ab\n * cd\n", hs.out.String())
	assert.Equal(t, 1, hs.logs.FilterMessage("input closed").Len())
}

func TestRun_AlreadySolved(t *testing.T) {
	hs := newHarness(t, "", "only")
	require.NoError(t, hs.app.Run(context.Background()))
	assert.Equal(t, "only\n", hs.out.String())
}

func TestRun_ContextCancelled(t *testing.T) {
	hs := newHarness(t, "view\n", "ab", "cd")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, hs.app.Run(ctx), context.Canceled)
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	h, err := hacker.New([]string{"ab", "cd"})
	require.NoError(t, err)
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	core, logs := observer.New(zap.InfoLevel)
	app := NewApp(h, NewTextUser(pr, io.Discard, io.Discard, "> "), zap.New(core))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	// Returns once the session has consumed the line and is reading again.
	_, err = io.WriteString(pw, "view\n")
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run still blocked after cancel")
	}
	assert.Equal(t, 1, logs.FilterMessage("session interrupted").Len())
	assert.Equal(t, 2, app.Hacker.Len())
}

func TestRun_Help(t *testing.T) {
	hs := newHarness(t, "help\nexit\n", "ab", "cd")
	require.NoError(t, hs.app.Run(context.Background()))
	assert.Contains(t, hs.errOut.String(), "recommend")
	assert.Contains(t, hs.errOut.String(), "guess")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRun_UserErrorPropagates(t *testing.T) {
	h, err := hacker.New([]string{"ab", "cd"})
	require.NoError(t, err)
	u := NewTextUser(strings.NewReader("view\n"), failingWriter{}, failingWriter{}, "> ")

	err = NewApp(h, u, nil).Run(context.Background())
	assert.EqualError(t, err, "closed")
}

func TestNewApp_UniqueIDs(t *testing.T) {
	h, err := hacker.New([]string{"ab"})
	require.NoError(t, err)
	a, b := NewApp(h, nil, nil), NewApp(h, nil, nil)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestDispatch(t *testing.T) {
	hs := newHarness(t, "", "aaaa", "aabb", "abab")

	done, err := hs.app.Dispatch(command.Command{Verb: command.Guess, Password: "aaaa", Correctness: 2})
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 2, hs.app.Hacker.Len())
	assert.Equal(t, 1, hs.app.Guesses())

	done, err = hs.app.Dispatch(command.Command{Verb: command.Exit})
	require.NoError(t, err)
	assert.True(t, done)
}
