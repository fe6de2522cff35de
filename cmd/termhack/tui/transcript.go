package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"termhack/cmd/termhack/ui"
	"termhack/internal/command"
	"termhack/internal/hacker"
	"termhack/internal/session"
)

// transcript is the session.User behind the TUI. Commands arrive through
// Model.Update rather than Request; output accumulates as styled lines.
type transcript struct {
	styles ui.Styles
	help   string
	lines  []string
}

var _ session.User = (*transcript)(nil)

func newTranscript(styles ui.Styles, width int) *transcript {
	return &transcript{styles: styles, help: session.RenderHelp(true, width)}
}

func (t *transcript) add(lines ...string) {
	t.lines = append(t.lines, lines...)
}

// tail returns at most n of the newest lines.
func (t *transcript) tail(n int) []string {
	if n <= 0 || len(t.lines) <= n {
		return t.lines
	}
	return t.lines[len(t.lines)-n:]
}

func (t *transcript) echo(line string) {
	t.add(t.styles.Prompt.Render("> ") + t.styles.UserInput.Render(line))
}

func (t *transcript) Request(context.Context) (command.Command, error) {
	return command.Command{}, io.EOF
}

func (t *transcript) ShowCandidates(candidates []string) error {
	t.add(t.styles.Muted.Render(fmt.Sprintf("Remaining candidate passwords: (%d)", len(candidates))))
	for _, pw := range candidates {
		t.add(t.styles.Body.Render(" * " + pw))
	}
	return nil
}

func (t *transcript) ShowRecommended(password string) error {
	t.add(t.styles.Muted.Render("Recommended: ") + t.styles.Highlight.Render(password))
	return nil
}

func (t *transcript) ShowRankings(rankings []hacker.Ranking) error {
	tbl := ui.NewSimpleTable("Candidates by score", "Score", "Password")
	for _, r := range rankings {
		tbl.AddRow(strconv.Itoa(r.Power), r.Password)
	}
	t.add(strings.Split(strings.TrimRight(tbl.View(t.styles), "\n"), "\n")...)
	return nil
}

func (t *transcript) ShowAnswer(password string) error {
	t.add(t.styles.Success.Render("Password deduced: " + password))
	return nil
}

func (t *transcript) ShowError(err error) error {
	t.add(t.styles.Error.Render("Error: " + err.Error()))
	return nil
}

func (t *transcript) ShowHelp() error {
	t.add(strings.Split(strings.TrimRight(t.help, "\n"), "\n")...)
	return nil
}
