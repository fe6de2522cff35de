package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"termhack/internal/command"
	"termhack/internal/hacker"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// TextUser talks to a person over plain streams. Prompts and labels go to
// errput, results to output, so output can be piped on its own.
type TextUser struct {
	input  *LineReader
	output io.Writer
	errput io.Writer
	prompt string
	help   string
}

// NewTextUser wraps the given streams. Pass the *LineReader used for
// candidate entry as input to continue on the same stream. Help is rendered
// once, styled when errput is a terminal and plain otherwise.
func NewTextUser(input io.Reader, output, errput io.Writer, prompt string) *TextUser {
	return &TextUser{
		input:  NewLineReader(input),
		output: output,
		errput: errput,
		prompt: prompt,
		help:   RenderHelp(isTerminal(errput), 80),
	}
}

// StdUser is a TextUser on the process's standard streams.
func StdUser(prompt string) *TextUser {
	return NewTextUser(os.Stdin, os.Stdout, os.Stderr, prompt)
}

// RenderHelp renders command.HelpText for a terminal of the given width.
// When rendering fails the raw markdown is returned.
func RenderHelp(styled bool, width int) string {
	opt := glamour.WithStandardStyle("notty")
	if styled {
		opt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(width))
	if err != nil {
		return command.HelpText
	}
	out, err := r.Render(command.HelpText)
	if err != nil {
		return command.HelpText
	}
	return out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Request prompts until a line parses. Parse errors are reported and the
// user is asked again.
func (u *TextUser) Request(ctx context.Context) (command.Command, error) {
	for {
		if _, err := io.WriteString(u.errput, u.prompt); err != nil {
			return command.Command{}, err
		}
		line, err := u.input.ReadLine(ctx)
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return command.Command{}, err
		}

		cmd, perr := command.Parse(line)
		if perr == nil {
			return cmd, nil
		}
		var pe *command.ParseError
		if errors.As(perr, &pe) && pe.Kind == command.Blank {
			continue
		}
		if err := u.ShowError(perr); err != nil {
			return command.Command{}, err
		}
	}
}

func (u *TextUser) ShowCandidates(candidates []string) error {
	if _, err := fmt.Fprintf(u.errput, "Remaining candidate passwords: (%d)\n", len(candidates)); err != nil {
		return err
	}
	for _, pw := range candidates {
		if _, err := fmt.Fprintf(u.output, " * %s\n", pw); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(u.errput)
	return err
}

func (u *TextUser) ShowRecommended(password string) error {
	return u.labelled("Recommended: ", password)
}

func (u *TextUser) ShowRankings(rankings []hacker.Ranking) error {
	if _, err := fmt.Fprintf(u.errput, "Candidates by score, best first: (%d)\n", len(rankings)); err != nil {
		return err
	}
	for _, r := range rankings {
		if _, err := fmt.Fprintf(u.output, " %6d  %s\n", r.Power, r.Password); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(u.errput)
	return err
}

func (u *TextUser) ShowAnswer(password string) error {
	return u.labelled("Password deduced: ", password)
}

func (u *TextUser) ShowError(err error) error {
	_, werr := fmt.Fprintf(u.errput, "Error: %v\n\n", err)
	return werr
}

func (u *TextUser) ShowHelp() error {
	_, err := io.WriteString(u.errput, strings.TrimRight(u.help, "\n")+"\n\n")
	return err
}

func (u *TextUser) labelled(label, value string) error {
	if _, err := io.WriteString(u.errput, label); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(u.output, value); err != nil {
		return err
	}
	_, err := fmt.Fprintln(u.errput)
	return err
}
