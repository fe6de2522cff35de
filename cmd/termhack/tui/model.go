// Package tui is the full-screen bubbletea front end for a hacking session.
package tui

import (
	"errors"
	"strconv"
	"strings"

	"termhack/cmd/termhack/ui"
	"termhack/internal/command"
	"termhack/internal/hacker"
	"termhack/internal/session"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	sidebarRows   = 10
)

// Model is the bubbletea model for one session.
type Model struct {
	app      *session.App
	out      *transcript
	input    textinput.Model
	styles   ui.Styles
	rankings []hacker.Ranking
	width    int
	height   int
	answer   string
	quitting bool
}

// New builds a model around h. Log entries carry the session ID like the
// text front end.
func New(h *hacker.Hacker, styles ui.Styles, log *zap.Logger) Model {
	out := newTranscript(styles, defaultWidth-4)

	ti := textinput.New()
	ti.Placeholder = "guess <password> <n>, recommend, view, rank, help"
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.UserInput
	ti.CharLimit = 256
	ti.Width = defaultWidth - 4
	ti.Focus()

	m := Model{
		app:    session.NewApp(h, out, log),
		out:    out,
		input:  ti,
		styles: styles,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.refresh()
	return m
}

// Answer returns the deduced password, or "" if the session ended first.
func (m Model) Answer() string {
	return m.answer
}

// SessionID returns the ID attached to this session's log entries.
func (m Model) SessionID() string {
	return m.app.ID
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")

	cmd, err := command.Parse(line)
	if err != nil {
		var pe *command.ParseError
		if errors.As(err, &pe) && pe.Kind == command.Blank {
			return m, nil
		}
		m.out.echo(line)
		_ = m.out.ShowError(err)
		return m, nil
	}

	m.out.echo(line)
	done, _ := m.app.Dispatch(cmd) // transcript never fails
	if done {
		m.quitting = true
		return m, tea.Quit
	}
	m.refresh()

	if answer, err := m.app.Hacker.Answer(); err == nil {
		m.answer = answer
		m.quitting = true
		_ = m.out.ShowAnswer(answer)
		return m, tea.Quit
	}
	return m, nil
}

// refresh recomputes the sidebar scores after the pool changes.
func (m *Model) refresh() {
	m.rankings = m.app.Hacker.Rankings()
}

func (m Model) View() string {
	header := m.styles.Header.Render("ROBCO INDUSTRIES (TM) TERMLINK PROTOCOL") +
		m.styles.Muted.Render("  candidates: "+strconv.Itoa(m.app.Hacker.Len())+
			"  guesses: "+strconv.Itoa(m.app.Guesses()))

	sidebar := m.sidebar()
	sideWidth := lipgloss.Width(sidebar)
	logWidth := max(m.width-sideWidth-2, 20)
	logHeight := max(m.height-6, 3)

	log := lipgloss.NewStyle().Width(logWidth).Height(logHeight).
		Render(strings.Join(m.out.tail(logHeight), "\n"))
	body := lipgloss.JoinHorizontal(lipgloss.Top, log, "  ", sidebar)

	footer := m.styles.Footer.Render("enter: run command  esc: quit")
	if m.quitting {
		footer = ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.input.View(), footer)
}

func (m Model) sidebar() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Best guesses"))
	for i, r := range m.rankings {
		if i == sidebarRows {
			sb.WriteString("\n" + m.styles.Muted.Render("..."))
			break
		}
		line := strconv.Itoa(r.Power) + "  " + r.Password
		if i == 0 {
			line = m.styles.Highlight.Render(line)
		} else {
			line = m.styles.Body.Render(line)
		}
		sb.WriteString("\n" + line)
	}
	return m.styles.Sidebar.Render(sb.String())
}

// Run starts the TUI and blocks until the session ends, returning the final
// model.
func Run(m Model, opts ...tea.ProgramOption) (Model, error) {
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m, err
	}
	return final.(Model), nil
}
