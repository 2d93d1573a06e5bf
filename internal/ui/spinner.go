package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunSpinner animates a spinner while the given action runs and returns the
// action's error. Used for probes long enough that a silent terminal would
// look hung. The UI exits when the action completes or the user cancels.
func RunSpinner(ctx context.Context, title string, action func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	done := make(chan error, 1)
	go func() { done <- action() }()

	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = lipgloss.NewStyle().Bold(true)

	m := &probeModel{
		title: title,
		spin:  s,
		done:  done,
		style: lipgloss.NewStyle().Padding(0, 1),
	}
	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return err
	}
	return m.err
}

type probeDoneMsg struct{ err error }

type probeModel struct {
	title    string
	spin     spinner.Model
	done     chan error
	finished bool
	err      error
	style    lipgloss.Style
}

func (m *probeModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.waitForAction())
}

func (m *probeModel) waitForAction() tea.Cmd {
	return func() tea.Msg { return probeDoneMsg{err: <-m.done} }
}

func (m *probeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.err = fmt.Errorf("probe canceled")
			return m, tea.Quit
		}
	case probeDoneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *probeModel) View() string {
	if m.finished {
		if m.err != nil {
			return m.style.Render("✗ " + m.title + " (" + m.err.Error() + ")\n")
		}
		return m.style.Render("✓ " + m.title + "\n")
	}
	return m.style.Render(m.spin.View() + " " + m.title)
}
