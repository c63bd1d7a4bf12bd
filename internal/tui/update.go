package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexander-akhmetov/attitude/internal/debug"
	"github.com/alexander-akhmetov/attitude/internal/input"
	"github.com/alexander-akhmetov/attitude/internal/timing"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := max(msg.Height-chromeHeight, 3)
		if !m.ready {
			timing.Log("Update: first WindowSizeMsg")
			m.history = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.history.Width = msg.Width
			m.history.Height = h
		}
		m.refreshHistory()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.history, cmd = m.history.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses the input line and applies it to the loop.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	in, err := input.Parse(line)
	if err != nil {
		debug.Logf("tui: rejected line %q: %v", strings.TrimSpace(line), err)
		m.events = append(m.events, m.loop.Reject())
		m.refreshHistory()
		return m, nil
	}

	if in.Kind == input.KindQuit {
		m.quitting = true
		return m, tea.Quit
	}

	m.events = append(m.events, m.loop.Apply(in.Increment))
	m.refreshHistory()
	return m, nil
}

func (m *Model) refreshHistory() {
	if !m.ready {
		return
	}
	m.history.SetContent(m.renderHistory())
	m.history.GotoBottom()
}
