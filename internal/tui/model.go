package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/alexander-akhmetov/attitude/internal/event"
	"github.com/alexander-akhmetov/attitude/internal/loop"
)

// chromeHeight is the number of rows taken by everything except the history.
const chromeHeight = 9

// Model is the bubbletea model for the TUI.
type Model struct {
	loop     *loop.Loop
	input    textinput.Model
	history  viewport.Model
	events   []event.Event
	width    int
	height   int
	ready    bool
	quitting bool
}

// NewModel creates a Model that applies increments to l.
func NewModel(l *loop.Loop, prompt string) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "x y z"
	ti.CharLimit = 64
	ti.Focus()

	return Model{
		loop:  l,
		input: ti,
	}
}

// Events returns the events shown in the history pane.
func (m Model) Events() []event.Event {
	return m.events
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
