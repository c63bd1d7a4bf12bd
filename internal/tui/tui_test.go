package tui

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexander-akhmetov/attitude/internal/attitude"
	"github.com/alexander-akhmetov/attitude/internal/event"
	"github.com/alexander-akhmetov/attitude/internal/loop"
)

func newTestModel(t *testing.T, cfg loop.Config) (Model, *loop.Loop) {
	t.Helper()
	l := loop.New(cfg, nil, nil)
	m := NewModel(l, "> ")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model), l
}

func enter(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(line)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got, ok := updated.(Model)
	require.True(t, ok)
	return got, cmd
}

func TestSubmit_Accumulates(t *testing.T) {
	m, l := newTestModel(t, loop.Config{})

	m, cmd := enter(t, m, "1 2 3")
	assert.Nil(t, cmd)
	m, _ = enter(t, m, "4,5,6")

	assert.Equal(t, attitude.New(5, 7, 9), l.Current())
	require.Len(t, m.Events(), 2)
	assert.Equal(t, attitude.Grace, m.Events()[1].Planet)
	assert.Empty(t, m.input.Value(), "input is cleared after submit")
	assert.Contains(t, m.View(), "GRACE")
	assert.Contains(t, m.View(), "5, 7, 9")
}

func TestSubmit_Invalid(t *testing.T) {
	m, l := newTestModel(t, loop.Config{})

	m, _ = enter(t, m, "one two three")

	assert.Equal(t, attitude.Zero(), l.Current())
	require.Len(t, m.Events(), 1)
	assert.Equal(t, event.KindInvalid, m.Events()[0].Kind)
	assert.Contains(t, m.View(), loop.InvalidText)
	assert.Equal(t, 1, l.Result(loop.ExitReasonQuit).Invalid)
}

func TestSubmit_Overflow(t *testing.T) {
	m, l := newTestModel(t, loop.Config{
		Policy: attitude.PolicyStrict,
		Start:  attitude.New(math.MaxInt32, 1, 1),
	})

	m, _ = enter(t, m, "1 0 0")

	assert.Equal(t, attitude.New(math.MaxInt32, 1, 1), l.Current())
	require.Len(t, m.Events(), 1)
	assert.Equal(t, event.KindOverflow, m.Events()[0].Kind)
}

func TestSubmit_Quit(t *testing.T) {
	m, _ := newTestModel(t, loop.Config{})

	m, cmd := enter(t, m, "QUIT")

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
	assert.Empty(t, m.View())
}

func TestKeys_Quit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m, _ := newTestModel(t, loop.Config{})
		updated, cmd := m.Update(tea.KeyMsg{Type: key})

		require.NotNil(t, cmd)
		assert.True(t, updated.(Model).Quitting())
	}
}

func TestView_BeforeResize(t *testing.T) {
	l := loop.New(loop.Config{}, nil, nil)
	m := NewModel(l, "> ")

	view := m.View()
	assert.Contains(t, view, "Attitude Tracker")
	assert.Contains(t, view, "0, 0, 0")
	assert.Contains(t, view, "UNKNOWN")
}

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel(t, loop.Config{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	got := updated.(Model)

	assert.Equal(t, 120, got.history.Width)
	assert.Equal(t, 40-chromeHeight, got.history.Height)
}
