// Package tui implements the full-screen interactive mode.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexander-akhmetov/attitude/internal/debug"
	"github.com/alexander-akhmetov/attitude/internal/loop"
)

// Run starts the TUI on the alternate screen and blocks until the user quits
// or ctx is canceled.
func Run(ctx context.Context, l *loop.Loop, prompt string) (*loop.Result, error) {
	p := tea.NewProgram(NewModel(l, prompt), tea.WithAltScreen(), tea.WithContext(ctx))

	debug.Logf("tui: starting")
	_, err := p.Run()
	if ctx.Err() != nil {
		debug.Logf("tui: canceled: %v", ctx.Err())
		return l.Result(loop.ExitReasonCanceled), nil
	}
	if err != nil {
		return l.Result(loop.ExitReasonError), fmt.Errorf("run program: %w", err)
	}
	return l.Result(loop.ExitReasonQuit), nil
}
