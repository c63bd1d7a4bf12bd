package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/attitude/internal/attitude"
	"github.com/alexander-akhmetov/attitude/internal/config"
	"github.com/alexander-akhmetov/attitude/internal/event"
	"github.com/alexander-akhmetov/attitude/internal/input"
	"github.com/alexander-akhmetov/attitude/internal/loop"
	"github.com/alexander-akhmetov/attitude/internal/timing"
	"github.com/alexander-akhmetov/attitude/internal/tui"
)

// RunConfig holds the settings for an interactive session.
type RunConfig struct {
	Policy attitude.OverflowPolicy
	Prompt string
	Writer WriterOptions
}

// Run reads increments from in until quit or end of input, writing prompts
// and events to out.
func Run(ctx context.Context, in io.Reader, out io.Writer, rc RunConfig) (*loop.Result, error) {
	w := NewWriter(out, rc.Writer)

	prompt := rc.Prompt
	if rc.Writer.Format == config.FormatJSON {
		prompt = ""
	}

	l := loop.New(loop.Config{Policy: rc.Policy}, input.NewTerminal(in, out, prompt), w.WriteEvent)
	res, err := l.Run(ctx)
	w.WriteResult(res)
	return res, err
}

func runRoot(cmd *cobra.Command, _ []string) error {
	timing.Start()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.ValidateSession(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	timing.Log("runRoot: config loaded")

	out := cmd.OutOrStdout()
	isTTY, width := terminalInfo(out)
	color := useColor(cfg.Color, isTTY)
	opts := WriterOptions{
		Format:   cfg.Format,
		Color:    color,
		Markdown: isTTY && color,
		Width:    width,
	}

	if cfg.TUI {
		return runTUI(cmd.Context(), out, cfg, opts)
	}

	_, err = Run(cmd.Context(), cmd.InOrStdin(), out, RunConfig{
		Policy: cfg.Policy(),
		Prompt: cfg.Prompt,
		Writer: opts,
	})
	return err
}

func runTUI(ctx context.Context, out io.Writer, cfg *config.Config, opts WriterOptions) error {
	l := loop.New(loop.Config{Policy: cfg.Policy()}, nil, nil)
	timing.Log("runTUI: starting program")
	res, err := tui.Run(ctx, l, cfg.Prompt)
	timing.Log("runTUI: program returned")
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	opts.Markdown = false
	writeTUIExit(NewWriter(out, opts), res)
	return nil
}

// writeTUIExit prints what stays on the normal screen after the alternate
// screen is torn down: the final heading, the session counts and the
// farewell.
func writeTUIExit(w *Writer, res *loop.Result) {
	if res.Applied > 0 {
		w.WriteEvent(event.Pointing(res.Final))
	}
	w.WriteSummary(res)
	if res.ExitReason == loop.ExitReasonQuit {
		w.WriteEvent(event.Quit(loop.QuitText))
	}
	w.WriteEvent(event.Goodbye(loop.GoodbyeText))
}
