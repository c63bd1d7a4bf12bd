package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/alexander-akhmetov/attitude/internal/attitude"
	"github.com/alexander-akhmetov/attitude/internal/config"
	"github.com/alexander-akhmetov/attitude/internal/debug"
	"github.com/alexander-akhmetov/attitude/internal/event"
	"github.com/alexander-akhmetov/attitude/internal/loop"
)

const welcomeMarkdown = `# Welcome to the Attitude Tracker

Please input the new attitude as **3 integers** separated by commas or spaces.

To exit, type ` + "`quit`" + ` when prompted for user input.
`

// WriterOptions controls how a Writer renders events.
type WriterOptions struct {
	Format   string // config.FormatText or config.FormatJSON
	Color    bool   // emit ANSI colors
	Markdown bool   // render the welcome banner with glamour
	Width    int
}

// Writer prints session events as plain text or JSON lines.
type Writer struct {
	out      io.Writer
	opts     WriterOptions
	mu       sync.Mutex
	renderer *glamour.TermRenderer
}

// NewWriter creates a Writer. If Width is <= 0, defaults to 80.
func NewWriter(out io.Writer, opts WriterOptions) *Writer {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Format == "" {
		opts.Format = config.FormatText
	}

	w := &Writer{out: out, opts: opts}

	if opts.Markdown && opts.Format == config.FormatText {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(max(opts.Width-6, 40)),
		)
		if err != nil {
			debug.Logf("cli: failed to create glamour renderer: %v", err)
		} else {
			w.renderer = r
		}
	}

	return w
}

// WriteEvent prints a single event to the output stream.
func (w *Writer) WriteEvent(ev event.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.opts.Format == config.FormatJSON {
		w.writeJSON(eventFields(ev))
		return
	}

	var line string
	switch ev.Kind {
	case event.KindWelcome:
		line = w.formatWelcome(ev.Text)
	case event.KindPointing:
		line = w.formatPointing(ev)
	case event.KindInvalid, event.KindOverflow:
		line = w.formatError(ev.Text)
	default:
		line = ev.Text
	}

	_, _ = fmt.Fprintln(w.out, line)
}

// WriteResult prints the session summary. Text output has no summary line
// beyond the goodbye event, so this only writes in JSON mode.
func (w *Writer) WriteResult(res *loop.Result) {
	if res == nil || w.opts.Format != config.FormatJSON {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.writeJSON([]field{
		{"event", "summary"},
		{"exit_reason", string(res.ExitReason)},
		{"applied", res.Applied},
		{"rejected", res.Rejected},
		{"invalid", res.Invalid},
		{"planet", res.Planet.String()},
		{"attitude.x", res.Final.X},
		{"attitude.y", res.Final.Y},
		{"attitude.z", res.Final.Z},
	})
}

// WriteSummary prints the session counts as one text line.
func (w *Writer) WriteSummary(res *loop.Result) {
	if res == nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	line := fmt.Sprintf("Session: %d applied, %d rejected (overflow), %d invalid", res.Applied, res.Rejected, res.Invalid)
	if w.opts.Color {
		line = dim(line)
	}
	_, _ = fmt.Fprintln(w.out, line)
}

func (w *Writer) formatWelcome(text string) string {
	if w.renderer == nil {
		return text
	}
	rendered, err := w.renderer.Render(welcomeMarkdown)
	if err != nil {
		debug.Logf("cli: render welcome: %v", err)
		return text
	}
	return rendered
}

func (w *Writer) formatPointing(ev event.Event) string {
	if !w.opts.Color {
		return ev.Text
	}
	return dim("Pointing Towards: ") + formatPlanet(ev.Planet, true) + dim(" at ") + fg(colorCyan, ev.Attitude.String())
}

func (w *Writer) formatError(text string) string {
	if !w.opts.Color {
		return text
	}
	return fg(colorRed, text)
}

// formatPlanet renders a planet name, colored when color is set.
func formatPlanet(p attitude.Planet, color bool) string {
	if !color {
		return p.String()
	}
	if p == attitude.Unknown {
		return fg(colorDim, p.String())
	}
	return fgBold(planetColor(p), p.String())
}

type field struct {
	path  string
	value any
}

func eventFields(ev event.Event) []field {
	fields := []field{{"event", ev.Kind.String()}}
	if ev.HasAttitude() {
		fields = append(fields,
			field{"planet", ev.Planet.String()},
			field{"attitude.x", ev.Attitude.X},
			field{"attitude.y", ev.Attitude.Y},
			field{"attitude.z", ev.Attitude.Z},
		)
	}
	return append(fields, field{"text", strings.TrimSpace(ev.Text)})
}

// writeJSON builds one JSON object from fields and prints it as a line.
// Must be called with mu held.
func (w *Writer) writeJSON(fields []field) {
	doc, err := buildJSON(fields)
	if err != nil {
		debug.Logf("cli: build json: %v", err)
		return
	}
	if w.opts.Color {
		doc = string(pretty.Color([]byte(doc), nil))
	}
	_, _ = fmt.Fprintln(w.out, doc)
}

func buildJSON(fields []field) (string, error) {
	doc := ""
	for _, f := range fields {
		var err error
		doc, err = sjson.Set(doc, f.path, f.value)
		if err != nil {
			return "", fmt.Errorf("set %s: %w", f.path, err)
		}
	}
	return doc, nil
}
