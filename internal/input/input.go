// Package input turns free-form terminal lines into attitude increments or a
// quit signal.
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexander-akhmetov/attitude/internal/attitude"
	"github.com/alexander-akhmetov/attitude/internal/debug"
)

// DefaultPrompt is printed before each line is read.
const DefaultPrompt = "Input values (%d %d %d): "

// ErrInvalid marks a line that is neither three integers nor "quit".
var ErrInvalid = errors.New("invalid input")

var linePattern = regexp.MustCompile(`^\s*(-?\d+)[ ,]+(-?\d+)[ ,]+(-?\d+)\s*$`)

// Kind identifies what a parsed line asks for.
type Kind int

const (
	// KindIncrement adds Increment to the current attitude.
	KindIncrement Kind = iota
	// KindQuit ends the session.
	KindQuit
)

// Input is a single validated user request.
type Input struct {
	Kind      Kind
	Increment attitude.Attitude
}

// Increment creates a KindIncrement input.
func Increment(a attitude.Attitude) Input { return Input{Kind: KindIncrement, Increment: a} }

// Quit creates a KindQuit input.
func Quit() Input { return Input{Kind: KindQuit} }

// Parse validates a single line. The line may hold three int32 values
// separated by commas or spaces, or the word quit in any case.
func Parse(line string) (Input, error) {
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "quit") {
		return Quit(), nil
	}

	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Input{}, fmt.Errorf("%w: %q", ErrInvalid, line)
	}

	var v [3]int32
	for i := range v {
		n, err := strconv.ParseInt(m[i+1], 10, 32)
		if err != nil {
			return Input{}, fmt.Errorf("%w: %q out of range", ErrInvalid, m[i+1])
		}
		v[i] = int32(n)
	}
	return Increment(attitude.New(v[0], v[1], v[2])), nil
}

// Terminal reads inputs line by line, printing a prompt before each read.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

// NewTerminal creates a Terminal. An empty prompt disables prompting.
func NewTerminal(in io.Reader, out io.Writer, prompt string) *Terminal {
	return &Terminal{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: prompt,
	}
}

// Next reads one line and parses it. Lines that fail validation return an
// error wrapping ErrInvalid; the caller may call Next again. End of input
// is reported as Quit.
func (t *Terminal) Next(ctx context.Context) (Input, error) {
	if err := ctx.Err(); err != nil {
		return Input{}, err
	}

	if t.prompt != "" && t.out != nil {
		_, _ = fmt.Fprint(t.out, t.prompt)
	}

	line, err := t.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return Input{}, fmt.Errorf("read input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			debug.Logf("input: end of input, treating as quit")
			return Quit(), nil
		}
	}

	in, perr := Parse(line)
	if perr != nil {
		debug.Logf("input: rejected line %q: %v", strings.TrimSpace(line), perr)
	}
	return in, perr
}
