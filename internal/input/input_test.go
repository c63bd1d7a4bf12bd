package input

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexander-akhmetov/attitude/internal/attitude"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Input
		wantErr bool
	}{
		{name: "spaces", line: "1 2 3", want: Increment(attitude.New(1, 2, 3))},
		{name: "commas", line: "1,2,3", want: Increment(attitude.New(1, 2, 3))},
		{name: "comma space", line: "-1, -2, -3", want: Increment(attitude.New(-1, -2, -3))},
		{name: "mixed separators", line: "  4 ,, 5   ,6  ", want: Increment(attitude.New(4, 5, 6))},
		{name: "trailing newline", line: "7 8 9\n", want: Increment(attitude.New(7, 8, 9))},
		{name: "int32 bounds", line: "2147483647 -2147483648 0", want: Increment(attitude.New(2147483647, -2147483648, 0))},
		{name: "quit", line: "quit", want: Quit()},
		{name: "quit upper", line: "QUIT", want: Quit()},
		{name: "quit mixed with spaces", line: "  QuIt \n", want: Quit()},
		{name: "empty", line: "", wantErr: true},
		{name: "two values", line: "1 2", wantErr: true},
		{name: "four values", line: "1 2 3 4", wantErr: true},
		{name: "letters", line: "a b c", wantErr: true},
		{name: "float", line: "1.5 2 3", wantErr: true},
		{name: "plus sign", line: "+1 2 3", wantErr: true},
		{name: "semicolons", line: "1;2;3", wantErr: true},
		{name: "overflow", line: "2147483648 0 0", wantErr: true},
		{name: "underflow", line: "0 -2147483649 0", wantErr: true},
		{name: "quit with suffix", line: "quit now", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTerminal_Next(t *testing.T) {
	stdin := strings.NewReader("1 2 3\nbogus\nquit\n")
	stdout := &strings.Builder{}
	term := NewTerminal(stdin, stdout, DefaultPrompt)
	ctx := context.Background()

	got, err := term.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Increment(attitude.New(1, 2, 3)), got)

	_, err = term.Next(ctx)
	require.ErrorIs(t, err, ErrInvalid)

	got, err = term.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, KindQuit, got.Kind)

	assert.Equal(t, strings.Repeat(DefaultPrompt, 3), stdout.String())
}

func TestTerminal_EOF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Input
	}{
		{
			name:  "empty stream quits",
			input: "",
			want:  []Input{Quit()},
		},
		{
			name:  "last line without newline is parsed",
			input: "1 1 1",
			want:  []Input{Increment(attitude.New(1, 1, 1)), Quit()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := NewTerminal(strings.NewReader(tt.input), nil, "")
			for _, want := range tt.want {
				got, err := term.Next(context.Background())
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestTerminal_NoPrompt(t *testing.T) {
	stdout := &strings.Builder{}
	term := NewTerminal(strings.NewReader("quit\n"), stdout, "")

	_, err := term.Next(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
}

func TestTerminal_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	term := NewTerminal(strings.NewReader("1 2 3\n"), nil, "")
	_, err := term.Next(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestTerminal_ReadError(t *testing.T) {
	term := NewTerminal(failingReader{}, nil, "")
	_, err := term.Next(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input: device gone")
	assert.NotErrorIs(t, err, ErrInvalid)
}
