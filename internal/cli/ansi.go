package cli

import (
	"fmt"

	"github.com/alexander-akhmetov/attitude/internal/attitude"
)

// ANSI 256-color codes, kept in step with the TUI lipgloss palette.
const (
	colorRed  = 196 // errors, overflow
	colorDim  = 241 // labels, unknown planet
	colorCyan = 117 // attitude values
)

var planetColors = map[attitude.Planet]int{
	attitude.Grace: 42,
	attitude.Price: 214,
	attitude.Bray:  39,
	attitude.Mig:   203,
	attitude.Wiem:  141,
	attitude.Mrow:  220,
	attitude.Turk:  44,
	attitude.Sebas: 205,
}

// planetColor returns the display color for p. Unknown renders dim.
func planetColor(p attitude.Planet) int {
	if c, ok := planetColors[p]; ok {
		return c
	}
	return colorDim
}

// ansi wraps text with an SGR escape code.
func ansi(code int, text string) string {
	return fmt.Sprintf("\033[%dm%s\033[0m", code, text)
}

// bold renders text in bold.
func bold(text string) string {
	return ansi(1, text)
}

// dim renders text in dim/faint style.
func dim(text string) string {
	return ansi(2, text)
}

// fg wraps text with a 256-color foreground escape.
func fg(color int, text string) string {
	return fmt.Sprintf("\033[38;5;%dm%s\033[0m", color, text)
}

// fgBold wraps text with a 256-color foreground and bold.
func fgBold(color int, text string) string {
	return fmt.Sprintf("\033[1;38;5;%dm%s\033[0m", color, text)
}
