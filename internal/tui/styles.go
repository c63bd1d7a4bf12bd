package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexander-akhmetov/attitude/internal/attitude"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	statusBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var planetColors = map[attitude.Planet]lipgloss.Color{
	attitude.Grace: lipgloss.Color("42"),
	attitude.Price: lipgloss.Color("214"),
	attitude.Bray:  lipgloss.Color("39"),
	attitude.Mig:   lipgloss.Color("203"),
	attitude.Wiem:  lipgloss.Color("141"),
	attitude.Mrow:  lipgloss.Color("220"),
	attitude.Turk:  lipgloss.Color("44"),
	attitude.Sebas: lipgloss.Color("205"),
}

func planetStyle(p attitude.Planet) lipgloss.Style {
	c, ok := planetColors[p]
	if !ok {
		return labelStyle
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
