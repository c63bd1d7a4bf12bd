package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexander-akhmetov/attitude/internal/event"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Attitude Tracker"))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	if m.ready {
		b.WriteString(m.history.View())
	} else {
		b.WriteString(m.renderHistory())
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: apply • quit/esc: exit • pgup/pgdn: scroll"))
	return b.String()
}

func (m Model) renderStatus() string {
	current := m.loop.Current()
	planet := current.Planet()
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("Attitude: "),
		valueStyle.Render(current.String()),
		labelStyle.Render("   Pointing Towards: "),
		planetStyle(planet).Render(planet.String()),
	)
	return statusBoxStyle.Render(line)
}

func (m Model) renderHistory() string {
	lines := make([]string, 0, len(m.events))
	for _, ev := range m.events {
		lines = append(lines, renderEvent(ev))
	}
	return strings.Join(lines, "\n")
}

func renderEvent(ev event.Event) string {
	switch ev.Kind {
	case event.KindPointing:
		return labelStyle.Render("Pointing Towards: ") +
			planetStyle(ev.Planet).Render(ev.Planet.String()) +
			labelStyle.Render(" at ") +
			valueStyle.Render(ev.Attitude.String())
	case event.KindInvalid, event.KindOverflow:
		return errorStyle.Render(ev.Text)
	default:
		return ev.Text
	}
}
