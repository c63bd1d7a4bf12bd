package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/attitude/internal/attitude"
	"github.com/alexander-akhmetov/attitude/internal/config"
)

var planetsCmd = &cobra.Command{
	Use:   "planets",
	Short: "List the planets and the octant each one occupies",
	Args:  cobra.NoArgs,
	RunE:  runPlanets,
}

func runPlanets(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	isTTY, _ := terminalInfo(out)
	color := useColor(cfg.Color, isTTY)

	if cfg.Format == config.FormatJSON {
		return writePlanetsJSON(out)
	}

	_, err = fmt.Fprintln(out, planetTable(color))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s: any axis equal to 0\n", formatPlanet(attitude.Unknown, color))
	return err
}

func signLabel(s int) string {
	if s < 0 {
		return "-"
	}
	return "+"
}

// planetTable renders the sign table with lipgloss.
func planetTable(color bool) string {
	planets := attitude.Planets()
	rows := make([][]string, 0, len(planets))
	for _, p := range planets {
		x, y, z, _ := p.Octant()
		rows = append(rows, []string{p.String(), signLabel(x), signLabel(y), signLabel(z)})
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("PLANET", "X", "Y", "Z").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if color && col == 0 && row >= 0 && row < len(planets) {
				return cell.Foreground(lipgloss.Color(fmt.Sprint(planetColor(planets[row])))).Bold(true)
			}
			return cell
		})
	return t.Render()
}

func writePlanetsJSON(out io.Writer) error {
	for _, p := range attitude.Planets() {
		x, y, z, _ := p.Octant()
		doc, err := buildJSON([]field{
			{"planet", p.String()},
			{"x", x},
			{"y", y},
			{"z", z},
		})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, doc); err != nil {
			return err
		}
	}
	return nil
}
