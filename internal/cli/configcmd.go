package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage attitude configuration",
	Long:  `View attitude configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved configuration with its sources",
	Long: `Show the fully resolved configuration and the sources it came from.

Configuration is loaded from multiple sources with the following precedence:
  1. Embedded defaults (built into binary)
  2. Global config (~/.config/attitude/config.yaml, read only if present)
  3. Environment (ATTITUDE_OVERFLOW, ATTITUDE_FORMAT, ATTITUDE_COLOR, ATTITUDE_TUI)
  4. CLI flags (highest precedence)`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	isTTY, _ := terminalInfo(out)
	heading := func(s string) string {
		if useColor(cfg.Color, isTTY) {
			return bold(s)
		}
		return s
	}

	body, err := cfg.YAML()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, heading("# Attitude Configuration"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, heading("## Sources (in order of precedence)"))
	for _, src := range cfg.Sources() {
		fmt.Fprintf(out, "  - %s\n", src)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Config directory: %s\n", cfg.ConfigDir())
	fmt.Fprintln(out)
	fmt.Fprintln(out, heading("## Effective settings"))
	fmt.Fprint(out, body)
	return nil
}
