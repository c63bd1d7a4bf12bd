// Package cli implements the command-line interface for attitude.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/attitude/internal/config"
	"github.com/alexander-akhmetov/attitude/internal/debug"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	flagOverflow string
	flagFormat   string
	flagColor    string
	flagTUI      bool
	flagDebug    bool
)

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

var rootCmd = &cobra.Command{
	Use:   "attitude",
	Short: "Track a satellite attitude and report which planet it points toward",
	Long: `Attitude reads increments of a 3-axis integer attitude, adds each one to the
running total, and reports which of eight planets the result points toward.

Enter three integers separated by commas or spaces, or "quit" to exit.

Examples:
  attitude
  attitude --overflow error
  attitude --tui
  printf '1 2 3\n-4 -4 -4\nquit\n' | attitude --format json`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			debug.Enable()
		}
	},
	RunE: runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagOverflow, "overflow", "", "Overflow policy: wrap, saturate or error (default from config: wrap)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "Output format: text or json")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "Color output: auto, always or never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to stderr")
	rootCmd.Flags().BoolVar(&flagTUI, "tui", false, "Start the full-screen interface")

	rootCmd.AddCommand(planetsCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads layered config and applies the command's flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyCLIFlags(config.Flags{
		Overflow: flagOverflow,
		Format:   flagFormat,
		Color:    flagColor,
		TUI:      flagTUI,
		TUISet:   cmd.Flags().Changed("tui"),
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	debug.Logf("cli: config sources %v", cfg.Sources())
	return cfg, nil
}
