package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/alexander-akhmetov/attitude/internal/attitude"
	"github.com/alexander-akhmetov/attitude/internal/config"
	"github.com/alexander-akhmetov/attitude/internal/event"
	"github.com/alexander-akhmetov/attitude/internal/input"
)

var classifyJSON string

var classifyCmd = &cobra.Command{
	Use:   "classify [x y z]",
	Short: "Print the planet a single attitude points toward",
	Long: `Classify one attitude without starting a session.

The attitude is given as three integers (the same grammar as the interactive
prompt) or as JSON with --json. Use -- before negative numbers.

Examples:
  attitude classify 1 2 3
  attitude classify 1,-2,3
  attitude classify -- -1 -1 -1
  attitude classify --json '{"x": 4, "y": -5, "z": 6}'
  attitude classify --json '[4, -5, 6]' --format json`,
	Args: cobra.MaximumNArgs(3),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifyJSON, "json", "", `Attitude as a JSON object {"x":..,"y":..,"z":..} or array [x, y, z]`)
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	a, err := classifyTarget(args, classifyJSON)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	isTTY, _ := terminalInfo(out)
	color := useColor(cfg.Color, isTTY)

	if cfg.Format == config.FormatJSON {
		NewWriter(out, WriterOptions{Format: config.FormatJSON, Color: color}).WriteEvent(event.Pointing(a))
		return nil
	}

	_, err = fmt.Fprintln(out, formatPlanet(a.Planet(), color))
	return err
}

// classifyTarget builds the attitude from positional args or a JSON value.
func classifyTarget(args []string, raw string) (attitude.Attitude, error) {
	if raw != "" {
		if len(args) > 0 {
			return attitude.Attitude{}, errors.New("give either x y z or --json, not both")
		}
		return parseJSONAttitude(raw)
	}
	if len(args) == 0 {
		return attitude.Attitude{}, errors.New("no attitude provided. Usage: attitude classify x y z")
	}

	in, err := input.Parse(strings.Join(args, " "))
	if err != nil {
		return attitude.Attitude{}, fmt.Errorf("parse attitude: %w", err)
	}
	if in.Kind != input.KindIncrement {
		return attitude.Attitude{}, fmt.Errorf("parse attitude: %w: expected three integers", input.ErrInvalid)
	}
	return in.Increment, nil
}

// parseJSONAttitude accepts {"x":1,"y":2,"z":3} or [1,2,3].
func parseJSONAttitude(raw string) (attitude.Attitude, error) {
	if !gjson.Valid(raw) {
		return attitude.Attitude{}, errors.New("invalid JSON attitude")
	}

	doc := gjson.Parse(raw)
	paths := []string{"x", "y", "z"}
	switch {
	case doc.IsArray():
		if n := doc.Get("#").Int(); n != 3 {
			return attitude.Attitude{}, fmt.Errorf("JSON attitude array has %d elements, want 3", n)
		}
		paths = []string{"0", "1", "2"}
	case !doc.IsObject():
		return attitude.Attitude{}, errors.New("JSON attitude must be an object or an array")
	}

	var v [3]int32
	for i, p := range paths {
		r := doc.Get(p)
		if r.Type != gjson.Number {
			return attitude.Attitude{}, fmt.Errorf("JSON attitude %s must be an integer", p)
		}
		n, err := strconv.ParseInt(r.Raw, 10, 32)
		if err != nil {
			return attitude.Attitude{}, fmt.Errorf("JSON attitude %s: %s is not a 32-bit integer", p, r.Raw)
		}
		v[i] = int32(n)
	}
	return attitude.New(v[0], v[1], v[2]), nil
}
