// Package dirs provides XDG Base Directory Specification compliant paths
// for attitude.
package dirs

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the attitude configuration directory.
// Resolution order: ATTITUDE_CONFIG_DIR > XDG_CONFIG_HOME/attitude > ~/.config/attitude.
func ConfigDir() string {
	if dir := os.Getenv("ATTITUDE_CONFIG_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "attitude")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "attitude")
	}
	return filepath.Join(home, ".config", "attitude")
}
