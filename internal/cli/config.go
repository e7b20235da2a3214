package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubepuzzle/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Show or change the settings stored in the config file.

Keys:
  speed      - Layer turn speed in degrees per second
  fps        - Frames per second of the play loop
  trace-dir  - Directory for session traces
  log-file   - File receiving debug logs

Usage:
  cubepuzzle config                  # Show current settings
  cubepuzzle config set speed 360    # Change a setting`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting and save the config file",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	f, err := openConfig()
	if err != nil {
		return err
	}
	printConfig(f)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	f, err := openConfig()
	if err != nil {
		return err
	}

	cfg, err := applySetting(f.Config(), args[0], args[1])
	if err != nil {
		return err
	}
	if err := f.Set(cfg); err != nil {
		return err
	}
	if err := f.Save(); err != nil {
		return err
	}

	fmt.Printf("Saved %s\n", f.Path())
	printConfig(f)
	return nil
}

// applySetting returns cfg with key set to value. The result is not validated.
func applySetting(cfg config.Config, key, value string) (config.Config, error) {
	switch key {
	case "speed", "rotation_speed":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid speed %q: %w", value, err)
		}
		cfg.RotationSpeed = v
	case "fps":
		v, err := strconv.Atoi(value)
		if err != nil {
			return cfg, fmt.Errorf("invalid fps %q: %w", value, err)
		}
		cfg.FPS = v
	case "trace-dir", "trace_dir":
		cfg.TraceDir = value
	case "log-file", "log_file":
		cfg.LogFile = value
	default:
		return cfg, fmt.Errorf("unknown setting %q", key)
	}
	return cfg, nil
}

func printConfig(f *config.File) {
	cfg := f.Config()
	traceDir, err := cfg.TraceDirOrDefault()
	if err != nil {
		traceDir = "?"
	}
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "(none)"
	}

	fmt.Printf("Config:    %s\n", f.Path())
	fmt.Printf("Speed:     %g deg/s\n", cfg.RotationSpeed)
	fmt.Printf("FPS:       %d\n", cfg.FPS)
	fmt.Printf("Trace dir: %s\n", traceDir)
	fmt.Printf("Log file:  %s\n", logFile)
}
