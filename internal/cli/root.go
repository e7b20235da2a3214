// Package cli implements the command-line interface for cubepuzzle.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubepuzzle/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	logFile    string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubepuzzle",
	Short: "Interactive 3x3x3 puzzle cube",
	Long: `cubepuzzle - An interactive 3x3x3 puzzle cube for the terminal.

Drag across a face with the mouse to turn the layer under the pointer.
Sessions can be traced to JSONL and replayed headless for debugging.`,
	Version:      version,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubepuzzle/config.json)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openConfig opens the config file from the flag or the default path.
func openConfig() (*config.File, error) {
	var (
		f   *config.File
		err error
	)
	if configPath != "" {
		f, err = config.Open(configPath)
	} else {
		f, err = config.OpenDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return f, nil
}

// loadConfig returns the settings from the config file.
func loadConfig() (config.Config, error) {
	f, err := openConfig()
	if err != nil {
		return config.Config{}, err
	}
	return f.Config(), nil
}

// newLogger builds the logger for a command. The terminal belongs to the
// TUI, so logs only go to a file; without one they are discarded.
func newLogger(cfg config.Config) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	path := logFile
	if path == "" {
		path = cfg.LogFile
	}
	if path == "" {
		logger.SetOutput(io.Discard)
		return logger, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f, nil
}
