package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubepuzzle"
	"github.com/SeamusWaldron/cubepuzzle/internal/config"
	"github.com/SeamusWaldron/cubepuzzle/internal/trace"
)

var replayCmd = &cobra.Command{
	Use:   "replay [trace-file]",
	Short: "Replay a recorded session trace",
	Long: `Replay a session trace recorded with 'cubepuzzle play --trace' through a
fresh cube without a terminal UI, then print the resulting net and moves.
This allows you to debug drag resolution without reproducing the gestures.

If no trace file is specified, lists available traces.

Usage:
  cubepuzzle replay                    # List available traces
  cubepuzzle replay <trace-file>       # Replay a specific trace`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	traceDir, err := cfg.TraceDirOrDefault()
	if err != nil {
		return err
	}

	// If no args, list available traces
	if len(args) == 0 {
		return listTraces(traceDir)
	}

	tracePath := args[0]
	// If not an absolute path, look in trace directory
	if !filepath.IsAbs(tracePath) {
		if _, err := os.Stat(tracePath); err != nil {
			tracePath = filepath.Join(traceDir, tracePath)
		}
	}

	log, err := trace.Load(tracePath)
	if err != nil {
		return fmt.Errorf("failed to load trace: %w", err)
	}

	fmt.Printf("Loaded trace: %s\n", tracePath)
	fmt.Printf("Session: %s\n", log.SessionID)
	fmt.Printf("Created: %s\n", log.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Events: %d\n", len(log.Events))
	fmt.Println()

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctrl := cubepuzzle.New(
		cubepuzzle.WithRotationSpeed(cfg.RotationSpeed),
		cubepuzzle.WithLogger(logger),
	)
	frames, err := log.Replay(ctrl)
	if err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	if err := settle(ctrl, cfg); err != nil {
		return err
	}

	moves := ctrl.Moves()
	fmt.Printf("Frames: %d\n", frames)
	fmt.Printf("Moves (%d): %s\n", len(moves), cubepuzzle.FormatMoves(moves))
	fmt.Printf("Solved: %v\n", ctrl.IsSolved())
	fmt.Println()
	fmt.Print(ctrl.Facelets().String())
	return nil
}

// settle runs idle frames until a turn left in progress by the trace commits.
func settle(ctrl *cubepuzzle.Controller, cfg config.Config) error {
	dt := 1 / float64(cfg.FPS)
	for i := 0; ctrl.Playing(); i++ {
		if i > cfg.FPS*10 {
			return fmt.Errorf("turn did not finish after %d idle frames", i)
		}
		if _, err := ctrl.Update(cubepuzzle.Input{DeltaTime: dt}); err != nil {
			return err
		}
	}
	return nil
}

func listTraces(traceDir string) error {
	entries, err := os.ReadDir(traceDir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No trace files found. Record one with: cubepuzzle play --trace")
			return nil
		}
		return err
	}

	var traces []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsonl") {
			traces = append(traces, e.Name())
		}
	}

	if len(traces) == 0 {
		fmt.Println("No trace files found. Record one with: cubepuzzle play --trace")
		return nil
	}

	// Sort by name (which includes timestamp, so newest last)
	sort.Strings(traces)

	fmt.Println("Available trace files:")
	fmt.Println()
	for _, t := range traces {
		fmt.Printf("  %s\n", t)
	}
	fmt.Println()
	fmt.Println("Usage: cubepuzzle replay <filename>")

	return nil
}
