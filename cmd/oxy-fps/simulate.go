package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/headless"
)

var (
	flagSessions int
	flagFrames   int
	flagWorkers  int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play scripted sessions headlessly",
	Long: `Play many scripted sessions without a window or GPU and print how each ended.

Every session starts a round, then turns by a session-specific amount and fires
at a fixed interval. Sessions run concurrently on a worker pool.

Examples:
  oxy-fps simulate
  oxy-fps simulate --sessions 256 --frames 3600 --workers 8`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSessions, "sessions", 16, "Number of sessions")
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Frames per session")
	simulateCmd.Flags().IntVar(&flagWorkers, "workers", runtime.NumCPU(), "Concurrent sessions")
}

// sweepScript starts a round, then every interval turns by step pixels and fires.
func sweepScript(frames int, step float32) *headless.Script {
	const interval = 20
	s := headless.NewScript().Tap(0, common.KeyE)
	for f := interval; f+1 < frames; f += interval {
		s.Look(f, step, 0).Tap(f+1, common.MouseLeft)
	}
	return s
}

func runSimulate(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if flagSessions <= 0 || flagFrames <= 0 {
		return fmt.Errorf("--sessions and --frames must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	level := cfg.SceneLevel()
	sessions := make([]*headless.Session, flagSessions)
	for i := range sessions {
		step := float32(cfg.Window.Width) * float32(i+1) / float32(flagSessions) / 8
		s, err := headless.NewSession(
			headless.WithID(i),
			headless.WithLevel(level),
			headless.WithViewport(float32(cfg.Window.Width), float32(cfg.Window.Height)),
			headless.WithScript(sweepScript(flagFrames, step)),
			headless.WithFrames(flagFrames),
			headless.WithStopOnEnd(true),
			headless.WithLogger(logger),
		)
		if err != nil {
			return err
		}
		sessions[i] = s
	}

	logger.Info("simulating", "sessions", flagSessions, "frames", flagFrames, "workers", flagWorkers)
	start := time.Now()
	results, err := headless.RunSessions(ctx, sessions, flagWorkers, logger)
	summary := headless.Summarize(results)
	summary.Elapsed = time.Since(start)

	fmt.Printf("  %-7s  %-8s  %-6s  %-7s  %s\n", "Session", "Outcome", "Score", "Targets", "Frames")
	fmt.Printf("  %-7s  %-8s  %-6s  %-7s  %s\n", "-------", "-------", "-----", "-------", "------")
	for _, r := range results {
		outcome := string(r.Outcome)
		if outcome == "" {
			outcome = "-"
		}
		fmt.Printf("  %-7d  %-8s  %-6d  %-7d  %d\n", r.ID, outcome, r.Score, r.TargetsLeft, r.Frames)
	}
	fmt.Println()
	fmt.Printf("Won %d, lost %d, unfinished %d of %d in %s (best score %d)\n",
		summary.Won, summary.Lost, summary.Unfinished, summary.Sessions, summary.Elapsed.Round(time.Millisecond), summary.BestScore)

	return err
}
