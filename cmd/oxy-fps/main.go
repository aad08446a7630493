// oxy-fps is a small first-person target shooter rendered with WebGPU.
//
// Usage:
//
//	oxy-fps                  - Play (same as "oxy-fps play")
//	oxy-fps play             - Open a window and play
//	oxy-fps simulate         - Play scripted sessions headlessly and print the outcomes
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.oxy-fps/config.yaml, ./configs/oxy-fps.yaml, built-in)
//	--debug          - Enable debug logging
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/oxy-fps/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDebug  bool
)

func init() {
	// GLFW must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "oxy-fps",
	Short: "oxy-fps - shoot every target before the score runs out",
	Long: `oxy-fps is a first-person target shooter.

Press E on the title screen to start. Move with WASD, look with the mouse and
shoot with the left button. The score counts down every frame; hit every target
before it reaches zero. Press E on the result screen to return to the title.
Escape releases the mouse, a second Escape quits.

Available commands:
  play      - Play in a window (default)
  simulate  - Run scripted headless sessions

Examples:
  oxy-fps
  oxy-fps play --width 1920 --height 1080
  oxy-fps simulate --sessions 64 --workers 8`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger creates the process logger every component receives.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "oxy-fps",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the config selected by --config.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debug("config loaded", "path", flagConfig, "walls", len(cfg.Level.Walls), "targets", len(cfg.Level.Targets))
	return cfg, nil
}
