package main

import (
	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-fps/config"
	"github.com/Carmen-Shannon/oxy-fps/engine"
	"github.com/Carmen-Shannon/oxy-fps/engine/renderer"
	"github.com/Carmen-Shannon/oxy-fps/engine/scene"
	"github.com/Carmen-Shannon/oxy-fps/engine/window"
)

var (
	flagWidth      int
	flagHeight     int
	flagVSync      bool
	flagProfile    bool
	flagFullscreen bool
	flagTickRate   int
	flagFreeCursor bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open a window and play",
	Long: `Open a window and play one round after another.

Flags override the matching config file values.

Examples:
  oxy-fps play
  oxy-fps play --fullscreen
  oxy-fps play --vsync=false --profile`,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Window width in pixels")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Window height in pixels")
	cmd.Flags().BoolVar(&flagVSync, "vsync", true, "Wait for vertical sync")
	cmd.Flags().BoolVar(&flagProfile, "profile", false, "Log frame rate and memory statistics")
	cmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Borderless fullscreen on the primary monitor")
	cmd.Flags().IntVar(&flagTickRate, "tick-rate", 0, "Simulation steps per second")
	cmd.Flags().BoolVar(&flagFreeCursor, "free-cursor", false, "Leave the cursor free until the first click")
}

// applyPlayFlags overrides config values with the flags the user set.
func applyPlayFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Window.Height = flagHeight
	}
	if flags.Changed("vsync") {
		cfg.Engine.VSync = flagVSync
	}
	if flags.Changed("profile") {
		cfg.Engine.Profile = flagProfile
	}
	if flags.Changed("tick-rate") {
		cfg.Engine.TickRate = flagTickRate
	}
	if flags.Changed("free-cursor") {
		cfg.Window.FreeCursor = flagFreeCursor
	}
	return cfg.Validate()
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if err := applyPlayFlags(cmd, &cfg); err != nil {
		return err
	}

	w, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithMinWidth(cfg.Window.MinWidth),
		window.WithMinHeight(cfg.Window.MinHeight),
		window.WithMaxWidth(cfg.Window.MaxWidth),
		window.WithMaxHeight(cfg.Window.MaxHeight),
		window.WithCursorCaptured(!cfg.Window.FreeCursor),
		window.WithFullscreen(flagFullscreen),
	)
	if err != nil {
		return err
	}

	presentMode := renderer.PresentModeVSync
	if !cfg.Engine.VSync {
		presentMode = renderer.PresentModeUncapped
	}

	e, err := engine.NewEngine(
		engine.WithWindow(w),
		engine.WithLogger(logger),
		engine.WithTickRate(float64(cfg.Engine.TickRate)),
		engine.WithProfiling(cfg.Engine.Profile),
		engine.WithSceneManager(scene.NewSceneManager(
			scene.WithLevel(cfg.SceneLevel()),
			scene.WithLogger(logger),
		)),
		engine.WithRendererOptions(
			renderer.WithPresentMode(presentMode),
			renderer.WithForceSoftwareRenderer(cfg.Engine.SoftwareRenderer),
		),
	)
	if err != nil {
		_ = w.Close()
		return err
	}
	return e.Run()
}
