package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"gopkg.in/yaml.v3"
)

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.oxy-fps/config.yaml -> ./configs/oxy-fps.yaml -> embedded default.
// Unreadable or malformed files in the implicit locations are skipped; a bad customPath is an error.
// Scalar fields left out of the file take their value from Default, and a file without a level
// section plays the default level.
//
// Parameters:
//   - customPath: an explicit config file, or "" to search
//
// Returns:
//   - Config: the loaded configuration
//   - error: a read, parse or validation error
func Load(customPath string) (Config, error) {
	cfg, err := read(customPath)
	if err != nil {
		return cfg, err
	}
	cfg = withDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func read(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "oxy-fps.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			var fileCfg Config
			if err := yaml.Unmarshal(data, &fileCfg); err == nil {
				return fileCfg, nil
			}
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// withDefaults fills zero scalar fields from Default.
func withDefaults(cfg Config) Config {
	d := Default()

	cfg.Window.Title = common.Coalesce(cfg.Window.Title, d.Window.Title)
	cfg.Window.Width = common.Coalesce(cfg.Window.Width, d.Window.Width)
	cfg.Window.Height = common.Coalesce(cfg.Window.Height, d.Window.Height)
	cfg.Window.MinWidth = common.Coalesce(cfg.Window.MinWidth, d.Window.MinWidth)
	cfg.Window.MinHeight = common.Coalesce(cfg.Window.MinHeight, d.Window.MinHeight)
	cfg.Window.MaxWidth = common.Coalesce(cfg.Window.MaxWidth, d.Window.MaxWidth)
	cfg.Window.MaxHeight = common.Coalesce(cfg.Window.MaxHeight, d.Window.MaxHeight)
	cfg.Engine.TickRate = common.Coalesce(cfg.Engine.TickRate, d.Engine.TickRate)
	cfg.Gameplay.StartScore = common.Coalesce(cfg.Gameplay.StartScore, d.Gameplay.StartScore)
	cfg.Gameplay.MoveSpeed = common.Coalesce(cfg.Gameplay.MoveSpeed, d.Gameplay.MoveSpeed)

	if len(cfg.Level.Walls) == 0 && len(cfg.Level.Targets) == 0 {
		cfg.Level = d.Level
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".oxy-fps", filename)
}
