// Package config provides YAML-based configuration for the window, the engine loop,
// gameplay tuning and the level layout.
package config

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// Motion kinds accepted in target definitions.
const (
	MotionStationary = "stationary"
	MotionSineBob    = "sine_bob"
	MotionOrbit      = "orbit"
)

// Config contains all configuration for the game.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Engine   EngineConfig   `yaml:"engine"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Level    LevelConfig    `yaml:"level"`
}

// WindowConfig defines the initial window and the sizes it can be resized to.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	MinWidth  int    `yaml:"min_width"`
	MinHeight int    `yaml:"min_height"`
	MaxWidth  int    `yaml:"max_width"`
	MaxHeight int    `yaml:"max_height"`
	// FreeCursor leaves the cursor visible until the first click.
	FreeCursor bool `yaml:"free_cursor"`
}

// EngineConfig defines frame loop and renderer parameters.
type EngineConfig struct {
	TickRate         int  `yaml:"tick_rate"`
	VSync            bool `yaml:"vsync"`
	Profile          bool `yaml:"profile"`
	SoftwareRenderer bool `yaml:"software_renderer"`
}

// GameplayConfig defines per-round tuning.
type GameplayConfig struct {
	StartScore uint32  `yaml:"start_score"`
	MoveSpeed  float32 `yaml:"move_speed"`
}

// LevelConfig defines the arena.
type LevelConfig struct {
	Camera  mgl32.Vec3     `yaml:"camera"`
	Floor   FloorConfig    `yaml:"floor"`
	Walls   []WallConfig   `yaml:"walls"`
	Targets []TargetConfig `yaml:"targets"`
}

// FloorConfig defines the floor extents.
type FloorConfig struct {
	Width float32 `yaml:"width"`
	Depth float32 `yaml:"depth"`
}

// WallConfig places one wall.
type WallConfig struct {
	Position        mgl32.Vec3 `yaml:"position"`
	RotationDegrees float32    `yaml:"rotation_degrees"`
	Scale           mgl32.Vec3 `yaml:"scale"`
}

// TargetConfig places one target.
type TargetConfig struct {
	Position mgl32.Vec3   `yaml:"position"`
	Motion   MotionConfig `yaml:"motion"`
}

// MotionConfig selects a target motion. Fields not used by Kind are ignored.
type MotionConfig struct {
	Kind      string     `yaml:"kind"`
	Axis      mgl32.Vec3 `yaml:"axis"`
	Amplitude float32    `yaml:"amplitude"`
	Radius    float32    `yaml:"radius"`
	Speed     float32    `yaml:"speed"`
	Phase     float32    `yaml:"phase"`
}

// Validate checks the configuration for values the game cannot run with.
//
// Returns:
//   - error: nil, or an error wrapping ErrInvalidConfig describing the first problem found
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.MinWidth <= 0 || c.Window.MinHeight <= 0:
		return fmt.Errorf("%w: minimum window size %dx%d must be positive", ErrInvalidConfig, c.Window.MinWidth, c.Window.MinHeight)
	case c.Window.MaxWidth < c.Window.MinWidth || c.Window.MaxHeight < c.Window.MinHeight:
		return fmt.Errorf("%w: maximum window size %dx%d is below the minimum %dx%d", ErrInvalidConfig,
			c.Window.MaxWidth, c.Window.MaxHeight, c.Window.MinWidth, c.Window.MinHeight)
	case c.Window.Width < c.Window.MinWidth || c.Window.Width > c.Window.MaxWidth ||
		c.Window.Height < c.Window.MinHeight || c.Window.Height > c.Window.MaxHeight:
		return fmt.Errorf("%w: window size %dx%d is outside %dx%d..%dx%d", ErrInvalidConfig,
			c.Window.Width, c.Window.Height, c.Window.MinWidth, c.Window.MinHeight, c.Window.MaxWidth, c.Window.MaxHeight)
	case c.Engine.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d must be positive", ErrInvalidConfig, c.Engine.TickRate)
	case c.Gameplay.MoveSpeed <= 0:
		return fmt.Errorf("%w: move_speed %v must be positive", ErrInvalidConfig, c.Gameplay.MoveSpeed)
	case len(c.Level.Targets) == 0:
		return fmt.Errorf("%w: level has no targets", ErrInvalidConfig)
	}
	for i, w := range c.Level.Walls {
		if w.Scale[0] <= 0 || w.Scale[2] <= 0 {
			return fmt.Errorf("%w: wall %d has a non-positive footprint", ErrInvalidConfig, i)
		}
	}
	for i, t := range c.Level.Targets {
		switch t.Motion.Kind {
		case "", MotionStationary, MotionOrbit:
		case MotionSineBob:
			if t.Motion.Axis.Len() == 0 {
				return fmt.Errorf("%w: target %d sine_bob axis is zero", ErrInvalidConfig, i)
			}
		default:
			return fmt.Errorf("%w: target %d has unknown motion %q", ErrInvalidConfig, i, t.Motion.Kind)
		}
	}
	return nil
}

// SceneLevel converts the level and gameplay sections into a scene.Level.
// The config must have passed Validate.
func (c *Config) SceneLevel() scene.Level {
	level := scene.Level{
		CameraStart: c.Level.Camera,
		FloorWidth:  c.Level.Floor.Width,
		FloorDepth:  c.Level.Floor.Depth,
		Walls:       make([]scene.WallSpec, len(c.Level.Walls)),
		Targets:     make([]scene.TargetSpec, len(c.Level.Targets)),
		StartScore:  c.Gameplay.StartScore,
		MoveSpeed:   c.Gameplay.MoveSpeed,
	}
	for i, w := range c.Level.Walls {
		level.Walls[i] = scene.WallSpec{
			Position:  w.Position,
			RotationY: mgl32.DegToRad(w.RotationDegrees),
			Scale:     w.Scale,
		}
	}
	for i, t := range c.Level.Targets {
		level.Targets[i] = scene.TargetSpec{Position: t.Position, Motion: t.Motion.motion()}
	}
	return level
}

func (m MotionConfig) motion() game_object.Motion {
	switch m.Kind {
	case MotionSineBob:
		return game_object.SineBob(m.Axis, m.Amplitude, m.Speed, m.Phase)
	case MotionOrbit:
		return game_object.Orbit(m.Radius, m.Speed, m.Phase)
	default:
		return game_object.Stationary()
	}
}
