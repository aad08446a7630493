package config

import (
	_ "embed"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed defaults/oxy-fps.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded defaults/oxy-fps.yaml.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:     "oxy-fps",
			Width:     1280,
			Height:    720,
			MinWidth:  640,
			MinHeight: 360,
			MaxWidth:  3840,
			MaxHeight: 2160,
		},
		Engine: EngineConfig{
			TickRate: 60,
			VSync:    true,
		},
		Gameplay: GameplayConfig{
			StartScore: 3000,
			MoveSpeed:  0.25,
		},
		Level: LevelConfig{
			Camera: mgl32.Vec3{0, 1.5, -35},
			Floor:  FloorConfig{Width: 40, Depth: 80},
			Walls: []WallConfig{
				{Position: mgl32.Vec3{0, 4, 40}, RotationDegrees: 0, Scale: mgl32.Vec3{40, 8, 1}},
				{Position: mgl32.Vec3{0, 4, -40}, RotationDegrees: 180, Scale: mgl32.Vec3{40, 8, 1}},
				{Position: mgl32.Vec3{20, 4, 0}, RotationDegrees: 90, Scale: mgl32.Vec3{80, 8, 1}},
				{Position: mgl32.Vec3{-20, 4, 0}, RotationDegrees: -90, Scale: mgl32.Vec3{80, 8, 1}},
				{Position: mgl32.Vec3{-2, 1.5, -20}, RotationDegrees: 0, Scale: mgl32.Vec3{36, 3, 1}},
				{Position: mgl32.Vec3{2, 1.5, 20}, RotationDegrees: 0, Scale: mgl32.Vec3{36, 3, 1}},
				{Position: mgl32.Vec3{11, 3.5, 0}, RotationDegrees: 0, Scale: mgl32.Vec3{18, 7, 1}},
				{Position: mgl32.Vec3{-11, 3.5, 0}, RotationDegrees: 0, Scale: mgl32.Vec3{18, 7, 1}},
			},
			Targets: []TargetConfig{
				{Position: mgl32.Vec3{0, 2, 0}, Motion: MotionConfig{Kind: MotionStationary}},
				{Position: mgl32.Vec3{15, 2.5, -15}, Motion: MotionConfig{Kind: MotionSineBob, Axis: mgl32.Vec3{0, 1, 0}, Amplitude: 1, Speed: 0.05}},
				{Position: mgl32.Vec3{15, 3, 15}, Motion: MotionConfig{Kind: MotionOrbit, Radius: 2, Speed: 0.02}},
				{Position: mgl32.Vec3{0, 2, 35}, Motion: MotionConfig{Kind: MotionSineBob, Axis: mgl32.Vec3{1, 0, 0}, Amplitude: 4, Speed: 0.03}},
				{Position: mgl32.Vec3{-15, 5, 10}, Motion: MotionConfig{Kind: MotionOrbit, Radius: 3, Speed: 0.015, Phase: 1.5}},
			},
		},
	}
}
