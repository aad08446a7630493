package scene

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
)

// WallSpec places one wall: center, rotation about Y in radians and full extents.
type WallSpec struct {
	Position  mgl32.Vec3
	RotationY float32
	Scale     mgl32.Vec3
}

// TargetSpec places one target and its scripted motion.
type TargetSpec struct {
	Position mgl32.Vec3
	Motion   game_object.Motion
}

// Level is everything a GameSceneState needs to build a fresh round.
type Level struct {
	CameraStart mgl32.Vec3
	FloorWidth  float32
	FloorDepth  float32
	Walls       []WallSpec
	Targets     []TargetSpec

	// StartScore is the countdown the player races; it drops by one every frame.
	StartScore uint32
	// MoveSpeed is the distance walked per frame.
	MoveSpeed float32
}

// DefaultLevel returns the stock arena: a 40x80 room split by four inner walls with five targets.
func DefaultLevel() Level {
	return Level{
		CameraStart: mgl32.Vec3{0, 1.5, -35},
		FloorWidth:  40,
		FloorDepth:  80,
		Walls: []WallSpec{
			// outer
			{Position: mgl32.Vec3{0, 4, 40}, RotationY: 0, Scale: mgl32.Vec3{40, 8, 1}},
			{Position: mgl32.Vec3{0, 4, -40}, RotationY: mgl32.DegToRad(180), Scale: mgl32.Vec3{40, 8, 1}},
			{Position: mgl32.Vec3{20, 4, 0}, RotationY: mgl32.DegToRad(90), Scale: mgl32.Vec3{80, 8, 1}},
			{Position: mgl32.Vec3{-20, 4, 0}, RotationY: mgl32.DegToRad(-90), Scale: mgl32.Vec3{80, 8, 1}},
			// inner
			{Position: mgl32.Vec3{-2, 1.5, -20}, RotationY: 0, Scale: mgl32.Vec3{36, 3, 1}},
			{Position: mgl32.Vec3{2, 1.5, 20}, RotationY: 0, Scale: mgl32.Vec3{36, 3, 1}},
			{Position: mgl32.Vec3{11, 3.5, 0}, RotationY: 0, Scale: mgl32.Vec3{18, 7, 1}},
			{Position: mgl32.Vec3{-11, 3.5, 0}, RotationY: 0, Scale: mgl32.Vec3{18, 7, 1}},
		},
		Targets: []TargetSpec{
			{Position: mgl32.Vec3{0, 2, 0}, Motion: game_object.Stationary()},
			{Position: mgl32.Vec3{15, 2.5, -15}, Motion: game_object.SineBob(mgl32.Vec3{0, 1, 0}, 1, 0.05, 0)},
			{Position: mgl32.Vec3{15, 3, 15}, Motion: game_object.Orbit(2, 0.02, 0)},
			{Position: mgl32.Vec3{0, 2, 35}, Motion: game_object.SineBob(mgl32.Vec3{1, 0, 0}, 4, 0.03, 0)},
			{Position: mgl32.Vec3{-15, 5, 10}, Motion: game_object.Orbit(3, 0.015, 1.5)},
		},
		StartScore: 3000,
		MoveSpeed:  0.25,
	}
}

func (l *Level) buildWalls() []*game_object.Wall {
	walls := make([]*game_object.Wall, len(l.Walls))
	for i, w := range l.Walls {
		walls[i] = game_object.NewWall(w.Position, w.RotationY, w.Scale)
	}
	return walls
}

func (l *Level) buildTargets() []*game_object.Target {
	targets := make([]*game_object.Target, len(l.Targets))
	for i, t := range l.Targets {
		targets[i] = game_object.NewTarget(t.Position, game_object.WithMotion(t.Motion))
	}
	return targets
}
