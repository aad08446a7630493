package game_object

import (
	"math"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MotionKind selects how a target moves.
type MotionKind int

const (
	// MotionStationary keeps the target at its spawn position.
	MotionStationary MotionKind = iota
	// MotionSineBob oscillates the target along an axis.
	MotionSineBob
	// MotionOrbit circles the target around its spawn position on the XZ plane.
	MotionOrbit
)

// Motion is a scripted movement. The position it produces depends only on the
// spawn position and the frame index, so replays are deterministic.
type Motion struct {
	Kind      MotionKind
	Axis      mgl32.Vec3 // SineBob: direction of travel, normalized on use
	Amplitude float32    // SineBob: peak offset from spawn
	Radius    float32    // Orbit: circle radius
	Speed     float32    // radians per frame
	Phase     float32    // radians at frame 0
}

// Stationary returns a motion that never moves.
func Stationary() Motion {
	return Motion{Kind: MotionStationary}
}

// SineBob returns a motion oscillating along axis.
//
// Parameters:
//   - axis: direction of travel; must be non-zero
//   - amplitude: peak offset from the spawn position
//   - speed: angular speed in radians per frame
//   - phase: angle at frame 0
//
// Returns:
//   - Motion: the sine bob motion
func SineBob(axis mgl32.Vec3, amplitude, speed, phase float32) Motion {
	return Motion{Kind: MotionSineBob, Axis: axis, Amplitude: amplitude, Speed: speed, Phase: phase}
}

// Orbit returns a motion circling the spawn position.
//
// Parameters:
//   - radius: circle radius
//   - speed: angular speed in radians per frame
//   - phase: angle at frame 0, measured from +Z toward +X
//
// Returns:
//   - Motion: the orbit motion
func Orbit(radius, speed, phase float32) Motion {
	return Motion{Kind: MotionOrbit, Radius: radius, Speed: speed, Phase: phase}
}

// At evaluates the motion.
//
// Parameters:
//   - base: the spawn position
//   - frame: number of updates already applied
//
// Returns:
//   - mgl32.Vec3: the position at frame
func (m Motion) At(base mgl32.Vec3, frame uint32) mgl32.Vec3 {
	angle := float64(m.Phase) + float64(m.Speed)*float64(frame)
	switch m.Kind {
	case MotionSineBob:
		return base.Add(common.MustNormalize(m.Axis).Mul(m.Amplitude * float32(math.Sin(angle))))
	case MotionOrbit:
		s, c := math.Sincos(angle)
		return base.Add(mgl32.Vec3{m.Radius * float32(s), 0, m.Radius * float32(c)})
	default:
		return base
	}
}
