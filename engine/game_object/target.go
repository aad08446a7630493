package game_object

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// TargetScale is the rendered radius of a target sphere.
	TargetScale = 0.2
	// TargetHitRadius is the distance from a shot line within which a target counts as hit.
	TargetHitRadius = 0.2
)

// Target is a sphere the player shoots. Targets are never cached: removing one shifts
// every later target down a slot, so all of them are re-sent each frame.
type Target struct {
	base      mgl32.Vec3
	position  mgl32.Vec3
	scale     float32
	hitRadius float32
	motion    Motion
	count     uint32
}

// NewTarget creates a target at position, then applies the provided options.
//
// Parameters:
//   - position: the spawn position
//   - options: variadic list of TargetOption functions
//
// Returns:
//   - *Target: the new target
func NewTarget(position mgl32.Vec3, options ...TargetOption) *Target {
	t := &Target{
		base:      position,
		position:  position,
		scale:     TargetScale,
		hitRadius: TargetHitRadius,
		motion:    Stationary(),
	}
	for _, opt := range options {
		opt(t)
	}
	return t
}

// Position returns the current center of the target.
func (t *Target) Position() mgl32.Vec3 {
	return t.position
}

// Frame returns how many times Update has run.
func (t *Target) Frame() uint32 {
	return t.count
}

// Instance returns the target's current transform. Targets move, so it is never nil.
//
// Returns:
//   - *model.InstanceController: a fresh instance at the current position
func (t *Target) Instance() *model.InstanceController {
	ic := model.NewInstanceController(
		model.WithScale(t.scale, t.scale, t.scale),
		model.WithPosition(t.position[0], t.position[1], t.position[2]),
	)
	return &ic
}

// Update advances the scripted motion by one frame.
func (t *Target) Update() {
	t.position = t.motion.At(t.base, t.count)
	t.count++
}

// CheckShot tests the infinite line through origin along direction against the target.
//
// Parameters:
//   - origin: a point on the shot line
//   - direction: unit direction of the line
//
// Returns:
//   - bool: true if the line passes within the hit radius of the center
func (t *Target) CheckShot(origin, direction mgl32.Vec3) bool {
	r := origin.Sub(t.position)
	return common.Rejection(r, direction).Len() <= t.hitRadius
}

// RemoveShot deletes every target hit by the shot, keeping the order of the rest.
//
// Parameters:
//   - targets: the live targets
//   - origin: a point on the shot line
//   - direction: unit direction of the line
//
// Returns:
//   - []*Target: the surviving targets
//   - int: number of targets removed
func RemoveShot(targets []*Target, origin, direction mgl32.Vec3) ([]*Target, int) {
	kept := targets[:0]
	for _, t := range targets {
		if !t.CheckShot(origin, direction) {
			kept = append(kept, t)
		}
	}
	removed := len(targets) - len(kept)
	clear(targets[len(kept):])
	return kept, removed
}
