package game_object

// TargetOption is a functional option for configuring a Target.
type TargetOption func(*Target)

// WithMotion sets the scripted motion of the target.
//
// Parameters:
//   - m: the motion to follow
//
// Returns:
//   - TargetOption: functional option to set the motion
func WithMotion(m Motion) TargetOption {
	return func(t *Target) {
		t.motion = m
	}
}

// WithHitRadius overrides the distance within which a shot counts as a hit.
//
// Parameters:
//   - r: the hit radius
//
// Returns:
//   - TargetOption: functional option to set the hit radius
func WithHitRadius(r float32) TargetOption {
	return func(t *Target) {
		t.hitRadius = r
	}
}

// WithTargetScale overrides the rendered size of the target.
//
// Parameters:
//   - s: the uniform scale
//
// Returns:
//   - TargetOption: functional option to set the scale
func WithTargetScale(s float32) TargetOption {
	return func(t *Target) {
		t.scale = s
	}
}
