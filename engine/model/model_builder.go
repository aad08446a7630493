package model

import "github.com/go-gl/mathgl/mgl32"

// InstanceOption is a functional option for configuring an InstanceController.
type InstanceOption func(*InstanceController)

// WithScale sets the per-axis scale.
//
// Parameters:
//   - x: X scale
//   - y: Y scale
//   - z: Z scale
//
// Returns:
//   - InstanceOption: functional option to set the scale
func WithScale(x, y, z float32) InstanceOption {
	return func(ic *InstanceController) {
		ic.Scale = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the orientation.
func WithRotation(q mgl32.Quat) InstanceOption {
	return func(ic *InstanceController) {
		ic.Rotation = q
	}
}

// WithPosition sets the world or screen position.
//
// Parameters:
//   - x: X coordinate
//   - y: Y coordinate
//   - z: Z coordinate
//
// Returns:
//   - InstanceOption: functional option to set the position
func WithPosition(x, y, z float32) InstanceOption {
	return func(ic *InstanceController) {
		ic.Position = mgl32.Vec3{x, y, z}
	}
}

// WithUV sets the texture rectangle.
//
// Parameters:
//   - uv: offset x, offset y, width, height in texture coordinates
//
// Returns:
//   - InstanceOption: functional option to set the texture rectangle
func WithUV(uv mgl32.Vec4) InstanceOption {
	return func(ic *InstanceController) {
		ic.UV = uv
	}
}
