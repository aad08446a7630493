package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*CameraController)

// WithPov sets the vertical field of view.
//
// Parameters:
//   - pov: field of view in radians
//
// Returns:
//   - CameraControllerOption: functional option to set the field of view
func WithPov(pov float32) CameraControllerOption {
	return func(c *CameraController) {
		c.pov = pov
	}
}

// WithViewport sets the viewport size in pixels.
//
// Parameters:
//   - width: viewport width
//   - height: viewport height
//
// Returns:
//   - CameraControllerOption: functional option to set the viewport
func WithViewport(width, height float32) CameraControllerOption {
	return func(c *CameraController) {
		c.width = width
		c.height = height
	}
}

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x: X coordinate
//   - y: Y coordinate
//   - z: Z coordinate
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(x, y, z float32) CameraControllerOption {
	return func(c *CameraController) {
		c.position = mgl32.Vec3{x, y, z}
	}
}

// WithYawPitch sets the initial orientation. Pitch is clamped on construction.
//
// Parameters:
//   - yaw: heading in radians, 0 looks along +Z
//   - pitch: look angle in radians, positive looks down
//
// Returns:
//   - CameraControllerOption: functional option to set the orientation
func WithYawPitch(yaw, pitch float32) CameraControllerOption {
	return func(c *CameraController) {
		c.yaw = yaw
		c.pitch = pitch
	}
}
