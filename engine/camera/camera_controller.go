package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch is the largest look angle above or below the horizon, in radians.
const MaxPitch = math.Pi / 2

var (
	// Forward is the local view direction of an unrotated camera.
	Forward = mgl32.Vec3{0, 0, 1}
	// Up is the local up direction of an unrotated camera.
	Up = mgl32.Vec3{0, 1, 0}
)

// CameraController is the first-person camera state owned by a game scene.
// It is a plain value: copying it produces an independent snapshot, which is
// what the renderer receives each frame.
//
// Orientation is kept as yaw and pitch angles and composed into a single
// quaternion, yaw about +Y first and then pitch about the local +X. Roll is
// always zero. Pitch stays within [-MaxPitch, MaxPitch]; yaw is unbounded.
type CameraController struct {
	pov      float32
	width    float32
	height   float32
	position mgl32.Vec3
	yaw      float32
	pitch    float32
	rotation mgl32.Quat
}

// NewCameraController creates a camera looking along +Z from the origin with a 45 degree
// field of view, then applies the provided options.
//
// Parameters:
//   - options: variadic list of CameraControllerOption functions
//
// Returns:
//   - CameraController: the configured camera
func NewCameraController(options ...CameraControllerOption) CameraController {
	c := CameraController{
		pov:      mgl32.DegToRad(45),
		width:    1,
		height:   1,
		rotation: mgl32.QuatIdent(),
	}
	for _, opt := range options {
		opt(&c)
	}
	c.pitch = clampPitch(c.pitch)
	c.rotation = composeRotation(c.yaw, c.pitch)
	return c
}

// Pov returns the vertical field of view in radians.
func (c *CameraController) Pov() float32 {
	return c.pov
}

// Viewport returns the viewport width and height in pixels.
func (c *CameraController) Viewport() (width, height float32) {
	return c.width, c.height
}

// SetViewport updates the viewport size used for the aspect ratio and mouse look scaling.
func (c *CameraController) SetViewport(width, height float32) {
	c.width = width
	c.height = height
}

// Position returns the camera's world-space position.
func (c *CameraController) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition moves the camera to p.
func (c *CameraController) SetPosition(p mgl32.Vec3) {
	c.position = p
}

// Rotation returns the camera orientation.
func (c *CameraController) Rotation() mgl32.Quat {
	return c.rotation
}

// YawPitch returns the orientation angles in radians.
func (c *CameraController) YawPitch() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// Direction returns the unit view direction.
func (c *CameraController) Direction() mgl32.Vec3 {
	return c.rotation.Rotate(Forward)
}

// UpDirection returns the camera's local up axis in world space.
func (c *CameraController) UpDirection() mgl32.Vec3 {
	return c.rotation.Rotate(Up)
}

// Rotate turns the camera by the given yaw and pitch deltas in radians.
// The resulting pitch is clamped to [-MaxPitch, MaxPitch].
//
// Parameters:
//   - deltaYaw: rotation about the world Y axis; positive turns toward +X
//   - deltaPitch: rotation about the local X axis; positive looks down
func (c *CameraController) Rotate(deltaYaw, deltaPitch float32) {
	c.yaw += deltaYaw
	c.pitch = clampPitch(c.pitch + deltaPitch)
	c.rotation = composeRotation(c.yaw, c.pitch)
}

// AlignToDirection rotates a local movement vector by the camera yaw only, so movement
// stays on the horizontal plane regardless of pitch.
//
// Parameters:
//   - v: movement in camera-local axes (+X right, +Z forward)
//
// Returns:
//   - mgl32.Vec3: the movement in world axes
func (c *CameraController) AlignToDirection(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.QuatRotate(c.yaw, Up).Rotate(v)
}

// Translate moves the camera by v expressed relative to the horizontal heading.
// The heading is measured from the view direction projected onto the XZ plane,
// so this primitive ignores collision entirely.
//
// Parameters:
//   - v: movement in camera-local axes (+X right, +Z forward)
func (c *CameraController) Translate(v mgl32.Vec3) {
	d := c.Direction()
	heading := float32(math.Atan2(float64(d[0]), float64(d[2])))
	c.position = c.position.Add(mgl32.QuatRotate(heading, Up).Rotate(v))
}

// LookDelta converts a cursor movement in pixels into yaw and pitch deltas:
// a full viewport width or height of movement turns the camera by 90 degrees.
//
// Parameters:
//   - dx: horizontal cursor movement in pixels
//   - dy: vertical cursor movement in pixels
//
// Returns:
//   - yaw, pitch: rotation deltas in radians
func (c *CameraController) LookDelta(dx, dy float32) (yaw, pitch float32) {
	quarter := float32(math.Pi / 2)
	return dx / c.width * quarter, dy / c.height * quarter
}

func clampPitch(p float32) float32 {
	return mgl32.Clamp(p, -MaxPitch, MaxPitch)
}

func composeRotation(yaw, pitch float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, Up).Mul(mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0})).Normalize()
}
