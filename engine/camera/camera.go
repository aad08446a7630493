package camera

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Clip distances shared by the world and UI projections.
const (
	WorldNear = 0.1
	WorldFar  = 1000
	UiNear    = 0
	UiFar     = 1000
)

// ProjectionMatrix returns the left-handed perspective projection for the camera's viewport.
func (c *CameraController) ProjectionMatrix() mgl32.Mat4 {
	return common.PerspectiveLH(c.pov, c.width/c.height, WorldNear, WorldFar)
}

// ViewMatrix returns the left-handed view matrix looking along the camera's direction.
func (c *CameraController) ViewMatrix() mgl32.Mat4 {
	return common.LookToLH(c.position, c.Direction(), c.UpDirection())
}

// Uniform packs the camera matrices for upload.
//
// Returns:
//   - GPUCameraUniform: the world camera uniform
func (c *CameraController) Uniform() GPUCameraUniform {
	return GPUCameraUniform{
		Projection: c.ProjectionMatrix(),
		View:       c.ViewMatrix(),
	}
}

// UiUniform builds the orthographic camera used for screen-space UI, with the origin
// at the viewport center and one unit per pixel.
//
// Parameters:
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - GPUCameraUniform: the UI camera uniform
func UiUniform(width, height float32) GPUCameraUniform {
	hw, hh := width/2, height/2
	return GPUCameraUniform{
		Projection: common.OrthographicLH(-hw, hw, -hh, hh, UiNear, UiFar),
		View:       mgl32.Ident4(),
	}
}
