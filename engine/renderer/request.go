package renderer

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/model"
)

// RenderRequest is one command in the ordered list a scene hands to the Renderer each frame.
// The set of variants is closed; the Renderer dispatches on the concrete type.
type RenderRequest interface {
	isRenderRequest()
}

// UpdateCamera uploads the world camera's projection and view matrices.
type UpdateCamera struct {
	Camera camera.CameraController
}

// DrawSkybox clears the frame to the sky background.
type DrawSkybox struct{}

// UpdateWorldInstances patches the world instance buffer.
// Instances is index-aligned with the buffer; a nil entry leaves that slot unchanged.
type UpdateWorldInstances struct {
	Instances []*model.InstanceController
}

// WorldRange draws instances [Start, End) of the world buffer with one model's mesh.
type WorldRange struct {
	Model      model.ModelID
	Start, End uint32
}

// DrawWorld issues one instanced draw per range, in order.
type DrawWorld struct {
	Ranges []WorldRange
}

// UpdateUiInstances patches the UI instance buffer. Nil entries are left unchanged.
type UpdateUiInstances struct {
	Instances []*model.InstanceController
}

// UiRange draws instances [Start, End) of the UI buffer.
type UiRange struct {
	Start, End uint32
}

// Color is an opaque RGB clear color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Black returns a new black clear color, used behind menu screens.
func Black() *Color {
	return &Color{}
}

// DrawUi draws UI quads on top of the frame.
// When ClearColor is non-nil the frame is cleared to it first, otherwise the UI is composited over what was drawn.
type DrawUi struct {
	ClearColor *Color
	Ranges     []UiRange
}

func (UpdateCamera) isRenderRequest()         {}
func (DrawSkybox) isRenderRequest()           {}
func (UpdateWorldInstances) isRenderRequest() {}
func (DrawWorld) isRenderRequest()            {}
func (UpdateUiInstances) isRenderRequest()    {}
func (DrawUi) isRenderRequest()               {}
