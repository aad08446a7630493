package renderer

import "errors"

// ErrSurfaceBusy is returned by BeginFrame when the previous frame has not been presented.
var ErrSurfaceBusy = errors.New("previous frame surface not yet presented")

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// Layer identifies one of the two instance/camera buffer sets held by a backend.
type Layer int

const (
	// LayerWorld is the perspective-projected 3D scene.
	LayerWorld Layer = iota
	// LayerUi is the orthographic screen-space overlay.
	LayerUi

	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerWorld:
		return "world"
	case LayerUi:
		return "ui"
	default:
		return "unknown"
	}
}

// RendererBackend is the GPU-facing half of the Renderer.
// The Renderer validates and clamps every request before it reaches the backend, so a backend
// may assume slots and ranges are within its capacity.
type RendererBackend interface {
	// ConfigureSurface (re)creates the swapchain and any size-dependent attachments.
	//
	// Parameters:
	//   - width: the surface width in pixels
	//   - height: the surface height in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the present mode used by the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// BeginFrame acquires the next surface texture and opens a command encoder.
	// Must be paired with EndFrame and Present.
	//
	// Returns:
	//   - error: ErrSurfaceBusy if a frame is already open, or the acquisition error
	BeginFrame() error

	// WriteCamera uploads a marshaled camera uniform for the given layer.
	WriteCamera(layer Layer, data []byte)

	// WriteInstances uploads a contiguous block of marshaled instances starting at slot.
	//
	// Parameters:
	//   - layer: the instance buffer to write
	//   - slot: the index of the first instance in data
	//   - data: one or more marshaled model.GPUInstance values
	WriteInstances(layer Layer, slot int, data []byte)

	// DrawSkybox clears the frame to the sky background.
	DrawSkybox()

	// DrawWorld draws each range of the world buffer with its model's mesh.
	DrawWorld(ranges []WorldRange)

	// DrawUi draws each range of the UI buffer, clearing to clear first when it is non-nil.
	DrawUi(clear *Color, ranges []UiRange)

	// EndFrame finishes the command encoder and submits it. Does not present.
	EndFrame()

	// Present presents the acquired surface texture and releases it.
	Present()
}
