package renderer

import (
	"errors"
	"fmt"
	"io"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/model"
	"github.com/Carmen-Shannon/oxy-fps/engine/window"
	"github.com/charmbracelet/log"
)

const (
	// MaxWorldInstances is the number of slots in the world instance buffer.
	MaxWorldInstances = 64

	// MaxUiInstances is the number of slots in the UI instance buffer.
	MaxUiInstances = 16
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	backend RendererBackend
	logger  *log.Logger

	capacity   [layerCount]int
	overflowed [layerCount]bool

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
}

// Renderer consumes the per-frame RenderRequest list produced by the active scene.
//
// Instance updates are sparse: only the non-nil entries are uploaded, grouped into contiguous runs so
// each run is one buffer write. Updates past a buffer's capacity are dropped and draw ranges are clamped
// to it; neither is an error.
type Renderer interface {
	// Render executes one frame's requests in order and presents the result.
	// If the frame cannot be started, camera and instance updates are still applied and draws are skipped.
	//
	// Parameters:
	//   - requests: the ordered requests for this frame
	//
	// Returns:
	//   - error: an error if the frame could not be started
	Render(requests []RenderRequest) error

	// Resize configures the underlying backend to handle a new surface size and re-uploads the UI camera.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode changes the present mode. It takes effect on the next Resize.
	SetPresentMode(mode PresentMode)
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer drawing into the given window.
// Unless WithBackend supplies one, a WebGPU backend is created from the window's surface descriptor.
//
// Parameters:
//   - w: the window to render into; may be nil when WithBackend is given
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the configured Renderer, with its surface sized to the window
//   - error: an error if no backend could be created
func NewRenderer(w window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		logger:   log.New(io.Discard),
		capacity: [layerCount]int{MaxWorldInstances, MaxUiInstances},
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	if r.backend == nil {
		if w == nil {
			return nil, errors.New("renderer: a window or a backend is required")
		}
		b, err := newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter, r.capacity)
		if err != nil {
			return nil, fmt.Errorf("create webgpu backend: %w", err)
		}
		r.backend = b
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	if w != nil {
		r.Resize(w.Width(), w.Height())
	}
	return r, nil
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
	ui := camera.UiUniform(float32(width), float32(height))
	r.backend.WriteCamera(LayerUi, ui.Marshal())
	r.logger.Debug("surface configured", "width", width, "height", height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Render(requests []RenderRequest) error {
	if err := r.backend.BeginFrame(); err != nil {
		// Cached instances are never resent, so their uploads must land even without a frame.
		for _, request := range requests {
			r.upload(request)
		}
		return fmt.Errorf("begin frame: %w", err)
	}

	for _, request := range requests {
		if r.upload(request) {
			continue
		}
		switch req := request.(type) {
		case DrawSkybox:
			r.backend.DrawSkybox()
		case DrawWorld:
			ranges := make([]WorldRange, 0, len(req.Ranges))
			for _, wr := range req.Ranges {
				start, end, ok := r.clamp(LayerWorld, wr.Start, wr.End)
				if !ok {
					continue
				}
				ranges = append(ranges, WorldRange{Model: wr.Model, Start: start, End: end})
			}
			r.backend.DrawWorld(ranges)
		case DrawUi:
			ranges := make([]UiRange, 0, len(req.Ranges))
			for _, ur := range req.Ranges {
				start, end, ok := r.clamp(LayerUi, ur.Start, ur.End)
				if !ok {
					continue
				}
				ranges = append(ranges, UiRange{Start: start, End: end})
			}
			r.backend.DrawUi(req.ClearColor, ranges)
		default:
			r.logger.Warn("unknown render request", "type", fmt.Sprintf("%T", request))
		}
	}

	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

// upload applies a buffer update request and reports whether request was one.
func (r *renderer) upload(request RenderRequest) bool {
	switch req := request.(type) {
	case UpdateCamera:
		u := req.Camera.Uniform()
		r.backend.WriteCamera(LayerWorld, u.Marshal())
	case UpdateWorldInstances:
		r.writeInstances(LayerWorld, req.Instances)
	case UpdateUiInstances:
		r.writeInstances(LayerUi, req.Instances)
	default:
		return false
	}
	return true
}

// writeInstances uploads every run of present entries that fits in the layer's buffer.
func (r *renderer) writeInstances(layer Layer, instances []*model.InstanceController) {
	capacity := r.capacity[layer]
	if len(instances) > capacity && !r.overflowed[layer] {
		r.overflowed[layer] = true
		r.logger.Warn("instance buffer overflow, extra instances dropped",
			"buffer", layer, "capacity", capacity, "requested", len(instances))
	}

	runs := common.ConsecutiveRuns(common.Upto(instances, capacity), func(ic *model.InstanceController) model.GPUInstance {
		return ic.GPU()
	})
	for _, run := range runs {
		r.backend.WriteInstances(layer, run.Start, model.MarshalInstances(run.Values))
	}
}

// clamp limits [start, end) to the layer's capacity and reports whether anything is left to draw.
func (r *renderer) clamp(layer Layer, start, end uint32) (uint32, uint32, bool) {
	end = min(end, uint32(r.capacity[layer]))
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}
