package renderer

import "github.com/charmbracelet/log"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithBackend makes the renderer draw through b instead of creating a WebGPU backend.
//
// Parameters:
//   - b: the backend to use, e.g. a MemoryBackend for headless runs
//
// Returns:
//   - RendererBuilderOption: a function that applies the backend option to a renderer
func WithBackend(b RendererBackend) RendererBuilderOption {
	return func(r *renderer) {
		r.backend = b
	}
}

// WithLogger sets the logger used for surface and overflow diagnostics.
func WithLogger(logger *log.Logger) RendererBuilderOption {
	return func(r *renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithCapacity overrides the number of instance slots in the world and UI buffers.
// Non-positive values keep the defaults.
//
// Parameters:
//   - world: the world buffer capacity
//   - ui: the UI buffer capacity
//
// Returns:
//   - RendererBuilderOption: a function that applies the capacity option to a renderer
func WithCapacity(world, ui int) RendererBuilderOption {
	return func(r *renderer) {
		if world > 0 {
			r.capacity[LayerWorld] = world
		}
		if ui > 0 {
			r.capacity[LayerUi] = ui
		}
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}
