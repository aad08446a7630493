package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/profiler"
	"github.com/Carmen-Shannon/oxy-fps/engine/renderer"
	"github.com/Carmen-Shannon/oxy-fps/engine/scene"
	"github.com/Carmen-Shannon/oxy-fps/engine/window"
	"github.com/charmbracelet/log"
)

// maxStepsPerPoll bounds how many simulation steps one window poll may run to catch up.
const maxStepsPerPoll = 5

// engine implements the Engine interface.
// Everything runs on the window thread: each poll of the message loop advances the simulation
// in fixed steps and renders the requests each step produced.
type engine struct {
	window   window.Window
	renderer renderer.Renderer
	scenes   *scene.SceneManager
	input    *input.Manager
	logger   *log.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickRate   time.Duration
	now        func() time.Time
	lastPoll   time.Time
	lag        time.Duration
	frame      uint64
	viewWidth  int
	viewHeight int

	rendererOptions []renderer.RendererBuilderOption

	quit bool
}

// Engine drives the game: window events feed the input manager, and each fixed step takes an input
// snapshot, updates the active scene, renders the resulting requests and advances the input counters.
type Engine interface {
	// Window returns the underlying window, or nil for an engine without one.
	Window() window.Window

	// Scenes returns the scene manager.
	Scenes() *scene.SceneManager

	// Input returns the input manager fed by the window.
	Input() *input.Manager

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the simulation rate in steps per second.
	//
	// Parameters:
	//   - fps: target steps per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// Step runs exactly one simulation step and renders it.
	//
	// Returns:
	//   - error: the render error, if any
	Step() error

	// Run runs the window message loop until the window closes or Quit is called.
	//
	// Returns:
	//   - error: an error if the engine has no window
	Run() error

	// Quit stops Run after the current poll. Safe to call multiple times.
	Quit()
}

// ErrNoWindow is returned by Run on an engine built without a window.
var ErrNoWindow = errors.New("engine has no window")

// NewEngine creates a new Engine.
// With a window and no explicit renderer, a WebGPU renderer is created for the window's surface.
// The scene manager is told about the window (or the WithViewport size) so the title scene starts.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: an error if the renderer could not be created
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		logger:   log.New(io.Discard),
		tickRate: time.Second / 60,
		now:      time.Now,
	}
	for _, opt := range options {
		opt(e)
	}

	e.input = input.NewManager()
	if e.scenes == nil {
		e.scenes = scene.NewSceneManager(scene.WithLogger(e.logger))
	}
	e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger), profiler.WithClock(e.now))

	if e.window != nil {
		e.viewWidth, e.viewHeight = e.window.Width(), e.window.Height()
		if e.renderer == nil {
			opts := append([]renderer.RendererBuilderOption{renderer.WithLogger(e.logger)}, e.rendererOptions...)
			r, err := renderer.NewRenderer(e.window, opts...)
			if err != nil {
				return nil, fmt.Errorf("failed to create renderer: %w", err)
			}
			e.renderer = r
		}
		e.bindWindow()
	}

	if e.viewWidth > 0 && e.viewHeight > 0 {
		if e.renderer != nil && e.window == nil {
			e.renderer.Resize(e.viewWidth, e.viewHeight)
		}
		e.scenes.OnWindowCreated(float32(e.viewWidth), float32(e.viewHeight))
	}
	return e, nil
}

// bindWindow routes window events into the input manager, renderer and scenes.
func (e *engine) bindWindow() {
	e.window.SetKeyDownCallback(e.input.Press)
	e.window.SetKeyUpCallback(e.input.Release)
	e.window.SetCursorDeltaCallback(e.input.MoveCursor)
	e.window.SetFocusCallback(func(focused bool) {
		if !focused {
			e.input.ReleaseAll()
		}
	})
	e.window.SetResizeCallback(e.resize)
	e.window.SetUpdateCallback(e.poll)
}

func (e *engine) resize(width, height int) {
	e.viewWidth, e.viewHeight = width, height
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
	e.scenes.Resize(float32(width), float32(height))
	e.logger.Debug("resized", "width", width, "height", height)
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scenes() *scene.SceneManager {
	return e.scenes
}

func (e *engine) Input() *input.Manager {
	return e.input
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickRate(fps float64) {
	e.tickRate = tickDuration(fps)
}

func (e *engine) Step() error {
	requests := e.scenes.Update(e.input.Snapshot())
	defer e.input.GoNext()

	e.frame++
	if e.profilingEnabled {
		e.profiler.Tick()
	}
	if len(requests) == 0 || e.renderer == nil {
		return nil
	}
	if err := e.renderer.Render(requests); err != nil {
		return fmt.Errorf("frame %d: %w", e.frame, err)
	}
	return nil
}

func (e *engine) Run() error {
	if e.window == nil {
		return ErrNoWindow
	}
	e.lastPoll = e.now()
	e.logger.Info("engine started", "tick", e.tickRate, "width", e.viewWidth, "height", e.viewHeight)
	e.window.ProcessMessages()
	e.logger.Info("engine stopped", "frames", e.frame)
	if e.quit {
		return nil
	}
	return e.window.Close()
}

func (e *engine) Quit() {
	if e.quit {
		return
	}
	e.quit = true
	if e.window != nil {
		e.window.SetUpdateCallback(nil)
		_ = e.window.Close()
	}
}

// poll advances the simulation by the elapsed time in whole ticks.
// A stall longer than maxStepsPerPoll ticks drops the remainder instead of fast-forwarding.
func (e *engine) poll() {
	now := e.now()
	e.lag += now.Sub(e.lastPoll)
	e.lastPoll = now

	steps := 0
	for e.lag >= e.tickRate && !e.quit {
		if steps == maxStepsPerPoll {
			e.lag = 0
			break
		}
		if err := e.Step(); err != nil {
			e.logger.Warn("failed to render", "error", err)
		}
		e.lag -= e.tickRate
		steps++
	}
}

func tickDuration(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
