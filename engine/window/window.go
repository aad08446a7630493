package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and input event handling.
// Keys and mouse buttons share one code space (see common.MouseButtonOffset) and are
// reported through the key callbacks.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key and mouse button press events.
	//
	// Parameters:
	//   - callback: function receiving the key code, or common.MouseButtonOffset+button
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key and mouse button release events.
	//
	// Parameters:
	//   - callback: function receiving the key code, or common.MouseButtonOffset+button
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetCursorDeltaCallback sets the callback for cursor movement.
	// Deltas are only reported while the cursor is captured.
	//
	// Parameters:
	//   - callback: function receiving the movement since the previous event in pixels
	SetCursorDeltaCallback(callback func(dx, dy float32))

	// SetFocusCallback sets the callback for focus changes.
	//
	// Parameters:
	//   - callback: function receiving true when the window gains focus
	SetFocusCallback(callback func(focused bool))

	// SetCursorCaptured hides and locks the cursor to the window, or releases it.
	//
	// Parameters:
	//   - captured: true to capture the cursor
	SetCursorCaptured(captured bool)

	// CursorCaptured reports whether the cursor is currently captured.
	//
	// Returns:
	//   - bool: true if captured
	CursorCaptured() bool

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	Width() int

	// Height returns the current framebuffer height in pixels.
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth and maxHeight bound the window size during resize.
	maxWidth  int
	maxHeight int

	// minWidth and minHeight bound the window size during resize.
	minWidth  int
	minHeight int

	// width is the current framebuffer width in pixels.
	width int

	// height is the current framebuffer height in pixels.
	height int

	// fullscreen spans the primary monitor with an undecorated window.
	fullscreen bool

	// captureOnStart captures the cursor as soon as the window opens.
	captureOnStart bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// cursor turns absolute cursor positions into deltas.
	cursor cursorTracker

	onUpdate      func()
	onResize      func(width, height int)
	onKeyDown     func(keyCode uint32)
	onKeyUp       func(keyCode uint32)
	onCursorDelta func(dx, dy float32)
	onFocus       func(focused bool)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
//   - error: error if GLFW or the window could not be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:          "oxy-fps",
		maxWidth:       3840,
		maxHeight:      2160,
		minWidth:       640,
		minHeight:      360,
		width:          1280,
		height:         720,
		captureOnStart: true,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("failed to create platform window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetCursorDeltaCallback(callback func(dx, dy float32)) {
	w.onCursorDelta = callback
}

func (w *engineWindow) SetFocusCallback(callback func(focused bool)) {
	w.onFocus = callback
}

func (w *engineWindow) SetCursorCaptured(captured bool) {
	w.cursor.reset()
	w.cursor.captured = captured
	platformSetCursorCaptured(w, captured)
}

func (w *engineWindow) CursorCaptured() bool {
	return w.cursor.captured
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// keyDown forwards a press unless it is consumed by cursor handling.
// Escape releases a captured cursor first and closes the window on the next press.
// A click on a window without capture only recaptures the cursor.
//
// Returns:
//   - bool: true if the window should close
func (w *engineWindow) keyDown(code uint32) bool {
	switch {
	case code == keyEscape && w.cursor.captured:
		w.SetCursorCaptured(false)
		return false
	case code == keyEscape:
		return true
	case isMouseCode(code) && !w.cursor.captured:
		w.SetCursorCaptured(true)
		return false
	}
	if w.onKeyDown != nil {
		w.onKeyDown(code)
	}
	return false
}

func (w *engineWindow) keyUp(code uint32) {
	if w.onKeyUp != nil {
		w.onKeyUp(code)
	}
}

func (w *engineWindow) cursorMoved(x, y float64) {
	dx, dy, ok := w.cursor.move(x, y)
	if ok && w.onCursorDelta != nil {
		w.onCursorDelta(dx, dy)
	}
}

func (w *engineWindow) focusChanged(focused bool) {
	if !focused && w.cursor.captured {
		w.SetCursorCaptured(false)
	}
	if w.onFocus != nil {
		w.onFocus(focused)
	}
}
