package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW   = 87  // W key (ASCII)
	KeyA   = 65  // A key (ASCII)
	KeyS   = 83  // S key (ASCII)
	KeyD   = 68  // D key (ASCII)
	KeyE   = 69  // E key (ASCII)
	KeyEsc = 256 // Escape key (GLFW)
)

// Mouse button codes. GLFW numbers buttons from zero, so they are offset
// past the key range to share one code space with keys.
const (
	MouseButtonOffset = 1000
	MouseLeft         = MouseButtonOffset + 0 // GLFW_MOUSE_BUTTON_1
	MouseRight        = MouseButtonOffset + 1 // GLFW_MOUSE_BUTTON_2
)
