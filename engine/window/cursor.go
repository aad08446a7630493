package window

import "github.com/Carmen-Shannon/oxy-fps/common"

// keyEscape matches common.KeyEsc as an unsigned key code.
const keyEscape = uint32(common.KeyEsc)

// mouseCode maps a zero-based mouse button into the shared key code space.
func mouseCode(button int) uint32 {
	return uint32(common.MouseButtonOffset + button)
}

func isMouseCode(code uint32) bool {
	return code >= common.MouseButtonOffset
}

// cursorTracker converts absolute cursor positions into per-event deltas.
// The first position after a reset only establishes the baseline.
type cursorTracker struct {
	captured bool
	hasLast  bool
	lastX    float64
	lastY    float64
}

func (c *cursorTracker) reset() {
	c.hasLast = false
}

// move records a new cursor position.
//
// Returns:
//   - dx, dy: movement since the previous position
//   - bool: false when no delta should be reported
func (c *cursorTracker) move(x, y float64) (float32, float32, bool) {
	if !c.hasLast {
		c.lastX, c.lastY, c.hasLast = x, y, true
		return 0, 0, false
	}
	dx, dy := float32(x-c.lastX), float32(y-c.lastY)
	c.lastX, c.lastY = x, y
	if !c.captured || (dx == 0 && dy == 0) {
		return 0, 0, false
	}
	return dx, dy, true
}
