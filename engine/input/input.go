package input

// PressingInput is a logical input whose held duration is tracked per frame.
type PressingInput int

const (
	MoveForward PressingInput = iota
	MoveBack
	MoveLeft
	MoveRight
	// Confirm starts a game from the title screen and restarts after a game ends.
	Confirm
	Shoot

	pressingInputCount
)

// AllPressingInputs lists every logical input in declaration order.
var AllPressingInputs = [pressingInputCount]PressingInput{MoveForward, MoveBack, MoveLeft, MoveRight, Confirm, Shoot}

// String returns a readable name for the input.
func (p PressingInput) String() string {
	switch p {
	case MoveForward:
		return "move_forward"
	case MoveBack:
		return "move_back"
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	case Confirm:
		return "confirm"
	case Shoot:
		return "shoot"
	default:
		return "unknown"
	}
}

// InputStates is the input seen by one frame of the simulation.
//
// Each logical input carries a frames-held counter: 0 means released, 1 means
// pressed this frame and n means held for n-1 further frames. The cursor delta
// is the movement accumulated since the previous frame, in pixels.
type InputStates struct {
	pressing [pressingInputCount]uint32
	cursorX  float32
	cursorY  float32
}

// Held returns the frames-held counter of p.
func (s InputStates) Held(p PressingInput) uint32 {
	if p < 0 || p >= pressingInputCount {
		return 0
	}
	return s.pressing[p]
}

// IsPressed reports whether p is down this frame.
func (s InputStates) IsPressed(p PressingInput) bool {
	return s.Held(p) > 0
}

// JustPressed reports whether p went down this frame.
func (s InputStates) JustPressed(p PressingInput) bool {
	return s.Held(p) == 1
}

// Axis returns 1 when only positive is held, -1 when only negative is held, and 0 otherwise.
func (s InputStates) Axis(positive, negative PressingInput) float32 {
	var v float32
	if s.IsPressed(positive) {
		v++
	}
	if s.IsPressed(negative) {
		v--
	}
	return v
}

// CursorDelta returns the cursor movement since the previous frame.
func (s InputStates) CursorDelta() (dx, dy float32) {
	return s.cursorX, s.cursorY
}

// With returns a copy of s with p's counter set to held.
// It is used to build snapshots for scripted or headless runs.
func (s InputStates) With(p PressingInput, held uint32) InputStates {
	if p >= 0 && p < pressingInputCount {
		s.pressing[p] = held
	}
	return s
}

// WithCursor returns a copy of s with the given cursor delta.
func (s InputStates) WithCursor(dx, dy float32) InputStates {
	s.cursorX = dx
	s.cursorY = dy
	return s
}
