package input

import "github.com/Carmen-Shannon/oxy-fps/common"

// Bindings maps physical key and mouse button codes to logical inputs.
type Bindings map[uint32]PressingInput

// DefaultBindings returns WASD movement, E to confirm and the left mouse button to shoot.
func DefaultBindings() Bindings {
	return Bindings{
		common.KeyW:      MoveForward,
		common.KeyS:      MoveBack,
		common.KeyA:      MoveLeft,
		common.KeyD:      MoveRight,
		common.KeyE:      Confirm,
		common.MouseLeft: Shoot,
	}
}

// Manager accumulates device events between frames and produces InputStates snapshots.
// It is driven from the window thread and is not safe for concurrent use.
type Manager struct {
	bindings Bindings
	states   InputStates
}

// NewManager creates a Manager with the default bindings, then applies the provided options.
//
// Parameters:
//   - options: variadic list of ManagerOption functions
//
// Returns:
//   - *Manager: the new manager
func NewManager(options ...ManagerOption) *Manager {
	m := &Manager{bindings: DefaultBindings()}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Press records a key or button going down. Repeated presses while held are ignored.
//
// Parameters:
//   - code: the physical key code or mouse button code
func (m *Manager) Press(code uint32) {
	p, ok := m.bindings[code]
	if !ok {
		return
	}
	if m.states.pressing[p] == 0 {
		m.states.pressing[p] = 1
	}
}

// Release records a key or button going up.
//
// Parameters:
//   - code: the physical key code or mouse button code
func (m *Manager) Release(code uint32) {
	if p, ok := m.bindings[code]; ok {
		m.states.pressing[p] = 0
	}
}

// ReleaseAll clears every held input, for example when the window loses focus.
func (m *Manager) ReleaseAll() {
	m.states.pressing = [pressingInputCount]uint32{}
}

// MoveCursor accumulates cursor movement for the current frame.
func (m *Manager) MoveCursor(dx, dy float32) {
	m.states.cursorX += dx
	m.states.cursorY += dy
}

// Snapshot returns the input for the current frame.
func (m *Manager) Snapshot() InputStates {
	return m.states
}

// GoNext advances to the next frame: held counters grow by one and the cursor delta resets.
func (m *Manager) GoNext() {
	for i, v := range m.states.pressing {
		if v > 0 {
			m.states.pressing[i] = v + 1
		}
	}
	m.states.cursorX = 0
	m.states.cursorY = 0
}

// ManagerOption is a functional option for configuring a Manager.
type ManagerOption func(*Manager)

// WithBindings replaces the default bindings.
//
// Parameters:
//   - b: the key and button bindings to use
//
// Returns:
//   - ManagerOption: functional option to set the bindings
func WithBindings(b Bindings) ManagerOption {
	return func(m *Manager) {
		m.bindings = b
	}
}
