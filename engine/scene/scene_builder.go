package scene

import "github.com/charmbracelet/log"

// SceneManagerOption is a functional option for configuring a SceneManager.
// Use the With* functions to create options.
type SceneManagerOption func(m *SceneManager)

// WithLevel sets the level every new round is built from.
//
// Parameters:
//   - level: the level layout and tuning
//
// Returns:
//   - SceneManagerOption: option function to apply
func WithLevel(level Level) SceneManagerOption {
	return func(m *SceneManager) {
		m.ctx.level = level
	}
}

// WithLogger sets the logger for scene transitions and round outcomes.
//
// Parameters:
//   - logger: the logger; nil keeps the discard logger
//
// Returns:
//   - SceneManagerOption: option function to apply
func WithLogger(logger *log.Logger) SceneManagerOption {
	return func(m *SceneManager) {
		if logger != nil {
			m.ctx.logger = logger
		}
	}
}
