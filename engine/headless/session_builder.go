package headless

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/scene"
	"github.com/charmbracelet/log"
)

// SessionOption is a functional option for configuring a Session.
type SessionOption func(*Session)

// WithID sets the session ID used in results and log lines.
func WithID(id int) SessionOption {
	return func(s *Session) {
		s.id = id
	}
}

// WithScript sets the inputs to play.
func WithScript(script *Script) SessionOption {
	return func(s *Session) {
		s.script = script
	}
}

// WithFrames sets how many frames Run plays.
func WithFrames(frames int) SessionOption {
	return func(s *Session) {
		if frames >= 0 {
			s.frames = frames
		}
	}
}

// WithViewport sets the simulated window size in pixels.
func WithViewport(width, height float32) SessionOption {
	return func(s *Session) {
		if width > 0 && height > 0 {
			s.width, s.height = width, height
		}
	}
}

// WithLevel sets the level played by the session.
func WithLevel(level scene.Level) SessionOption {
	return func(s *Session) {
		s.level = &level
	}
}

// WithBindings replaces the default key bindings.
func WithBindings(b input.Bindings) SessionOption {
	return func(s *Session) {
		s.bindings = b
	}
}

// WithStopOnEnd makes Run return as soon as a round is won or lost.
func WithStopOnEnd(stop bool) SessionOption {
	return func(s *Session) {
		s.stopOnEnd = stop
	}
}

// WithLogger sets the logger for the session and its scenes.
func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}
