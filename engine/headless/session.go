// Package headless plays the game without a window or GPU.
//
// A Session owns its own scene manager, input manager and a renderer backed by renderer.MemoryBackend,
// and feeds it a Script one frame at a time. Sessions share nothing, so RunSessions can play many of
// them at once on a worker pool.
package headless

import (
	"context"
	"fmt"
	"io"

	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/renderer"
	"github.com/Carmen-Shannon/oxy-fps/engine/scene"
	"github.com/charmbracelet/log"
)

// Outcome is how a round ended.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// Result summarizes a session after its last frame.
type Result struct {
	ID          int
	Frames      int
	Scene       string
	Outcome     Outcome
	Score       uint32
	TargetsLeft int
	// Presented counts frames the renderer presented.
	Presented int
	// Uploads counts instance buffer writes.
	Uploads int
}

// Session is one scripted, renderer-less playthrough.
type Session struct {
	id        int
	frames    int
	width     float32
	height    float32
	level     *scene.Level
	script    *Script
	stopOnEnd bool
	logger    *log.Logger
	bindings  input.Bindings

	backend  *renderer.MemoryBackend
	renderer renderer.Renderer
	scenes   *scene.SceneManager
	input    *input.Manager
	frame    int
	outcome  Outcome
}

// NewSession creates a Session. It plays the script's length unless WithFrames says otherwise.
//
// Parameters:
//   - options: functional options for the session
//
// Returns:
//   - *Session: the new session
//   - error: an error if the renderer could not be created
func NewSession(options ...SessionOption) (*Session, error) {
	s := &Session{
		width:  1280,
		height: 720,
		logger: log.New(io.Discard),
		frames: -1,
	}
	for _, opt := range options {
		opt(s)
	}
	if s.frames < 0 {
		s.frames = s.script.lenOrZero()
	}

	logger := s.logger.With("session", s.id)
	sceneOpts := []scene.SceneManagerOption{scene.WithLogger(logger)}
	if s.level != nil {
		sceneOpts = append(sceneOpts, scene.WithLevel(*s.level))
	}
	inputOpts := []input.ManagerOption{}
	if s.bindings != nil {
		inputOpts = append(inputOpts, input.WithBindings(s.bindings))
	}

	s.backend = renderer.NewMemoryBackend()
	r, err := renderer.NewRenderer(nil, renderer.WithBackend(s.backend), renderer.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("session %d: %w", s.id, err)
	}
	s.renderer = r
	s.scenes = scene.NewSceneManager(sceneOpts...)
	s.input = input.NewManager(inputOpts...)

	s.renderer.Resize(int(s.width), int(s.height))
	s.scenes.OnWindowCreated(s.width, s.height)
	return s, nil
}

// ID returns the session ID.
func (s *Session) ID() int {
	return s.id
}

// Scenes returns the session's scene manager.
func (s *Session) Scenes() *scene.SceneManager {
	return s.scenes
}

// Backend returns the in-memory backend the session renders into.
func (s *Session) Backend() *renderer.MemoryBackend {
	return s.backend
}

// Step plays one frame: scripted events, scene update, render, input advance.
//
// Returns:
//   - error: a render error
func (s *Session) Step() error {
	for _, e := range s.script.at(s.frame) {
		switch e.kind {
		case eventPress:
			s.input.Press(e.code)
		case eventRelease:
			s.input.Release(e.code)
		case eventLook:
			s.input.MoveCursor(e.dx, e.dy)
		}
	}

	requests := s.scenes.Update(s.input.Snapshot())
	s.input.GoNext()
	s.frame++
	s.observe()

	if len(requests) == 0 {
		return nil
	}
	if err := s.renderer.Render(requests); err != nil {
		return fmt.Errorf("session %d frame %d: %w", s.id, s.frame, err)
	}
	return nil
}

// Run plays the configured number of frames, or until the round ends when WithStopOnEnd is set.
// It checks ctx between frames.
//
// Returns:
//   - Result: the state after the last frame played
//   - error: a render error or ctx.Err()
func (s *Session) Run(ctx context.Context) (Result, error) {
	for s.frame < s.frames {
		if err := ctx.Err(); err != nil {
			return s.Result(), err
		}
		if err := s.Step(); err != nil {
			return s.Result(), err
		}
		if s.stopOnEnd && s.outcome != OutcomeNone {
			break
		}
	}
	r := s.Result()
	s.logger.Debug("session finished", "session", s.id, "frames", r.Frames, "scene", r.Scene, "outcome", r.Outcome, "score", r.Score)
	return r, nil
}

// Result reports the current state of the session.
func (s *Session) Result() Result {
	r := Result{
		ID:        s.id,
		Frames:    s.frame,
		Scene:     s.scenes.Scene().Name(),
		Outcome:   s.outcome,
		Presented: s.backend.Frames,
		Uploads:   s.backend.Writes,
	}
	if g, ok := s.scenes.Scene().(scene.GameScene); ok {
		r.Score = g.State.Score()
		r.TargetsLeft = len(g.State.Targets())
	}
	return r
}

// observe remembers the outcome of the most recent round, which outlives the game scene.
func (s *Session) observe() {
	g, ok := s.scenes.Scene().(scene.GameScene)
	if !ok {
		return
	}
	switch p := g.State.Phase().(type) {
	case scene.EndPhase:
		if p.Won {
			s.outcome = OutcomeWon
		} else {
			s.outcome = OutcomeLost
		}
	case scene.PlayingPhase:
		s.outcome = OutcomeNone
	}
}

func (s *Script) lenOrZero() int {
	if s == nil {
		return 0
	}
	return s.Len()
}
