package scene

import (
	"io"

	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/renderer"
	"github.com/charmbracelet/log"
)

// Scene is the active top-level game mode. Exactly one variant is held by the SceneManager;
// a transition replaces the held value wholesale.
type Scene interface {
	// Name returns the scene's identifier for logs.
	Name() string

	isScene()
}

// PrepareScene waits for the window to exist so the first real scene knows the viewport size.
type PrepareScene struct{}

// TitleScene shows the title screen until the player confirms.
type TitleScene struct {
	State *TitleSceneState
}

// GameScene is a round in progress or finished.
type GameScene struct {
	State *GameSceneState
}

func (PrepareScene) Name() string { return "prepare" }
func (TitleScene) Name() string   { return "title" }
func (GameScene) Name() string    { return "game" }

func (PrepareScene) isScene() {}
func (TitleScene) isScene()   {}
func (GameScene) isScene()    {}

// sceneContext is shared by every state a SceneManager creates.
type sceneContext struct {
	level  Level
	logger *log.Logger
}

// SceneManager owns the active Scene and drives it once per frame.
// It is not safe for concurrent use; the whole simulation runs on one goroutine.
type SceneManager struct {
	scene Scene
	ctx   *sceneContext
}

// NewSceneManager creates a SceneManager in PrepareScene, then applies the provided options.
//
// Parameters:
//   - options: variadic list of SceneManagerOption functions
//
// Returns:
//   - *SceneManager: the new manager
func NewSceneManager(options ...SceneManagerOption) *SceneManager {
	m := &SceneManager{
		scene: PrepareScene{},
		ctx: &sceneContext{
			level:  DefaultLevel(),
			logger: log.New(io.Discard),
		},
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Scene returns the active scene.
func (m *SceneManager) Scene() Scene {
	return m.scene
}

// OnWindowCreated moves from PrepareScene to the title screen.
// In any other scene it does nothing.
//
// Parameters:
//   - width: the viewport width in pixels
//   - height: the viewport height in pixels
func (m *SceneManager) OnWindowCreated(width, height float32) {
	if _, ok := m.scene.(PrepareScene); !ok {
		return
	}
	m.transition(TitleScene{State: newTitleSceneState(width, height, m.ctx)})
}

// Update advances the active scene by one frame.
//
// Parameters:
//   - in: the input snapshot for this frame
//
// Returns:
//   - []renderer.RenderRequest: the ordered requests for this frame; nil in PrepareScene
func (m *SceneManager) Update(in input.InputStates) []renderer.RenderRequest {
	var (
		requests []renderer.RenderRequest
		next     Scene
	)
	switch s := m.scene.(type) {
	case PrepareScene:
		return nil
	case TitleScene:
		requests, next = s.State.Update(in, requests)
	case GameScene:
		requests, next = s.State.Update(in, requests)
	}
	if next != nil {
		m.transition(next)
	}
	return requests
}

// Resize forwards a new viewport size to the active scene.
func (m *SceneManager) Resize(width, height float32) {
	switch s := m.scene.(type) {
	case TitleScene:
		s.State.Resize(width, height)
	case GameScene:
		s.State.Resize(width, height)
	}
}

func (m *SceneManager) transition(next Scene) {
	m.ctx.logger.Info("scene changed", "from", m.scene.Name(), "to", next.Name())
	m.scene = next
}
