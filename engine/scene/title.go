package scene

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/model"
	"github.com/Carmen-Shannon/oxy-fps/engine/renderer"
)

// TitleSceneState shows the title banner and the start prompt.
type TitleSceneState struct {
	width, height float32
	ctx           *sceneContext

	title  *game_object.Message
	prompt *game_object.Message
}

func newTitleSceneState(width, height float32, ctx *sceneContext) *TitleSceneState {
	s := &TitleSceneState{ctx: ctx}
	s.Resize(width, height)
	return s
}

// Viewport returns the stored viewport size, handed to the next GameSceneState.
func (s *TitleSceneState) Viewport() (width, height float32) {
	return s.width, s.height
}

// Resize stores the new viewport size and lays the messages out again.
func (s *TitleSceneState) Resize(width, height float32) {
	s.width, s.height = width, height
	s.title = game_object.NewMessage(0, height*0.15, width*0.6, game_object.UVTitle)
	s.prompt = game_object.NewMessage(0, -height*0.2, width*0.4, game_object.UVStartPrompt)
}

// Update draws the title screen and starts a round when Confirm is freshly pressed.
//
// Parameters:
//   - in: the input snapshot for this frame
//   - requests: the request list to append to
//
// Returns:
//   - []renderer.RenderRequest: requests with this frame's UI requests appended
//   - Scene: the next scene, or nil to stay
func (s *TitleSceneState) Update(in input.InputStates, requests []renderer.RenderRequest) ([]renderer.RenderRequest, Scene) {
	ui := game_object.AppendInstances([]*model.InstanceController(nil), s.title, s.prompt)
	requests = append(requests,
		renderer.UpdateUiInstances{Instances: ui},
		renderer.DrawUi{
			ClearColor: renderer.Black(),
			Ranges:     []renderer.UiRange{{Start: 0, End: uint32(len(ui))}},
		},
	)

	if in.JustPressed(input.Confirm) {
		return requests, GameScene{State: newGameSceneState(s.width, s.height, s.ctx)}
	}
	return requests, nil
}
