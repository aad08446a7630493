package scene

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/model"
	"github.com/Carmen-Shannon/oxy-fps/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
)

// Phase is the sub-state of a round.
type Phase interface {
	isPhase()
}

// PlayingPhase runs shooting and the score countdown.
type PlayingPhase struct{}

// EndPhase shows the outcome and waits for a restart.
type EndPhase struct {
	Won        bool
	Message    *game_object.Message
	Indication *game_object.Message
}

func (PlayingPhase) isPhase() {}
func (EndPhase) isPhase()     {}

// hudMargin is the distance in pixels between the score digits and the screen corner.
const hudMargin = 20

// GameSceneState is one round: the arena, the player camera, the targets and the HUD.
type GameSceneState struct {
	width, height float32
	ctx           *sceneContext

	camera  camera.CameraController
	floor   *game_object.Floor
	walls   []*game_object.Wall
	targets []*game_object.Target
	reticle *game_object.Reticle
	digits  *game_object.Digits

	score uint32
	phase Phase
}

func newGameSceneState(width, height float32, ctx *sceneContext) *GameSceneState {
	level := &ctx.level
	start := level.CameraStart
	s := &GameSceneState{
		width:  width,
		height: height,
		ctx:    ctx,
		camera: camera.NewCameraController(
			camera.WithViewport(width, height),
			camera.WithPosition(start[0], start[1], start[2]),
		),
		floor:   game_object.NewFloor(level.FloorWidth, level.FloorDepth),
		walls:   level.buildWalls(),
		targets: level.buildTargets(),
		reticle: game_object.NewReticle(),
		score:   level.StartScore,
		phase:   PlayingPhase{},
	}
	s.digits = s.newDigits()
	return s
}

// Camera returns a snapshot of the player camera.
func (s *GameSceneState) Camera() camera.CameraController {
	return s.camera
}

// Score returns the remaining countdown.
func (s *GameSceneState) Score() uint32 {
	return s.score
}

// Phase returns the round's sub-state.
func (s *GameSceneState) Phase() Phase {
	return s.phase
}

// Targets returns the live targets in slot order.
func (s *GameSceneState) Targets() []*game_object.Target {
	return s.targets
}

// Resize updates the camera viewport and lays the HUD out again.
func (s *GameSceneState) Resize(width, height float32) {
	s.width, s.height = width, height
	s.camera.SetViewport(width, height)
	s.digits = s.newDigits()
	if end, ok := s.phase.(EndPhase); ok {
		s.phase = s.endPhase(end.Won)
	}
}

// Update advances the round by one frame. The order is fixed: look, move and collide,
// play or wait for restart, move targets, then emit requests.
//
// Parameters:
//   - in: the input snapshot for this frame
//   - requests: the request list to append to
//
// Returns:
//   - []renderer.RenderRequest: requests with this frame's requests appended
//   - Scene: the next scene, or nil to stay
func (s *GameSceneState) Update(in input.InputStates, requests []renderer.RenderRequest) ([]renderer.RenderRequest, Scene) {
	s.camera.Rotate(s.camera.LookDelta(in.CursorDelta()))
	s.move(in)

	var next Scene
	switch s.phase.(type) {
	case PlayingPhase:
		s.updatePlaying(in)
	case EndPhase:
		next = s.updateEnd(in)
	}

	for _, t := range s.targets {
		t.Update()
	}
	s.digits.SetNumber(s.score)

	return s.appendRequests(requests), next
}

func (s *GameSceneState) move(in input.InputStates) {
	rl := in.Axis(input.MoveRight, input.MoveLeft)
	fb := in.Axis(input.MoveForward, input.MoveBack)
	if rl == 0 && fb == 0 {
		return
	}
	intent := common.MustNormalize(mgl32.Vec3{rl, 0, fb}).Mul(s.ctx.level.MoveSpeed)
	velocity := s.camera.AlignToDirection(intent)
	velocity = game_object.ResolveMovement(s.walls, s.camera.Position(), velocity)
	s.camera.SetPosition(s.camera.Position().Add(velocity))
}

func (s *GameSceneState) updatePlaying(in input.InputStates) {
	if s.score > 0 {
		s.score--
	}

	if in.JustPressed(input.Shoot) {
		var hits int
		s.targets, hits = game_object.RemoveShot(s.targets, s.camera.Position(), s.camera.Direction())
		if hits > 0 {
			s.ctx.logger.Debug("target hit", "hits", hits, "remaining", len(s.targets))
		}
	}

	switch {
	case len(s.targets) == 0:
		s.phase = s.endPhase(true)
		s.ctx.logger.Info("round won", "score", s.score)
	case s.score == 0:
		s.phase = s.endPhase(false)
		s.ctx.logger.Info("round lost", "targets", len(s.targets))
	}
}

func (s *GameSceneState) updateEnd(in input.InputStates) Scene {
	if !in.JustPressed(input.Confirm) {
		return nil
	}
	return TitleScene{State: newTitleSceneState(s.width, s.height, s.ctx)}
}

// endPhase builds the outcome message with the restart hint directly below it.
func (s *GameSceneState) endPhase(won bool) EndPhase {
	uv := game_object.UVLose
	if won {
		uv = game_object.UVWin
	}
	y := s.height * 0.25
	message := game_object.NewMessage(0, y, s.width*0.3, uv)
	indication := game_object.NewMessage(0, 0, s.width*0.35, game_object.UVRestart)
	indication.SetPosition(0, y-message.Height()/2-indication.Height()/2)
	return EndPhase{Won: won, Message: message, Indication: indication}
}

func (s *GameSceneState) newDigits() *game_object.Digits {
	return game_object.NewDigits(s.width/2-hudMargin, s.height/2-hudMargin, s.width*0.03, s.score)
}

// appendRequests collects this frame's instance diffs and draw ranges.
// World slots: walls, then the floor, then targets. UI slots: reticle, digits, then the end messages.
func (s *GameSceneState) appendRequests(requests []renderer.RenderRequest) []renderer.RenderRequest {
	world := make([]*model.InstanceController, 0, len(s.walls)+1+len(s.targets))
	world = game_object.AppendInstances(world, s.walls...)
	world = append(world, s.floor.Instance())
	world = game_object.AppendInstances(world, s.targets...)

	ui := []*model.InstanceController{s.reticle.Instance()}
	ui = append(ui, s.digits.Instances()...)
	if end, ok := s.phase.(EndPhase); ok {
		ui = game_object.AppendInstances(ui, end.Message, end.Indication)
	}

	static := uint32(len(s.walls) + 1)
	all := uint32(len(world))
	return append(requests,
		renderer.UpdateCamera{Camera: s.camera},
		renderer.DrawSkybox{},
		renderer.UpdateWorldInstances{Instances: world},
		renderer.DrawWorld{Ranges: []renderer.WorldRange{
			{Model: model.ModelCube, Start: 0, End: static},
			{Model: model.ModelSphere, Start: static, End: all},
		}},
		renderer.UpdateUiInstances{Instances: ui},
		renderer.DrawUi{Ranges: []renderer.UiRange{{Start: 0, End: uint32(len(ui))}}},
	)
}
