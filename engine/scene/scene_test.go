package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/model"
	"github.com/Carmen-Shannon/oxy-fps/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	idle    = input.InputStates{}
	confirm = input.InputStates{}.With(input.Confirm, 1)
	shoot   = input.InputStates{}.With(input.Shoot, 1)
)

func gameState(t *testing.T, m *SceneManager) *GameSceneState {
	t.Helper()
	g, ok := m.Scene().(GameScene)
	if !ok {
		t.Fatalf("expected game scene, got %s", m.Scene().Name())
	}
	return g.State
}

func startGame(t *testing.T, options ...SceneManagerOption) *SceneManager {
	t.Helper()
	m := NewSceneManager(options...)
	m.OnWindowCreated(800, 600)
	m.Update(confirm)
	gameState(t, m)
	return m
}

func oneTargetLevel(start uint32) Level {
	level := DefaultLevel()
	level.StartScore = start
	level.Targets = []TargetSpec{{Position: mgl32.Vec3{0, 1.5, -30}, Motion: game_object.Stationary()}}
	return level
}

func position(g *GameSceneState) mgl32.Vec3 {
	cam := g.Camera()
	return cam.Position()
}

func TestSceneTransitions(t *testing.T) {
	m := NewSceneManager()
	if _, ok := m.Scene().(PrepareScene); !ok {
		t.Fatalf("expected prepare scene, got %s", m.Scene().Name())
	}
	if reqs := m.Update(confirm); reqs != nil {
		t.Errorf("prepare scene should emit no requests, got %d", len(reqs))
	}

	m.OnWindowCreated(800, 600)
	title, ok := m.Scene().(TitleScene)
	if !ok {
		t.Fatalf("expected title scene, got %s", m.Scene().Name())
	}
	if w, h := title.State.Viewport(); w != 800 || h != 600 {
		t.Errorf("title viewport = %vx%v, want 800x600", w, h)
	}

	m.Update(idle)
	if _, ok := m.Scene().(TitleScene); !ok {
		t.Fatalf("title should hold without input, got %s", m.Scene().Name())
	}

	m.Update(confirm)
	g := gameState(t, m)

	m.OnWindowCreated(1024, 768)
	if gameState(t, m) != g {
		t.Error("a second OnWindowCreated must not replace the game scene")
	}
}

func TestTitleIgnoresHeldConfirm(t *testing.T) {
	m := NewSceneManager()
	m.OnWindowCreated(800, 600)
	m.Update(input.InputStates{}.With(input.Confirm, 2))
	if _, ok := m.Scene().(TitleScene); !ok {
		t.Fatalf("a held confirm must not start the game, got %s", m.Scene().Name())
	}
}

func TestTitleRequests(t *testing.T) {
	m := NewSceneManager()
	m.OnWindowCreated(800, 600)

	first := m.Update(idle)
	if len(first) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(first))
	}
	update, ok := first[0].(renderer.UpdateUiInstances)
	if !ok || len(update.Instances) != 2 || update.Instances[0] == nil || update.Instances[1] == nil {
		t.Fatalf("first frame should upload both title messages, got %+v", first[0])
	}
	draw, ok := first[1].(renderer.DrawUi)
	if !ok || draw.ClearColor == nil || *draw.ClearColor != *renderer.Black() {
		t.Fatalf("title should clear to black, got %+v", first[1])
	}
	if len(draw.Ranges) != 1 || draw.Ranges[0] != (renderer.UiRange{Start: 0, End: 2}) {
		t.Errorf("ranges = %+v", draw.Ranges)
	}

	second := m.Update(idle)
	update = second[0].(renderer.UpdateUiInstances)
	if update.Instances[0] != nil || update.Instances[1] != nil {
		t.Error("unchanged title messages should not be re-uploaded")
	}
}

func TestScoreCountdown(t *testing.T) {
	level := DefaultLevel()
	level.StartScore = 2
	m := startGame(t, WithLevel(level))
	g := gameState(t, m)

	for range 3 {
		m.Update(idle)
	}

	if g.Score() != 0 {
		t.Errorf("score = %d, want 0", g.Score())
	}
	end, ok := g.Phase().(EndPhase)
	if !ok {
		t.Fatalf("expected end phase, got %T", g.Phase())
	}
	if end.Won {
		t.Error("running out of score is a loss")
	}
	if x, _ := end.Message.Position(); x != 0 {
		t.Errorf("message x = %v, want 0", x)
	}
}

func TestShootingLastTargetWins(t *testing.T) {
	m := startGame(t, WithLevel(oneTargetLevel(100)))
	g := gameState(t, m)

	m.Update(shoot)

	if len(g.Targets()) != 0 {
		t.Fatalf("target should be removed, %d left", len(g.Targets()))
	}
	end, ok := g.Phase().(EndPhase)
	if !ok || !end.Won {
		t.Fatalf("expected a won end phase, got %+v", g.Phase())
	}
	if g.Score() != 99 {
		t.Errorf("score = %d, want 99", g.Score())
	}

	_, my := end.Message.Position()
	_, iy := end.Indication.Position()
	want := my - end.Message.Height()/2 - end.Indication.Height()/2
	if iy != want {
		t.Errorf("indication y = %v, want %v", iy, want)
	}
}

func TestHeldShootFiresOnce(t *testing.T) {
	level := oneTargetLevel(100)
	level.Targets = append(level.Targets, TargetSpec{Position: mgl32.Vec3{0, 1.5, -25}})
	m := startGame(t, WithLevel(level))
	g := gameState(t, m)

	m.Update(input.InputStates{}.With(input.Shoot, 2))
	if len(g.Targets()) != 2 {
		t.Fatalf("a held trigger must not shoot, %d targets left", len(g.Targets()))
	}

	// Both targets sit on the same line of fire, so one shot removes both.
	m.Update(shoot)
	if len(g.Targets()) != 0 {
		t.Errorf("expected every target on the line of fire removed, %d left", len(g.Targets()))
	}
}

func TestEndPhaseRestartsAtTitle(t *testing.T) {
	level := DefaultLevel()
	level.StartScore = 1
	m := startGame(t, WithLevel(level))
	g := gameState(t, m)

	m.Update(idle)
	if _, ok := g.Phase().(EndPhase); !ok {
		t.Fatalf("expected end phase, got %T", g.Phase())
	}

	m.Update(shoot)
	if _, ok := m.Scene().(GameScene); !ok {
		t.Fatal("only confirm restarts")
	}

	m.Update(confirm)
	if _, ok := m.Scene().(TitleScene); !ok {
		t.Fatalf("expected title scene, got %s", m.Scene().Name())
	}

	m.Update(confirm)
	fresh := gameState(t, m)
	if fresh == g {
		t.Fatal("restart should build a new round")
	}
	if _, ok := fresh.Phase().(PlayingPhase); !ok || fresh.Score() != 1 {
		t.Errorf("new round = %T with score %d, want playing with score 1", fresh.Phase(), fresh.Score())
	}
}

func TestGameRequestOrder(t *testing.T) {
	m := startGame(t)
	g := gameState(t, m)

	reqs := m.Update(idle)
	if len(reqs) != 6 {
		t.Fatalf("expected 6 requests, got %d", len(reqs))
	}
	if _, ok := reqs[0].(renderer.UpdateCamera); !ok {
		t.Errorf("request 0 = %T, want UpdateCamera", reqs[0])
	}
	if _, ok := reqs[1].(renderer.DrawSkybox); !ok {
		t.Errorf("request 1 = %T, want DrawSkybox", reqs[1])
	}

	world := reqs[2].(renderer.UpdateWorldInstances).Instances
	walls := len(DefaultLevel().Walls)
	if len(world) != walls+1+len(g.Targets()) {
		t.Fatalf("world instances = %d", len(world))
	}
	for i, ic := range world {
		if ic == nil {
			t.Errorf("first frame slot %d should be uploaded", i)
		}
	}

	draw := reqs[3].(renderer.DrawWorld)
	static := uint32(walls + 1)
	wantRanges := []renderer.WorldRange{
		{Model: model.ModelCube, Start: 0, End: static},
		{Model: model.ModelSphere, Start: static, End: uint32(len(world))},
	}
	for i, r := range wantRanges {
		if draw.Ranges[i] != r {
			t.Errorf("range %d = %+v, want %+v", i, draw.Ranges[i], r)
		}
	}

	ui := reqs[4].(renderer.UpdateUiInstances).Instances
	if len(ui) != 1+4 {
		t.Errorf("ui instances = %d, want reticle + 4 digits", len(ui))
	}
	drawUi := reqs[5].(renderer.DrawUi)
	if drawUi.ClearColor != nil {
		t.Error("game UI is composited over the world")
	}
	if drawUi.Ranges[0] != (renderer.UiRange{Start: 0, End: uint32(len(ui))}) {
		t.Errorf("ui range = %+v", drawUi.Ranges[0])
	}

	world = m.Update(idle)[2].(renderer.UpdateWorldInstances).Instances
	for i := 0; i < walls+1; i++ {
		if world[i] != nil {
			t.Errorf("static slot %d re-uploaded", i)
		}
	}
	for i := walls + 1; i < len(world); i++ {
		if world[i] == nil {
			t.Errorf("target slot %d should be uploaded every frame", i)
		}
	}
}

func TestMovementAndCollision(t *testing.T) {
	m := startGame(t)
	g := gameState(t, m)

	m.Update(input.InputStates{}.With(input.MoveForward, 1))
	if z := position(g)[2]; z != -34.75 {
		t.Errorf("z after one step = %v, want -34.75", z)
	}

	back := input.InputStates{}.With(input.MoveBack, 1)
	for range 40 {
		m.Update(back)
	}
	z := position(g)[2]
	face := float32(-40 + 0.5 + game_object.WallMargin)
	if z < face-1e-4 || z > face+0.26 {
		t.Errorf("z = %v, want resting against the back wall at %v", z, face)
	}
}

func TestDiagonalMovementIsNormalized(t *testing.T) {
	m := startGame(t)
	g := gameState(t, m)
	start := position(g)

	m.Update(input.InputStates{}.With(input.MoveForward, 1).With(input.MoveRight, 1))
	moved := position(g).Sub(start).Len()
	if d := moved - DefaultLevel().MoveSpeed; d > 1e-5 || d < -1e-5 {
		t.Errorf("moved %v, want %v", moved, DefaultLevel().MoveSpeed)
	}
}

func TestMouseLookRotatesCamera(t *testing.T) {
	m := startGame(t)
	g := gameState(t, m)

	m.Update(input.InputStates{}.WithCursor(800, 0))
	cam := g.Camera()
	yaw, pitch := cam.YawPitch()
	if d := yaw - mgl32.DegToRad(90); d > 1e-5 || d < -1e-5 {
		t.Errorf("yaw = %v, want 90 degrees", yaw)
	}
	if pitch != 0 {
		t.Errorf("pitch = %v, want 0", pitch)
	}
}

func TestResizeForwardsToGame(t *testing.T) {
	m := startGame(t)
	g := gameState(t, m)

	m.Resize(1280, 720)
	cam := g.Camera()
	if w, h := cam.Viewport(); w != 1280 || h != 720 {
		t.Errorf("viewport = %vx%v, want 1280x720", w, h)
	}
}
