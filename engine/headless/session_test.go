package headless

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// targetAhead places one target on the camera's line of sight.
func targetAhead(score uint32) scene.Level {
	level := scene.DefaultLevel()
	level.StartScore = score
	level.Targets = []scene.TargetSpec{{Position: mgl32.Vec3{0, 1.5, -30}, Motion: game_object.Stationary()}}
	return level
}

func winScript() *Script {
	return NewScript().Tap(0, common.KeyE).Tap(2, common.MouseLeft)
}

func newSession(t *testing.T, options ...SessionOption) *Session {
	t.Helper()
	s, err := NewSession(options...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestScript(t *testing.T) {
	s := NewScript().Tap(3, common.KeyE).Hold(0, 5, common.KeyW).Look(1, 10, 0)

	if s.Len() != 6 {
		t.Errorf("Len = %d, want 6", s.Len())
	}
	if got, want := s.Frames(), []int{0, 1, 3, 4, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("Frames = %v, want %v", got, want)
	}
	if e := s.at(4); len(e) != 1 || e[0].kind != eventRelease || e[0].code != common.KeyE {
		t.Errorf("frame 4 events = %+v", e)
	}
	if NewScript().Len() != 0 {
		t.Error("empty script should have no frames")
	}
}

func TestSessionWins(t *testing.T) {
	s := newSession(t, WithLevel(targetAhead(100)), WithScript(winScript()), WithFrames(30), WithStopOnEnd(true))

	r, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := Result{ID: 0, Frames: 3, Scene: "game", Outcome: OutcomeWon, Score: 98, TargetsLeft: 0, Presented: 3}
	r.Uploads = 0
	if r != want {
		t.Errorf("result = %+v, want %+v", r, want)
	}
}

func TestSessionLoses(t *testing.T) {
	s := newSession(t, WithLevel(targetAhead(3)), WithScript(NewScript().Tap(0, common.KeyE)), WithFrames(10))

	r, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Outcome != OutcomeLost || r.Score != 0 || r.TargetsLeft != 1 {
		t.Errorf("result = %+v, want a lost round with score 0", r)
	}
	if r.Frames != 10 || r.Presented != 10 {
		t.Errorf("frames/presented = %d/%d, want 10/10", r.Frames, r.Presented)
	}
}

func TestSessionRestartClearsOutcome(t *testing.T) {
	script := NewScript().Tap(0, common.KeyE).Tap(5, common.KeyE).Tap(7, common.KeyE)
	s := newSession(t, WithLevel(targetAhead(2)), WithScript(script))

	for range 6 {
		if err := s.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if r := s.Result(); r.Scene != "title" || r.Outcome != OutcomeLost {
		t.Fatalf("after restart: %+v, want title with the lost outcome kept", r)
	}

	r, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Scene != "game" || r.Outcome != OutcomeNone || r.Score != 1 {
		t.Errorf("new round = %+v, want a fresh game", r)
	}
}

func TestSessionCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newSession(t, WithFrames(100))
	r, err := s.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
	if r.Frames != 0 {
		t.Errorf("frames = %d, want 0", r.Frames)
	}
}

func TestRunSessions(t *testing.T) {
	var sessions []*Session
	for i := range 8 {
		opts := []SessionOption{WithID(i), WithFrames(12), WithScript(winScript()), WithLevel(targetAhead(100))}
		if i%2 == 1 {
			opts[3] = WithLevel(targetAhead(4))
			opts[2] = WithScript(NewScript().Tap(0, common.KeyE))
		}
		sessions = append(sessions, newSession(t, opts...))
	}

	results, err := RunSessions(context.Background(), sessions, 3, nil)
	if err != nil {
		t.Fatalf("RunSessions: %v", err)
	}
	for i, r := range results {
		if r.ID != i {
			t.Errorf("result %d has ID %d", i, r.ID)
		}
		if r.Frames != 12 {
			t.Errorf("session %d played %d frames, want 12", i, r.Frames)
		}
	}

	sum := Summarize(results)
	want := Summary{Sessions: 8, Won: 4, Lost: 4, BestScore: 98}
	if sum != want {
		t.Errorf("summary = %+v, want %+v", sum, want)
	}
}

func TestRunSessionsEmpty(t *testing.T) {
	results, err := RunSessions(context.Background(), nil, 4, nil)
	if results != nil || err != nil {
		t.Errorf("RunSessions(nil) = %v, %v", results, err)
	}
}
