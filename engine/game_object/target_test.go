package game_object

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTargetCheckShot(t *testing.T) {
	target := NewTarget(mgl32.Vec3{0, 2, 0})

	tests := []struct {
		name      string
		origin    mgl32.Vec3
		direction mgl32.Vec3
		expected  bool
	}{
		{name: "through the center", origin: mgl32.Vec3{10, 2, 0}, direction: mgl32.Vec3{-1, 0, 0}, expected: true},
		{name: "offset by one unit", origin: mgl32.Vec3{10, 3, 0}, direction: mgl32.Vec3{-1, 0, 0}, expected: false},
		{name: "grazing inside the radius", origin: mgl32.Vec3{10, 2.15, 0}, direction: mgl32.Vec3{-1, 0, 0}, expected: true},
		{name: "pointing away still hits the line", origin: mgl32.Vec3{10, 2, 0}, direction: mgl32.Vec3{1, 0, 0}, expected: true},
		{name: "diagonal miss", origin: mgl32.Vec3{0, 0, -5}, direction: mgl32.Vec3{0, 0, 1}, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := target.CheckShot(tc.origin, tc.direction); got != tc.expected {
				t.Errorf("CheckShot() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRemoveShot(t *testing.T) {
	a := NewTarget(mgl32.Vec3{0, 2, 0})
	b := NewTarget(mgl32.Vec3{0, 5, 0})
	c := NewTarget(mgl32.Vec3{0, 2, 10})

	left, removed := RemoveShot([]*Target{a, b, c}, mgl32.Vec3{0, 2, -20}, mgl32.Vec3{0, 0, 1})
	if removed != 2 {
		t.Fatalf("removed = %d, expected 2", removed)
	}
	if len(left) != 1 || left[0] != b {
		t.Errorf("survivors = %v, expected only the raised target", left)
	}
}

func TestMotionAt(t *testing.T) {
	base := mgl32.Vec3{1, 2, 3}
	quarter := float32(math.Pi / 2)

	tests := []struct {
		name     string
		motion   Motion
		frame    uint32
		expected mgl32.Vec3
	}{
		{name: "stationary", motion: Stationary(), frame: 99, expected: base},
		{name: "sine bob at rest", motion: SineBob(mgl32.Vec3{0, 2, 0}, 1.5, quarter, 0), frame: 0, expected: base},
		{name: "sine bob peak", motion: SineBob(mgl32.Vec3{0, 2, 0}, 1.5, quarter, 0), frame: 1, expected: mgl32.Vec3{1, 3.5, 3}},
		{name: "sine bob trough", motion: SineBob(mgl32.Vec3{0, 2, 0}, 1.5, quarter, 0), frame: 3, expected: mgl32.Vec3{1, 0.5, 3}},
		{name: "orbit start", motion: Orbit(2, quarter, 0), frame: 0, expected: mgl32.Vec3{1, 2, 5}},
		{name: "orbit quarter", motion: Orbit(2, quarter, 0), frame: 1, expected: mgl32.Vec3{3, 2, 3}},
		{name: "orbit with phase", motion: Orbit(2, quarter, quarter), frame: 1, expected: mgl32.Vec3{1, 2, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.motion.At(base, tc.frame)
			if !approxVec3(got, tc.expected) {
				t.Errorf("At(%d) = %v, expected %v", tc.frame, got, tc.expected)
			}
		})
	}
}

func TestTargetUpdateIsDeterministic(t *testing.T) {
	m := SineBob(mgl32.Vec3{1, 0, 0}, 2, 0.1, 0.3)
	a := NewTarget(mgl32.Vec3{15, 2.5, -15}, WithMotion(m))
	b := NewTarget(mgl32.Vec3{15, 2.5, -15}, WithMotion(m))

	for i := 0; i < 50; i++ {
		a.Update()
	}
	for i := 0; i < 50; i++ {
		b.Update()
	}
	if a.Position() != b.Position() || a.Frame() != 50 {
		t.Errorf("targets diverged: %v vs %v after %d frames", a.Position(), b.Position(), a.Frame())
	}
	if want := m.At(mgl32.Vec3{15, 2.5, -15}, 49); a.Position() != want {
		t.Errorf("Position() = %v, expected the motion at frame 49 %v", a.Position(), want)
	}
}

func TestTargetInstanceAlwaysEmitted(t *testing.T) {
	target := NewTarget(mgl32.Vec3{0, 2, 0}, WithTargetScale(0.5))
	for i := 0; i < 3; i++ {
		ic := target.Instance()
		if ic == nil {
			t.Fatalf("Instance() call %d returned nil", i)
		}
		if ic.Scale != (mgl32.Vec3{0.5, 0.5, 0.5}) || ic.Position != (mgl32.Vec3{0, 2, 0}) {
			t.Errorf("Instance() = %+v", ic)
		}
	}
}

func TestWithHitRadius(t *testing.T) {
	target := NewTarget(mgl32.Vec3{}, WithHitRadius(1.5))
	if !target.CheckShot(mgl32.Vec3{-10, 1, 0}, mgl32.Vec3{1, 0, 0}) {
		t.Error("shot one unit away missed a target with radius 1.5")
	}
}
