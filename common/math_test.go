package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestIsLeft(t *testing.T) {
	tests := []struct {
		name     string
		edge     mgl32.Vec2
		rel      mgl32.Vec2
		expected bool
	}{
		{name: "left of +x edge", edge: mgl32.Vec2{1, 0}, rel: mgl32.Vec2{0, 1}, expected: true},
		{name: "right of +x edge", edge: mgl32.Vec2{1, 0}, rel: mgl32.Vec2{0, -1}, expected: false},
		{name: "collinear is not left", edge: mgl32.Vec2{1, 0}, rel: mgl32.Vec2{3, 0}, expected: false},
		{name: "left of diagonal edge", edge: mgl32.Vec2{1, 1}, rel: mgl32.Vec2{0, 1}, expected: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsLeft(tc.edge, tc.rel); got != tc.expected {
				t.Errorf("IsLeft(%v, %v) = %v, expected %v", tc.edge, tc.rel, got, tc.expected)
			}
		})
	}
}

func TestSegmentIntersection(t *testing.T) {
	tests := []struct {
		name               string
		p11, p12, p21, p22 mgl32.Vec2
		ok                 bool
		point              mgl32.Vec2
	}{
		{
			name: "crossing diagonals",
			p11:  mgl32.Vec2{0, 0}, p12: mgl32.Vec2{2, 2},
			p21: mgl32.Vec2{0, 2}, p22: mgl32.Vec2{2, 0},
			ok: true, point: mgl32.Vec2{1, 1},
		},
		{
			name: "horizontal and vertical",
			p11:  mgl32.Vec2{0, 0}, p12: mgl32.Vec2{4, 0},
			p21: mgl32.Vec2{1, -1}, p22: mgl32.Vec2{1, 3},
			ok: true, point: mgl32.Vec2{1, 0},
		},
		{
			name: "touching at an endpoint",
			p11:  mgl32.Vec2{0, 0}, p12: mgl32.Vec2{2, 0},
			p21: mgl32.Vec2{2, -1}, p22: mgl32.Vec2{2, 1},
			ok: true, point: mgl32.Vec2{2, 0},
		},
		{
			name: "parallel",
			p11:  mgl32.Vec2{0, 0}, p12: mgl32.Vec2{1, 0},
			p21: mgl32.Vec2{0, 1}, p22: mgl32.Vec2{1, 1},
		},
		{
			name: "lines meet beyond the first segment",
			p11:  mgl32.Vec2{0, 0}, p12: mgl32.Vec2{1, 0},
			p21: mgl32.Vec2{2, -1}, p22: mgl32.Vec2{2, 1},
		},
		{
			name: "lines meet beyond the second segment",
			p11:  mgl32.Vec2{0, 0}, p12: mgl32.Vec2{4, 0},
			p21: mgl32.Vec2{1, 1}, p22: mgl32.Vec2{1, 3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := SegmentIntersection(tc.p11, tc.p12, tc.p21, tc.p22)
			if ok != tc.ok {
				t.Fatalf("SegmentIntersection() ok = %v, expected %v", ok, tc.ok)
			}
			if ok && (!approx(p[0], tc.point[0]) || !approx(p[1], tc.point[1])) {
				t.Errorf("SegmentIntersection() = %v, expected %v", p, tc.point)
			}

			q, swappedOK := SegmentIntersection(tc.p21, tc.p22, tc.p11, tc.p12)
			if swappedOK != ok {
				t.Fatalf("swapped ok = %v, expected %v", swappedOK, ok)
			}
			if ok && (!approx(p[0], q[0]) || !approx(p[1], q[1])) {
				t.Errorf("swapped intersection = %v, expected %v", q, p)
			}
		})
	}
}

func TestMustNormalizePanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustNormalize to panic on a zero vector")
		}
	}()
	MustNormalize(mgl32.Vec3{})
}

func TestMustNormalize(t *testing.T) {
	v := MustNormalize(mgl32.Vec3{3, 0, 4})
	if !approx(v.Len(), 1) || !approx(v[0], 0.6) || !approx(v[2], 0.8) {
		t.Errorf("MustNormalize() = %v", v)
	}
}

func TestRejection(t *testing.T) {
	r := Rejection(mgl32.Vec3{1, 2, 0}, mgl32.Vec3{1, 0, 0})
	if !approx(r[0], 0) || !approx(r[1], 2) || !approx(r[2], 0) {
		t.Errorf("Rejection() = %v, expected (0, 2, 0)", r)
	}
}

func TestPerspectiveLHDepthRange(t *testing.T) {
	const near, far = 0.1, 1000
	m := PerspectiveLH(mgl32.DegToRad(45), 4.0/3.0, near, far)

	n := m.Mul4x1(mgl32.Vec4{0, 0, near, 1})
	if !approx(n[2]/n[3], 0) {
		t.Errorf("near plane depth = %v, expected 0", n[2]/n[3])
	}
	f := m.Mul4x1(mgl32.Vec4{0, 0, far, 1})
	if !approx(f[2]/f[3], 1) {
		t.Errorf("far plane depth = %v, expected 1", f[2]/f[3])
	}
}

func TestLookToLHMapsEyeToOrigin(t *testing.T) {
	eye := mgl32.Vec3{1, 2, 3}
	m := LookToLH(eye, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})

	o := m.Mul4x1(eye.Vec4(1))
	if !approx(o[0], 0) || !approx(o[1], 0) || !approx(o[2], 0) {
		t.Errorf("eye in view space = %v, expected origin", o)
	}
	ahead := m.Mul4x1(mgl32.Vec4{1, 2, 8, 1})
	if !approx(ahead[2], 5) {
		t.Errorf("point ahead has view z %v, expected 5", ahead[2])
	}
}
