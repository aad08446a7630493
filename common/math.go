package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the machine epsilon for float32, used as the parallel-segment threshold.
const Epsilon = float32(1.1920929e-07)

// Cross2 returns the z component of the 3D cross product of two vectors on the XY plane.
//
// Parameters:
//   - a: the first vector
//   - b: the second vector
//
// Returns:
//   - float32: a.x*b.y - a.y*b.x
func Cross2(a, b mgl32.Vec2) float32 {
	return a[0]*b[1] - a[1]*b[0]
}

// IsLeft reports whether rel lies strictly on the left side of edge.
// For a polygon whose edges wind consistently, a point is inside when it is left of every edge.
//
// Parameters:
//   - edge: the directed edge vector
//   - rel: the point relative to the edge's start vertex
//
// Returns:
//   - bool: true if Cross2(edge, rel) is positive
func IsLeft(edge, rel mgl32.Vec2) bool {
	return Cross2(edge, rel) > 0
}

// SegmentIntersection computes the intersection point of segments p11->p12 and p21->p22.
//
// Parameters:
//   - p11: start of the first segment
//   - p12: end of the first segment
//   - p21: start of the second segment
//   - p22: end of the second segment
//
// Returns:
//   - mgl32.Vec2: the intersection point
//   - bool: false if the segments are parallel or do not meet within both segments
func SegmentIntersection(p11, p12, p21, p22 mgl32.Vec2) (mgl32.Vec2, bool) {
	v1 := p12.Sub(p11)
	v2 := p22.Sub(p21)
	c := Cross2(v1, v2)
	if float32(math.Abs(float64(c))) <= Epsilon {
		return mgl32.Vec2{}, false
	}

	s := Cross2(p21.Sub(p11), v2) / c
	t := Cross2(v1, p11.Sub(p21)) / c
	if s < 0 || s > 1 || t < 0 || t > 1 {
		return mgl32.Vec2{}, false
	}
	return p11.Add(v1.Mul(s)), true
}

// MustNormalize returns v scaled to unit length.
// It panics on a zero-length vector instead of returning NaN components.
func MustNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		panic("common: cannot normalize a zero-length vector")
	}
	return v.Mul(1 / l)
}

// MustNormalize2 is the two dimensional form of MustNormalize.
func MustNormalize2(v mgl32.Vec2) mgl32.Vec2 {
	l := v.Len()
	if l == 0 {
		panic("common: cannot normalize a zero-length vector")
	}
	return v.Mul(1 / l)
}

// XZ drops the Y component of v.
func XZ(v mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{v[0], v[2]}
}

// ProjectOnto returns the projection of v onto the direction of onto.
//
// Parameters:
//   - v: the vector to project
//   - onto: the direction to project onto; must be non-zero
//
// Returns:
//   - mgl32.Vec3: the component of v parallel to onto
func ProjectOnto(v, onto mgl32.Vec3) mgl32.Vec3 {
	return onto.Mul(v.Dot(onto) / onto.Dot(onto))
}

// Rejection returns the component of v perpendicular to the unit vector dir.
func Rejection(v, dir mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(dir.Mul(v.Dot(dir)))
}

// PerspectiveLH builds a left-handed perspective projection with a [0, 1] depth range.
// The matrix is column-major.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport width divided by height
//   - near: near clip distance
//   - far: far clip distance
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func PerspectiveLH(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	r := far / (far - near)
	return mgl32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, r, 1,
		0, 0, -r * near, 0,
	}
}

// OrthographicLH builds a left-handed orthographic projection with a [0, 1] depth range.
func OrthographicLH(left, right, bottom, top, near, far float32) mgl32.Mat4 {
	rml := right - left
	tmb := top - bottom
	r := 1 / (far - near)
	return mgl32.Mat4{
		2 / rml, 0, 0, 0,
		0, 2 / tmb, 0, 0,
		0, 0, r, 0,
		-(right + left) / rml, -(top + bottom) / tmb, -r * near, 1,
	}
}

// LookToLH builds a left-handed view matrix for an eye looking along dir.
//
// Parameters:
//   - eye: the eye position
//   - dir: the view direction; must be non-zero
//   - up: the up direction; must not be parallel to dir
//
// Returns:
//   - mgl32.Mat4: the view matrix
func LookToLH(eye, dir, up mgl32.Vec3) mgl32.Mat4 {
	f := MustNormalize(dir)
	s := MustNormalize(up.Cross(f))
	u := f.Cross(s)
	return mgl32.Mat4{
		s[0], u[0], f[0], 0,
		s[1], u[1], f[1], 0,
		s[2], u[2], f[2], 0,
		-s.Dot(eye), -u.Dot(eye), -f.Dot(eye), 1,
	}
}
