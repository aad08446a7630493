package game_object

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// WallMargin is added to each half extent of a wall's collision outline so the
// camera stops short of the visible surface.
const WallMargin = 1

// Wall is a static box that blocks movement on the XZ plane.
// Its collision outline is a closed loop of four corners wound so that
// the interior is on the left of every edge.
type Wall struct {
	instance *common.Cache[model.InstanceController]
	vertices [5]mgl32.Vec2
	edges    [4]mgl32.Vec2
}

// NewWall creates a wall and precomputes its collision outline.
//
// Parameters:
//   - position: center of the wall
//   - rotationY: rotation about the Y axis in radians
//   - scale: full size of the wall along its local axes
//
// Returns:
//   - *Wall: the new wall
func NewWall(position mgl32.Vec3, rotationY float32, scale mgl32.Vec3) *Wall {
	rotation := mgl32.QuatRotate(rotationY, mgl32.Vec3{0, 1, 0})
	hw := scale[0]/2 + WallMargin
	hd := scale[2]/2 + WallMargin

	corner := func(x, z float32) mgl32.Vec2 {
		return common.XZ(rotation.Rotate(mgl32.Vec3{x, 0, z}).Add(position))
	}
	a := corner(-hw, -hd)
	b := corner(hw, -hd)
	c := corner(hw, hd)
	d := corner(-hw, hd)

	return &Wall{
		instance: common.NewCache(model.NewInstanceController(
			model.WithScale(scale[0], scale[1], scale[2]),
			model.WithRotation(rotation),
			model.WithPosition(position[0], position[1], position[2]),
		)),
		vertices: [5]mgl32.Vec2{a, b, c, d, a},
		edges:    [4]mgl32.Vec2{b.Sub(a), c.Sub(b), d.Sub(c), a.Sub(d)},
	}
}

// Instance returns the wall's transform once, then nil.
//
// Returns:
//   - *model.InstanceController: the instance to upload, or nil when unchanged
func (w *Wall) Instance() *model.InstanceController {
	return cached(w.instance)
}

// Vertices returns the closed collision outline; the last vertex repeats the first.
func (w *Wall) Vertices() [5]mgl32.Vec2 {
	return w.vertices
}

// Edges returns the four directed outline edges.
func (w *Wall) Edges() [4]mgl32.Vec2 {
	return w.edges
}

// Contains reports whether p lies strictly inside the collision outline.
func (w *Wall) Contains(p mgl32.Vec2) bool {
	for i, e := range w.edges {
		if !common.IsLeft(e, p.Sub(w.vertices[i])) {
			return false
		}
	}
	return true
}

// CheckCollision slides a movement along the wall when it would end inside the outline.
// Only the XZ plane is considered.
//
// If the destination is outside the outline, or the movement segment crosses no edge,
// velocity is returned unchanged. Otherwise the crossing closest to position wins (the
// lowest edge index on ties) and the component of velocity along that edge's normal
// is removed.
//
// Parameters:
//   - position: the current position
//   - velocity: the intended movement this frame
//
// Returns:
//   - mgl32.Vec3: the adjusted movement
func (w *Wall) CheckCollision(position, velocity mgl32.Vec3) mgl32.Vec3 {
	p := common.XZ(position)
	np := common.XZ(position.Add(velocity))
	if !w.Contains(np) {
		return velocity
	}

	hit := -1
	var nearest float32
	for i := range w.edges {
		q, ok := common.SegmentIntersection(w.vertices[i], w.vertices[i+1], p, np)
		if !ok {
			continue
		}
		if d := q.Sub(p).Len(); hit < 0 || d < nearest {
			hit = i
			nearest = d
		}
	}
	if hit < 0 {
		return velocity
	}

	e := w.edges[hit]
	n := common.MustNormalize2(mgl32.Vec2{e[1], -e[0]})
	return velocity.Sub(common.ProjectOnto(velocity, mgl32.Vec3{n[0], 0, n[1]}))
}

// ResolveMovement feeds velocity through every wall in order, each wall seeing the
// movement already adjusted by the walls before it.
//
// Parameters:
//   - walls: the walls in their fixed order
//   - position: the current position
//   - velocity: the intended movement this frame
//
// Returns:
//   - mgl32.Vec3: the adjusted movement
func ResolveMovement(walls []*Wall, position, velocity mgl32.Vec3) mgl32.Vec3 {
	for _, w := range walls {
		velocity = w.CheckCollision(position, velocity)
	}
	return velocity
}
