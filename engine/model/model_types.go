package model

import "github.com/go-gl/mathgl/mgl32"

// ModelID identifies one of the built-in meshes an instance range is drawn with.
type ModelID int

const (
	// ModelCube is a unit cube centered on the origin.
	ModelCube ModelID = iota
	// ModelSphere is a unit-radius UV sphere centered on the origin.
	ModelSphere
	// ModelRectangle is a unit square on the XY plane, used for UI quads.
	ModelRectangle
)

// String returns a readable name for the model.
func (id ModelID) String() string {
	switch id {
	case ModelCube:
		return "cube"
	case ModelSphere:
		return "sphere"
	case ModelRectangle:
		return "rectangle"
	default:
		return "unknown"
	}
}

// FullUV is the texture rectangle covering the whole texture.
var FullUV = mgl32.Vec4{0, 0, 1, 1}

// InstanceController is the transform and texture sub-region of one renderable.
// It is a value type and is copied freely between entities and render requests.
type InstanceController struct {
	Scale    mgl32.Vec3
	Rotation mgl32.Quat
	Position mgl32.Vec3
	// UV holds the texture rectangle as offset x, offset y, width, height.
	UV mgl32.Vec4
}

// NewInstanceController creates an instance with unit scale, identity rotation, origin
// position and the full texture, then applies the provided options.
//
// Parameters:
//   - options: variadic list of InstanceOption functions
//
// Returns:
//   - InstanceController: the configured instance
func NewInstanceController(options ...InstanceOption) InstanceController {
	ic := InstanceController{
		Scale:    mgl32.Vec3{1, 1, 1},
		Rotation: mgl32.QuatIdent(),
		UV:       FullUV,
	}
	for _, opt := range options {
		opt(&ic)
	}
	return ic
}

// ModelMatrix composes scale, then rotation, then translation.
//
// Returns:
//   - mgl32.Mat4: the model-to-world matrix
func (ic InstanceController) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(ic.Position[0], ic.Position[1], ic.Position[2]).
		Mul4(ic.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(ic.Scale[0], ic.Scale[1], ic.Scale[2]))
}

// GPU converts the instance into its GPU representation.
//
// Returns:
//   - GPUInstance: model matrix, normal matrix and texture rectangle
func (ic InstanceController) GPU() GPUInstance {
	m := ic.ModelMatrix()
	return GPUInstance{
		Model:  m,
		Normal: m.Inv().Transpose(),
		UV:     ic.UV,
	}
}
