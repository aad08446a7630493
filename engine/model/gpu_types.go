package model

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// GPUVertexSource is the WGSL declaration matching GPUVertex.
const GPUVertexSource = `struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) normal: vec3<f32>,
    @location(2) tex_coord: vec2<f32>,
}`

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Size: 32 bytes.
type GPUVertex struct {
	Position [3]float32 // offset  0: position in model space
	Normal   [3]float32 // offset 12: unit normal
	TexCoord [2]float32 // offset 24: texture coordinate
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 32)
	putFloats(buf[0:], g.Position[:])
	putFloats(buf[12:], g.Normal[:])
	putFloats(buf[24:], g.TexCoord[:])
	return buf
}

// GPUInstanceSource is the WGSL declaration matching GPUInstance.
const GPUInstanceSource = `struct Instance {
    model: mat4x4<f32>,
    normal: mat4x4<f32>,
    uv: vec4<f32>,
}`

// GPUInstanceSize is the stride of one GPUInstance in a storage buffer.
const GPUInstanceSize = 144

// GPUInstance is the GPU-aligned representation of one instance in the instance storage buffer.
// Size: 144 bytes.
type GPUInstance struct {
	Model  mgl32.Mat4 // offset   0: model matrix
	Normal mgl32.Mat4 // offset  64: inverse transpose of the model matrix
	UV     mgl32.Vec4 // offset 128: texture rectangle
}

// Size returns the size of the GPUInstance struct in bytes.
func (g *GPUInstance) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUInstance struct into a byte buffer suitable for GPU upload.
func (g *GPUInstance) Marshal() []byte {
	buf := make([]byte, GPUInstanceSize)
	putFloats(buf[0:], g.Model[:])
	putFloats(buf[64:], g.Normal[:])
	putFloats(buf[128:], g.UV[:])
	return buf
}

// MarshalInstances serializes a contiguous block of instances.
//
// Parameters:
//   - instances: the instances to serialize, in slot order
//
// Returns:
//   - []byte: len(instances)*GPUInstanceSize bytes
func MarshalInstances(instances []GPUInstance) []byte {
	buf := make([]byte, 0, len(instances)*GPUInstanceSize)
	for i := range instances {
		buf = append(buf, instances[i].Marshal()...)
	}
	return buf
}

func putFloats(buf []byte, values []float32) {
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
}
