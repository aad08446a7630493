package model

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Mesh is an indexed triangle list in model space.
type Mesh struct {
	Vertices []GPUVertex
	Indices  []uint32
}

// VertexData serializes the vertices for a vertex buffer.
func (m *Mesh) VertexData() []byte {
	buf := make([]byte, 0, len(m.Vertices)*32)
	for i := range m.Vertices {
		buf = append(buf, m.Vertices[i].Marshal()...)
	}
	return buf
}

// IndexData serializes the indices as little-endian uint32 values.
func (m *Mesh) IndexData() []byte {
	buf := make([]byte, len(m.Indices)*4)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

// IndexCount returns the number of indices in the mesh.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// BuiltinMeshes returns the mesh for every ModelID.
//
// Returns:
//   - map[ModelID]*Mesh: cube, sphere and rectangle meshes
func BuiltinMeshes() map[ModelID]*Mesh {
	sphere, err := NewSphere(1, 16, 24)
	if err != nil {
		panic(err)
	}
	return map[ModelID]*Mesh{
		ModelCube:      NewCube(),
		ModelSphere:    sphere,
		ModelRectangle: NewRectangle(1, 1),
	}
}

// NewCube builds a unit cube centered on the origin with flat per-face normals.
//
// Returns:
//   - *Mesh: 24 vertices and 36 indices
func NewCube() *Mesh {
	faces := []struct {
		normal, u, v [3]float32
	}{
		{normal: [3]float32{1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
		{normal: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
		{normal: [3]float32{0, 0, 1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{0, 0, -1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
	}
	corners := [4][2]float32{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}

	m := &Mesh{}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for _, c := range corners {
			var p [3]float32
			for k := range 3 {
				p[k] = f.normal[k]*0.5 + f.u[k]*c[0] + f.v[k]*c[1]
			}
			m.Vertices = append(m.Vertices, GPUVertex{
				Position: p,
				Normal:   f.normal,
				TexCoord: [2]float32{c[0] + 0.5, 0.5 - c[1]},
			})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// NewSphere builds a UV sphere of radius r.
//
// Parameters:
//   - r: the radius
//   - latitudeCount: number of bands from pole to pole; must be even
//   - longitudeCount: number of segments around the Y axis; at least 3
//
// Returns:
//   - *Mesh: (latitudeCount+1)*(longitudeCount+1) vertices
//   - error: if the division counts are invalid
func NewSphere(r float32, latitudeCount, longitudeCount int) (*Mesh, error) {
	if latitudeCount < 2 || latitudeCount%2 != 0 {
		return nil, fmt.Errorf("sphere latitude count must be an even number >= 2, got %d", latitudeCount)
	}
	if longitudeCount < 3 {
		return nil, fmt.Errorf("sphere longitude count must be >= 3, got %d", longitudeCount)
	}

	m := &Mesh{}
	for lat := 0; lat <= latitudeCount; lat++ {
		theta := math.Pi * float64(lat) / float64(latitudeCount)
		y := math.Cos(theta)
		ring := math.Sin(theta)
		for lon := 0; lon <= longitudeCount; lon++ {
			phi := 2 * math.Pi * float64(lon) / float64(longitudeCount)
			n := [3]float32{float32(ring * math.Sin(phi)), float32(y), float32(ring * math.Cos(phi))}
			m.Vertices = append(m.Vertices, GPUVertex{
				Position: [3]float32{n[0] * r, n[1] * r, n[2] * r},
				Normal:   n,
				TexCoord: [2]float32{float32(lon) / float32(longitudeCount), float32(lat) / float32(latitudeCount)},
			})
		}
	}

	stride := uint32(longitudeCount + 1)
	for lat := range uint32(latitudeCount) {
		for lon := range uint32(longitudeCount) {
			a := lat*stride + lon
			b := a + stride
			m.Indices = append(m.Indices, a, b, b+1, a, b+1, a+1)
		}
	}
	return m, nil
}

// NewRectangle builds a rectangle on the XY plane centered on the origin, facing -Z.
//
// Parameters:
//   - width: size along X
//   - height: size along Y
//
// Returns:
//   - *Mesh: 4 vertices and 6 indices
func NewRectangle(width, height float32) *Mesh {
	hw, hh := width/2, height/2
	n := [3]float32{0, 0, -1}
	return &Mesh{
		Vertices: []GPUVertex{
			{Position: [3]float32{-hw, -hh, 0}, Normal: n, TexCoord: [2]float32{0, 1}},
			{Position: [3]float32{-hw, hh, 0}, Normal: n, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{hw, hh, 0}, Normal: n, TexCoord: [2]float32{1, 0}},
			{Position: [3]float32{hw, -hh, 0}, Normal: n, TexCoord: [2]float32{1, 1}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}
