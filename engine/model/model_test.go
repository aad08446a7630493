package model

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewInstanceControllerDefaults(t *testing.T) {
	ic := NewInstanceController()
	if ic.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Scale = %v, expected unit", ic.Scale)
	}
	if ic.Rotation != mgl32.QuatIdent() {
		t.Errorf("Rotation = %v, expected identity", ic.Rotation)
	}
	if ic.Position != (mgl32.Vec3{}) {
		t.Errorf("Position = %v, expected origin", ic.Position)
	}
	if ic.UV != FullUV {
		t.Errorf("UV = %v, expected full texture", ic.UV)
	}
}

func TestModelMatrixOrder(t *testing.T) {
	ic := NewInstanceController(
		WithScale(2, 1, 1),
		WithRotation(mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0})),
		WithPosition(10, 0, 0),
	)
	// Scale first: (1,0,0) -> (2,0,0); rotate a quarter turn: -> (0,0,-2); translate: -> (10,0,-2).
	p := ic.ModelMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	for i, want := range []float32{10, 0, -2, 1} {
		if math.Abs(float64(p[i]-want)) > 1e-5 {
			t.Fatalf("transformed point = %v, expected (10, 0, -2, 1)", p)
		}
	}
}

func TestGPUInstanceMarshal(t *testing.T) {
	g := NewInstanceController(WithUV(mgl32.Vec4{0.1, 0.2, 0.3, 0.4})).GPU()
	if g.Size() != GPUInstanceSize {
		t.Fatalf("Size() = %d, expected %d", g.Size(), GPUInstanceSize)
	}
	data := MarshalInstances([]GPUInstance{g, g})
	if len(data) != 2*GPUInstanceSize {
		t.Fatalf("MarshalInstances() = %d bytes, expected %d", len(data), 2*GPUInstanceSize)
	}
}

func TestNewCube(t *testing.T) {
	m := NewCube()
	if len(m.Vertices) != 24 || m.IndexCount() != 36 {
		t.Fatalf("cube has %d vertices and %d indices", len(m.Vertices), m.IndexCount())
	}
	for _, v := range m.Vertices {
		for k := range 3 {
			if math.Abs(float64(v.Position[k])) != 0.5 {
				t.Fatalf("vertex %v is not on the unit cube corner set", v.Position)
			}
		}
	}
	if len(m.VertexData()) != 24*32 || len(m.IndexData()) != 36*4 {
		t.Error("serialized cube has the wrong size")
	}
}

func TestNewSphere(t *testing.T) {
	tests := []struct {
		name    string
		lat     int
		lon     int
		wantErr bool
	}{
		{name: "regular", lat: 8, lon: 12},
		{name: "minimal", lat: 2, lon: 3},
		{name: "odd latitude", lat: 7, lon: 12, wantErr: true},
		{name: "too few longitudes", lat: 4, lon: 2, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewSphere(2, tc.lat, tc.lon)
			if (err != nil) != tc.wantErr {
				t.Fatalf("NewSphere() error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			if want := (tc.lat + 1) * (tc.lon + 1); len(m.Vertices) != want {
				t.Errorf("vertex count = %d, expected %d", len(m.Vertices), want)
			}
			if want := tc.lat * tc.lon * 6; m.IndexCount() != want {
				t.Errorf("index count = %d, expected %d", m.IndexCount(), want)
			}
			for _, v := range m.Vertices {
				l := mgl32.Vec3(v.Position).Len()
				if math.Abs(float64(l-2)) > 1e-4 {
					t.Fatalf("vertex %v has radius %v, expected 2", v.Position, l)
				}
			}
			for _, idx := range m.Indices {
				if int(idx) >= len(m.Vertices) {
					t.Fatalf("index %d out of range", idx)
				}
			}
		})
	}
}

func TestBuiltinMeshes(t *testing.T) {
	meshes := BuiltinMeshes()
	for _, id := range []ModelID{ModelCube, ModelSphere, ModelRectangle} {
		if meshes[id] == nil || meshes[id].IndexCount() == 0 {
			t.Errorf("missing mesh for %s", id)
		}
	}
}
