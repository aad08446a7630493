package game_object

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

func nonNil(instances []*model.InstanceController) int {
	n := 0
	for _, ic := range instances {
		if ic != nil {
			n++
		}
	}
	return n
}

func TestDigitsLayout(t *testing.T) {
	tests := []struct {
		name   string
		number uint32
		glyphs []float32
	}{
		{name: "zero", number: 0, glyphs: []float32{0}},
		{name: "single digit", number: 7, glyphs: []float32{7}},
		{name: "1200", number: 1200, glyphs: []float32{0, 0, 2, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDigits(100, 50, 10, tc.number)
			instances := d.Instances()
			if len(instances) != len(tc.glyphs) || d.Len() != len(tc.glyphs) {
				t.Fatalf("got %d digit instances, expected %d", len(instances), len(tc.glyphs))
			}
			for i, ic := range instances {
				if ic == nil {
					t.Fatalf("digit %d not emitted", i)
				}
				if !approx(ic.UV[0], tc.glyphs[i]*0.1) {
					t.Errorf("digit %d uv.x = %v, expected %v", i, ic.UV[0], tc.glyphs[i]*0.1)
				}
				if wantX := 100 - 5 - float32(i)*10; !approx(ic.Position[0], wantX) {
					t.Errorf("digit %d x = %v, expected %v", i, ic.Position[0], wantX)
				}
				if !approx(ic.Scale[1], 12.5) || !approx(ic.Position[1], 50-6.25) {
					t.Errorf("digit %d has height %v at y %v", i, ic.Scale[1], ic.Position[1])
				}
			}
		})
	}
}

func TestDigitsSetNumber(t *testing.T) {
	d := NewDigits(0, 0, 10, 1000)
	d.Instances()

	d.SetNumber(1000)
	if n := nonNil(d.Instances()); n != 0 {
		t.Errorf("unchanged number re-emitted %d digits", n)
	}

	d.SetNumber(999)
	instances := d.Instances()
	if len(instances) != 3 || nonNil(instances) != 3 {
		t.Errorf("after SetNumber(999) got %d instances, %d emitted", len(instances), nonNil(instances))
	}
	if d.Number() != 999 {
		t.Errorf("Number() = %d, expected 999", d.Number())
	}
}

func TestMessage(t *testing.T) {
	m := NewMessage(0, 150, 240, UVWin)
	if !approx(m.Height(), 37.5) || m.Width() != 240 {
		t.Fatalf("message size = %v x %v, expected 240 x 37.5", m.Width(), m.Height())
	}
	if m.Instance() == nil {
		t.Fatal("first Instance() returned nil")
	}
	if m.Instance() != nil {
		t.Fatal("second Instance() returned a value")
	}

	m.SetPosition(0, 100)
	ic := m.Instance()
	if ic == nil || ic.Position != (mgl32.Vec3{0, 100, 0}) {
		t.Errorf("Instance() after SetPosition = %+v", ic)
	}
	if x, y := m.Position(); x != 0 || y != 100 {
		t.Errorf("Position() = (%v, %v)", x, y)
	}
}

func TestReticleAndFloorEmitOnce(t *testing.T) {
	objects := []GameObject{NewReticle(), NewFloor(40, 80)}
	first := AppendInstances(nil, objects...)
	if nonNil(first) != 2 {
		t.Fatalf("first collection emitted %d of 2", nonNil(first))
	}
	second := AppendInstances(nil, objects...)
	if len(second) != 2 || nonNil(second) != 0 {
		t.Errorf("second collection = %d entries, %d emitted; expected 2 entries, none emitted", len(second), nonNil(second))
	}
	if first[0].UV != UVReticle || first[0].Scale != (mgl32.Vec3{200, 200, 1}) {
		t.Errorf("reticle instance = %+v", first[0])
	}
}
