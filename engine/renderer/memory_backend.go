package renderer

import "github.com/Carmen-Shannon/oxy-fps/engine/model"

// Pass identifies which kind of pass a recorded draw belongs to.
type Pass int

const (
	PassSkybox Pass = iota
	PassWorld
	PassUi
)

// DrawCall is one draw recorded by a MemoryBackend.
type DrawCall struct {
	Pass       Pass
	Model      model.ModelID
	Start, End uint32
	Clear      *Color
}

// MemoryBackend is a RendererBackend that mirrors GPU buffers in memory and records draws.
// It backs headless sessions and tests. It is not safe for concurrent use.
type MemoryBackend struct {
	Width, Height int
	PresentMode   PresentMode

	// Cameras holds the last uniform written per layer.
	Cameras [layerCount][]byte
	// Slots holds the bytes last written to each instance slot, per layer.
	Slots [layerCount]map[int][]byte
	// Writes counts WriteInstances calls since construction.
	Writes int
	// Draws holds the draws of the most recent frame.
	Draws []DrawCall
	// Frames counts presented frames.
	Frames int

	inFrame bool
}

var _ RendererBackend = &MemoryBackend{}

// NewMemoryBackend creates an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		Slots: [layerCount]map[int][]byte{{}, {}},
	}
}

func (m *MemoryBackend) ConfigureSurface(width, height int) {
	m.Width, m.Height = width, height
}

func (m *MemoryBackend) SetPresentMode(mode PresentMode) {
	m.PresentMode = mode
}

func (m *MemoryBackend) BeginFrame() error {
	if m.inFrame {
		return ErrSurfaceBusy
	}
	m.inFrame = true
	m.Draws = m.Draws[:0]
	return nil
}

func (m *MemoryBackend) WriteCamera(layer Layer, data []byte) {
	m.Cameras[layer] = append([]byte(nil), data...)
}

func (m *MemoryBackend) WriteInstances(layer Layer, slot int, data []byte) {
	m.Writes++
	for i := 0; i*model.GPUInstanceSize < len(data); i++ {
		chunk := data[i*model.GPUInstanceSize : (i+1)*model.GPUInstanceSize]
		m.Slots[layer][slot+i] = append([]byte(nil), chunk...)
	}
}

func (m *MemoryBackend) DrawSkybox() {
	m.Draws = append(m.Draws, DrawCall{Pass: PassSkybox})
}

func (m *MemoryBackend) DrawWorld(ranges []WorldRange) {
	for _, r := range ranges {
		m.Draws = append(m.Draws, DrawCall{Pass: PassWorld, Model: r.Model, Start: r.Start, End: r.End})
	}
}

func (m *MemoryBackend) DrawUi(clear *Color, ranges []UiRange) {
	if clear != nil && len(ranges) == 0 {
		m.Draws = append(m.Draws, DrawCall{Pass: PassUi, Clear: clear})
		return
	}
	for i, r := range ranges {
		dc := DrawCall{Pass: PassUi, Start: r.Start, End: r.End}
		if i == 0 {
			dc.Clear = clear
		}
		m.Draws = append(m.Draws, dc)
	}
}

func (m *MemoryBackend) EndFrame() {}

func (m *MemoryBackend) Present() {
	if !m.inFrame {
		return
	}
	m.inFrame = false
	m.Frames++
}
