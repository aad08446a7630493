package game_object

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// GlyphRowHeight is the height of one row of the UI texture atlas in texture coordinates.
const GlyphRowHeight = 0.125

// Atlas rows of the UI texture.
var (
	UVTitle       = mgl32.Vec4{0, 0.625, 1, GlyphRowHeight}
	UVStartPrompt = mgl32.Vec4{0, 0.125, 1, GlyphRowHeight}
	UVRestart     = mgl32.Vec4{0, 0.25, 1, GlyphRowHeight}
	UVWin         = mgl32.Vec4{0, 0.375, 0.8, GlyphRowHeight}
	UVLose        = mgl32.Vec4{0, 0.5, 0.8, GlyphRowHeight}
	UVReticle     = mgl32.Vec4{0, 0.75, 0.25, 0.25}
)

// Message is a single UI quad showing a region of the UI atlas.
// The quad keeps the aspect ratio of its atlas region.
type Message struct {
	instance *common.Cache[model.InstanceController]
}

// NewMessage creates a message centered at (x, y) in screen space.
//
// Parameters:
//   - x: horizontal center, 0 is the middle of the screen
//   - y: vertical center, positive is up
//   - width: rendered width in pixels
//   - uv: the atlas region; uv.Z() must be non-zero
//
// Returns:
//   - *Message: the new message
func NewMessage(x, y, width float32, uv mgl32.Vec4) *Message {
	return &Message{
		instance: common.NewCache(model.NewInstanceController(
			model.WithScale(width, width*GlyphRowHeight/uv[2], 1),
			model.WithPosition(x, y, 0),
			model.WithUV(uv),
		)),
	}
}

// Width returns the rendered width in pixels.
func (m *Message) Width() float32 {
	return m.instance.Peek().Scale[0]
}

// Height returns the rendered height in pixels.
func (m *Message) Height() float32 {
	return m.instance.Peek().Scale[1]
}

// Position returns the center of the message.
func (m *Message) Position() (x, y float32) {
	p := m.instance.Peek().Position
	return p[0], p[1]
}

// SetPosition moves the center of the message.
func (m *Message) SetPosition(x, y float32) {
	ic := m.instance.Get()
	ic.Position[0] = x
	ic.Position[1] = y
}

// Instance returns the banner quad after a change, and nil otherwise.
func (m *Message) Instance() *model.InstanceController {
	return cached(m.instance)
}

// Reticle is the crosshair drawn at the screen center.
type Reticle struct {
	instance *common.Cache[model.InstanceController]
}

// NewReticle creates the crosshair.
func NewReticle() *Reticle {
	return &Reticle{
		instance: common.NewCache(model.NewInstanceController(
			model.WithScale(200, 200, 1),
			model.WithUV(UVReticle),
		)),
	}
}

// Instance returns the crosshair quad once, then nil.
func (r *Reticle) Instance() *model.InstanceController {
	return cached(r.instance)
}
