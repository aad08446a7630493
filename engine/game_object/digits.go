package game_object

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// digitUVWidth is the atlas width of one digit glyph; glyphs 0-9 sit side by side in the first row.
const digitUVWidth = 0.1

// Digits renders a non-negative integer as a row of glyph quads whose right edge
// is anchored at x and whose top edge is at y.
type Digits struct {
	x, y   float32
	width  float32
	number uint32
	digits []*common.Cache[model.InstanceController]
}

// NewDigits creates a digit row.
//
// Parameters:
//   - x: the right edge of the row
//   - y: the top edge of the row
//   - width: rendered width of one digit in pixels
//   - number: the value to show
//
// Returns:
//   - *Digits: the new digit row
func NewDigits(x, y, width float32, number uint32) *Digits {
	d := &Digits{x: x, y: y, width: width}
	d.build(number)
	return d
}

// Number returns the value shown.
func (d *Digits) Number() uint32 {
	return d.number
}

// Len returns the number of glyphs, which is also the number of instance slots used.
func (d *Digits) Len() int {
	return len(d.digits)
}

// SetNumber changes the value shown. Every glyph is re-emitted when the value changes;
// setting the same value is a no-op.
func (d *Digits) SetNumber(number uint32) {
	if number == d.number {
		return
	}
	d.build(number)
}

// Instances returns one entry per glyph, least significant digit first.
//
// Returns:
//   - []*model.InstanceController: changed glyphs, nil for unchanged ones
func (d *Digits) Instances() []*model.InstanceController {
	out := make([]*model.InstanceController, len(d.digits))
	for i, c := range d.digits {
		out[i] = cached(c)
	}
	return out
}

func (d *Digits) build(number uint32) {
	d.number = number
	d.digits = d.digits[:0]

	height := d.width * GlyphRowHeight / digitUVWidth
	x := d.x - d.width/2
	for _, n := range decompose(number) {
		d.digits = append(d.digits, common.NewCache(model.NewInstanceController(
			model.WithScale(d.width, height, 1),
			model.WithPosition(x, d.y-height/2, 0),
			model.WithUV(mgl32.Vec4{float32(n) * digitUVWidth, 0, digitUVWidth, GlyphRowHeight}),
		)))
		x -= d.width
	}
}

// decompose splits n into base-10 digits, least significant first. Zero yields [0].
func decompose(n uint32) []uint32 {
	if n == 0 {
		return []uint32{0}
	}
	var out []uint32
	for n > 0 {
		out = append(out, n%10)
		n /= 10
	}
	return out
}
