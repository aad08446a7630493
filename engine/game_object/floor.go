package game_object

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/model"
)

// Floor is a flat slab whose top face sits at y = 0.
type Floor struct {
	instance *common.Cache[model.InstanceController]
}

// NewFloor creates a floor of the given size centered on the origin.
func NewFloor(width, depth float32) *Floor {
	return &Floor{
		instance: common.NewCache(model.NewInstanceController(
			model.WithScale(width, 1, depth),
			model.WithPosition(0, -0.5, 0),
		)),
	}
}

// Instance returns the floor slab once, then nil.
func (f *Floor) Instance() *model.InstanceController {
	return cached(f.instance)
}
