package game_object

import "github.com/Carmen-Shannon/oxy-fps/engine/model"

// GameObject is an entity that occupies exactly one instance slot.
type GameObject interface {
	// Instance returns the entity's instance if the renderer needs fresh data for its slot.
	//
	// Returns:
	//   - *model.InstanceController: a copy of the instance, or nil when the slot is unchanged
	Instance() *model.InstanceController
}

var (
	_ GameObject = &Wall{}
	_ GameObject = &Floor{}
	_ GameObject = &Target{}
	_ GameObject = &Message{}
	_ GameObject = &Reticle{}
)

// AppendInstances appends the Instance result of every object to dst, one entry per object,
// so the positions in dst stay aligned with instance buffer slots.
//
// Parameters:
//   - dst: the sparse slice to append to
//   - objects: the objects in slot order
//
// Returns:
//   - []*model.InstanceController: dst with one entry appended per object
func AppendInstances[T GameObject](dst []*model.InstanceController, objects ...T) []*model.InstanceController {
	for _, o := range objects {
		dst = append(dst, o.Instance())
	}
	return dst
}

func cached(c interface {
	Cache() (model.InstanceController, bool)
}) *model.InstanceController {
	ic, ok := c.Cache()
	if !ok {
		return nil
	}
	return &ic
}
