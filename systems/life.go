package systems

import (
	"github.com/automoto/spriteplay/components"
	"github.com/automoto/spriteplay/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLife counts down each sprite's life and tags it Expired at zero.
// The host removes expired sprites at the end of the frame.
func UpdateLife(ecs *ecs.ECS) {
	var expired []*donburi.Entry
	tags.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sd := components.Sprite.Get(e)
		if sd.Removed || !sd.AutoUpdate || e.HasComponent(tags.Expired) {
			return
		}
		sd.Life--
		if sd.Life <= 0 {
			expired = append(expired, e)
		}
	})

	// tagging moves the entry to another archetype, so not while iterating
	for _, e := range expired {
		e.AddComponent(tags.Expired)
	}
}
