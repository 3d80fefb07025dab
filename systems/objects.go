package systems

import (
	"github.com/automoto/spriteplay/components"
	"github.com/automoto/spriteplay/systems/factory"
	"github.com/automoto/spriteplay/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each sprite's overlap box onto its current bounds.
func UpdateObjects(ecs *ecs.ECS) {
	world, ok := GetWorld(ecs)
	if !ok {
		return
	}
	tags.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		SyncObject(world, e)
	})
}

// SyncObject updates a single sprite's overlap box.
func SyncObject(world *components.WorldData, e *donburi.Entry) {
	sd := components.Sprite.Get(e)
	obj := components.Object.Get(e)
	if obj.Object == nil || sd.Removed {
		return
	}
	minX, minY, w, h := factory.Bounds(sd)
	obj.X = minX + world.OverlapOffset
	obj.Y = minY + world.OverlapOffset
	obj.W, obj.H = w, h
	obj.Update()
}
