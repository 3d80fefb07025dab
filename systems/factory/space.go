package factory

import (
	"github.com/automoto/spriteplay/archetypes"
	"github.com/automoto/spriteplay/components"
	cfg "github.com/automoto/spriteplay/config"
	"github.com/automoto/spriteplay/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld spawns the world singleton around an already built physics
// world, with an overlap space covering the canvas plus a margin.
func CreateWorld(ecs *ecs.ECS, world *physics.World, width, height int) *donburi.Entry {
	entry := archetypes.World.Spawn(ecs)
	margin := max(width, height)
	cell := cfg.Sprite.CellSize
	components.World.SetValue(entry, components.WorldData{
		Physics:       world,
		Overlap:       resolv.NewSpace(width+2*margin, height+2*margin, cell, cell),
		Overlaps:      physics.NewContactTable(),
		OverlapOffset: float64(margin),
		NextID:        cfg.Sprite.FirstID,
	})
	return entry
}
