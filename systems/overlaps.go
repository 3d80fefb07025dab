package systems

import (
	"github.com/automoto/spriteplay/components"
	"github.com/automoto/spriteplay/overlap"
	"github.com/automoto/spriteplay/physics"
	"github.com/automoto/spriteplay/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOverlaps rebuilds the overlap table from the sprites' outlines.
// The overlap space narrows the candidates, Outline settles each pair.
func UpdateOverlaps(ecs *ecs.ECS) {
	world, ok := GetWorld(ecs)
	if !ok {
		return
	}

	world.Overlaps.Expire()
	tags.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sd := components.Sprite.Get(e)
		obj := components.Object.Get(e)
		if sd.Removed || obj.Object == nil {
			return
		}
		check := obj.Check(0, 0, tags.ResolvSprite)
		if check == nil {
			return
		}
		shape := Outline(sd)
		for _, other := range check.Objects {
			oe, ok := other.Data.(*donburi.Entry)
			if !ok || !oe.Valid() {
				continue
			}
			od := components.Sprite.Get(oe)
			// each pair once
			if od.ID <= sd.ID || od.Removed {
				continue
			}
			if overlap.Intersects(shape, Outline(od)) {
				world.Overlaps.Begin(sd.ID, od.ID)
			}
		}
	})
	world.Overlaps.Advance()
}

// Outline returns the sprite's main collider outline in world space.
func Outline(sd *components.SpriteData) overlap.Shape {
	switch sd.Shape {
	case physics.Circle:
		return overlap.NewCircle(sd.X, sd.Y, sd.W)
	case physics.Line:
		return overlap.NewLine(sd.X, sd.Y, sd.LineLength, sd.LineAngle+sd.Rotation)
	}
	return overlap.NewRotatedBox(sd.X, sd.Y, sd.W, sd.H, sd.Rotation)
}
