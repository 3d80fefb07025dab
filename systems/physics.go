package systems

import (
	"github.com/automoto/spriteplay/components"
	"github.com/automoto/spriteplay/physics"
	"github.com/automoto/spriteplay/systems/factory"
	"github.com/automoto/spriteplay/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics runs after the world step. Sprites with a body mirror it;
// sprites without a collider move by their own velocity.
func UpdatePhysics(ecs *ecs.ECS) {
	world, ok := GetWorld(ecs)
	if !ok {
		return
	}

	tags.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sd := components.Sprite.Get(e)
		bd := components.Body.Get(e)
		if sd.Removed {
			return
		}

		if sd.Collider == physics.None {
			if sd.AutoUpdate {
				sd.X += sd.VelX
				sd.Y += sd.VelY
				sd.Rotation += sd.RotationSpeed
			}
			// sensor-only bodies follow the sprite
			if bd.Body != nil {
				bd.Body.SetPosition(cp.Vector{X: sd.X, Y: sd.Y})
				bd.Body.SetAngle(radians(sd.Rotation))
				world.Physics.Moved(bd.Body)
			}
			return
		}

		if bd.Body == nil {
			return
		}
		if sd.AutoUpdate && sd.RotationSpeed != 0 {
			bd.Body.SetAngle(bd.Body.Angle() + radians(sd.RotationSpeed))
			world.Physics.Moved(bd.Body)
		}
		factory.CopyFromBody(world.Physics, sd, bd)
	})
}
