package systems

import (
	"math"

	"github.com/automoto/spriteplay/components"
	"github.com/automoto/spriteplay/physics"
	"github.com/automoto/spriteplay/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion advances MoveTo and RotateTo commands by one frame.
func UpdateMotion(ecs *ecs.ECS) {
	world, ok := GetWorld(ecs)
	if !ok {
		return
	}

	tags.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sd := components.Sprite.Get(e)
		bd := components.Body.Get(e)
		m := components.Motion.Get(e)
		if sd.Removed {
			return
		}

		if m.Moving {
			stepMove(world, sd, bd, m)
		}

		if m.Rotation != nil {
			angle, finished := m.Rotation.Update(1)
			sd.Rotation = float64(angle)
			if bd.Body != nil {
				bd.Body.SetAngularVelocity(0)
				bd.Body.SetAngle(radians(sd.Rotation))
				world.Physics.Moved(bd.Body)
			}
			if finished {
				m.EndRotation(true)
			}
		}
	})
}

// stepMove heads toward the target at the command's speed and snaps onto
// it once it is closer than one frame of travel.
func stepMove(world *components.WorldData, sd *components.SpriteData, bd *components.BodyData, m *components.MotionData) {
	dx, dy := m.TargetX-sd.X, m.TargetY-sd.Y
	dist := math.Hypot(dx, dy)

	if dist <= m.Speed || m.Speed <= 0 {
		sd.X, sd.Y = m.TargetX, m.TargetY
		sd.VelX, sd.VelY = 0, 0
		if bd.Body != nil {
			bd.Body.SetPosition(cp.Vector{X: sd.X, Y: sd.Y})
			bd.Body.SetVelocity(0, 0)
			world.Physics.Moved(bd.Body)
		}
		m.EndMove(true)
		return
	}

	sd.VelX = dx / dist * m.Speed
	sd.VelY = dy / dist * m.Speed
	if bd.Body != nil && sd.Collider != physics.None {
		scale := world.Physics.VelocityScale()
		bd.Body.SetVelocity(sd.VelX*scale, sd.VelY*scale)
		bd.Body.Activate()
	}
}
