package factory

import (
	"math"

	"github.com/automoto/spriteplay/archetypes"
	"github.com/automoto/spriteplay/components"
	"github.com/automoto/spriteplay/physics"
	"github.com/automoto/spriteplay/tags"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSprite spawns a sprite from fully resolved data. It assigns the
// next id, builds the body for data.Collider and adds the sprite's bounds
// to the overlap space.
func CreateSprite(ecs *ecs.ECS, world *components.WorldData, data components.SpriteData) *donburi.Entry {
	sprite := archetypes.Sprite.Spawn(ecs)

	data.ID = world.NextID
	world.NextID++
	components.Sprite.SetValue(sprite, data)
	components.Animation.SetValue(sprite, components.AnimationData{})
	components.Motion.SetValue(sprite, components.MotionData{})

	sd := components.Sprite.Get(sprite)
	minX, minY, w, h := Bounds(sd)
	obj := resolv.NewObject(minX+world.OverlapOffset, minY+world.OverlapOffset, w, h, tags.ResolvSprite)
	obj.Data = sprite
	world.Overlap.Add(obj)
	components.Object.SetValue(sprite, components.ObjectData{Object: obj})

	components.Body.SetValue(sprite, components.BodyData{})
	AttachBody(world.Physics, sprite)

	return sprite
}

// ColliderInfo describes the main collider for the sprite's current shape
// and size.
func ColliderInfo(sd *components.SpriteData) physics.ShapeInfo {
	switch sd.Shape {
	case physics.Circle:
		return physics.ShapeInfo{Kind: physics.Circle, W: sd.W, H: sd.W}
	case physics.Line:
		return physics.ShapeInfo{Kind: physics.Line, Length: sd.LineLength, Angle: sd.LineAngle}
	}
	return physics.ShapeInfo{Kind: physics.Box, W: sd.W, H: sd.H}
}

// AttachBody creates the body and main collider for the sprite's collider
// type. Sprites with collider None get no body.
func AttachBody(world *physics.World, sprite *donburi.Entry) {
	sd := components.Sprite.Get(sprite)
	bd := components.Body.Get(sprite)

	bd.Body = world.AddBody(sd.ID, sd.Collider, sd.X, sd.Y, sd.Rotation)
	if bd.Body == nil {
		return
	}
	bd.Body.SetVelocity(sd.VelX*world.VelocityScale(), sd.VelY*world.VelocityScale())
	bd.Colliders = append(bd.Colliders[:0], world.AddShape(bd.Body, ColliderInfo(sd)))
	LockRotation(bd, sd.RotationLock)
}

// DetachBody removes the body with every collider and sensor. Position
// and velocity are copied into the sprite data first.
func DetachBody(world *physics.World, sprite *donburi.Entry) {
	sd := components.Sprite.Get(sprite)
	bd := components.Body.Get(sprite)
	if bd.Body == nil {
		return
	}
	CopyFromBody(world, sd, bd)
	world.RemoveBody(bd.Body)
	bd.Body = nil
	bd.Colliders = nil
	bd.Sensors = nil
}

// ResizeCollider rebuilds the first collider after the sprite's size or
// shape changed. Other colliders and sensors are left as they are.
func ResizeCollider(world *physics.World, sprite *donburi.Entry) {
	sd := components.Sprite.Get(sprite)
	bd := components.Body.Get(sprite)
	if bd.Body == nil {
		return
	}
	if len(bd.Colliders) > 0 {
		world.RemoveShape(bd.Colliders[0])
		bd.Colliders[0] = world.AddShape(bd.Body, ColliderInfo(sd))
	} else {
		bd.Colliders = append(bd.Colliders, world.AddShape(bd.Body, ColliderInfo(sd)))
	}
	LockRotation(bd, sd.RotationLock)
}

// LockRotation gives a dynamic body infinite moment so contacts cannot
// spin it.
func LockRotation(bd *components.BodyData, lock bool) {
	if bd.Body == nil || bd.Body.GetType() != cp.BODY_DYNAMIC {
		return
	}
	if lock {
		bd.Body.SetAngularVelocity(0)
		bd.Body.SetMoment(math.Inf(1))
		return
	}
	if len(bd.Colliders) > 0 {
		// re-adding mass info restores the computed moment
		bd.Body.AccumulateMassFromShapes()
	}
}

// CopyFromBody mirrors the body's position, velocity and angle into the
// sprite data.
func CopyFromBody(world *physics.World, sd *components.SpriteData, bd *components.BodyData) {
	if bd.Body == nil {
		return
	}
	pos := bd.Body.Position()
	vel := bd.Body.Velocity()
	sd.X, sd.Y = pos.X, pos.Y
	sd.VelX = vel.X / world.VelocityScale()
	sd.VelY = vel.Y / world.VelocityScale()
	sd.Rotation = bd.Body.Angle() * 180 / math.Pi
}

// Bounds returns the axis-aligned box around the sprite, rotation
// included, as min x, min y, width, height.
func Bounds(sd *components.SpriteData) (float64, float64, float64, float64) {
	w, h := sd.W, sd.H
	if sd.Shape == physics.Line {
		rad := (sd.LineAngle + sd.Rotation) * math.Pi / 180
		w = math.Max(math.Abs(math.Cos(rad)*sd.LineLength), 1)
		h = math.Max(math.Abs(math.Sin(rad)*sd.LineLength), 1)
	}
	if sd.Shape == physics.Circle {
		h = w
	}
	if sd.Shape == physics.Box && sd.Rotation != 0 {
		sin, cos := math.Sincos(sd.Rotation * math.Pi / 180)
		sin, cos = math.Abs(sin), math.Abs(cos)
		w, h = sd.W*cos+sd.H*sin, sd.W*sin+sd.H*cos
	}
	return sd.X - w/2, sd.Y - h/2, w, h
}
