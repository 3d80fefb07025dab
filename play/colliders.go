package play

import (
	"github.com/automoto/spriteplay/physics"
	"github.com/automoto/spriteplay/systems/factory"
	"github.com/jakecoffman/cp"
)

// BoxShape is a w x h box centered ox, oy from the sprite's center.
func BoxShape(ox, oy, w, h float64) physics.ShapeInfo {
	return physics.ShapeInfo{Kind: physics.Box, OffsetX: ox, OffsetY: oy, W: w, H: h}
}

// CircleShape is a circle of diameter d centered ox, oy from the sprite's
// center.
func CircleShape(ox, oy, d float64) physics.ShapeInfo {
	return physics.ShapeInfo{Kind: physics.Circle, OffsetX: ox, OffsetY: oy, W: d, H: d}
}

// LineShape is a segment of length pixels along angle degrees.
func LineShape(ox, oy, length, angle float64) physics.ShapeInfo {
	return physics.ShapeInfo{Kind: physics.Line, OffsetX: ox, OffsetY: oy, Length: length, Angle: angle}
}

// AddCollider attaches another collider to the sprite's body. A sprite
// without a collider becomes dynamic first.
func (s *Sprite) AddCollider(shape physics.ShapeInfo) {
	if s.removed {
		return
	}
	if s.data().Collider == physics.None {
		s.SetCollider(physics.Dynamic)
	}
	bd := s.body()
	shape.Sensor = false
	bd.Colliders = append(bd.Colliders, s.phys().AddShape(bd.Body, shape))
	factory.LockRotation(bd, s.data().RotationLock)
}

// AddSensor attaches a shape that reports overlaps without colliding. A
// sprite without a collider gets a kinematic body that follows it.
func (s *Sprite) AddSensor(shape physics.ShapeInfo) {
	if s.removed {
		return
	}
	sd := s.data()
	bd := s.body()
	if bd.Body == nil {
		bd.Body = s.phys().AddBody(sd.ID, physics.Kinematic, sd.X, sd.Y, sd.Rotation)
	}
	shape.Sensor = true
	bd.Sensors = append(bd.Sensors, s.phys().AddShape(bd.Body, shape))
}

// RemoveColliders drops every collider and leaves the sprite with collider
// None. Sensors stay.
func (s *Sprite) RemoveColliders() {
	if s.removed {
		return
	}
	bd := s.body()
	if bd.Body == nil {
		s.data().Collider = physics.None
		return
	}
	if len(bd.Sensors) == 0 {
		s.SetCollider(physics.None)
		return
	}

	s.sync()
	for _, shape := range bd.Colliders {
		s.phys().RemoveShape(shape)
	}
	bd.Colliders = nil
	s.data().Collider = physics.None
	s.phys().ChangeType(bd.Body, physics.Kinematic)
	bd.Body.SetVelocity(0, 0)
	bd.Body.SetAngularVelocity(0)
}

// RemoveSensors drops every sensor.
func (s *Sprite) RemoveSensors() {
	if s.removed {
		return
	}
	bd := s.body()
	for _, shape := range bd.Sensors {
		s.phys().RemoveShape(shape)
	}
	bd.Sensors = nil
	if bd.Body != nil && s.data().Collider == physics.None {
		s.phys().RemoveBody(bd.Body)
		bd.Body = nil
	}
}

// Colliders describes the sprite's colliders, main collider first.
func (s *Sprite) Colliders() []physics.ShapeInfo {
	bd := s.body()
	if bd == nil {
		return nil
	}
	return s.shapeInfos(bd.Colliders)
}

func (s *Sprite) Sensors() []physics.ShapeInfo {
	bd := s.body()
	if bd == nil {
		return nil
	}
	return s.shapeInfos(bd.Sensors)
}

func (s *Sprite) shapeInfos(shapes []*cp.Shape) []physics.ShapeInfo {
	out := make([]physics.ShapeInfo, 0, len(shapes))
	for _, shape := range shapes {
		if info, ok := s.phys().ShapeInfo(shape); ok {
			out = append(out, info)
		}
	}
	return out
}

// Body exposes the sprite's rigid body, nil when it has none.
func (s *Sprite) Body() *cp.Body {
	if bd := s.body(); bd != nil {
		return bd.Body
	}
	return nil
}

