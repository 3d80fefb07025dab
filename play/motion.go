package play

import (
	"math"

	"github.com/automoto/spriteplay/components"
	"github.com/automoto/spriteplay/physics"
	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// defaultTracking is how much of the remaining distance MoveTowards and
// RotateTowards cover each frame.
const defaultTracking = 0.1

// restSpeed is the speed below which Snap treats a sprite as stopped.
const restSpeed = 0.01

// Vel is the velocity in pixels per frame.
func (s *Sprite) Vel() (float64, float64) {
	s.sync()
	return s.data().VelX, s.data().VelY
}

// SetVelocity sets the velocity in pixels per frame. Bodies see the change
// before the next step.
func (s *Sprite) SetVelocity(x, y float64) {
	sd := s.data()
	sd.VelX, sd.VelY = x, y
	if b, ok := s.physical(); ok {
		scale := s.phys().VelocityScale()
		b.SetVelocity(x*scale, y*scale)
		b.Activate()
	}
}

// Speed is the length of the velocity.
func (s *Sprite) Speed() float64 {
	x, y := s.Vel()
	return math.Hypot(x, y)
}

// Direction is the heading of the velocity in degrees, 0 pointing right
// and growing clockwise, in [0, 360). A stopped sprite keeps the last
// direction it was given.
func (s *Sprite) Direction() float64 {
	x, y := s.Vel()
	if x == 0 && y == 0 {
		return s.data().Direction
	}
	return normalizeAngle(math.Atan2(y, x) * 180 / math.Pi)
}

// SetSpeed changes the speed and keeps the direction.
func (s *Sprite) SetSpeed(speed float64) {
	s.setPolar(speed, s.Direction())
}

// SetDirection turns the velocity and keeps the speed.
func (s *Sprite) SetDirection(deg float64) {
	s.setPolar(s.Speed(), deg)
}

func (s *Sprite) setPolar(speed, deg float64) {
	s.data().Direction = normalizeAngle(deg)
	rad := deg * math.Pi / 180
	s.SetVelocity(math.Cos(rad)*speed, math.Sin(rad)*speed)
}

// AddSpeed adds speed along angle degrees to the current velocity. The
// new velocity is visible immediately.
func (s *Sprite) AddSpeed(speed, angle float64) {
	vx, vy := s.Vel()
	rad := angle * math.Pi / 180
	s.SetVelocity(vx+math.Cos(rad)*speed, vy+math.Sin(rad)*speed)
	if vx == 0 && vy == 0 {
		s.data().Direction = normalizeAngle(angle)
	}
}

// ApplyForce pushes the sprite for one step. A force of 1 changes the
// velocity of a sprite of mass 1 by 1 pixel per frame.
func (s *Sprite) ApplyForce(fx, fy float64) {
	b, ok := s.physical()
	if !ok {
		vx, vy := s.Vel()
		s.SetVelocity(vx+fx, vy+fy)
		return
	}
	scale := s.phys().VelocityScale()
	b.ApplyForceAtWorldPoint(cp.Vector{X: fx * scale * scale, Y: fy * scale * scale}, b.Position())
}

// ApplyImpulse changes the momentum at once; an impulse of 1 changes a
// mass 1 sprite's velocity by 1 pixel per frame.
func (s *Sprite) ApplyImpulse(ix, iy float64) {
	b, ok := s.physical()
	if !ok {
		vx, vy := s.Vel()
		s.SetVelocity(vx+ix, vy+iy)
		return
	}
	scale := s.phys().VelocityScale()
	b.ApplyImpulseAtWorldPoint(cp.Vector{X: ix * scale, Y: iy * scale}, b.Position())
}

// ApplyTorque spins a dynamic sprite for one step.
func (s *Sprite) ApplyTorque(t float64) {
	b, ok := s.physical()
	if !ok || s.data().RotationLock {
		return
	}
	scale := s.phys().VelocityScale()
	b.SetTorque(b.Torque() + t*scale*scale)
}

// Mass is the body mass, or 0 for sprites without a dynamic body.
func (s *Sprite) Mass() float64 {
	b, ok := s.physical()
	if !ok || s.data().Collider != physics.Dynamic {
		return 0
	}
	return b.Mass()
}

// MoveTowards sets the velocity to cover tracking (default 0.1) of the
// distance to x, y this frame.
func (s *Sprite) MoveTowards(x, y float64, tracking ...float64) {
	t := trackingOf(tracking)
	sx, sy := s.Position()
	s.SetVelocity((x-sx)*t, (y-sy)*t)
}

// MoveAway is MoveTowards in the opposite direction.
func (s *Sprite) MoveAway(x, y float64, tracking ...float64) {
	t := trackingOf(tracking)
	sx, sy := s.Position()
	s.SetVelocity((sx-x)*t, (sy-y)*t)
}

// MoveTo travels in a straight line to x, y at speed pixels per frame,
// stopping there. Without a speed the current speed is used, or 1 if the
// sprite is still. The channel yields true on arrival and false if another
// move replaced this one.
func (s *Sprite) MoveTo(x, y float64, speed ...float64) <-chan bool {
	if s.removed {
		return resolved(false)
	}
	v := s.Speed()
	if len(speed) > 0 {
		v = speed[0]
	}
	if v <= 0 {
		v = 1
	}

	m := components.Motion.Get(s.entry)
	done := m.StartMove(x, y, v)

	sx, sy := s.Position()
	dist := math.Hypot(x-sx, y-sy)
	if dist <= v {
		// arrives during this frame
		s.SetVelocity(x-sx, y-sy)
		return done
	}
	s.SetVelocity((x-sx)/dist*v, (y-sy)/dist*v)
	return done
}

// Move travels distance pixels along direction degrees.
func (s *Sprite) Move(distance, direction float64, speed ...float64) <-chan bool {
	rad := direction * math.Pi / 180
	sx, sy := s.Position()
	return s.MoveTo(sx+math.Cos(rad)*distance, sy+math.Sin(rad)*distance, speed...)
}

// AngleTo is the direction from the sprite to x, y in degrees.
func (s *Sprite) AngleTo(x, y float64) float64 {
	sx, sy := s.Position()
	return math.Atan2(y-sy, x-sx) * 180 / math.Pi
}

// Snap rounds the sprite onto whole-unit coordinates and stops it, when
// both it and o are at rest and it is within dist (default 1) of that
// position on each axis. o may be nil.
func (s *Sprite) Snap(o *Sprite, dist ...float64) {
	if s.moving() || (o != nil && o.moving()) {
		return
	}
	d := 1.0
	if len(dist) > 0 {
		d = dist[0]
	}
	x, y := s.Position()
	rx, ry := math.Round(x), math.Round(y)
	if math.Abs(x-rx) >= d || math.Abs(y-ry) >= d {
		return
	}
	s.SetVelocity(0, 0)
	s.SetPosition(rx, ry)
}

func (s *Sprite) moving() bool {
	return !s.removed && s.Speed() > restSpeed
}

// AngleToFace is the shortest turn in degrees that leaves the sprite's
// facing (default 0) pointing at x, y.
func (s *Sprite) AngleToFace(x, y float64, facing ...float64) float64 {
	f := 0.0
	if len(facing) > 0 {
		f = facing[0]
	}
	return shortestTurn(s.Rotation(), s.AngleTo(x, y)+f)
}

// RotateTowards turns the sprite tracking (default 0.1) of the way to face
// x, y, taking the short way round.
func (s *Sprite) RotateTowards(x, y float64, tracking ...float64) {
	t := trackingOf(tracking)
	rot := s.Rotation()
	delta := shortestTurn(rot, s.AngleTo(x, y))
	s.SetRotation(rot + delta*t)
}

// RotateTo turns to angle degrees at speed degrees per frame, the short
// way round. Without a speed the rotation speed is used, or 1.
func (s *Sprite) RotateTo(angle float64, speed ...float64) <-chan bool {
	rot := s.Rotation()
	return s.Rotate(shortestTurn(rot, angle), speed...)
}

// Rotate turns by delta degrees at speed degrees per frame.
func (s *Sprite) Rotate(delta float64, speed ...float64) <-chan bool {
	if s.removed {
		return resolved(false)
	}
	v := math.Abs(s.RotationSpeed())
	if len(speed) > 0 {
		v = math.Abs(speed[0])
	}
	if v == 0 {
		v = 1
	}

	m := components.Motion.Get(s.entry)
	if delta == 0 {
		m.EndRotation(false)
		return resolved(true)
	}
	rot := s.Rotation()
	frames := math.Max(1, math.Ceil(math.Abs(delta)/v))
	tween := gween.New(float32(rot), float32(rot+delta), float32(frames), ease.Linear)
	return m.StartRotation(tween)
}

func trackingOf(tracking []float64) float64 {
	if len(tracking) > 0 {
		return tracking[0]
	}
	return defaultTracking
}

func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// shortestTurn is the signed turn in (-180, 180] from one angle to another.
func shortestTurn(from, to float64) float64 {
	d := normalizeAngle(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

func resolved(v bool) <-chan bool {
	ch := make(chan bool, 1)
	ch <- v
	close(ch)
	return ch
}

func all(chans []<-chan bool) <-chan bool {
	out := make(chan bool, 1)
	go func() {
		ok := true
		for _, c := range chans {
			if !<-c {
				ok = false
			}
		}
		out <- ok
		close(out)
	}()
	return out
}
