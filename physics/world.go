package physics

import (
	"math"
	"sort"

	"github.com/automoto/spriteplay/config"
	"github.com/jakecoffman/cp"
)

const (
	spriteCollision cp.CollisionType = 1

	// segments get a little thickness so dynamic lines have mass
	lineRadius = 1
)

// World is the rigid-body simulation a sketch steps once per frame.
//
// Bodies carry the id of the sprite that owns them in UserData so contact
// callbacks can report sprite pairs.
type World struct {
	Space *cp.Space

	// AutoStep makes the host step the world after each draw unless the
	// sketch already stepped it during that frame.
	AutoStep bool

	// Contacts holds collisions between non-sensor shapes, Sensors holds
	// contacts where at least one shape is a sensor.
	Contacts *ContactTable
	Sensors  *ContactTable

	// Filter, when set, is asked whether two sprites should pass through
	// each other in addition to the pairs set with PassThrough.
	Filter func(a, b int) bool

	cfg         config.PhysicsConfig
	shapes      map[*cp.Shape]ShapeInfo
	passThrough map[uint64]bool
	routes      map[shapePair]*ContactTable
	joints      []*Joint
	steps       int
}

type shapePair [2]*cp.Shape

// NewWorld creates a world with gravity, solver and sleep settings taken
// from cfg.
func NewWorld(cfg config.PhysicsConfig) *World {
	space := cp.NewSpace()
	space.Iterations = cfg.Iterations
	space.SetGravity(cp.Vector{X: cfg.GravityX, Y: cfg.GravityY})
	space.SleepTimeThreshold = cfg.SleepTimeThreshold
	space.IdleSpeedThreshold = cfg.IdleSpeedThreshold

	w := &World{
		Space:       space,
		AutoStep:    true,
		Contacts:    NewContactTable(),
		Sensors:     NewContactTable(),
		cfg:         cfg,
		shapes:      make(map[*cp.Shape]ShapeInfo),
		passThrough: make(map[uint64]bool),
		routes:      make(map[shapePair]*ContactTable),
	}

	handler := space.NewCollisionHandler(spriteCollision, spriteCollision)
	handler.BeginFunc = w.begin
	handler.SeparateFunc = w.separate

	return w
}

// SetGravity sets the gravity vector in pixels per second squared.
func (w *World) SetGravity(x, y float64) {
	w.Space.SetGravity(cp.Vector{X: x, Y: y})
}

// Gravity returns the gravity vector.
func (w *World) Gravity() (float64, float64) {
	g := w.Space.Gravity()
	return g.X, g.Y
}

// VelocityScale is the number of body velocity units in one sprite
// velocity unit (pixels per frame).
func (w *World) VelocityScale() float64 {
	return w.cfg.VelocityScale
}

// Step advances the simulation by dt seconds. A dt of zero or less uses
// the configured time step.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		dt = w.cfg.TimeStep
	}
	w.Space.Step(dt)
	w.Contacts.Advance()
	w.Sensors.Advance()
	w.steps++
}

// Steps returns how many times Step has run.
func (w *World) Steps() int {
	return w.steps
}

// AddBody creates a body for the sprite id. None returns nil.
func (w *World) AddBody(id int, kind ColliderType, x, y, angle float64) *cp.Body {
	var body *cp.Body
	switch kind {
	case Dynamic:
		body = cp.NewBody(0, 0)
	case Static:
		body = cp.NewStaticBody()
	case Kinematic:
		body = cp.NewKinematicBody()
	default:
		return nil
	}
	body.UserData = id
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetAngle(angle * math.Pi / 180)
	return w.Space.AddBody(body)
}

// RemoveBody removes the body with every shape and joint attached to it.
func (w *World) RemoveBody(body *cp.Body) {
	if body == nil {
		return
	}
	for _, j := range w.JointsOf(body) {
		w.RemoveJoint(j)
	}
	var attached []*cp.Shape
	body.EachShape(func(s *cp.Shape) {
		attached = append(attached, s)
	})
	for _, s := range attached {
		w.RemoveShape(s)
	}
	if id, ok := body.UserData.(int); ok {
		w.Contacts.Forget(id)
		w.Sensors.Forget(id)
	}
	w.Space.RemoveBody(body)
}

// AddShape attaches a collider or sensor described by info to body.
func (w *World) AddShape(body *cp.Body, info ShapeInfo) *cp.Shape {
	var shape *cp.Shape
	switch info.Kind {
	case Circle:
		shape = cp.NewCircle(body, info.W/2, cp.Vector{X: info.OffsetX, Y: info.OffsetY})
	case Line:
		rad := info.Angle * math.Pi / 180
		hx := math.Cos(rad) * info.Length / 2
		hy := math.Sin(rad) * info.Length / 2
		a := cp.Vector{X: info.OffsetX - hx, Y: info.OffsetY - hy}
		b := cp.Vector{X: info.OffsetX + hx, Y: info.OffsetY + hy}
		shape = cp.NewSegment(body, a, b, lineRadius)
	default:
		bb := cp.BB{
			L: info.OffsetX - info.W/2,
			B: info.OffsetY - info.H/2,
			R: info.OffsetX + info.W/2,
			T: info.OffsetY + info.H/2,
		}
		shape = cp.NewBox2(body, bb, 0)
	}

	shape.SetCollisionType(spriteCollision)
	shape.SetFriction(w.cfg.Friction)
	shape.SetElasticity(w.cfg.Bounciness)
	shape.SetSensor(info.Sensor)
	if !info.Sensor {
		shape.SetDensity(w.cfg.Density)
	}

	w.shapes[shape] = info
	w.Space.AddShape(shape)
	if body.GetType() == cp.BODY_DYNAMIC && body.Mass() <= 0 {
		body.SetMass(1)
		body.SetMoment(1)
	}
	return shape
}

// AddBox attaches a w x h box centered at ox, oy in body coordinates.
func (w *World) AddBox(body *cp.Body, ox, oy, width, height float64, sensor bool) *cp.Shape {
	return w.AddShape(body, ShapeInfo{Kind: Box, OffsetX: ox, OffsetY: oy, W: width, H: height, Sensor: sensor})
}

// AddCircle attaches a circle of diameter d centered at ox, oy.
func (w *World) AddCircle(body *cp.Body, ox, oy, d float64, sensor bool) *cp.Shape {
	return w.AddShape(body, ShapeInfo{Kind: Circle, OffsetX: ox, OffsetY: oy, W: d, H: d, Sensor: sensor})
}

// AddSegment attaches a line of the given length and angle in degrees
// centered at ox, oy.
func (w *World) AddSegment(body *cp.Body, ox, oy, length, angle float64, sensor bool) *cp.Shape {
	return w.AddShape(body, ShapeInfo{Kind: Line, OffsetX: ox, OffsetY: oy, Length: length, Angle: angle, Sensor: sensor})
}

// RemoveShape detaches a single shape.
func (w *World) RemoveShape(shape *cp.Shape) {
	w.Space.RemoveShape(shape)
	delete(w.shapes, shape)

	// end contacts the space dropped without a separate callback
	for key, table := range w.routes {
		if key[0] != shape && key[1] != shape {
			continue
		}
		a, okA := key[0].Body().UserData.(int)
		b, okB := key[1].Body().UserData.(int)
		if okA && okB {
			table.End(a, b)
		}
		delete(w.routes, key)
	}
}

// ShapeInfo returns the geometry shape was built from.
func (w *World) ShapeInfo(shape *cp.Shape) (ShapeInfo, bool) {
	info, ok := w.shapes[shape]
	return info, ok
}

// ChangeType switches a body between dynamic, static and kinematic.
// Callers rebuild every collider except the first afterwards.
func (w *World) ChangeType(body *cp.Body, kind ColliderType) {
	switch kind {
	case Dynamic:
		body.SetType(cp.BODY_DYNAMIC)
	case Static:
		body.SetType(cp.BODY_STATIC)
	case Kinematic:
		body.SetType(cp.BODY_KINEMATIC)
	}
}

// Moved must be called after teleporting a static body.
func (w *World) Moved(body *cp.Body) {
	if body.GetType() == cp.BODY_STATIC {
		w.Space.ReindexShapesForBody(body)
		return
	}
	body.Activate()
}

// Touching reports whether the colliders of sprites a and b are in
// contact after the last step.
func (w *World) Touching(a, b int) bool {
	return w.Contacts.State(a, b) > 0
}

// EachContact calls fn for every tracked collision pair.
func (w *World) EachContact(fn func(a, b, frames int)) {
	w.Contacts.Each(fn)
}

// PointQuery returns the ids of sprites with a collider or sensor
// containing the point, in ascending order.
func (w *World) PointQuery(x, y float64) []int {
	p := cp.Vector{X: x, Y: y}
	seen := make(map[int]bool)
	var ids []int
	for shape := range w.shapes {
		id, ok := shape.Body().UserData.(int)
		if !ok || seen[id] {
			continue
		}
		if shape.PointQuery(p).Distance <= 0 {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// PassThrough makes the bodies of sprites a and b ignore each other
// physically while they still report sensor contacts.
func (w *World) PassThrough(a, b int, on bool) {
	k := pairKey(a, b)
	if on {
		w.passThrough[k] = true
		return
	}
	delete(w.passThrough, k)
}

// Passes reports whether a and b pass through each other.
func (w *World) Passes(a, b int) bool {
	if w.passThrough[pairKey(a, b)] {
		return true
	}
	return w.Filter != nil && w.Filter(a, b)
}

func (w *World) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	sa, sb := arb.Shapes()
	a, b, ok := bodyIDs(arb)
	if !ok {
		return true
	}

	table, collide := w.Contacts, true
	switch {
	case w.isSensor(sa) || w.isSensor(sb):
		table = w.Sensors
	case w.Passes(a, b):
		table, collide = w.Sensors, false
	}
	// separate must end the pair in the table it began in
	w.routes[shapePair{sa, sb}] = table
	table.Begin(a, b)
	return collide
}

func (w *World) separate(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
	sa, sb := arb.Shapes()
	a, b, ok := bodyIDs(arb)
	if !ok {
		return
	}
	for _, key := range []shapePair{{sa, sb}, {sb, sa}} {
		if table, ok := w.routes[key]; ok {
			table.End(a, b)
			delete(w.routes, key)
			return
		}
	}
}

func (w *World) isSensor(s *cp.Shape) bool {
	return w.shapes[s].Sensor
}

func bodyIDs(arb *cp.Arbiter) (int, int, bool) {
	ba, bb := arb.Bodies()
	a, okA := ba.UserData.(int)
	b, okB := bb.UserData.(int)
	return a, b, okA && okB
}
