package play

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/spriteplay/assets/animations"
	"github.com/automoto/spriteplay/components"
	"github.com/automoto/spriteplay/physics"
	"github.com/automoto/spriteplay/systems"
	"github.com/automoto/spriteplay/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// Sprite is a handle to one sprite entity. After Remove the handle keeps
// answering with the sprite's last state.
type Sprite struct {
	p      *P
	entry  *donburi.Entry
	id     int
	groups []*Group

	removed bool
	last    components.SpriteData
}

func (p *P) spawn(g *Group, sd components.SpriteData, anis animations.Animations, order []string) *Sprite {
	entry := factory.CreateSprite(p.ecs, p.world, sd)
	s := &Sprite{p: p, entry: entry, id: components.Sprite.Get(entry).ID}

	ad := components.Animation.Get(entry)
	ad.Animations = anis
	if len(order) > 0 {
		ad.SetAnimation(order[0])
	}

	p.sprites[s.id] = s
	p.order = append(p.order, s)
	g.Add(s)
	return s
}

func (p *P) topLayer() int {
	top := 0
	for _, s := range p.order {
		top = max(top, s.data().Layer)
	}
	return top
}

func sortByLayer(list []*Sprite) []*Sprite {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Layer() < list[j].Layer()
	})
	return list
}

func (s *Sprite) data() *components.SpriteData {
	if s.removed {
		return &s.last
	}
	return components.Sprite.Get(s.entry)
}

// body returns the sprite's body data, or nil once removed.
func (s *Sprite) body() *components.BodyData {
	if s.removed {
		return nil
	}
	return components.Body.Get(s.entry)
}

// physical reports whether position and velocity live in a body.
func (s *Sprite) physical() (*cp.Body, bool) {
	bd := s.body()
	if bd == nil || bd.Body == nil || s.data().Collider == physics.None {
		return nil, false
	}
	return bd.Body, true
}

func (s *Sprite) phys() *physics.World {
	return s.p.world.Physics
}

// moved pushes a changed position or angle into the body and the
// overlap space.
func (s *Sprite) moved() {
	if s.removed {
		return
	}
	sd := s.data()
	if bd := s.body(); bd.Body != nil {
		bd.Body.SetPosition(cp.Vector{X: sd.X, Y: sd.Y})
		bd.Body.SetAngle(sd.Rotation * math.Pi / 180)
		s.phys().Moved(bd.Body)
	}
	systems.SyncObject(s.p.world, s.entry)
}

// sync pulls the body state into the sprite data.
func (s *Sprite) sync() {
	if _, ok := s.physical(); ok {
		factory.CopyFromBody(s.phys(), s.data(), s.body())
	}
}

func (s *Sprite) ID() int {
	return s.id
}

func (s *Sprite) X() float64 {
	s.sync()
	return s.data().X
}

func (s *Sprite) Y() float64 {
	s.sync()
	return s.data().Y
}

func (s *Sprite) Position() (float64, float64) {
	s.sync()
	return s.data().X, s.data().Y
}

func (s *Sprite) SetX(x float64) {
	s.sync()
	s.data().X = x
	s.moved()
}

func (s *Sprite) SetY(y float64) {
	s.sync()
	s.data().Y = y
	s.moved()
}

func (s *Sprite) SetPosition(x, y float64) {
	s.sync()
	s.data().X, s.data().Y = x, y
	s.moved()
}

func (s *Sprite) W() float64 {
	return s.data().W
}

func (s *Sprite) H() float64 {
	return s.data().H
}

// D is the diameter of a circle sprite.
func (s *Sprite) D() float64 {
	return s.data().W
}

// SetWidth resizes the sprite and rebuilds its first collider. Circles
// keep their aspect.
func (s *Sprite) SetWidth(w float64) {
	sd := s.data()
	sd.W = w
	switch sd.Shape {
	case physics.Circle:
		sd.H = w
	case physics.Line:
		sd.LineLength = w
	}
	s.resized()
}

func (s *Sprite) SetHeight(h float64) {
	sd := s.data()
	if sd.Shape == physics.Circle {
		sd.W = h
	}
	if sd.Shape != physics.Line {
		sd.H = h
	}
	s.resized()
}

func (s *Sprite) SetDiameter(d float64) {
	s.data().W, s.data().H = d, d
	s.resized()
}

func (s *Sprite) resized() {
	if s.removed {
		return
	}
	factory.ResizeCollider(s.phys(), s.entry)
	systems.SyncObject(s.p.world, s.entry)
}

func (s *Sprite) Shape() physics.ShapeKind {
	return s.data().Shape
}

// Rotation is the angle in degrees, clockwise.
func (s *Sprite) Rotation() float64 {
	s.sync()
	return s.data().Rotation
}

func (s *Sprite) SetRotation(deg float64) {
	s.sync()
	s.data().Rotation = deg
	if b, ok := s.physical(); ok {
		b.SetAngularVelocity(0)
	}
	s.moved()
}

func (s *Sprite) RotationSpeed() float64 {
	return s.data().RotationSpeed
}

// SetRotationSpeed spins the sprite by deg degrees every frame.
func (s *Sprite) SetRotationSpeed(deg float64) {
	s.data().RotationSpeed = deg
}

func (s *Sprite) RotationLock() bool {
	return s.data().RotationLock
}

func (s *Sprite) SetRotationLock(lock bool) {
	s.data().RotationLock = lock
	if bd := s.body(); bd != nil {
		factory.LockRotation(bd, lock)
	}
}

func (s *Sprite) Collider() physics.ColliderType {
	return s.data().Collider
}

// SetCollider changes how the sprite takes part in the simulation.
// Switching between body types keeps only the first collider; None
// removes the body together with colliders and sensors.
func (s *Sprite) SetCollider(t physics.ColliderType) {
	sd := s.data()
	if s.removed || sd.Collider == t {
		sd.Collider = t
		return
	}
	s.sync()
	bd := s.body()
	prev := sd.Collider
	sd.Collider = t

	switch {
	case t == physics.None:
		if bd.Body != nil {
			factory.DetachBody(s.phys(), s.entry)
		}
	case bd.Body == nil:
		factory.AttachBody(s.phys(), s.entry)
	case prev == physics.None:
		// sensor-only body becomes a real one
		s.phys().ChangeType(bd.Body, t)
		factory.ResizeCollider(s.phys(), s.entry)
		bd.Body.SetVelocity(sd.VelX*s.phys().VelocityScale(), sd.VelY*s.phys().VelocityScale())
	default:
		for _, extra := range bd.Colliders[1:] {
			s.phys().RemoveShape(extra)
		}
		bd.Colliders = bd.Colliders[:1]
		s.phys().ChangeType(bd.Body, t)
		factory.LockRotation(bd, sd.RotationLock)
	}
	systems.SyncObject(s.p.world, s.entry)
}

func (s *Sprite) Layer() int {
	return s.data().Layer
}

func (s *Sprite) SetLayer(layer int) {
	s.data().Layer = layer
}

func (s *Sprite) Visible() bool {
	return s.data().Visible
}

func (s *Sprite) SetVisible(v bool) {
	s.data().Visible = v
}

func (s *Sprite) Color() color.RGBA {
	return s.data().Color
}

func (s *Sprite) SetColor(c color.Color) {
	s.data().Color = toRGBA(c)
}

func (s *Sprite) Stroke() color.RGBA {
	return s.data().Stroke
}

func (s *Sprite) SetStroke(c color.Color) {
	s.data().Stroke = toRGBA(c)
}

func (s *Sprite) StrokeWeight() float64 {
	return s.data().StrokeWeight
}

func (s *Sprite) SetStrokeWeight(w float64) {
	s.data().StrokeWeight = w
}

func (s *Sprite) Text() string {
	return s.data().Text
}

func (s *Sprite) SetText(t string) {
	s.data().Text = t
}

func (s *Sprite) TextColor() color.RGBA {
	return s.data().TextColor
}

func (s *Sprite) SetTextColor(c color.Color) {
	s.data().TextColor = toRGBA(c)
}

func (s *Sprite) TextSize() float64 {
	return s.data().TextSize
}

func (s *Sprite) SetTextSize(size float64) {
	s.data().TextSize = size
}

// Life is the number of frames left before the sprite removes itself.
func (s *Sprite) Life() int {
	return s.data().Life
}

func (s *Sprite) SetLife(frames int) {
	s.data().Life = frames
}

func (s *Sprite) Mirror() (bool, bool) {
	return s.data().MirrorX, s.data().MirrorY
}

func (s *Sprite) SetMirror(x, y bool) {
	s.data().MirrorX, s.data().MirrorY = x, y
}

func (s *Sprite) Scale() (float64, float64) {
	return s.data().ScaleX, s.data().ScaleY
}

// SetScale scales how the sprite is drawn. Colliders keep their size.
func (s *Sprite) SetScale(x, y float64) {
	s.data().ScaleX, s.data().ScaleY = x, y
}

func (s *Sprite) Offset() (float64, float64) {
	return s.data().OffsetX, s.data().OffsetY
}

// SetOffset moves the drawn image relative to the collider.
func (s *Sprite) SetOffset(x, y float64) {
	s.data().OffsetX, s.data().OffsetY = x, y
}

func (s *Sprite) Debug() bool {
	return s.data().Debug
}

func (s *Sprite) SetDebug(on bool) {
	s.data().Debug = on
}

func (s *Sprite) AutoUpdate() bool {
	return s.data().AutoUpdate
}

func (s *Sprite) SetAutoUpdate(on bool) {
	s.data().AutoUpdate = on
}

func (s *Sprite) AutoDraw() bool {
	return s.data().AutoDraw
}

func (s *Sprite) SetAutoDraw(on bool) {
	s.data().AutoDraw = on
}

// Tile is the map character the sprite was created from, if any.
func (s *Sprite) Tile() string {
	return s.data().Tile
}

func (s *Sprite) Removed() bool {
	return s.removed
}

// Groups lists every group the sprite belongs to, AllSprites included.
func (s *Sprite) Groups() []*Group {
	return append([]*Group(nil), s.groups...)
}

// Update advances the sprite's animation. Sprites with AutoUpdate off
// are updated this way by hand.
func (s *Sprite) Update() {
	if s.removed {
		return
	}
	ad := components.Animation.Get(s.entry)
	if ad.Current != nil {
		ad.Current.Update()
		ad.Advance()
	}
}

// Draw draws the sprite whatever AutoDraw says: through the camera while
// it is on, at its plain canvas position while it is off.
func (s *Sprite) Draw(screen *ebiten.Image) {
	if s.removed || !s.data().Visible {
		return
	}
	s.sync()
	systems.DrawSprite(screen, s.drawCamera(), s.entry)
}

func (s *Sprite) drawCamera() *components.CameraData {
	cd := components.Camera.Get(s.p.camera.entry)
	if !cd.Active {
		return cd.Fixed()
	}
	return cd
}

// Remove takes the sprite out of every group, the physics world and the
// overlap space. Pending moves resolve false.
func (s *Sprite) Remove() {
	if s.removed {
		return
	}
	s.sync()
	p := s.p

	m := components.Motion.Get(s.entry)
	m.EndMove(false)
	m.EndRotation(false)

	factory.DetachBody(p.world.Physics, s.entry)
	if obj := components.Object.Get(s.entry); obj.Object != nil {
		p.world.Overlap.Remove(obj.Object)
	}
	p.world.Overlaps.Forget(s.id)

	s.last = *components.Sprite.Get(s.entry)
	s.last.Removed = true
	s.removed = true

	for _, g := range s.groups {
		delete(g.members, s.id)
		g.sprites = removeSprite(g.sprites, s)
	}
	s.groups = nil
	p.dropWatchers(s)
	delete(p.sprites, s.id)
	p.order = removeSprite(p.order, s)

	p.ecs.World.Remove(s.entry.Entity())
}
