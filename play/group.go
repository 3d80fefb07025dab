package play

import (
	"image/color"
	"math"

	"github.com/automoto/spriteplay/assets/animations"
	"github.com/automoto/spriteplay/components"
	"github.com/automoto/spriteplay/physics"
	"github.com/hajimehoshi/ebiten/v2"
)

// Group is an ordered set of sprites that also carries defaults for the
// sprites it creates. A sprite in a group is in every ancestor of that
// group too; AllSprites is the root.
type Group struct {
	p         *P
	parent    *Group
	subgroups []*Group

	sprites []*Sprite
	members map[int]bool

	defaults defaults
	aniOrder []string
}

func newGroup(p *P, parent *Group) *Group {
	return &Group{
		p:       p,
		parent:  parent,
		members: make(map[int]bool),
	}
}

// NewGroup creates a subgroup of g.
func (g *Group) NewGroup() *Group {
	sub := newGroup(g.p, g)
	g.subgroups = append(g.subgroups, sub)
	return sub
}

func (g *Group) Parent() *Group {
	return g.parent
}

func (g *Group) Subgroups() []*Group {
	return append([]*Group(nil), g.subgroups...)
}

// chain returns the groups from the root down to g.
func (g *Group) chain() []*Group {
	var out []*Group
	for cur := g; cur != nil; cur = cur.parent {
		out = append([]*Group{cur}, out...)
	}
	return out
}

// resolve computes the effective defaults for a sprite created in g right
// now. Later changes to any group do not reach sprites already created
// from this snapshot.
func (g *Group) resolve() (components.SpriteData, field, animations.Animations, []string) {
	sd := baseSprite()
	if c := g.p.canvas; c != nil {
		sd.X, sd.Y = float64(c.Width)/2, float64(c.Height)/2
	}

	var mask field
	anis := animations.Animations{}
	var order []string
	for _, grp := range g.chain() {
		grp.defaults.apply(&sd)
		mask |= grp.defaults.mask
		for _, label := range grp.aniOrder {
			if _, seen := anis[label]; !seen {
				order = append(order, label)
			}
			anis[label] = grp.defaults.anis[label]
		}
	}
	return sd, mask, anis.Clone(), order
}

// NewSprite creates a sprite in g with g's resolved defaults.
//
// Accepted arguments:
//
//	()                 default size at the default position
//	(x, y)             default size at x, y
//	(x, y, d)          circle of diameter d
//	(x, y, w, h)       box
//	(x, y, []float64{length, angle}) line
//
// An animation or image may come first, and a collider type, either a
// physics.ColliderType or its name, may come last.
func (g *Group) NewSprite(args ...any) (*Sprite, error) {
	if err := g.p.requireWorld(); err != nil {
		return nil, err
	}
	sa, err := parseArgs(args)
	if err != nil {
		return nil, err
	}

	sd, mask, anis, order := g.resolve()
	switch {
	case sa.line != nil:
		sd.Shape = physics.Line
		sd.LineLength, sd.LineAngle = sa.line[0], sa.line[1]
		sd.W, sd.H = sa.line[0], 1
	case len(sa.nums) == 3:
		sd.Shape = physics.Circle
		sd.W, sd.H = sa.nums[2], sa.nums[2]
	case len(sa.nums) == 4:
		sd.W, sd.H = sa.nums[2], sa.nums[3]
	case sa.ani != nil && mask&(fieldW|fieldH) == 0:
		if w, h := sa.ani.Size(); w > 0 && h > 0 {
			sd.W, sd.H = float64(w), float64(h)
		}
	}
	if len(sa.nums) >= 2 {
		sd.X, sd.Y = sa.nums[0], sa.nums[1]
	}
	if sa.hasCollider {
		sd.Collider = sa.collider
	}
	if mask&fieldLayer == 0 {
		sd.Layer = g.p.topLayer() + 1
	}
	if sa.ani != nil {
		if _, ok := anis["default"]; !ok {
			order = append([]string{"default"}, order...)
		}
		anis["default"] = sa.ani
	}

	return g.p.spawn(g, sd, anis, order), nil
}

// NewLineSprite creates a line sprite centered on x, y.
func (g *Group) NewLineSprite(x, y, length, angle float64, collider ...physics.ColliderType) (*Sprite, error) {
	args := []any{x, y, []float64{length, angle}}
	if len(collider) > 0 {
		args = append(args, collider[0])
	}
	return g.NewSprite(args...)
}

// Add puts sprites in g and every ancestor of g.
func (g *Group) Add(sprites ...*Sprite) {
	for _, s := range sprites {
		if s == nil || s.removed {
			continue
		}
		for cur := g; cur != nil; cur = cur.parent {
			if cur.members[s.id] {
				continue
			}
			cur.members[s.id] = true
			cur.sprites = append(cur.sprites, s)
			s.groups = append(s.groups, cur)
		}
	}
}

func (g *Group) Contains(s *Sprite) bool {
	return s != nil && g.members[s.id]
}

// Remove takes s out of g and g's subgroups. Removing from AllSprites
// removes the sprite entirely.
func (g *Group) Remove(s *Sprite) {
	if s == nil {
		return
	}
	if g.parent == nil {
		s.Remove()
		return
	}
	g.drop(s)
}

func (g *Group) drop(s *Sprite) {
	for _, sub := range g.subgroups {
		sub.drop(s)
	}
	if !g.members[s.id] {
		return
	}
	delete(g.members, s.id)
	g.sprites = removeSprite(g.sprites, s)
	for i, grp := range s.groups {
		if grp == g {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			break
		}
	}
}

func removeSprite(list []*Sprite, s *Sprite) []*Sprite {
	for i, cur := range list {
		if cur == s {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// RemoveAll removes every sprite in g from the sketch.
func (g *Group) RemoveAll() {
	for _, s := range g.Sprites() {
		s.Remove()
	}
}

func (g *Group) Size() int {
	return len(g.sprites)
}

// Get returns the i-th sprite, or nil when i is out of range.
func (g *Group) Get(i int) *Sprite {
	if i < 0 || i >= len(g.sprites) {
		return nil
	}
	return g.sprites[i]
}

// Sprites returns a copy of the members in insertion order.
func (g *Group) Sprites() []*Sprite {
	return append([]*Sprite(nil), g.sprites...)
}

// Cull removes sprites that went further than the given margins past the
// canvas edges. When cb is given it is called instead of removing. It
// returns the number of sprites culled.
func (g *Group) Cull(top, bottom, left, right float64, cb ...func(*Sprite)) int {
	w, h := float64(g.p.canvas.Width), float64(g.p.canvas.Height)
	n := 0
	for _, s := range g.Sprites() {
		x, y := g.p.camera.WorldToScreen(s.X(), s.Y())
		if x >= -left && x <= w+right && y >= -top && y <= h+bottom {
			continue
		}
		n++
		if len(cb) > 0 {
			cb[0](s)
			continue
		}
		s.Remove()
	}
	return n
}

// Centroid is the mean position of the members.
func (g *Group) Centroid() (float64, float64) {
	if len(g.sprites) == 0 {
		return 0, 0
	}
	var x, y float64
	for _, s := range g.sprites {
		x += s.X()
		y += s.Y()
	}
	n := float64(len(g.sprites))
	return x / n, y / n
}

// MoveTowards pulls every member toward x, y.
func (g *Group) MoveTowards(x, y float64, tracking ...float64) {
	for _, s := range g.sprites {
		s.MoveTowards(x, y, tracking...)
	}
}

// MoveTo sends every member to x, y. The channel yields true once all of
// them arrived, false if any move was replaced.
func (g *Group) MoveTo(x, y float64, speed ...float64) <-chan bool {
	chans := make([]<-chan bool, 0, len(g.sprites))
	for _, s := range g.sprites {
		chans = append(chans, s.MoveTo(x, y, speed...))
	}
	return all(chans)
}

// Orbit turns the members amount degrees about their centroid.
func (g *Group) Orbit(amount float64) {
	cx, cy := g.Centroid()
	sin, cos := math.Sincos(amount * math.Pi / 180)
	for _, s := range g.sprites {
		dx, dy := s.X()-cx, s.Y()-cy
		s.SetPosition(cx+dx*cos-dy*sin, cy+dx*sin+dy*cos)
	}
}

func (g *Group) Snap(o *Sprite, dist ...float64) {
	for _, s := range g.sprites {
		s.Snap(o, dist...)
	}
}

func (g *Group) ApplyForce(fx, fy float64) {
	for _, s := range g.sprites {
		s.ApplyForce(fx, fy)
	}
}

// Update runs a manual update on every member.
func (g *Group) Update() {
	for _, s := range g.Sprites() {
		s.Update()
	}
}

// Draw draws every visible member, lowest layer first.
func (g *Group) Draw(screen *ebiten.Image) {
	for _, s := range sortByLayer(g.Sprites()) {
		s.Draw(screen)
	}
}

// setDefault records a default and pushes it to current members.
func (g *Group) setDefault(f field, fn func(sd *components.SpriteData), each func(s *Sprite)) {
	fn(&g.defaults.data)
	g.defaults.set(f)
	for _, s := range g.sprites {
		each(s)
	}
}

func (g *Group) SetX(x float64) {
	g.setDefault(fieldX, func(sd *components.SpriteData) { sd.X = x }, func(s *Sprite) { s.SetX(x) })
}

func (g *Group) SetY(y float64) {
	g.setDefault(fieldY, func(sd *components.SpriteData) { sd.Y = y }, func(s *Sprite) { s.SetY(y) })
}

func (g *Group) SetWidth(w float64) {
	g.setDefault(fieldW, func(sd *components.SpriteData) { sd.W = w }, func(s *Sprite) { s.SetWidth(w) })
}

func (g *Group) SetHeight(h float64) {
	g.setDefault(fieldH, func(sd *components.SpriteData) { sd.H = h }, func(s *Sprite) { s.SetHeight(h) })
}

func (g *Group) SetVelocity(x, y float64) {
	g.setDefault(fieldVel, func(sd *components.SpriteData) { sd.VelX, sd.VelY = x, y }, func(s *Sprite) { s.SetVelocity(x, y) })
}

func (g *Group) SetRotation(deg float64) {
	g.setDefault(fieldRotation, func(sd *components.SpriteData) { sd.Rotation = deg }, func(s *Sprite) { s.SetRotation(deg) })
}

func (g *Group) SetRotationSpeed(deg float64) {
	g.setDefault(fieldRotationSpeed, func(sd *components.SpriteData) { sd.RotationSpeed = deg }, func(s *Sprite) { s.SetRotationSpeed(deg) })
}

func (g *Group) SetRotationLock(lock bool) {
	g.setDefault(fieldRotationLock, func(sd *components.SpriteData) { sd.RotationLock = lock }, func(s *Sprite) { s.SetRotationLock(lock) })
}

func (g *Group) SetCollider(t physics.ColliderType) {
	g.setDefault(fieldCollider, func(sd *components.SpriteData) { sd.Collider = t }, func(s *Sprite) { s.SetCollider(t) })
}

func (g *Group) SetLayer(layer int) {
	g.setDefault(fieldLayer, func(sd *components.SpriteData) { sd.Layer = layer }, func(s *Sprite) { s.SetLayer(layer) })
}

func (g *Group) SetVisible(v bool) {
	g.setDefault(fieldVisible, func(sd *components.SpriteData) { sd.Visible = v }, func(s *Sprite) { s.SetVisible(v) })
}

func (g *Group) SetColor(c color.Color) {
	rgba := toRGBA(c)
	g.setDefault(fieldColor, func(sd *components.SpriteData) { sd.Color = rgba }, func(s *Sprite) { s.SetColor(rgba) })
}

func (g *Group) SetStroke(c color.Color) {
	rgba := toRGBA(c)
	g.setDefault(fieldStroke, func(sd *components.SpriteData) { sd.Stroke = rgba }, func(s *Sprite) { s.SetStroke(rgba) })
}

func (g *Group) SetStrokeWeight(w float64) {
	g.setDefault(fieldStrokeWeight, func(sd *components.SpriteData) { sd.StrokeWeight = w }, func(s *Sprite) { s.SetStrokeWeight(w) })
}

func (g *Group) SetText(t string) {
	g.setDefault(fieldText, func(sd *components.SpriteData) { sd.Text = t }, func(s *Sprite) { s.SetText(t) })
}

func (g *Group) SetTextColor(c color.Color) {
	rgba := toRGBA(c)
	g.setDefault(fieldTextColor, func(sd *components.SpriteData) { sd.TextColor = rgba }, func(s *Sprite) { s.SetTextColor(rgba) })
}

func (g *Group) SetTextSize(size float64) {
	g.setDefault(fieldTextSize, func(sd *components.SpriteData) { sd.TextSize = size }, func(s *Sprite) { s.SetTextSize(size) })
}

func (g *Group) SetLife(frames int) {
	g.setDefault(fieldLife, func(sd *components.SpriteData) { sd.Life = frames }, func(s *Sprite) { s.SetLife(frames) })
}

func (g *Group) SetScale(x, y float64) {
	g.setDefault(fieldScale, func(sd *components.SpriteData) { sd.ScaleX, sd.ScaleY = x, y }, func(s *Sprite) { s.SetScale(x, y) })
}

func (g *Group) SetMirror(x, y bool) {
	g.setDefault(fieldMirror, func(sd *components.SpriteData) { sd.MirrorX, sd.MirrorY = x, y }, func(s *Sprite) { s.SetMirror(x, y) })
}

func (g *Group) SetOffset(x, y float64) {
	g.setDefault(fieldOffset, func(sd *components.SpriteData) { sd.OffsetX, sd.OffsetY = x, y }, func(s *Sprite) { s.SetOffset(x, y) })
}

func (g *Group) SetDebug(on bool) {
	g.setDefault(fieldDebug, func(sd *components.SpriteData) { sd.Debug = on }, func(s *Sprite) { s.SetDebug(on) })
}

// SetTile sets the map character that makes NewTiles create sprites in g.
// It does not touch existing members.
func (g *Group) SetTile(tile string) {
	g.setDefault(fieldTile, func(sd *components.SpriteData) { sd.Tile = tile }, func(*Sprite) {})
}

// Tile returns the map character set with SetTile.
func (g *Group) Tile() (string, bool) {
	return g.defaults.data.Tile, g.defaults.has(fieldTile)
}

// AddAnimation gives every sprite later created in g (or its subgroups)
// its own copy of ani under label.
func (g *Group) AddAnimation(label string, ani *animations.SpriteAnimation) {
	if g.defaults.anis == nil {
		g.defaults.anis = animations.Animations{}
	}
	if _, ok := g.defaults.anis[label]; !ok {
		g.aniOrder = append(g.aniOrder, label)
	}
	g.defaults.anis[label] = ani
}
