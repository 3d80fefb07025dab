package play

import (
	"sort"

	"github.com/automoto/spriteplay/components"
	"github.com/automoto/spriteplay/physics"
	"github.com/automoto/spriteplay/systems"
	"github.com/automoto/spriteplay/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// World is the sketch-facing view of the installed physics world.
type World struct {
	p *P
}

// Physics returns the underlying simulation.
func (w *World) Physics() *physics.World {
	return w.p.world.Physics
}

func (w *World) Gravity() (float64, float64) {
	return w.Physics().Gravity()
}

// SetGravity sets gravity in pixels per second squared.
func (w *World) SetGravity(x, y float64) {
	w.Physics().SetGravity(x, y)
}

func (w *World) AutoStep() bool {
	return w.Physics().AutoStep
}

// SetAutoStep turns the host's per-frame step on or off.
func (w *World) SetAutoStep(on bool) {
	w.Physics().AutoStep = on
}

// Step advances the simulation by dt seconds, or one frame without dt.
// Stepping during a frame stops the host from stepping again.
func (w *World) Step(dt ...float64) {
	if len(dt) > 0 {
		w.Physics().Step(dt[0])
		return
	}
	w.Physics().Step(0)
}

// GetSpritesAt returns the sprites under x, y, topmost layer first,
// optionally limited to one group.
func (w *World) GetSpritesAt(x, y float64, group ...*Group) []*Sprite {
	p := w.p
	seen := make(map[int]bool)
	var found []*Sprite
	add := func(id int) {
		if seen[id] {
			return
		}
		seen[id] = true
		s, ok := p.sprites[id]
		if !ok || (len(group) > 0 && !group[0].Contains(s)) {
			return
		}
		found = append(found, s)
	}

	// main outlines through the overlap space
	off := p.world.OverlapOffset
	point := resolv.NewObject(x+off, y+off, 1, 1, tags.ResolvPoint)
	p.world.Overlap.Add(point)
	check := point.Check(0, 0, tags.ResolvSprite)
	p.world.Overlap.Remove(point)
	if check != nil {
		for _, obj := range check.Objects {
			e, ok := obj.Data.(*donburi.Entry)
			if !ok || !e.Valid() {
				continue
			}
			sd := components.Sprite.Get(e)
			if systems.Outline(sd).Contains(x, y) {
				add(sd.ID)
			}
		}
	}
	// extra colliders and sensors
	for _, id := range p.world.Physics.PointQuery(x, y) {
		add(id)
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].Layer() != found[j].Layer() {
			return found[i].Layer() > found[j].Layer()
		}
		return found[i].id > found[j].id
	})
	return found
}

// MouseSprites returns the sprites under the mouse, topmost first.
func (w *World) MouseSprites() []*Sprite {
	return w.GetSpritesAt(w.p.camera.Mouse())
}

func (w *World) MouseSprite() *Sprite {
	return w.GetSpriteAt(w.p.camera.Mouse())
}

// GetSpriteAt returns the topmost sprite under x, y, or nil.
func (w *World) GetSpriteAt(x, y float64, group ...*Group) *Sprite {
	if found := w.GetSpritesAt(x, y, group...); len(found) > 0 {
		return found[0]
	}
	return nil
}
