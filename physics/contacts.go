package physics

import "github.com/kamstrup/intmap"

// contact tracks how long two sprites have been touching.
//
// frames > 0 while touching, -1 on the frame after they separate.
type contact struct {
	frames int
	shapes int // shape pairs currently touching
	fresh  bool
}

// ContactTable records per-pair contact state keyed by the ids of the two
// sprites involved. Begin and End feed it events; Advance moves every pair
// one frame forward.
type ContactTable struct {
	pairs *intmap.Map[uint64, *contact]
	stale []uint64
}

// NewContactTable creates an empty table.
func NewContactTable() *ContactTable {
	return &ContactTable{
		pairs: intmap.New[uint64, *contact](64),
	}
}

func pairKey(a, b int) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(uint32(a))<<32 | uint64(uint32(b))
}

func splitKey(k uint64) (int, int) {
	return int(uint32(k >> 32)), int(uint32(k))
}

// Begin marks a and b as touching.
func (t *ContactTable) Begin(a, b int) {
	k := pairKey(a, b)
	c, ok := t.pairs.Get(k)
	if !ok {
		c = &contact{}
		t.pairs.Put(k, c)
	}
	if c.frames <= 0 && c.shapes == 0 {
		c.fresh = true
	}
	c.shapes++
}

// End marks one shape pair of a and b as no longer touching. The sprites
// stop touching once every Begin has been matched by an End.
func (t *ContactTable) End(a, b int) {
	if c, ok := t.pairs.Get(pairKey(a, b)); ok && c.shapes > 0 {
		c.shapes--
	}
}

// Expire ends every pair. Callers that rebuild the full set each frame
// call Expire, then Begin for every pair still touching, then Advance.
func (t *ContactTable) Expire() {
	t.pairs.ForEach(func(_ uint64, c *contact) bool {
		c.shapes = 0
		return true
	})
}

// Advance moves every pair forward one frame. A pair that began this
// frame reads 1 even if it also ended, so short contacts are never lost.
func (t *ContactTable) Advance() {
	t.stale = t.stale[:0]
	t.pairs.ForEach(func(k uint64, c *contact) bool {
		switch {
		case c.fresh:
			c.frames = 1
			c.fresh = false
		case c.shapes > 0:
			c.frames++
		case c.frames > 0:
			c.frames = -1
		default:
			t.stale = append(t.stale, k)
		}
		return true
	})
	for _, k := range t.stale {
		t.pairs.Del(k)
	}
}

// State returns the number of frames a and b have been touching, -1 if
// they separated last frame, or 0.
func (t *ContactTable) State(a, b int) int {
	if c, ok := t.pairs.Get(pairKey(a, b)); ok {
		return c.frames
	}
	return 0
}

// Forget drops every pair involving id.
func (t *ContactTable) Forget(id int) {
	t.stale = t.stale[:0]
	t.pairs.ForEach(func(k uint64, _ *contact) bool {
		if a, b := splitKey(k); a == id || b == id {
			t.stale = append(t.stale, k)
		}
		return true
	})
	for _, k := range t.stale {
		t.pairs.Del(k)
	}
}

// Each calls fn for every pair with a non-zero state.
func (t *ContactTable) Each(fn func(a, b, frames int)) {
	t.pairs.ForEach(func(k uint64, c *contact) bool {
		if c.frames != 0 {
			a, b := splitKey(k)
			fn(a, b, c.frames)
		}
		return true
	})
}

// Len returns the number of tracked pairs.
func (t *ContactTable) Len() int {
	return t.pairs.Len()
}
