package play

// Target is something a sprite can touch: a Sprite or a Group.
type Target interface {
	spriteIDs() []int
	hasID(id int) bool
}

func (s *Sprite) spriteIDs() []int {
	if s.removed {
		return nil
	}
	return []int{s.id}
}

func (s *Sprite) hasID(id int) bool {
	return !s.removed && s.id == id
}

func (g *Group) spriteIDs() []int {
	ids := make([]int, len(g.sprites))
	for i, s := range g.sprites {
		ids[i] = s.id
	}
	return ids
}

func (g *Group) hasID(id int) bool {
	return g.members[id]
}

type contactKind int

const (
	collides contactKind = iota
	colliding
	collided
	overlaps
	overlapping
	overlapped
)

func (k contactKind) overlap() bool {
	return k >= overlaps
}

func (k contactKind) match(state int) bool {
	switch k {
	case collides, overlaps:
		return state == 1
	case colliding, overlapping:
		return state > 0
	}
	return state == -1
}

// Callback receives the sprite the query was made on and the sprite it
// touched.
type Callback func(a, b *Sprite)

type watcher struct {
	self   Target
	target Target
	kind   contactKind
	cb     Callback
}

type overlapRule struct {
	a, b Target
}

// pairState is the contact state of sprites a and b: frames touching,
// -1 the frame after they separated, 0 otherwise.
func (p *P) pairState(a, b int, overlap bool) int {
	if p.world == nil || a == b {
		return 0
	}
	if !overlap {
		return p.world.Physics.Contacts.State(a, b)
	}
	return combineStates(p.world.Overlaps.State(a, b), p.world.Physics.Sensors.State(a, b))
}

// combineStates keeps the longest contact, or the separation if neither
// is touching.
func combineStates(states ...int) int {
	best := 0
	for _, st := range states {
		switch {
		case st > best:
			best = st
		case st == -1 && best == 0:
			best = -1
		}
	}
	return best
}

// state answers kind for every pair between self and target: 1 or -1 if
// any pair started or ended touching, the longest contact otherwise.
func (p *P) state(self, target Target, kind contactKind) int {
	best := 0
	for _, a := range self.spriteIDs() {
		for _, b := range target.spriteIDs() {
			st := p.pairState(a, b, kind.overlap())
			switch kind {
			case collides, overlaps:
				if st == 1 {
					return 1
				}
			case collided, overlapped:
				if st == -1 {
					return -1
				}
			default:
				best = max(best, st)
			}
		}
	}
	return best
}

// query answers a contact question and, when cb is given, keeps it as a
// callback fired every frame the answer is true.
func (p *P) query(self, target Target, kind contactKind, cb []Callback) int {
	if kind.overlap() {
		p.addOverlapRule(self, target)
	}
	if len(cb) > 0 && cb[0] != nil {
		p.watch(self, target, kind, cb[0])
	}
	return p.state(self, target, kind)
}

func (p *P) watch(self, target Target, kind contactKind, cb Callback) {
	for _, w := range p.watchers {
		if w.self == self && w.target == target && w.kind == kind {
			w.cb = cb
			return
		}
	}
	p.watchers = append(p.watchers, &watcher{self: self, target: target, kind: kind, cb: cb})
}

func (p *P) runWatchers() {
	for _, w := range append([]*watcher(nil), p.watchers...) {
		for _, a := range w.self.spriteIDs() {
			for _, b := range w.target.spriteIDs() {
				if !w.kind.match(p.pairState(a, b, w.kind.overlap())) {
					continue
				}
				sa, okA := p.sprites[a]
				sb, okB := p.sprites[b]
				if okA && okB {
					w.cb(sa, sb)
				}
			}
		}
	}
}

func (p *P) dropWatchers(s *Sprite) {
	kept := p.watchers[:0]
	for _, w := range p.watchers {
		if w.self == Target(s) || w.target == Target(s) {
			continue
		}
		kept = append(kept, w)
	}
	p.watchers = kept

	rules := p.rules[:0]
	for _, r := range p.rules {
		if r.a == Target(s) || r.b == Target(s) {
			continue
		}
		rules = append(rules, r)
	}
	p.rules = rules
}

// addOverlapRule makes members of a and b pass through each other from
// now on, including sprites that join either group later.
func (p *P) addOverlapRule(a, b Target) {
	for _, r := range p.rules {
		if (r.a == a && r.b == b) || (r.a == b && r.b == a) {
			return
		}
	}
	p.rules = append(p.rules, overlapRule{a: a, b: b})
}

// passes is the physics world's pass-through filter.
func (p *P) passes(a, b int) bool {
	for _, r := range p.rules {
		if (r.a.hasID(a) && r.b.hasID(b)) || (r.a.hasID(b) && r.b.hasID(a)) {
			return true
		}
	}
	return false
}

// Collides reports whether the sprite started touching target this frame.
func (s *Sprite) Collides(target Target, cb ...Callback) bool {
	return s.p.query(s, target, collides, cb) == 1
}

// Colliding returns how many frames the sprite has been touching target.
func (s *Sprite) Colliding(target Target, cb ...Callback) int {
	return max(s.p.query(s, target, colliding, cb), 0)
}

// Collided reports whether the sprite stopped touching target this frame.
func (s *Sprite) Collided(target Target, cb ...Callback) bool {
	return s.p.query(s, target, collided, cb) == -1
}

// Overlaps reports whether the sprite started overlapping target this
// frame. From the first call on the two pass through each other.
func (s *Sprite) Overlaps(target Target, cb ...Callback) bool {
	return s.p.query(s, target, overlaps, cb) == 1
}

func (s *Sprite) Overlapping(target Target, cb ...Callback) int {
	return max(s.p.query(s, target, overlapping, cb), 0)
}

func (s *Sprite) Overlapped(target Target, cb ...Callback) bool {
	return s.p.query(s, target, overlapped, cb) == -1
}

func (g *Group) Collides(target Target, cb ...Callback) bool {
	return g.p.query(g, target, collides, cb) == 1
}

func (g *Group) Colliding(target Target, cb ...Callback) int {
	return max(g.p.query(g, target, colliding, cb), 0)
}

func (g *Group) Collided(target Target, cb ...Callback) bool {
	return g.p.query(g, target, collided, cb) == -1
}

func (g *Group) Overlaps(target Target, cb ...Callback) bool {
	return g.p.query(g, target, overlaps, cb) == 1
}

func (g *Group) Overlapping(target Target, cb ...Callback) int {
	return max(g.p.query(g, target, overlapping, cb), 0)
}

func (g *Group) Overlapped(target Target, cb ...Callback) bool {
	return g.p.query(g, target, overlapped, cb) == -1
}
