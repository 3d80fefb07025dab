package play

import (
	"errors"
	"fmt"

	"github.com/automoto/spriteplay/physics"
)

// ErrNoBody is returned when a joint is asked of a sprite without a
// collider.
var ErrNoBody = errors.New("play: sprite has no collider")

// Joint ties two sprites' bodies together until either loses its body.
type Joint struct {
	p     *P
	joint *physics.Joint
	a, b  *Sprite
}

func (j *Joint) Type() physics.JointType {
	return j.joint.Type
}

func (j *Joint) SpriteA() *Sprite {
	return j.a
}

func (j *Joint) SpriteB() *Sprite {
	return j.b
}

// Removed reports whether the joint was removed, directly or with one of
// its sprites' bodies.
func (j *Joint) Removed() bool {
	return j.joint.Removed()
}

func (j *Joint) Remove() {
	j.p.world.Physics.RemoveJoint(j.joint)
}

// AddJoint ties other to s. Anchors in opt are offsets from each sprite's
// center. Removing either sprite or setting its collider to None removes
// the joint.
func (s *Sprite) AddJoint(other *Sprite, kind physics.JointType, opt ...physics.JointOptions) (*Joint, error) {
	if other == nil || other == s {
		return nil, fmt.Errorf("add %s joint: %w", kind, ErrBadArgs)
	}
	a, okA := s.physical()
	b, okB := other.physical()
	if !okA || !okB {
		return nil, fmt.Errorf("add %s joint: %w", kind, ErrNoBody)
	}

	var o physics.JointOptions
	if len(opt) > 0 {
		o = opt[0]
	}
	joint := s.phys().AddJoint(kind, a, b, o)
	return &Joint{p: s.p, joint: joint, a: s, b: other}, nil
}

// Joints returns the joints the sprite takes part in, oldest first.
func (s *Sprite) Joints() []*Joint {
	body, ok := s.physical()
	if !ok {
		return nil
	}
	var out []*Joint
	for _, joint := range s.phys().JointsOf(body) {
		a, okA := s.p.spriteOf(joint.A.UserData)
		b, okB := s.p.spriteOf(joint.B.UserData)
		if okA && okB {
			out = append(out, &Joint{p: s.p, joint: joint, a: a, b: b})
		}
	}
	return out
}

func (p *P) spriteOf(data interface{}) (*Sprite, bool) {
	id, ok := data.(int)
	if !ok {
		return nil, false
	}
	return p.SpriteByID(id)
}
