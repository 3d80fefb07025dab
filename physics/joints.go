package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// JointType selects how a joint ties two bodies together.
type JointType int

const (
	// Glue fixes the bodies' relative position and rotation.
	Glue JointType = iota
	// Distance keeps the anchors at their starting distance, or pulls them
	// back to it like a spring when Stiffness is set.
	Distance
	// Hinge pins the bodies at one point and lets them turn around it.
	Hinge
	// Rope keeps the anchors no further apart than MaxLength.
	Rope
	// Slider lets B move along an axis fixed to A without turning.
	Slider
	// Wheel lets B spin freely on a sprung axle along an axis fixed to A.
	Wheel
)

func (j JointType) String() string {
	switch j {
	case Glue:
		return "glue"
	case Distance:
		return "distance"
	case Hinge:
		return "hinge"
	case Rope:
		return "rope"
	case Slider:
		return "slider"
	case Wheel:
		return "wheel"
	}
	return fmt.Sprintf("JointType(%d)", int(j))
}

func ParseJointType(s string) (JointType, error) {
	switch s {
	case "glue":
		return Glue, nil
	case "distance":
		return Distance, nil
	case "hinge":
		return Hinge, nil
	case "rope":
		return Rope, nil
	case "slider":
		return Slider, nil
	case "wheel":
		return Wheel, nil
	}
	return Glue, fmt.Errorf("unknown joint type %q", s)
}

// JointOptions tunes a joint. Anchors are offsets from each body's center
// in body coordinates; zero values fall back to the configured defaults.
type JointOptions struct {
	AnchorAX, AnchorAY float64
	AnchorBX, AnchorBY float64

	// Stiffness and Damping make distance joints springy and set the
	// wheel's suspension.
	Stiffness float64
	Damping   float64

	// MaxLength is the rope length. Zero uses the starting distance.
	MaxLength float64

	// Axis is the slider or wheel direction in degrees, relative to A.
	// Range is how far B may travel each way along it.
	Axis  float64
	Range float64

	// CollideConnected lets the joined bodies still collide.
	CollideConnected bool
}

// Joint is a set of constraints added to the space together.
type Joint struct {
	Type        JointType
	A, B        *cp.Body
	Constraints []*cp.Constraint
	removed     bool
}

func (j *Joint) Removed() bool {
	return j.removed
}

// AddJoint ties body b to body a. Anchors are fixed where they are when
// the joint is made.
func (w *World) AddJoint(t JointType, a, b *cp.Body, opt JointOptions) *Joint {
	anchorA := cp.Vector{X: opt.AnchorAX, Y: opt.AnchorAY}
	anchorB := cp.Vector{X: opt.AnchorBX, Y: opt.AnchorBY}
	pa, pb := a.LocalToWorld(anchorA), b.LocalToWorld(anchorB)

	stiffness, damping := opt.Stiffness, opt.Damping
	if stiffness <= 0 {
		stiffness = w.cfg.JointStiffness
	}
	if damping <= 0 {
		damping = w.cfg.JointDamping
	}

	j := &Joint{Type: t, A: a, B: b}
	switch t {
	case Glue:
		j.Constraints = []*cp.Constraint{
			cp.NewPivotJoint(a, b, pa.Lerp(pb, 0.5)),
			lockAngle(a, b),
		}
	case Distance:
		if opt.Stiffness > 0 {
			j.Constraints = []*cp.Constraint{
				cp.NewDampedSpring(a, b, anchorA, anchorB, pa.Distance(pb), stiffness, damping),
			}
		} else {
			j.Constraints = []*cp.Constraint{cp.NewPinJoint(a, b, anchorA, anchorB)}
		}
	case Hinge:
		j.Constraints = []*cp.Constraint{cp.NewPivotJoint(a, b, pa)}
	case Rope:
		length := opt.MaxLength
		if length <= 0 {
			length = pa.Distance(pb)
		}
		j.Constraints = []*cp.Constraint{cp.NewSlideJoint(a, b, anchorA, anchorB, 0, length)}
	case Slider, Wheel:
		reach := opt.Range
		if reach <= 0 {
			reach = w.cfg.SliderRange
		}
		rad := opt.Axis * math.Pi / 180
		dir := cp.Vector{X: math.Cos(rad), Y: math.Sin(rad)}
		// groove in A's frame through B's starting anchor
		mid := a.WorldToLocal(pb)
		start, end := mid.Sub(dir.Mult(reach)), mid.Add(dir.Mult(reach))
		j.Constraints = []*cp.Constraint{cp.NewGrooveJoint(a, b, start, end, anchorB)}
		if t == Slider {
			j.Constraints = append(j.Constraints, lockAngle(a, b))
		} else {
			j.Constraints = append(j.Constraints, cp.NewDampedSpring(a, b, start, anchorB, reach, stiffness, damping))
		}
	}

	for _, c := range j.Constraints {
		c.SetCollideBodies(opt.CollideConnected)
		w.Space.AddConstraint(c)
	}
	w.joints = append(w.joints, j)
	return j
}

func lockAngle(a, b *cp.Body) *cp.Constraint {
	offset := b.Angle() - a.Angle()
	return cp.NewRotaryLimitJoint(a, b, offset, offset)
}

// RemoveJoint takes the joint's constraints out of the space. Removing a
// joint twice does nothing.
func (w *World) RemoveJoint(j *Joint) {
	if j.removed {
		return
	}
	j.removed = true
	for _, c := range j.Constraints {
		if w.Space.ContainsConstraint(c) {
			w.Space.RemoveConstraint(c)
		}
	}
	for i, other := range w.joints {
		if other == j {
			w.joints = append(w.joints[:i], w.joints[i+1:]...)
			break
		}
	}
}

// JointsOf returns the joints body takes part in, oldest first.
func (w *World) JointsOf(body *cp.Body) []*Joint {
	var out []*Joint
	for _, j := range w.joints {
		if j.A == body || j.B == body {
			out = append(out, j)
		}
	}
	return out
}
