package physics

import (
	"testing"

	"github.com/automoto/spriteplay/config"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jointWorld has a static anchor at 0,0 and a dynamic box at 100,0 under
// gravity.
func jointWorld(t *testing.T) (*World, *cp.Body, *cp.Body) {
	t.Helper()
	w := NewWorld(config.Physics)
	w.SetGravity(0, 500)
	anchor := w.AddBody(1, Static, 0, 0, 0)
	w.AddShape(anchor, ShapeInfo{Kind: Box, W: 10, H: 10})
	weight := w.AddBody(2, Dynamic, 100, 0, 0)
	w.AddShape(weight, ShapeInfo{Kind: Box, W: 10, H: 10})
	return w, anchor, weight
}

func steps(w *World, n int) {
	for i := 0; i < n; i++ {
		w.Step(0)
	}
}

func TestDistanceJointKeepsLength(t *testing.T) {
	w, anchor, weight := jointWorld(t)
	j := w.AddJoint(Distance, anchor, weight, JointOptions{})
	require.Len(t, j.Constraints, 1)

	steps(w, 60)
	assert.Greater(t, weight.Position().Y, 10.0, "the weight swings down")
	assert.InDelta(t, 100, weight.Position().Length(), 2)
}

func TestHingeSwingsAroundPivot(t *testing.T) {
	w, anchor, weight := jointWorld(t)
	w.AddJoint(Hinge, anchor, weight, JointOptions{})

	steps(w, 60)
	assert.Greater(t, weight.Position().Y, 10.0)
	assert.InDelta(t, 100, weight.Position().Length(), 2)
}

func TestRopeOnlyLimitsLength(t *testing.T) {
	w, anchor, weight := jointWorld(t)
	w.AddJoint(Rope, anchor, weight, JointOptions{MaxLength: 150})

	steps(w, 120)
	d := weight.Position().Length()
	assert.Greater(t, d, 100.0, "slack rope lets the weight fall")
	assert.Less(t, d, 153.0)
}

func TestGlueMovesBodiesTogether(t *testing.T) {
	w := NewWorld(config.Physics)
	a := w.AddBody(1, Dynamic, 0, 0, 0)
	w.AddShape(a, ShapeInfo{Kind: Box, W: 10, H: 10})
	b := w.AddBody(2, Dynamic, 20, 0, 0)
	w.AddShape(b, ShapeInfo{Kind: Box, W: 10, H: 10})
	j := w.AddJoint(Glue, a, b, JointOptions{})
	require.Len(t, j.Constraints, 2)

	a.SetVelocity(120, 0)
	a.SetAngularVelocity(1)
	steps(w, 30)

	assert.Greater(t, a.Position().X, 10.0)
	assert.InDelta(t, 20, b.Position().Distance(a.Position()), 1)
	assert.InDelta(t, a.Angle(), b.Angle(), 0.05)
}

func TestSliderKeepsToItsAxis(t *testing.T) {
	w, anchor, weight := jointWorld(t)
	w.AddJoint(Slider, anchor, weight, JointOptions{Range: 50})

	weight.SetVelocity(600, 0)
	steps(w, 60)

	assert.InDelta(t, 0, weight.Position().Y, 1, "gravity cannot pull it off the axis")
	assert.InDelta(t, 150, weight.Position().X, 2, "it stops at the end of its range")
	assert.InDelta(t, 0, weight.Angle(), 0.05)
}

func TestWheelHangsOnItsSpring(t *testing.T) {
	w, anchor, weight := jointWorld(t)
	j := w.AddJoint(Wheel, anchor, weight, JointOptions{Axis: 90, Range: 40})
	require.Len(t, j.Constraints, 2)

	steps(w, 120)
	assert.InDelta(t, 100, weight.Position().X, 1)
	assert.Greater(t, weight.Position().Y, 0.0)
	assert.LessOrEqual(t, weight.Position().Y, 41.0)
}

func TestRemoveBodyRemovesItsJoints(t *testing.T) {
	w, anchor, weight := jointWorld(t)
	j := w.AddJoint(Distance, anchor, weight, JointOptions{})
	assert.Equal(t, []*Joint{j}, w.JointsOf(anchor))

	w.RemoveBody(weight)
	assert.True(t, j.Removed())
	assert.Empty(t, w.JointsOf(anchor))
	assert.False(t, w.Space.ContainsConstraint(j.Constraints[0]))

	// removing again is harmless
	w.RemoveJoint(j)
}

func TestParseJointType(t *testing.T) {
	for _, jt := range []JointType{Glue, Distance, Hinge, Rope, Slider, Wheel} {
		got, err := ParseJointType(jt.String())
		require.NoError(t, err)
		assert.Equal(t, jt, got)
	}
	_, err := ParseJointType("weld")
	assert.Error(t, err)
}
