package physics

import (
	"testing"

	"github.com/automoto/spriteplay/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorldDefaults(t *testing.T) {
	w := NewWorld(config.Physics)

	assert.True(t, w.AutoStep)
	gx, gy := w.Gravity()
	assert.Equal(t, config.Physics.GravityX, gx)
	assert.Equal(t, config.Physics.GravityY, gy)

	w.SetGravity(0, 10)
	_, gy = w.Gravity()
	assert.Equal(t, 10.0, gy)
}

func TestStepMovesDynamicBody(t *testing.T) {
	w := NewWorld(config.Physics)
	body := w.AddBody(1000, Dynamic, 100, 100, 0)
	require.NotNil(t, body)
	w.AddShape(body, ShapeInfo{Kind: Box, W: 50, H: 50})

	// one pixel per frame
	body.SetVelocity(w.VelocityScale(), 0)
	w.Step(0)

	assert.InDelta(t, 101, body.Position().X, 1e-6)
	assert.InDelta(t, 100, body.Position().Y, 1e-6)
	assert.Equal(t, 1, w.Steps())
}

func TestNoneHasNoBody(t *testing.T) {
	w := NewWorld(config.Physics)
	assert.Nil(t, w.AddBody(1, None, 0, 0, 0))
}

func TestCollisionIsRecorded(t *testing.T) {
	w := NewWorld(config.Physics)

	mover := w.AddBody(1, Dynamic, 0, 0, 0)
	w.AddShape(mover, ShapeInfo{Kind: Box, W: 50, H: 50})
	wall := w.AddBody(2, Static, 100, 0, 0)
	w.AddShape(wall, ShapeInfo{Kind: Box, W: 50, H: 50})

	mover.SetVelocity(5*w.VelocityScale(), 0)

	touched := false
	for i := 0; i < 60 && !touched; i++ {
		w.Step(0)
		touched = w.Contacts.State(1, 2) > 0
	}
	assert.True(t, touched, "mover never reached the wall")
	assert.Equal(t, 0, w.Sensors.State(1, 2))
}

func TestPassThroughIgnoresCollision(t *testing.T) {
	w := NewWorld(config.Physics)

	mover := w.AddBody(1, Dynamic, 0, 0, 0)
	w.AddShape(mover, ShapeInfo{Kind: Circle, W: 20})
	wall := w.AddBody(2, Static, 60, 0, 0)
	w.AddShape(wall, ShapeInfo{Kind: Box, W: 20, H: 200})
	w.PassThrough(1, 2, true)
	assert.True(t, w.Passes(2, 1))

	mover.SetVelocity(5*w.VelocityScale(), 0)
	for i := 0; i < 40; i++ {
		w.Step(0)
	}

	assert.Greater(t, mover.Position().X, 100.0, "mover should have passed the wall")
	assert.Equal(t, 0, w.Contacts.State(1, 2))
}

func TestRemoveBodyForgetsContacts(t *testing.T) {
	w := NewWorld(config.Physics)
	a := w.AddBody(1, Dynamic, 0, 0, 0)
	w.AddShape(a, ShapeInfo{Kind: Box, W: 50, H: 50})
	b := w.AddBody(2, Static, 0, 40, 0)
	w.AddShape(b, ShapeInfo{Kind: Box, W: 50, H: 50})

	w.Step(0)
	w.RemoveBody(a)

	assert.Equal(t, 0, w.Contacts.State(1, 2))
	_, ok := w.ShapeInfo(nil)
	assert.False(t, ok)
}

func TestParseColliderType(t *testing.T) {
	tests := []struct {
		in   string
		want ColliderType
	}{
		{"dynamic", Dynamic},
		{"s", Static},
		{"kinematic", Kinematic},
		{"n", None},
	}
	for _, tt := range tests {
		got, err := ParseColliderType(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.NotEmpty(t, got.String())
	}

	_, err := ParseColliderType("bouncy")
	assert.Error(t, err)
}

func TestFilterPassesPairs(t *testing.T) {
	w := NewWorld(config.Physics)
	w.Filter = func(a, b int) bool { return a+b == 3 }

	assert.True(t, w.Passes(1, 2))
	assert.False(t, w.Passes(1, 3))
}

func TestPointQuery(t *testing.T) {
	w := NewWorld(config.Physics)
	a := w.AddBody(7, Static, 0, 0, 0)
	w.AddBox(a, 0, 0, 20, 20, false)
	b := w.AddBody(3, Static, 5, 0, 0)
	w.AddCircle(b, 0, 0, 20, true)

	assert.Equal(t, []int{3, 7}, w.PointQuery(4, 0))
	assert.Equal(t, []int{7}, w.PointQuery(-8, 8))
	assert.Empty(t, w.PointQuery(100, 100))
}
