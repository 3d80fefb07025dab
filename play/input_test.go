package play

import (
	"testing"

	cfg "github.com/automoto/spriteplay/config"
	"github.com/stretchr/testify/assert"
)

func TestKeyboardPressAndRelease(t *testing.T) {
	p, kb, _ := newTestP(t)
	keys := p.Keyboard()
	assert.Equal(t, "keyboard", keys.Name())

	kb.down["a"] = true
	frame(p)
	assert.True(t, keys.Presses("a"))
	assert.True(t, keys.Presses("A"))
	assert.Equal(t, 1, keys.Pressing("a"))

	frame(p)
	assert.False(t, keys.Presses("a"))
	assert.Equal(t, 2, keys.Pressing("a"))
	assert.Zero(t, keys.Holding("a"))

	kb.down["a"] = false
	frame(p)
	assert.True(t, keys.Pressed("a"))
	assert.True(t, keys.Released("a"))
	assert.False(t, keys.Held("a"))
	assert.Zero(t, keys.Pressing("a"))

	frame(p)
	assert.False(t, keys.Released("a"))
	assert.False(t, keys.Presses("space"))
}

func TestKeyboardHold(t *testing.T) {
	p, kb, _ := newTestP(t)
	keys := p.Keyboard()
	threshold := cfg.Input.HoldThreshold

	kb.down["space"] = true
	frame(p, threshold-1)
	assert.False(t, keys.Holds("space"))

	frame(p)
	assert.True(t, keys.Holds("space"))
	assert.Equal(t, threshold, keys.Holding("space"))

	frame(p)
	assert.False(t, keys.Holds("space"))
	assert.Equal(t, threshold+1, keys.Holding("space"))

	kb.down["space"] = false
	frame(p)
	assert.True(t, keys.Held("space"))
	assert.True(t, keys.Released("space"))
	assert.False(t, keys.Pressed("space"))
}

func TestMouseCursor(t *testing.T) {
	p, _, mouse := newTestP(t)
	mouse.x, mouse.y = 12, 34
	mouse.down["left"] = true
	frame(p)

	x, y := p.Mouse().Cursor()
	assert.Equal(t, 12.0, x)
	assert.Equal(t, 34.0, y)
	assert.True(t, p.Mouse().Presses("left"))
	assert.Equal(t, "mouse", p.Mouse().Name())
}
