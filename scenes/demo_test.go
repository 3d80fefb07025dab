package scenes

import (
	"image/color"
	"testing"

	"github.com/automoto/spriteplay/components"
	cfg "github.com/automoto/spriteplay/config"
	"github.com/automoto/spriteplay/physics"
	"github.com/automoto/spriteplay/play"
	"github.com/automoto/spriteplay/render"
	"github.com/automoto/spriteplay/sketch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idleInput struct{}

func (idleInput) Names() []string            { return nil }
func (idleInput) Down(string) bool           { return false }
func (idleInput) Cursor() (float64, float64) { return 0, 0 }

type noPads struct{}

func (noPads) Connected() []int                   { return nil }
func (noPads) Source(int) components.InputSource { return idleInput{} }

func runDemo(t *testing.T, frames int) (*Demo, *play.P) {
	t.Helper()
	d := NewDemo()
	h, err := sketch.NewHost(d, play.WithKeyboard(idleInput{}), play.WithMouse(idleInput{}), play.WithGamepads(noPads{}))
	require.NoError(t, err)
	for i := 0; i < frames; i++ {
		require.NoError(t, h.Update())
	}
	return d, h.P()
}

func TestDemoCanvas(t *testing.T) {
	_, p := runDemo(t, 1)

	c := p.Canvas()
	assert.Equal(t, 600, c.Width)
	assert.Equal(t, 500, c.Height)
	assert.Equal(t, "app", c.Parent)
}

func TestDemoSprite(t *testing.T) {
	d, p := runDemo(t, 1)

	require.Equal(t, 1, p.AllSprites().Size())
	s := p.AllSprites().Get(0)
	assert.Same(t, d.Sprite, s)
	assert.Equal(t, 300.0, s.W())
	assert.Equal(t, 50.0, s.H())
	assert.InDelta(t, 1.0, s.Speed(), 1e-9)
	assert.InDelta(t, 275.0, s.Direction(), 1e-9)
}

func TestDemoSpeedIsImmediate(t *testing.T) {
	p := play.New(render.CreateCanvas(cfg.Canvas.Width, cfg.Canvas.Height),
		play.WithKeyboard(idleInput{}), play.WithMouse(idleInput{}), play.WithGamepads(noPads{}))
	require.NoError(t, p.Install(physics.NewWorld(cfg.Physics)))

	d := NewDemo()
	require.NoError(t, d.Setup(p))
	assert.InDelta(t, 1.0, d.Sprite.Speed(), 1e-12)
	assert.InDelta(t, 275.0, d.Sprite.Direction(), 1e-12)
	assert.Zero(t, p.FrameCount())
}

func TestDemoClearsBackgroundEveryFrame(t *testing.T) {
	h, err := sketch.NewHost(NewDemo(), play.WithKeyboard(idleInput{}), play.WithMouse(idleInput{}), play.WithGamepads(noPads{}))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, h.Update())

		// one background per frame, recorded fresh each time
		cmds := h.P().Canvas().Commands()
		require.Len(t, cmds, 1, "frame %d", i)
		assert.Equal(t, render.BackgroundCmd, cmds[0].Kind)
		assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, cmds[0].Fill, "frame %d", i)
	}
}

func TestDemoNeedsWorld(t *testing.T) {
	p := play.New(render.CreateCanvas(cfg.Canvas.Width, cfg.Canvas.Height),
		play.WithKeyboard(idleInput{}), play.WithMouse(idleInput{}), play.WithGamepads(noPads{}))

	err := NewDemo().Setup(p)
	assert.ErrorIs(t, err, play.ErrNoWorld)
}
