package play

import (
	"testing"

	"github.com/automoto/spriteplay/components"
	cfg "github.com/automoto/spriteplay/config"
	"github.com/automoto/spriteplay/physics"
	"github.com/automoto/spriteplay/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInput is an InputSource driven by the test.
type fakeInput struct {
	names []string
	down  map[string]bool
	x, y  float64
}

func newFakeInput(names ...string) *fakeInput {
	return &fakeInput{names: names, down: make(map[string]bool)}
}

func (f *fakeInput) Names() []string            { return f.names }
func (f *fakeInput) Down(name string) bool      { return f.down[name] }
func (f *fakeInput) Cursor() (float64, float64) { return f.x, f.y }

// fakePads is a GamepadHub whose pads the test plugs in and out.
type fakePads struct {
	ids  []int
	pads map[int]*fakeInput
}

func newFakePads() *fakePads {
	return &fakePads{pads: make(map[int]*fakeInput)}
}

func (f *fakePads) Connected() []int { return f.ids }

func (f *fakePads) Source(id int) components.InputSource { return f.pads[id] }

func (f *fakePads) plug(id int) *fakeInput {
	pad := newFakeInput("a", "start")
	f.pads[id] = pad
	f.ids = append(f.ids, id)
	return pad
}

func (f *fakePads) unplug(id int) {
	for i, other := range f.ids {
		if other == id {
			f.ids = append(f.ids[:i:i], f.ids[i+1:]...)
			return
		}
	}
}

func newTestP(t *testing.T) (*P, *fakeInput, *fakeInput) {
	t.Helper()
	kb := newFakeInput("a", "space")
	mouse := newFakeInput("left", "right")
	p := New(render.CreateCanvas(cfg.Canvas.Width, cfg.Canvas.Height), WithKeyboard(kb), WithMouse(mouse), WithGamepads(newFakePads()))
	require.NoError(t, p.Install(physics.NewWorld(cfg.Physics)))
	return p, kb, mouse
}

func frame(p *P, n ...int) {
	count := 1
	if len(n) > 0 {
		count = n[0]
	}
	for i := 0; i < count; i++ {
		p.BeginFrame()
		p.EndFrame()
	}
}

func TestNewSpriteNeedsWorld(t *testing.T) {
	p := New(render.CreateCanvas(600, 500), WithKeyboard(newFakeInput()), WithMouse(newFakeInput()), WithGamepads(newFakePads()))

	_, err := p.NewSprite()
	assert.ErrorIs(t, err, ErrNoWorld)
	assert.Nil(t, p.World())
	assert.False(t, p.Installed())

	_, err = p.NewGroup().NewSprite(1, 2)
	assert.ErrorIs(t, err, ErrNoWorld)

	_, err = p.NewTiles([]string{"x"}, 0, 0, 10, 10)
	assert.ErrorIs(t, err, ErrNoWorld)
}

func TestInstallNeedsCanvas(t *testing.T) {
	p := New(nil, WithKeyboard(newFakeInput()), WithMouse(newFakeInput()), WithGamepads(newFakePads()))
	assert.ErrorIs(t, p.Install(physics.NewWorld(cfg.Physics)), ErrNoCanvas)

	p.CreateCanvas(200, 100)
	require.NoError(t, p.Install(physics.NewWorld(cfg.Physics)))
	assert.True(t, p.Installed())
}

func TestInstallTwiceKeepsFirstWorld(t *testing.T) {
	p, _, _ := newTestP(t)
	first := p.World().Physics()

	require.NoError(t, p.Install(physics.NewWorld(cfg.Physics)))
	assert.Same(t, first, p.World().Physics())
}

func TestCreateCanvasRecentersCamera(t *testing.T) {
	p, _, _ := newTestP(t)
	c := p.CreateCanvas(800, 200)
	c.SetParent("app")

	assert.Equal(t, 800, p.Canvas().Width)
	assert.Equal(t, "app", p.Canvas().Parent)
	assert.Equal(t, 400.0, p.Camera().X())
	assert.Equal(t, 100.0, p.Camera().Y())
}

func TestAutoStepOncePerFrame(t *testing.T) {
	p, _, _ := newTestP(t)
	w := p.World()

	frame(p)
	assert.Equal(t, 1, w.Physics().Steps())

	// stepping by hand suppresses the automatic step
	p.BeginFrame()
	w.Step()
	p.EndFrame()
	assert.Equal(t, 2, w.Physics().Steps())

	w.SetAutoStep(false)
	frame(p)
	assert.Equal(t, 2, w.Physics().Steps())
	assert.Equal(t, 3, p.FrameCount())
}

func TestBeginFrameClearsDisplayList(t *testing.T) {
	p, _, _ := newTestP(t)
	require.NoError(t, p.Canvas().Background(0))
	require.Len(t, p.Canvas().Commands(), 1)

	p.BeginFrame()
	assert.Empty(t, p.Canvas().Commands())
	p.EndFrame()
}

func TestDelay(t *testing.T) {
	p, _, _ := newTestP(t)

	done := p.Delay(2)
	frame(p)
	select {
	case <-done:
		t.Fatal("delay resolved early")
	default:
	}

	frame(p)
	select {
	case <-done:
	default:
		t.Fatal("delay did not resolve")
	}

	select {
	case <-p.Delay(0):
	default:
		t.Fatal("zero delay should resolve at once")
	}
}
