package sketch

import (
	"errors"
	"testing"

	"github.com/automoto/spriteplay/components"
	"github.com/automoto/spriteplay/play"
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

func newTestHost(t *testing.T, s Sketch) *Host {
	t.Helper()
	h, err := NewHost(s, play.WithKeyboard(idleInput{}), play.WithMouse(idleInput{}), play.WithGamepads(noPads{}))
	require.NoError(t, err)
	return h
}

type recorder struct {
	calls    []string
	setupErr error
	drawErr  error
}

func (r *recorder) Setup(p *play.P) error {
	r.calls = append(r.calls, "setup")
	return r.setupErr
}

func (r *recorder) Draw(p *play.P) error {
	r.calls = append(r.calls, "draw")
	return r.drawErr
}

func TestSetupRunsOnceBeforeDraw(t *testing.T) {
	r := &recorder{}
	h := newTestHost(t, r)

	for i := 0; i < 3; i++ {
		require.NoError(t, h.Update())
	}
	assert.Equal(t, []string{"setup", "draw", "draw", "draw"}, r.calls)
	assert.Equal(t, 3, h.P().FrameCount())
	assert.Equal(t, 3, h.P().World().Physics().Steps())
}

func TestSetupErrorStopsLoop(t *testing.T) {
	boom := errors.New("boom")
	r := &recorder{setupErr: boom}
	h := newTestHost(t, r)

	assert.ErrorIs(t, h.Update(), boom)
	assert.ErrorIs(t, h.Update(), boom)
	assert.Equal(t, []string{"setup"}, r.calls)
	assert.Zero(t, h.P().FrameCount())
}

func TestDrawErrorStopsLoop(t *testing.T) {
	boom := errors.New("boom")
	r := &recorder{}
	h := newTestHost(t, r)
	require.NoError(t, h.Update())

	r.drawErr = boom
	assert.ErrorIs(t, h.Update(), boom)
	assert.ErrorIs(t, h.Update(), boom)
	assert.Equal(t, []string{"setup", "draw", "draw"}, r.calls)
}

func TestSketchStepsWorldItself(t *testing.T) {
	h := newTestHost(t, sketchFunc(func(p *play.P) error {
		p.World().Step()
		return nil
	}))

	require.NoError(t, h.Update())
	require.NoError(t, h.Update())
	assert.Equal(t, 2, h.P().World().Physics().Steps())
}

func TestLayoutUsesCanvasSize(t *testing.T) {
	h := newTestHost(t, &recorder{})
	h.P().CreateCanvas(320, 240)

	w, ht := h.Layout(1920, 1080)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, ht)
}

// sketchFunc is a sketch with an empty setup.
type sketchFunc func(p *play.P) error

func (f sketchFunc) Setup(*play.P) error    { return nil }
func (f sketchFunc) Draw(p *play.P) error { return f(p) }
