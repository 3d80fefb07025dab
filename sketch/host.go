// Package sketch runs a Sketch inside ebiten: setup once, then draw,
// world step and sprite update every frame.
package sketch

import (
	"fmt"
	"log"
	"sync"

	cfg "github.com/automoto/spriteplay/config"
	"github.com/automoto/spriteplay/physics"
	"github.com/automoto/spriteplay/play"
	"github.com/automoto/spriteplay/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// Sketch is a program driven by the host.
type Sketch interface {
	// Setup runs once before the first Draw.
	Setup(p *play.P) error
	// Draw runs every frame before the world steps.
	Draw(p *play.P) error
}

// Host implements ebiten.Game around a Sketch. It builds the canvas,
// physics world and sprite layer in that order.
type Host struct {
	sketch Sketch
	p      *play.P
	world  *physics.World

	once     sync.Once
	setupErr error
	err      error
}

// NewHost creates the canvas, the physics world and the sprite layer and
// installs the world into it.
func NewHost(s Sketch, opts ...play.Option) (*Host, error) {
	canvas := render.CreateCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
	world := physics.NewWorld(cfg.Physics)
	p := play.New(canvas, opts...)
	if err := p.Install(world); err != nil {
		return nil, fmt.Errorf("install world: %w", err)
	}
	return &Host{sketch: s, p: p, world: world}, nil
}

// P returns the sprite layer the sketch is given.
func (h *Host) P() *play.P {
	return h.p
}

// Update runs one frame. An error from Setup or Draw stops the loop and
// is returned from every later call.
func (h *Host) Update() error {
	if h.err != nil {
		return h.err
	}

	h.once.Do(func() {
		h.setupErr = h.sketch.Setup(h.p)
	})
	if h.setupErr != nil {
		h.err = fmt.Errorf("setup: %w", h.setupErr)
		log.Printf("Warning: %v", h.err)
		return h.err
	}

	h.p.BeginFrame()
	if err := h.sketch.Draw(h.p); err != nil {
		h.err = fmt.Errorf("draw frame %d: %w", h.p.FrameCount(), err)
		log.Printf("Warning: %v", h.err)
		return h.err
	}
	h.p.EndFrame()
	return nil
}

// Draw replays what the sketch drew, then the sprites and debug overlay.
func (h *Host) Draw(screen *ebiten.Image) {
	if c := h.p.Canvas(); c != nil {
		c.Replay(screen)
	}
	h.p.DrawSprites(screen)
}

// Layout keeps the canvas size whatever the window size.
func (h *Host) Layout(_, _ int) (int, int) {
	c := h.p.Canvas()
	return c.Width, c.Height
}
