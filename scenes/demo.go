package scenes

import (
	cfg "github.com/automoto/spriteplay/config"
	"github.com/automoto/spriteplay/play"
)

// Demo is the smallest sketch: one wide sprite drifting up and slightly
// right over a plain background.
type Demo struct {
	Sprite *play.Sprite
}

func NewDemo() *Demo {
	return &Demo{}
}

func (d *Demo) Setup(p *play.P) error {
	canvas := p.CreateCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
	canvas.SetParent(cfg.Canvas.Parent)

	s, err := p.NewSprite()
	if err != nil {
		return err
	}
	s.SetWidth(300)
	s.SetHeight(50)
	s.AddSpeed(1, 275)
	d.Sprite = s
	return nil
}

func (d *Demo) Draw(p *play.P) error {
	return p.Canvas().Background(float64(cfg.Canvas.Background))
}
