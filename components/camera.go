package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CameraData is the view transform applied to sprites. X and Y are the
// world point shown at the center of the canvas.
type CameraData struct {
	X, Y   float64
	Zoom   float64
	Active bool

	// Viewport size, used to center the view.
	Width, Height float64

	ZoomTween *gween.Tween
	zoomDone  chan bool
	MoveX     *gween.Tween
	MoveY     *gween.Tween
	moveDone  chan bool
}

// StartZoom replaces any zoom in progress.
func (c *CameraData) StartZoom(t *gween.Tween) <-chan bool {
	c.EndZoom(false)
	c.ZoomTween = t
	c.zoomDone = make(chan bool, 1)
	return c.zoomDone
}

func (c *CameraData) EndZoom(arrived bool) {
	c.ZoomTween = nil
	if c.zoomDone != nil {
		c.zoomDone <- arrived
		close(c.zoomDone)
		c.zoomDone = nil
	}
}

// StartMove replaces any camera move in progress.
func (c *CameraData) StartMove(tx, ty *gween.Tween) <-chan bool {
	c.EndMove(false)
	c.MoveX, c.MoveY = tx, ty
	c.moveDone = make(chan bool, 1)
	return c.moveDone
}

func (c *CameraData) EndMove(arrived bool) {
	c.MoveX, c.MoveY = nil, nil
	if c.moveDone != nil {
		c.moveDone <- arrived
		close(c.moveDone)
		c.moveDone = nil
	}
}

// WorldToScreen maps a world point onto the canvas.
func (c *CameraData) WorldToScreen(x, y float64) (float64, float64) {
	return (x-c.X)*c.Zoom + c.Width/2, (y-c.Y)*c.Zoom + c.Height/2
}

// ScreenToWorld maps a canvas point into the world.
func (c *CameraData) ScreenToWorld(x, y float64) (float64, float64) {
	return (x-c.Width/2)/c.Zoom + c.X, (y-c.Height/2)/c.Zoom + c.Y
}

// Fixed returns a camera over the same viewport that maps world
// coordinates straight onto the screen.
func (c *CameraData) Fixed() *CameraData {
	return &CameraData{X: c.Width / 2, Y: c.Height / 2, Zoom: 1, Width: c.Width, Height: c.Height}
}

var Camera = donburi.NewComponentType[CameraData]()
