package play

import (
	"github.com/automoto/spriteplay/components"
	"github.com/automoto/spriteplay/render"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// Camera is the view sprites are drawn through. X and Y are the world
// point at the center of the canvas.
type Camera struct {
	entry *donburi.Entry
	mouse *InputDevice
}

func (c *Camera) data() *components.CameraData {
	return components.Camera.Get(c.entry)
}

func (c *Camera) X() float64 {
	return c.data().X
}

func (c *Camera) Y() float64 {
	return c.data().Y
}

func (c *Camera) SetX(x float64) {
	c.data().X = x
}

func (c *Camera) SetY(y float64) {
	c.data().Y = y
}

func (c *Camera) SetPosition(x, y float64) {
	c.data().X, c.data().Y = x, y
}

func (c *Camera) Zoom() float64 {
	return c.data().Zoom
}

func (c *Camera) SetZoom(z float64) {
	c.data().EndZoom(false)
	c.data().Zoom = z
}

// On puts the sketch's own drawing through the camera until Off. The
// host always draws auto-drawn sprites through it.
func (c *Camera) On() {
	c.data().Active = true
}

// Off draws later canvas calls and Sprite.Draw at fixed screen positions,
// for interface elements.
func (c *Camera) Off() {
	c.data().Active = false
}

func (c *Camera) Active() bool {
	return c.data().Active
}

// View reports the current transform and whether the camera is on.
func (c *Camera) View() (render.View, bool) {
	cd := c.data()
	return render.View{X: cd.X, Y: cd.Y, Zoom: cd.Zoom, Width: cd.Width, Height: cd.Height}, cd.Active
}

// ZoomTo eases the zoom to target over frames. The channel yields true
// when it gets there and false if another zoom replaced it.
func (c *Camera) ZoomTo(target float64, frames int) <-chan bool {
	cd := c.data()
	if frames <= 0 {
		cd.EndZoom(false)
		cd.Zoom = target
		return resolved(true)
	}
	return cd.StartZoom(gween.New(float32(cd.Zoom), float32(target), float32(frames), ease.InOutQuad))
}

// MoveTo eases the camera to x, y over frames.
func (c *Camera) MoveTo(x, y float64, frames int) <-chan bool {
	cd := c.data()
	if frames <= 0 {
		cd.EndMove(false)
		cd.X, cd.Y = x, y
		return resolved(true)
	}
	tx := gween.New(float32(cd.X), float32(x), float32(frames), ease.InOutQuad)
	ty := gween.New(float32(cd.Y), float32(y), float32(frames), ease.InOutQuad)
	return cd.StartMove(tx, ty)
}

// WorldToScreen maps a world point onto the canvas.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return c.data().WorldToScreen(x, y)
}

// ScreenToWorld maps a canvas point, such as the mouse, into the world.
func (c *Camera) ScreenToWorld(x, y float64) (float64, float64) {
	return c.data().ScreenToWorld(x, y)
}

// Mouse is the mouse cursor's position in the world.
func (c *Camera) Mouse() (float64, float64) {
	return c.ScreenToWorld(c.mouse.Cursor())
}
