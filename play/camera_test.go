package play

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraZoomTo(t *testing.T) {
	p, _, _ := newTestP(t)
	cam := p.Camera()
	assert.Equal(t, 1.0, cam.Zoom())

	done := cam.ZoomTo(2, 10)
	frame(p, 5)
	assert.Greater(t, cam.Zoom(), 1.0)
	assert.Less(t, cam.Zoom(), 2.0)

	frame(p, 5)
	assert.True(t, <-done)
	assert.InDelta(t, 2.0, cam.Zoom(), 1e-6)
}

func TestCameraCommandsReplaceEachOther(t *testing.T) {
	p, _, _ := newTestP(t)
	cam := p.Camera()

	first := cam.MoveTo(0, 0, 30)
	second := cam.MoveTo(100, 50, 0)
	assert.False(t, <-first)
	assert.True(t, <-second)
	assert.Equal(t, 100.0, cam.X())
	assert.Equal(t, 50.0, cam.Y())

	zoom := cam.ZoomTo(3, 30)
	cam.SetZoom(0.5)
	assert.False(t, <-zoom)
	assert.Equal(t, 0.5, cam.Zoom())
}

func TestCameraMapping(t *testing.T) {
	p, _, _ := newTestP(t)
	cam := p.Camera()
	cam.SetPosition(400, 300)
	cam.SetZoom(2)

	sx, sy := cam.WorldToScreen(410, 290)
	assert.Equal(t, 320.0, sx)
	assert.Equal(t, 230.0, sy)

	wx, wy := cam.ScreenToWorld(sx, sy)
	assert.Equal(t, 410.0, wx)
	assert.Equal(t, 290.0, wy)
}

func TestCameraOnScopesCanvasDrawing(t *testing.T) {
	p, _, _ := newTestP(t)
	cam := p.Camera()
	cam.SetPosition(400, 300)
	cam.SetZoom(2)
	c := p.Canvas()
	c.Clear()

	cam.On()
	assert.True(t, cam.Active())
	c.Rect(410, 290, 10, 10)
	cam.Off()
	assert.False(t, cam.Active())
	c.Text("score", 410, 290)

	cmds := c.Commands()
	require.Len(t, cmds, 2)

	assert.True(t, cmds[0].Camera)
	x, y := cmds[0].ToScreen(cmds[0].X, cmds[0].Y)
	assert.Equal(t, 320.0, x)
	assert.Equal(t, 230.0, y)
	assert.Equal(t, 2.0, cmds[0].Scale())

	assert.False(t, cmds[1].Camera)
	x, y = cmds[1].ToScreen(cmds[1].X, cmds[1].Y)
	assert.Equal(t, 410.0, x)
	assert.Equal(t, 290.0, y)
	assert.Equal(t, 1.0, cmds[1].Scale())
}

func TestSpriteDrawFollowsCameraSwitch(t *testing.T) {
	p, _, _ := newTestP(t)
	s, _ := p.NewSprite(410, 290, 10, 10)
	cam := p.Camera()
	cam.SetPosition(400, 300)
	cam.SetZoom(2)

	cam.Off()
	x, y := s.drawCamera().WorldToScreen(s.X(), s.Y())
	assert.Equal(t, 410.0, x)
	assert.Equal(t, 290.0, y)

	cam.On()
	x, y = s.drawCamera().WorldToScreen(s.X(), s.Y())
	assert.Equal(t, 320.0, x)
	assert.Equal(t, 230.0, y)
}

func TestCameraMouse(t *testing.T) {
	p, _, mouse := newTestP(t)
	cam := p.Camera()
	cam.SetZoom(2)
	cam.SetPosition(400, 300)
	mouse.x = float64(p.Canvas().Width)/2 + 20
	mouse.y = float64(p.Canvas().Height) / 2
	frame(p)

	x, y := cam.Mouse()
	assert.InDelta(t, 410.0, x, 1e-9)
	assert.InDelta(t, 300.0, y, 1e-9)

	s, err := p.NewSprite(410, 300, 10, 10)
	require.NoError(t, err)
	assert.Same(t, s, p.World().MouseSprite())
	assert.Equal(t, []*Sprite{s}, p.World().MouseSprites())

	mouse.x = 0
	frame(p)
	assert.Nil(t, p.World().MouseSprite())
}
