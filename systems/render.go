package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/spriteplay/components"
	"github.com/automoto/spriteplay/fonts"
	"github.com/automoto/spriteplay/physics"
	"github.com/automoto/spriteplay/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp     = &ebiten.DrawImageOptions{}
	whitePixel *ebiten.Image
	drawQueue  []*donburi.Entry
)

// cullPadding keeps sprites from popping at the canvas edges.
const cullPadding = 64.0

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// DrawOrder returns the visible, auto-drawn sprites sorted by layer. Sprites
// on the same layer keep creation order.
func DrawOrder(ecs *ecs.ECS) []*donburi.Entry {
	drawQueue = drawQueue[:0]
	tags.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sd := components.Sprite.Get(e)
		if sd.Removed || !sd.Visible || !sd.AutoDraw {
			return
		}
		drawQueue = append(drawQueue, e)
	})
	sort.SliceStable(drawQueue, func(i, j int) bool {
		a := components.Sprite.Get(drawQueue[i])
		b := components.Sprite.Get(drawQueue[j])
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		return a.ID < b.ID
	})
	return drawQueue
}

// DrawSprites renders every visible sprite through the camera.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := cameraOrIdentity(ecs, screen)

	// Culling bounds
	halfW := camera.Width / 2 / camera.Zoom
	halfH := camera.Height / 2 / camera.Zoom
	minX, maxX := camera.X-halfW-cullPadding, camera.X+halfW+cullPadding
	minY, maxY := camera.Y-halfH-cullPadding, camera.Y+halfH+cullPadding

	for _, e := range DrawOrder(ecs) {
		sd := components.Sprite.Get(e)
		ext := math.Max(sd.W, sd.H)
		if sd.Shape == physics.Line {
			ext = sd.LineLength
		}
		ext *= math.Max(math.Abs(sd.ScaleX), math.Abs(sd.ScaleY))
		if sd.X+ext < minX || sd.X-ext > maxX || sd.Y+ext < minY || sd.Y-ext > maxY {
			continue
		}
		DrawSprite(screen, camera, e)
	}
}

// DrawSprite draws one sprite: its current animation frame if it has one,
// otherwise its shape, then its text.
func DrawSprite(screen *ebiten.Image, camera *components.CameraData, e *donburi.Entry) {
	sd := components.Sprite.Get(e)
	ad := components.Animation.Get(e)

	if ad.Current != nil && ad.Current.Visible {
		if img := ad.Current.Image(); img != nil {
			drawImage(screen, camera, sd, ad, img)
			drawText(screen, camera, sd)
			return
		}
	}

	switch sd.Shape {
	case physics.Circle:
		drawCircle(screen, camera, sd)
	case physics.Line:
		drawLine(screen, camera, sd)
	default:
		drawBox(screen, camera, sd)
	}
	drawText(screen, camera, sd)
}

func drawImage(screen *ebiten.Image, camera *components.CameraData, sd *components.SpriteData, ad *components.AnimationData, img *ebiten.Image) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	ani := ad.Current

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	sx, sy := sd.ScaleX*ani.ScaleX, sd.ScaleY*ani.ScaleY
	if sd.MirrorX {
		sx = -sx
	}
	if sd.MirrorY {
		sy = -sy
	}
	drawOp.GeoM.Scale(sx, sy)
	drawOp.GeoM.Rotate(radians(sd.Rotation + ani.Rotation))
	drawOp.GeoM.Translate(sd.X+sd.OffsetX+ani.OffsetX, sd.Y+sd.OffsetY+ani.OffsetY)
	applyCamera(&drawOp.GeoM, camera)

	screen.DrawImage(img, drawOp)
}

// drawBox stretches a white pixel over the rotated box so rotation needs
// no path building.
func drawBox(screen *ebiten.Image, camera *components.CameraData, sd *components.SpriteData) {
	w, h := sd.W*sd.ScaleX, sd.H*sd.ScaleY

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-0.5, -0.5)
	drawOp.GeoM.Scale(w, h)
	drawOp.GeoM.Rotate(radians(sd.Rotation))
	drawOp.GeoM.Translate(sd.X, sd.Y)
	applyCamera(&drawOp.GeoM, camera)
	drawOp.ColorScale.ScaleWithColor(sd.Color)
	screen.DrawImage(pixel(), drawOp)

	if sd.StrokeWeight <= 0 {
		return
	}
	corners := BoxCorners(sd.X, sd.Y, w, h, sd.Rotation)
	strokePolygon(screen, camera, corners[:], float32(sd.StrokeWeight*camera.Zoom), sd.Stroke)
}

func drawCircle(screen *ebiten.Image, camera *components.CameraData, sd *components.SpriteData) {
	x, y := camera.WorldToScreen(sd.X, sd.Y)
	r := float32(sd.W / 2 * sd.ScaleX * camera.Zoom)
	vector.DrawFilledCircle(screen, float32(x), float32(y), r, sd.Color, true)
	if sd.StrokeWeight > 0 {
		vector.StrokeCircle(screen, float32(x), float32(y), r, float32(sd.StrokeWeight*camera.Zoom), sd.Stroke, true)
	}
}

func drawLine(screen *ebiten.Image, camera *components.CameraData, sd *components.SpriteData) {
	rad := radians(sd.LineAngle + sd.Rotation)
	hx := math.Cos(rad) * sd.LineLength * sd.ScaleX / 2
	hy := math.Sin(rad) * sd.LineLength * sd.ScaleX / 2
	x0, y0 := camera.WorldToScreen(sd.X-hx, sd.Y-hy)
	x1, y1 := camera.WorldToScreen(sd.X+hx, sd.Y+hy)
	weight := math.Max(sd.StrokeWeight, 1)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(weight*camera.Zoom), sd.Stroke, true)
}

func drawText(screen *ebiten.Image, camera *components.CameraData, sd *components.SpriteData) {
	if sd.Text == "" {
		return
	}
	face := fonts.Regular.Sized(sd.TextSize * camera.Zoom)
	bounds := text.BoundString(face, sd.Text)
	x, y := camera.WorldToScreen(sd.X, sd.Y)
	tx := int(x) - bounds.Dx()/2 - bounds.Min.X
	ty := int(y) - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(screen, sd.Text, face, tx, ty, sd.TextColor)
}

func strokePolygon(screen *ebiten.Image, camera *components.CameraData, pts [][2]float64, weight float32, clr color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		x0, y0 := camera.WorldToScreen(a[0], a[1])
		x1, y1 := camera.WorldToScreen(b[0], b[1])
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), weight, clr, true)
	}
}

// BoxCorners returns the corners of a w x h box centered on x, y and
// rotated by angle degrees, clockwise from the top left.
func BoxCorners(x, y, w, h, angle float64) [4][2]float64 {
	sin, cos := math.Sincos(radians(angle))
	local := [4][2]float64{{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}}
	var out [4][2]float64
	for i, p := range local {
		out[i] = [2]float64{x + p[0]*cos - p[1]*sin, y + p[0]*sin + p[1]*cos}
	}
	return out
}

func applyCamera(g *ebiten.GeoM, camera *components.CameraData) {
	g.Translate(-camera.X, -camera.Y)
	g.Scale(camera.Zoom, camera.Zoom)
	g.Translate(camera.Width/2, camera.Height/2)
}

// cameraOrIdentity returns the scene camera, or one that maps world
// coordinates straight onto the screen.
func cameraOrIdentity(ecs *ecs.ECS, screen *ebiten.Image) *components.CameraData {
	if entry, ok := components.Camera.First(ecs.World); ok {
		return components.Camera.Get(entry)
	}
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return &components.CameraData{X: w / 2, Y: h / 2, Zoom: 1, Width: w, Height: h}
}
