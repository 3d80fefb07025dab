package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/spriteplay/components"
	cfg "github.com/automoto/spriteplay/config"
	"github.com/automoto/spriteplay/fonts"
	"github.com/automoto/spriteplay/physics"
	"github.com/automoto/spriteplay/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines colliders and sensors of sprites in debug mode and
// prints the frame rate.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := cameraOrIdentity(ecs, screen)

	if world, ok := GetWorld(ecs); ok {
		for _, e := range DrawOrder(ecs) {
			sd := components.Sprite.Get(e)
			if !sd.Debug && !cfg.Debug.DrawColliders {
				continue
			}
			bd := components.Body.Get(e)
			if bd.Body == nil {
				strokeOutline(screen, camera, sd.X, sd.Y, sd.Rotation, factory.ColliderInfo(sd), cfg.Debug.ColliderColor)
				continue
			}
			pos := bd.Body.Position()
			angle := degrees(bd.Body.Angle())
			for _, s := range bd.Colliders {
				if info, ok := world.Physics.ShapeInfo(s); ok {
					strokeOutline(screen, camera, pos.X, pos.Y, angle, info, cfg.Debug.ColliderColor)
				}
			}
			for _, s := range bd.Sensors {
				if info, ok := world.Physics.ShapeInfo(s); ok {
					strokeOutline(screen, camera, pos.X, pos.Y, angle, info, cfg.Debug.SensorColor)
				}
			}
		}
	}

	if cfg.Debug.ShowFPS {
		face := fonts.Mono.Sized(12)
		text.Draw(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()), face, 4, 14, cfg.Black)
	}
}

func strokeOutline(screen *ebiten.Image, camera *components.CameraData, x, y, angle float64, info physics.ShapeInfo, clr color.Color) {
	// offsets turn with the body
	sin, cos := math.Sincos(radians(angle))
	cx := x + info.OffsetX*cos - info.OffsetY*sin
	cy := y + info.OffsetX*sin + info.OffsetY*cos

	switch info.Kind {
	case physics.Circle:
		sx, sy := camera.WorldToScreen(cx, cy)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(info.W/2*camera.Zoom), 1, clr, true)
	case physics.Line:
		rad := radians(info.Angle + angle)
		hx, hy := math.Cos(rad)*info.Length/2, math.Sin(rad)*info.Length/2
		x0, y0 := camera.WorldToScreen(cx-hx, cy-hy)
		x1, y1 := camera.WorldToScreen(cx+hx, cy+hy)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
	default:
		corners := BoxCorners(cx, cy, info.W, info.H, angle)
		strokePolygon(screen, camera, corners[:], 1, clr)
	}
}
