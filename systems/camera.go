package systems

import (
	"github.com/automoto/spriteplay/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera advances camera zoom and move tweens.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if camera.ZoomTween != nil {
		zoom, finished := camera.ZoomTween.Update(1)
		camera.Zoom = float64(zoom)
		if finished {
			camera.EndZoom(true)
		}
	}

	if camera.MoveX != nil && camera.MoveY != nil {
		x, doneX := camera.MoveX.Update(1)
		y, doneY := camera.MoveY.Update(1)
		camera.X, camera.Y = float64(x), float64(y)
		if doneX && doneY {
			camera.EndMove(true)
		}
	}
}
