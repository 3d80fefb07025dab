package factory

import (
	"github.com/automoto/spriteplay/archetypes"
	"github.com/automoto/spriteplay/components"
	cfg "github.com/automoto/spriteplay/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns a camera looking at the center of a width x height
// canvas, so world and canvas coordinates match until it moves.
func CreateCamera(ecs *ecs.ECS, width, height int) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		X:      float64(width) / 2,
		Y:      float64(height) / 2,
		Zoom:   cfg.Camera.Zoom,
		Width:  float64(width),
		Height: float64(height),
	})
	return camera
}
