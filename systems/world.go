package systems

import (
	"math"

	"github.com/automoto/spriteplay/components"
	"github.com/yohamta/donburi/ecs"
)

// GetWorld returns the world singleton, if one was created.
func GetWorld(ecs *ecs.ECS) (*components.WorldData, bool) {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.World.Get(entry), true
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
