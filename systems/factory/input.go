package factory

import (
	"github.com/automoto/spriteplay/archetypes"
	"github.com/automoto/spriteplay/components"
	cfg "github.com/automoto/spriteplay/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateInputDevice spawns a device named name fed by source.
func CreateInputDevice(ecs *ecs.ECS, name string, source components.InputSource) *donburi.Entry {
	device := archetypes.InputDevice.Spawn(ecs)
	components.Input.Set(device, &components.InputData{
		Device:        name,
		Source:        source,
		States:        make(map[string]int),
		HoldThreshold: cfg.Input.HoldThreshold,
	})
	return device
}
