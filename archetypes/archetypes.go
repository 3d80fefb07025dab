package archetypes

import (
	"github.com/automoto/spriteplay/components"
	cfg "github.com/automoto/spriteplay/config"
	"github.com/automoto/spriteplay/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Sprite = newArchetype(
		tags.Sprite,
		components.Sprite,
		components.Body,
		components.Object,
		components.Animation,
		components.Motion,
	)
	World = newArchetype(
		components.World,
	)
	Camera = newArchetype(
		components.Camera,
	)
	InputDevice = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
