package systems

import (
	"github.com/automoto/spriteplay/components"
	"github.com/automoto/spriteplay/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances the current animation of every sprite and
// moves animation sequences along.
func UpdateAnimations(ecs *ecs.ECS) {
	tags.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sd := components.Sprite.Get(e)
		if sd.Removed || !sd.AutoUpdate {
			return
		}
		ad := components.Animation.Get(e)
		if ad.Current == nil {
			return
		}
		ad.Current.Update()
		ad.Advance()
	})
}
