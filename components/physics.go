package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// BodyData links a sprite to its rigid body. Colliders[0] is the shape
// rebuilt when the sprite is resized.
type BodyData struct {
	Body      *cp.Body
	Colliders []*cp.Shape
	Sensors   []*cp.Shape
}

var Body = donburi.NewComponentType[BodyData]()
