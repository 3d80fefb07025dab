package tags

import "github.com/yohamta/donburi"

var (
	Sprite  = donburi.NewTag().SetName("Sprite")
	Expired = donburi.NewTag().SetName("Expired")
)

// Resolv tags for the overlap space
const (
	ResolvSprite = "sprite"
	ResolvPoint  = "point"
)
