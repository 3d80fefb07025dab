package components

import (
	"image/color"

	"github.com/automoto/spriteplay/physics"
	"github.com/yohamta/donburi"
)

// SpriteData holds everything about a sprite that is not owned by the
// physics body. Position and velocity here are authoritative only for
// sprites whose collider is None; otherwise they mirror the body after
// each step.
type SpriteData struct {
	ID int

	X, Y       float64 // center
	VelX, VelY float64 // pixels per frame
	W, H       float64

	Shape      physics.ShapeKind
	LineLength float64
	LineAngle  float64 // degrees

	Rotation      float64 // degrees, clockwise
	RotationSpeed float64 // degrees per frame
	RotationLock  bool
	Direction     float64 // last direction set by SetSpeed, degrees

	Collider physics.ColliderType
	Layer    int
	Visible  bool

	Color        color.RGBA
	Stroke       color.RGBA
	StrokeWeight float64
	Text         string
	TextColor    color.RGBA
	TextSize     float64

	Life int // frames left before removal

	ScaleX, ScaleY   float64
	MirrorX, MirrorY bool
	OffsetX, OffsetY float64 // image offset from the collider center

	Tile       string // set when the sprite was created from a tile map
	Debug      bool
	AutoUpdate bool
	AutoDraw   bool
	Removed    bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
