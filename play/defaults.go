package play

import (
	"image/color"

	"github.com/automoto/spriteplay/assets/animations"
	"github.com/automoto/spriteplay/components"
	cfg "github.com/automoto/spriteplay/config"
	"github.com/automoto/spriteplay/physics"
)

type field uint32

const (
	fieldX field = 1 << iota
	fieldY
	fieldW
	fieldH
	fieldVel
	fieldRotation
	fieldRotationSpeed
	fieldRotationLock
	fieldCollider
	fieldLayer
	fieldVisible
	fieldColor
	fieldStroke
	fieldStrokeWeight
	fieldText
	fieldTextColor
	fieldTextSize
	fieldLife
	fieldScale
	fieldMirror
	fieldOffset
	fieldDebug
	fieldTile
)

// defaults are the sprite properties a group sets for its members. Only
// fields in mask are set; the rest come from the parent group.
type defaults struct {
	mask field
	data components.SpriteData
	anis animations.Animations
}

func (d *defaults) set(f field) {
	d.mask |= f
}

func (d *defaults) has(f field) bool {
	return d.mask&f != 0
}

// baseSprite is what a sprite gets when no group sets anything.
func baseSprite() components.SpriteData {
	return components.SpriteData{
		X:            float64(cfg.Canvas.Width) / 2,
		Y:            float64(cfg.Canvas.Height) / 2,
		W:            cfg.Sprite.Size,
		H:            cfg.Sprite.Size,
		Shape:        physics.Box,
		Collider:     physics.Dynamic,
		Visible:      true,
		Color:        cfg.Sprite.Color,
		Stroke:       cfg.Sprite.Stroke,
		StrokeWeight: cfg.Sprite.StrokeWeight,
		TextColor:    cfg.Sprite.TextColor,
		TextSize:     cfg.Sprite.TextSize,
		Life:         cfg.Sprite.Life,
		ScaleX:       1,
		ScaleY:       1,
		AutoUpdate:   true,
		AutoDraw:     true,
	}
}

// apply copies the set fields of d over sd.
func (d *defaults) apply(sd *components.SpriteData) {
	src := &d.data
	if d.has(fieldX) {
		sd.X = src.X
	}
	if d.has(fieldY) {
		sd.Y = src.Y
	}
	if d.has(fieldW) {
		sd.W = src.W
	}
	if d.has(fieldH) {
		sd.H = src.H
	}
	if d.has(fieldVel) {
		sd.VelX, sd.VelY = src.VelX, src.VelY
	}
	if d.has(fieldRotation) {
		sd.Rotation = src.Rotation
	}
	if d.has(fieldRotationSpeed) {
		sd.RotationSpeed = src.RotationSpeed
	}
	if d.has(fieldRotationLock) {
		sd.RotationLock = src.RotationLock
	}
	if d.has(fieldCollider) {
		sd.Collider = src.Collider
	}
	if d.has(fieldLayer) {
		sd.Layer = src.Layer
	}
	if d.has(fieldVisible) {
		sd.Visible = src.Visible
	}
	if d.has(fieldColor) {
		sd.Color = src.Color
	}
	if d.has(fieldStroke) {
		sd.Stroke = src.Stroke
	}
	if d.has(fieldStrokeWeight) {
		sd.StrokeWeight = src.StrokeWeight
	}
	if d.has(fieldText) {
		sd.Text = src.Text
	}
	if d.has(fieldTextColor) {
		sd.TextColor = src.TextColor
	}
	if d.has(fieldTextSize) {
		sd.TextSize = src.TextSize
	}
	if d.has(fieldLife) {
		sd.Life = src.Life
	}
	if d.has(fieldScale) {
		sd.ScaleX, sd.ScaleY = src.ScaleX, src.ScaleY
	}
	if d.has(fieldMirror) {
		sd.MirrorX, sd.MirrorY = src.MirrorX, src.MirrorY
	}
	if d.has(fieldOffset) {
		sd.OffsetX, sd.OffsetY = src.OffsetX, src.OffsetY
	}
	if d.has(fieldDebug) {
		sd.Debug = src.Debug
	}
	if d.has(fieldTile) {
		sd.Tile = src.Tile
	}
}

func toRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
