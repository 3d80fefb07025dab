package config

import "image/color"

// CanvasConfig describes the drawing surface created by a sketch.
type CanvasConfig struct {
	Width      int
	Height     int
	Parent     string // container id the canvas is attached to
	Background uint8  // gray level the demo clears to each frame
	FrameRate  int    // frames per second the host targets
	Title      string
}

// PhysicsConfig contains world simulation configuration values
type PhysicsConfig struct {
	GravityX float64
	GravityY float64

	// Stepping
	TimeStep   float64 // seconds per step when no dt is given
	Iterations uint

	// Sleep
	SleepTimeThreshold float64 // seconds a body must be idle before it sleeps
	IdleSpeedThreshold float64 // pixels per second under which a body counts as idle

	// VelocityScale converts sprite velocity (pixels per frame) into body
	// velocity (pixels per second).
	VelocityScale float64

	// Mass of a collider is its area times Density.
	Density    float64
	Friction   float64
	Bounciness float64

	// Joints
	JointStiffness float64 // spring force per pixel of stretch
	JointDamping   float64
	SliderRange    float64 // travel each way along a slider or wheel axis
}

// SpriteConfig contains defaults for newly created sprites
type SpriteConfig struct {
	Size         float64 // width and height of a sprite created without args
	Color        color.RGBA
	Stroke       color.RGBA
	StrokeWeight float64
	TextColor    color.RGBA
	TextSize     float64
	Life         int // frames before removal
	FirstID      int
	CellSize     int // overlap space cell size in pixels
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	FrameDelay int // frames each image is shown
}

// CameraConfig contains camera defaults
type CameraConfig struct {
	Zoom float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawColliders bool   // outline colliders and sensors
	ShowFPS       bool   // draw the frame rate in the top-left corner
	Profile       string // "cpu" or "mem" enables pkg/profile
	ColliderColor color.RGBA
	SensorColor   color.RGBA
}

// Global configuration instances
var Canvas CanvasConfig
var Physics PhysicsConfig
var Sprite SpriteConfig
var Animation AnimationConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gray  = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	Green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue  = color.RGBA{R: 0, G: 100, B: 255, A: 255}
)

func init() {
	Canvas = CanvasConfig{
		Width:      600,
		Height:     500,
		Parent:     "app",
		Background: 255,
		FrameRate:  60,
		Title:      "spriteplay",
	}

	Physics = PhysicsConfig{
		GravityX: 0,
		GravityY: 0,

		TimeStep:   1.0 / 60.0,
		Iterations: 10,

		SleepTimeThreshold: 0.5,
		IdleSpeedThreshold: 1.0,

		VelocityScale: 60,

		Density:    1.0 / 2500.0, // a default 50x50 box weighs 1
		Friction:   0.5,
		Bounciness: 0.2,

		JointStiffness: 40,
		JointDamping:   2,
		SliderRange:    100,
	}

	Sprite = SpriteConfig{
		Size:         50,
		Color:        color.RGBA{R: 200, G: 200, B: 240, A: 255},
		Stroke:       color.RGBA{R: 30, G: 30, B: 30, A: 255},
		StrokeWeight: 1,
		TextColor:    Black,
		TextSize:     14,
		Life:         100000000,
		FirstID:      1000,
		CellSize:     16,
	}

	Animation = AnimationConfig{
		FrameDelay: 4,
	}

	Camera = CameraConfig{
		Zoom: 1,
	}

	Debug = DebugConfig{
		ColliderColor: Green,
		SensorColor:   Blue,
	}
}
