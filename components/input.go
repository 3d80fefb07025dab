package components

import (
	"github.com/yohamta/donburi"
)

// InputSource reports the raw state of one device.
type InputSource interface {
	// Names lists every input the device can report.
	Names() []string
	Down(name string) bool
	// Cursor is the pointer position in canvas pixels; devices without
	// a pointer return 0, 0.
	Cursor() (float64, float64)
}

// AxisSource is implemented by devices with analog inputs. Values run
// from -1 to 1.
type AxisSource interface {
	Axes() []string
	Axis(name string) float64
}

// GamepadHub lists connected gamepads by an id that stays the same while
// the pad is connected, and reads each one.
type GamepadHub interface {
	Connected() []int
	Source(id int) InputSource
}

// InputData stores per-input frame counters for one device.
//
// A positive value is the number of frames the input has been down.
// -1 means released this frame, -2 released this frame after being held.
type InputData struct {
	Device        string
	Source        InputSource
	States        map[string]int
	HoldThreshold int
	X, Y          float64
	Axes          map[string]float64
}

var Input = donburi.NewComponentType[InputData]()
