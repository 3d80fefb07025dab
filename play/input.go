package play

import (
	"strings"

	"github.com/automoto/spriteplay/components"
	"github.com/yohamta/donburi"
)

// InputDevice answers questions about one device's inputs by name, such
// as "a", "space" or "left". Names are case-insensitive.
type InputDevice struct {
	entry *donburi.Entry
}

func (d *InputDevice) state(name string) (int, int) {
	if !d.Connected() {
		return 0, 0
	}
	in := components.Input.Get(d.entry)
	return in.States[strings.ToLower(name)], in.HoldThreshold
}

// Presses reports whether name went down this frame.
func (d *InputDevice) Presses(name string) bool {
	st, _ := d.state(name)
	return st == 1
}

// Pressing returns how many frames name has been down, 0 if it is up.
func (d *InputDevice) Pressing(name string) int {
	st, _ := d.state(name)
	return max(st, 0)
}

// Pressed reports whether name was released this frame after a short
// press.
func (d *InputDevice) Pressed(name string) bool {
	st, _ := d.state(name)
	return st == -1
}

// Holds reports whether name has just been down long enough to count as
// held.
func (d *InputDevice) Holds(name string) bool {
	st, threshold := d.state(name)
	return st == threshold
}

// Holding returns how many frames name has been held, 0 before the hold
// threshold.
func (d *InputDevice) Holding(name string) int {
	st, threshold := d.state(name)
	if st >= threshold {
		return st
	}
	return 0
}

// Held reports whether name was released this frame after being held.
func (d *InputDevice) Held(name string) bool {
	st, _ := d.state(name)
	return st == -2
}

// Released reports whether name was released this frame.
func (d *InputDevice) Released(name string) bool {
	st, _ := d.state(name)
	return st <= -1
}

// Releases is Released.
func (d *InputDevice) Releases(name string) bool {
	return d.Released(name)
}

// Axis returns an analog value such as "leftx" from -1 to 1, 0 for
// devices without it.
func (d *InputDevice) Axis(name string) float64 {
	if !d.Connected() {
		return 0
	}
	return components.Input.Get(d.entry).Axes[strings.ToLower(name)]
}

// Connected is false once a gamepad's device has been disconnected.
// Keyboard and mouse stay connected.
func (d *InputDevice) Connected() bool {
	return d.entry.Valid()
}

// Cursor is the pointer position on the canvas.
func (d *InputDevice) Cursor() (float64, float64) {
	if !d.Connected() {
		return 0, 0
	}
	in := components.Input.Get(d.entry)
	return in.X, in.Y
}

// Name is the device name: "keyboard", "mouse" or "gamepad".
func (d *InputDevice) Name() string {
	if !d.Connected() {
		return ""
	}
	return components.Input.Get(d.entry).Device
}
