package systems

import (
	"strings"

	"github.com/automoto/spriteplay/components"
	cfg "github.com/automoto/spriteplay/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls every input device and moves its counters forward.
// Must run before the sketch's draw so presses are seen the frame they
// happen.
func UpdateInput(ecs *ecs.ECS) {
	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		input := components.Input.Get(e)
		StepInput(input)
		StepAxes(input)
	})
}

// StepInput advances one device by a frame.
func StepInput(input *components.InputData) {
	if input.Source == nil {
		return
	}
	if input.States == nil {
		input.States = make(map[string]int)
	}
	for _, name := range input.Source.Names() {
		prev := input.States[name]
		if input.Source.Down(name) {
			if prev < 0 {
				prev = 0
			}
			input.States[name] = prev + 1
			continue
		}
		switch {
		case prev >= input.HoldThreshold && input.HoldThreshold > 0:
			input.States[name] = -2
		case prev > 0:
			input.States[name] = -1
		default:
			delete(input.States, name)
		}
	}
	input.X, input.Y = input.Source.Cursor()
}

// KeyboardSource reads the ebiten keyboard.
type KeyboardSource struct {
	names []string
}

// NewKeyboardSource reports every key named in the input config.
func NewKeyboardSource() *KeyboardSource {
	names := make([]string, 0, len(cfg.Input.Keys))
	for name := range cfg.Input.Keys {
		names = append(names, name)
	}
	return &KeyboardSource{names: names}
}

func (k *KeyboardSource) Names() []string {
	return k.names
}

func (k *KeyboardSource) Down(name string) bool {
	key, ok := cfg.Input.Keys[strings.ToLower(name)]
	return ok && ebiten.IsKeyPressed(key)
}

func (k *KeyboardSource) Cursor() (float64, float64) {
	return 0, 0
}

// MouseSource reads the ebiten mouse buttons and cursor.
type MouseSource struct {
	names []string
}

func NewMouseSource() *MouseSource {
	names := make([]string, 0, len(cfg.Input.MouseButtons))
	for name := range cfg.Input.MouseButtons {
		names = append(names, name)
	}
	return &MouseSource{names: names}
}

func (m *MouseSource) Names() []string {
	return m.names
}

func (m *MouseSource) Down(name string) bool {
	btn, ok := cfg.Input.MouseButtons[strings.ToLower(name)]
	return ok && ebiten.IsMouseButtonPressed(btn)
}

func (m *MouseSource) Cursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// StepAxes copies the device's analog values, if it has any.
func StepAxes(input *components.InputData) {
	src, ok := input.Source.(components.AxisSource)
	if !ok {
		return
	}
	if input.Axes == nil {
		input.Axes = make(map[string]float64)
	}
	for _, name := range src.Axes() {
		input.Axes[name] = src.Axis(name)
	}
}

var gamepadAxes = map[string]ebiten.StandardGamepadAxis{
	"leftx":  ebiten.StandardGamepadAxisLeftStickHorizontal,
	"lefty":  ebiten.StandardGamepadAxisLeftStickVertical,
	"rightx": ebiten.StandardGamepadAxisRightStickHorizontal,
	"righty": ebiten.StandardGamepadAxisRightStickVertical,
}

// GamepadSource reads one gamepad in the standard layout. Pads without
// the standard layout report nothing.
type GamepadSource struct {
	ID    ebiten.GamepadID
	names []string
}

func NewGamepadSource(id ebiten.GamepadID) *GamepadSource {
	names := make([]string, 0, len(cfg.Input.GamepadButtons))
	for name := range cfg.Input.GamepadButtons {
		names = append(names, name)
	}
	return &GamepadSource{ID: id, names: names}
}

func (g *GamepadSource) Names() []string {
	return g.names
}

func (g *GamepadSource) Down(name string) bool {
	if !ebiten.IsStandardGamepadLayoutAvailable(g.ID) {
		return false
	}
	name = strings.ToLower(name)
	if btn, ok := cfg.Input.GamepadButtons[name]; ok && ebiten.IsStandardGamepadButtonPressed(g.ID, btn) {
		return true
	}
	h := ebiten.StandardGamepadAxisValue(g.ID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	v := ebiten.StandardGamepadAxisValue(g.ID, ebiten.StandardGamepadAxisLeftStickVertical)
	return StickPresses(name, h, v, cfg.Input.AnalogDeadzone)
}

func (g *GamepadSource) Cursor() (float64, float64) {
	return 0, 0
}

func (g *GamepadSource) Axes() []string {
	return []string{"leftx", "lefty", "rightx", "righty"}
}

// Axis returns a stick value with the deadzone cut to zero.
func (g *GamepadSource) Axis(name string) float64 {
	axis, ok := gamepadAxes[strings.ToLower(name)]
	if !ok || !ebiten.IsStandardGamepadLayoutAvailable(g.ID) {
		return 0
	}
	return Deadzone(ebiten.StandardGamepadAxisValue(g.ID, axis), cfg.Input.AnalogDeadzone)
}

// StickPresses reports whether a stick at h, v counts as pressing the
// direction name.
func StickPresses(name string, h, v, deadzone float64) bool {
	switch name {
	case "left":
		return h < -deadzone
	case "right":
		return h > deadzone
	case "up":
		return v < -deadzone
	case "down":
		return v > deadzone
	}
	return false
}

func Deadzone(value, deadzone float64) float64 {
	if value > -deadzone && value < deadzone {
		return 0
	}
	return value
}

// EbitenGamepads lists the gamepads ebiten sees.
type EbitenGamepads struct {
	ids     []ebiten.GamepadID
	sources map[int]*GamepadSource
}

func NewEbitenGamepads() *EbitenGamepads {
	return &EbitenGamepads{sources: make(map[int]*GamepadSource)}
}

func (e *EbitenGamepads) Connected() []int {
	e.ids = ebiten.AppendGamepadIDs(e.ids[:0])
	out := make([]int, len(e.ids))
	for i, id := range e.ids {
		out[i] = int(id)
	}
	return out
}

func (e *EbitenGamepads) Source(id int) components.InputSource {
	src, ok := e.sources[id]
	if !ok {
		src = NewGamepadSource(ebiten.GamepadID(id))
		e.sources[id] = src
	}
	return src
}
