package config

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputConfig holds the names an InputDevice tracks and the ebiten
// keys and buttons behind them.
type InputConfig struct {
	// HoldThreshold is the number of frames an input must stay down
	// before it counts as held.
	HoldThreshold int
	Keys          map[string]ebiten.Key
	MouseButtons  map[string]ebiten.MouseButton

	// Standard-layout gamepad buttons by name. The stick directions also
	// press "up", "down", "left" and "right" past AnalogDeadzone.
	GamepadButtons map[string]ebiten.StandardGamepadButton
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	keys := map[string]ebiten.Key{
		"space":     ebiten.KeySpace,
		"enter":     ebiten.KeyEnter,
		"escape":    ebiten.KeyEscape,
		"shift":     ebiten.KeyShift,
		"control":   ebiten.KeyControl,
		"alt":       ebiten.KeyAlt,
		"tab":       ebiten.KeyTab,
		"backspace": ebiten.KeyBackspace,
		"up":        ebiten.KeyArrowUp,
		"down":      ebiten.KeyArrowDown,
		"left":      ebiten.KeyArrowLeft,
		"right":     ebiten.KeyArrowRight,
	}
	// Every ebiten key is also reachable by its lower-cased name
	// ("a", "digit0", "arrowup", ...).
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		name := strings.ToLower(k.String())
		if _, ok := keys[name]; !ok {
			keys[name] = k
		}
		if d, ok := strings.CutPrefix(name, "digit"); ok {
			keys[d] = k
		}
	}

	Input = InputConfig{
		HoldThreshold: 12,
		Keys:          keys,
		MouseButtons: map[string]ebiten.MouseButton{
			"left":   ebiten.MouseButtonLeft,
			"right":  ebiten.MouseButtonRight,
			"center": ebiten.MouseButtonMiddle,
		},
		GamepadButtons: map[string]ebiten.StandardGamepadButton{
			"a":      ebiten.StandardGamepadButtonRightBottom,
			"b":      ebiten.StandardGamepadButtonRightRight,
			"x":      ebiten.StandardGamepadButtonRightLeft,
			"y":      ebiten.StandardGamepadButtonRightTop,
			"l":      ebiten.StandardGamepadButtonFrontTopLeft,
			"r":      ebiten.StandardGamepadButtonFrontTopRight,
			"zl":     ebiten.StandardGamepadButtonFrontBottomLeft,
			"zr":     ebiten.StandardGamepadButtonFrontBottomRight,
			"select": ebiten.StandardGamepadButtonCenterLeft,
			"start":  ebiten.StandardGamepadButtonCenterRight,
			"home":   ebiten.StandardGamepadButtonCenterCenter,
			"lsb":    ebiten.StandardGamepadButtonLeftStick,
			"rsb":    ebiten.StandardGamepadButtonRightStick,
			"up":     ebiten.StandardGamepadButtonLeftTop,
			"down":   ebiten.StandardGamepadButtonLeftBottom,
			"left":   ebiten.StandardGamepadButtonLeftLeft,
			"right":  ebiten.StandardGamepadButtonLeftRight,
		},
		AnalogDeadzone: 0.25,
	}
}
