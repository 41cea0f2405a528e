// Package keyboard reads actions from ebiten's keyboard and standard gamepad
// state.
package keyboard

import (
	"github.com/automoto/ropewalk/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding represents the keys and buttons bound to one action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// DefaultBindings maps every action to its keys and gamepad buttons.
func DefaultBindings() map[config.ActionID]Binding {
	return map[config.ActionID]Binding{
		config.ActionMoveLeft: {
			Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		},
		config.ActionMoveRight: {
			Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		},
		config.ActionMoveUp: {
			Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
		},
		config.ActionMoveDown: {
			Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		},
		config.ActionJump: {
			Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyX},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		config.ActionModifierLeft: {
			Keys: []ebiten.Key{ebiten.KeyAltLeft},
			// Left bumper
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
		},
		config.ActionModifierRight: {
			Keys:                   []ebiten.Key{ebiten.KeyAltRight},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
		},
	}
}

// Source polls ebiten for the bound actions. Analog sticks are merged into
// the directional actions past the configured deadzone.
type Source struct {
	Bindings map[config.ActionID]Binding

	gamepads []ebiten.GamepadID
	analog   [config.ActionCount]bool
}

func NewSource() *Source {
	return &Source{Bindings: DefaultBindings()}
}

// Poll refreshes the gamepad list and analog state. Call once per frame
// before Pressed.
func (s *Source) Poll() {
	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	s.analog = [config.ActionCount]bool{}

	deadzone := config.Input.AnalogDeadzone
	for _, id := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			s.analog[config.ActionMoveLeft] = true
		}
		if horizontal > deadzone {
			s.analog[config.ActionMoveRight] = true
		}
		// Stick y is down-positive.
		if vertical < -deadzone {
			s.analog[config.ActionMoveUp] = true
		}
		if vertical > deadzone {
			s.analog[config.ActionMoveDown] = true
		}
	}
}

func (s *Source) Pressed(id config.ActionID) bool {
	if id < 0 || id >= config.ActionCount {
		return false
	}
	if s.analog[id] {
		return true
	}

	binding, ok := s.Bindings[id]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gp := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
				return true
			}
		}
	}
	return false
}
