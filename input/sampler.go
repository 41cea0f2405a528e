// Package input turns per-frame action state into the named axes, buttons
// and keys the motion controller reads.
package input

import (
	"math"

	"github.com/automoto/ropewalk/config"
	"github.com/automoto/ropewalk/motion"
)

// Source reports which actions are held right now.
type Source interface {
	Pressed(id config.ActionID) bool
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

var keyActions = [motion.KeyCount]config.ActionID{
	motion.KeyUp:       config.ActionMoveUp,
	motion.KeyDown:     config.ActionMoveDown,
	motion.KeyLeft:     config.ActionMoveLeft,
	motion.KeyRight:    config.ActionMoveRight,
	motion.KeyLeftAlt:  config.ActionModifierLeft,
	motion.KeyRightAlt: config.ActionModifierRight,
}

// Sampler stores the current and previous frame's pressed state for all
// actions plus the smoothed axes. JustPressed is computed on demand by
// comparing frames. It satisfies motion.Input.
type Sampler struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool

	horizontal float64
	vertical   float64
}

func NewSampler() *Sampler {
	return &Sampler{}
}

// Sample swaps buffers, polls src and moves the smoothed axes toward their
// raw values. Must run before the player's frame tick.
func (s *Sampler) Sample(src Source, dt float64) {
	s.Previous = s.Current
	s.Current = [config.ActionCount]bool{}
	if src != nil {
		for id := config.ActionNone + 1; id < config.ActionCount; id++ {
			s.Current[id] = src.Pressed(id)
		}
	}

	s.horizontal = smooth(s.horizontal, s.AxisRaw(motion.AxisHorizontal), dt)
	s.vertical = smooth(s.vertical, s.AxisRaw(motion.AxisVertical), dt)
}

// Set overrides the current state of one action. Used for replayed and
// synthetic input.
func (s *Sampler) Set(id config.ActionID, pressed bool) {
	s.Current[id] = pressed
}

// Action returns the full ActionState for an action ID.
func (s *Sampler) Action(id config.ActionID) ActionState {
	curr := s.Current[id]
	prev := s.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

func (s *Sampler) Axis(name string) float64 {
	switch name {
	case motion.AxisHorizontal:
		return s.horizontal
	case motion.AxisVertical:
		return s.vertical
	}
	return 0
}

func (s *Sampler) AxisRaw(name string) float64 {
	switch name {
	case motion.AxisHorizontal:
		return s.rawAxis(config.ActionMoveLeft, config.ActionMoveRight)
	case motion.AxisVertical:
		return s.rawAxis(config.ActionMoveDown, config.ActionMoveUp)
	}
	return 0
}

func (s *Sampler) rawAxis(negative, positive config.ActionID) float64 {
	v := 0.0
	if s.Current[negative] {
		v--
	}
	if s.Current[positive] {
		v++
	}
	return v
}

func (s *Sampler) ButtonDown(name string) bool {
	if name == motion.ButtonJump {
		return s.Action(config.ActionJump).JustPressed
	}
	return false
}

func (s *Sampler) KeyHeld(k motion.Key) bool {
	if k < 0 || k >= motion.KeyCount {
		return false
	}
	return s.Current[keyActions[k]]
}

func (s *Sampler) KeyJustPressed(k motion.Key) bool {
	if k < 0 || k >= motion.KeyCount {
		return false
	}
	return s.Action(keyActions[k]).JustPressed
}

// smooth moves v toward target at the configured sensitivity, or back to
// zero at the configured gravity when there is no input. A reversal snaps
// through zero first.
func smooth(v, target, dt float64) float64 {
	if target == 0 {
		return approach(v, 0, config.Input.AxisGravity*dt)
	}
	if v != 0 && math.Signbit(v) != math.Signbit(target) {
		v = 0
	}
	return approach(v, target, config.Input.AxisSensitivity*dt)
}

func approach(v, target, step float64) float64 {
	if v < target {
		return math.Min(v+step, target)
	}
	return math.Max(v-step, target)
}
