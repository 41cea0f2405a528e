package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionModifierLeft  // Left Alt: jump edge, climb-exit jump while held
	ActionModifierRight // Right Alt
	ActionCount         // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:          "none",
	ActionMoveLeft:      "moveLeft",
	ActionMoveRight:     "moveRight",
	ActionMoveUp:        "moveUp",
	ActionMoveDown:      "moveDown",
	ActionJump:          "jump",
	ActionModifierLeft:  "modifierLeft",
	ActionModifierRight: "modifierRight",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputConfig holds axis smoothing and deadzone values. Key bindings live
// with the keyboard source since they are ebiten key codes.
type InputConfig struct {
	// Units per second a smoothed axis moves toward its raw value
	AxisSensitivity float64 `yaml:"axisSensitivity"`
	// Units per second a smoothed axis falls back to zero with no input
	AxisGravity float64 `yaml:"axisGravity"`
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64 `yaml:"analogDeadzone"`
}

// Input is the global input configuration
var Input InputConfig

func defaultInput() InputConfig {
	return InputConfig{
		AxisSensitivity: 3.0,
		AxisGravity:     3.0,
		AnalogDeadzone:  0.25,
	}
}
