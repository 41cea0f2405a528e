// Package motion is the player movement core: one mode state machine driven
// by a frame tick and a physics tick, with knockback and climbing layered on
// top of plain locomotion. It knows nothing about ebiten, donburi or the
// collision engine; all of that reaches it through the interfaces in
// ports.go.
package motion

import "math"

// Vec2 is a world-space vector, y up.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Mode is the single active high-level behavior for a tick.
type Mode int

const (
	Grounded Mode = iota
	Airborne
	Crouching
	Climbing
	Knockbacked
)

var modeNames = [...]string{
	Grounded:    "Grounded",
	Airborne:    "Airborne",
	Crouching:   "Crouching",
	Climbing:    "Climbing",
	Knockbacked: "Knockbacked",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "Unknown"
	}
	return modeNames[m]
}

// Facing is the horizontal orientation. The values double as signs.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "Left"
	}
	return "Right"
}

// LayerMask selects collision layers for overlap queries.
type LayerMask uint32

// Key is a logical key the resolver asks about by code rather than by
// named axis or button.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyLeftAlt
	KeyRightAlt
	KeyCount
)

// Axis and button names understood by Input implementations.
const (
	AxisHorizontal = "Horizontal"
	AxisVertical   = "Vertical"
	ButtonJump     = "Jump"
)

// ClampFall caps downward speed: vy never goes below maxFall. Applying it
// twice gives the same result as applying it once.
func ClampFall(vy, maxFall float64) float64 {
	return math.Max(vy, maxFall)
}
