package motion

import "github.com/automoto/ropewalk/config"

// Input is the per-tick view of the player's controls.
type Input interface {
	// Axis returns the smoothed value of a named axis in [-1, 1].
	Axis(name string) float64
	// AxisRaw returns the unsmoothed value of a named axis: -1, 0 or 1.
	AxisRaw(name string) float64
	// ButtonDown is true only on the frame a named button went down.
	ButtonDown(name string) bool
	KeyHeld(k Key) bool
	// KeyJustPressed is true only on the frame k went down.
	KeyJustPressed(k Key) bool
}

// Body is the physics handle of the player.
type Body interface {
	Velocity() Vec2
	SetVelocity(v Vec2)
	// ApplyImpulse changes velocity by impulse / mass immediately.
	ApplyImpulse(impulse Vec2)
	GravityScale() float64
	SetGravityScale(scale float64)
	// Position is the body center.
	Position() Vec2
	SetPosition(p Vec2)
}

// OverlapQuery reports whether a disc touches anything on the given layers.
type OverlapQuery interface {
	QueryOverlap(point Vec2, radius float64, mask LayerMask) bool
}

// SoundPlayer receives sound events such as the jump sound.
type SoundPlayer interface {
	Play(id config.SoundID)
}

// Presenter is the sprite the player is drawn with.
type Presenter interface {
	SetVisible(visible bool)
	// SetFlipX mirrors the sprite horizontally when flipped is true.
	SetFlipX(flipped bool)
}

// Animator receives the named animation booleans every frame tick.
type Animator interface {
	SetBool(name string, value bool)
}
