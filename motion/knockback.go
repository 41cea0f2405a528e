package motion

import "github.com/automoto/ropewalk/config"

// Knockback runs one knockback episode at a time: a lockout timer plus an
// independent flicker. The timer alone decides when locomotion comes back;
// the flicker may still be running after that.
type Knockback struct {
	cfg     config.KnockbackConfig
	timer   float64
	facing  Facing
	flicker *Flicker
}

func NewKnockback(cfg config.KnockbackConfig, onVisible func(bool)) *Knockback {
	return &Knockback{
		cfg:     cfg,
		facing:  FacingRight,
		flicker: NewFlicker(cfg.FlickerInterval, cfg.FlickerDuration, onVisible),
	}
}

// Begin starts a new episode for a player facing the given way and returns
// the push impulse, which points away from the facing direction.
func (k *Knockback) Begin(facing Facing) Vec2 {
	k.facing = facing
	k.timer = k.cfg.Duration
	k.flicker.Start()
	return k.Push()
}

// Push is the impulse of the current episode.
func (k *Knockback) Push() Vec2 {
	dir := 1.0
	if k.facing == FacingRight {
		dir = -1.0
	}
	return Vec2{X: dir * k.cfg.ForceX, Y: k.cfg.ForceY}
}

// Tick advances the timer and the flicker by one frame.
func (k *Knockback) Tick(dt float64) {
	k.flicker.Advance(dt)
	if k.timer > 0 {
		k.timer -= dt
		if k.timer < 0 {
			k.timer = 0
		}
	}
}

// Cancel ends the episode immediately and makes the sprite visible.
func (k *Knockback) Cancel() {
	k.timer = 0
	k.flicker.Cancel()
}

// SetConfig swaps tuning for future episodes.
func (k *Knockback) SetConfig(cfg config.KnockbackConfig) {
	k.cfg = cfg
	k.flicker.Interval = cfg.FlickerInterval
	k.flicker.Duration = cfg.FlickerDuration
}

func (k *Knockback) Active() bool      { return k.timer > 0 }
func (k *Knockback) Timer() float64    { return k.timer }
func (k *Knockback) Facing() Facing    { return k.facing }
func (k *Knockback) Flicker() *Flicker { return k.flicker }
