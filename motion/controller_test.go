package motion

import (
	"math"
	"testing"

	"github.com/automoto/ropewalk/config"
)

func TestWalkRightFlipsFacing(t *testing.T) {
	r := newRig(true)

	r.input.axes[AxisHorizontal] = -1
	r.c.Update(frame)
	if r.c.Facing() != FacingLeft {
		t.Fatalf("expected facing Left after walking left, got %v", r.c.Facing())
	}

	r.input.axes[AxisHorizontal] = 1
	r.c.Update(frame)

	if r.body.vel.X != 5 {
		t.Errorf("expected velocity.x == 5, got %v", r.body.vel.X)
	}
	if r.c.Facing() != FacingRight {
		t.Errorf("expected facing Right, got %v", r.c.Facing())
	}
	if r.sprite.flipped {
		t.Error("expected sprite unmirrored when facing right")
	}
	if r.c.Mode() != Grounded {
		t.Errorf("expected Grounded, got %v", r.c.Mode())
	}
}

func TestFlipIsIdempotent(t *testing.T) {
	r := newRig(true)
	r.input.axes[AxisHorizontal] = -1

	for i := 0; i < 5; i++ {
		r.c.Update(frame)
		if r.c.Facing() != FacingLeft {
			t.Fatalf("tick %d: expected facing Left, got %v", i, r.c.Facing())
		}
	}
	if r.sprite.flips != 1 {
		t.Errorf("expected exactly one flip, got %d", r.sprite.flips)
	}
}

func TestJumpAppliedOncePerPress(t *testing.T) {
	r := newRig(true)

	// Press on the first tick, hold for the next three.
	r.input.buttons[ButtonJump] = true
	r.c.Update(frame)
	r.input.clearEdges()
	for i := 0; i < 3; i++ {
		r.c.Update(frame)
	}

	if len(r.body.impulses) != 1 {
		t.Fatalf("expected one impulse, got %d", len(r.body.impulses))
	}
	if r.body.impulses[0] != (Vec2{Y: 7}) {
		t.Errorf("expected impulse (0, 7), got %v", r.body.impulses[0])
	}
	if r.sound.count(config.SoundJump) != 1 {
		t.Errorf("expected one jump sound, got %d", r.sound.count(config.SoundJump))
	}
}

func TestAltKeyEdgeJumps(t *testing.T) {
	for _, k := range []Key{KeyLeftAlt, KeyRightAlt} {
		r := newRig(true)
		r.input.pressed[k] = true
		r.c.Update(frame)
		if len(r.body.impulses) != 1 {
			t.Errorf("key %d: expected a jump, got %d impulses", k, len(r.body.impulses))
		}
	}
}

func TestJumpRequiresGround(t *testing.T) {
	r := newRig(false)
	r.input.buttons[ButtonJump] = true
	r.c.Update(frame)

	if len(r.body.impulses) != 0 {
		t.Errorf("expected no jump while airborne, got %v", r.body.impulses)
	}
	if r.c.Mode() != Airborne {
		t.Errorf("expected Airborne, got %v", r.c.Mode())
	}
}

func TestCrouchSuppressesJumpAndHorizontalMotion(t *testing.T) {
	r := newRig(true)
	r.body.vel = Vec2{X: 3, Y: 0}
	r.input.held[KeyDown] = true
	r.input.buttons[ButtonJump] = true

	r.c.Update(frame)

	if r.c.Mode() != Crouching {
		t.Fatalf("expected Crouching, got %v", r.c.Mode())
	}
	if r.body.vel.X != 0 {
		t.Errorf("expected velocity.x 0 while crouching, got %v", r.body.vel.X)
	}
	if len(r.body.impulses) != 0 {
		t.Errorf("expected no jump while crouching, got %v", r.body.impulses)
	}
	if !r.anim.values[AnimCrouching] {
		t.Error("expected IsCrouching animation flag")
	}

	// Down plus a direction is a walk, not a crouch.
	r.input.axes[AxisHorizontal] = -1
	r.input.clearEdges()
	r.c.Update(frame)
	if r.c.Mode() != Grounded {
		t.Errorf("expected Grounded when walking with down held, got %v", r.c.Mode())
	}
	if r.body.vel.X != -5 {
		t.Errorf("expected velocity.x -5, got %v", r.body.vel.X)
	}
}

func TestKnockbackPushesAwayFromFacing(t *testing.T) {
	tests := []struct {
		name   string
		inputX float64
		wantX  float64
	}{
		{"facing right", 1, -10},
		{"facing left", -1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(true)
			r.input.axes[AxisHorizontal] = tt.inputX
			r.c.Update(frame)
			r.body.impulses = nil

			if !r.c.RequestKnockback(Vec2{}) {
				t.Fatal("expected knockback to start")
			}
			if len(r.body.impulses) != 1 {
				t.Fatalf("expected one impulse, got %v", r.body.impulses)
			}
			if got := r.body.impulses[0]; got.X != tt.wantX || got.Y != 2 {
				t.Errorf("expected push (%v, 2), got %v", tt.wantX, got)
			}
			// Velocity was zeroed before the push.
			if r.body.vel != (Vec2{X: tt.wantX, Y: 2}) {
				t.Errorf("expected velocity to equal the push, got %v", r.body.vel)
			}
			if r.c.Mode() != Knockbacked {
				t.Errorf("expected Knockbacked, got %v", r.c.Mode())
			}
			if r.c.State().FacingAtKnockback != r.c.Facing() {
				t.Error("expected facing captured at knockback")
			}
		})
	}
}

func TestKnockbackLocksOutLocomotion(t *testing.T) {
	r := newRig(true)
	r.c.RequestKnockback(Vec2{X: 3})
	push := r.body.vel

	// Everything held: walk left, crouch, jump edges every tick.
	r.input.axes[AxisHorizontal] = -1
	r.input.held[KeyDown] = true

	ticks := 0
	for r.c.Mode() == Knockbacked {
		r.input.buttons[ButtonJump] = true
		r.input.pressed[KeyLeftAlt] = true
		r.c.Update(0.1)
		ticks++
		if r.c.Mode() != Knockbacked {
			break
		}
		if r.body.vel != push {
			t.Fatalf("tick %d: velocity changed during lockout: %v", ticks, r.body.vel)
		}
		if r.c.Facing() != FacingRight {
			t.Fatalf("tick %d: facing flipped during lockout", ticks)
		}
		if len(r.body.impulses) != 1 {
			t.Fatalf("tick %d: extra impulses during lockout: %v", ticks, r.body.impulses)
		}
		if ticks > 10 {
			t.Fatal("knockback never ended")
		}
	}

	if ticks < 5 || ticks > 6 {
		t.Errorf("expected lockout to last about 0.5s of 0.1s ticks, got %d ticks", ticks)
	}
	if r.c.State().KnockbackTimer != 0 {
		t.Errorf("expected timer 0 after lockout, got %v", r.c.State().KnockbackTimer)
	}
	if r.body.gravity != 2 {
		t.Errorf("expected gravity restored to 2, got %v", r.body.gravity)
	}
}

func TestKnockbackFlickerEndsVisible(t *testing.T) {
	r := newRig(true)
	r.c.RequestKnockback(Vec2{})

	// Lockout ends after 0.5s; flicker keeps going to 2s.
	for i := 0; i < 25; i++ {
		r.c.Update(0.1)
	}

	if r.sprite.toggles != 20 {
		t.Errorf("expected 20 visibility changes over 2s at 0.1s, got %d", r.sprite.toggles)
	}
	if !r.sprite.visible {
		t.Error("expected sprite visible after flicker")
	}
	if r.c.Knockback().Flicker().Phase() != FlickerDone {
		t.Errorf("expected flicker done, got %v", r.c.Knockback().Flicker().Phase())
	}
	for i, v := range r.sprite.history {
		if v != (i%2 == 1) {
			t.Fatalf("visibility change %d: expected %v, got %v", i, i%2 == 1, v)
		}
	}
}

func TestKnockbackRestartForcesVisibleFirst(t *testing.T) {
	r := newRig(true)
	r.c.RequestKnockback(Vec2{})
	if r.sprite.visible {
		t.Fatal("expected first flicker toggle to hide the sprite")
	}

	r.sprite.history = nil
	r.c.RequestKnockback(Vec2{})

	if len(r.sprite.history) != 2 || r.sprite.history[0] != true || r.sprite.history[1] != false {
		t.Errorf("expected restart to show then hide, got %v", r.sprite.history)
	}
	if r.c.State().KnockbackTimer != 0.5 {
		t.Errorf("expected timer reset to 0.5, got %v", r.c.State().KnockbackTimer)
	}
}

func TestKnockbackForceExitsClimbing(t *testing.T) {
	r := newRig(false)
	r.c.EnterClimbable(0)
	r.input.held[KeyUp] = true
	r.c.FixedUpdate(0.02)
	if r.c.Mode() != Climbing {
		t.Fatalf("expected Climbing, got %v", r.c.Mode())
	}

	r.c.RequestKnockback(Vec2{})

	if r.c.Mode() != Knockbacked {
		t.Errorf("expected Knockbacked, got %v", r.c.Mode())
	}
	if r.body.gravity != 2 {
		t.Errorf("expected gravity restored, got %v", r.body.gravity)
	}

	// Holding up near the ladder does not re-enter climbing mid-knockback.
	r.c.FixedUpdate(0.02)
	if r.c.Mode() != Knockbacked {
		t.Errorf("expected to stay Knockbacked, got %v", r.c.Mode())
	}
}

func TestClimbEntryTolerance(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     Mode
	}{
		{"centered", 0, Climbing},
		{"inside tolerance", 0.05, Climbing},
		{"at tolerance", 0.1, Airborne},
		{"just outside", 0.11, Airborne},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(false)
			r.body.pos = Vec2{X: tt.distance, Y: 2}
			r.c.EnterClimbable(0)
			r.input.held[KeyUp] = true

			r.c.FixedUpdate(0.02)

			if r.c.Mode() != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, r.c.Mode())
			}
			if tt.want == Climbing {
				if r.body.pos.X != 0 {
					t.Errorf("expected x snapped to the anchor, got %v", r.body.pos.X)
				}
				if r.body.gravity != 0 {
					t.Errorf("expected gravity 0 while climbing, got %v", r.body.gravity)
				}
			}
		})
	}
}

func TestClimbingDrivesVerticalVelocity(t *testing.T) {
	r := newRig(false)
	r.body.vel = Vec2{X: 3, Y: -4}
	r.c.EnterClimbable(0)
	r.input.held[KeyUp] = true
	r.input.axes[AxisVertical] = 1

	r.c.FixedUpdate(0.02)

	if r.body.vel != (Vec2{Y: 5}) {
		t.Errorf("expected climbing velocity (0, 5), got %v", r.body.vel)
	}

	// Frame ticks leave the climb alone, even with horizontal input.
	r.input.axes[AxisHorizontal] = 1
	r.c.Update(frame)
	if r.c.Mode() != Climbing || r.body.vel.X != 0 {
		t.Errorf("expected frame tick to skip locomotion while climbing, mode %v vel %v", r.c.Mode(), r.body.vel)
	}
	if !r.anim.values[AnimClimbing] || r.anim.values[AnimInAir] || r.anim.values[AnimWalking] {
		t.Errorf("unexpected animation flags while climbing: %v", r.anim.values)
	}
}

func TestClimbExits(t *testing.T) {
	tests := []struct {
		name     string
		grounded bool
		setup    func(r *rig)
		want     Mode
		impulse  *Vec2
	}{
		{
			name: "exit trigger",
			setup: func(r *rig) {
				r.c.ExitClimbable()
			},
			want: Airborne,
		},
		{
			name: "jump off left",
			setup: func(r *rig) {
				r.input.held[KeyLeft] = true
				r.input.held[KeyLeftAlt] = true
				r.c.FixedUpdate(0.02)
			},
			want:    Airborne,
			impulse: &Vec2{X: -5, Y: 5},
		},
		{
			name: "jump off right",
			setup: func(r *rig) {
				r.input.held[KeyRight] = true
				r.input.held[KeyRightAlt] = true
				r.c.FixedUpdate(0.02)
			},
			want:    Airborne,
			impulse: &Vec2{X: 5, Y: 5},
		},
		{
			name:     "down on the ground",
			grounded: true,
			setup: func(r *rig) {
				r.input.held[KeyUp] = false
				r.input.held[KeyDown] = true
				r.c.FixedUpdate(0.02)
			},
			want: Grounded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(false)
			r.c.EnterClimbable(0)
			r.input.held[KeyUp] = true
			r.c.FixedUpdate(0.02)
			if r.c.Mode() != Climbing {
				t.Fatalf("expected Climbing, got %v", r.c.Mode())
			}

			r.ground.grounded = tt.grounded
			r.input.held[KeyUp] = false
			tt.setup(r)

			if r.c.Mode() != tt.want {
				t.Errorf("expected %v, got %v", tt.want, r.c.Mode())
			}
			if r.body.gravity != 2 {
				t.Errorf("expected gravity restored to 2, got %v", r.body.gravity)
			}
			if tt.impulse != nil {
				if n := len(r.body.impulses); n != 1 || r.body.impulses[0] != *tt.impulse {
					t.Errorf("expected impulse %v, got %v", *tt.impulse, r.body.impulses)
				}
			}
		})
	}
}

func TestExitClimbableClearsAnchor(t *testing.T) {
	r := newRig(true)
	r.c.EnterClimbable(3)
	if s := r.c.State(); !s.NearClimbable || s.ClimbAnchorX != 3 {
		t.Fatalf("expected anchor 3, got %+v", s)
	}
	r.c.ExitClimbable()
	if s := r.c.State(); s.NearClimbable || s.ClimbAnchorX != 0 {
		t.Errorf("expected anchor cleared, got %+v", s)
	}
}

func TestFallClamp(t *testing.T) {
	r := newRig(false)
	r.body.vel = Vec2{X: 1, Y: -15}

	r.c.FixedUpdate(0.02)
	if r.body.vel.Y != -10 {
		t.Fatalf("expected velocity.y -10, got %v", r.body.vel.Y)
	}

	r.c.FixedUpdate(0.02)
	if r.body.vel.Y != -10 || r.body.vel.X != 1 {
		t.Errorf("expected clamp to be idempotent, got %v", r.body.vel)
	}

	// Not applied when grounded.
	g := newRig(true)
	g.body.vel = Vec2{Y: -15}
	g.c.FixedUpdate(0.02)
	if g.body.vel.Y != -15 {
		t.Errorf("expected no clamp on the ground, got %v", g.body.vel.Y)
	}
}

func TestClampFallIdempotent(t *testing.T) {
	for _, vy := range []float64{-100, -15, -10, -9.99, 0, 4, math.Inf(-1)} {
		once := ClampFall(vy, -10)
		twice := ClampFall(once, -10)
		if once != twice {
			t.Errorf("ClampFall(%v): once %v, twice %v", vy, once, twice)
		}
		if once < -10 {
			t.Errorf("ClampFall(%v) = %v, below the cap", vy, once)
		}
	}
}

func TestGroundProbedOncePerTick(t *testing.T) {
	r := newRig(true)
	r.ground.calls = 0

	r.c.Update(frame)
	if r.ground.calls != 1 {
		t.Errorf("expected 1 ground query per frame tick, got %d", r.ground.calls)
	}

	r.ground.calls = 0
	r.body.vel = Vec2{Y: -20}
	r.c.FixedUpdate(0.02)
	if r.ground.calls != 1 {
		t.Errorf("expected 1 ground query per physics tick, got %d", r.ground.calls)
	}
	if r.ground.lastMask != LayerMask(config.LayerGround) {
		t.Errorf("expected ground mask, got %v", r.ground.lastMask)
	}
}

func TestResetPosition(t *testing.T) {
	r := newRig(false)
	r.c.EnterClimbable(0)
	r.input.held[KeyUp] = true
	r.c.FixedUpdate(0.02)
	r.c.RequestKnockback(Vec2{})

	r.c.ResetPosition(Vec2{X: 10, Y: 3})

	s := r.c.State()
	if s.Position != (Vec2{X: 10, Y: 3}) {
		t.Errorf("expected position (10, 3), got %v", s.Position)
	}
	if s.Velocity != (Vec2{}) {
		t.Errorf("expected velocity zeroed, got %v", s.Velocity)
	}
	if s.Mode != Airborne || s.KnockbackTimer != 0 {
		t.Errorf("expected Airborne with no knockback, got %v timer %v", s.Mode, s.KnockbackTimer)
	}
	if !r.sprite.visible {
		t.Error("expected sprite visible after respawn")
	}
	if r.body.gravity != 2 {
		t.Errorf("expected gravity 2, got %v", r.body.gravity)
	}
}

func TestResetPositionOnlyWhenConfigured(t *testing.T) {
	r := newRig(true)
	cfg := testPlayer()
	cfg.RespawnResetsMotion = false
	r.c.SetTuning(cfg, testKnockback())
	r.c.RequestKnockback(Vec2{})

	r.c.ResetPosition(Vec2{X: 1, Y: 1})

	if r.c.Mode() != Knockbacked {
		t.Errorf("expected mode untouched, got %v", r.c.Mode())
	}
	if r.body.pos != (Vec2{X: 1, Y: 1}) {
		t.Errorf("expected position moved, got %v", r.body.pos)
	}
}

func TestStateConsistentAcrossScript(t *testing.T) {
	r := newRig(true)

	steps := []func(){
		func() { r.input.axes[AxisHorizontal] = 1 },
		func() { r.input.buttons[ButtonJump] = true },
		func() { r.ground.grounded = false },
		func() { r.c.EnterClimbable(r.body.pos.X) },
		func() { r.input.held[KeyUp] = true; r.input.axes[AxisHorizontal] = 0 },
		func() { r.input.axes[AxisVertical] = 1 },
		func() { r.c.RequestKnockback(Vec2{}) },
		func() { r.input.held[KeyUp] = false },
		func() {},
		func() {},
		func() { r.ground.grounded = true },
		func() { r.input.held[KeyDown] = true },
		func() { r.c.ExitClimbable() },
		func() { r.c.ResetPosition(Vec2{X: 2, Y: 2}) },
	}

	for i, step := range steps {
		step()
		for j := 0; j < 3; j++ {
			r.c.FixedUpdate(0.02)
			checkConsistent(t, r, i)
			r.c.Update(0.05)
			checkConsistent(t, r, i)
			r.input.clearEdges()
		}
	}
}

func checkConsistent(t *testing.T, r *rig, step int) {
	t.Helper()
	s := r.c.State()
	if s.Mode < Grounded || s.Mode > Knockbacked {
		t.Fatalf("step %d: invalid mode %v", step, s.Mode)
	}
	if (s.GravityScale == 0) != (s.Mode == Climbing) {
		t.Fatalf("step %d: gravity %v in mode %v", step, s.GravityScale, s.Mode)
	}
	if r.body.gravity != s.GravityScale {
		t.Fatalf("step %d: body gravity %v, state %v", step, r.body.gravity, s.GravityScale)
	}
	if !s.NearClimbable && s.ClimbAnchorX != 0 {
		t.Fatalf("step %d: anchor set without a climbable", step)
	}
	if (s.Mode == Knockbacked) != (s.KnockbackTimer > 0) {
		t.Fatalf("step %d: mode %v with knockback timer %v", step, s.Mode, s.KnockbackTimer)
	}
}

func TestAnimationFlags(t *testing.T) {
	tests := []struct {
		mode     Mode
		grounded bool
		inputX   float64
		want     AnimationFlags
	}{
		{Grounded, true, 0, AnimationFlags{}},
		{Grounded, true, 1, AnimationFlags{Walking: true}},
		{Airborne, false, -1, AnimationFlags{InAir: true, Walking: true}},
		{Crouching, true, 0, AnimationFlags{Crouching: true}},
		{Climbing, false, 1, AnimationFlags{Climbing: true}},
		{Knockbacked, false, 1, AnimationFlags{InAir: true, Knockback: true}},
	}

	for _, tt := range tests {
		if got := DeriveAnimation(tt.mode, tt.grounded, tt.inputX); got != tt.want {
			t.Errorf("DeriveAnimation(%v, %v, %v) = %+v, want %+v", tt.mode, tt.grounded, tt.inputX, got, tt.want)
		}
	}
}

func TestMissingCollaborators(t *testing.T) {
	c := NewController(testPlayer(), testKnockback(), Deps{})

	c.Update(frame)
	c.FixedUpdate(0.02)
	c.EnterClimbable(1)
	c.ExitClimbable()
	c.ResetPosition(Vec2{X: 1})

	if c.RequestKnockback(Vec2{}) {
		t.Error("expected knockback to be refused without a body")
	}
	if c.Mode() != Airborne {
		t.Errorf("expected Airborne without a ground sensor, got %v", c.Mode())
	}

	// A body alone is enough to move; outputs stay optional.
	body := newFakeBody()
	c = NewController(testPlayer(), testKnockback(), Deps{Body: body})
	if !c.RequestKnockback(Vec2{}) {
		t.Error("expected knockback with a body attached")
	}
	c.Update(0.6)
	if c.Mode() == Knockbacked {
		t.Error("expected knockback to end after its duration")
	}
}
