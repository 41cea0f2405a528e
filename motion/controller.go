package motion

import (
	"math"

	"github.com/automoto/ropewalk/config"
	"go.uber.org/zap"
)

// Deps are the capabilities a Controller works through. Body, Ground and
// Input drive behavior; the rest are outputs and may be left nil.
type Deps struct {
	Body     Body
	Ground   OverlapQuery
	Input    Input
	Sound    SoundPlayer
	Sprite   Presenter
	Animator Animator
	Logger   *zap.Logger
}

// State is a snapshot of the player's kinematic state.
type State struct {
	Mode              Mode
	Facing            Facing
	GravityScale      float64
	KnockbackTimer    float64
	NearClimbable     bool
	ClimbAnchorX      float64 // Meaningful only while NearClimbable
	FacingAtKnockback Facing
	Grounded          bool // Ground sensor result of the latest tick
	Position          Vec2
	Velocity          Vec2
}

// Controller resolves player motion. Update runs once per rendered frame and
// owns locomotion, jumping, crouching, facing and the knockback timer.
// FixedUpdate runs once per physics step and owns climbing and the fall
// clamp.
type Controller struct {
	cfg config.PlayerConfig
	log *zap.Logger

	body     Body
	input    Input
	sound    SoundPlayer
	sprite   Presenter
	animator Animator
	sensor   GroundSensor

	mode              Mode
	facing            Facing
	gravityScale      float64
	nearClimbable     bool
	climbAnchorX      float64
	facingAtKnockback Facing
	grounded          bool
	inputX            float64

	knockback *Knockback
	anim      AnimationFlags
}

func NewController(player config.PlayerConfig, knockback config.KnockbackConfig, deps Deps) *Controller {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	c := &Controller{
		cfg:      player,
		log:      log,
		body:     deps.Body,
		input:    deps.Input,
		sound:    deps.Sound,
		sprite:   deps.Sprite,
		animator: deps.Animator,
		sensor: GroundSensor{
			Query:  deps.Ground,
			Offset: Vec2{Y: -player.GroundCheckOffsetY},
			Radius: player.GroundCheckRadius,
			Mask:   LayerMask(player.GroundMask),
		},
		facing:            FacingRight,
		facingAtKnockback: FacingRight,
	}
	c.knockback = NewKnockback(knockback, c.showSprite)

	for name, missing := range map[string]bool{
		"body":     deps.Body == nil,
		"ground":   deps.Ground == nil,
		"input":    deps.Input == nil,
		"sound":    deps.Sound == nil,
		"sprite":   deps.Sprite == nil,
		"animator": deps.Animator == nil,
	} {
		if missing {
			log.Warn("collaborator not attached, feature disabled", zap.String("collaborator", name))
		}
	}

	c.setGravity(player.GravityScale)
	c.grounded = c.probe()
	c.mode = restingMode(c.grounded, false)
	return c
}

// Update is the frame tick.
func (c *Controller) Update(dt float64) {
	c.grounded = c.probe()

	c.knockback.Tick(dt)
	if c.mode == Knockbacked && !c.knockback.Active() {
		c.mode = restingMode(c.grounded, false)
		c.setGravity(c.cfg.GravityScale)
		c.log.Debug("knockback ended", zap.Stringer("mode", c.mode))
	}

	c.inputX = 0
	if c.input != nil {
		c.inputX = c.input.AxisRaw(AxisHorizontal)
	}

	switch c.mode {
	case Knockbacked, Climbing:
	default:
		c.locomotion()
	}

	c.anim = DeriveAnimation(c.mode, c.grounded, c.inputX)
	if c.animator != nil {
		c.anim.Apply(c.animator)
	}
}

func (c *Controller) locomotion() {
	if c.input == nil || c.body == nil {
		c.mode = restingMode(c.grounded, false)
		return
	}

	crouching := c.input.KeyHeld(KeyDown) && c.inputX == 0

	v := c.body.Velocity()
	if crouching {
		v.X = 0
	} else {
		v.X = c.inputX * c.cfg.MovementSpeed
	}
	c.body.SetVelocity(v)

	if !crouching {
		if c.grounded && c.jumpRequested() {
			c.body.ApplyImpulse(Vec2{Y: c.cfg.JumpForce})
			c.playSound(config.SoundJump)
		}
		c.faceToward(c.inputX)
	}

	c.mode = restingMode(c.grounded, crouching)
}

func (c *Controller) jumpRequested() bool {
	return c.input.ButtonDown(ButtonJump) ||
		c.input.KeyJustPressed(KeyLeftAlt) ||
		c.input.KeyJustPressed(KeyRightAlt)
}

func (c *Controller) faceToward(inputX float64) {
	switch {
	case inputX > 0 && c.facing == FacingLeft:
		c.flip()
	case inputX < 0 && c.facing == FacingRight:
		c.flip()
	}
}

func (c *Controller) flip() {
	c.facing = -c.facing
	if c.sprite != nil {
		c.sprite.SetFlipX(c.facing == FacingLeft)
	}
}

// FixedUpdate is the physics tick.
func (c *Controller) FixedUpdate(dt float64) {
	if c.body == nil {
		return
	}
	c.grounded = c.probe()

	if c.mode != Knockbacked && c.canEnterClimb() {
		c.enterClimb()
	}
	if c.mode == Climbing {
		c.climb()
	}

	if !c.grounded && c.mode != Climbing {
		v := c.body.Velocity()
		if clamped := ClampFall(v.Y, c.cfg.MaxFallSpeed); clamped != v.Y {
			v.Y = clamped
			c.body.SetVelocity(v)
		}
	}
}

func (c *Controller) canEnterClimb() bool {
	if c.input == nil || !c.nearClimbable || !c.input.KeyHeld(KeyUp) {
		return false
	}
	return math.Abs(c.body.Position().X-c.climbAnchorX) < c.cfg.ClimbSnapTolerance
}

func (c *Controller) enterClimb() {
	if c.mode != Climbing {
		c.log.Debug("climb started", zap.Float64("anchorX", c.climbAnchorX))
	}
	c.mode = Climbing
	c.setGravity(0)
	c.pinToAnchor()
}

func (c *Controller) climb() {
	c.pinToAnchor()

	vy := 0.0
	if c.input != nil {
		vy = c.input.AxisRaw(AxisVertical) * c.cfg.MovementSpeed
	}
	c.body.SetVelocity(Vec2{Y: vy})

	if c.input == nil {
		return
	}

	left := c.input.KeyHeld(KeyLeft)
	right := c.input.KeyHeld(KeyRight)
	modifier := c.input.KeyHeld(KeyLeftAlt) || c.input.KeyHeld(KeyRightAlt)
	if (left || right) && modifier {
		dir := 1.0
		if left {
			dir = -1.0
		}
		c.leaveClimb(Airborne)
		c.body.ApplyImpulse(Vec2{X: dir * c.cfg.ClimbJumpForce, Y: c.cfg.ClimbJumpForce})
		return
	}

	if c.grounded && c.input.KeyHeld(KeyDown) {
		c.leaveClimb(Grounded)
	}
}

func (c *Controller) pinToAnchor() {
	p := c.body.Position()
	if p.X != c.climbAnchorX {
		p.X = c.climbAnchorX
		c.body.SetPosition(p)
	}
}

func (c *Controller) leaveClimb(next Mode) {
	c.mode = next
	c.setGravity(c.cfg.GravityScale)
	c.log.Debug("climb ended", zap.Stringer("mode", next))
}

// EnterClimbable marks the player as inside a ladder or rope volume whose
// climb axis is at anchorX.
func (c *Controller) EnterClimbable(anchorX float64) {
	c.nearClimbable = true
	c.climbAnchorX = anchorX
}

// ExitClimbable clears climb eligibility and drops the player off the
// ladder if they were on it.
func (c *Controller) ExitClimbable() {
	c.nearClimbable = false
	c.climbAnchorX = 0
	if c.mode == Climbing {
		c.leaveClimb(restingMode(c.probe(), false))
	}
}

// RequestKnockback starts a knockback episode. The push direction comes from
// the player's facing, not from the source; from is only logged. It returns
// false when no body is attached.
func (c *Controller) RequestKnockback(from Vec2) bool {
	if c.body == nil {
		return false
	}
	if c.mode == Climbing {
		c.leaveClimb(Airborne)
	}

	c.facingAtKnockback = c.facing
	push := c.knockback.Begin(c.facing)
	c.body.SetVelocity(Vec2{})
	c.body.ApplyImpulse(push)
	c.mode = Knockbacked
	c.setGravity(c.cfg.GravityScale)
	c.playSound(config.SoundKnockback)

	c.log.Debug("knockback",
		zap.Stringer("facing", c.facing),
		zap.Float64("pushX", push.X),
		zap.Float64("pushY", push.Y),
		zap.Float64("fromX", from.X),
		zap.Float64("fromY", from.Y),
	)
	return true
}

// ResetPosition teleports the player. With RespawnResetsMotion set it also
// zeroes velocity, ends any knockback or climb and restores gravity.
func (c *Controller) ResetPosition(p Vec2) {
	if c.body == nil {
		return
	}
	c.body.SetPosition(p)
	if !c.cfg.RespawnResetsMotion {
		return
	}

	c.body.SetVelocity(Vec2{})
	c.knockback.Cancel()
	c.setGravity(c.cfg.GravityScale)
	c.grounded = c.probe()
	c.mode = restingMode(c.grounded, false)
	c.log.Debug("respawned", zap.Float64("x", p.X), zap.Float64("y", p.Y), zap.Stringer("mode", c.mode))
}

// SetTuning swaps in new tuning, e.g. after a config reload. A knockback
// episode in progress keeps its original timing.
func (c *Controller) SetTuning(player config.PlayerConfig, knockback config.KnockbackConfig) {
	c.cfg = player
	c.sensor.Offset = Vec2{Y: -player.GroundCheckOffsetY}
	c.sensor.Radius = player.GroundCheckRadius
	c.sensor.Mask = LayerMask(player.GroundMask)
	c.knockback.SetConfig(knockback)
	if c.mode != Climbing {
		c.setGravity(player.GravityScale)
	}
}

func (c *Controller) probe() bool {
	if c.body == nil {
		return false
	}
	return c.sensor.Probe(c.body.Position())
}

func (c *Controller) setGravity(scale float64) {
	c.gravityScale = scale
	if c.body != nil {
		c.body.SetGravityScale(scale)
	}
}

func (c *Controller) showSprite(visible bool) {
	if c.sprite != nil {
		c.sprite.SetVisible(visible)
	}
}

func (c *Controller) playSound(id config.SoundID) {
	if c.sound != nil {
		c.sound.Play(id)
	}
}

func restingMode(grounded, crouching bool) Mode {
	switch {
	case !grounded:
		return Airborne
	case crouching:
		return Crouching
	default:
		return Grounded
	}
}

// State returns a snapshot of the kinematic state.
func (c *Controller) State() State {
	s := State{
		Mode:              c.mode,
		Facing:            c.facing,
		GravityScale:      c.gravityScale,
		KnockbackTimer:    c.knockback.Timer(),
		NearClimbable:     c.nearClimbable,
		ClimbAnchorX:      c.climbAnchorX,
		FacingAtKnockback: c.facingAtKnockback,
		Grounded:          c.grounded,
	}
	if c.body != nil {
		s.Position = c.body.Position()
		s.Velocity = c.body.Velocity()
	}
	return s
}

func (c *Controller) Mode() Mode                { return c.mode }
func (c *Controller) Facing() Facing            { return c.facing }
func (c *Controller) Grounded() bool            { return c.grounded }
func (c *Controller) Visible() bool             { return c.knockback.Flicker().Visible() }
func (c *Controller) Animation() AnimationFlags { return c.anim }
func (c *Controller) Knockback() *Knockback     { return c.knockback }
