package motion

import "github.com/automoto/ropewalk/config"

type fakeBody struct {
	pos      Vec2
	vel      Vec2
	gravity  float64
	mass     float64
	impulses []Vec2
}

func newFakeBody() *fakeBody {
	return &fakeBody{mass: 1}
}

func (b *fakeBody) Velocity() Vec2            { return b.vel }
func (b *fakeBody) SetVelocity(v Vec2)        { b.vel = v }
func (b *fakeBody) GravityScale() float64     { return b.gravity }
func (b *fakeBody) SetGravityScale(s float64) { b.gravity = s }
func (b *fakeBody) Position() Vec2            { return b.pos }
func (b *fakeBody) SetPosition(p Vec2)        { b.pos = p }

func (b *fakeBody) ApplyImpulse(impulse Vec2) {
	b.impulses = append(b.impulses, impulse)
	b.vel = b.vel.Add(impulse.Scale(1 / b.mass))
}

type fakeGround struct {
	grounded bool
	calls    int
	lastMask LayerMask
}

func (g *fakeGround) QueryOverlap(point Vec2, radius float64, mask LayerMask) bool {
	g.calls++
	g.lastMask = mask
	return g.grounded
}

// fakeInput holds key and axis state for the current tick. Edges are set by
// the test for exactly the tick they should fire on.
type fakeInput struct {
	axes    map[string]float64
	held    map[Key]bool
	pressed map[Key]bool
	buttons map[string]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		axes:    map[string]float64{},
		held:    map[Key]bool{},
		pressed: map[Key]bool{},
		buttons: map[string]bool{},
	}
}

func (in *fakeInput) Axis(name string) float64    { return in.axes[name] }
func (in *fakeInput) AxisRaw(name string) float64 { return in.axes[name] }
func (in *fakeInput) ButtonDown(name string) bool { return in.buttons[name] }
func (in *fakeInput) KeyHeld(k Key) bool          { return in.held[k] }
func (in *fakeInput) KeyJustPressed(k Key) bool   { return in.pressed[k] }

func (in *fakeInput) clearEdges() {
	in.pressed = map[Key]bool{}
	in.buttons = map[string]bool{}
}

type fakeSprite struct {
	visible bool
	flipped bool
	toggles int
	flips   int
	history []bool
}

func newFakeSprite() *fakeSprite {
	return &fakeSprite{visible: true}
}

func (s *fakeSprite) SetVisible(v bool) {
	s.visible = v
	s.toggles++
	s.history = append(s.history, v)
}

func (s *fakeSprite) SetFlipX(flipped bool) {
	s.flipped = flipped
	s.flips++
}

type fakeSound struct {
	played []config.SoundID
}

func (s *fakeSound) Play(id config.SoundID) { s.played = append(s.played, id) }

func (s *fakeSound) count(id config.SoundID) int {
	n := 0
	for _, p := range s.played {
		if p == id {
			n++
		}
	}
	return n
}

type fakeAnimator struct {
	values map[string]bool
}

func (a *fakeAnimator) SetBool(name string, v bool) {
	if a.values == nil {
		a.values = map[string]bool{}
	}
	a.values[name] = v
}

type rig struct {
	c      *Controller
	body   *fakeBody
	ground *fakeGround
	input  *fakeInput
	sprite *fakeSprite
	sound  *fakeSound
	anim   *fakeAnimator
}

func newRig(grounded bool) *rig {
	r := &rig{
		body:   newFakeBody(),
		ground: &fakeGround{grounded: grounded},
		input:  newFakeInput(),
		sprite: newFakeSprite(),
		sound:  &fakeSound{},
		anim:   &fakeAnimator{},
	}
	r.c = NewController(testPlayer(), testKnockback(), Deps{
		Body:     r.body,
		Ground:   r.ground,
		Input:    r.input,
		Sound:    r.sound,
		Sprite:   r.sprite,
		Animator: r.anim,
	})
	return r
}

func testPlayer() config.PlayerConfig {
	return config.PlayerConfig{
		MovementSpeed:       5,
		JumpForce:           7,
		ClimbJumpForce:      5,
		MaxFallSpeed:        -10,
		GravityScale:        2,
		Mass:                1,
		GroundCheckRadius:   0.1,
		GroundCheckOffsetY:  0.5,
		GroundMask:          config.LayerGround,
		ClimbSnapTolerance:  0.1,
		RespawnResetsMotion: true,
		CollisionWidth:      0.5,
		CollisionHeight:     1,
	}
}

func testKnockback() config.KnockbackConfig {
	return config.KnockbackConfig{
		ForceX:          10,
		ForceY:          2,
		Duration:        0.5,
		FlickerInterval: 0.1,
		FlickerDuration: 2,
	}
}

const frame = 1.0 / 60.0
