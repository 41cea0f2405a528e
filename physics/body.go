package physics

import (
	"math"

	"github.com/automoto/ropewalk/motion"
	"github.com/automoto/ropewalk/tags"
	"github.com/solarlune/resolv"
)

// contactEpsilon absorbs float error when an object already sits flush
// against a solid.
const contactEpsilon = 1e-6

// Body is a dynamic box that collides with solids. It satisfies
// motion.Body.
type Body struct {
	Object *resolv.Object

	world        *World
	vel          motion.Vec2
	gravityScale float64
	mass         float64

	// Contact results of the latest step.
	wall      int // -1 wall on the left, 1 on the right
	supported bool
}

func (b *Body) Velocity() motion.Vec2         { return b.vel }
func (b *Body) SetVelocity(v motion.Vec2)     { b.vel = v }
func (b *Body) GravityScale() float64         { return b.gravityScale }
func (b *Body) SetGravityScale(scale float64) { b.gravityScale = scale }
func (b *Body) Mass() float64                 { return b.mass }

// WallContact is the side a wall blocked the last step on, or 0.
func (b *Body) WallContact() int { return b.wall }

// Supported reports whether a solid sat directly below after the last step.
func (b *Body) Supported() bool { return b.supported }

func (b *Body) ApplyImpulse(impulse motion.Vec2) {
	b.vel = b.vel.Add(impulse.Scale(1 / b.mass))
}

func (b *Body) Position() motion.Vec2 {
	return b.world.Center(b.Object)
}

func (b *Body) SetPosition(p motion.Vec2) {
	x, y := b.world.ToScreen(p)
	b.Object.X = x - b.Object.W/2
	b.Object.Y = y - b.Object.H/2
	b.Object.Update()
}

func (b *Body) step(dt float64) {
	ppu := b.world.PixelsPerUnit
	b.vel.Y += b.world.Gravity * b.gravityScale * dt

	dx := b.vel.X * dt * ppu
	dy := -b.vel.Y * dt * ppu

	// resolv only looks at the cells under the destination box, so long
	// moves are split to stay under half a cell each.
	half := b.world.cellSize / 2
	n := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) / half))
	if n < 1 {
		n = 1
	}

	b.wall = 0
	for i := 0; i < n; i++ {
		if hit := b.moveX(dx / float64(n)); hit != 0 {
			b.wall = hit
			dx = 0
		}
		if b.moveY(dy / float64(n)) {
			dy = 0
		}
	}

	b.supported = b.blockedBelow()
	if b.wall != 0 && !b.supported && b.world.CornerSlideForce > 0 {
		b.ApplyImpulse(motion.Vec2{X: -float64(b.wall) * b.world.CornerSlideForce})
	}
}

// moveX moves horizontally up to dx pixels and returns the side a wall was
// hit on.
func (b *Body) moveX(dx float64) int {
	if dx == 0 {
		return 0
	}
	obj := b.Object
	allowed := dx
	if check := obj.Check(reach(dx), 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			// Only solids sharing our vertical span can block.
			if !spans(obj.Y, obj.H, solid.Y, solid.H) {
				continue
			}
			contact := check.ContactWithObject(solid).X()
			if contact*dx < -contactEpsilon {
				continue
			}
			if math.Abs(contact) < math.Abs(allowed) {
				allowed = contact
			}
		}
	}

	obj.X += allowed
	obj.Update()
	if allowed != dx {
		b.vel.X = 0
		if dx > 0 {
			return 1
		}
		return -1
	}
	return 0
}

// moveY moves vertically up to dy pixels and reports whether a solid
// stopped it.
func (b *Body) moveY(dy float64) bool {
	if dy == 0 {
		return false
	}
	obj := b.Object
	allowed := dy
	if check := obj.Check(0, reach(dy), tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !spans(obj.X, obj.W, solid.X, solid.W) {
				continue
			}
			contact := check.ContactWithObject(solid).Y()
			if contact*dy < -contactEpsilon {
				continue
			}
			if math.Abs(contact) < math.Abs(allowed) {
				allowed = contact
			}
		}
	}

	obj.Y += allowed
	obj.Update()
	if allowed != dy {
		b.vel.Y = 0
		return true
	}
	return false
}

// spans reports whether two intervals overlap by more than float noise.
func spans(a, aLen, b, bLen float64) bool {
	return a < b+bLen-contactEpsilon && b < a+aLen-contactEpsilon
}

// reach pads a check distance by a pixel. resolv maps the far edge of the
// checked box one pixel in, which would miss a solid sitting flush.
func reach(d float64) float64 {
	if d < 0 {
		return d - 1
	}
	return d + 1
}

func (b *Body) blockedBelow() bool {
	obj := b.Object
	check := obj.Check(0, 1, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if obj.X < solid.X+solid.W && solid.X < obj.X+obj.W &&
			obj.Y+1 < solid.Y+solid.H && solid.Y < obj.Y+obj.H+1 {
			return true
		}
	}
	return false
}
