// Package chipmunk is the rigid-body backend built on jakecoffman/cp. It
// works directly in world units with y up.
package chipmunk

import (
	"math"

	"github.com/automoto/ropewalk/motion"
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"
)

// World wraps a cp space.
type World struct {
	space *cp.Space
	log   *zap.Logger
}

func NewWorld(gravity float64, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &World{space: space, log: log}
}

// Space exposes the underlying cp space.
func (w *World) Space() *cp.Space {
	return w.space
}

// AddStatic adds a fixed box on the given layer. min and max are opposite
// corners in world units.
func (w *World) AddStatic(min, max motion.Vec2, layer uint32) *cp.Shape {
	bb := cp.BB{
		L: math.Min(min.X, max.X),
		B: math.Min(min.Y, max.Y),
		R: math.Max(min.X, max.X),
		T: math.Max(min.Y, max.Y),
	}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(layer), cp.ALL_CATEGORIES))
	w.space.AddShape(shape)
	return shape
}

// NewBody adds a dynamic box that never rotates, centered on pos.
func (w *World) NewBody(pos motion.Vec2, width, height, mass float64, layer uint32) *Body {
	if mass <= 0 {
		mass = 1
	}
	b := &Body{gravityScale: 1}

	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity.Mult(b.gravityScale), damping, dt)
	})

	shape := cp.NewBox(body, width, height, 0)
	// Velocity is driven by the controller; friction would fight it on walls.
	shape.SetFriction(0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(layer), cp.ALL_CATEGORIES))

	w.space.AddBody(body)
	w.space.AddShape(shape)

	b.body = body
	b.shape = shape
	return b
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// QueryOverlap reports whether any shape on the mask's layers lies strictly
// within radius of point.
func (w *World) QueryOverlap(point motion.Vec2, radius float64, mask motion.LayerMask) bool {
	if mask == 0 {
		return false
	}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))
	info := w.space.PointQueryNearest(cp.Vector{X: point.X, Y: point.Y}, radius, filter)
	return info.Shape != nil
}

// Body satisfies motion.Body on top of a cp body.
type Body struct {
	body         *cp.Body
	shape        *cp.Shape
	gravityScale float64
}

func (b *Body) CP() *cp.Body                  { return b.body }
func (b *Body) GravityScale() float64         { return b.gravityScale }
func (b *Body) SetGravityScale(scale float64) { b.gravityScale = scale }

func (b *Body) Velocity() motion.Vec2 {
	v := b.body.Velocity()
	return motion.Vec2{X: v.X, Y: v.Y}
}

func (b *Body) SetVelocity(v motion.Vec2) {
	b.body.SetVelocityVector(cp.Vector{X: v.X, Y: v.Y})
}

func (b *Body) ApplyImpulse(impulse motion.Vec2) {
	b.body.ApplyImpulseAtWorldPoint(cp.Vector{X: impulse.X, Y: impulse.Y}, b.body.Position())
}

func (b *Body) Position() motion.Vec2 {
	p := b.body.Position()
	return motion.Vec2{X: p.X, Y: p.Y}
}

func (b *Body) SetPosition(p motion.Vec2) {
	b.body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
}
