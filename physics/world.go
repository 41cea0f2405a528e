// Package physics is the default body backend: axis-aligned boxes moving
// through a resolv grid space. World coordinates are in units with y up;
// the space works in pixels with y down, PixelsPerUnit apart.
package physics

import (
	"math"

	"github.com/automoto/ropewalk/config"
	"github.com/automoto/ropewalk/motion"
	"github.com/automoto/ropewalk/tags"
	"github.com/solarlune/resolv"
	"go.uber.org/zap"
)

// layerTags maps collision layers to the resolv tags objects on that layer
// carry.
var layerTags = []struct {
	layer uint32
	tag   string
}{
	{config.LayerGround, tags.ResolvSolid},
	{config.LayerClimbable, tags.ResolvClimbable},
	{config.LayerHazard, tags.ResolvHazard},
	{config.LayerPlayer, tags.ResolvPlayer},
}

// TagsFor returns the resolv tags selected by mask.
func TagsFor(mask motion.LayerMask) []string {
	var out []string
	for _, lt := range layerTags {
		if uint32(mask)&lt.layer != 0 {
			out = append(out, lt.tag)
		}
	}
	return out
}

// World owns the resolv space and every dynamic body in it.
type World struct {
	Space            *resolv.Space
	PixelsPerUnit    float64
	Gravity          float64
	CornerSlideForce float64

	cellSize float64
	sensor   *resolv.Object
	bodies   []*Body
	log      *zap.Logger
}

// NewWorld creates a space covering width x height pixels, tuned from
// config.Physics.
func NewWorld(width, height int, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	cell := config.Physics.CellSize
	w := &World{
		Space:            resolv.NewSpace(width, height, cell, cell),
		PixelsPerUnit:    config.Physics.PixelsPerUnit,
		Gravity:          config.Physics.Gravity,
		CornerSlideForce: config.Physics.CornerSlideForce,
		cellSize:         float64(cell),
		log:              log,
	}

	// The sensor has no tags so tagged checks from bodies never see it.
	w.sensor = resolv.NewObject(0, 0, 1, 1)
	w.Space.Add(w.sensor)

	log.Debug("physics world created",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("cell", cell),
		zap.Float64("ppu", w.PixelsPerUnit),
	)
	return w
}

// AddStatic places a fixed box given in pixels (top-left origin) and
// returns its resolv object.
func (w *World) AddStatic(x, y, width, height float64, objTags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, width, height, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	w.Space.Add(obj)
	return obj
}

// Remove takes an object out of the space.
func (w *World) Remove(obj *resolv.Object) {
	w.Space.Remove(obj)
}

// NewBody creates a dynamic box of the given size in units centered on pos.
func (w *World) NewBody(pos motion.Vec2, width, height, mass float64, objTags ...string) *Body {
	pw, ph := width*w.PixelsPerUnit, height*w.PixelsPerUnit
	obj := resolv.NewObject(0, 0, pw, ph, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, pw, ph))
	w.Space.Add(obj)

	if mass <= 0 {
		mass = 1
	}
	b := &Body{Object: obj, world: w, mass: mass, gravityScale: 1}
	b.SetPosition(pos)
	w.bodies = append(w.bodies, b)
	return b
}

// RemoveBody detaches b from the world.
func (w *World) RemoveBody(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	w.Space.Remove(b.Object)
}

// Step integrates every body by dt seconds.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		b.step(dt)
	}
}

// QueryOverlap reports whether a disc in world units touches any object on
// the mask's layers. Boundary contact does not count.
func (w *World) QueryOverlap(point motion.Vec2, radius float64, mask motion.LayerMask) bool {
	objTags := TagsFor(mask)
	if len(objTags) == 0 {
		return false
	}

	cx, cy := w.ToScreen(point)
	r := radius * w.PixelsPerUnit
	// Padded by a pixel per side; resolv trims the far edge when mapping
	// to cells.
	size := 2*r + 2
	w.sensor.X = cx - size/2
	w.sensor.Y = cy - size/2
	w.sensor.W = size
	w.sensor.H = size
	w.sensor.Update()

	// Checked one tag at a time so an object on any selected layer matches.
	for _, tag := range objTags {
		check := w.sensor.Check(0, 0, tag)
		if check == nil {
			continue
		}
		for _, obj := range check.ObjectsByTags(tag) {
			if DiscOverlapsRect(cx, cy, r, obj.X, obj.Y, obj.W, obj.H) {
				return true
			}
		}
	}
	return false
}

// ToScreen converts a world point to pixels.
func (w *World) ToScreen(p motion.Vec2) (float64, float64) {
	return p.X * w.PixelsPerUnit, -p.Y * w.PixelsPerUnit
}

// ToWorld converts a pixel point to world units.
func (w *World) ToWorld(x, y float64) motion.Vec2 {
	return motion.Vec2{X: x / w.PixelsPerUnit, Y: -y / w.PixelsPerUnit}
}

// Center returns the world-space center of a pixel-space object.
func (w *World) Center(obj *resolv.Object) motion.Vec2 {
	return w.ToWorld(obj.X+obj.W/2, obj.Y+obj.H/2)
}

// DiscOverlapsRect is true when the disc strictly overlaps the rectangle.
// A zero radius is a point test against the open rectangle.
func DiscOverlapsRect(cx, cy, r, x, y, width, height float64) bool {
	nx := math.Max(x, math.Min(cx, x+width))
	ny := math.Max(y, math.Min(cy, y+height))
	dx, dy := cx-nx, cy-ny
	if r == 0 {
		return cx > x && cx < x+width && cy > y && cy < y+height
	}
	return dx*dx+dy*dy < r*r
}

// Overlaps is true when two objects' boxes strictly intersect.
func Overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// Touching returns the objects tagged tag that strictly overlap obj.
func Touching(obj *resolv.Object, tag string) []*resolv.Object {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var out []*resolv.Object
	for _, other := range check.ObjectsByTags(tag) {
		if Overlaps(obj, other) {
			out = append(out, other)
		}
	}
	return out
}
