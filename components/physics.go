package components

import (
	"github.com/automoto/ropewalk/motion"
	"github.com/automoto/ropewalk/physics"
	"github.com/automoto/ropewalk/physics/chipmunk"
	"github.com/yohamta/donburi"
)

// PhysicsData is the singleton simulation state. Space always exists and
// holds every trigger volume; Rigid is set only on the chipmunk backend.
type PhysicsData struct {
	Space  *physics.World
	Rigid  *chipmunk.World
	Ground motion.OverlapQuery
	Clock  *FixedStep
}

// Step advances whichever backend moves bodies.
func (p *PhysicsData) Step(dt float64) {
	if p.Rigid != nil {
		p.Rigid.Step(dt)
		return
	}
	p.Space.Step(dt)
}

var Physics = donburi.NewComponentType[PhysicsData]()
