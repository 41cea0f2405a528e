package systems

import (
	"github.com/automoto/ropewalk/components"
	"github.com/automoto/ropewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics runs as many fixed ticks as the frame's time covers.
func UpdatePhysics(ecs *ecs.ECS) {
	phys := physicsData(ecs)
	if phys == nil {
		return
	}
	steps := phys.Clock.Advance(frameDelta())
	for i := 0; i < steps; i++ {
		FixedUpdate(ecs, phys.Clock.Step)
	}
}

// FixedUpdate is one physics tick: controllers first, then integration,
// then everything that reacts to where bodies ended up.
func FixedUpdate(ecs *ecs.ECS, dt float64) {
	phys := physicsData(ecs)
	if phys == nil {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		components.Player.Get(e).Controller.FixedUpdate(dt)
	})

	phys.Step(dt)
	UpdateObjects(ecs)

	UpdateObstacles(ecs, dt)
	UpdateClimbables(ecs)
	UpdateHazards(ecs, dt)
	UpdateRespawnZones(ecs)
	UpdateWinRegions(ecs)
}

func physicsData(ecs *ecs.ECS) *components.PhysicsData {
	entry, ok := components.Physics.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Physics.Get(entry)
}
