package archetypes

import (
	"github.com/automoto/ropewalk/components"
	"github.com/automoto/ropewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Input,
		components.Sprite,
		components.Animation,
		components.State,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Climbable = newArchetype(
		tags.Climbable,
		components.Climbable,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.ElectricField,
		components.Object,
	)
	MovingObstacle = newArchetype(
		tags.MovingObstacle,
		components.MovingObstacle,
		components.Object,
	)
	WinRegion = newArchetype(
		tags.WinRegion,
		components.WinRegion,
		components.Object,
	)
	RespawnZone = newArchetype(
		tags.RespawnZone,
		components.RespawnZone,
		components.Object,
	)
	Physics = newArchetype(
		components.Physics,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Audio,
		components.LevelComplete,
		components.Progress,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return e.World.Entry(e.Create(
		ecs.LayerDefault,
		append(a.components, cs...)...,
	))
}
