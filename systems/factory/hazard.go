package factory

import (
	"github.com/automoto/ropewalk/archetypes"
	"github.com/automoto/ropewalk/components"
	"github.com/automoto/ropewalk/level"
	"github.com/automoto/ropewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHazard creates an electric field. It starts in its damaging phase.
func CreateHazard(ecs *ecs.ECS, f level.ElectricField) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)
	phys := physicsOf(ecs)

	obj := phys.Space.AddStatic(f.X, f.Y, f.W, f.H, tags.ResolvHazard)
	obj.Data = hazard
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})

	components.ElectricField.SetValue(hazard, components.ElectricFieldData{
		OnSeconds:  f.OnSeconds,
		OffSeconds: f.OffSeconds,
		Knocked:    make(map[*donburi.Entry]struct{}),
	})
	components.ElectricField.Get(hazard).SetDamaging(true)
	return hazard
}
