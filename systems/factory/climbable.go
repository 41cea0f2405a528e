package factory

import (
	"github.com/automoto/ropewalk/archetypes"
	"github.com/automoto/ropewalk/components"
	"github.com/automoto/ropewalk/level"
	"github.com/automoto/ropewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClimbable creates a ladder or rope volume. The climb axis is the
// vertical center line of the box.
func CreateClimbable(ecs *ecs.ECS, c level.Climbable) *donburi.Entry {
	climbable := archetypes.Climbable.Spawn(ecs)
	phys := physicsOf(ecs)

	obj := phys.Space.AddStatic(c.X, c.Y, c.W, c.H, tags.ResolvClimbable)
	obj.Data = climbable
	components.Object.SetValue(climbable, components.ObjectData{Object: obj})

	components.Climbable.SetValue(climbable, components.ClimbableData{
		Kind:    c.Kind,
		AnchorX: phys.Space.Center(obj).X,
	})
	return climbable
}
