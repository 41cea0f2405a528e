package factory

import (
	"github.com/automoto/ropewalk/archetypes"
	"github.com/automoto/ropewalk/components"
	cfg "github.com/automoto/ropewalk/config"
	"github.com/automoto/ropewalk/level"
	"github.com/automoto/ropewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround adds a solid box. On the chipmunk backend the same box is
// mirrored into the rigid world on the ground layer.
func CreateGround(ecs *ecs.ECS, r level.Rect) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)
	phys := physicsOf(ecs)

	obj := phys.Space.AddStatic(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	obj.Data = ground
	components.Object.SetValue(ground, components.ObjectData{Object: obj})

	if phys.Rigid != nil {
		min := phys.Space.ToWorld(r.X, r.Y+r.H)
		max := phys.Space.ToWorld(r.X+r.W, r.Y)
		phys.Rigid.AddStatic(min, max, cfg.LayerGround)
	}
	return ground
}
