package factory

import (
	"github.com/automoto/ropewalk/archetypes"
	"github.com/automoto/ropewalk/components"
	"github.com/automoto/ropewalk/level"
	"github.com/automoto/ropewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWinRegion creates the goal volume.
func CreateWinRegion(ecs *ecs.ECS, name string, r level.Rect) *donburi.Entry {
	win := archetypes.WinRegion.Spawn(ecs)
	phys := physicsOf(ecs)

	obj := phys.Space.AddStatic(r.X, r.Y, r.W, r.H, tags.ResolvWin)
	obj.Data = win
	components.Object.SetValue(win, components.ObjectData{Object: obj})
	components.WinRegion.SetValue(win, components.WinRegionData{Name: name})
	return win
}
