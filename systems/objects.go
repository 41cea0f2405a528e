package systems

import (
	"github.com/automoto/ropewalk/components"
	"github.com/automoto/ropewalk/physics"
	"github.com/automoto/ropewalk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each player's trigger box onto its body. On the
// resolv backend the box is the body and nothing moves.
func UpdateObjects(ecs *ecs.ECS) {
	phys := physicsData(ecs)
	if phys == nil {
		return
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		x, y := phys.Space.ToScreen(components.Player.Get(e).Body.Position())
		moveObject(obj.Object, x-obj.W/2, y-obj.H/2)
	})
}

func moveObject(obj *resolv.Object, x, y float64) {
	if obj.X == x && obj.Y == y {
		return
	}
	obj.X, obj.Y = x, y
	obj.Update()
}

// touching returns the entities behind the objects tagged tag that
// strictly overlap obj.
func touching(obj *resolv.Object, tag string) map[*donburi.Entry]bool {
	out := map[*donburi.Entry]bool{}
	for _, other := range physics.Touching(obj, tag) {
		if entry, ok := other.Data.(*donburi.Entry); ok && entry != nil {
			out[entry] = true
		}
	}
	return out
}
