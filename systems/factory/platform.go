package factory

import (
	"github.com/automoto/ropewalk/archetypes"
	"github.com/automoto/ropewalk/components"
	"github.com/automoto/ropewalk/level"
	"github.com/automoto/ropewalk/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMovingObstacle creates an obstacle that slides right by Distance
// and back, forever.
func CreateMovingObstacle(ecs *ecs.ECS, o level.MovingObstacle) *donburi.Entry {
	obstacle := archetypes.MovingObstacle.Spawn(ecs)
	phys := physicsOf(ecs)

	obj := phys.Space.AddStatic(o.X, o.Y, o.W, o.H, tags.ResolvObstacle)
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})

	components.MovingObstacle.SetValue(obstacle, components.MovingObstacleData{
		Tween:       pingPong(o.X, o.Distance, o.Speed),
		Overlapping: make(map[*donburi.Entry]bool),
	})
	return obstacle
}

// pingPong tweens from start to start+distance and back at a constant
// speed. Each leg lasts distance/speed seconds.
func pingPong(start, distance, speed float64) *gween.Sequence {
	leg := float32(0)
	if speed > 0 {
		leg = float32(distance / speed)
	}
	from, to := float32(start), float32(start+distance)
	return gween.NewSequence(
		gween.New(from, to, leg, ease.Linear),
		gween.New(to, from, leg, ease.Linear),
	)
}
