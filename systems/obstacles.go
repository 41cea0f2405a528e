package systems

import (
	"github.com/automoto/ropewalk/components"
	"github.com/automoto/ropewalk/logger"
	"github.com/automoto/ropewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateObstacles slides moving obstacles along their tweens and knocks
// back players on the tick they first touch one.
func UpdateObstacles(ecs *ecs.ECS, dt float64) {
	phys := physicsData(ecs)
	if phys == nil {
		return
	}

	tags.MovingObstacle.Each(ecs.World, func(e *donburi.Entry) {
		obstacle := components.MovingObstacle.Get(e)
		obj := components.Object.Get(e)

		x, _, done := obstacle.Tween.Update(float32(dt))
		if done {
			obstacle.Tween.Reset()
		}
		moveObject(obj.Object, float64(x), obj.Y)

		inside := touching(obj.Object, tags.ResolvPlayer)
		for player := range inside {
			if obstacle.Overlapping[player] || !player.HasComponent(components.Player) {
				continue
			}
			from := phys.Space.Center(obj.Object)
			if components.Player.Get(player).Controller.RequestKnockback(from) {
				logger.Debug("hit by moving obstacle", zap.Float64("x", from.X), zap.Float64("y", from.Y))
			}
		}
		obstacle.Overlapping = inside
	})
}
