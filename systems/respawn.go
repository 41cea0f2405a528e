package systems

import (
	"github.com/automoto/ropewalk/components"
	cfg "github.com/automoto/ropewalk/config"
	"github.com/automoto/ropewalk/logger"
	"github.com/automoto/ropewalk/motion"
	"github.com/automoto/ropewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateRespawnZones sends a player touching a respawn zone back to the
// zone's point and counts it as a death.
func UpdateRespawnZones(ecs *ecs.ECS) {
	tags.RespawnZone.Each(ecs.World, func(e *donburi.Entry) {
		zone := components.RespawnZone.Get(e)
		obj := components.Object.Get(e)
		for player := range touching(obj.Object, tags.ResolvPlayer) {
			if !player.HasComponent(components.Player) {
				continue
			}
			respawn(ecs, player, motion.Vec2{X: zone.PointX, Y: zone.PointY})
			zone.Uses++
		}
	})
}

func respawn(ecs *ecs.ECS, player *donburi.Entry, point motion.Vec2) {
	components.Player.Get(player).Controller.ResetPosition(point)
	UpdateObjects(ecs)
	PlaySFX(ecs, cfg.SoundRespawn)

	if entry, ok := components.Progress.First(ecs.World); ok {
		components.Progress.Get(entry).Deaths++
	}
	RecordDeath(levelName(ecs))
	logger.Info("respawned", zap.Float64("x", point.X), zap.Float64("y", point.Y))
}

func levelName(ecs *ecs.ECS) string {
	entry, ok := components.Level.First(ecs.World)
	if !ok || components.Level.Get(entry).CurrentLevel == nil {
		return "unknown"
	}
	return components.Level.Get(entry).CurrentLevel.Name
}
