package systems

import (
	"github.com/automoto/ropewalk/components"
	cfg "github.com/automoto/ropewalk/config"
	"github.com/automoto/ropewalk/logger"
	"github.com/automoto/ropewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Cutscene is started when the player reaches a win region.
type Cutscene interface {
	Start(region string)
}

// CutsceneFunc adapts a function to Cutscene.
type CutsceneFunc func(region string)

func (f CutsceneFunc) Start(region string) { f(region) }

var cutscene Cutscene

// SetCutscene installs the win cutscene. nil leaves wins unannounced.
func SetCutscene(c Cutscene) {
	cutscene = c
}

// UpdateWinRegions starts the cutscene once each time the player enters a
// win region and records the win. Without a cutscene an entry only logs.
func UpdateWinRegions(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	inside := touching(components.Object.Get(playerEntry).Object, tags.ResolvWin)

	tags.WinRegion.Each(ecs.World, func(e *donburi.Entry) {
		region := components.WinRegion.Get(e)
		now := inside[e]
		entered := now && !region.Occupied
		region.Occupied = now
		if !entered {
			return
		}

		if cutscene == nil {
			logger.Warn("win region reached but no cutscene is set", zap.String("region", region.Name))
			return
		}

		region.Wins++
		if entry, ok := components.Progress.First(ecs.World); ok {
			components.Progress.Get(entry).Wins++
		}
		RecordWin(levelName(ecs))
		PlaySFX(ecs, cfg.SoundWin)

		logger.Info("win region reached", zap.String("region", region.Name))
		cutscene.Start(region.Name)
	})
}
