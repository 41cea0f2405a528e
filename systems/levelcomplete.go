package systems

import (
	"github.com/automoto/ropewalk/components"
	"github.com/yohamta/donburi/ecs"
)

// bannerSeconds is how long the level complete banner stays up.
const bannerSeconds = 3.0

// BannerCutscene is the default win cutscene: it raises the level complete
// banner on e's session.
func BannerCutscene(e *ecs.ECS) Cutscene {
	return CutsceneFunc(func(region string) {
		entry, ok := components.LevelComplete.First(e.World)
		if !ok {
			return
		}
		lc := components.LevelComplete.Get(entry)
		lc.IsComplete = true
		lc.Region = region
		lc.Timer = bannerSeconds
	})
}

// UpdateLevelComplete counts the banner down.
func UpdateLevelComplete(e *ecs.ECS) {
	entry, ok := components.LevelComplete.First(e.World)
	if !ok {
		return
	}
	lc := components.LevelComplete.Get(entry)
	if !lc.IsComplete {
		return
	}
	lc.Timer -= frameDelta()
	if lc.Timer <= 0 {
		lc.IsComplete = false
		lc.Timer = 0
	}
}
