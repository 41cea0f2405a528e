package systems

import (
	"math"

	"github.com/automoto/ropewalk/components"
	"github.com/automoto/ropewalk/config"
	"github.com/automoto/ropewalk/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, a little ahead of where
// they face, kept inside the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	controller := components.Player.Get(playerEntry).Controller

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	targetX := playerObject.X + playerObject.W/2 + float64(controller.Facing())*config.Camera.LookAheadDistanceX
	targetY := playerObject.Y + playerObject.H/2

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.CurrentLevel.Width)
	levelHeight := float64(levelData.CurrentLevel.Height)

	targetX = clampAxis(targetX, screenWidth, levelWidth)
	targetY = clampAxis(targetY, screenHeight, levelHeight)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis keeps the view inside the level. A level smaller than the
// screen is centered.
func clampAxis(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}
