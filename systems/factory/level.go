package factory

import (
	"fmt"

	"github.com/automoto/ropewalk/archetypes"
	"github.com/automoto/ropewalk/components"
	"github.com/automoto/ropewalk/input"
	"github.com/automoto/ropewalk/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateLevel builds every entity of lvl: physics, ground, climbables,
// hazards, obstacles, win and respawn regions, the session singleton, the
// camera and finally the player. It returns the player entry.
func CreateLevel(ecs *ecs.ECS, lvl *level.Level, path string, src input.Source, log *zap.Logger) (*donburi.Entry, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("level %s has no size", lvl.Name)
	}

	levelEntry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(levelEntry, components.LevelData{
		CurrentLevel: lvl,
		Path:         path,
	})

	CreatePhysics(ecs, lvl.Width, lvl.Height, log)
	CreateSession(ecs)

	for _, r := range lvl.Ground {
		CreateGround(ecs, r)
	}
	for _, c := range lvl.Climbables {
		CreateClimbable(ecs, c)
	}
	for _, h := range lvl.Hazards {
		CreateHazard(ecs, h)
	}
	for _, o := range lvl.Obstacles {
		CreateMovingObstacle(ecs, o)
	}
	for i, r := range lvl.Win {
		CreateWinRegion(ecs, fmt.Sprintf("%s/win%d", lvl.Name, i), r)
	}
	for _, z := range lvl.Respawns {
		CreateRespawnZone(ecs, z)
	}

	spawn := lvl.Spawn()
	CreateCamera(ecs, spawn.X, spawn.Y)
	player := CreatePlayer(ecs, spawn.X, spawn.Y, src, log)

	log.Info("level built",
		zap.String("level", lvl.Name),
		zap.Int("ground", len(lvl.Ground)),
		zap.Int("climbables", len(lvl.Climbables)),
		zap.Int("hazards", len(lvl.Hazards)),
		zap.Int("obstacles", len(lvl.Obstacles)),
		zap.Int("respawnZones", len(lvl.Respawns)),
	)
	return player, nil
}
