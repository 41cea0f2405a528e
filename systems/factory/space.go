package factory

import (
	"github.com/automoto/ropewalk/archetypes"
	"github.com/automoto/ropewalk/components"
	cfg "github.com/automoto/ropewalk/config"
	"github.com/automoto/ropewalk/physics"
	"github.com/automoto/ropewalk/physics/chipmunk"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreatePhysics creates the simulation singleton for a level of the given
// pixel size. The resolv space is always built because triggers live there;
// cfg.Physics.Backend decides which world moves the player.
func CreatePhysics(ecs *ecs.ECS, width, height int, log *zap.Logger) *donburi.Entry {
	entry := archetypes.Physics.Spawn(ecs)

	space := physics.NewWorld(width, height, log)
	data := components.PhysicsData{
		Space:  space,
		Ground: space,
		Clock: &components.FixedStep{
			Step:     cfg.Physics.FixedStep,
			MaxSteps: cfg.Physics.MaxStepsPerFrame,
		},
	}
	if cfg.Physics.Backend == cfg.BackendChipmunk {
		data.Rigid = chipmunk.NewWorld(cfg.Physics.Gravity, log)
		data.Ground = data.Rigid
	}
	components.Physics.SetValue(entry, data)

	if log != nil {
		log.Info("physics backend", zap.String("backend", cfg.Physics.Backend))
	}
	return entry
}

// physicsOf returns the physics singleton. Factories that need it are only
// called after CreatePhysics.
func physicsOf(ecs *ecs.ECS) *components.PhysicsData {
	entry, ok := components.Physics.First(ecs.World)
	if !ok {
		panic("factory: physics must be created before level entities")
	}
	return components.Physics.Get(entry)
}
