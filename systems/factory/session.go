package factory

import (
	"github.com/automoto/ropewalk/archetypes"
	"github.com/automoto/ropewalk/components"
	cfg "github.com/automoto/ropewalk/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the singleton holding the sound queue, the win
// banner and this session's progress counters.
func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Audio.SetValue(session, components.AudioData{
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})
	return session
}
