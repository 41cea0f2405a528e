package factory

import (
	"github.com/automoto/ropewalk/assets/animations"
	"github.com/automoto/ropewalk/components"
	cfg "github.com/automoto/ropewalk/config"
)

// GenerateAnimations builds the clip set for the player from
// cfg.PlayerAnimations.
func GenerateAnimations() components.AnimationData {
	data := components.AnimationData{
		Flags:      make(map[string]bool),
		Animations: make(map[string]*animations.Animation, len(cfg.PlayerAnimations)),
	}
	for name, def := range cfg.PlayerAnimations {
		data.Animations[name] = animations.NewAnimation(name, def.First, def.Last, def.FrameSeconds)
	}
	data.CurrentAnimation = data.Animations[components.ClipIdle]
	return data
}
