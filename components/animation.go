package components

import (
	"github.com/automoto/ropewalk/assets/animations"
	"github.com/automoto/ropewalk/motion"
	"github.com/yohamta/donburi"
)

// AnimationData receives the controller's animation booleans and picks the
// clip the renderer times.
type AnimationData struct {
	Flags            map[string]bool
	Animations       map[string]*animations.Animation
	CurrentAnimation *animations.Animation
}

// clipOrder is checked top to bottom; the first set flag wins.
var clipOrder = []string{
	motion.AnimKnockback,
	motion.AnimClimbing,
	motion.AnimInAir,
	motion.AnimCrouching,
	motion.AnimWalking,
}

// ClipIdle plays when no flag is set.
const ClipIdle = "Idle"

func (a *AnimationData) SetBool(name string, value bool) {
	if a.Flags == nil {
		a.Flags = make(map[string]bool, len(clipOrder))
	}
	a.Flags[name] = value
}

// Clip returns the name of the clip the flags select.
func (a *AnimationData) Clip() string {
	for _, name := range clipOrder {
		if a.Flags[name] {
			return name
		}
	}
	return ClipIdle
}

// SetAnimation switches to the clip for the current flags, restarting it
// when it changes.
func (a *AnimationData) SetAnimation() {
	anim, ok := a.Animations[a.Clip()]
	if !ok {
		a.CurrentAnimation = nil
		return
	}
	if a.CurrentAnimation != anim {
		a.CurrentAnimation = anim
		anim.Restart()
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
