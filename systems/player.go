package systems

import (
	"github.com/automoto/ropewalk/components"
	"github.com/automoto/ropewalk/logger"
	"github.com/automoto/ropewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdatePlayer runs the frame tick of every player controller, then
// advances the animation clip the controller's flags select.
func UpdatePlayer(ecs *ecs.ECS) {
	dt := frameDelta()
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		player.Controller.Update(dt)
		updateState(e, dt)

		anim := components.Animation.Get(e)
		anim.SetAnimation()
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(dt)
		}
	})
}

func updateState(e *donburi.Entry, dt float64) {
	state := components.State.Get(e)
	mode := components.Player.Get(e).Controller.Mode()
	if mode == state.CurrentState {
		state.StateTimer += dt
		return
	}
	logger.Debug("mode changed",
		zap.Stringer("from", state.CurrentState),
		zap.Stringer("to", mode),
		zap.Float64("after", state.StateTimer),
	)
	state.PreviousState = state.CurrentState
	state.CurrentState = mode
	state.StateTimer = 0
}
