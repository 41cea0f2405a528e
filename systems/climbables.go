package systems

import (
	"github.com/automoto/ropewalk/components"
	"github.com/automoto/ropewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClimbables tells the player's controller when it enters and leaves
// ladder and rope volumes. Leaving one while still inside another hands
// the player over to the remaining one.
func UpdateClimbables(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	controller := components.Player.Get(playerEntry).Controller
	inside := touching(components.Object.Get(playerEntry).Object, tags.ResolvClimbable)

	var entered, left []*components.ClimbableData
	var stillInside *components.ClimbableData
	tags.Climbable.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Climbable.Get(e)
		now := inside[e]
		switch {
		case now && !c.Inside:
			entered = append(entered, c)
		case !now && c.Inside:
			left = append(left, c)
		case now:
			stillInside = c
		}
		c.Inside = now
	})

	state := controller.State()
	for _, c := range left {
		if !state.NearClimbable || state.ClimbAnchorX != c.AnchorX {
			continue
		}
		if stillInside != nil {
			controller.EnterClimbable(stillInside.AnchorX)
		} else if len(entered) == 0 {
			controller.ExitClimbable()
		}
		break
	}
	for _, c := range entered {
		controller.EnterClimbable(c.AnchorX)
	}
}
