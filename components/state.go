package components

import (
	"github.com/automoto/ropewalk/motion"
	"github.com/yohamta/donburi"
)

// StateData tracks mode changes for logging and the HUD.
type StateData struct {
	CurrentState  motion.Mode
	PreviousState motion.Mode
	StateTimer    float64 // Seconds in the current mode
}

var State = donburi.NewComponentType[StateData]()
