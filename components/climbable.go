package components

import (
	"github.com/automoto/ropewalk/level"
	"github.com/yohamta/donburi"
)

type ClimbableData struct {
	Kind    level.ClimbKind
	AnchorX float64 // Climb axis in world units
	Inside  bool    // Player overlapped it last physics tick
}

var Climbable = donburi.NewComponentType[ClimbableData]()
