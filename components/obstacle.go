package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type MovingObstacleData struct {
	Tween *gween.Sequence
	// Overlapping holds the entities inside last tick so only the enter
	// edge knocks back.
	Overlapping map[*donburi.Entry]bool
}

var MovingObstacle = donburi.NewComponentType[MovingObstacleData]()
