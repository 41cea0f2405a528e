package components

import (
	"github.com/automoto/ropewalk/level"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *level.Level
	Path         string
}

var Level = donburi.NewComponentType[LevelData]()
