package components

import "github.com/yohamta/donburi"

// LevelCompleteData drives the win banner.
type LevelCompleteData struct {
	IsComplete bool
	Region     string
	Timer      float64 // Seconds the banner has left
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
