package components

import "github.com/yohamta/donburi"

// ProgressData mirrors what was persisted this session.
type ProgressData struct {
	Wins   int
	Deaths int
}

var Progress = donburi.NewComponentType[ProgressData]()
