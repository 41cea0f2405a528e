package components

import (
	cfg "github.com/automoto/ropewalk/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects until the audio system drains them.
type AudioData struct {
	PendingSFX []cfg.SoundID
	Played     int
}

// Play queues a sound effect.
func (a *AudioData) Play(id cfg.SoundID) {
	a.PendingSFX = append(a.PendingSFX, id)
}

var Audio = donburi.NewComponentType[AudioData]()
