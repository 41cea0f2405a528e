package systems

import (
	"github.com/automoto/ropewalk/components"
	cfg "github.com/automoto/ropewalk/config"
	"github.com/automoto/ropewalk/logger"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SFXPlayer plays a sound effect at a volume in [0, 1].
type SFXPlayer interface {
	Play(id cfg.SoundID, volume float64) error
}

var sfxPlayer SFXPlayer

// SetSFXPlayer installs the audio output. The game passes an
// assets.AudioLoader; headless runs leave it nil.
func SetSFXPlayer(p SFXPlayer) {
	sfxPlayer = p
}

// UpdateAudio drains the queued sound effects.
func UpdateAudio(ecs *ecs.ECS) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, id := range audioData.PendingSFX {
		playSFX(id)
		audioData.Played++
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(id cfg.SoundID) {
	logger.Debug("sfx", zap.Stringer("sound", id))
	if sfxPlayer == nil || !cfg.Sound.Enabled || cfg.Sound.SFXVolume <= 0 {
		return
	}

	volume := cfg.Sound.SFXVolume
	if tone, ok := cfg.Sound.Tones[id]; ok && tone.Volume > 0 {
		volume *= tone.Volume
	}
	if err := sfxPlayer.Play(id, volume); err != nil {
		logger.Warn("could not play sound", zap.Stringer("sound", id), zap.Error(err))
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(ecs *ecs.ECS, sound cfg.SoundID) {
	if entry, ok := components.Audio.First(ecs.World); ok {
		components.Audio.Get(entry).Play(sound)
	}
}
