package assets

import (
	"fmt"

	cfg "github.com/automoto/ropewalk/config"
	"github.com/automoto/ropewalk/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes sound effects once and caches the PCM bytes.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders every configured tone up front.
func (l *AudioLoader) PreloadSFX() {
	for id := range cfg.Sound.Tones {
		l.pcm(id)
	}
}

// LoadSFX returns a new player for the sound each call.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data := l.pcm(id)
	if data == nil {
		return nil, fmt.Errorf("no tone configured for sound %s", id)
	}
	return l.context.NewPlayerFromBytes(data), nil
}

func (l *AudioLoader) pcm(id cfg.SoundID) []byte {
	if cached, ok := l.sfxCache[id]; ok {
		return cached
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil
	}
	data := synth.Tone(tone, l.context.SampleRate())
	l.sfxCache[id] = data
	return data
}

// Play starts a sound at the given volume. Every call gets its own player so
// overlapping effects mix.
func (l *AudioLoader) Play(id cfg.SoundID, volume float64) error {
	player, err := l.LoadSFX(id)
	if err != nil {
		return err
	}
	player.SetVolume(volume)
	player.Play()
	return nil
}
