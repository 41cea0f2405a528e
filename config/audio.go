package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundKnockback
	SoundRespawn
	SoundWin
)

var soundNames = map[SoundID]string{
	SoundNone:      "none",
	SoundJump:      "jump",
	SoundKnockback: "knockback",
	SoundRespawn:   "respawn",
	SoundWin:       "win",
}

func (s SoundID) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return "unknown"
}

// Tone describes a synthesized sound effect
type Tone struct {
	Frequency float64 `yaml:"frequency"` // Hz at the start
	Slide     float64 `yaml:"slide"`     // Hz added by the end
	Seconds   float64 `yaml:"seconds"`
	Volume    float64 `yaml:"volume"` // Multiplier on SFXVolume
}

// SoundConfig contains audio settings
type SoundConfig struct {
	Enabled    bool             `yaml:"enabled"`
	SampleRate int              `yaml:"sampleRate"`
	SFXVolume  float64          `yaml:"sfxVolume"` // 0.0 - 1.0
	Tones      map[SoundID]Tone `yaml:"-"`
}

// Sound is the global audio configuration
var Sound SoundConfig

func defaultSound() SoundConfig {
	return SoundConfig{
		Enabled:    true,
		SampleRate: 44100,
		SFXVolume:  0.5,
		Tones: map[SoundID]Tone{
			SoundJump:      {Frequency: 440, Slide: 440, Seconds: 0.12, Volume: 0.6},
			SoundKnockback: {Frequency: 220, Slide: -140, Seconds: 0.25, Volume: 0.8},
			SoundRespawn:   {Frequency: 330, Slide: 330, Seconds: 0.3, Volume: 0.6},
			SoundWin:       {Frequency: 523, Slide: 523, Seconds: 0.6, Volume: 0.7},
		},
	}
}
