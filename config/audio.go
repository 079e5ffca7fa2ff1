package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundMine
	SoundPlace
	SoundSwing
	SoundShoot
	SoundHurt
	SoundHeal
	SoundEquip
	SoundBossHit
	SoundBossDefeated
	SoundDeath
	SoundRespawn
)

// Tone describes a generated square-wave effect sweeping from FromHz to ToHz.
type Tone struct {
	FromHz   float64
	ToHz     float64
	Duration float64 // seconds
	Volume   float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their generated tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundJump:         {FromHz: 300, ToHz: 600, Duration: 0.08, Volume: 0.4},
			SoundMine:         {FromHz: 180, ToHz: 120, Duration: 0.06, Volume: 0.5},
			SoundPlace:        {FromHz: 220, ToHz: 260, Duration: 0.05, Volume: 0.5},
			SoundSwing:        {FromHz: 900, ToHz: 400, Duration: 0.07, Volume: 0.3},
			SoundShoot:        {FromHz: 700, ToHz: 1200, Duration: 0.06, Volume: 0.3},
			SoundHurt:         {FromHz: 400, ToHz: 150, Duration: 0.15, Volume: 0.6},
			SoundHeal:         {FromHz: 500, ToHz: 900, Duration: 0.2, Volume: 0.4},
			SoundEquip:        {FromHz: 350, ToHz: 700, Duration: 0.12, Volume: 0.4},
			SoundBossHit:      {FromHz: 150, ToHz: 90, Duration: 0.1, Volume: 0.6},
			SoundBossDefeated: {FromHz: 600, ToHz: 80, Duration: 0.6, Volume: 0.6},
			SoundDeath:        {FromHz: 300, ToHz: 60, Duration: 0.7, Volume: 0.6},
			SoundRespawn:      {FromHz: 200, ToHz: 800, Duration: 0.25, Volume: 0.4},
		},
	}
}
