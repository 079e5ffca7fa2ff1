package systems

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalToneCache    = map[cfg.SoundID][]byte{}
	audioInitOnce      sync.Once
)

// StartAudio creates the audio context. Browsers only allow this after the
// first user gesture, so it is called from UpdateInput.
func StartAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// UpdateAudio plays the sound effects queued this frame. Without a context
// the queue is dropped.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if globalAudioContext != nil {
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	tone, ok := cfg.Sound.Tones[soundID]
	if !ok {
		return
	}

	pcm, ok := globalToneCache[soundID]
	if !ok {
		pcm = synthTone(tone, cfg.Audio.SampleRate)
		globalToneCache[soundID] = pcm
	}

	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(globalSFXVolume * tone.Volume)
	player.Play()
}

// synthTone renders a square wave sweeping linearly between the tone's
// frequencies as 16-bit little-endian stereo PCM.
func synthTone(t cfg.Tone, sampleRate int) []byte {
	n := int(t.Duration * float64(sampleRate))
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		hz := t.FromHz + (t.ToHz-t.FromHz)*progress
		phase += hz / float64(sampleRate)
		_, frac := math.Modf(phase)

		amp := 0.3 * (1 - progress) // linear release
		if frac >= 0.5 {
			amp = -amp
		}
		v := uint16(int16(amp * math.MaxInt16))

		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
