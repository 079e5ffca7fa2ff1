package systems

import (
	"testing"

	cfg "github.com/automoto/blockrunner/config"
	"github.com/stretchr/testify/assert"
)

func TestSynthToneLength(t *testing.T) {
	pcm := synthTone(cfg.Tone{FromHz: 200, ToHz: 400, Duration: 0.1, Volume: 1}, 44100)
	// 16-bit stereo
	assert.Len(t, pcm, 4410*4)

	// Both channels carry the same sample.
	for i := 0; i < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("channels differ at frame %d", i/4)
		}
	}
}

func TestAudioQueueDrainsWithoutContext(t *testing.T) {
	w := newTestWorld(t)
	e, _ := newTestGame(t, w, 40)

	PlaySFX(e, cfg.SoundJump)
	assert.Len(t, GetOrCreateAudio(e).PendingSFX, 1)

	UpdateAudio(e)
	assert.Empty(t, GetOrCreateAudio(e).PendingSFX)
}
