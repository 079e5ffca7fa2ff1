package components

import (
	cfg "github.com/automoto/blockrunner/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects for the audio system (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
