package components

import (
	"github.com/mowret/lanebrawler/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound cues the simulation emits during a tick. The
// audio system drains the queue once per frame; in headless runs the
// queue is simply cleared, so systems can always call PlaySFX.
type AudioData struct {
	PendingSFX []config.SoundID
	SFXVolume  float64
}

var Audio = donburi.NewComponentType[AudioData]()
