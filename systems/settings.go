package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var preMuteSFXVol float64

// UpdateSettings handles the global toggles that live outside the game
// phases: fullscreen on F11, mute on M. Changes are persisted right away.
func UpdateSettings(e *ecs.ECS) {
	changed := false

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		changed = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if globalSFXVolume > 0 {
			preMuteSFXVol = globalSFXVolume
			SetSFXVolume(0)
		} else {
			if preMuteSFXVol == 0 {
				preMuteSFXVol = 1.0
			}
			SetSFXVolume(preMuteSFXVol)
		}
		changed = true
	}

	if changed {
		vol := globalSFXVolume
		if vol == 0 {
			vol = preMuteSFXVol
		}
		_ = SaveSettings(&SavedSettings{
			SFXVolume:  vol,
			Muted:      globalSFXVolume == 0,
			Fullscreen: ebiten.IsFullscreen(),
		})
	}
}
