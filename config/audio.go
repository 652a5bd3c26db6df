package config

// SoundID identifies a sound effect cue. The simulation fires cues by ID
// and never waits on playback; a missing file simply skips the cue.
type SoundID int

const (
	SoundNone SoundID = iota
	SoundMeleeSwingHeavy
	SoundMeleeSwingLight
	SoundRangedCast
	SoundHit
	SoundEnemySwing
	SoundBlock
	SoundDodge
	SoundBlink
	SoundCoin
	SoundMenuNavigate
	SoundMenuSelect
	SoundPurchase
)

// SoundConfig maps sound IDs to asset paths and per-cue volume tweaks.
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

// AudioConfig contains audio system configuration.
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

var Sound SoundConfig
var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundMeleeSwingHeavy: "audio/melee_swing_heavy.wav",
			SoundMeleeSwingLight: "audio/melee_swing_light.wav",
			SoundRangedCast:      "audio/ranged_cast.wav",
			SoundHit:             "audio/hit.wav",
			SoundEnemySwing:      "audio/enemy_swing.wav",
			SoundBlock:           "audio/block.wav",
			SoundDodge:           "audio/dodge.wav",
			SoundBlink:           "audio/blink.wav",
			SoundCoin:            "audio/coin.wav",
			SoundMenuNavigate:    "audio/menu_navigate.wav",
			SoundMenuSelect:      "audio/menu_select.wav",
			SoundPurchase:        "audio/purchase.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundCoin:         0.6,
			SoundMenuNavigate: 0.5,
		},
	}
}
