package components

import "github.com/yohamta/donburi"

// HitboxData is one melee swing's damage volume. AttackID ties it to the
// swing that spawned it so each enemy takes at most one hit per swing.
type HitboxData struct {
	AttackID  int
	Damage    int
	Knockback float64
	HitStop   float64
	Life      float64 // remaining active time, mirrors the swing duration
	Step      int     // combo step, kept for the debug overlay
}

var Hitbox = donburi.NewComponentType[HitboxData]()
