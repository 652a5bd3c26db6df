package components

import "github.com/yohamta/donburi"

// ProjectileData is a piercing ranged shot. Damage is precomputed at spawn
// time; ID gates it to one hit per enemy while it keeps flying.
type ProjectileData struct {
	VelX   float64
	VelY   float64
	Radius float64
	Life   float64
	Damage int
	ID     int
	Active bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
