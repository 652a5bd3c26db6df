package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Coin       = donburi.NewTag().SetName("Coin")
	Hitbox     = donburi.NewTag().SetName("Hitbox")
)

// Resolv tags for collision objects
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
	ResolvCoin       = "Coin"
	ResolvHitbox     = "Hitbox"
)
