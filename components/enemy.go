package components

import (
	"github.com/mowret/lanebrawler/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Type       config.EnemyType
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration
	Speed      float64
	Alive      bool

	// Attack / telegraph cycle
	AttackCooldown  float64
	WindingUp       bool
	WindupTimer     float64
	AttackingAnim   bool
	AttackAnimTimer float64

	// Damage gating: the last attack/projectile instance that already hit
	// this enemy. Distinct instances must each land exactly once, so these
	// are instance ids rather than booleans.
	LastHitAttackID     int
	LastProjectileHitID int
}

var Enemy = donburi.NewComponentType[EnemyData]()
