package components

import (
	"github.com/mowret/lanebrawler/config"
	"github.com/yohamta/donburi"
)

// PlayerData carries everything about the player character except health
// and collision, which live in their own components.
type PlayerData struct {
	Class       config.PlayerClass
	FacingRight bool
	Speed       float64
	BaseDamage  int
	Coins       int

	// Last movement input, kept for the animation system.
	MoveX float64
	MoveY float64

	// Attack / combo
	Attacking       bool
	AttackTimer     float64
	AttackDuration  float64
	ComboTimer      float64
	ComboStep       int // 0 idle, 1-3 within a combo
	CurrentAttackID int // monotonically increasing, minted per swing

	// Upgrades
	DamageLevel int
	HealthLevel int
	SpeedLevel  int

	// Block (Knight)
	Blocking           bool
	BlockTimer         float64
	BlockCooldownTimer float64

	// Dodge (Rogue)
	Dodging            bool
	DodgeTimer         float64
	DodgeCooldownTimer float64
	DodgeDir           float64

	// Blink (Mage)
	BlinkCooldownTimer float64

	Invincible      bool
	InvincibleTimer float64
}

var Player = donburi.NewComponentType[PlayerData]()
