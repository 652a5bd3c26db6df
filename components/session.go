package components

import (
	"math/rand"
	"time"

	"github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/leveldata"
	"github.com/yohamta/donburi"
)

// SessionData is the per-run simulation context. Everything that was a
// process-wide mutable in older arcade codebases (hit-stop timer,
// monotonic instance counters, spawn clock) lives here so multiple
// sessions can run independently in one process.
type SessionData struct {
	Phase config.Phase
	Class config.PlayerClass
	Lane  *leveldata.Lane

	// Two-delta clock. RealDelta is the clamped wall-clock frame time and
	// drives the hit-stop countdown, animation cursors, and ability
	// cooldowns. Delta is the simulation time: equal to RealDelta unless
	// hit-stop is active, in which case it is zero.
	RealDelta float64
	Delta     float64
	HitStop   float64
	LastTick  time.Time

	// Monotonic instance counters; never reused within a session.
	AttackCounter     int
	ProjectileCounter int

	SpawnTimer   float64
	BossSpawned  bool
	BossDefeated bool

	ShopSelection int

	Rand *rand.Rand
}

// NextAttackID mints a new melee attack-instance id.
func (s *SessionData) NextAttackID() int {
	s.AttackCounter++
	return s.AttackCounter
}

// NextProjectileID mints a new projectile-instance id.
func (s *SessionData) NextProjectileID() int {
	s.ProjectileCounter++
	return s.ProjectileCounter
}

var Session = donburi.NewComponentType[SessionData]()
