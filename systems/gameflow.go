package systems

import (
	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/systems/factory"
	"github.com/mowret/lanebrawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGameFlow drives the phase machine's input-driven edges: opening
// and closing the shop, and restarting a finished run. The defeat edge
// lives in CheckGameOver so it fires right after damage resolves.
func UpdateGameFlow(e *ecs.ECS) {
	s := GetSession(e)
	input := getOrCreateInput(e)

	switch s.Phase {
	case cfg.PhasePlaying:
		if GetAction(input, cfg.ActionShop).JustPressed {
			s.Phase = cfg.PhaseShop
			s.ShopSelection = 0
			PlaySFX(e, cfg.SoundMenuSelect)
		}

	case cfg.PhaseShop:
		if GetAction(input, cfg.ActionShop).JustPressed || GetAction(input, cfg.ActionCancel).JustPressed {
			s.Phase = cfg.PhasePlaying
			PlaySFX(e, cfg.SoundMenuSelect)
		}

	case cfg.PhaseVictory, cfg.PhaseGameOver:
		if GetAction(input, cfg.ActionConfirm).JustPressed {
			ResetSession(e)
			PlaySFX(e, cfg.SoundMenuSelect)
		}
	}
}

// CheckGameOver ends the run when the player's health is gone. Runs at
// the end of the playing chain so same-tick damage is already applied.
func CheckGameOver(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	if components.Health.Get(playerEntry).Current > 0 {
		return
	}
	GetSession(e).Phase = cfg.PhaseGameOver
}

// ResetSession rebuilds the run in place for the same class: every
// enemy, projectile, coin, and hitbox is removed, the player returns to
// the spawn point with base stats, and the session pacing state is
// cleared. Instance counters keep counting so stale ids from the old run
// can never collide with new ones.
func ResetSession(e *ecs.ECS) {
	s := GetSession(e)

	var doomed []*donburi.Entry
	collect := func(entry *donburi.Entry) { doomed = append(doomed, entry) }
	tags.Enemy.Each(e.World, collect)
	tags.Projectile.Each(e.World, collect)
	tags.Coin.Each(e.World, collect)
	tags.Hitbox.Each(e.World, collect)
	for _, entry := range doomed {
		removeEntity(e, entry)
	}

	if playerEntry, ok := components.Player.First(e.World); ok {
		p := components.Player.Get(playerEntry)
		cc := &cfg.Classes[s.Class]
		*p = components.PlayerData{
			Class:       s.Class,
			FacingRight: true,
			Speed:       cc.Speed,
			BaseDamage:  cc.BaseDamage,
		}
		components.Health.SetValue(playerEntry, components.HealthData{
			Current: cc.MaxHP,
			Max:     cc.MaxHP,
		})
		components.Object.Get(playerEntry).SetFoot(s.Lane.PlayerSpawnX, s.Lane.PlayerSpawnY)
	} else {
		factory.CreatePlayer(e, s.Class, s.Lane.PlayerSpawnX, s.Lane.PlayerSpawnY)
	}

	s.Phase = cfg.PhasePlaying
	s.HitStop = 0
	s.Delta = 0
	s.SpawnTimer = 0
	s.BossSpawned = false
	s.BossDefeated = false
	s.ShopSelection = 0
}
