package systems

import (
	"testing"

	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/systems/factory"
	"github.com/mowret/lanebrawler/tags"
	"github.com/yohamta/donburi"
)

func TestMeleeSwingHitsOnce(t *testing.T) {
	e, _ := newTestGame(t, cfg.ClassKnight)
	s := GetSession(e)
	enemy := factory.CreateEnemy(e, cfg.EnemyGrunt, 150, 390)
	health := components.Health.Get(enemy)
	obj := components.Object.Get(enemy)

	tap(e, 0.05, cfg.ActionAttack)

	want := cfg.Enemies[cfg.EnemyGrunt].MaxHP - cfg.Classes[cfg.ClassKnight].BaseDamage
	if health.Current != want {
		t.Fatalf("enemy health = %d, want %d after the first swing", health.Current, want)
	}
	if obj.FootX() <= 150 {
		t.Errorf("enemy FootX = %v, want knockback away from the swing", obj.FootX())
	}
	if !approx(s.HitStop, cfg.Classes[cfg.ClassKnight].Melee[0].HitStop) {
		t.Errorf("HitStop = %v, want %v", s.HitStop, cfg.Classes[cfg.ClassKnight].Melee[0].HitStop)
	}

	// The same swing must not land again while its volume is live.
	stepN(e, 10, 0.05)
	if health.Current != want {
		t.Fatalf("enemy health = %d after the swing played out, want still %d", health.Current, want)
	}

	// A fresh swing carries a fresh id and lands again.
	tap(e, 0.05, cfg.ActionAttack)
	want -= cfg.ComboDamage(cfg.ClassKnight, 2, cfg.Classes[cfg.ClassKnight].BaseDamage)
	if health.Current != want {
		t.Errorf("enemy health = %d after the second swing, want %d", health.Current, want)
	}
}

func TestHitboxExpiresAfterSwing(t *testing.T) {
	e, _ := newTestGame(t, cfg.ClassKnight)

	tap(e, 0.05, cfg.ActionAttack)
	if got := countHitboxes(e); got != 1 {
		t.Fatalf("hitboxes = %d, want 1 during the swing", got)
	}

	stepN(e, 8, 0.05)
	if got := countHitboxes(e); got != 0 {
		t.Errorf("hitboxes = %d after the swing duration, want 0", got)
	}
}

func TestProjectilePiercesAndHitsEachEnemyOnce(t *testing.T) {
	e, _ := newTestGame(t, cfg.ClassMage)
	near := factory.CreateEnemy(e, cfg.EnemyGrunt, 200, 390)
	far := factory.CreateEnemy(e, cfg.EnemyGrunt, 260, 390)
	nearHealth := components.Health.Get(near)
	farHealth := components.Health.Get(far)

	tap(e, 0.05, cfg.ActionAttack)
	stepN(e, 10, 0.05)

	want := cfg.Enemies[cfg.EnemyGrunt].MaxHP -
		cfg.ComboDamage(cfg.ClassMage, 1, cfg.Classes[cfg.ClassMage].BaseDamage)
	if nearHealth.Current != want {
		t.Errorf("near enemy health = %d, want %d (exactly one hit)", nearHealth.Current, want)
	}
	if farHealth.Current != want {
		t.Errorf("far enemy health = %d, want %d (the shot pierces)", farHealth.Current, want)
	}
	if got := countProjectiles(e); got != 1 {
		t.Errorf("projectiles = %d, want 1 (piercing shots keep flying)", got)
	}
	if GetSession(e).HitStop != 0 {
		t.Error("hit-stop applied by a projectile hit")
	}
}

func TestProjectileExpiresByLifetime(t *testing.T) {
	e, _ := newTestGame(t, cfg.ClassMage)

	tap(e, 0.05, cfg.ActionAttack)
	// ProjectileLife is 1.2s of simulation time.
	stepN(e, 25, 0.05)

	if got := countProjectiles(e); got != 0 {
		t.Errorf("projectiles = %d after the lifetime elapsed, want 0", got)
	}
}

func TestKillDropsCoinsAndSweepsBody(t *testing.T) {
	e, player := newTestGame(t, cfg.ClassKnight)
	p := components.Player.Get(player)
	enemy := factory.CreateEnemy(e, cfg.EnemyGrunt, 150, 390)
	components.Health.Get(enemy).Current = 1

	tap(e, 0.05, cfg.ActionAttack)

	if got := countEnemies(e); got != 0 {
		t.Fatalf("enemies = %d after a lethal hit, want 0 (same-tick sweep)", got)
	}
	if got := countCoins(e); got != cfg.Enemies[cfg.EnemyGrunt].Coins {
		t.Fatalf("coins dropped = %d, want %d", got, cfg.Enemies[cfg.EnemyGrunt].Coins)
	}

	// The scatter pops upward: at most CoinJitterY above the feet, never
	// below them.
	tags.Coin.Each(e.World, func(coin *donburi.Entry) {
		fy := components.Object.Get(coin).FootY()
		lo := 390 - float64(cfg.Combat.CoinJitterY)
		if fy < lo || fy > 390 {
			t.Errorf("coin FootY = %v, want within [%v, 390]", fy, lo)
		}
	})

	// Walk over the drop to collect it.
	press(e, cfg.ActionMoveRight)
	stepN(e, 30, 0.05)
	release(e, cfg.ActionMoveRight)

	if p.Coins != cfg.Enemies[cfg.EnemyGrunt].Coins {
		t.Errorf("player coins = %d, want %d", p.Coins, cfg.Enemies[cfg.EnemyGrunt].Coins)
	}
	if got := countCoins(e); got != 0 {
		t.Errorf("coins = %d after pickup, want 0", got)
	}
}

func TestBossDeathEndsRunInVictory(t *testing.T) {
	e, _ := newTestGame(t, cfg.ClassKnight)
	s := GetSession(e)
	boss := factory.CreateEnemy(e, cfg.EnemyBoss, 150, 390)
	components.Health.Get(boss).Current = 1

	tap(e, 0.05, cfg.ActionAttack)

	if s.Phase != cfg.PhaseVictory {
		t.Errorf("Phase = %v after the boss died, want %v", s.Phase, cfg.PhaseVictory)
	}
	if !s.BossDefeated {
		t.Error("BossDefeated = false after the boss died")
	}
	if got := countCoins(e); got != cfg.Enemies[cfg.EnemyBoss].Coins {
		t.Errorf("coins dropped = %d, want %d", got, cfg.Enemies[cfg.EnemyBoss].Coins)
	}
}
