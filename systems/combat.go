package systems

import (
	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/gamemath"
	"github.com/mowret/lanebrawler/systems/factory"
	"github.com/mowret/lanebrawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves player damage against enemies: melee hitboxes
// first, then projectiles. Each attack instance lands at most once per
// enemy, gated on the instance id recorded in the enemy.
func UpdateCombat(e *ecs.ECS) {
	s := GetSession(e)

	tags.Hitbox.Each(e.World, func(hbEntry *donburi.Entry) {
		hb := components.Hitbox.Get(hbEntry)
		if hb.Life <= 0 {
			return
		}
		hbObj := components.Object.Get(hbEntry)

		// Broadphase through the resolv space, then an exact overlap test;
		// the space cells can report near-misses in the same cell.
		check := hbObj.Check(0, 0, tags.ResolvEnemy)
		if check != nil {
			for _, obj := range check.Objects {
				enEntry, ok := obj.Data.(*donburi.Entry)
				if !ok || !enEntry.Valid() {
					continue
				}
				en := components.Enemy.Get(enEntry)
				if !en.Alive || en.LastHitAttackID == hb.AttackID {
					continue
				}
				enObj := components.Object.Get(enEntry)
				if !gamemath.RectsOverlap(
					hbObj.X, hbObj.Y, hbObj.W, hbObj.H,
					enObj.X, enObj.Y, enObj.W, enObj.H,
				) {
					continue
				}

				en.LastHitAttackID = hb.AttackID
				health := components.Health.Get(enEntry)
				health.Current -= hb.Damage
				if health.Current < 0 {
					health.Current = 0
				}

				// Knockback pushes away from the swing, never toward it.
				dir := 1.0
				if enObj.FootX() < hbObj.X+hbObj.W/2 {
					dir = -1.0
				}
				fx := gamemath.Clamp(enObj.FootX()+dir*hb.Knockback, enObj.W/2, s.Lane.Length-enObj.W/2)
				enObj.SetFoot(fx, enObj.FootY())

				AddHitStop(s, hb.HitStop)
				PlaySFX(e, cfg.SoundHit)

				if health.Current <= 0 {
					killEnemy(e, s, en, enObj)
				}
			}
		}

		// The volume stays live for the whole swing; life runs on sim time
		// so hit-stop does not eat active frames.
		hb.Life -= s.Delta
	})

	tags.Projectile.Each(e.World, func(prEntry *donburi.Entry) {
		pr := components.Projectile.Get(prEntry)
		if !pr.Active {
			return
		}
		prObj := components.Object.Get(prEntry)
		cx := prObj.X + pr.Radius
		cy := prObj.Y + pr.Radius

		tags.Enemy.Each(e.World, func(enEntry *donburi.Entry) {
			en := components.Enemy.Get(enEntry)
			if !en.Alive || en.LastProjectileHitID == pr.ID {
				return
			}
			enObj := components.Object.Get(enEntry)
			if !gamemath.CircleRectOverlap(cx, cy, pr.Radius, enObj.X, enObj.Y, enObj.W, enObj.H) {
				return
			}

			// Shots pierce: the projectile keeps flying and this enemy is
			// simply marked so it cannot be hit by the same shot again.
			en.LastProjectileHitID = pr.ID
			health := components.Health.Get(enEntry)
			health.Current -= pr.Damage
			if health.Current < 0 {
				health.Current = 0
			}
			PlaySFX(e, cfg.SoundHit)

			if health.Current <= 0 {
				killEnemy(e, s, en, enObj)
			}
		})
	})
}

// killEnemy marks an enemy dead, scatters its coin drop around its feet,
// and ends the run in victory if it was the boss. Removal of the entity
// itself happens in the death sweep.
func killEnemy(e *ecs.ECS, s *components.SessionData, en *components.EnemyData, enObj *components.ObjectData) {
	en.Alive = false

	// Coins scatter sideways around the feet and pop upward in y.
	for i := 0; i < en.TypeConfig.Coins; i++ {
		jx := (s.Rand.Float64()*2 - 1) * float64(cfg.Combat.CoinJitterX)
		jy := s.Rand.Float64() * float64(cfg.Combat.CoinJitterY)
		x := gamemath.Clamp(enObj.FootX()+jx, 0, s.Lane.Length)
		y := gamemath.Clamp(enObj.FootY()-jy, s.Lane.GroundTop, s.Lane.GroundBottom)
		factory.CreateCoin(e, x, y)
	}

	if en.Type == cfg.EnemyBoss && !s.BossDefeated {
		s.BossDefeated = true
		s.Phase = cfg.PhaseVictory
	}
}
