package systems

import (
	"math"

	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/gamemath"
	"github.com/mowret/lanebrawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies drives the enemy AI cycle: seek the player, hold when in
// contact, telegraph with a windup, then strike. The strike re-tests the
// overlap when the windup expires, so a player who moved out of reach
// takes nothing.
func UpdateEnemies(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	s := GetSession(e)
	dt := s.Delta
	pObj := components.Object.Get(playerEntry)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		en := components.Enemy.Get(entry)
		if !en.Alive {
			return
		}
		obj := components.Object.Get(entry)

		if en.AttackingAnim {
			en.AttackAnimTimer -= dt
			if en.AttackAnimTimer <= 0 {
				en.AttackAnimTimer = 0
				en.AttackingAnim = false
			}
			return
		}

		if en.WindingUp {
			en.WindupTimer -= dt
			if en.WindupTimer <= 0 {
				en.WindupTimer = 0
				en.WindingUp = false
				strikePlayer(e, s, en, obj, playerEntry)
				en.AttackingAnim = true
				en.AttackAnimTimer = cfg.Combat.AttackAnimDuration
				en.AttackCooldown = cfg.Combat.AttackCooldown
			}
			return
		}

		tickDown(&en.AttackCooldown, dt)

		dx := pObj.FootX() - obj.FootX()
		dy := pObj.FootY() - obj.FootY()
		if math.Abs(dx) > cfg.World.HoldDistance || math.Abs(dy) > cfg.World.HoldDistance {
			nx, ny := gamemath.Normalize(dx, dy)
			fx := obj.FootX() + nx*en.Speed*dt
			fy := obj.FootY() + ny*en.Speed*cfg.World.VerticalFactor*dt
			fx = gamemath.Clamp(fx, obj.W/2, s.Lane.Length-obj.W/2)
			fy = gamemath.Clamp(fy, s.Lane.GroundTop, s.Lane.GroundBottom)
			obj.SetFoot(fx, fy)
		}

		if en.AttackCooldown <= 0 && touchingPlayer(obj, pObj) {
			en.WindingUp = true
			en.WindupTimer = en.TypeConfig.Windup
			PlaySFX(e, cfg.SoundEnemySwing)
		}
	})
}

// strikePlayer lands a windup that just expired. The overlap is re-tested
// here; mitigation order is invincibility, then block, then full damage.
func strikePlayer(e *ecs.ECS, s *components.SessionData, en *components.EnemyData, obj *components.ObjectData, playerEntry *donburi.Entry) {
	pObj := components.Object.Get(playerEntry)
	if !touchingPlayer(obj, pObj) {
		return
	}

	p := components.Player.Get(playerEntry)
	if p.Invincible {
		return
	}

	dmg := en.TypeConfig.Damage
	if p.Blocking {
		dmg /= cfg.Combat.BlockDivisor
		PlaySFX(e, cfg.SoundBlock)
	} else {
		AddHitStop(s, cfg.Combat.PlayerHitStop)
		PlaySFX(e, cfg.SoundHit)
	}

	health := components.Health.Get(playerEntry)
	health.Current -= dmg
	if health.Current < 0 {
		health.Current = 0
	}
}

func touchingPlayer(obj, pObj *components.ObjectData) bool {
	return gamemath.RectsOverlap(
		obj.X, obj.Y, obj.W, obj.H,
		pObj.X, pObj.Y, pObj.W, pObj.H,
	)
}
