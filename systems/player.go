package systems

import (
	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/gamemath"
	"github.com/mowret/lanebrawler/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer advances the player character one tick: ability timers,
// movement along the lane, facing, combo bookkeeping, and attack
// issuance. Movement and durations run on the simulation delta so
// hit-stop freezes them; ability cooldowns run on the real delta so
// hit-stop never extends a cooldown.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	s := GetSession(e)
	p := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	input := getOrCreateInput(e)

	dt := s.Delta
	realDt := s.RealDelta

	tickDown(&p.BlockCooldownTimer, realDt)
	tickDown(&p.DodgeCooldownTimer, realDt)
	tickDown(&p.BlinkCooldownTimer, realDt)

	if p.Invincible {
		p.InvincibleTimer -= dt
		if p.InvincibleTimer <= 0 {
			p.InvincibleTimer = 0
			p.Invincible = false
		}
	}
	if p.Blocking {
		p.BlockTimer -= dt
		if p.BlockTimer <= 0 {
			p.BlockTimer = 0
			p.Blocking = false
		}
	}
	if p.Dodging {
		p.DodgeTimer -= dt
		if p.DodgeTimer <= 0 {
			p.DodgeTimer = 0
			p.Dodging = false
		}
	}
	if p.Attacking {
		p.AttackTimer -= dt
		if p.AttackTimer <= 0 {
			p.AttackTimer = 0
			p.Attacking = false
		}
	}

	// The combo window runs from the start of a swing, through it.
	if p.ComboStep > 0 {
		p.ComboTimer -= dt
		if p.ComboTimer <= 0 {
			p.ComboTimer = 0
			p.ComboStep = 0
		}
	}

	moveX, moveY := 0.0, 0.0
	if input.Current[cfg.ActionMoveLeft] {
		moveX -= 1
	}
	if input.Current[cfg.ActionMoveRight] {
		moveX += 1
	}
	if input.Current[cfg.ActionMoveUp] {
		moveY -= 1
	}
	if input.Current[cfg.ActionMoveDown] {
		moveY += 1
	}
	moveX, moveY = gamemath.Normalize(moveX, moveY)
	p.MoveX, p.MoveY = moveX, moveY

	if moveX != 0 && !p.Attacking && !p.Dodging {
		p.FacingRight = moveX > 0
	}

	// A dodge is the only movement override; walking stays free during
	// swings and blocks.
	speed := p.Speed
	if p.Dodging {
		moveX, moveY = p.DodgeDir, 0
		speed *= cfg.World.DodgeSpeedMul
	}

	if moveX != 0 || moveY != 0 {
		fx := obj.FootX() + moveX*speed*dt
		fy := obj.FootY() + moveY*speed*dt
		fx = gamemath.Clamp(fx, obj.W/2, s.Lane.Length-obj.W/2)
		fy = gamemath.Clamp(fy, s.Lane.GroundTop, s.Lane.GroundBottom)
		obj.SetFoot(fx, fy)
	}

	handleAbility(e, s, p, obj, input, p.MoveX)
	handleAttack(e, s, p, playerEntry, input)
}

// handleAttack starts a new swing or cast on a fresh attack press. The
// combo step advances if the previous swing is still inside its window,
// otherwise the chain restarts at step one.
func handleAttack(e *ecs.ECS, s *components.SessionData, p *components.PlayerData, playerEntry *donburi.Entry, input *components.InputData) {
	if !GetAction(input, cfg.ActionAttack).JustPressed {
		return
	}
	if p.Attacking {
		return
	}

	if p.ComboStep > 0 && p.ComboStep < 3 && p.ComboTimer > 0 {
		p.ComboStep++
	} else {
		p.ComboStep = 1
	}
	p.ComboTimer = cfg.World.ComboResetTime

	cc := &cfg.Classes[p.Class]
	if cc.Ranged {
		factory.CreateProjectile(e, playerEntry, p.ComboStep, s.NextProjectileID())
		p.AttackDuration = cc.CastDuration
		PlaySFX(e, cfg.SoundRangedCast)
	} else {
		p.CurrentAttackID = s.NextAttackID()
		factory.CreateHitbox(e, playerEntry, p.ComboStep, p.CurrentAttackID)
		p.AttackDuration = cc.Melee[p.ComboStep-1].Duration
		if p.Class == cfg.ClassKnight {
			PlaySFX(e, cfg.SoundMeleeSwingHeavy)
		} else {
			PlaySFX(e, cfg.SoundMeleeSwingLight)
		}
	}
	p.Attacking = true
	p.AttackTimer = p.AttackDuration
}

// handleAbility triggers the class ability on a fresh press, if its
// cooldown has elapsed.
func handleAbility(e *ecs.ECS, s *components.SessionData, p *components.PlayerData, obj *components.ObjectData, input *components.InputData, moveX float64) {
	if !GetAction(input, cfg.ActionAbility).JustPressed {
		return
	}

	cc := &cfg.Classes[p.Class]
	switch p.Class {
	case cfg.ClassKnight:
		if p.BlockCooldownTimer > 0 {
			return
		}
		p.Blocking = true
		p.BlockTimer = cc.BlockDuration
		p.BlockCooldownTimer = cc.BlockCooldown
		PlaySFX(e, cfg.SoundBlock)

	case cfg.ClassRogue:
		if p.DodgeCooldownTimer > 0 {
			return
		}
		p.Dodging = true
		p.DodgeTimer = cc.DodgeDuration
		p.DodgeCooldownTimer = cc.DodgeCooldown
		p.DodgeDir = moveX
		if p.DodgeDir == 0 {
			p.DodgeDir = 1
			if !p.FacingRight {
				p.DodgeDir = -1
			}
		}
		p.Invincible = true
		p.InvincibleTimer = cc.DodgeDuration
		PlaySFX(e, cfg.SoundDodge)

	case cfg.ClassMage:
		if p.BlinkCooldownTimer > 0 {
			return
		}
		dir := 1.0
		if !p.FacingRight {
			dir = -1.0
		}
		fx := gamemath.Clamp(obj.FootX()+dir*cc.BlinkDistance, obj.W/2, s.Lane.Length-obj.W/2)
		obj.SetFoot(fx, obj.FootY())
		p.BlinkCooldownTimer = cc.BlinkCooldown
		p.Invincible = true
		p.InvincibleTimer = cc.BlinkInvuln
		PlaySFX(e, cfg.SoundBlink)
	}
}

// tickDown counts a cooldown timer toward zero without going negative.
func tickDown(t *float64, dt float64) {
	if *t <= 0 {
		return
	}
	*t -= dt
	if *t < 0 {
		*t = 0
	}
}
