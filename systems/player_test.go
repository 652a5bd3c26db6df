package systems

import (
	"testing"

	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/tags"
	"github.com/yohamta/donburi"
)

func TestPlayerMovesAlongLane(t *testing.T) {
	e, player := newTestGame(t, cfg.ClassKnight)
	obj := components.Object.Get(player)

	press(e, cfg.ActionMoveRight)
	stepN(e, 2, 0.05)
	release(e, cfg.ActionMoveRight)

	want := 100 + 2*cfg.Classes[cfg.ClassKnight].Speed*0.05
	if !approx(obj.FootX(), want) {
		t.Errorf("FootX = %v, want %v", obj.FootX(), want)
	}
	if !approx(obj.FootY(), 390) {
		t.Errorf("FootY = %v, want 390 (horizontal input must not move y)", obj.FootY())
	}
}

func TestPlayerVerticalMovesAtFullSpeed(t *testing.T) {
	e, player := newTestGame(t, cfg.ClassKnight)
	obj := components.Object.Get(player)

	press(e, cfg.ActionMoveUp)
	step(e, 0.05)
	release(e, cfg.ActionMoveUp)

	// Only enemies carry the vertical speed factor; the player moves at
	// full speed on both axes.
	want := 390 - cfg.Classes[cfg.ClassKnight].Speed*0.05
	if !approx(obj.FootY(), want) {
		t.Errorf("FootY = %v, want %v", obj.FootY(), want)
	}
}

func TestPlayerClampsToLaneBounds(t *testing.T) {
	e, player := newTestGame(t, cfg.ClassKnight)
	obj := components.Object.Get(player)
	lane := GetSession(e).Lane

	press(e, cfg.ActionMoveUp)
	stepN(e, 20, 0.05)
	release(e, cfg.ActionMoveUp)
	if !approx(obj.FootY(), lane.GroundTop) {
		t.Errorf("FootY = %v, want clamp at lane top %v", obj.FootY(), lane.GroundTop)
	}

	press(e, cfg.ActionMoveDown)
	stepN(e, 30, 0.05)
	release(e, cfg.ActionMoveDown)
	if !approx(obj.FootY(), lane.GroundBottom) {
		t.Errorf("FootY = %v, want clamp at lane bottom %v", obj.FootY(), lane.GroundBottom)
	}

	press(e, cfg.ActionMoveLeft)
	stepN(e, 30, 0.05)
	release(e, cfg.ActionMoveLeft)
	if !approx(obj.FootX(), obj.W/2) {
		t.Errorf("FootX = %v, want clamp at left edge %v", obj.FootX(), obj.W/2)
	}
}

func TestPlayerFacingFollowsInput(t *testing.T) {
	e, player := newTestGame(t, cfg.ClassKnight)
	p := components.Player.Get(player)

	press(e, cfg.ActionMoveLeft)
	step(e, 0.05)
	release(e, cfg.ActionMoveLeft)
	if p.FacingRight {
		t.Error("FacingRight = true after moving left")
	}

	press(e, cfg.ActionMoveRight)
	step(e, 0.05)
	release(e, cfg.ActionMoveRight)
	if !p.FacingRight {
		t.Error("FacingRight = false after moving right")
	}
}

func TestComboAdvancesWithinWindow(t *testing.T) {
	e, player := newTestGame(t, cfg.ClassKnight)
	p := components.Player.Get(player)

	tap(e, 0.05, cfg.ActionAttack)
	if p.ComboStep != 1 {
		t.Fatalf("ComboStep = %d after first swing, want 1", p.ComboStep)
	}
	if !p.Attacking {
		t.Fatal("Attacking = false right after the swing started")
	}

	// Let the first swing finish, then chain inside the window.
	stepN(e, 7, 0.05)
	if p.Attacking {
		t.Fatal("Attacking = true after the swing duration elapsed")
	}
	tap(e, 0.05, cfg.ActionAttack)
	if p.ComboStep != 2 {
		t.Fatalf("ComboStep = %d after chained swing, want 2", p.ComboStep)
	}

	stepN(e, 8, 0.05)
	tap(e, 0.05, cfg.ActionAttack)
	if p.ComboStep != 3 {
		t.Fatalf("ComboStep = %d after third swing, want 3", p.ComboStep)
	}

	// A fourth press restarts the chain.
	stepN(e, 10, 0.05)
	tap(e, 0.05, cfg.ActionAttack)
	if p.ComboStep != 1 {
		t.Errorf("ComboStep = %d after a full chain, want restart at 1", p.ComboStep)
	}
}

func TestComboExpiresAfterWindow(t *testing.T) {
	e, player := newTestGame(t, cfg.ClassKnight)
	p := components.Player.Get(player)

	tap(e, 0.05, cfg.ActionAttack)
	// Swing duration plus the full combo window.
	stepN(e, 30, 0.05)
	if p.ComboStep != 0 {
		t.Fatalf("ComboStep = %d after the window expired, want 0", p.ComboStep)
	}

	tap(e, 0.05, cfg.ActionAttack)
	if p.ComboStep != 1 {
		t.Errorf("ComboStep = %d after an expired chain, want 1", p.ComboStep)
	}
}

func TestAttackPressIgnoredMidSwing(t *testing.T) {
	e, player := newTestGame(t, cfg.ClassKnight)
	p := components.Player.Get(player)

	tap(e, 0.05, cfg.ActionAttack)
	tap(e, 0.05, cfg.ActionAttack)
	if p.ComboStep != 1 {
		t.Errorf("ComboStep = %d, want 1 (press during a swing must not chain)", p.ComboStep)
	}
	if got := countHitboxes(e); got != 1 {
		t.Errorf("hitboxes = %d, want 1", got)
	}
}

func TestKnightSwingSpawnsHitbox(t *testing.T) {
	e, _ := newTestGame(t, cfg.ClassKnight)

	tap(e, 0.05, cfg.ActionAttack)

	if got := countHitboxes(e); got != 1 {
		t.Fatalf("hitboxes = %d, want 1", got)
	}
	tags.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		hb := components.Hitbox.Get(entry)
		if hb.AttackID != 1 {
			t.Errorf("AttackID = %d, want 1", hb.AttackID)
		}
		if hb.Damage != cfg.Classes[cfg.ClassKnight].BaseDamage {
			t.Errorf("Damage = %d, want %d", hb.Damage, cfg.Classes[cfg.ClassKnight].BaseDamage)
		}
	})
}

func TestMageAttackSpawnsProjectile(t *testing.T) {
	e, _ := newTestGame(t, cfg.ClassMage)

	tap(e, 0.05, cfg.ActionAttack)

	if got := countProjectiles(e); got != 1 {
		t.Fatalf("projectiles = %d, want 1", got)
	}
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		pr := components.Projectile.Get(entry)
		if pr.VelX <= 0 {
			t.Errorf("VelX = %v, want rightward (player faces right)", pr.VelX)
		}
		if want := cfg.ComboDamage(cfg.ClassMage, 1, cfg.Classes[cfg.ClassMage].BaseDamage); pr.Damage != want {
			t.Errorf("Damage = %d, want %d", pr.Damage, want)
		}
		if pr.ID != 1 {
			t.Errorf("ID = %d, want 1", pr.ID)
		}
	})
	if got := countHitboxes(e); got != 0 {
		t.Errorf("hitboxes = %d, want 0 for a ranged class", got)
	}
}

func TestRogueDodgeBurstsAndGrantsInvulnerability(t *testing.T) {
	e, player := newTestGame(t, cfg.ClassRogue)
	p := components.Player.Get(player)
	obj := components.Object.Get(player)

	tap(e, 0.05, cfg.ActionAbility)
	if !p.Dodging || !p.Invincible {
		t.Fatalf("Dodging = %v, Invincible = %v after ability press, want both true", p.Dodging, p.Invincible)
	}
	if p.DodgeDir != 1 {
		t.Fatalf("DodgeDir = %v, want 1 (neutral dodge follows facing)", p.DodgeDir)
	}

	stepN(e, 5, 0.05)
	if p.Dodging || p.Invincible {
		t.Errorf("Dodging = %v, Invincible = %v after the dodge ended, want both false", p.Dodging, p.Invincible)
	}
	if obj.FootX() <= 100+cfg.Classes[cfg.ClassRogue].Speed*0.25 {
		t.Errorf("FootX = %v, want farther than normal movement over the dodge window", obj.FootX())
	}

	// Still on cooldown.
	tap(e, 0.05, cfg.ActionAbility)
	if p.Dodging {
		t.Error("dodge restarted while its cooldown was still running")
	}

	stepN(e, 14, 0.05)
	tap(e, 0.05, cfg.ActionAbility)
	if !p.Dodging {
		t.Error("dodge did not restart after the cooldown elapsed")
	}
}

func TestMageBlinkTeleportsAndClamps(t *testing.T) {
	e, player := newTestGame(t, cfg.ClassMage)
	p := components.Player.Get(player)
	obj := components.Object.Get(player)
	lane := GetSession(e).Lane

	tap(e, 0.05, cfg.ActionAbility)
	if want := 100 + cfg.Classes[cfg.ClassMage].BlinkDistance; !approx(obj.FootX(), want) {
		t.Fatalf("FootX = %v after blink, want %v", obj.FootX(), want)
	}
	if !p.Invincible {
		t.Error("Invincible = false right after a blink")
	}

	// Near the right edge the blink clamps to the lane.
	obj.SetFoot(lane.Length-30, 390)
	p.BlinkCooldownTimer = 0
	tap(e, 0.05, cfg.ActionAbility)
	if want := lane.Length - obj.W/2; !approx(obj.FootX(), want) {
		t.Errorf("FootX = %v after edge blink, want clamp at %v", obj.FootX(), want)
	}
}

func TestKnightBlockAllowsWalking(t *testing.T) {
	e, player := newTestGame(t, cfg.ClassKnight)
	p := components.Player.Get(player)
	obj := components.Object.Get(player)

	tap(e, 0.05, cfg.ActionAbility)
	if !p.Blocking {
		t.Fatal("Blocking = false after ability press")
	}

	press(e, cfg.ActionMoveRight)
	stepN(e, 3, 0.05)
	release(e, cfg.ActionMoveRight)
	want := 100 + 3*cfg.Classes[cfg.ClassKnight].Speed*0.05
	if !approx(obj.FootX(), want) {
		t.Errorf("FootX = %v, want %v (blocking does not root the player)", obj.FootX(), want)
	}

	stepN(e, 12, 0.05)
	if p.Blocking {
		t.Error("Blocking = true after the block duration elapsed")
	}
}

func TestPlayerWalksWhileAttacking(t *testing.T) {
	e, player := newTestGame(t, cfg.ClassKnight)
	p := components.Player.Get(player)
	obj := components.Object.Get(player)

	tap(e, 0.05, cfg.ActionAttack)
	press(e, cfg.ActionMoveRight)
	stepN(e, 3, 0.05)
	release(e, cfg.ActionMoveRight)

	if !p.Attacking {
		t.Fatal("Attacking = false while the swing should still be live")
	}
	want := 100 + 3*cfg.Classes[cfg.ClassKnight].Speed*0.05
	if !approx(obj.FootX(), want) {
		t.Errorf("FootX = %v, want %v (swinging does not root the player)", obj.FootX(), want)
	}
}

func TestAttackWhileBlocking(t *testing.T) {
	e, player := newTestGame(t, cfg.ClassKnight)
	p := components.Player.Get(player)

	tap(e, 0.05, cfg.ActionAbility)
	tap(e, 0.05, cfg.ActionAttack)

	if !p.Attacking {
		t.Error("Attacking = false; a swing can start during a block")
	}
	if !p.Blocking {
		t.Error("Blocking = false; the swing does not cancel the block")
	}
	if got := countHitboxes(e); got != 1 {
		t.Errorf("hitboxes = %d, want 1", got)
	}
}

func TestComboWindowRunsDuringSwing(t *testing.T) {
	e, player := newTestGame(t, cfg.ClassKnight)
	p := components.Player.Get(player)

	tap(e, 0.05, cfg.ActionAttack)
	// One full window measured from the start of the swing, not its end.
	stepN(e, 20, 0.05)

	if p.ComboStep != 0 {
		t.Fatalf("ComboStep = %d one window after the swing started, want 0", p.ComboStep)
	}
	tap(e, 0.05, cfg.ActionAttack)
	if p.ComboStep != 1 {
		t.Errorf("ComboStep = %d, want a fresh chain at 1", p.ComboStep)
	}
}
