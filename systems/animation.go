package systems

import (
	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations picks sheet rows from entity state and advances frame
// cursors. Cursors run on the real delta, so sprites keep moving through
// hit-stop while the world is frozen.
func UpdateAnimations(e *ecs.ECS) {
	s := GetSession(e)
	realDt := s.RealDelta

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		anim := components.Animation.Get(entry)

		row := cfg.PlayerRowIdle
		switch {
		case p.Attacking:
			row = cfg.PlayerRowAttack
		case p.MoveX != 0 || p.MoveY != 0 || p.Dodging:
			row = cfg.PlayerRowRun
		}
		setRow(anim, row)
		anim.Advance(realDt)
	})

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		en := components.Enemy.Get(entry)
		anim := components.Animation.Get(entry)

		row := cfg.EnemyRowWalk
		if en.WindingUp || en.AttackingAnim {
			row = cfg.EnemyRowAttack
		}
		setRow(anim, row)
		anim.Advance(realDt)
	})
}

// setRow switches the sheet row, restarting the cursor on a change.
func setRow(anim *components.AnimationData, row int) {
	if anim.Row == row {
		return
	}
	anim.Row = row
	anim.Frame = 0
	anim.Timer = 0
}
