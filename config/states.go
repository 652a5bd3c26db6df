package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer all systems and renderers are registered on.
const Default = ecs.LayerDefault

// Phase identifies the top-level game phase.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseShop
	PhaseVictory
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseShop:
		return "shop"
	case PhaseVictory:
		return "victory"
	case PhaseGameOver:
		return "gameover"
	}
	return "unknown"
}

// Sprite sheet rows. Player sheets carry idle/run/attack rows, enemy sheets
// carry walk/attack rows. The simulation only advances the cursor; the
// renderer resolves row+frame into a sub-image.
const (
	PlayerRowIdle   = 0
	PlayerRowRun    = 1
	PlayerRowAttack = 2

	EnemyRowWalk   = 0
	EnemyRowAttack = 1
)
