package systems

import (
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/yohamta/donburi/ecs"
)

// RegisterSimulation wires the simulation systems in their required
// order. The clock, input polling, and audio draining are registered by
// the scene; headless tests register only this chain and drive the clock
// and input snapshot by hand.
//
// Within a playing tick: flow edges first, then the player acts, spawns
// happen, enemies act, projectiles fly, damage resolves, the dead are
// swept, coins settle, cursors advance, and the defeat check runs last
// so same-tick damage is already visible.
func RegisterSimulation(e *ecs.ECS) {
	e.AddSystem(UpdateGameFlow)

	e.AddSystem(WithPhase(cfg.PhasePlaying, UpdatePlayer))
	e.AddSystem(WithPhase(cfg.PhasePlaying, UpdateSpawner))
	e.AddSystem(WithPhase(cfg.PhasePlaying, UpdateEnemies))
	e.AddSystem(WithPhase(cfg.PhasePlaying, UpdateProjectiles))
	e.AddSystem(WithPhase(cfg.PhasePlaying, UpdateCombat))
	e.AddSystem(WithPhase(cfg.PhasePlaying, UpdateDeaths))
	e.AddSystem(WithPhase(cfg.PhasePlaying, UpdateCoins))
	e.AddSystem(WithPhase(cfg.PhasePlaying, UpdateAnimations))
	e.AddSystem(WithPhase(cfg.PhasePlaying, CheckGameOver))

	e.AddSystem(WithPhase(cfg.PhaseShop, UpdateShop))

	e.AddSystem(UpdateCamera)
	e.AddSystem(BuildSnapshot)
}
