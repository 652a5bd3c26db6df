package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/leveldata"
	"github.com/mowret/lanebrawler/systems/factory"
	"github.com/mowret/lanebrawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestGame builds a headless session: the simulation chain without
// the clock, input polling, or audio systems. Tests drive the clock via
// step and write the input snapshot directly.
func newTestGame(t *testing.T, class cfg.PlayerClass) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	RegisterSimulation(e)

	lane := leveldata.DefaultLane()
	factory.CreateSpace(e, int(lane.Length), 720, 16, 16)
	sess := factory.CreateSession(e, class, lane)
	components.Session.Get(sess).Rand = rand.New(rand.NewSource(7))

	player := factory.CreatePlayer(e, class, lane.PlayerSpawnX, lane.PlayerSpawnY)
	return e, player
}

// step advances one frame of dt real seconds and then ages the input
// snapshot, so a press registers as just-pressed for exactly one step.
func step(e *ecs.ECS, dt float64) {
	ApplyClock(GetSession(e), dt)
	e.Update()
	in := getOrCreateInput(e)
	in.Previous = in.Current
}

func stepN(e *ecs.ECS, n int, dt float64) {
	for i := 0; i < n; i++ {
		step(e, dt)
	}
}

func press(e *ecs.ECS, ids ...cfg.ActionID) {
	in := getOrCreateInput(e)
	for _, id := range ids {
		in.Current[id] = true
	}
}

func release(e *ecs.ECS, ids ...cfg.ActionID) {
	in := getOrCreateInput(e)
	for _, id := range ids {
		in.Current[id] = false
	}
}

// tap presses, steps once, and releases.
func tap(e *ecs.ECS, dt float64, ids ...cfg.ActionID) {
	press(e, ids...)
	step(e, dt)
	release(e, ids...)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func countEnemies(e *ecs.ECS) int {
	n := 0
	tags.Enemy.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func countCoins(e *ecs.ECS) int {
	n := 0
	tags.Coin.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func countProjectiles(e *ecs.ECS) int {
	n := 0
	tags.Projectile.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func countHitboxes(e *ecs.ECS) int {
	n := 0
	tags.Hitbox.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
