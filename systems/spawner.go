package systems

import (
	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/gamemath"
	"github.com/mowret/lanebrawler/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner drips regular enemies ahead of the player on a fixed
// interval, and spawns the boss exactly once when the player crosses the
// trigger line. Regular spawns stop once the boss is out.
func UpdateSpawner(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	s := GetSession(e)
	pObj := components.Object.Get(playerEntry)

	if !s.BossSpawned && pObj.FootX() >= s.Lane.BossTriggerX {
		laneMid := (s.Lane.GroundTop + s.Lane.GroundBottom) / 2
		factory.CreateEnemy(e, cfg.EnemyBoss, s.Lane.BossSpawnX, laneMid)
		s.BossSpawned = true
	}
	if s.BossSpawned {
		return
	}

	s.SpawnTimer += s.Delta
	if s.SpawnTimer < cfg.World.SpawnInterval {
		return
	}
	s.SpawnTimer = 0

	typ := rollEnemyType(s)
	ahead := cfg.World.SpawnAheadMin + s.Rand.Float64()*(cfg.World.SpawnAheadMax-cfg.World.SpawnAheadMin)
	x := gamemath.Clamp(pObj.FootX()+ahead, s.Lane.SpawnMinX, s.Lane.SpawnMaxX)
	y := gamemath.Clamp(
		s.Lane.GroundTop+s.Rand.Float64()*cfg.World.SpawnLaneSpread,
		s.Lane.GroundTop, s.Lane.GroundBottom,
	)
	factory.CreateEnemy(e, typ, x, y)
}

// rollEnemyType picks a regular enemy variant uniformly. The boss is
// never rolled; it only enters through the gate trigger.
func rollEnemyType(s *components.SessionData) cfg.EnemyType {
	switch s.Rand.Intn(3) {
	case 0:
		return cfg.EnemyGrunt
	case 1:
		return cfg.EnemyFast
	default:
		return cfg.EnemyTank
	}
}
