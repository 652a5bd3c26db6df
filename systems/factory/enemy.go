package factory

import (
	"github.com/mowret/lanebrawler/archetypes"
	"github.com/mowret/lanebrawler/components"
	"github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the given variant with its foot anchor
// at (x, y).
func CreateEnemy(ecs *ecs.ECS, typ config.EnemyType, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	tc := config.Enemies[typ]

	obj := resolv.NewObject(0, 0, tc.Width, tc.Height)
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)
	components.Object.Get(enemy).SetFoot(x, y)

	cached := tc
	components.Enemy.SetValue(enemy, components.EnemyData{
		Type:       typ,
		TypeConfig: &cached,
		Speed:      tc.Speed,
		Alive:      true,
		// No swing has touched this enemy yet; ids are minted from 1.
		LastHitAttackID:     -1,
		LastProjectileHitID: -1,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: tc.MaxHP,
		Max:     tc.MaxHP,
	})

	cols, rows := config.GridFor(tc.Visual)
	components.Animation.SetValue(enemy, components.AnimationData{
		Row:       config.EnemyRowWalk,
		Columns:   cols,
		Rows:      rows,
		FrameTime: config.Sprites.EnemyFrameTime,
	})
	components.Visual.SetValue(enemy, components.VisualData{Kind: tc.Visual})

	return enemy
}
