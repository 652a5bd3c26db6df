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

// CreatePlayer spawns the player character with its foot anchor at (x, y).
func CreatePlayer(ecs *ecs.ECS, class config.PlayerClass, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	cc := &config.Classes[class]

	obj := resolv.NewObject(0, 0, config.World.PlayerWidth, config.World.PlayerHeight)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)
	components.Object.Get(player).SetFoot(x, y)

	components.Player.SetValue(player, components.PlayerData{
		Class:       class,
		FacingRight: true,
		Speed:       cc.Speed,
		BaseDamage:  cc.BaseDamage,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cc.MaxHP,
		Max:     cc.MaxHP,
	})

	cols, rows := config.GridFor(cc.Visual)
	components.Animation.SetValue(player, components.AnimationData{
		Row:       config.PlayerRowIdle,
		Columns:   cols,
		Rows:      rows,
		FrameTime: config.Sprites.PlayerFrameTime,
	})
	components.Visual.SetValue(player, components.VisualData{Kind: cc.Visual})

	return player
}
