package factory

import (
	"github.com/mowret/lanebrawler/archetypes"
	"github.com/mowret/lanebrawler/components"
	"github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCoin drops a coin with its foot anchor at (x, y). The coin bobs
// in place with a looping tween sequence; the offset is cosmetic and
// never moves the pickup volume.
func CreateCoin(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)

	size := config.Combat.CoinSize
	obj := resolv.NewObject(0, 0, size, size)
	obj.AddTags(tags.ResolvCoin)
	obj.Data = coin
	components.Object.SetValue(coin, components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)
	components.Object.Get(coin).SetFoot(x, y)

	components.Coin.SetValue(coin, components.CoinData{})

	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, -4, 0.6, ease.InOutQuad),
		gween.New(-4, 0, 0.6, ease.InOutQuad),
	)
	components.Tween.SetValue(coin, components.TweenData{Sequence: tw})
	components.Visual.SetValue(coin, components.VisualData{Kind: config.VisualCoin})

	return coin
}
