package systems

import (
	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/gamemath"
	"github.com/mowret/lanebrawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCoins advances the cosmetic bob and credits coins the player
// walks over. The bob offset never moves the pickup volume, so a coin
// at the top of its arc is picked up exactly like one at the bottom.
func UpdateCoins(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	s := GetSession(e)
	p := components.Player.Get(playerEntry)
	pObj := components.Object.Get(playerEntry)

	tags.Coin.Each(e.World, func(entry *donburi.Entry) {
		c := components.Coin.Get(entry)
		if c.Collected {
			return
		}

		tw := components.Tween.Get(entry)
		if tw.Sequence != nil {
			v, _, seqDone := tw.Sequence.Update(float32(s.RealDelta))
			tw.Offset = float64(v)
			if seqDone {
				tw.Sequence.Reset()
			}
		}

		obj := components.Object.Get(entry)
		if gamemath.RectsOverlap(
			obj.X, obj.Y, obj.W, obj.H,
			pObj.X, pObj.Y, pObj.W, pObj.H,
		) {
			c.Collected = true
			p.Coins++
			PlaySFX(e, cfg.SoundCoin)
		}
	})
}
