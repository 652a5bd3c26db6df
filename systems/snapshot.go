package systems

import (
	"sort"

	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BuildSnapshot flattens the simulation into the render snapshot:
// world-space rectangles sorted back-to-front on foot y, plus the HUD
// numbers. Renderers read only this, which keeps the simulation headless.
func BuildSnapshot(e *ecs.ECS) {
	snapEntry, ok := components.Snapshot.First(e.World)
	if !ok {
		return
	}
	s := GetSession(e)
	snap := components.Snapshot.Get(snapEntry)
	snap.Entities = snap.Entities[:0]

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		obj := components.Object.Get(entry)
		anim := components.Animation.Get(entry)
		health := components.Health.Get(entry)
		snap.Entities = append(snap.Entities, components.RenderEntity{
			Kind:        components.Visual.Get(entry).Kind,
			X:           obj.X,
			Y:           obj.Y,
			W:           obj.W,
			H:           obj.H,
			Frame:       anim.Frame,
			Row:         anim.Row,
			FacingRight: p.FacingRight,
			HealthRatio: health.Ratio(),
			FootY:       obj.FootY(),
		})
	})

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		en := components.Enemy.Get(entry)
		if !en.Alive {
			return
		}
		obj := components.Object.Get(entry)
		anim := components.Animation.Get(entry)
		health := components.Health.Get(entry)
		snap.Entities = append(snap.Entities, components.RenderEntity{
			Kind:        components.Visual.Get(entry).Kind,
			X:           obj.X,
			Y:           obj.Y,
			W:           obj.W,
			H:           obj.H,
			Frame:       anim.Frame,
			Row:         anim.Row,
			HealthRatio: health.Ratio(),
			ShowHealth:  health.Ratio() < 1,
			FootY:       obj.FootY(),
		})
	})

	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		pr := components.Projectile.Get(entry)
		if !pr.Active {
			return
		}
		obj := components.Object.Get(entry)
		snap.Entities = append(snap.Entities, components.RenderEntity{
			Kind:  cfg.VisualProjectile,
			X:     obj.X,
			Y:     obj.Y,
			W:     obj.W,
			H:     obj.H,
			FootY: obj.FootY(),
		})
	})

	tags.Coin.Each(e.World, func(entry *donburi.Entry) {
		c := components.Coin.Get(entry)
		if c.Collected {
			return
		}
		obj := components.Object.Get(entry)
		tw := components.Tween.Get(entry)
		snap.Entities = append(snap.Entities, components.RenderEntity{
			Kind: cfg.VisualCoin,
			X:    obj.X,
			// The bob offset is applied at draw time only; the pickup
			// volume never moves.
			Y:     obj.Y + tw.Offset,
			W:     obj.W,
			H:     obj.H,
			FootY: obj.FootY(),
		})
	})

	sort.SliceStable(snap.Entities, func(i, j int) bool {
		return snap.Entities[i].FootY < snap.Entities[j].FootY
	})

	if camEntry, ok := components.Camera.First(e.World); ok {
		cam := components.Camera.Get(camEntry)
		snap.CameraX = cam.X
		snap.CameraY = cam.Y
	}

	snap.Phase = s.Phase
	snap.Class = s.Class
	snap.ShopSelection = s.ShopSelection
	snap.BossActive = false
	snap.BossHealth = 0

	if playerEntry, ok := components.Player.First(e.World); ok {
		p := components.Player.Get(playerEntry)
		health := components.Health.Get(playerEntry)
		snap.PlayerHealth = float64(health.Current)
		snap.PlayerMaxHP = float64(health.Max)
		snap.Coins = p.Coins
		snap.ComboStep = p.ComboStep
		snap.DamageLevel = p.DamageLevel
		snap.HealthLevel = p.HealthLevel
		snap.SpeedLevel = p.SpeedLevel
	}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		en := components.Enemy.Get(entry)
		if en.Type != cfg.EnemyBoss || !en.Alive {
			return
		}
		snap.BossActive = true
		snap.BossHealth = components.Health.Get(entry).Ratio()
	})
}
