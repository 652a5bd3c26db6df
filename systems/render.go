package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld renders the lane and every snapshot entity, back to front.
// Entities draw as tinted boxes keyed on their visual kind; the sprite
// pipeline swaps in sheets without touching the simulation.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	snapEntry, ok := components.Snapshot.First(e.World)
	if !ok {
		return
	}
	snap := components.Snapshot.Get(snapEntry)
	s := GetSession(e)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	// Sky above the walkable band, dirt below.
	groundTop := float32(s.Lane.GroundTop - snap.CameraY)
	vector.DrawFilledRect(screen, 0, 0, width, groundTop, cfg.SkyBlue, false)
	vector.DrawFilledRect(screen, 0, groundTop, width, height-groundTop, cfg.Brown, false)
	groundBottom := float32(s.Lane.GroundBottom - snap.CameraY)
	vector.DrawFilledRect(screen, 0, groundBottom, width, height-groundBottom, cfg.DarkBrown, false)

	for i := range snap.Entities {
		ent := &snap.Entities[i]
		x := float32(ent.X - snap.CameraX)
		y := float32(ent.Y - snap.CameraY)
		w := float32(ent.W)
		h := float32(ent.H)

		// Off-screen culling
		if x+w < 0 || x > width || y+h < 0 || y > height {
			continue
		}

		vector.DrawFilledRect(screen, x, y, w, h, kindColor(ent.Kind), false)

		// Facing marker on player-class boxes until sprites land.
		switch ent.Kind {
		case cfg.VisualKnight, cfg.VisualRogue, cfg.VisualMage:
			mx := x + 4
			if ent.FacingRight {
				mx = x + w - 10
			}
			vector.DrawFilledRect(screen, mx, y+8, 6, 6, cfg.White, false)
		}

		if ent.ShowHealth {
			drawHealthBar(screen, x, y-8, w, ent.HealthRatio)
		}
	}

	drawHitboxes(e, screen, snap)
}

// drawHealthBar draws a small over-head bar: dark backing, green fill.
func drawHealthBar(screen *ebiten.Image, x, y, w float32, ratio float64) {
	vector.DrawFilledRect(screen, x, y, w, 5, color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen, x, y, w*float32(ratio), 5, color.RGBA{40, 220, 40, 255}, false)
}

// drawHitboxes outlines active melee volumes when the debug flag is on.
func drawHitboxes(e *ecs.ECS, screen *ebiten.Image, snap *components.SnapshotData) {
	if !cfg.Debug.ShowHitboxes {
		return
	}
	tags.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vector.StrokeRect(screen,
			float32(obj.X-snap.CameraX), float32(obj.Y-snap.CameraY),
			float32(obj.W), float32(obj.H),
			1, cfg.Yellow, false)
	})
}

// kindColor maps a visual kind to its placeholder tint.
func kindColor(kind cfg.VisualKind) color.RGBA {
	switch kind {
	case cfg.VisualKnight:
		return cfg.Classes[cfg.ClassKnight].Color
	case cfg.VisualRogue:
		return cfg.Classes[cfg.ClassRogue].Color
	case cfg.VisualMage:
		return cfg.Classes[cfg.ClassMage].Color
	case cfg.VisualGrunt:
		return cfg.Enemies[cfg.EnemyGrunt].Color
	case cfg.VisualFast:
		return cfg.Enemies[cfg.EnemyFast].Color
	case cfg.VisualTank:
		return cfg.Enemies[cfg.EnemyTank].Color
	case cfg.VisualBoss:
		return cfg.Enemies[cfg.EnemyBoss].Color
	case cfg.VisualCoin:
		return cfg.Gold
	case cfg.VisualProjectile:
		return cfg.Purple
	}
	return cfg.Gray
}
