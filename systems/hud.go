package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/fonts"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 180
	hudBarHeight = 16
	hudMargin    = 12
)

// DrawHUD renders the player bar, coin count, combo indicator, boss bar,
// and the phase overlays.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	snapEntry, ok := components.Snapshot.First(e.World)
	if !ok {
		return
	}
	snap := components.Snapshot.Get(snapEntry)

	// Player health bar, top-left.
	vector.DrawFilledRect(screen,
		hudMargin, hudMargin,
		hudBarWidth, hudBarHeight,
		color.RGBA{40, 40, 40, 255}, false)
	ratio := float32(0)
	if snap.PlayerMaxHP > 0 {
		ratio = float32(snap.PlayerHealth / snap.PlayerMaxHP)
		if ratio < 0 {
			ratio = 0
		}
	}
	vector.DrawFilledRect(screen,
		hudMargin, hudMargin,
		hudBarWidth*ratio, hudBarHeight,
		color.RGBA{40, 220, 40, 255}, false)

	bodyFont := fonts.Bold.Get()
	smallFont := fonts.Small.Get()

	hpLabel := fmt.Sprintf("%.0f/%.0f", snap.PlayerHealth, snap.PlayerMaxHP)
	text.Draw(screen, hpLabel, smallFont, hudMargin+hudBarWidth+8, hudMargin+hudBarHeight-3, cfg.White)

	coins := fmt.Sprintf("Coins: %d", snap.Coins)
	text.Draw(screen, coins, bodyFont, hudMargin, hudMargin+hudBarHeight+26, cfg.Gold)

	if snap.ComboStep > 0 {
		combo := fmt.Sprintf("Combo x%d", snap.ComboStep)
		text.Draw(screen, combo, bodyFont, hudMargin, hudMargin+hudBarHeight+52, cfg.Orange)
	}

	if snap.BossActive {
		drawBossBar(screen, snap)
	}

	if snap.Phase == cfg.PhasePlaying {
		hint := "Tab: Shop"
		text.Draw(screen, hint, smallFont, screen.Bounds().Dx()-90, screen.Bounds().Dy()-12, cfg.LightGray)
	}

	switch snap.Phase {
	case cfg.PhaseShop:
		drawShop(screen, snap)
	case cfg.PhaseVictory:
		drawBanner(screen, "VICTORY", cfg.Gold)
	case cfg.PhaseGameOver:
		drawBanner(screen, "GAME OVER", cfg.Red)
	}
}

// drawBossBar draws the boss health bar centered at the top of the screen.
func drawBossBar(screen *ebiten.Image, snap *components.SnapshotData) {
	width := float32(screen.Bounds().Dx())
	barW := width * 0.5
	barX := (width - barW) / 2

	vector.DrawFilledRect(screen, barX, hudMargin, barW, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen, barX, hudMargin, barW*float32(snap.BossHealth), hudBarHeight, cfg.DarkPurple, false)

	label := "BOSS"
	text.Draw(screen, label, fonts.Bold.Get(), int(barX)-60, hudMargin+hudBarHeight-2, cfg.White)
}

// drawShop renders the upgrade menu over a dimmed world.
func drawShop(screen *ebiten.Image, snap *components.SnapshotData) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	titleFont := fonts.Title.Get()
	title := "SHOP"
	titleWidth := len(title) * 20
	text.Draw(screen, title, titleFont, int((width-float64(titleWidth))/2), 120, cfg.Gold)

	bodyFont := fonts.Bold.Get()
	smallFont := fonts.Small.Get()

	levels := [cfg.TrackCount]int{
		cfg.TrackDamage: snap.DamageLevel,
		cfg.TrackHealth: snap.HealthLevel,
		cfg.TrackSpeed:  snap.SpeedLevel,
	}

	startY := 200
	for i := 0; i < int(cfg.TrackCount); i++ {
		track := cfg.UpgradeTrack(i)
		cost := cfg.UpgradeCost(track, levels[track])
		line := fmt.Sprintf("%s  (Lv %d)  -  %d coins", cfg.Shop.Tracks[track].Label, levels[track], cost)

		textColor := cfg.LightGray
		if i == snap.ShopSelection {
			textColor = cfg.Yellow
			text.Draw(screen, ">", bodyFont, int(width)/2-220, startY+i*40, cfg.Yellow)
		}
		text.Draw(screen, line, bodyFont, int(width)/2-190, startY+i*40, textColor)
	}

	coins := fmt.Sprintf("Coins: %d", snap.Coins)
	text.Draw(screen, coins, bodyFont, int(width)/2-190, startY+int(cfg.TrackCount)*40+30, cfg.Gold)

	hint := "Arrows: Select   Enter: Buy   Tab/Esc: Close"
	hintWidth := len(hint) * 7
	text.Draw(screen, hint, smallFont, int((width-float64(hintWidth))/2), int(height)-24, cfg.Gray)
}

// drawBanner dims the world and prints the end-of-run banner.
func drawBanner(screen *ebiten.Image, label string, tint color.RGBA) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	titleFont := fonts.Title.Get()
	titleWidth := len(label) * 20
	text.Draw(screen, label, titleFont, int((width-float64(titleWidth))/2), int(height)/2-20, tint)

	hint := "Enter: Play Again"
	smallFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	text.Draw(screen, hint, smallFont, int((width-float64(hintWidth))/2), int(height)/2+20, cfg.LightGray)
}
