package systems

import (
	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShop handles the upgrade menu while the shop is open: selection
// wraps over the tracks, confirm attempts a purchase.
func UpdateShop(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	s := GetSession(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		s.ShopSelection = (s.ShopSelection + 1) % int(cfg.TrackCount)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		s.ShopSelection = (s.ShopSelection + int(cfg.TrackCount) - 1) % int(cfg.TrackCount)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	if GetAction(input, cfg.ActionConfirm).JustPressed {
		p := components.Player.Get(playerEntry)
		health := components.Health.Get(playerEntry)
		if ApplyUpgrade(p, health, cfg.UpgradeTrack(s.ShopSelection)) {
			PlaySFX(e, cfg.SoundPurchase)
		}
	}
}

// ApplyUpgrade buys one level on a track if the player can afford it.
// Damage and speed add flat bonuses; a health upgrade also refills the
// bar, which is the shop's heal.
func ApplyUpgrade(p *components.PlayerData, health *components.HealthData, track cfg.UpgradeTrack) bool {
	var level int
	switch track {
	case cfg.TrackDamage:
		level = p.DamageLevel
	case cfg.TrackHealth:
		level = p.HealthLevel
	case cfg.TrackSpeed:
		level = p.SpeedLevel
	default:
		return false
	}

	cost := cfg.UpgradeCost(track, level)
	if cost <= 0 || p.Coins < cost {
		return false
	}
	p.Coins -= cost

	switch track {
	case cfg.TrackDamage:
		p.BaseDamage += cfg.Shop.DamageBonus
		p.DamageLevel++
	case cfg.TrackHealth:
		health.Max += cfg.Shop.HealthBonus
		health.Current = health.Max
		p.HealthLevel++
	case cfg.TrackSpeed:
		p.Speed += cfg.Shop.SpeedBonus
		p.SpeedLevel++
	}
	return true
}
