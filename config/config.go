package config

import (
	"image/color"
	"math"
)

// PlayerClass identifies one of the playable character classes.
type PlayerClass int

const (
	ClassKnight PlayerClass = iota // slow, heavy melee
	ClassRogue                     // fast, light melee
	ClassMage                      // ranged
	ClassCount
)

// EnemyType identifies one of the enemy variants.
type EnemyType int

const (
	EnemyGrunt EnemyType = iota
	EnemyFast
	EnemyTank
	EnemyBoss
)

// VisualKind tags an entity with the sprite sheet the renderer should use.
// The simulation never holds texture handles.
type VisualKind int

const (
	VisualKnight VisualKind = iota
	VisualRogue
	VisualMage
	VisualGrunt
	VisualFast
	VisualTank
	VisualBoss
	VisualCoin
	VisualProjectile
)

// UpgradeTrack identifies a shop upgrade track.
type UpgradeTrack int

const (
	TrackDamage UpgradeTrack = iota
	TrackHealth
	TrackSpeed
	TrackCount
)

// WorldConfig holds lane geometry and pacing. Geometry defaults are
// overridden by the values parsed from the level TMX when it loads.
type WorldConfig struct {
	LevelLength  float64
	GroundTop    float64
	GroundBottom float64

	PlayerStartX  float64
	PlayerWidth   float64
	PlayerHeight  float64

	SpawnInterval   float64 // seconds between regular enemy spawns
	SpawnAheadMin   float64 // spawn x offset ahead of the player
	SpawnAheadMax   float64
	SpawnMinX       float64
	SpawnEndMargin  float64 // keep spawns this far from the level end
	SpawnLaneSpread float64 // random y spread below the lane top

	BossTriggerX float64 // player x past which the boss spawns
	BossSpawnX   float64

	ComboResetTime float64
	MaxFrameDelta  float64 // real frame time clamp
	HoldDistance   float64 // enemies closer than this hold position
	VerticalFactor float64 // enemy vertical speed relative to horizontal
	DodgeSpeedMul  float64 // dodge movement speed multiplier
}

// MeleeStep holds the shape and feel of one combo step of a melee swing.
type MeleeStep struct {
	Duration  float64
	Range     float64
	Width     float64
	Height    float64
	Knockback float64
	HitStop   float64
}

// ClassConfig holds the per-class stat and ability tables.
type ClassConfig struct {
	Name       string
	Type       PlayerClass
	MaxHP      int
	Speed      float64
	BaseDamage int
	Visual     VisualKind
	Color      color.RGBA

	// Combo damage multipliers indexed by step-1.
	Multipliers [3]float64

	// Melee swing table indexed by step-1 (melee classes only).
	Ranged bool
	Melee  [3]MeleeStep

	// Ranged cast (Mage only).
	CastDuration float64

	// Abilities; only the fields for the class's own ability are set.
	BlockDuration float64
	BlockCooldown float64

	DodgeDuration float64
	DodgeCooldown float64

	BlinkDistance float64
	BlinkCooldown float64
	BlinkInvuln   float64
}

// EnemyTypeConfig holds the per-variant enemy constant table.
type EnemyTypeConfig struct {
	Name   string
	Width  float64
	Height float64
	MaxHP  int
	Speed  float64
	Windup float64
	Damage int
	Coins  int
	Visual VisualKind
	Color  color.RGBA
}

// CombatConfig holds combat resolution constants shared across classes.
type CombatConfig struct {
	AttackAnimDuration float64 // enemy post-strike animation
	AttackCooldown     float64 // enemy cooldown after a strike
	PlayerHitStop      float64 // hit-stop when the player is struck
	BlockDivisor       int     // blocked damage = damage / BlockDivisor

	HitboxPad           float64 // widen melee hitboxes so point-blank hits land
	HitboxForwardFactor float64 // hitbox center = range * factor ahead of the player

	ProjectileLife    float64
	ProjectileMargin  float64 // despawn margin beyond the level bounds
	ProjectileRadius  [3]float64
	ProjectileSpeed   [3]float64
	ProjectileOffsetX float64
	ProjectileOffsetY float64

	CoinSize    float64
	CoinJitterX int
	CoinJitterY int
}

// ShopTrack is one purchasable upgrade track.
type ShopTrack struct {
	Label    string
	BaseCost int
}

// ShopConfig holds upgrade tracks and per-level increments.
type ShopConfig struct {
	Tracks      [TrackCount]ShopTrack
	DamageBonus int
	HealthBonus int
	SpeedBonus  float64
}

// SpriteConfig holds the fixed frame-grid shapes the renderer and the
// animation cursor agree on.
type SpriteConfig struct {
	PlayerColumns   int
	PlayerRows      int
	EnemyColumns    int
	EnemyRows       int
	PlayerFrameTime float64
	EnemyFrameTime  float64
}

// Config holds general game configuration.
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing options.
type DebugConfig struct {
	SkipMenu     bool // skip the menu and start a Knight run directly
	ShowHitboxes bool // draw active melee hitboxes
}

// Global configuration instances
var C *Config
var World WorldConfig
var Classes [ClassCount]ClassConfig
var Enemies map[EnemyType]EnemyTypeConfig
var Combat CombatConfig
var Shop ShopConfig
var Sprites SpriteConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gold         = color.RGBA{R: 255, G: 203, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	Maroon       = color.RGBA{R: 140, G: 33, B: 38, A: 255}
	Green        = color.RGBA{R: 0, G: 228, B: 48, A: 255}
	Purple       = color.RGBA{R: 160, G: 32, B: 240, A: 255}
	DarkPurple   = color.RGBA{R: 112, G: 31, B: 126, A: 255}
	SkyBlue      = color.RGBA{R: 102, G: 191, B: 255, A: 255}
	Brown        = color.RGBA{R: 127, G: 106, B: 79, A: 255}
	DarkBrown    = color.RGBA{R: 76, G: 63, B: 47, A: 255}
	DarkBlue     = color.RGBA{R: 0, G: 40, B: 87, A: 255}
	Gray         = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	DarkGray     = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	LightGray    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 150}
)

// ComboMultiplier returns the damage multiplier for a class at a combo
// step. Steps outside 1..3 clamp to the nearest valid step.
func ComboMultiplier(class PlayerClass, step int) float64 {
	if step < 1 {
		step = 1
	}
	if step > 3 {
		step = 3
	}
	if class < 0 || class >= ClassCount {
		return 1.0
	}
	return Classes[class].Multipliers[step-1]
}

// ComboDamage applies the combo multiplier to a base damage value,
// rounding to the nearest integer.
func ComboDamage(class PlayerClass, step, baseDamage int) int {
	return int(math.Round(float64(baseDamage) * ComboMultiplier(class, step)))
}

// UpgradeCost returns the price of a track at the given level:
// baseCost * (1 + level), strictly increasing and unbounded.
func UpgradeCost(track UpgradeTrack, level int) int {
	if track < 0 || track >= TrackCount {
		return 0
	}
	if level < 0 {
		level = 0
	}
	return Shop.Tracks[track].BaseCost * (1 + level)
}

// GridFor returns the frame-grid shape (columns, rows) for a visual kind.
func GridFor(kind VisualKind) (cols, rows int) {
	switch kind {
	case VisualKnight, VisualRogue, VisualMage:
		return Sprites.PlayerColumns, Sprites.PlayerRows
	case VisualGrunt, VisualFast, VisualTank, VisualBoss:
		return Sprites.EnemyColumns, Sprites.EnemyRows
	default:
		return 1, 1
	}
}

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Lane Brawler",
	}

	World = WorldConfig{
		LevelLength:  3000,
		GroundTop:    350,
		GroundBottom: 430,

		PlayerStartX: 100,
		PlayerWidth:  40,
		PlayerHeight: 75,

		SpawnInterval:   3.0,
		SpawnAheadMin:   250,
		SpawnAheadMax:   450,
		SpawnMinX:       400,
		SpawnEndMargin:  300,
		SpawnLaneSpread: 100,

		BossTriggerX: 2400,
		BossSpawnX:   2800,

		ComboResetTime: 1.0,
		MaxFrameDelta:  0.05,
		HoldDistance:   5.0,
		VerticalFactor: 0.6,
		DodgeSpeedMul:  3.5,
	}

	Classes = [ClassCount]ClassConfig{
		ClassKnight: {
			Name:        "Knight",
			Type:        ClassKnight,
			MaxHP:       170,
			Speed:       180,
			BaseDamage:  20,
			Visual:      VisualKnight,
			Color:       Red,
			Multipliers: [3]float64{1.0, 1.3, 2.0},
			Melee: [3]MeleeStep{
				{Duration: 0.28, Range: 55, Width: 60, Height: 70, Knockback: 35, HitStop: 0.03},
				{Duration: 0.32, Range: 65, Width: 70, Height: 75, Knockback: 35, HitStop: 0.03},
				{Duration: 0.40, Range: 80, Width: 85, Height: 80, Knockback: 90, HitStop: 0.06},
			},
			BlockDuration: 0.7,
			BlockCooldown: 1.0,
		},
		ClassRogue: {
			Name:        "Rogue",
			Type:        ClassRogue,
			MaxHP:       110,
			Speed:       270,
			BaseDamage:  14,
			Visual:      VisualRogue,
			Color:       Green,
			Multipliers: [3]float64{0.7, 0.9, 1.1},
			Melee: [3]MeleeStep{
				{Duration: 0.12, Range: 45, Width: 35, Height: 55, Knockback: 22, HitStop: 0.03},
				{Duration: 0.14, Range: 55, Width: 40, Height: 55, Knockback: 22, HitStop: 0.03},
				{Duration: 0.16, Range: 60, Width: 45, Height: 55, Knockback: 22, HitStop: 0.03},
			},
			DodgeDuration: 0.25,
			DodgeCooldown: 0.9,
		},
		ClassMage: {
			Name:         "Mage",
			Type:         ClassMage,
			MaxHP:        90,
			Speed:        190,
			BaseDamage:   10,
			Visual:       VisualMage,
			Color:        Purple,
			Multipliers:  [3]float64{0.8, 1.0, 1.2},
			Ranged:       true,
			CastDuration: 0.22,
			BlinkDistance: 150,
			BlinkCooldown: 1.2,
			BlinkInvuln:   0.15,
		},
	}

	Enemies = map[EnemyType]EnemyTypeConfig{
		EnemyGrunt: {
			Name: "Grunt", Width: 40, Height: 70,
			MaxHP: 90, Speed: 80, Windup: 0.35, Damage: 6, Coins: 1,
			Visual: VisualGrunt, Color: Red,
		},
		EnemyFast: {
			Name: "Fast", Width: 32, Height: 60,
			MaxHP: 80, Speed: 135, Windup: 0.25, Damage: 8, Coins: 1,
			Visual: VisualFast, Color: Orange,
		},
		EnemyTank: {
			Name: "Tank", Width: 60, Height: 90,
			MaxHP: 150, Speed: 55, Windup: 0.45, Damage: 13, Coins: 3,
			Visual: VisualTank, Color: Maroon,
		},
		EnemyBoss: {
			Name: "Boss", Width: 100, Height: 140,
			MaxHP: 450, Speed: 70, Windup: 0.6, Damage: 20, Coins: 10,
			Visual: VisualBoss, Color: DarkPurple,
		},
	}

	Combat = CombatConfig{
		AttackAnimDuration: 0.22,
		AttackCooldown:     1.1,
		PlayerHitStop:      0.05,
		BlockDivisor:       3,

		HitboxPad:           20,
		HitboxForwardFactor: 0.6,

		ProjectileLife:    1.2,
		ProjectileMargin:  200,
		ProjectileRadius:  [3]float64{18, 22, 26},
		ProjectileSpeed:   [3]float64{420, 460, 520},
		ProjectileOffsetX: 30,
		ProjectileOffsetY: -25,

		CoinSize:    12,
		CoinJitterX: 10,
		CoinJitterY: 20,
	}

	Shop = ShopConfig{
		Tracks: [TrackCount]ShopTrack{
			TrackDamage: {Label: "Increase Damage", BaseCost: 5},
			TrackHealth: {Label: "Increase Max HP", BaseCost: 5},
			TrackSpeed:  {Label: "Increase Speed", BaseCost: 5},
		},
		DamageBonus: 3,
		HealthBonus: 15,
		SpeedBonus:  20,
	}

	Sprites = SpriteConfig{
		PlayerColumns:   4,
		PlayerRows:      3,
		EnemyColumns:    4,
		EnemyRows:       2,
		PlayerFrameTime: 0.12,
		EnemyFrameTime:  0.15,
	}
}
