package components

import (
	"github.com/mowret/lanebrawler/config"
	"github.com/yohamta/donburi"
)

// RenderEntity is one drawable thing the snapshot system extracted from
// the world this tick: screen-space rectangle plus whatever the renderer
// needs to pick a sprite frame or fall back to a tinted box.
type RenderEntity struct {
	Kind        config.VisualKind
	X, Y, W, H  float64
	Frame, Row  int
	FacingRight bool
	HealthRatio float64
	ShowHealth  bool
	FootY       float64 // y-sort key
}

// SnapshotData is the render-side view of the simulation, rebuilt every
// tick. Renderers read only this; they never query gameplay components.
type SnapshotData struct {
	Entities []RenderEntity

	CameraX float64
	CameraY float64

	Phase         config.Phase
	PlayerHealth  float64
	PlayerMaxHP   float64
	Coins         int
	ComboStep     int
	BossActive    bool
	BossHealth    float64
	ShopSelection int
	Class         config.PlayerClass
	DamageLevel   int
	HealthLevel   int
	SpeedLevel    int
}

var Snapshot = donburi.NewComponentType[SnapshotData]()
