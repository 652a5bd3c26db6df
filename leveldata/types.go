// Package leveldata provides TMX lane parsing. It depends on neither
// ebitengine, donburi, nor resolv, so the geometry stays testable.
package leveldata

// Lane holds the geometry of the playable lane parsed from a TMX level.
type Lane struct {
	Length       float64 // horizontal extent of the lane
	GroundTop    float64 // top of the walkable band
	GroundBottom float64 // bottom of the walkable band

	SpawnMinX float64 // regular spawns never land left of this
	SpawnMaxX float64 // or right of this

	BossTriggerX float64 // player x past which the boss appears
	BossSpawnX   float64 // where the boss appears

	PlayerSpawnX float64
	PlayerSpawnY float64
}

// DefaultLane returns the built-in lane used when no level file loads.
func DefaultLane() *Lane {
	return &Lane{
		Length:       3000,
		GroundTop:    350,
		GroundBottom: 430,
		SpawnMinX:    400,
		SpawnMaxX:    2700,
		BossTriggerX: 2400,
		BossSpawnX:   2800,
		PlayerSpawnX: 100,
		PlayerSpawnY: 390,
	}
}
