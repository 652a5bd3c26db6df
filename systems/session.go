package systems

import (
	"time"

	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the session singleton.
func GetSession(e *ecs.ECS) *components.SessionData {
	return components.Session.Get(components.Session.MustFirst(e.World))
}

// ApplyClock feeds one frame of wall-clock time into the session's
// two-delta clock. The real delta is clamped so a stalled frame cannot
// teleport entities. While hit-stop runs, the simulation delta is zero
// but the real delta keeps flowing, so animation cursors and ability
// cooldowns never freeze.
func ApplyClock(s *components.SessionData, realDt float64) {
	if realDt < 0 {
		realDt = 0
	}
	if realDt > cfg.World.MaxFrameDelta {
		realDt = cfg.World.MaxFrameDelta
	}
	s.RealDelta = realDt

	if s.HitStop > 0 {
		s.HitStop -= realDt
		if s.HitStop < 0 {
			s.HitStop = 0
		}
		s.Delta = 0
		return
	}
	s.Delta = realDt
}

// UpdateClock measures elapsed wall time since the last tick and feeds
// it into the clock. Must run before every other simulation system.
func UpdateClock(e *ecs.ECS) {
	s := GetSession(e)
	now := time.Now()
	ApplyClock(s, now.Sub(s.LastTick).Seconds())
	s.LastTick = now
}

// AddHitStop freezes the simulation clock for d seconds. Overlapping
// freezes keep the longest remaining time rather than stacking.
func AddHitStop(s *components.SessionData, d float64) {
	if d > s.HitStop {
		s.HitStop = d
	}
}

// WithPhase wraps a system so it only runs while the session is in the
// given phase.
func WithPhase(phase cfg.Phase, fn func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if GetSession(e).Phase == phase {
			fn(e)
		}
	}
}
