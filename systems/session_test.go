package systems

import (
	"testing"

	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/yohamta/donburi/ecs"
)

func TestApplyClockClampsFrameDelta(t *testing.T) {
	tests := []struct {
		name   string
		realDt float64
		want   float64
	}{
		{"normal frame", 0.016, 0.016},
		{"stalled frame clamps", 0.5, cfg.World.MaxFrameDelta},
		{"negative clamps to zero", -0.1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &components.SessionData{}
			ApplyClock(s, tt.realDt)
			if !approx(s.RealDelta, tt.want) {
				t.Errorf("RealDelta = %v, want %v", s.RealDelta, tt.want)
			}
			if !approx(s.Delta, tt.want) {
				t.Errorf("Delta = %v, want %v", s.Delta, tt.want)
			}
		})
	}
}

func TestApplyClockHitStopFreezesSimDelta(t *testing.T) {
	s := &components.SessionData{}
	AddHitStop(s, 0.12)

	// While hit-stop runs, the real delta flows but the sim delta is zero.
	for i := 0; i < 3; i++ {
		ApplyClock(s, 0.05)
		if s.Delta != 0 {
			t.Fatalf("tick %d: Delta = %v, want 0 during hit-stop", i, s.Delta)
		}
		if !approx(s.RealDelta, 0.05) {
			t.Fatalf("tick %d: RealDelta = %v, want 0.05", i, s.RealDelta)
		}
	}
	if s.HitStop != 0 {
		t.Fatalf("HitStop = %v, want 0 after 0.15s of real time", s.HitStop)
	}

	ApplyClock(s, 0.05)
	if !approx(s.Delta, 0.05) {
		t.Errorf("Delta = %v, want 0.05 after hit-stop ends", s.Delta)
	}
}

func TestAddHitStopKeepsLongest(t *testing.T) {
	s := &components.SessionData{}
	AddHitStop(s, 0.05)
	AddHitStop(s, 0.03)
	if !approx(s.HitStop, 0.05) {
		t.Errorf("HitStop = %v, want 0.05 (shorter freeze must not shorten it)", s.HitStop)
	}
	AddHitStop(s, 0.08)
	if !approx(s.HitStop, 0.08) {
		t.Errorf("HitStop = %v, want 0.08 (longer freeze extends it)", s.HitStop)
	}
}

func TestSessionMintsUniqueIDs(t *testing.T) {
	s := &components.SessionData{}
	if got := s.NextAttackID(); got != 1 {
		t.Errorf("first attack id = %d, want 1", got)
	}
	if got := s.NextAttackID(); got != 2 {
		t.Errorf("second attack id = %d, want 2", got)
	}
	if got := s.NextProjectileID(); got != 1 {
		t.Errorf("first projectile id = %d, want 1", got)
	}
}

func TestWithPhaseGatesSystems(t *testing.T) {
	e, _ := newTestGame(t, cfg.ClassKnight)
	s := GetSession(e)

	ran := 0
	gated := WithPhase(cfg.PhasePlaying, func(*ecs.ECS) { ran++ })

	gated(e)
	if ran != 1 {
		t.Fatalf("system ran %d times in playing phase, want 1", ran)
	}

	s.Phase = cfg.PhaseShop
	gated(e)
	if ran != 1 {
		t.Errorf("system ran %d times, want 1 (must not run in shop phase)", ran)
	}
}
