package yuletide

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPlanCanesWithoutGiftsFallsBackToFlat(t *testing.T) {
	cfg := DefaultCaneConfig()
	cfg.UprightChance = 0
	cfg.FlatChance = 0 // every draw asks for a gift
	for _, gifts := range []*GiftPlan{nil, {}} {
		p := PlanCanes(cfg, gifts, testRNG())
		for i, m := range p.Placements {
			if m != CaneFlat {
				t.Fatalf("cane %d placement %v, want flat", i, m)
			}
			if p.Hosts[i] != -1 {
				t.Fatalf("cane %d host %d", i, p.Hosts[i])
			}
		}
	}
}

func TestPlanCanesOnGiftRestsOnTop(t *testing.T) {
	gifts := PlanGifts(DefaultGiftConfig(), testRNG())
	cfg := DefaultCaneConfig()
	cfg.UprightChance = 0
	cfg.FlatChance = 0
	p := PlanCanes(cfg, gifts, testRNG())
	if p.Canes.Len() != cfg.Count {
		t.Fatalf("canes = %d", p.Canes.Len())
	}
	for i, in := range p.Canes.Instances {
		host := p.Hosts[i]
		if p.Placements[i] != CaneOnGift || host < 0 || host >= gifts.Len() || in.Parent != host {
			t.Fatalf("cane %d placement %v host %d parent %d", i, p.Placements[i], host, in.Parent)
		}
		scale := float64(in.Scale.X())
		want := float64(gifts.Gifts[host].Top()) + CaneTubeRadius*scale + cfg.Epsilon
		if !approx(float64(in.Position.Y()), want, 1e-4) {
			t.Errorf("cane %d y = %v, want %v", i, in.Position.Y(), want)
		}
	}
}

func TestPlanCanesFloorClearance(t *testing.T) {
	cfg := DefaultCaneConfig()
	p := PlanCanes(cfg, nil, testRNG())
	for i, in := range p.Canes.Instances {
		if float64(in.Position.Y()) < cfg.FloorY+cfg.Epsilon-1e-5 {
			t.Errorf("cane %d (%v) sinks into the floor: y = %v", i, p.Placements[i], in.Position.Y())
		}
		if in.Variant != i%cfg.Variants {
			t.Errorf("cane %d variant %d", i, in.Variant)
		}
	}
}

func TestPlanCanesMixesPlacements(t *testing.T) {
	gifts := PlanGifts(DefaultGiftConfig(), testRNG())
	cfg := DefaultCaneConfig()
	cfg.Count = 200
	p := PlanCanes(cfg, gifts, testRNG())
	seen := map[CanePlacement]int{}
	for _, m := range p.Placements {
		seen[m]++
	}
	for _, m := range []CanePlacement{CaneUpright, CaneFlat, CaneOnGift} {
		if seen[m] == 0 {
			t.Errorf("no %v canes among 200", m)
		}
	}
}

func TestCaneCurveHook(t *testing.T) {
	c := CaneCurve()
	if c.Point(0) != (mgl32.Vec3{}) {
		t.Errorf("cane starts at %v, want origin", c.Point(0))
	}
	top := c.Point(0.6)
	if top.Y() < 1.0 {
		t.Errorf("hook apex y = %v", top.Y())
	}
}
