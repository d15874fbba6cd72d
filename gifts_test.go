package yuletide

import (
	"math"
	"testing"
)

func TestPlanGiftsCounts(t *testing.T) {
	cfg := DefaultGiftConfig()
	cfg.FillerCount = 0
	p := PlanGifts(cfg, testRNG())
	if p.Len() != 150 {
		t.Fatalf("gifts = %d, want 150", p.Len())
	}
	for i := range p.Gifts {
		s := p.Gifts[i].Size()
		if s.X() <= 0 || s.Y() <= 0 || s.Z() <= 0 {
			t.Fatalf("gift %d size %v", i, s)
		}
	}
	if p.Boxes.Len() != 150 || p.Ribbons.Len() != 300 || p.BowKnots.Len() != 150 ||
		p.BowLoops.Len() != 300 || p.BowTails.Len() != 300 {
		t.Errorf("derived batch sizes: %d %d %d %d %d",
			p.Boxes.Len(), p.Ribbons.Len(), p.BowKnots.Len(), p.BowLoops.Len(), p.BowTails.Len())
	}
}

func TestPlanGiftsStackedRest(t *testing.T) {
	cfg := DefaultGiftConfig()
	p := PlanGifts(cfg, testRNG())
	stacked := 0
	for i := range p.Gifts {
		g := &p.Gifts[i]
		switch g.Layer {
		case LayerBase, LayerFiller:
			if g.Box.Parent != -1 {
				t.Errorf("floor gift %d has parent %d", i, g.Box.Parent)
			}
			if !approx(float64(g.Bottom()), cfg.FloorY, 1e-4) {
				t.Errorf("floor gift %d bottom %v", i, g.Bottom())
			}
		case LayerStacked:
			stacked++
			parent := g.Box.Parent
			if parent < 0 || parent >= i {
				t.Fatalf("stacked gift %d parent %d", i, parent)
			}
			if !p.Gifts[parent].Stackable {
				t.Errorf("gift %d rests on non-stackable %d", i, parent)
			}
			want := float64(p.Gifts[parent].Top()) - cfg.Overlap
			if !approx(float64(g.Bottom()), want, 1e-4) {
				t.Errorf("gift %d bottom %v, want %v", i, g.Bottom(), want)
			}
		}
	}
	if stacked != cfg.StackedCount {
		t.Errorf("stacked = %d, want %d", stacked, cfg.StackedCount)
	}
}

func TestPlanGiftsBaseInAnnulus(t *testing.T) {
	cfg := DefaultGiftConfig()
	p := PlanGifts(cfg, testRNG())
	for i := range p.Gifts {
		g := &p.Gifts[i]
		if g.Layer == LayerStacked {
			continue
		}
		r := math.Hypot(float64(g.Box.Position.X()), float64(g.Box.Position.Z()))
		if r < cfg.Annulus.Min-1e-4 || r > cfg.Annulus.Max+1e-4 {
			t.Errorf("gift %d at radius %v", i, r)
		}
	}
}

func TestPlanGiftsNoBaseSkipsStacking(t *testing.T) {
	cfg := DefaultGiftConfig()
	cfg.BaseCount = 0
	cfg.FillerCount = 5
	p := PlanGifts(cfg, testRNG())
	if p.Len() != 5 {
		t.Fatalf("gifts = %d, want 5 fillers only", p.Len())
	}
	for i := range p.Gifts {
		if p.Gifts[i].Layer != LayerFiller {
			t.Errorf("gift %d layer %v", i, p.Gifts[i].Layer)
		}
	}
}

func TestGiftPartsFollowBox(t *testing.T) {
	cfg := DefaultGiftConfig()
	cfg.StackedCount = 0
	cfg.FillerCount = 0
	cfg.BaseCount = 10
	p := PlanGifts(cfg, testRNG())
	for i := range p.Gifts {
		g := &p.Gifts[i]
		for k := 0; k < 2; k++ {
			band := p.Ribbons.Instances[i*2+k]
			if band.Position != g.Box.Position || band.Rotation != g.Box.Rotation {
				t.Errorf("gift %d band %d not centered on box", i, k)
			}
			if band.Color != g.RibbonColor {
				t.Errorf("gift %d band %d color", i, k)
			}
		}
		knot := p.BowKnots.Instances[i]
		if knot.Position.Y() < g.Top() {
			t.Errorf("gift %d knot below top: %v < %v", i, knot.Position.Y(), g.Top())
		}
		if !approx(float64(knot.Position.X()), float64(g.Box.Position.X()), 1e-6) {
			t.Errorf("gift %d knot off center", i)
		}
	}
}
