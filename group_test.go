package yuletide

import (
	"math"
	"testing"
)

func TestGroupAdvance(t *testing.T) {
	g := NewGroup(GroupCanopy, 0.1)
	if !g.Visible() || g.Angle() != 0 {
		t.Fatalf("new group: visible %v angle %v", g.Visible(), g.Angle())
	}
	for i := 0; i < 10; i++ {
		g.Advance(0.5, 0.2)
	}
	if !approx(g.Angle(), 10*0.5*0.1*0.2, 1e-12) {
		t.Errorf("angle = %v", g.Angle())
	}
}

func TestGroupAdvancesWhileHidden(t *testing.T) {
	a := NewGroup(GroupGifts, 0.1)
	b := NewGroup(GroupGifts, 0.1)
	b.SetVisible(false)
	for i := 0; i < 60; i++ {
		a.Advance(1.0/60, 1)
		b.Advance(1.0/60, 1)
	}
	b.SetVisible(true)
	if a.Angle() != b.Angle() {
		t.Errorf("hidden group drifted: %v vs %v", b.Angle(), a.Angle())
	}
}

func TestGroupNonFinite(t *testing.T) {
	g := NewGroup(GroupStar, 0.5)
	g.Advance(math.Inf(1), 1)
	if math.IsNaN(g.Angle()) || math.IsInf(g.Angle(), 0) {
		t.Errorf("angle = %v", g.Angle())
	}
}

func TestDefaultGroupRates(t *testing.T) {
	rates := DefaultGroupRates()
	if len(rates) != len(groupOrder) {
		t.Fatalf("rates for %d groups, want %d", len(rates), len(groupOrder))
	}
	for _, name := range []string{GroupStrands, GroupSnow, GroupFloor} {
		if rates[name] != 0 {
			t.Errorf("%s rotates at %v", name, rates[name])
		}
	}
	if rates[GroupStar] <= rates[GroupCanopy] {
		t.Error("star should spin faster than the canopy")
	}
	for c := Category(0); c < numCategories; c++ {
		if len(categoryGroups[c]) == 0 {
			t.Errorf("category %v toggles nothing", c)
		}
	}
}
