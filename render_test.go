package yuletide

import "testing"

// smallConfig returns a fast scene that still exercises every component.
func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Canopy.Count = 400
	cfg.Lights.Count = 40
	cfg.Snow.Count = 60
	cfg.Gifts.BaseCount = 8
	cfg.Gifts.StackedCount = 6
	cfg.Gifts.FillerCount = 2
	cfg.Canes.Count = 6
	cfg.Confetti.Count = 20
	cfg.FloorRibbons.Count = 3
	cfg.Tinsel.Segments = 60
	return cfg
}

func collect(t *testing.T, s *Scene) *Renderer {
	t.Helper()
	r := NewRenderer()
	vp := NewCamera().Viewport(640, 480)
	r.Collect(s, &vp)
	return r
}

func TestCollectEmitsBothPasses(t *testing.T) {
	s := NewScene(smallConfig())
	s.Update(1, 1.0/60)
	r := collect(t, s)
	if len(r.cmds) == 0 {
		t.Fatal("no normal commands")
	}
	if len(r.additive) == 0 {
		t.Fatal("no additive commands for lights and bulbs")
	}
	triangles := 0
	for i := range r.cmds {
		if r.cmds[i].kind == cmdTriangle {
			triangles++
		}
	}
	if triangles == 0 {
		t.Error("no triangles for boxes, tubes and the star")
	}
}

func TestCollectSkipsHiddenCategories(t *testing.T) {
	s := NewScene(smallConfig())
	all := len(collect(t, s).cmds)

	s.SetVisible(CategoryGifts, false)
	s.SetVisible(CategorySnow, false)
	fewer := len(collect(t, s).cmds)
	if fewer >= all {
		t.Errorf("hiding gifts and snow: %d commands, was %d", fewer, all)
	}

	s.SetVisible(CategoryGifts, true)
	s.SetVisible(CategorySnow, true)
	if again := len(collect(t, s).cmds); again != all {
		t.Errorf("re-shown scene: %d commands, want %d", again, all)
	}
}

func TestMergeSortBackToFront(t *testing.T) {
	s := NewScene(smallConfig())
	r := collect(t, s)
	r.mergeSort()
	for i := 1; i < len(r.cmds); i++ {
		if r.cmds[i].depth > r.cmds[i-1].depth {
			t.Fatalf("command %d (depth %v) after nearer %v", i, r.cmds[i].depth, r.cmds[i-1].depth)
		}
	}
}

func TestMergeSortStable(t *testing.T) {
	r := NewRenderer()
	depths := []float32{5, 1, 5, 3, 5, 1, 9}
	for i, d := range depths {
		r.cmds = append(r.cmds, drawCommand{depth: d, order: i})
	}
	r.mergeSort()
	wantOrder := []int{6, 0, 2, 4, 3, 1, 5}
	for i, c := range r.cmds {
		if c.order != wantOrder[i] {
			t.Fatalf("position %d: order %d, want %d (got %+v)", i, c.order, wantOrder[i], r.cmds)
		}
	}
}

func TestRendererCachesGeometryPerGeneration(t *testing.T) {
	s := NewScene(smallConfig())
	r := collect(t, s)
	tube := r.caneTube
	vp := NewCamera().Viewport(640, 480)
	r.Collect(s, &vp)
	if r.caneTube != tube {
		t.Error("tube rebuilt without regeneration")
	}
	if len(r.ribbonTubes) != 3 {
		t.Errorf("ribbon tubes = %d", len(r.ribbonTubes))
	}

	cfg := smallConfig()
	cfg.Seed = 99
	s.SetConfig(cfg)
	r.Collect(s, &vp)
	if r.caneTube == tube {
		t.Error("tube not rebuilt after regeneration")
	}
}
