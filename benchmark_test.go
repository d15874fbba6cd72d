package yuletide

import "testing"

func BenchmarkGenerate(b *testing.B) {
	cfg := DefaultConfig()
	for i := 0; i < b.N; i++ {
		s := NewScene(cfg)
		s.Generate()
	}
}

func BenchmarkSceneUpdate(b *testing.B) {
	s := NewScene(DefaultConfig())
	s.Generate()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Update(float64(i)/60, 1.0/60)
	}
}

func BenchmarkCollect(b *testing.B) {
	s := NewScene(DefaultConfig())
	s.Generate()
	r := NewRenderer()
	vp := NewCamera().Viewport(1280, 720)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Collect(s, &vp)
		r.mergeSort()
	}
}

func BenchmarkBuildTinsel(b *testing.B) {
	cfg := DefaultTinselConfig()
	sil := DefaultCanopyConfig().Silhouette()
	for i := 0; i < b.N; i++ {
		BuildTinsel(sil, cfg)
	}
}
