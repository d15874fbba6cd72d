package yuletide

import (
	"testing"
	"time"
)

func TestDebugFrameResetsAfterInterval(t *testing.T) {
	s := NewScene(smallConfig())
	for i := 0; i < debugLogInterval-1; i++ {
		s.debugFrame(time.Millisecond)
	}
	if s.stats.frames != debugLogInterval-1 || s.stats.worst != time.Millisecond {
		t.Fatalf("stats = %+v", s.stats)
	}
	s.debugFrame(3 * time.Millisecond)
	if s.stats.frames != 0 || s.stats.updateTime != 0 || s.stats.worst != 0 {
		t.Errorf("stats not reset: %+v", s.stats)
	}
}

func TestDebugModeTogglesStats(t *testing.T) {
	s := NewScene(smallConfig())
	s.Generate()
	s.Update(0, 0.016)
	if s.stats.frames != 0 {
		t.Error("stats recorded with debug off")
	}
	s.SetDebugMode(true)
	s.Update(0.016, 0.016)
	if s.stats.frames != 1 {
		t.Errorf("frames = %d, want 1", s.stats.frames)
	}
}
