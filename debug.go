package yuletide

import (
	"fmt"
	"os"
	"time"
)

// debugLogInterval is how many frames are aggregated per update log line.
const debugLogInterval = 300

// debugStats accumulates per-frame update timings between log lines.
// Only populated when Scene.debug is true.
type debugStats struct {
	frames     int
	updateTime time.Duration
	worst      time.Duration
}

// debugGenerated prints generation time and scene totals to stderr.
func (s *Scene) debugGenerated(took time.Duration) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[yuletide] generated in %v | points: %d | instances: %d | strands: %d | seed: %d\n",
		took, s.PointCount(), s.InstanceCount(), len(s.strands), s.cfg.Seed)
}

// debugFrame records one update and prints averaged stats every
// debugLogInterval frames.
func (s *Scene) debugFrame(took time.Duration) {
	st := &s.stats
	st.frames++
	st.updateTime += took
	st.worst = max(st.worst, took)
	if st.frames < debugLogInterval {
		return
	}
	avg := st.updateTime / time.Duration(st.frames)
	_, _ = fmt.Fprintf(os.Stderr,
		"[yuletide] update avg: %v | worst: %v | frames: %d | speed: %.2f\n",
		avg, st.worst, st.frames, s.Speed())
	s.stats = debugStats{}
}
