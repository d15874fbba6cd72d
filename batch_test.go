package yuletide

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewBatchDefaults(t *testing.T) {
	b := newBatch(KindBauble, 3)
	if b.Len() != 3 || len(b.Matrices) != 3 || len(b.Colors) != 9 {
		t.Fatalf("sizes: %d %d %d", b.Len(), len(b.Matrices), len(b.Colors))
	}
	for i, in := range b.Instances {
		if in.Kind != KindBauble || in.Parent != -1 || in.Scale != (mgl32.Vec3{1, 1, 1}) {
			t.Errorf("instance %d = %+v", i, in)
		}
	}
	if newBatch(KindBell, -5).Len() != 0 {
		t.Error("negative count should yield an empty batch")
	}
}

func TestBatchCommit(t *testing.T) {
	b := newBatch(KindGift, 2)
	b.Instances[1].Position = mgl32.Vec3{1, 2, 3}
	b.Instances[1].Scale = mgl32.Vec3{2, 2, 2}
	b.Instances[1].Color = Color{0.5, 0.25, 1, 1}
	b.Commit()

	if !b.Dirty() {
		t.Error("Commit did not mark the batch dirty")
	}
	if b.Matrices[1] != b.Instances[1].Matrix() {
		t.Error("committed matrix disagrees with Instance.Matrix")
	}
	if got := transformPoint(b.Matrices[1], mgl32.Vec3{}); got != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("origin maps to %v", got)
	}
	if b.Colors[3] != 0.5 || b.Colors[4] != 0.25 || b.Colors[5] != 1 {
		t.Errorf("colors = %v", b.Colors[3:6])
	}
}

func TestBatchSetColorAtKeepsMatrix(t *testing.T) {
	b := newBatch(KindBulb, 2)
	b.Instances[0].Position = mgl32.Vec3{4, 5, 6}
	b.Commit()
	b.ClearDirty()
	m := b.Matrices[0]

	b.SetColorAt(0, Color{0.1, 0.2, 0.3, 1})
	if b.Matrices[0] != m {
		t.Error("SetColorAt changed the matrix")
	}
	if !b.Dirty() {
		t.Error("SetColorAt did not mark dirty")
	}
	if b.Colors[0] != 0.1 || b.Colors[1] != 0.2 || b.Colors[2] != 0.3 {
		t.Errorf("colors = %v", b.Colors[:3])
	}
	if b.Instances[0].Color != ColorWhite {
		t.Error("SetColorAt must not touch the instance record")
	}
}
