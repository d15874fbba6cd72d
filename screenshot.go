package yuletide

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// screenshotQueue collects labels to capture at the end of the next Draw.
type screenshotQueue struct {
	dir    string
	labels []string
}

func (q *screenshotQueue) add(label string) {
	q.labels = append(q.labels, label)
}

// flush captures the rendered frame for every queued label and writes each
// as a PNG file.
func (q *screenshotQueue) flush(screen *ebiten.Image) {
	if len(q.labels) == 0 {
		return
	}
	defer func() { q.labels = q.labels[:0] }()

	if err := os.MkdirAll(q.dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[yuletide] screenshot: mkdir %s: %v\n", q.dir, err)
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := &image.NRGBA{Pix: unpremultiply(pixels), Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}

	stamp := time.Now().Format("20060102_150405")
	for _, label := range q.labels {
		path := fmt.Sprintf("%s/%s_%s.png", q.dir, stamp, sanitizeLabel(label))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[yuletide] screenshot: %v\n", err)
		}
	}
}

// unpremultiply converts premultiplied RGBA bytes to straight alpha in place.
func unpremultiply(pixels []byte) []byte {
	for i := 0; i+3 < len(pixels); i += 4 {
		a := int(pixels[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for k := 0; k < 3; k++ {
			pixels[i+k] = uint8(min(int(pixels[i+k])*255/a, 255))
		}
	}
	return pixels
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replaces everything
// else with '_', and falls back to "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
