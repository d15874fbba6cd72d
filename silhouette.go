package yuletide

// RadiusAt returns the tree's silhouette radius at vertical position y for a
// cone of the given height centered on the origin. The radius falls linearly
// from maxRadius at the base (y = -height/2) to zero at the apex and is
// clamped to zero above the apex. A non-positive height collapses the whole
// silhouette to the axis.
func RadiusAt(y, height, maxRadius float64) float64 {
	if height <= 0 {
		return 0
	}
	yBase := y + height/2
	normalizedY := yBase / height
	r := finite((1 - normalizedY) * maxRadius)
	if r < 0 {
		return 0
	}
	return r
}

// Silhouette is the implicit cone every placement routine samples against.
type Silhouette struct {
	Height    float64
	MaxRadius float64
}

// Radius returns the silhouette radius at y. See RadiusAt.
func (s Silhouette) Radius(y float64) float64 {
	return RadiusAt(y, s.Height, s.MaxRadius)
}

// YAt maps a normalized distance from the apex (0 = top, 1 = base) to a
// world-space height.
func (s Silhouette) YAt(yNorm float64) float64 {
	return (1-yNorm)*s.Height - s.Height/2
}

// HeightFraction returns how far up the tree y lies, 0 at the base and 1 at
// the apex. Zero height yields 0.
func (s Silhouette) HeightFraction(y float64) float64 {
	if s.Height <= 0 {
		return 0
	}
	return finite((y + s.Height/2) / s.Height)
}

// Top returns the apex height.
func (s Silhouette) Top() float64 {
	return s.Height / 2
}
