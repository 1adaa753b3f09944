package geom

import (
	"math"
	"sort"
)

// Skew estimation limits. Near-vertical baselines give unreliable
// angles, and anything approaching 20 degrees is a misdetection
// (single glyphs, vertical text) rather than page rotation.
const (
	skewMinRun   = 1.0
	skewMaxAngle = 20 * math.Pi / 180
)

// EstimateSkew estimates the page rotation in radians from baseline
// directions. For every geometry with a baseline of at least two
// points, it takes the angle of the first-to-last vector; angles from
// near-vertical runs or beyond the cutoff are discarded. The result is
// the median of the surviving angles, or 0 when none qualify. The
// median keeps a minority of misdetected baselines from steering the
// estimate.
func EstimateSkew(geometries []Geometry) float64 {
	var angles []float64

	for _, g := range geometries {
		if len(g.Baseline) < 2 {
			continue
		}
		first := g.Baseline[0]
		last := g.Baseline[len(g.Baseline)-1]

		dx := last.X - first.X
		dy := last.Y - first.Y
		if math.Abs(dx) <= skewMinRun {
			continue
		}

		angle := math.Atan2(dy, dx)
		if math.Abs(angle) >= skewMaxAngle {
			continue
		}
		angles = append(angles, angle)
	}

	if len(angles) == 0 {
		return 0
	}

	sort.Float64s(angles)
	mid := len(angles) / 2
	if len(angles)%2 == 0 {
		return (angles[mid-1] + angles[mid]) / 2
	}
	return angles[mid]
}

// Deskew rotates the box's corners about the page center by the
// negative of the given skew angle and returns the enclosing box.
// Deskewed boxes are used only for layout comparisons; reported output
// always carries the original box.
func Deskew(b Box, page Page, skew float64) Box {
	if skew == 0 {
		return b
	}

	cx := float64(page.Width) / 2
	cy := float64(page.Height) / 2
	sin := math.Sin(-skew)
	cos := math.Cos(-skew)

	corners := [4]Point{
		{X: float64(b.X0), Y: float64(b.Y0)},
		{X: float64(b.X1), Y: float64(b.Y0)},
		{X: float64(b.X0), Y: float64(b.Y1)},
		{X: float64(b.X1), Y: float64(b.Y1)},
	}

	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, c := range corners {
		x := cx + (c.X-cx)*cos - (c.Y-cy)*sin
		y := cy + (c.X-cx)*sin + (c.Y-cy)*cos
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	return Box{
		X0: int(math.Round(minX)),
		Y0: int(math.Round(minY)),
		X1: int(math.Round(maxX)),
		Y1: int(math.Round(maxY)),
	}
}
