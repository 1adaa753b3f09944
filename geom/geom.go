// Package geom provides the geometric primitives for page layout
// reconstruction: canonical line boxes, the shape descriptors produced
// by recognizers, and page skew estimation.
//
// Recognizers describe line geometry in several ways (explicit boxes,
// region polygons, baseline polylines). This package resolves whatever
// is available into a single axis-aligned [Box] used for every layout
// decision downstream.
package geom

// Padding applied when deriving a box from recognizer shapes. Polygons
// outline the glyph region and get a small uniform margin; baselines
// carry no line height information, so they receive a generous
// vertical allowance.
const (
	PolygonPad   = 2
	BaselinePadX = 2
	BaselinePadY = 14
)

// Point is a coordinate in page pixel space.
type Point struct {
	X float64
	Y float64
}

// Box is an axis-aligned rectangle in page pixel coordinates.
// A valid box satisfies X1 > X0 and Y1 > Y0.
type Box struct {
	X0 int // Left
	Y0 int // Top
	X1 int // Right
	Y1 int // Bottom
}

// Width returns the width of the box.
func (b Box) Width() int {
	return b.X1 - b.X0
}

// Height returns the height of the box.
func (b Box) Height() int {
	return b.Y1 - b.Y0
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 {
	return float64(b.X0+b.X1) / 2
}

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 {
	return float64(b.Y0+b.Y1) / 2
}

// Valid reports whether the box has positive extent on both axes.
func (b Box) Valid() bool {
	return b.X1 > b.X0 && b.Y1 > b.Y0
}

// Clamp restricts the box to the page bounds. The second return value
// is false if nothing of the box remains inside the page.
func (b Box) Clamp(page Page) (Box, bool) {
	c := Box{
		X0: clampInt(b.X0, 0, page.Width-1),
		Y0: clampInt(b.Y0, 0, page.Height-1),
		X1: clampInt(b.X1, 0, page.Width),
		Y1: clampInt(b.Y1, 0, page.Height),
	}
	if !c.Valid() {
		return Box{}, false
	}
	return c, true
}

// Page holds the pixel dimensions of a page image. All percentage
// -relative layout thresholds are computed against these.
type Page struct {
	Width  int
	Height int
}

// Geometry carries the shape descriptors a recognizer reported for one
// text line. More than one descriptor may be present; Resolve applies
// a fixed priority order: explicit box, then polygon, then baseline.
type Geometry struct {
	// Box is an explicit detector bounding box.
	Box *Box

	// Polygon is a point sequence outlining the detected region.
	Polygon []Point

	// Baseline is the polyline approximating the writing direction.
	Baseline []Point
}

// Resolve derives the canonical box from the highest-priority usable
// descriptor. A degenerate descriptor is skipped and the next source
// tried; only when every source fails does Resolve return ok=false,
// and the line is then excluded from layout decisions (but not from
// output).
func (g Geometry) Resolve() (Box, bool) {
	if g.Box != nil && g.Box.Valid() {
		return *g.Box, true
	}

	if b, ok := boundsOf(g.Polygon, PolygonPad, PolygonPad); ok {
		return b, true
	}

	if b, ok := boundsOf(g.Baseline, BaselinePadX, BaselinePadY); ok {
		return b, true
	}

	return Box{}, false
}

// boundsOf returns the padded bounding rectangle of a point set.
func boundsOf(points []Point, padX, padY int) (Box, bool) {
	if len(points) == 0 {
		return Box{}, false
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	b := Box{
		X0: int(minX) - padX,
		Y0: int(minY) - padY,
		X1: int(maxX) + padX,
		Y1: int(maxY) + padY,
	}
	if !b.Valid() {
		return Box{}, false
	}
	return b, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
