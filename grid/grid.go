package grid

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/quirelab/quire/text"
)

// BuilderConfig holds configuration for table grid building.
type BuilderConfig struct {
	// ColumnThreshold is the maximum left-edge distance, in pixels,
	// for a line to join an existing column cluster.
	ColumnThreshold float64

	// ColumnWeight is the moving-average weight applied when a line
	// joins a column cluster.
	ColumnWeight float64
}

// DefaultBuilderConfig returns the default configuration.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		ColumnThreshold: 45,
		ColumnWeight:    0.2,
	}
}

// Builder reconstructs a table grid from positioned lines.
type Builder struct {
	config BuilderConfig
}

// NewBuilder creates a builder with default configuration.
func NewBuilder() *Builder {
	return &Builder{config: DefaultBuilderConfig()}
}

// NewBuilderWithConfig creates a builder with custom configuration.
func NewBuilderWithConfig(config BuilderConfig) *Builder {
	return &Builder{config: config}
}

// cellDelimiter splits a row's text into cells: a run of vertical bar
// glyphs, a run of two or more underscores, or a lone underscore
// between spaces.
var cellDelimiter = regexp.MustCompile(`[|│┃]+|_{2,}|\s_\s`)

// hasDelimiter reports whether the text carries an explicit column
// delimiter.
var hasDelimiter = regexp.MustCompile(`[|│┃]|__|\s_\s`)

// Build groups the lines into rows and splits each row into cells.
// When any line's text carries explicit delimiters the cells come from
// splitting the text on them; otherwise columns are inferred from the
// line left edges. Every produced row has at least one cell. The input
// is not modified and equal inputs yield identical grids regardless of
// their in-memory order.
func (b *Builder) Build(lines []text.Line, pageWidth int) [][]string {
	rows := groupRows(lines, pageWidth)
	if delimited(lines) {
		return b.delimiterGrid(rows)
	}
	return b.geometricGrid(rows)
}

func delimited(lines []text.Line) bool {
	for _, l := range lines {
		if hasDelimiter.MatchString(l.Text) {
			return true
		}
	}
	return false
}

// delimiterGrid splits each row's member texts on the delimiter
// pattern. Members that are nothing but delimiter glyphs are dropped;
// a row left with no cells is dropped with them.
func (b *Builder) delimiterGrid(rows [][]text.Line) [][]string {
	var out [][]string
	for _, r := range rows {
		var cells []string
		for _, l := range r {
			if pureDelimiter(l.Text) {
				continue
			}
			for _, part := range cellDelimiter.Split(l.Text, -1) {
				if part = strings.TrimSpace(part); part != "" {
					cells = append(cells, part)
				}
			}
		}
		if len(cells) > 0 {
			out = append(out, cells)
		}
	}
	return out
}

// pureDelimiter reports whether trimmed text consists entirely of
// delimiter glyphs.
func pureDelimiter(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	return strings.TrimSpace(cellDelimiter.ReplaceAllString(s, "")) == ""
}

// geometricGrid infers columns by clustering line left edges across
// the whole table, then places each row member into the column whose
// centroid is nearest. Several members landing in the same cell are
// joined with a space, left to right.
func (b *Builder) geometricGrid(rows [][]text.Line) [][]string {
	centroids := b.columnCentroids(rows)

	var out [][]string
	for _, r := range rows {
		cells := make([]string, len(centroids))
		for _, l := range r {
			c := nearestCentroid(centroids, leftEdge(l))
			if cells[c] == "" {
				cells[c] = l.Text
			} else {
				cells[c] += " " + l.Text
			}
		}
		out = append(out, cells)
	}
	return out
}

// columnCentroids clusters all row members by left edge and returns
// the mean left edge of each cluster, sorted ascending.
func (b *Builder) columnCentroids(rows [][]text.Line) []float64 {
	type column struct {
		mean  float64
		sum   float64
		count int
	}
	var columns []*column

	for _, r := range rows {
		for _, l := range r {
			if l.Box == nil {
				continue
			}
			x := leftEdge(l)
			var best *column
			bestDist := b.config.ColumnThreshold
			for _, c := range columns {
				if d := math.Abs(x - c.mean); d <= bestDist {
					best = c
					bestDist = d
				}
			}
			if best == nil {
				columns = append(columns, &column{mean: x, sum: x, count: 1})
				continue
			}
			best.mean += b.config.ColumnWeight * (x - best.mean)
			best.sum += x
			best.count++
		}
	}

	centroids := make([]float64, 0, len(columns))
	for _, c := range columns {
		centroids = append(centroids, c.sum/float64(c.count))
	}
	sort.Float64s(centroids)
	if len(centroids) == 0 {
		centroids = []float64{0}
	}
	return centroids
}

func nearestCentroid(centroids []float64, x float64) int {
	best := 0
	bestDist := math.Abs(x - centroids[0])
	for i := 1; i < len(centroids); i++ {
		if d := math.Abs(x - centroids[i]); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// leftEdge is the column key of a line: its left edge when it has a
// box, zero otherwise.
func leftEdge(l text.Line) float64 {
	if l.Box == nil {
		return 0
	}
	return float64(l.Box.X0)
}
