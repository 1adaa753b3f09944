package grid

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/quirelab/quire/text"
)

// Row grouping policy.
const (
	ruleWidthRatio    = 0.55 // a horizontal rule spans most of the page
	ruleHeightRatio   = 0.7  // of the median line height
	rowThresholdFloor = 10.0
	rowThresholdRatio = 0.45 // of the median line height
	rowUpdateWeight   = 0.15
)

// horizontalRule matches the text of a drawn horizontal separator:
// a run of dash, underscore or box-drawing glyphs.
var horizontalRule = regexp.MustCompile(`^[-_–—―─━═]{3,}$`)

// row accumulates lines sharing a vertical center within one band.
type row struct {
	mean    float64
	members []text.Line
}

// groupRows groups boxed lines into table rows. Detected horizontal
// rules split the page into bands; rows never span a band boundary,
// and the rules themselves are dropped. Boxless lines cannot be placed
// and trail the result as single-member rows in input order.
func groupRows(lines []text.Line, pageWidth int) [][]text.Line {
	var boxed, boxless []text.Line
	for _, l := range lines {
		if l.Box != nil {
			boxed = append(boxed, l)
		} else {
			boxless = append(boxless, l)
		}
	}

	// Canonical order makes the grouping independent of input order.
	sort.SliceStable(boxed, func(i, j int) bool {
		a, b := boxed[i], boxed[j]
		if ay, by := a.Box.CenterY(), b.Box.CenterY(); ay != by {
			return ay < by
		}
		if ax, bx := a.Box.CenterX(), b.Box.CenterX(); ax != bx {
			return ax < bx
		}
		return a.Text < b.Text
	})

	medianH := medianBoxHeight(boxed)
	boundaries, body := splitOnRules(boxed, medianH, pageWidth)
	threshold := math.Max(rowThresholdFloor, rowThresholdRatio*medianH)

	// Rows are kept per band so tolerance can never merge across a
	// drawn rule.
	bands := make(map[int][]*row)
	var order []*row
	for _, l := range body {
		cy := l.Box.CenterY()
		b := bandIndex(boundaries, cy)

		var target *row
		best := threshold
		for _, r := range bands[b] {
			if d := math.Abs(cy - r.mean); d <= best {
				target = r
				best = d
			}
		}
		if target == nil {
			target = &row{mean: cy}
			bands[b] = append(bands[b], target)
			order = append(order, target)
		}
		target.members = append(target.members, l)
		target.mean += rowUpdateWeight * (cy - target.mean)
	}

	out := make([][]text.Line, 0, len(order)+len(boxless))
	for _, r := range order {
		sort.SliceStable(r.members, func(i, j int) bool {
			return r.members[i].Box.X0 < r.members[j].Box.X0
		})
		out = append(out, r.members)
	}
	for _, l := range boxless {
		out = append(out, []text.Line{l})
	}
	return out
}

// splitOnRules detects horizontal separator lines and returns their
// sorted center positions plus the remaining lines.
func splitOnRules(lines []text.Line, medianH float64, pageWidth int) (boundaries []float64, body []text.Line) {
	minW := ruleWidthRatio * float64(pageWidth)
	maxH := ruleHeightRatio * medianH
	for _, l := range lines {
		trimmed := strings.TrimSpace(l.Text)
		if horizontalRule.MatchString(trimmed) &&
			float64(l.Box.Width()) >= minW &&
			float64(l.Box.Height()) <= maxH {
			boundaries = append(boundaries, l.Box.CenterY())
			continue
		}
		body = append(body, l)
	}
	sort.Float64s(boundaries)
	return boundaries, body
}

// bandIndex counts the boundaries strictly above the given center.
func bandIndex(boundaries []float64, cy float64) int {
	n := 0
	for _, b := range boundaries {
		if b < cy {
			n++
		}
	}
	return n
}

func medianBoxHeight(lines []text.Line) float64 {
	if len(lines) == 0 {
		return 0
	}
	heights := make([]float64, 0, len(lines))
	for _, l := range lines {
		heights = append(heights, float64(l.Box.Height()))
	}
	sort.Float64s(heights)
	mid := len(heights) / 2
	if len(heights)%2 == 0 {
		return (heights[mid-1] + heights[mid]) / 2
	}
	return heights[mid]
}
