package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/quirelab/quire/geom"
	"github.com/quirelab/quire/text"
)

// Policy constants of the ordering heuristic. These are empirically
// tuned against scanned register and newspaper pages; the ordering
// behavior is defined relative to these exact values.
const (
	// Body statistics.
	minBodyCandidates  = 8    // below this the page is too sparse for column analysis
	bodyWidthRatio     = 0.82 // lines at least this wide are full-width banners, not body
	minLineHeightFloor = 10.0
	minLineHeightRatio = 0.6 // of the median line height

	// Header/footer split.
	headerPercentile = 0.08
	footerPercentile = 0.92
	bandMarginFloor  = 10.0
	bandMarginRatio  = 0.8 // of the median line height

	// Explicit vertical separators.
	separatorWidthRatio  = 0.05
	separatorHeightRatio = 1.8 // of the median line height
	separatorDedupFloor  = 10.0
	separatorDedupRatio  = 0.02
	gutterFloor          = 18.0
	gutterRatio          = 0.01

	// Left-edge clustering.
	clusterUpdateWeight = 0.15
	clusterJoinFloor    = 55.0
	clusterJoinRatio    = 0.07
	spanLowPercentile   = 0.20
	spanHighPercentile  = 0.80
	spanOverlapRatio    = 0.55
	nestDistanceFloor   = 80.0
	nestDistanceRatio   = 0.12
	minClusterFloor     = 10.0
	minClusterRatio     = 0.12
	foldDistanceFloor   = 30.0
	foldDistanceRatio   = 0.05
	dominanceRatio      = 0.70

	// Heading promotion.
	headingWidthRatio  = 0.85
	headingCenterRatio = 0.18
	headingMarginFloor = 10.0
	headingMarginRatio = 0.9 // of the median line height
)

// separatorRunes are the glyph classes a recognizer emits for a drawn
// vertical column rule.
const separatorRunes = "|│┃"

// SequencerConfig holds configuration for reading order detection.
type SequencerConfig struct {
	// Mode is the reading direction on both axes.
	Mode ReadingMode
}

// DefaultSequencerConfig returns the default configuration:
// top-to-bottom, left-to-right.
func DefaultSequencerConfig() SequencerConfig {
	return SequencerConfig{}
}

// Sequencer derives the reading order of a page's recognized lines.
type Sequencer struct {
	config SequencerConfig
}

// NewSequencer creates a sequencer with default configuration.
func NewSequencer() *Sequencer {
	return &Sequencer{config: DefaultSequencerConfig()}
}

// NewSequencerWithConfig creates a sequencer with custom configuration.
func NewSequencerWithConfig(config SequencerConfig) *Sequencer {
	return &Sequencer{config: config}
}

// seqLine couples a line with its canonical and deskewed boxes for the
// duration of one Sequence call.
type seqLine struct {
	line text.Line
	d    geom.Box // deskewed; all ordering decisions use this box
}

// Sequence returns the lines of one page in reading order. Lines
// without a usable box are appended at the end in input order; no line
// is ever dropped. The result is a new slice, the input is not
// modified, and the ordering depends only on the set of line values,
// not on their input order. Indexes are preserved; callers that need a
// fresh 0..n-1 numbering apply [text.Reindex] after any post-passes.
func (s *Sequencer) Sequence(lines []text.Line, page geom.Page) []text.Line {
	boxed, boxless := partition(lines)
	if len(boxed) == 0 {
		return append([]text.Line(nil), boxless...)
	}

	skew := estimatePageSkew(lines)
	items := make([]seqLine, 0, len(boxed))
	for _, l := range boxed {
		items = append(items, seqLine{
			line: l,
			d:    geom.Deskew(*l.Box, page, skew),
		})
	}

	// Canonical processing order: makes clustering independent of the
	// caller's in-memory ordering.
	s.sortAdjusted(items)

	pageW := float64(page.Width)
	medianH := medianHeight(items)
	if medianH <= 0 {
		return s.assemble(nil, items, nil, nil, boxless)
	}
	minH := math.Max(minLineHeightFloor, minLineHeightRatio*medianH)

	candidates := filterBody(items, minH, pageW)
	if len(candidates) == 0 {
		return s.assemble(nil, items, nil, nil, boxless)
	}

	header, footer, mid := s.splitBands(items, candidates, medianH)

	separators, boundaries := findSeparators(mid, pageW, medianH)
	if len(boundaries) > 0 {
		body := exclude(mid, separators)
		columns := s.assignByBoundaries(body, boundaries, pageW)
		return s.assemble(header, nil, columns, append(separators, footer...), boxless)
	}

	// No explicit rule on the page: too few body lines means geometry
	// statistics are unreliable, fall back to a global sort.
	if len(candidates) < minBodyCandidates {
		return s.assemble(nil, items, nil, nil, boxless)
	}

	columns, promoted := s.clusterColumns(mid, minH, medianH, pageW)
	if columns == nil {
		// No stable cluster structure found.
		return s.assemble(header, mid, nil, footer, boxless)
	}
	header = append(header, promoted...)
	if len(columns) == 1 {
		return s.assemble(header, columns[0], nil, footer, boxless)
	}
	return s.assemble(header, nil, columns, footer, boxless)
}

// Order is a convenience wrapper returning just the ordered indexes of
// the input lines.
func (s *Sequencer) Order(lines []text.Line, page geom.Page) []int {
	ordered := s.Sequence(lines, page)
	out := make([]int, len(ordered))
	for i, l := range ordered {
		out[i] = l.Index
	}
	return out
}

// partition splits lines into those with and without a canonical box.
func partition(lines []text.Line) (boxed, boxless []text.Line) {
	for _, l := range lines {
		if l.Box != nil {
			boxed = append(boxed, l)
		} else {
			boxless = append(boxless, l)
		}
	}
	return boxed, boxless
}

func estimatePageSkew(lines []text.Line) float64 {
	gs := make([]geom.Geometry, 0, len(lines))
	for _, l := range lines {
		gs = append(gs, l.Geometry)
	}
	return geom.EstimateSkew(gs)
}

// medianHeight returns the median deskewed line height.
func medianHeight(items []seqLine) float64 {
	if len(items) == 0 {
		return 0
	}
	heights := make([]float64, 0, len(items))
	for _, it := range items {
		heights = append(heights, float64(it.d.Height()))
	}
	sort.Float64s(heights)
	mid := len(heights) / 2
	if len(heights)%2 == 0 {
		return (heights[mid-1] + heights[mid]) / 2
	}
	return heights[mid]
}

// filterBody returns the body candidates: tall enough to be a text
// line, narrower than a full-width banner.
func filterBody(items []seqLine, minH, pageW float64) []seqLine {
	var out []seqLine
	for _, it := range items {
		if float64(it.d.Height()) >= minH && float64(it.d.Width()) < bodyWidthRatio*pageW {
			out = append(out, it)
		}
	}
	return out
}

// splitBands classifies every line into header, midband or footer
// based on the vertical extent of the body candidates. The percentile
// edges plus a protective margin keep stray tall lines from dragging
// body text into the header or footer.
func (s *Sequencer) splitBands(items, candidates []seqLine, medianH float64) (header, footer, mid []seqLine) {
	tops := make([]float64, 0, len(candidates))
	bottoms := make([]float64, 0, len(candidates))
	for _, c := range candidates {
		tops = append(tops, float64(c.d.Y0))
		bottoms = append(bottoms, float64(c.d.Y1))
	}
	sort.Float64s(tops)
	sort.Float64s(bottoms)

	top := percentile(tops, headerPercentile)
	bot := percentile(bottoms, footerPercentile)
	margin := math.Max(bandMarginFloor, bandMarginRatio*medianH)

	for _, it := range items {
		switch {
		case float64(it.d.Y1) < top-margin:
			header = append(header, it)
		case float64(it.d.Y0) > bot+margin:
			footer = append(footer, it)
		default:
			mid = append(mid, it)
		}
	}
	return header, footer, mid
}

// isSeparatorText reports whether the text is drawn entirely from the
// vertical rule glyph class.
func isSeparatorText(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(separatorRunes, r) {
			return false
		}
	}
	return true
}

// findSeparators detects explicit vertical column rules in the midband
// and reduces them to deduplicated column boundary x positions.
func findSeparators(mid []seqLine, pageW, medianH float64) (separators []seqLine, boundaries []float64) {
	var centers []float64
	for _, it := range mid {
		if !isSeparatorText(it.line.Text) {
			continue
		}
		if float64(it.d.Width()) > separatorWidthRatio*pageW {
			continue
		}
		if float64(it.d.Height()) < separatorHeightRatio*medianH {
			continue
		}
		separators = append(separators, it)
		centers = append(centers, it.d.CenterX())
	}
	if len(centers) == 0 {
		return nil, nil
	}

	sort.Float64s(centers)
	dedup := math.Max(separatorDedupFloor, separatorDedupRatio*pageW)
	for _, c := range centers {
		if len(boundaries) > 0 && c-boundaries[len(boundaries)-1] < dedup {
			continue
		}
		boundaries = append(boundaries, c)
	}
	return separators, boundaries
}

// assignByBoundaries distributes the midband lines into the columns
// delimited by the separator x positions. A gutter around each
// boundary protects against misassigning lines that end or begin right
// at the rule; lines straddling the gutter go by which side their
// center falls on. Full-width lines default to the first column.
func (s *Sequencer) assignByBoundaries(body []seqLine, boundaries []float64, pageW float64) [][]seqLine {
	gutter := math.Max(gutterFloor, gutterRatio*pageW)
	columns := make([][]seqLine, len(boundaries)+1)

	for _, it := range body {
		if float64(it.d.Width()) >= bodyWidthRatio*pageW {
			columns[0] = append(columns[0], it)
			continue
		}
		col := columnAt(it, boundaries, gutter)
		columns[col] = append(columns[col], it)
	}
	return columns
}

// columnAt resolves which side of its nearest boundary a line falls
// on and returns the resulting column index.
func columnAt(it seqLine, boundaries []float64, gutter float64) int {
	cx := it.d.CenterX()

	nearest := 0
	best := math.Abs(cx - boundaries[0])
	for i := 1; i < len(boundaries); i++ {
		if d := math.Abs(cx - boundaries[i]); d < best {
			best = d
			nearest = i
		}
	}

	b := boundaries[nearest]
	right := false
	switch {
	case float64(it.d.X1) <= b-gutter:
		right = false
	case float64(it.d.X0) >= b+gutter:
		right = true
	default:
		right = cx >= b
	}

	if right {
		return nearest + 1
	}
	return nearest
}

// assemble produces the final ordering: header, then either a single
// flat band or the columns in reading direction, then the trailing
// lines (detected separators and/or footer), then the boxless lines in
// input order. Original boxes and indexes are preserved.
func (s *Sequencer) assemble(header, flat []seqLine, columns [][]seqLine, trailer []seqLine, boxless []text.Line) []text.Line {
	var out []text.Line

	s.sortAdjusted(header)
	out = appendLines(out, header)

	if columns != nil {
		ordered := make([][]seqLine, len(columns))
		copy(ordered, columns)
		if s.config.Mode.Horizontal == RightToLeft {
			for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
				ordered[i], ordered[j] = ordered[j], ordered[i]
			}
		}
		for _, col := range ordered {
			s.sortAdjusted(col)
			out = appendLines(out, col)
		}
	} else {
		s.sortAdjusted(flat)
		out = appendLines(out, flat)
	}

	s.sortAdjusted(trailer)
	out = appendLines(out, trailer)

	return append(out, boxless...)
}

func appendLines(out []text.Line, items []seqLine) []text.Line {
	for _, it := range items {
		out = append(out, it.line)
	}
	return out
}

// sortAdjusted sorts lines by deskewed (y center, x center), with each
// axis reversed according to the reading mode. Text breaks remaining
// ties so the result is stable across input permutations.
func (s *Sequencer) sortAdjusted(items []seqLine) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		ay, by := a.d.CenterY(), b.d.CenterY()
		if ay != by {
			if s.config.Mode.Vertical == BottomToTop {
				return ay > by
			}
			return ay < by
		}
		ax, bx := a.d.CenterX(), b.d.CenterX()
		if ax != bx {
			if s.config.Mode.Horizontal == RightToLeft {
				return ax > bx
			}
			return ax < bx
		}
		return a.line.Text < b.line.Text
	})
}

// exclude returns the items of all that are not in drop (by line
// index).
func exclude(all, drop []seqLine) []seqLine {
	if len(drop) == 0 {
		return all
	}
	dropped := make(map[int]bool, len(drop))
	for _, d := range drop {
		dropped[d.line.Index] = true
	}
	var out []seqLine
	for _, it := range all {
		if !dropped[it.line.Index] {
			out = append(out, it)
		}
	}
	return out
}

// percentile returns the value at the given rank of a sorted slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
