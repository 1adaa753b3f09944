package layout

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/quirelab/quire/geom"
	"github.com/quirelab/quire/text"
)

// Wide-line splitting policy. A recognizer occasionally fuses the last
// line of one column with the first line of the next into a single
// page-wide line; splitting recovers the two halves. Centered banner
// headings near the top of the page are exempt.
const (
	splitWidthRatio   = 0.80
	exemptWidthRatio  = 0.72
	exemptCenterRatio = 0.20
	exemptTopRatio    = 0.45
	exemptMaxChars    = 90
)

// columnGap matches the run of whitespace a recognizer leaves where
// the gutter between two columns crossed a fused line.
var columnGap = regexp.MustCompile(`\s{4,}`)

// SplitWideLines replaces every page-wide fused line with its two
// column halves and renumbers the result 0..n-1. A line is split at
// the first wide whitespace run in its text, and only when both halves
// are non-empty; anything else passes through unchanged. The half
// order follows the horizontal reading direction.
func SplitWideLines(lines []text.Line, page geom.Page, horizontal HorizontalOrder) []text.Line {
	out := make([]text.Line, 0, len(lines))
	for _, l := range lines {
		first, second, ok := splitLine(l, page)
		if !ok {
			out = append(out, l)
			continue
		}
		if horizontal == RightToLeft {
			first, second = second, first
		}
		out = append(out, first, second)
	}
	return text.Reindex(out)
}

func splitLine(l text.Line, page geom.Page) (first, second text.Line, ok bool) {
	if l.Box == nil {
		return text.Line{}, text.Line{}, false
	}
	pageW := float64(page.Width)
	w := float64(l.Box.Width())
	if w <= splitWidthRatio*pageW {
		return text.Line{}, text.Line{}, false
	}
	if isBannerHeading(l, page) {
		return text.Line{}, text.Line{}, false
	}

	head, tail, ok := splitOnGap(l.Text)
	if !ok {
		return text.Line{}, text.Line{}, false
	}

	mid := page.Width / 2
	left := geom.Box{X0: 0, Y0: l.Box.Y0, X1: mid, Y1: l.Box.Y1}
	right := geom.Box{X0: mid, Y0: l.Box.Y0, X1: page.Width, Y1: l.Box.Y1}
	first = text.New(l.Index, head, geom.Geometry{Box: &left})
	second = text.New(l.Index, tail, geom.Geometry{Box: &right})
	return first, second, true
}

// isBannerHeading reports whether a wide line looks like a centered
// title near the top of the page rather than two fused column lines.
func isBannerHeading(l text.Line, page geom.Page) bool {
	pageW := float64(page.Width)
	pageH := float64(page.Height)
	return float64(l.Box.Width()) >= exemptWidthRatio*pageW &&
		math.Abs(l.Box.CenterX()-pageW/2) <= exemptCenterRatio*pageW &&
		float64(l.Box.Y0) < exemptTopRatio*pageH &&
		utf8.RuneCountInString(l.Text) <= exemptMaxChars
}

// splitOnGap divides text at the first wide whitespace run. Both
// trimmed halves must be non-empty; later gaps stay inside the second
// half.
func splitOnGap(s string) (string, string, bool) {
	loc := columnGap.FindStringIndex(s)
	if loc == nil {
		return "", "", false
	}
	head := strings.TrimSpace(s[:loc[0]])
	tail := strings.TrimSpace(s[loc[1]:])
	if head == "" || tail == "" {
		return "", "", false
	}
	return head, tail, true
}
