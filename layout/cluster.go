package layout

import (
	"math"
	"sort"
)

// cluster accumulates body lines that share a left edge. mean is an
// exponential moving average of member left edges while the cluster is
// being grown, and an arithmetic mean after merging.
type cluster struct {
	mean    float64
	members []seqLine
}

func (c *cluster) size() int { return len(c.members) }

// span returns the trimmed horizontal extent of the cluster: the 20th
// percentile of left edges to the 80th percentile of right edges.
// Trimming keeps a single overhanging line from bridging two columns.
func (c *cluster) span() (lo, hi float64) {
	lefts := make([]float64, 0, len(c.members))
	rights := make([]float64, 0, len(c.members))
	for _, m := range c.members {
		lefts = append(lefts, float64(m.d.X0))
		rights = append(rights, float64(m.d.X1))
	}
	sort.Float64s(lefts)
	sort.Float64s(rights)
	return percentile(lefts, spanLowPercentile), percentile(rights, spanHighPercentile)
}

func (c *cluster) top() float64 {
	top := math.Inf(1)
	for _, m := range c.members {
		if y := float64(m.d.Y0); y < top {
			top = y
		}
	}
	return top
}

func (c *cluster) recomputeMean() {
	sum := 0.0
	for _, m := range c.members {
		sum += float64(m.d.X0)
	}
	c.mean = sum / float64(len(c.members))
}

// clusterColumns runs the left-edge clustering pipeline over the
// midband and returns the resulting columns in left-to-right order,
// plus any heading lines promoted out of the midband. A nil columns
// result means no structure was found and the caller should fall back
// to a flat ordering.
func (s *Sequencer) clusterColumns(mid []seqLine, minH, medianH, pageW float64) (columns [][]seqLine, promoted []seqLine) {
	clusters := s.buildClusters(mid, minH, pageW)
	if clusters == nil {
		return nil, nil
	}
	if len(clusters) == 1 {
		return [][]seqLine{mid}, nil
	}

	// Centered lines sitting clearly above the column bodies are
	// headings spanning the columns, not members of any of them.
	body := filterBody(mid, minH, pageW)
	minSize := int(math.Max(minClusterFloor, minClusterRatio*float64(len(body))))
	promoted, rest := promoteHeadings(mid, clusters, minSize, medianH, pageW)
	if len(promoted) > 0 {
		mid = rest
		clusters = s.buildClusters(mid, minH, pageW)
		if clusters == nil {
			return nil, promoted
		}
		if len(clusters) == 1 {
			return [][]seqLine{mid}, promoted
		}
	}

	sort.Slice(clusters, func(i, j int) bool { return clusters[i].mean < clusters[j].mean })
	return assignToClusters(mid, clusters, pageW), promoted
}

// buildClusters produces the merged, folded left-edge clusters of the
// midband body lines, or nil when a single column dominates.
func (s *Sequencer) buildClusters(mid []seqLine, minH, pageW float64) []*cluster {
	body := filterBody(mid, minH, pageW)
	if len(body) == 0 {
		return nil
	}

	clusters := clusterByLeft(body, pageW)
	clusters = mergeToFixpoint(clusters, pageW)
	clusters = foldMinorities(clusters, len(body), pageW)

	total := 0
	largest := 0
	for _, c := range clusters {
		total += c.size()
		if c.size() > largest {
			largest = c.size()
		}
	}
	if float64(largest) >= dominanceRatio*float64(total) {
		return nil
	}
	return clusters
}

// clusterByLeft groups body lines by left edge. Lines are visited in
// the caller's canonical order; each joins the nearest cluster within
// the join threshold, nudging its mean, or starts a new one.
func clusterByLeft(body []seqLine, pageW float64) []*cluster {
	threshold := math.Max(clusterJoinFloor, clusterJoinRatio*pageW)
	var clusters []*cluster

	for _, it := range body {
		x := float64(it.d.X0)
		var best *cluster
		bestDist := threshold
		for _, c := range clusters {
			if d := math.Abs(x - c.mean); d <= bestDist {
				best = c
				bestDist = d
			}
		}
		if best == nil {
			clusters = append(clusters, &cluster{mean: x, members: []seqLine{it}})
			continue
		}
		best.members = append(best.members, it)
		best.mean += clusterUpdateWeight * (x - best.mean)
	}
	return clusters
}

// mergeToFixpoint repeatedly merges cluster pairs until no pair
// qualifies. Each pass builds a fresh slice so partially merged state
// never leaks into later comparisons of the same pass.
func mergeToFixpoint(clusters []*cluster, pageW float64) []*cluster {
	for {
		merged := false
		var next []*cluster
	outer:
		for i, a := range clusters {
			if a == nil {
				continue
			}
			for j := i + 1; j < len(clusters); j++ {
				b := clusters[j]
				if b == nil {
					continue
				}
				if shouldMerge(a, b, pageW) {
					m := &cluster{members: append(append([]seqLine(nil), a.members...), b.members...)}
					m.recomputeMean()
					next = append(next, m)
					clusters[j] = nil
					merged = true
					continue outer
				}
			}
			next = append(next, a)
		}
		clusters = next
		if !merged {
			return clusters
		}
	}
}

// shouldMerge reports whether two clusters describe the same column:
// either their trimmed spans overlap by most of the narrower span, or
// their means are close and one span nests inside the other, which is
// what an indented list inside a column looks like.
func shouldMerge(a, b *cluster, pageW float64) bool {
	aLo, aHi := a.span()
	bLo, bHi := b.span()
	aW := aHi - aLo
	bW := bHi - bLo

	overlap := math.Min(aHi, bHi) - math.Max(aLo, bLo)
	narrower := math.Min(aW, bW)
	if overlap > 0 && narrower > 0 && overlap >= spanOverlapRatio*narrower {
		return true
	}

	nested := (aLo >= bLo && aHi <= bHi) || (bLo >= aLo && bHi <= aHi)
	if nested && math.Abs(a.mean-b.mean) <= math.Max(nestDistanceFloor, nestDistanceRatio*pageW) {
		return true
	}
	return false
}

// foldMinorities absorbs clusters too small to be a column into a
// large neighbor when one sits close enough. Small clusters with no
// such neighbor survive: a short sidebar is still a column.
func foldMinorities(clusters []*cluster, total int, pageW float64) []*cluster {
	minSize := int(math.Max(minClusterFloor, minClusterRatio*float64(total)))
	foldDist := math.Max(foldDistanceFloor, foldDistanceRatio*pageW)

	var out []*cluster
	for _, c := range clusters {
		if c.size() >= minSize {
			out = append(out, c)
			continue
		}
		var target *cluster
		best := foldDist
		for _, o := range clusters {
			if o == c || o.size() < minSize {
				continue
			}
			if d := math.Abs(c.mean - o.mean); d <= best {
				target = o
				best = d
			}
		}
		if target == nil {
			out = append(out, c)
			continue
		}
		target.members = append(target.members, c.members...)
		target.recomputeMean()
	}
	return out
}

// promoteHeadings pulls centered lines sitting above every real column
// body out of the midband. The baseline is taken from clusters large
// enough to be columns; a stray minority cluster near the top must not
// raise it.
func promoteHeadings(mid []seqLine, clusters []*cluster, minSize int, medianH, pageW float64) (promoted, rest []seqLine) {
	firstBodyY := math.Inf(1)
	for _, c := range clusters {
		if c.size() < minSize {
			continue
		}
		if t := c.top(); t < firstBodyY {
			firstBodyY = t
		}
	}
	if math.IsInf(firstBodyY, 1) {
		for _, c := range clusters {
			if t := c.top(); t < firstBodyY {
				firstBodyY = t
			}
		}
	}
	margin := math.Max(headingMarginFloor, headingMarginRatio*medianH)
	center := pageW / 2

	for _, it := range mid {
		heading := float64(it.d.Width()) <= headingWidthRatio*pageW &&
			math.Abs(it.d.CenterX()-center) <= headingCenterRatio*pageW &&
			float64(it.d.Y1) < firstBodyY-margin
		if heading {
			promoted = append(promoted, it)
		} else {
			rest = append(rest, it)
		}
	}
	return promoted, rest
}

// assignToClusters distributes every midband line, body candidate or
// not, into the column whose mean left edge is nearest. Full-width
// lines belong to the leftmost column so they read before the columns
// they precede.
func assignToClusters(mid []seqLine, clusters []*cluster, pageW float64) [][]seqLine {
	columns := make([][]seqLine, len(clusters))
	for _, it := range mid {
		if float64(it.d.Width()) >= bodyWidthRatio*pageW {
			columns[0] = append(columns[0], it)
			continue
		}
		x := float64(it.d.X0)
		best := 0
		bestDist := math.Abs(x - clusters[0].mean)
		for i := 1; i < len(clusters); i++ {
			if d := math.Abs(x - clusters[i].mean); d < bestDist {
				best = i
				bestDist = d
			}
		}
		columns[best] = append(columns[best], it)
	}
	return columns
}
