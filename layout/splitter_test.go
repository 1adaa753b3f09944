package layout

import (
	"reflect"
	"testing"

	"github.com/quirelab/quire/geom"
	"github.com/quirelab/quire/text"
)

func TestSplitWideLines(t *testing.T) {
	page := geom.Page{Width: 1000, Height: 800}
	lines := []text.Line{
		boxLine(0, "left column text      right column text", 50, 400, 950, 420),
	}

	got := SplitWideLines(lines, page, LeftToRight)
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	if got[0].Text != "left column text" || got[1].Text != "right column text" {
		t.Errorf("texts = %q, %q", got[0].Text, got[1].Text)
	}
	wantLeft := geom.Box{X0: 0, Y0: 400, X1: 500, Y1: 420}
	wantRight := geom.Box{X0: 500, Y0: 400, X1: 1000, Y1: 420}
	if *got[0].Box != wantLeft {
		t.Errorf("left box = %+v, want %+v", *got[0].Box, wantLeft)
	}
	if *got[1].Box != wantRight {
		t.Errorf("right box = %+v, want %+v", *got[1].Box, wantRight)
	}
	if got[0].Index != 0 || got[1].Index != 1 {
		t.Errorf("indexes = %d, %d, want 0, 1", got[0].Index, got[1].Index)
	}
}

func TestSplitWideLinesRTL(t *testing.T) {
	page := geom.Page{Width: 1000, Height: 800}
	lines := []text.Line{
		boxLine(0, "first read half      second read half", 50, 400, 950, 420),
	}

	got := SplitWideLines(lines, page, RightToLeft)
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	// In right-to-left reading the right half comes first.
	if got[0].Text != "second read half" || got[1].Text != "first read half" {
		t.Errorf("texts = %q, %q", got[0].Text, got[1].Text)
	}
	if got[0].Box.X0 != 500 || got[1].Box.X1 != 500 {
		t.Errorf("boxes not swapped with texts: %+v, %+v", *got[0].Box, *got[1].Box)
	}
}

func TestSplitWideLinesKeepsBannerHeading(t *testing.T) {
	page := geom.Page{Width: 1000, Height: 800}
	lines := []text.Line{
		boxLine(0, "ANNUAL REPORT      OF THE SOCIETY", 95, 100, 905, 130),
	}

	got := SplitWideLines(lines, page, LeftToRight)
	if len(got) != 1 || got[0].Text != lines[0].Text {
		t.Errorf("banner heading was split: %v", texts(got))
	}
}

func TestSplitWideLinesNeedsTwoHalves(t *testing.T) {
	page := geom.Page{Width: 1000, Height: 800}
	tests := []struct {
		name    string
		content string
	}{
		{"no gap", "one continuous line of text without a wide gap"},
		{"empty right half", "only text      "},
		{"empty left half", "      only text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := []text.Line{boxLine(0, tt.content, 50, 400, 950, 420)}
			got := SplitWideLines(lines, page, LeftToRight)
			if len(got) != 1 || got[0].Text != tt.content {
				t.Errorf("line was split: %v", texts(got))
			}
		})
	}
}

func TestSplitWideLinesSplitsAtFirstGap(t *testing.T) {
	// The right column can carry its own wide whitespace run; only the
	// first gap marks the column boundary.
	page := geom.Page{Width: 1000, Height: 800}
	lines := []text.Line{
		boxLine(0, "alpha    beta    gamma", 50, 400, 950, 420),
	}

	got := SplitWideLines(lines, page, LeftToRight)
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	if got[0].Text != "alpha" || got[1].Text != "beta    gamma" {
		t.Errorf("texts = %q, %q", got[0].Text, got[1].Text)
	}
}

func TestSplitWideLinesLeavesNarrowLines(t *testing.T) {
	page := geom.Page{Width: 1000, Height: 800}
	lines := []text.Line{
		boxLine(0, "narrow      with gap", 100, 100, 500, 120),
		text.New(1, "boxless      with gap", geom.Geometry{}),
	}

	got := SplitWideLines(lines, page, LeftToRight)
	if !reflect.DeepEqual(texts(got), texts(lines)) {
		t.Errorf("SplitWideLines() = %v, want unchanged", texts(got))
	}
}

func TestSplitWideLinesReindexes(t *testing.T) {
	page := geom.Page{Width: 1000, Height: 800}
	lines := []text.Line{
		boxLine(0, "first", 100, 100, 500, 120),
		boxLine(1, "left half      right half", 50, 400, 950, 420),
		boxLine(2, "last", 100, 500, 500, 520),
	}

	got := SplitWideLines(lines, page, LeftToRight)
	if len(got) != 4 {
		t.Fatalf("got %d lines, want 4", len(got))
	}
	for i, l := range got {
		if l.Index != i {
			t.Errorf("line %d has index %d", i, l.Index)
		}
	}
}
