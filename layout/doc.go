// Package layout derives a stable reading order for the recognized
// lines of a page.
//
// The [Sequencer] orchestrates the full heuristic: header and footer
// detection, column detection (from explicit vertical separator rules
// when present, otherwise by clustering line left edges), heading
// promotion, and a direction-adjusted final ordering. All comparisons
// run on deskewed boxes so that slightly rotated scans still order
// correctly; reported records always carry their original boxes.
//
//	seq := layout.NewSequencer()
//	ordered := seq.Sequence(lines, page)
//
// Reading direction is configurable in both axes:
//
//	cfg := layout.DefaultSequencerConfig()
//	cfg.Mode.Horizontal = layout.RightToLeft
//	seq := layout.NewSequencerWithConfig(cfg)
//
// [SplitWideLines] is a post-processing pass over a sequenced page
// that tears apart lines the recognizer merged across two columns.
//
// Every classification step degrades to a simpler rule when it cannot
// find enough evidence; the weakest result is a plain top-to-bottom,
// left-to-right sort. The package never fails: any input list yields a
// complete ordering containing every input line.
package layout
