package text

import "unicode"

// Direction is the dominant writing direction of a piece of text.
type Direction int

const (
	// LTR for Latin, Cyrillic, CJK and most other scripts.
	LTR Direction = iota
	// RTL for Arabic, Hebrew and related scripts.
	RTL
	// Neutral when no strong directional characters are present.
	Neutral
)

func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	}
	return "Unknown"
}

// rtlScripts are the scripts whose strong characters read right to
// left.
var rtlScripts = []*unicode.RangeTable{
	unicode.Arabic,
	unicode.Hebrew,
	unicode.Syriac,
	unicode.Thaana,
	unicode.Nko,
}

// DetectDirection returns the dominant direction of a string by
// counting strong directional characters. Digits, punctuation and
// whitespace carry no direction; a string with no strong characters is
// Neutral.
func DetectDirection(s string) Direction {
	ltr, rtl := 0, 0
	for _, r := range s {
		switch charDirection(r) {
		case LTR:
			ltr++
		case RTL:
			rtl++
		}
	}
	if ltr == 0 && rtl == 0 {
		return Neutral
	}
	if rtl > ltr {
		return RTL
	}
	return LTR
}

// DetectLinesDirection returns the dominant direction across a set of
// lines, weighting each strong character equally.
func DetectLinesDirection(lines []Line) Direction {
	ltr, rtl := 0, 0
	for _, l := range lines {
		for _, r := range l.Text {
			switch charDirection(r) {
			case LTR:
				ltr++
			case RTL:
				rtl++
			}
		}
	}
	if ltr == 0 && rtl == 0 {
		return Neutral
	}
	if rtl > ltr {
		return RTL
	}
	return LTR
}

func charDirection(r rune) Direction {
	if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
		return Neutral
	}
	if !unicode.IsLetter(r) {
		return Neutral
	}
	for _, script := range rtlScripts {
		if unicode.Is(script, r) {
			return RTL
		}
	}
	return LTR
}
