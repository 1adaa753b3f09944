package layout

// VerticalOrder is the vertical reading direction of a page.
type VerticalOrder int

const (
	TopToBottom VerticalOrder = iota
	BottomToTop
)

// String returns a string representation of the vertical order.
func (v VerticalOrder) String() string {
	if v == BottomToTop {
		return "btt"
	}
	return "ttb"
}

// HorizontalOrder is the direction in which columns are read.
type HorizontalOrder int

const (
	LeftToRight HorizontalOrder = iota
	RightToLeft
)

// String returns a string representation of the horizontal order.
func (h HorizontalOrder) String() string {
	if h == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// ReadingMode combines the two direction axes. The zero value is
// top-to-bottom, left-to-right.
type ReadingMode struct {
	Vertical   VerticalOrder
	Horizontal HorizontalOrder
}

// String returns a string representation of the reading mode.
func (m ReadingMode) String() string {
	return m.Vertical.String() + "-" + m.Horizontal.String()
}
