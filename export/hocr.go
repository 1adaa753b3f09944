package export

import (
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/quirelab/quire/geom"
	"github.com/quirelab/quire/text"
)

// WriteHOCR renders the ordered lines as a minimal hOCR document.
// Lines without geometry are emitted without a bbox title.
func WriteHOCR(w io.Writer, lines []text.Line, page geom.Page) error {
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("<!DOCTYPE html>\n<html>\n<body>\n")
	p("<div class='ocr_page' title='bbox 0 0 %d %d'>\n", page.Width, page.Height)
	for _, l := range lines {
		if l.Box != nil {
			p("<span class='ocr_line' id='line_%d' title='bbox %d %d %d %d'>%s</span>\n",
				l.Index, l.Box.X0, l.Box.Y0, l.Box.X1, l.Box.Y1, html.EscapeString(l.Text))
		} else {
			p("<span class='ocr_line' id='line_%d'>%s</span>\n", l.Index, html.EscapeString(l.Text))
		}
	}
	p("</div>\n</body>\n</html>\n")

	if err != nil {
		return fmt.Errorf("writing hOCR: %w", err)
	}
	return nil
}
