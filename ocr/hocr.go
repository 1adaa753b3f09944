package ocr

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/quirelab/quire/geom"
	"github.com/quirelab/quire/text"
)

// lineClasses are the hOCR element classes that carry one recognized
// text line each.
var lineClasses = []string{"ocr_line", "ocrx_line", "ocr_header", "ocr_caption", "ocr_textfloat"}

// ParseHOCR reads an hOCR document and returns its line records plus
// the page dimensions. Lines whose title carries no usable bbox come
// back without geometry; the layout engine places them after the
// positioned body. When the document has no ocr_page element the page
// dimensions are taken from the line extents.
func ParseHOCR(r io.Reader) ([]text.Line, geom.Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, geom.Page{}, fmt.Errorf("invalid hOCR document: %w", err)
	}

	var (
		lines []text.Line
		page  geom.Page
	)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if hasClass(n, "ocr_page") {
				if b, ok := titleBox(n); ok {
					page = geom.Page{Width: b.X1, Height: b.Y1}
				}
			} else if isLineNode(n) {
				content := strings.Join(strings.Fields(textContent(n)), " ")
				var g geom.Geometry
				if b, ok := titleBox(n); ok {
					g.Box = &b
				}
				lines = append(lines, text.New(len(lines), content, g))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if page == (geom.Page{}) {
		for _, l := range lines {
			if l.Box == nil {
				continue
			}
			if l.Box.X1 > page.Width {
				page.Width = l.Box.X1
			}
			if l.Box.Y1 > page.Height {
				page.Height = l.Box.Y1
			}
		}
	}
	return lines, page, nil
}

func isLineNode(n *html.Node) bool {
	for _, class := range lineClasses {
		if hasClass(n, class) {
			return true
		}
	}
	return false
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// titleBox extracts the bbox coordinates from an hOCR title attribute,
// e.g. `bbox 48 84 316 101; baseline 0.015 -18`. The returned box is
// raw: callers relying on validity go through geometry resolution.
func titleBox(n *html.Node) (geom.Box, bool) {
	var title string
	for _, a := range n.Attr {
		if a.Key == "title" {
			title = a.Val
			break
		}
	}
	for _, field := range strings.Split(title, ";") {
		parts := strings.Fields(field)
		if len(parts) != 5 || parts[0] != "bbox" {
			continue
		}
		coords := make([]int, 4)
		ok := true
		for i, p := range parts[1:] {
			v, err := strconv.Atoi(p)
			if err != nil {
				ok = false
				break
			}
			coords[i] = v
		}
		if !ok {
			continue
		}
		return geom.Box{X0: coords[0], Y0: coords[1], X1: coords[2], Y1: coords[3]}, true
	}
	return geom.Box{}, false
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
		sb.WriteString(" ")
	}
	return sb.String()
}
