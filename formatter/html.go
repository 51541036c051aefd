package formatter

import (
	"fmt"
	"image/color"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/richtext"
	"golang.org/x/net/html"
)

// HTML is a format for HTML output. Every span becomes an absolutely
// positioned `span` element, carrying its format as inline CSS.
type HTML struct {
	unit string
}

// NewHTML creates an HTML formatter. unit is the CSS unit used for positions
// and sizes, e.g. "px" for font metrics or "ch" for cell metrics. If unit is
// empty, "px" is used.
func NewHTML(unit string) *HTML {
	if unit == "" {
		unit = "px"
	}
	return &HTML{unit: unit}
}

// Preamble is called by the output driver before a document will be formatted.
// It outputs a containing `div` tag, large enough to hold the document.
// (Part of interface Format)
func (h *HTML) Preamble(doc *richtext.Document, w io.Writer) {
	fmt.Fprintf(w, "<div style=\"position:relative;width:%g%s;height:%g%s\">\n",
		doc.Bounds.Right(), h.unit, doc.Bounds.Bottom(), h.unit)
}

// Postamble will be called after a document has been formatted.
// It outputs a closing `</div>` tag.
// (Part of interface Format)
func (h *HTML) Postamble(w io.Writer) {
	io.WriteString(w, "</div>\n")
}

// Paragraph does nothing, as spans are positioned absolutely.
// (Part of interface Format)
func (h *HTML) Paragraph(para *richtext.Paragraph, w io.Writer) {}

// Line does nothing, as spans are positioned absolutely.
// (Part of interface Format)
func (h *HTML) Line(line *richtext.Line, w io.Writer) {}

// StyledText is called by the formatting driver to output a positioned span.
// (Part of interface Format)
func (h *HTML) StyledText(span *richtext.Span, w io.Writer) {
	f := span.Format
	family := "monospace"
	if name, ok := richtext.FaceName(f.Face); ok {
		family = name
	}
	style := fmt.Sprintf("position:absolute;left:%g%s;top:%g%s;color:%s;font-family:'%s';font-size:%d%s",
		span.Bounds.X, h.unit, span.Bounds.Y, h.unit, cssColor(f.Color), family, f.Size, h.unit)
	if f.LetterSpacing != 0 || f.Kerning != 0 {
		style += fmt.Sprintf(";letter-spacing:%g%s", f.LetterSpacing+float64(f.Kerning), h.unit)
	}
	fmt.Fprintf(w, "<span style=\"%s\">%s</span>", html.EscapeString(style), html.EscapeString(span.Text()))
}

// Newline will be called at the end of every formatted line of text.
// (Part of interface Format)
func (h *HTML) Newline(w io.Writer) {
	io.WriteString(w, "\n")
}

func cssColor(c color.RGBA) string {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return "transparent"
	}
	return cc.Hex()
}

var _ Format = &HTML{}
