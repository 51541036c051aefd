package formatter

import (
	"fmt"
	"io"

	"github.com/npillmayer/richtext"
)

// Dump is a format which writes the structure of a document, with every
// span on a line of its own. It is intended for debugging.
type Dump struct{}

// Preamble outputs the document's bounds.
// (Part of interface Format)
func (d *Dump) Preamble(doc *richtext.Document, w io.Writer) {
	fmt.Fprintf(w, "document %v\n", doc.Bounds)
}

// Postamble does nothing.
// (Part of interface Format)
func (d *Dump) Postamble(w io.Writer) {}

// Paragraph outputs the paragraph's bounds and number of lines.
// (Part of interface Format)
func (d *Dump) Paragraph(para *richtext.Paragraph, w io.Writer) {
	fmt.Fprintf(w, "  paragraph %v lines=%d\n", para.Bounds, len(para.Lines))
}

// Line outputs the line's bounds and alignment.
// (Part of interface Format)
func (d *Dump) Line(line *richtext.Line, w io.Writer) {
	fmt.Fprintf(w, "    line %v %v\n", line.Bounds, line.Format.Align)
}

// StyledText outputs a span's text, bounds and format.
// (Part of interface Format)
func (d *Dump) StyledText(span *richtext.Span, w io.Writer) {
	fmt.Fprintf(w, "      span %q %v %v\n", span.Text(), span.Bounds, span.Format)
}

// Newline does nothing.
// (Part of interface Format)
func (d *Dump) Newline(w io.Writer) {}

var _ Format = &Dump{}
