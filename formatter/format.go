package formatter

import (
	"io"
	"os"

	"github.com/npillmayer/richtext"
	"github.com/npillmayer/richtext/metrics"
	"github.com/npillmayer/uax/uax11"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	Width   int            // width of the container to position text in
	Plain   bool           // suppress colors
	Context *uax11.Context // context for character widths; nil means uax11.LatinContext
}

// Format is an interface for formatting drivers, given an io.Writer.
//
// Preamble and Postamble enclose the output of a document. Paragraph is called
// at the start of every paragraph. Line is called before the spans of a line
// are output, Newline after them.
type Format interface {
	Preamble(*richtext.Document, io.Writer)
	Postamble(io.Writer)
	Paragraph(*richtext.Paragraph, io.Writer)
	Line(*richtext.Line, io.Writer)
	StyledText(*richtext.Span, io.Writer)
	Newline(io.Writer)
}

// Output writes a positioned document using a given formatter.
//
// Neither of the arguments may be nil. Empty lines are skipped.
func Output(doc *richtext.Document, out io.Writer, format Format) error {
	if doc == nil || out == nil || format == nil {
		return richtext.ErrIllegalArguments
	}
	format.Preamble(doc, out)
	for i, para := range doc.Paragraphs {
		format.Paragraph(para, out)
		for j, line := range para.Lines {
			if line.IsEmpty() {
				continue
			}
			tracer().Debugf("[%d.%d] %v with %d spans", i, j, line.Bounds, len(line.Spans))
			format.Line(line, out)
			for _, span := range line.Spans {
				format.StyledText(span, out)
			}
			format.Newline(out)
		}
	}
	format.Postamble(out)
	return nil
}

// Print positions a document within the width of the terminal and outputs it
// to stdout.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func Print(doc *richtext.Document, config *Config) error {
	if doc == nil {
		return richtext.ErrIllegalArguments
	}
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	cells := metrics.NewCells(config.Context)
	if err := doc.Position(cells, richtext.R(0, 0, float64(config.Width), 0)); err != nil {
		return err
	}
	return Output(doc, os.Stdout, NewConsole(config.Plain))
}
