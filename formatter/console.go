package formatter

import (
	"image/color"
	"io"
	"math"
	"strings"

	fcolor "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/richtext"
	"golang.org/x/term"
)

// Console is a type for outputting positioned text to a console with a fixed
// width font.
//
// Span bounds are interpreted as cell coordinates. Columns are absolute, i.e.
// a document should be positioned in a container starting at x = 0. Rows are
// counted from the top of the document. Horizontal gaps are filled with blanks,
// vertical gaps with empty lines. Overlapping spans are not detected.
//
// Colors of spans are mapped to the nearest terminal color, with respect to
// the CIE L*a*b* color space. Font faces, sizes and spacing are ignored.
type Console struct {
	plain   bool
	colors  map[fcolor.Attribute]*fcolor.Color
	top     float64 // top of document
	row     int     // current output row, relative to top
	col     int     // number of character positions already printed for line
	lheight int     // height of current line in rows
}

// NewConsole creates a new formatter for consoles with a fixed width font.
// If plain is set, no color escape sequences are written.
func NewConsole(plain bool) *Console {
	return &Console{
		plain:  plain,
		colors: make(map[fcolor.Attribute]*fcolor.Color),
	}
}

// Preamble is called by the output driver before a document will be formatted.
// (Part of interface Format)
func (fw *Console) Preamble(doc *richtext.Document, w io.Writer) {
	fw.top = doc.Bounds.Top()
	fw.row = 0
}

// Postamble is called after a document has been formatted.
// (Part of interface Format)
func (fw *Console) Postamble(w io.Writer) {}

// Paragraph does nothing, as rows are derived from line bounds.
// (Part of interface Format)
func (fw *Console) Paragraph(para *richtext.Paragraph, w io.Writer) {}

// Line is a signal from the output driver that a new line is to be output.
// It moves the output to the row of the line.
// (Part of interface Format)
func (fw *Console) Line(line *richtext.Line, w io.Writer) {
	target := cells(line.Bounds.Top() - fw.top)
	if target > fw.row {
		io.WriteString(w, strings.Repeat("\n", target-fw.row))
		fw.row = target
	}
	fw.col = 0
	fw.lheight = max(1, cells(line.Bounds.Height))
}

// StyledText is called by the formatting driver to output a positioned span.
// It uses colors to visualize the span's format.
// (Part of interface Format)
func (fw *Console) StyledText(span *richtext.Span, w io.Writer) {
	if target := cells(span.Bounds.Left()); target > fw.col {
		io.WriteString(w, strings.Repeat(" ", target-fw.col))
		fw.col = target
	}
	fw.color(span.Format.Color).Fprint(w, span.Text())
	fw.col += cells(span.Bounds.Width)
}

// Newline will be called at the end of every formatted line of text.
// (Part of interface Format)
func (fw *Console) Newline(w io.Writer) {
	io.WriteString(w, "\n")
	fw.row += fw.lheight
}

func (fw *Console) color(c color.RGBA) *fcolor.Color {
	attr := NearestTerminalColor(c)
	fc, ok := fw.colors[attr]
	if !ok {
		fc = fcolor.New(attr)
		if fw.plain {
			fc.DisableColor()
		}
		fw.colors[attr] = fc
	}
	return fc
}

func cells(x float64) int {
	return int(math.Round(x))
}

var _ Format = &Console{}

// --- Terminal colors -------------------------------------------------------

type paletteEntry struct {
	attr fcolor.Attribute
	rgb  colorful.Color
}

// xterm default colors
var terminalPalette = []paletteEntry{
	{fcolor.FgBlack, rgb(0, 0, 0)},
	{fcolor.FgRed, rgb(205, 0, 0)},
	{fcolor.FgGreen, rgb(0, 205, 0)},
	{fcolor.FgYellow, rgb(205, 205, 0)},
	{fcolor.FgBlue, rgb(0, 0, 238)},
	{fcolor.FgMagenta, rgb(205, 0, 205)},
	{fcolor.FgCyan, rgb(0, 205, 205)},
	{fcolor.FgWhite, rgb(229, 229, 229)},
	{fcolor.FgHiBlack, rgb(127, 127, 127)},
	{fcolor.FgHiRed, rgb(255, 0, 0)},
	{fcolor.FgHiGreen, rgb(0, 255, 0)},
	{fcolor.FgHiYellow, rgb(255, 255, 0)},
	{fcolor.FgHiBlue, rgb(92, 92, 255)},
	{fcolor.FgHiMagenta, rgb(255, 0, 255)},
	{fcolor.FgHiCyan, rgb(0, 255, 255)},
	{fcolor.FgHiWhite, rgb(255, 255, 255)},
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// NearestTerminalColor finds the foreground color of a 16-color terminal
// which is perceptually closest to c. Fully transparent colors map to
// the terminal's white.
func NearestTerminalColor(c color.RGBA) fcolor.Attribute {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return fcolor.FgWhite
	}
	nearest, dist := terminalPalette[0].attr, math.MaxFloat64
	for _, entry := range terminalPalette {
		if d := cc.DistanceLab(entry.rgb); d < dist {
			nearest, dist = entry.attr, d
		}
	}
	return nearest
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.Width parameter accordingly. Colors are suppressed
// if stdout is not a terminal.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(1) {
		w, _, err := term.GetSize(1)
		if err != nil || w < 10 {
			config.Width = 80
		} else {
			config.Width = w
		}
	} else {
		config.Width = 80
		config.Plain = true
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.Width)
	return config
}
