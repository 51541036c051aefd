package metrics

import (
	"sync"

	"github.com/npillmayer/richtext"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// Cells is a metrics provider for output devices with a fixed-width font,
// such as terminals. Every line is one cell high.
type Cells struct {
	context *uax11.Context
}

// NewCells creates a fixed-width metrics provider. context determines the
// width of ambiguous characters; if it is nil, uax11.LatinContext is used.
func NewCells(context *uax11.Context) *Cells {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	return &Cells{context: context}
}

// Measure returns the number of cells needed to display text, with a height
// of 1. Part of interface richtext.MetricsProvider.
func (c *Cells) Measure(text string, _ richtext.Format) richtext.Rect {
	if text == "" {
		return richtext.Rect{Height: 1}
	}
	gstr := grapheme.StringFromString(text)
	width := uax11.StringWidth(gstr, c.context)
	return richtext.Rect{Width: float64(width), Height: 1}
}

var _ richtext.MetricsProvider = &Cells{}
