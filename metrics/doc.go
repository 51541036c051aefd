/*
Package metrics provides some pre-manufactured metrics providers for rich text.

Cells measures text in fixed-width terminal cells, respecting East Asian
character widths (UAX#11) and grapheme clusters (UAX#29). It ignores font
faces and sizes. Faces measures text with real font faces from
golang.org/x/image/font, resolving font names to OpenType fonts and scaling
them to the size of a span's format.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}
