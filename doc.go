/*
Package richtext turns a small markup dialect into positioned rich text.

Rich Text

A document is organized as a tree

	Document → Paragraph* → Line* → Span*

where a span is a run of text sharing one formatting snapshot (color, font
face, size, letter spacing, kerning and horizontal alignment). Documents are
built by a markup parser (see sub-package html), which carries an inherited
Format down the markup tree. Every element descent works on a copy of the
format, so attributes set on one subtree never leak into its siblings.

Positioning

A document is positioned within a container rectangle using a MetricsProvider,
which measures a run of text under a given format:

	doc, _ := html.Parse(`<p align="center">Hello <font color="red">World</font></p>`)
	doc.Position(richtext.IdentityMetrics{}, richtext.R(0, 0, 80, 25))

Positioning places spans greedily from left to right, realigns each line
within the container according to its alignment anchor, and stacks lines and
paragraphs vertically. There is no line wrapping: runs which overflow the
container width are not redistributed. Positioning is a total pass: every
bounds rectangle of the document is recomputed on every call.

Coordinates have their origin in the top left corner, with y growing
downwards.

Concurrency

Parsing and positioning are synchronous. A document must not be positioned
while other goroutines read its bounds. Clients needing concurrent readers
should treat positioned documents as read-only and create a fresh document for
every re-layout (package label does exactly this).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package richtext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}

// Error is an error type for the richtext module
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("illegal arguments")

// ErrNoMetricsProvider is flagged if a document is to be positioned without
// a metrics provider.
const ErrNoMetricsProvider = Error("no metrics provider given")
