/*
Package formatter outputs positioned rich text documents on output devices.

A document has to be positioned before it is handed to a formatter, i.e.
every span must carry its bounds. Formatters then render spans at their
positions, using the spans' formats as far as the output device supports
them.

This package offers three implementations of interface Format:

▪︎ Console renders to a terminal with a fixed width font. Colors of spans are
mapped to the nearest of the 16 ANSI terminal colors. Span positions are
interpreted as cell coordinates, as produced by metrics.Cells.

▪︎ HTML renders every span as an absolutely positioned `span` element inside
a containing `div`.

▪︎ Dump writes the structure of a document, together with all bounds and
formats. It is intended for debugging.

The driver function Output walks a document and calls the methods of a Format.
Print is a convenience function which positions and outputs a document to
stdout, using a configuration created from the current terminal.

	doc, _ := html.Parse(`<p align="center">The <font color="red">quick</font> brown fox</p>`)
	formatter.Print(doc, nil)

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
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}
