/*
Package html creates rich text documents from a small HTML dialect.

Markup is tokenized by golang.org/x/net/html. The parser walks the resulting
node tree depth-first and carries an inherited richtext.Format down the tree.
Elements may override formatting attributes for their subtree:

	align          left | center | right | justified (case-insensitive)
	face           font family name
	size           integer
	letterSpacing  decimal
	kerning        integer
	color          CSS color name or #rgb / #rrggbb

Any element may carry these attributes; the tag name does not matter except
for block elements (p and div), which end the current paragraph, and br,
which ends the current line. Unknown attributes are ignored, as are values
which cannot be parsed. A color which cannot be resolved falls back to white.

Please note that the markup is parsed as an HTML body fragment, i.e. the
tree builder applies the HTML5 tree construction rules (for example, a
<div> implicitly closes an open <p>).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}
