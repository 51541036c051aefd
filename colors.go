package richtext

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ColorTable resolves color names to colors.
type ColorTable interface {
	Lookup(name string) (color.RGBA, bool)
}

// NamedColors is the default color table. It knows the CSS color names
// (case-insensitive) and hex notation "#rgb" and "#rrggbb".
var NamedColors ColorTable = cssColors{}

type cssColors struct{}

func (cssColors) Lookup(name string) (color.RGBA, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return color.RGBA{}, false
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
	}
	c, ok := colornames.Map[name]
	return c, ok
}

// ColorMap is a color table for a fixed set of names, matched verbatim.
type ColorMap map[string]color.RGBA

// Lookup is part of interface ColorTable.
func (m ColorMap) Lookup(name string) (color.RGBA, bool) {
	c, ok := m[name]
	return c, ok
}

// ResolveColor looks up a color name in table. Names which cannot be resolved
// map to DefaultColor. If table is nil, NamedColors is used.
func ResolveColor(table ColorTable, name string) color.RGBA {
	if table == nil {
		table = NamedColors
	}
	if c, ok := table.Lookup(name); ok {
		return c
	}
	tracer().Debugf("color %q unknown, using default", name)
	return DefaultColor
}
