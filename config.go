package richtext

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
)

// Configuration keys for the base format of a document.
const (
	ConfigColor         = "richtext.color"
	ConfigFace          = "richtext.face"
	ConfigSize          = "richtext.size"
	ConfigLetterSpacing = "richtext.letterspacing"
	ConfigKerning       = "richtext.kerning"
	ConfigAlign         = "richtext.align"
)

// FormatFromConfig creates a base format from an application configuration.
// Keys which are not set or hold values which cannot be parsed leave the
// respective attribute of DefaultFormat() untouched. Color names are resolved
// using colors (NamedColors if nil).
func FormatFromConfig(conf schuko.Configuration, colors ColorTable) Format {
	f := DefaultFormat()
	if conf == nil {
		return f
	}
	if s, ok := configString(conf, ConfigColor); ok {
		f.Color = ResolveColor(colors, s)
	}
	if s, ok := configString(conf, ConfigFace); ok {
		f.Face = NamedFace{Name: s}
	}
	if s, ok := configString(conf, ConfigSize); ok {
		if n, err := strconv.Atoi(s); err == nil {
			f.Size = n
		}
	}
	if s, ok := configString(conf, ConfigLetterSpacing); ok {
		if x, err := strconv.ParseFloat(s, 64); err == nil {
			f.LetterSpacing = x
		}
	}
	if s, ok := configString(conf, ConfigKerning); ok {
		if n, err := strconv.Atoi(s); err == nil {
			f.Kerning = n
		}
	}
	if s, ok := configString(conf, ConfigAlign); ok {
		if a, ok := ParseAlignment(s); ok {
			f.Align = a
		}
	}
	tracer().Debugf("base format from configuration = %v", f)
	return f
}

func configString(conf schuko.Configuration, key string) (string, bool) {
	if !conf.IsSet(key) {
		return "", false
	}
	s := strings.TrimSpace(conf.GetString(key))
	return s, s != ""
}
