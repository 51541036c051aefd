package richtext

import "unicode/utf8"

// MetricsProvider measures a run of text under a given format.
//
// Measure returns a rectangle in the run's local coordinate space, with its
// origin conventionally at (0,0). How faces, sizes, letter spacing and kerning
// are accounted for is up to the implementation.
type MetricsProvider interface {
	Measure(text string, format Format) Rect
}

// MetricsFunc is an adapter to use a plain function as a MetricsProvider.
type MetricsFunc func(text string, format Format) Rect

// Measure calls f(text, format).
func (f MetricsFunc) Measure(text string, format Format) Rect {
	return f(text, format)
}

// IdentityMetrics measures every character as a 1×1 cell, ignoring the
// format. It is useful for testing without a font system.
type IdentityMetrics struct{}

// Measure returns a rectangle of width = number of characters and height = 1.
func (IdentityMetrics) Measure(text string, _ Format) Rect {
	return Rect{Width: float64(utf8.RuneCountInString(text)), Height: 1}
}

var _ MetricsProvider = IdentityMetrics{}
