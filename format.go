package richtext

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/font"
)

// --- Font faces ------------------------------------------------------------

// FontFace references the font of a run of text. It is either a NamedFace
// or a BitmapFace; there are no other implementations.
type FontFace interface {
	isFontFace()
	String() string
}

// NamedFace references a font by its family name, to be resolved by a
// metrics provider or a renderer.
type NamedFace struct {
	Name string
}

func (NamedFace) isFontFace() {}

func (f NamedFace) String() string {
	return f.Name
}

// BitmapFace references a concrete, ready-to-use font face.
type BitmapFace struct {
	Font font.Face
}

func (BitmapFace) isFontFace() {}

func (f BitmapFace) String() string {
	return fmt.Sprintf("bitmap(%p)", f.Font)
}

// FaceName returns the family name of f, if f is a NamedFace.
func FaceName(f FontFace) (string, bool) {
	if n, ok := f.(NamedFace); ok {
		return n.Name, true
	}
	return "", false
}

// FaceFont returns the font handle of f, if f is a BitmapFace.
func FaceFont(f FontFace) (font.Face, bool) {
	if b, ok := f.(BitmapFace); ok {
		return b.Font, true
	}
	return nil, false
}

func sameFace(a, b FontFace) bool {
	switch fa := a.(type) {
	case NamedFace:
		fb, ok := b.(NamedFace)
		return ok && fa.Name == fb.Name
	case BitmapFace:
		fb, ok := b.(BitmapFace)
		return ok && fa.Font == fb.Font
	}
	return a == nil && b == nil
}

// --- Alignment -------------------------------------------------------------

// Alignment is the horizontal alignment of a line within its container.
type Alignment uint8

// Alignments recognized by the markup parser. AlignJustified is accepted, but
// positioned exactly like AlignLeft.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustified
)

var alignmentNames = [...]string{"left", "center", "right", "justified"}

func (a Alignment) String() string {
	if int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return fmt.Sprintf("Alignment(%d)", a)
}

// Anchor returns the anchor used to align a line within its container.
func (a Alignment) Anchor() Anchor {
	switch a {
	case AlignCenter:
		return MiddleCenter
	case AlignRight:
		return MiddleRight
	}
	// TODO distribute the free space between words for AlignJustified
	return MiddleLeft
}

// ParseAlignment finds an alignment by its (case-insensitive) keyword.
// It returns false for unrecognized keywords.
func ParseAlignment(s string) (Alignment, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range alignmentNames {
		if s == name {
			return Alignment(i), true
		}
	}
	return AlignLeft, false
}

// --- Format ----------------------------------------------------------------

// Format is the set of visual text attributes in effect for a span.
//
// Format is a value type and is always passed by value. Deriving a format for
// a child element means copying the parent's format and changing the copy.
type Format struct {
	Color         color.RGBA
	Face          FontFace
	Size          int
	LetterSpacing float64
	Kerning       int
	Align         Alignment
}

// DefaultColor is the color used for absent or unresolvable color names.
var DefaultColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// DefaultFormat returns the format in effect at the root of a markup tree.
func DefaultFormat() Format {
	return Format{
		Color: DefaultColor,
		Face:  NamedFace{Name: "Arial"},
		Size:  16,
		Align: AlignLeft,
	}
}

// Equals compares two formats attribute by attribute.
func (f Format) Equals(other Format) bool {
	return f.Color == other.Color &&
		sameFace(f.Face, other.Face) &&
		f.Size == other.Size &&
		f.LetterSpacing == other.LetterSpacing &&
		f.Kerning == other.Kerning &&
		f.Align == other.Align
}

func (f Format) String() string {
	face := "<nil>"
	if f.Face != nil {
		face = f.Face.String()
	}
	return fmt.Sprintf("[#%02x%02x%02x %s %d ls=%g k=%d %s]", f.Color.R, f.Color.G, f.Color.B,
		face, f.Size, f.LetterSpacing, f.Kerning, f.Align)
}
