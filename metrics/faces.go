package metrics

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/richtext"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Faces is a metrics provider measuring text with font faces.
//
// Named faces of a format are resolved against a registry of OpenType fonts
// (case-insensitive). Unknown names are resolved to the fallback font, which
// is Go Regular. Bitmap faces carry their own font.Face and are used as-is,
// ignoring the format's size.
//
// Letter spacing and kerning of a format are added between every pair of
// adjacent characters.
//
// Faces is safe for concurrent use.
type Faces struct {
	mu       sync.Mutex
	dpi      float64
	fonts    map[string]*opentype.Font
	fallback *opentype.Font
	faces    map[faceKey]font.Face // cache of scaled faces
}

type faceKey struct {
	name string
	size int
}

// NewFaces creates a font-face metrics provider for a given resolution.
// If dpi is not positive, 72 is used, making a point equal to a pixel.
// The Go fonts are pre-registered as "Go" and "Go Mono".
func NewFaces(dpi float64) (*Faces, error) {
	if dpi <= 0 {
		dpi = 72
	}
	fc := &Faces{
		dpi:   dpi,
		fonts: make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
	if err := fc.Register("Go", goregular.TTF); err != nil {
		return nil, err
	}
	if err := fc.Register("Go Mono", gomono.TTF); err != nil {
		return nil, err
	}
	fc.fallback = fc.fonts["go"]
	return fc, nil
}

// Register adds an OpenType or TrueType font to the registry.
func (fc *Faces) Register(name string, ttf []byte) error {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("cannot register font %q: %w", name, err)
	}
	fc.mu.Lock()
	defer fc.mu.Unlock()
	key := strings.ToLower(name)
	fc.fonts[key] = f
	for k := range fc.faces { // drop scaled faces of a replaced font
		if k.name == key {
			delete(fc.faces, k)
		}
	}
	tracer().Debugf("registered font %q", name)
	return nil
}

// Face returns the font face to use for a format.
func (fc *Faces) Face(format richtext.Format) font.Face {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.face(format)
}

func (fc *Faces) face(format richtext.Format) font.Face {
	if f, ok := richtext.FaceFont(format.Face); ok && f != nil {
		return f
	}
	name, _ := richtext.FaceName(format.Face)
	name = strings.ToLower(name)
	if _, ok := fc.fonts[name]; !ok {
		name = ""
	}
	size := format.Size
	if size <= 0 {
		size = richtext.DefaultFormat().Size
	}
	key := faceKey{name: name, size: size}
	if face, ok := fc.faces[key]; ok {
		return face
	}
	otf := fc.fallback
	if name != "" {
		otf = fc.fonts[name]
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     fc.dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		tracer().Errorf("cannot create face for %v: %v", format.Face, err)
		return basicfont.Face7x13
	}
	fc.faces[key] = face
	return face
}

// Measure returns the advance width and line height of text set in the face
// for format. Part of interface richtext.MetricsProvider.
func (fc *Faces) Measure(text string, format richtext.Format) richtext.Rect {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	face := fc.face(format)
	width := fromFixed(font.MeasureString(face, text))
	if gaps := utf8.RuneCountInString(text) - 1; gaps > 0 {
		width += float64(gaps) * (format.LetterSpacing + float64(format.Kerning))
	}
	return richtext.Rect{Width: width, Height: fromFixed(face.Metrics().Height)}
}

// Close releases all scaled faces created so far.
func (fc *Faces) Close() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	var err error
	for k, face := range fc.faces {
		if e := face.Close(); e != nil && err == nil {
			err = e
		}
		delete(fc.faces, k)
	}
	return err
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

var _ richtext.MetricsProvider = &Faces{}
