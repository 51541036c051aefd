package metrics

import (
	"testing"

	"github.com/npillmayer/richtext"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/image/font/basicfont"
)

func TestCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	cells := NewCells(uax11.LatinContext)
	f := richtext.DefaultFormat()
	if r := cells.Measure("abc", f); r.Width != 3 || r.Height != 1 {
		t.Errorf("expected 'abc' to occupy 3x1 cells, is %v", r)
	}
	if r := cells.Measure("日本", f); r.Width != 4 {
		t.Errorf("expected wide characters to occupy 2 cells each, width is %v", r.Width)
	}
	if r := NewCells(nil).Measure("", f); r.Width != 0 || r.Height != 1 {
		t.Errorf("expected empty text to be 0 cells wide, is %v", r)
	}
}

func TestCellsPositionEmptySpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	line := &richtext.Line{}
	line.AddText("a", richtext.DefaultFormat())
	line.AddText("", richtext.DefaultFormat())
	line.AddText("bc", richtext.DefaultFormat())
	doc := &richtext.Document{Paragraphs: []*richtext.Paragraph{{Lines: []*richtext.Line{line}}}}
	if err := doc.Position(NewCells(nil), richtext.R(0, 0, 10, 1)); err != nil {
		t.Fatal(err)
	}
	if doc.Bounds != richtext.R(0, 0, 3, 1) {
		t.Errorf("expected document bounds (0,0 3x1), are %v", doc.Bounds)
	}
	if s := line.Spans[2]; s.Bounds.X != 1 {
		t.Errorf("expected span after empty span at x=1, is at %v", s.Bounds)
	}
}

func TestFacesBitmap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	faces, err := NewFaces(0)
	if err != nil {
		t.Fatal(err)
	}
	defer faces.Close()
	f := richtext.DefaultFormat()
	f.Face = richtext.BitmapFace{Font: basicfont.Face7x13}
	if r := faces.Measure("abc", f); r.Width != 21 || r.Height != 13 {
		t.Errorf("expected 'abc' in 7x13 bitmap font to measure 21x13, is %v", r)
	}
	f.LetterSpacing = 1.5
	f.Kerning = 1
	if r := faces.Measure("abc", f); r.Width != 26 {
		t.Errorf("expected spacing between 2 pairs of letters, width is %v", r.Width)
	}
}

func TestFacesScaling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	faces, err := NewFaces(72)
	if err != nil {
		t.Fatal(err)
	}
	defer faces.Close()
	small := richtext.DefaultFormat()
	small.Face = richtext.NamedFace{Name: "go"}
	small.Size = 10
	large := small
	large.Size = 20
	s, l := faces.Measure("Hello", small), faces.Measure("Hello", large)
	if s.Width <= 0 || l.Width <= s.Width || l.Height <= s.Height {
		t.Errorf("expected larger size to measure larger, have %v and %v", s, l)
	}
	unknown := small
	unknown.Face = richtext.NamedFace{Name: "Arial"}
	if u := faces.Measure("Hello", unknown); u != s {
		t.Errorf("expected unknown face to fall back to Go Regular, is %v", u)
	}
	mono := small
	mono.Face = richtext.NamedFace{Name: "GO MONO"}
	if a, b := faces.Measure("iii", mono), faces.Measure("WWW", mono); a.Width != b.Width {
		t.Errorf("expected monospaced face to have equal advances, have %v and %v", a, b)
	}
	if faces.Face(mono) != faces.Face(mono) {
		t.Errorf("expected scaled faces to be cached")
	}
}

func TestByName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	for _, name := range []string{IdentityName, CellsName, "Faces"} {
		if p, err := ByName(name); err != nil || p == nil {
			t.Errorf("expected provider %q to be available, error is %v", name, err)
		}
	}
	if _, err := ByName("pixels"); err == nil {
		t.Errorf("expected unknown provider to be rejected")
	}
	p, _ := ByName(IdentityName)
	if r := p.Measure("abcd", richtext.DefaultFormat()); r.Width != 4 || r.Height != 1 {
		t.Errorf("expected identity metrics, have %v", r)
	}
}
