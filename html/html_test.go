package html

import (
	"image/color"
	"strings"
	"testing"

	"github.com/npillmayer/richtext"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

var red = color.RGBA{R: 0xff, A: 0xff}

func TestSingleSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	doc := parse(t, `<p>Hello</p>`)
	if len(doc.Paragraphs) != 1 || len(doc.Paragraphs[0].Lines) != 1 {
		t.Fatalf("expected 1 paragraph with 1 line, have %d paragraphs", len(doc.Paragraphs))
	}
	spans := doc.Paragraphs[0].Lines[0].Spans
	if len(spans) != 1 || spans[0].Text() != "Hello" {
		t.Fatalf("expected single span 'Hello', have %d spans", len(spans))
	}
	if !spans[0].Format.Equals(richtext.DefaultFormat()) {
		t.Errorf("expected span to have default format, has %v", spans[0].Format)
	}
	if doc.Source != `<p>Hello</p>` {
		t.Errorf("expected document to remember its source")
	}
}

func TestFormatInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	doc := parse(t, `<font color="red"><b>bold</b> plain</font>`)
	spans := doc.AllSpans()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, have %d", len(spans))
	}
	if spans[0].Text() != "bold" || spans[1].Text() != " plain" {
		t.Errorf("unexpected span texts %q, %q", spans[0].Text(), spans[1].Text())
	}
	for _, s := range spans {
		if s.Format.Color != red {
			t.Errorf("expected span %q to be red, is %v", s.Text(), s.Format.Color)
		}
	}
	spans[0].Format.Size = 72
	spans[0].Format.Color = color.RGBA{}
	if spans[1].Format.Size != 16 || spans[1].Format.Color != red {
		t.Errorf("changing one span's format changed another span's format")
	}
}

func TestSiblingIsolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	doc := parse(t, `<font color="red" size="30">a</font><font face="Go Mono">b</font>c`)
	spans := doc.AllSpans()
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, have %d", len(spans))
	}
	b := spans[1].Format
	if b.Color != richtext.DefaultColor || b.Size != 16 {
		t.Errorf("expected sibling not to inherit overrides, has %v", b)
	}
	if name, _ := richtext.FaceName(b.Face); name != "Go Mono" {
		t.Errorf("expected face 'Go Mono', have %v", b.Face)
	}
	if !spans[2].Format.Equals(richtext.DefaultFormat()) {
		t.Errorf("expected trailing text to have default format, has %v", spans[2].Format)
	}
}

func TestAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	doc := parse(t, `<span align="CENTER" size="20" letterSpacing="1.5" kerning="-2" foo="bar">x</span>`)
	f := doc.AllSpans()[0].Format
	if f.Align != richtext.AlignCenter || f.Size != 20 || f.LetterSpacing != 1.5 || f.Kerning != -2 {
		t.Errorf("attributes not applied: %v", f)
	}
	doc = parse(t, `<span align="middle" size="big" kerning="1.5">x</span>`)
	if f := doc.AllSpans()[0].Format; !f.Equals(richtext.DefaultFormat()) {
		t.Errorf("expected unparsable attributes to be ignored, have %v", f)
	}
	doc = parse(t, `<span align="justified">x</span>`)
	if f := doc.AllSpans()[0].Format; f.Align != richtext.AlignJustified {
		t.Errorf("expected justified alignment to be recognized, have %v", f.Align)
	}
}

func TestColorFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	doc := parse(t, `<font color="red"><b color="no-such-color">x</b><i>y</i><u color="#00f">z</u></font>`)
	spans := doc.AllSpans()
	if spans[0].Format.Color != richtext.DefaultColor {
		t.Errorf("expected unresolvable color to fall back to white, is %v", spans[0].Format.Color)
	}
	if spans[1].Format.Color != red {
		t.Errorf("expected absent color to be inherited, is %v", spans[1].Format.Color)
	}
	if spans[2].Format.Color != (color.RGBA{B: 0xff, A: 0xff}) {
		t.Errorf("expected hex color to be resolved, is %v", spans[2].Format.Color)
	}
	brand := color.RGBA{R: 1, G: 2, B: 3, A: 0xff}
	p := NewParser(WithColors(richtext.ColorMap{"brand": brand}))
	doc, _ = p.Parse(`<font color="brand">x</font>`)
	if c := doc.AllSpans()[0].Format.Color; c != brand {
		t.Errorf("expected custom color table to be used, color is %v", c)
	}
}

func TestBlockFlushGuard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	doc := parse(t, `<p></p><p>Text</p>`)
	if len(doc.Paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, have %d", len(doc.Paragraphs))
	}
	if s := doc.Paragraphs[0].Lines[0].Spans[0]; s.Text() != "Text" {
		t.Errorf("expected paragraph to contain 'Text', has %q", s.Text())
	}
	doc = parse(t, `<div><p>one</p><div></div><p>two</p></div>tail`)
	if len(doc.Paragraphs) != 3 {
		t.Errorf("expected 3 paragraphs, have %d", len(doc.Paragraphs))
	}
	for _, para := range doc.Paragraphs {
		if len(para.Lines) != 1 || para.Lines[0].IsEmpty() {
			t.Errorf("expected every paragraph to hold exactly one non-empty line")
		}
	}
	if doc.Text() != "onetwotail" {
		t.Errorf("expected text 'onetwotail', have %q", doc.Text())
	}
}

func TestLineBreaksAndComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	doc := parse(t, `<p align="right">one<!-- note --><br>two<br><br></p>`)
	if len(doc.Paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, have %d", len(doc.Paragraphs))
	}
	lines := doc.Paragraphs[0].Lines
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, have %d", len(lines))
	}
	if lines[0].Spans[0].Text() != "one" || lines[1].Spans[0].Text() != "two" {
		t.Errorf("unexpected line contents")
	}
	if lines[1].Format.Align != richtext.AlignRight {
		t.Errorf("expected line format to be taken from its first span")
	}
}

func TestBaseFormatAndBlockTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	base := richtext.DefaultFormat()
	base.Size = 10
	p := NewParser(WithBaseFormat(base), WithBlockTags("H1"))
	doc, err := p.Parse(`<h1>Title</h1>body`)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Paragraphs) != 2 {
		t.Errorf("expected custom block tag to end a paragraph, have %d paragraphs", len(doc.Paragraphs))
	}
	if doc.FirstFormat().Size != 10 {
		t.Errorf("expected base format to be used, is %v", doc.FirstFormat())
	}
	doc, _ = p.Parse(`again`) // parser is re-usable
	if len(doc.Paragraphs) != 1 || doc.Text() != "again" {
		t.Errorf("expected fresh document for second parse")
	}
}

func TestParseNodesAndReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	markup := `<!DOCTYPE html><html><body><p>My <b>first</b> paragraph.</p></body></html>`
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	doc := NewParser().ParseNodes(markup, root)
	if doc.Text() != "My first paragraph." {
		t.Errorf("unexpected text %q", doc.Text())
	}
	doc, err = NewParser().ParseReader(strings.NewReader(`<p>a</p><p>b</p>`))
	if err != nil || len(doc.Paragraphs) != 2 {
		t.Errorf("expected 2 paragraphs from reader")
	}
	if _, err = NewParser().ParseReader(nil); err == nil {
		t.Errorf("expected error for nil reader")
	}
}

func TestParseAndPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	doc := parse(t, `<p align="center">ab<font color="blue">cde</font></p><p>xyz</p>`)
	if err := doc.Position(richtext.IdentityMetrics{}, richtext.R(0, 4, 21, 10)); err != nil {
		t.Fatal(err)
	}
	line := doc.Paragraphs[0].Lines[0]
	if line.Bounds.X != 8 {
		t.Errorf("expected centered line at x=(21-5)/2=8, is %v", line.Bounds)
	}
	if line.Spans[1].Bounds.X != 10 {
		t.Errorf("expected second span to follow first one, is at %v", line.Spans[1].Bounds)
	}
	second := doc.Paragraphs[1]
	if second.Bounds.Top() != 5 || second.Bounds.X != 0 {
		t.Errorf("expected second paragraph below first one, is at %v", second.Bounds)
	}
	if doc.Bounds != richtext.R(0, 4, 13, 2) {
		t.Errorf("unexpected document bounds %v", doc.Bounds)
	}
}

// --- Test Helpers ----------------------------------------------------------

func parse(t *testing.T, markup string) *richtext.Document {
	doc, err := Parse(markup)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", markup, err)
	}
	return doc
}
