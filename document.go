package richtext

import (
	"iter"
	"strings"
)

// --- Span ------------------------------------------------------------------

// Span is a run of text sharing one formatting snapshot.
//
// Extra is extension space for clients. It is never read or written by this
// module.
type Span struct {
	text   string
	Format Format // snapshot of the format in effect when the span was created
	Bounds Rect   // valid after positioning
	Extra  map[string]any
}

// NewSpan creates a span for a text, holding a copy of format.
func NewSpan(text string, format Format) *Span {
	return &Span{text: text, Format: format}
}

// Text returns the text of the span.
func (s *Span) Text() string {
	return s.text
}

// IsEmpty is true if the span holds no text.
func (s *Span) IsEmpty() bool {
	return s.text == ""
}

// --- Line ------------------------------------------------------------------

// Line is an ordered sequence of spans rendered on one horizontal baseline.
// Format is the format of the line's first span and is used for line-level
// decisions (alignment).
type Line struct {
	Spans  []*Span
	Format Format
	Bounds Rect
	Extra  map[string]any
}

// AddText appends a span for text to the line. If it is the first span of
// the line, the line's format is set to the span's format.
func (l *Line) AddText(text string, format Format) *Span {
	if len(l.Spans) == 0 {
		l.Format = format
	}
	span := NewSpan(text, format)
	l.Spans = append(l.Spans, span)
	return span
}

// IsEmpty is true if the line has no spans.
func (l *Line) IsEmpty() bool {
	return len(l.Spans) == 0
}

// FirstNonEmptySpan returns the first span holding text, or nil.
func (l *Line) FirstNonEmptySpan() *Span {
	for _, s := range l.Spans {
		if !s.IsEmpty() {
			return s
		}
	}
	return nil
}

// --- Paragraph -------------------------------------------------------------

// Paragraph is an ordered sequence of lines, produced between block
// boundaries.
type Paragraph struct {
	Lines  []*Line
	Bounds Rect
	Extra  map[string]any
}

// FirstNonEmptyLine returns the first line holding a non-empty span, or nil.
func (p *Paragraph) FirstNonEmptyLine() *Line {
	for _, l := range p.Lines {
		if l.FirstNonEmptySpan() != nil {
			return l
		}
	}
	return nil
}

// --- Document --------------------------------------------------------------

// Document is the tree of paragraphs produced from one markup parse.
// Source holds the markup the document has been created from.
type Document struct {
	Paragraphs []*Paragraph
	Source     string
	Bounds     Rect
	Extra      map[string]any
}

// FirstNonEmptySpan returns the first span of the document holding text,
// or nil.
func (doc *Document) FirstNonEmptySpan() *Span {
	for _, p := range doc.Paragraphs {
		if l := p.FirstNonEmptyLine(); l != nil {
			return l.FirstNonEmptySpan()
		}
	}
	return nil
}

// FirstFormat returns the format of the first non-empty span, or the default
// format for documents without text.
func (doc *Document) FirstFormat() Format {
	if s := doc.FirstNonEmptySpan(); s != nil {
		return s.Format
	}
	return DefaultFormat()
}

// Spans iterates over all spans of the document in document order.
func (doc *Document) Spans() iter.Seq[*Span] {
	return func(yield func(*Span) bool) {
		for _, p := range doc.Paragraphs {
			for _, l := range p.Lines {
				for _, s := range l.Spans {
					if !yield(s) {
						return
					}
				}
			}
		}
	}
}

// AllSpans returns all spans of the document in document order.
func (doc *Document) AllSpans() []*Span {
	var spans []*Span
	for s := range doc.Spans() {
		spans = append(spans, s)
	}
	return spans
}

// Text returns the textual content of the document, without leading or
// trailing white space.
func (doc *Document) Text() string {
	var b strings.Builder
	for s := range doc.Spans() {
		b.WriteString(s.text)
	}
	return strings.TrimSpace(b.String())
}
