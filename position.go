package richtext

// positionContext carries the placement cursor through a positioning pass.
type positionContext struct {
	provider  MetricsProvider
	container Rect
	x, y      float64
}

// Position computes the bounds of every node of a document, placing it
// within container. See Document.Position.
func Position(doc *Document, provider MetricsProvider, container Rect) error {
	return doc.Position(provider, container)
}

// Position computes the bounds of every span, line and paragraph, and of the
// document itself, placing the document's content within container.
//
// Spans are measured by provider and placed from left to right. Each line is
// then realigned horizontally according to the anchor of its format, while
// keeping its vertical position. Lines and paragraphs stack downwards from the
// top of the container. Content overflowing the container is not wrapped.
//
// Position is idempotent: calling it again with unchanged arguments yields
// identical bounds. A degenerate container yields degenerate bounds, which is
// not an error.
func (doc *Document) Position(provider MetricsProvider, container Rect) error {
	if doc == nil {
		return ErrIllegalArguments
	}
	if provider == nil {
		tracer().Errorf("richtext: cannot position document without metrics provider")
		return ErrNoMetricsProvider
	}
	ctx := &positionContext{
		provider:  provider,
		container: container,
		x:         container.X,
		y:         container.Y,
	}
	rects := make([]Rect, len(doc.Paragraphs))
	for i, para := range doc.Paragraphs {
		para.position(ctx)
		rects[i] = para.Bounds
	}
	var ok bool
	if doc.Bounds, ok = boundsOf(rects); !ok {
		doc.Bounds = Rect{X: container.X, Y: container.Y}
	}
	tracer().Debugf("document bounds = %v", doc.Bounds)
	return nil
}

func (p *Paragraph) position(ctx *positionContext) {
	rects := make([]Rect, len(p.Lines))
	for i, line := range p.Lines {
		line.position(ctx)
		rects[i] = line.Bounds
	}
	var ok bool
	if p.Bounds, ok = boundsOf(rects); !ok {
		p.Bounds = Rect{X: ctx.x, Y: ctx.y}
	}
	ctx.x = p.Bounds.Left()
	ctx.y = p.Bounds.Bottom()
}

func (l *Line) position(ctx *positionContext) {
	ctx.x = ctx.container.X
	rects := make([]Rect, len(l.Spans))
	for i, span := range l.Spans {
		// TODO reposition spans overflowing the container width
		span.position(ctx)
		rects[i] = span.Bounds
	}
	bounds, ok := boundsOf(rects)
	if !ok {
		bounds = Rect{X: ctx.x, Y: ctx.y}
	}
	// alignment moves the line horizontally only
	y := bounds.Y
	bounds = bounds.Anchored(ctx.container, l.Format.Align.Anchor())
	bounds.Y = y
	l.Bounds = bounds
	// re-flow spans from the anchored left edge
	x := bounds.X
	for _, span := range l.Spans {
		span.Bounds.X = x
		x += span.Bounds.Width
	}
	tracer().Debugf("line %v aligned %s, %d spans", l.Bounds, l.Format.Align, len(l.Spans))
	ctx.x = ctx.container.X
	ctx.y += bounds.Height
}

func (s *Span) position(ctx *positionContext) {
	s.Bounds = ctx.provider.Measure(s.text, s.Format).Translate(ctx.x, ctx.y)
	ctx.x += s.Bounds.Width
}
