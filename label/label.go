/*
Package label implements a rich text label for host applications.

A label owns a piece of markup, a container rectangle and a metrics provider.
Whenever the markup or the container changes, the label parses the markup
into a fresh document and positions it. Finished documents are broadcast to
all subscribers, which will usually re-render them.

	lbl, _ := label.New(richtext.IdentityMetrics{}, richtext.R(0, 0, 40, 10))
	docs, _ := lbl.Subscribe(ctx)
	lbl.SetText(`<p align="center">Hello <font color="red">World</font></p>`)
	doc := <-docs

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package label

import (
	"context"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/richtext"
	"github.com/npillmayer/richtext/html"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}

// Label is a rich text label. It is safe for concurrent use.
type Label struct {
	mu        sync.Mutex
	parser    *html.Parser
	provider  richtext.MetricsProvider
	markup    string
	container richtext.Rect
	doc       *richtext.Document
	cast      *caster.Caster // broadcaster for finished documents
	closed    bool
}

// New creates an empty label. Options are handed to the markup parser.
func New(provider richtext.MetricsProvider, container richtext.Rect, opts ...html.Option) (*Label, error) {
	if provider == nil {
		return nil, richtext.ErrNoMetricsProvider
	}
	l := &Label{
		parser:    html.NewParser(opts...),
		provider:  provider,
		container: container,
		doc:       &richtext.Document{Bounds: richtext.Rect{X: container.X, Y: container.Y}},
		cast:      caster.New(nil),
	}
	return l, nil
}

// SetText replaces the markup of the label and re-does the layout.
// If the markup cannot be parsed, the label is left unchanged.
func (l *Label) SetText(markup string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	doc, err := l.layout(markup, l.container)
	if err != nil {
		return err
	}
	l.markup = markup
	l.publish(doc)
	return nil
}

// SetBounds moves or resizes the container of the label and re-does the layout.
func (l *Label) SetBounds(container richtext.Rect) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	doc, err := l.layout(l.markup, container)
	if err != nil {
		return err
	}
	l.container = container
	l.publish(doc)
	return nil
}

// Text returns the markup of the label.
func (l *Label) Text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.markup
}

// Bounds returns the container of the label.
func (l *Label) Bounds() richtext.Rect {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.container
}

// Document returns the most recently positioned document. Clients must not
// modify it.
func (l *Label) Document() *richtext.Document {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.doc
}

// Subscribe returns a channel of positioned documents, one for every change
// of the label. The channel is closed when ctx is done or the label is closed.
// Subscribe returns false if the label has already been closed.
//
// Subscribers which do not keep up miss intermediate documents. They never
// block the label.
func (l *Label) Subscribe(ctx context.Context) (<-chan *richtext.Document, bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil, false
	}
	sub, _ := l.cast.Sub(ctx, 4)
	docs := make(chan *richtext.Document, 4)
	go func() {
		defer close(docs)
		for {
			select {
			case msg, ok := <-sub:
				if !ok {
					return
				}
				doc, ok := msg.(*richtext.Document)
				if !ok {
					continue
				}
				select {
				case docs <- doc:
				case <-ctx.Done():
					return
				case <-l.cast.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return docs, true
}

// Close stops broadcasting and closes all subscriber channels.
func (l *Label) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	l.cast.Close()
}

// layout runs a complete parse and positioning pass. Every pass creates a
// fresh document, so documents handed out earlier remain valid.
func (l *Label) layout(markup string, container richtext.Rect) (*richtext.Document, error) {
	doc, err := l.parser.Parse(markup)
	if err != nil {
		tracer().Errorf("label: %v", err)
		return nil, err
	}
	if err = doc.Position(l.provider, container); err != nil {
		return nil, err
	}
	tracer().Debugf("label: laid out %q in %v", doc.Text(), doc.Bounds)
	return doc, nil
}

func (l *Label) publish(doc *richtext.Document) {
	l.doc = doc
	if l.closed {
		return
	}
	if !l.cast.TryPub(doc) {
		tracer().Debugf("label: closed, document not published")
	}
}
