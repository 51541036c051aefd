package html

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/richtext"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parser creates rich text documents from markup.
//
// A parser may be used for more than one document, but not concurrently.
type Parser struct {
	base   richtext.Format
	colors richtext.ColorTable
	blocks map[string]bool
	doc    *richtext.Document
	para   *richtext.Paragraph
	line   *richtext.Line
}

// Option configures a parser.
type Option func(*Parser)

// WithBaseFormat sets the format in effect at the root of the markup.
// The default is richtext.DefaultFormat().
func WithBaseFormat(f richtext.Format) Option {
	return func(p *Parser) {
		p.base = f
	}
}

// WithColors sets the color table for resolving color attributes.
// The default is richtext.NamedColors.
func WithColors(table richtext.ColorTable) Option {
	return func(p *Parser) {
		if table != nil {
			p.colors = table
		}
	}
}

// WithBlockTags adds tag names to the set of block elements (p and div).
func WithBlockTags(tags ...string) Option {
	return func(p *Parser) {
		for _, tag := range tags {
			p.blocks[strings.ToLower(tag)] = true
		}
	}
}

// NewParser creates a markup parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		base:   richtext.DefaultFormat(),
		colors: richtext.NamedColors,
		blocks: map[string]bool{"p": true, "div": true},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse creates a document from markup, using a default parser.
func Parse(markup string) (*richtext.Document, error) {
	return NewParser().Parse(markup)
}

// Parse creates a document from markup.
func (p *Parser) Parse(markup string) (*richtext.Document, error) {
	nodes, err := html.ParseFragment(strings.NewReader(markup), bodyContext())
	if err != nil {
		tracer().Errorf("richtext markup: %v", err)
		return nil, fmt.Errorf("richtext markup cannot be tokenized: %w", err)
	}
	return p.ParseNodes(markup, nodes...), nil
}

// ParseReader creates a document from markup read from r.
func (p *Parser) ParseReader(r io.Reader) (*richtext.Document, error) {
	if r == nil {
		return nil, richtext.ErrIllegalArguments
	}
	markup, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("richtext markup cannot be read: %w", err)
	}
	return p.Parse(string(markup))
}

// ParseNodes creates a document from an already built node tree. source is
// stored with the document as its markup source.
func (p *Parser) ParseNodes(source string, nodes ...*html.Node) *richtext.Document {
	p.doc = &richtext.Document{Source: source}
	p.para = &richtext.Paragraph{}
	p.line = &richtext.Line{}
	for _, n := range nodes {
		p.parse(n, p.base)
	}
	p.endOfParagraph() // trailing inline content
	doc := p.doc
	p.doc, p.para, p.line = nil, nil, nil
	tracer().Debugf("richtext markup: %d paragraphs", len(doc.Paragraphs))
	return doc
}

// parse receives its own copy of the inherited format. Changes to it are
// visible to n's subtree only.
func (p *Parser) parse(n *html.Node, format richtext.Format) {
	switch n.Type {
	case html.TextNode:
		p.emitText(n.Data, format)
	case html.CommentNode, html.DoctypeNode:
		// ignored
	case html.DocumentNode:
		p.parseChildren(n, format)
	case html.ElementNode:
		block := p.isBlock(n)
		format = p.deriveFormat(n, format)
		tracer().Debugf("<%s> block=%v format=%v", n.Data, block, format)
		p.parseChildren(n, format)
		if isLineBreak(n) {
			p.endOfLine()
		}
		if block {
			p.endOfParagraph()
		}
	}
}

func (p *Parser) parseChildren(n *html.Node, format richtext.Format) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.CommentNode {
			continue
		}
		p.parse(c, format)
	}
}

// deriveFormat overrides attributes of format which are explicitly set for
// element n.
func (p *Parser) deriveFormat(n *html.Node, format richtext.Format) richtext.Format {
	for _, a := range n.Attr {
		val := strings.TrimSpace(a.Val)
		switch strings.ToLower(a.Key) {
		case "align":
			if align, ok := richtext.ParseAlignment(val); ok {
				format.Align = align
			}
		case "face":
			format.Face = richtext.NamedFace{Name: val}
		case "size":
			if size, err := strconv.Atoi(val); err == nil {
				format.Size = size
			}
		case "letterspacing":
			if ls, err := strconv.ParseFloat(val, 64); err == nil {
				format.LetterSpacing = ls
			}
		case "kerning":
			if k, err := strconv.Atoi(val); err == nil {
				format.Kerning = k
			}
		case "color":
			format.Color = richtext.ResolveColor(p.colors, val)
		default:
			tracer().Debugf("<%s>: ignoring attribute %q", n.Data, a.Key)
		}
	}
	return format
}

func (p *Parser) emitText(text string, format richtext.Format) {
	tracer().Debugf("text = %q", text)
	p.line.AddText(text, format)
}

// endOfLine appends the current line to the current paragraph, unless it is
// empty.
func (p *Parser) endOfLine() {
	if p.line.IsEmpty() {
		return
	}
	p.para.Lines = append(p.para.Lines, p.line)
	p.line = &richtext.Line{}
}

// endOfParagraph appends the current line and paragraph to the document, each
// one only if it is non-empty.
func (p *Parser) endOfParagraph() {
	p.endOfLine()
	if len(p.para.Lines) == 0 {
		return
	}
	p.doc.Paragraphs = append(p.doc.Paragraphs, p.para)
	p.para = &richtext.Paragraph{}
}

func (p *Parser) isBlock(n *html.Node) bool {
	return p.blocks[strings.ToLower(n.Data)]
}

func isLineBreak(n *html.Node) bool {
	return n.DataAtom == atom.Br
}

func bodyContext() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
}
