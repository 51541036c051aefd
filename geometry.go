package richtext

import (
	"fmt"
	"math"
)

// Rect is a rectangle with its origin at the top left corner.
type Rect struct {
	X      float64 // left
	Y      float64 // top
	Width  float64
	Height float64
}

// R creates a rectangle from position and size.
func R(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Top returns the top edge Y coordinate
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the bottom edge Y coordinate
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Translate moves a rectangle by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Union returns the bounding box of r and other.
func (r Rect) Union(other Rect) Rect {
	left := math.Min(r.Left(), other.Left())
	top := math.Min(r.Top(), other.Top())
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Anchored returns a rectangle of r's size, placed within container such that
// the anchor point of both rectangles coincide.
func (r Rect) Anchored(container Rect, a Anchor) Rect {
	return Rect{
		X:      container.X + (container.Width-r.Width)*a.SX,
		Y:      container.Y + (container.Height-r.Height)*a.SY,
		Width:  r.Width,
		Height: r.Height,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// boundsOf returns the bounding box of all rects, or ok=false if there are none.
func boundsOf(rects []Rect) (bounds Rect, ok bool) {
	for i, r := range rects {
		if i == 0 {
			bounds = r
			continue
		}
		bounds = bounds.Union(r)
	}
	return bounds, len(rects) > 0
}

// Anchor is a reference point within a rectangle, given as fractions of the
// rectangle's width and height.
type Anchor struct {
	SX, SY float64
}

// Anchors for horizontal alignment of lines.
var (
	MiddleLeft   = Anchor{SX: 0, SY: 0.5}
	MiddleCenter = Anchor{SX: 0.5, SY: 0.5}
	MiddleRight  = Anchor{SX: 1, SY: 0.5}
)
