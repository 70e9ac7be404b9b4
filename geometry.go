package profile

import "math"

// Point is a location in the profile's coordinate space.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// NewSize creates a Size with the given dimensions.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// IsDegenerate returns true if either dimension is zero or negative.
// Degenerate reference sizes hide their accessory.
func (s Size) IsDegenerate() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Scale returns the size multiplied by f on both axes.
func (s Size) Scale(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// Rect represents a rectangle with float coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// MidX returns the horizontal center.
func (r Rect) MidX() float64 {
	return r.X + r.Width/2
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Inset returns a new Rect inset by the given Edges.
// Positive values shrink the rectangle; negative values expand it.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  r.Width - edges.Left - edges.Right,
		Height: r.Height - edges.Top - edges.Bottom,
	}
}

// Bounds returns the rect at the origin with the same size.
func (r Rect) Bounds() Rect {
	return Rect{Width: r.Width, Height: r.Height}
}

// Rounded returns the rect with every component rounded to the nearest integer.
func (r Rect) Rounded() Rect {
	return Rect{
		X:      math.Round(r.X),
		Y:      math.Round(r.Y),
		Width:  math.Round(r.Width),
		Height: math.Round(r.Height),
	}
}

// Edges represents inset values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// clamp01 pins v into [0, 1]. NaN collapses to 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp interpolates from a to b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Progress returns how far offset has travelled from start to end, clamped
// to [0, 1]. When end does not exceed start the result steps to 1 as soon
// as offset passes start.
func Progress(offset, start, end float64) float64 {
	if end <= start {
		if offset > start {
			return 1
		}
		return 0
	}
	return clamp01((offset - start) / (end - start))
}
