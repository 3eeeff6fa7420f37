// Package geom provides the geometry primitives and camera math for the
// scene engine: points, rectangles, and the world/screen coordinate
// conversions every other component builds on. Everything here is a pure
// function over value types; the package holds no state.
package geom

// Point is a position in either world or screen space depending on context.
type Point struct {
	X float64
	Y float64
}

// Size is a width/height pair, typically the screen viewport in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle identified by its top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the x coordinate of the rectangle's center.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the y coordinate of the rectangle's center.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Center returns the rectangle's center point.
func (r Rect) Center() Point { return Point{X: r.CenterX(), Y: r.CenterY()} }

// Empty reports whether the rectangle has zero or negative area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Intersects reports whether r and o overlap. Touching edges count as
// an intersection so a shape exactly at the viewport border is treated
// as visible.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.Right() && o.X <= r.Right() &&
		r.Y <= o.Bottom() && o.Y <= r.Bottom()
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	right := max(r.Right(), o.Right())
	bottom := max(r.Bottom(), o.Bottom())
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}
