package scene

import "github.com/dshills/scenekit/internal/engine/geom"

// Corners holds per-corner radii. A uniform radius is expressed as four
// equal values; Uniform constructs that case.
type Corners struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// Uniform returns a Corners value with the same radius on all corners.
func Uniform(r float64) Corners {
	return Corners{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// IsUniform reports whether all four corners share one radius.
func (c Corners) IsUniform() bool {
	return c.TopLeft == c.TopRight && c.TopRight == c.BottomRight && c.BottomRight == c.BottomLeft
}

// IsZero reports whether no corner is rounded.
func (c Corners) IsZero() bool {
	return c == Corners{}
}

// Node is a rectangular entity on the canvas. ParentID is a logical-only
// link to another node; an empty string means no parent. Positions are
// world-space absolute regardless of parentage.
type Node struct {
	ID           string
	X            float64
	Y            float64
	Width        float64
	Height       float64
	Rotation     float64 // degrees
	CornerRadius Corners
	ParentID     string
}

// Bounds returns the node's axis-aligned bounding rectangle. Rotation is
// ignored; alignment and visibility checks operate on the unrotated box.
func (n Node) Bounds() geom.Rect {
	return geom.Rect{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// Patch is a field mask for node updates. Nil fields are left unchanged.
type Patch struct {
	X            *float64
	Y            *float64
	Width        *float64
	Height       *float64
	Rotation     *float64
	CornerRadius *Corners
	ParentID     *string
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.X == nil && p.Y == nil && p.Width == nil && p.Height == nil &&
		p.Rotation == nil && p.CornerRadius == nil && p.ParentID == nil
}

// Patched returns a copy of the node with the patch applied.
func (n Node) Patched(p Patch) Node {
	out := n
	if p.X != nil {
		out.X = *p.X
	}
	if p.Y != nil {
		out.Y = *p.Y
	}
	if p.Width != nil {
		out.Width = *p.Width
	}
	if p.Height != nil {
		out.Height = *p.Height
	}
	if p.Rotation != nil {
		out.Rotation = *p.Rotation
	}
	if p.CornerRadius != nil {
		out.CornerRadius = *p.CornerRadius
	}
	if p.ParentID != nil {
		out.ParentID = *p.ParentID
	}
	return out
}

// Float64 returns a pointer to v, for building Patch literals.
func Float64(v float64) *float64 { return &v }

// String returns a pointer to s, for building Patch literals.
func String(s string) *string { return &s }

// CornersPtr returns a pointer to c, for building Patch literals.
func CornersPtr(c Corners) *Corners { return &c }
