package geom

// Camera describes the view into the scene. OffsetX/OffsetY are the
// world-space coordinates of the screen origin (top-left pixel); Zoom is
// the world-to-screen scale factor.
type Camera struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64
}

// DefaultCamera returns a camera at the world origin with no zoom applied.
func DefaultCamera() Camera {
	return Camera{Zoom: 1}
}

// ClampZoom limits zoom to the [minZoom, maxZoom] range.
func ClampZoom(zoom, minZoom, maxZoom float64) float64 {
	if zoom < minZoom {
		return minZoom
	}
	if zoom > maxZoom {
		return maxZoom
	}
	return zoom
}

// ScreenToWorld converts a screen-space point to world space.
func (c Camera) ScreenToWorld(p Point) Point {
	return Point{
		X: c.OffsetX + p.X/c.Zoom,
		Y: c.OffsetY + p.Y/c.Zoom,
	}
}

// WorldToScreen converts a world-space point to screen space.
func (c Camera) WorldToScreen(p Point) Point {
	return Point{
		X: (p.X - c.OffsetX) * c.Zoom,
		Y: (p.Y - c.OffsetY) * c.Zoom,
	}
}

// Visible returns the world-space rectangle covered by a viewport of the
// given pixel size.
func (c Camera) Visible(viewport Size) Rect {
	return Rect{
		X:      c.OffsetX,
		Y:      c.OffsetY,
		Width:  viewport.Width / c.Zoom,
		Height: viewport.Height / c.Zoom,
	}
}

// ZoomAbout returns a camera zoomed to the clamped target zoom while
// keeping the world point currently under the given screen point visually
// stationary. It solves for the offset that preserves ScreenToWorld(screen)
// across the zoom change.
func (c Camera) ZoomAbout(screen Point, zoom, minZoom, maxZoom float64) Camera {
	next := ClampZoom(zoom, minZoom, maxZoom)
	return Camera{
		Zoom:    next,
		OffsetX: c.OffsetX + screen.X/c.Zoom - screen.X/next,
		OffsetY: c.OffsetY + screen.Y/c.Zoom - screen.Y/next,
	}
}

// CenteredOn returns a camera with the same zoom whose viewport of the
// given size is centered on the world point p.
func (c Camera) CenteredOn(p Point, viewport Size) Camera {
	return Camera{
		Zoom:    c.Zoom,
		OffsetX: p.X - viewport.Width/2/c.Zoom,
		OffsetY: p.Y - viewport.Height/2/c.Zoom,
	}
}
