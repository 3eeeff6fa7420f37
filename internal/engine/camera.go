package engine

import (
	"github.com/dshills/scenekit/internal/engine/geom"
	"github.com/dshills/scenekit/internal/engine/history"
)

// setCamera is the shared path for all camera motion. Camera changes are
// historically significant only when they happen inside an open batch
// (a gesture that also pans); standalone pans and zooms bypass history
// entirely so scrolling around never pollutes the undo stack.
func (st *Store) setCamera(next geom.Camera) {
	next.Zoom = geom.ClampZoom(next.Zoom, st.minZoom, st.maxZoom)
	before := st.scene.Camera()
	if next == before {
		return
	}
	if st.history.BatchOpen() {
		st.apply(history.CameraMove{Before: before, After: next}, history.Recording)
	} else {
		st.scene.SetCamera(next)
	}
	st.notify(EventCamera)
}

// SetCamera replaces the camera wholesale, clamping zoom into range.
func (st *Store) SetCamera(c geom.Camera) {
	st.setCamera(c)
}

// PanBy shifts the camera offset by a world-space delta.
func (st *Store) PanBy(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	c := st.scene.Camera()
	c.OffsetX += dx
	c.OffsetY += dy
	st.setCamera(c)
}

// ZoomTo sets the zoom level, clamped into the configured range, keeping
// the screen origin fixed.
func (st *Store) ZoomTo(zoom float64) {
	c := st.scene.Camera()
	c.Zoom = zoom
	st.setCamera(c)
}

// ZoomByAt multiplies the zoom by factor while keeping the world point
// under the given screen point visually stationary.
func (st *Store) ZoomByAt(screen geom.Point, factor float64) {
	c := st.scene.Camera()
	st.setCamera(c.ZoomAbout(screen, c.Zoom*factor, st.minZoom, st.maxZoom))
}

// recenterFor moves the camera so the geometry a replayed entry is about
// to put in place stays visible. If the implied bounding box already
// intersects the viewport nothing happens; otherwise the camera centers
// on the box at its current zoom. Runs before the entry is applied.
func (st *Store) recenterFor(box geom.Rect, ok bool) {
	if !ok {
		return
	}
	cam := st.scene.Camera()
	if box.Intersects(cam.Visible(st.viewport)) {
		return
	}
	st.scene.SetCamera(cam.CenteredOn(box.Center(), st.viewport))
	st.notify(EventCamera)
}
