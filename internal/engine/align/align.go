// Package align computes axis-aligned snap corrections during a live
// drag gesture. For each axis it scans candidate targets (edges and
// centers of non-moving nodes, plus guides) within tolerance, locks onto
// the nearest one whose correction agrees with the motion direction, and
// holds the lock until the motion reverses past a half-tolerance
// deadband. The hysteresis prevents visible jitter when the cursor
// hovers exactly at a snap boundary.
package align

import (
	"math"

	"github.com/dshills/scenekit/internal/engine/geom"
	"github.com/dshills/scenekit/internal/engine/scene"
)

// Kind classifies what a snap target aligns to.
type Kind string

// Snap target kinds.
const (
	KindEdge   Kind = "edge"
	KindCenter Kind = "center"
)

// Candidate is one proposed snap target value on a single axis.
type Candidate struct {
	Value    float64
	Kind     Kind
	TargetID string
}

// Guide is an ephemeral alignment-guide descriptor emitted for UI
// feedback while a snap lock is engaged.
type Guide struct {
	Axis     scene.Axis
	Value    float64
	Kind     Kind
	TargetID string
}

// reference edges of the moving bounding box a lock can attach to.
const (
	refMin = iota
	refCenter
	refMax
)

type axisLock struct {
	engaged bool
	target  Candidate
	ref     int
}

// Engine holds the per-axis snap locks and the ephemeral guide state for
// the current gesture. It is active only between Begin and End, which
// the store ties to the history batch lifecycle.
type Engine struct {
	enabled     bool
	tolerancePx float64

	active bool
	locks  [2]axisLock // 0 = x, 1 = y

	guides []Guide
	offset geom.Point
}

// New creates a snap engine with the given screen-pixel tolerance.
func New(tolerancePx float64) *Engine {
	return &Engine{enabled: true, tolerancePx: tolerancePx}
}

// SetEnabled toggles snapping globally. Disabling mid-gesture drops any
// engaged locks.
func (e *Engine) SetEnabled(on bool) {
	e.enabled = on
	if !on {
		e.reset()
	}
}

// Enabled reports whether snapping is globally enabled.
func (e *Engine) Enabled() bool { return e.enabled }

// SetTolerance changes the screen-pixel snap tolerance.
func (e *Engine) SetTolerance(px float64) { e.tolerancePx = px }

// Begin arms the engine for a new gesture.
func (e *Engine) Begin() {
	e.active = true
	e.reset()
}

// End clears all ephemeral snap state at the end of a gesture.
func (e *Engine) End() {
	e.active = false
	e.reset()
}

func (e *Engine) reset() {
	e.locks = [2]axisLock{}
	e.guides = nil
	e.offset = geom.Point{}
}

// Guides returns the ephemeral alignment guides for the current gesture.
func (e *Engine) Guides() []Guide {
	out := make([]Guide, len(e.guides))
	copy(out, e.guides)
	return out
}

// Offset returns the correction currently applied by engaged locks.
func (e *Engine) Offset() geom.Point { return e.offset }

// Adjust takes the moving selection's bounding box (at its current,
// pre-step position), the raw drag delta for this step, and the per-axis
// candidate targets, and returns the delta to actually apply. Tolerance
// is interpreted in screen pixels and divided by zoom. When the engine
// is inactive or disabled the raw delta passes through unchanged.
func (e *Engine) Adjust(moving geom.Rect, dx, dy float64, xs, ys []Candidate, zoom float64) (float64, float64) {
	if !e.active || !e.enabled || zoom <= 0 {
		return dx, dy
	}
	tol := e.tolerancePx / zoom

	e.guides = e.guides[:0]

	adjX, guideX := e.adjustAxis(0, scene.AxisX, refs(moving.X, moving.CenterX(), moving.Right()), dx, xs, tol)
	adjY, guideY := e.adjustAxis(1, scene.AxisY, refs(moving.Y, moving.CenterY(), moving.Bottom()), dy, ys, tol)

	if guideX != nil {
		e.guides = append(e.guides, *guideX)
	}
	if guideY != nil {
		e.guides = append(e.guides, *guideY)
	}
	e.offset = geom.Point{X: adjX - dx, Y: adjY - dy}
	return adjX, adjY
}

func refs(lo, mid, hi float64) [3]float64 {
	return [3]float64{lo, mid, hi}
}

// adjustAxis runs the hysteresis state machine for one axis. The moving
// reference values are the pre-step positions; the raw delta is added
// before comparing against targets so the lock tracks the cursor, not
// the snapped shape.
func (e *Engine) adjustAxis(axis int, name scene.Axis, moving [3]float64, delta float64, cands []Candidate, tol float64) (float64, *Guide) {
	lock := &e.locks[axis]

	if lock.engaged {
		corr := lock.target.Value - (moving[lock.ref] + delta)
		// Release when the user drags away past the deadband; direction
		// reversal shows up as a correction opposing the motion.
		if math.Abs(corr) > tol/2 && delta != 0 && sign(corr) != sign(delta) {
			lock.engaged = false
		} else if math.Abs(corr) > tol {
			lock.engaged = false
		} else {
			return delta + corr, &Guide{Axis: name, Value: lock.target.Value, Kind: lock.target.Kind, TargetID: lock.target.TargetID}
		}
	}

	if delta == 0 {
		return delta, nil
	}

	best := -1
	bestCorr := 0.0
	bestRef := 0
	for i, cand := range cands {
		for ref := refMin; ref <= refMax; ref++ {
			corr := cand.Value - (moving[ref] + delta)
			if math.Abs(corr) > tol {
				continue
			}
			// Only engage when the snap pulls in the direction the user
			// is already moving.
			if corr != 0 && sign(corr) != sign(delta) {
				continue
			}
			if best < 0 || math.Abs(corr) < math.Abs(bestCorr) {
				best = i
				bestCorr = corr
				bestRef = ref
			}
		}
	}
	if best < 0 {
		return delta, nil
	}

	lock.engaged = true
	lock.target = cands[best]
	lock.ref = bestRef
	return delta + bestCorr, &Guide{Axis: name, Value: lock.target.Value, Kind: lock.target.Kind, TargetID: lock.target.TargetID}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
