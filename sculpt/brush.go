// Copyright 2025 Sculptkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sculpt

import (
	"log/slog"

	"github.com/sculptkit/core/math32"
)

// Mode is the brush mode, determining the per-vertex transform a stroke
// applies.
type Mode int32

const (
	// Sculpt moves vertices along the stroke surface normal,
	// outward by default, inward when negative.
	Sculpt Mode = iota

	// Smooth relaxes each vertex toward the centroid of its adjacency
	// neighbors, one relaxation step per apply call. Negative roughens,
	// moving away from the centroid.
	Smooth

	// Flatten blends vertices toward the plane through the stroke point
	// and normal. Negative inflates away from the plane.
	Flatten

	// Drag moves a selection captured at gesture start along with per-frame
	// pointer deltas. Drag uses [Brush.StartDrag], not [Brush.StartStroke].
	Drag

	// Paint blends vertex colors toward the brush tint.
	// Negative blends toward white, erasing paint.
	Paint

	// Crease pinches vertices toward the stroke center while carving a
	// shallow groove along the normal. Negative raises a ridge instead.
	Crease
)

var modeNames = []string{"sculpt", "smooth", "flatten", "drag", "paint", "crease"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "invalid"
	}
	return modeNames[m]
}

// Phase is the gesture phase of a [Brush].
type Phase int32

const (
	// Idle accepts a new stroke or drag; it is the phase between gestures.
	Idle Phase = iota

	// Stroking is a discrete-mode stroke in progress.
	Stroking

	// Dragging is a continuous drag gesture in progress.
	Dragging
)

// Configuration limits enforced by the clamping setters.
const (
	// MinRadius is the smallest accepted brush radius; a degenerate radius
	// would select nothing or divide by zero in the falloff.
	MinRadius = 1.0e-4

	// MinIntensity is the smallest accepted brush intensity.
	MinIntensity = 1.0e-3
)

// Per-mode strength constants. Sculpt displaces by intensity·falloff·
// sculptStrength along the normal; crease composes a tangential pinch of
// intensity·falloff·creasePinch with a normal displacement of
// intensity·falloff·creaseDepth.
const (
	sculptStrength = 0.05
	creasePinch    = 0.3
	creaseDepth    = 0.02
)

// Brush is the stroke engine: a long-lived controller that applies
// mode-specific per-vertex transforms to its [Mesh], records touched
// vertices into its [History], and hands out explicit stroke handles.
//
// Configuration fields are mutated between strokes, either directly or
// through the clamping setters; changing them mid-stroke is host error.
// The zero radius/intensity of a zero-value Brush are invalid, so use
// [NewBrush] or the setters.
//
// Exactly one stroke or drag may be open at a time. The engine does not
// check this at runtime: opening a second gesture while one is active is a
// host-discipline violation with undefined results.
type Brush struct {

	// Mesh is the surface being sculpted.
	Mesh *Mesh

	// History records sparse per-stroke snapshots for undo/redo.
	History *History

	// Mode selects the per-vertex transform.
	Mode Mode

	// Radius is the brush radius in mesh units; must be positive.
	Radius float32

	// Intensity scales the strength of every transform, in (0, 1].
	Intensity float32

	// Tint is the RGB color applied by [Paint] mode.
	Tint math32.Vector3

	// Negative inverts the direction or sense of the transform; see the
	// [Mode] constants for the per-mode meaning.
	Negative bool

	// Symmetry mirrors every stroke across the plane through x = 0.
	Symmetry bool

	phase Phase
}

// NewBrush returns a brush for the given mesh with the default
// configuration (sculpt mode, radius 0.3, intensity 0.5, red tint).
// A nil mesh gets the default unit sphere from [NewSphereMesh].
func NewBrush(ms *Mesh) *Brush {
	if ms == nil {
		ms = NewSphereMesh()
	}
	return &Brush{
		Mesh:      ms,
		History:   NewHistory(ms),
		Mode:      Sculpt,
		Radius:    0.3,
		Intensity: 0.5,
		Tint:      math32.Vec3(1, 0, 0),
	}
}

// Reset replaces the mesh (nil for the default unit sphere) and discards
// the undo/redo history along with it.
func (br *Brush) Reset(ms *Mesh) {
	if ms == nil {
		ms = NewSphereMesh()
	}
	br.Mesh = ms
	br.History = NewHistory(ms)
	br.phase = Idle
}

// Phase returns the current gesture phase.
func (br *Brush) Phase() Phase {
	return br.phase
}

// SetMode sets the brush mode.
func (br *Brush) SetMode(m Mode) *Brush {
	br.Mode = m
	return br
}

// SetRadius sets the brush radius, clamping non-positive values to
// [MinRadius] with a warning: the engine never sculpts with a degenerate
// radius.
func (br *Brush) SetRadius(r float32) *Brush {
	if r <= 0 || math32.IsNaN(r) {
		slog.Warn("sculpt: invalid brush radius, clamping", "radius", r, "min", MinRadius)
		r = MinRadius
	}
	br.Radius = r
	return br
}

// SetIntensity sets the brush intensity, clamping values outside (0, 1]
// to [MinIntensity, 1] with a warning.
func (br *Brush) SetIntensity(i float32) *Brush {
	if i <= 0 || i > 1 || math32.IsNaN(i) {
		cl := math32.Clamp(i, MinIntensity, 1)
		if math32.IsNaN(i) {
			cl = MinIntensity
		}
		slog.Warn("sculpt: invalid brush intensity, clamping", "intensity", i, "clamped", cl)
		i = cl
	}
	br.Intensity = i
	return br
}

// SetTint sets the paint tint.
func (br *Brush) SetTint(tint math32.Vector3) *Brush {
	br.Tint = tint
	return br
}

// SetNegative sets the negative flag.
func (br *Brush) SetNegative(neg bool) *Brush {
	br.Negative = neg
	return br
}

// SetSymmetry sets the symmetry flag.
func (br *Brush) SetSymmetry(sym bool) *Brush {
	br.Symmetry = sym
	return br
}

// sign returns the direction multiplier for the negative flag.
func (br *Brush) sign() float32 {
	if br.Negative {
		return -1
	}
	return 1
}

// Stroke is the handle for one open stroke: a bounded interaction owning at
// most one history snapshot. Discrete strokes come from [Brush.StartStroke]
// and advance with [Stroke.Apply]; drags come from [Brush.StartDrag] and
// advance with [Stroke.UpdateDrag]. Either kind ends with [Stroke.End].
type Stroke struct {
	br    *Brush
	state *State

	// drag selections, non-nil only for drag strokes
	main     *dragSelection
	mirrored *dragSelection
}

// StartStroke begins a discrete-mode stroke and returns its handle, which
// must be threaded through every subsequent [Stroke.Apply] call. Starting
// any stroke clears the redo stack. The snapshot is pushed to the undo
// stack when the stroke first touches a vertex, so a stroke that touches
// nothing leaves no history entry.
func (br *Brush) StartStroke() *Stroke {
	if br.phase != Idle {
		slog.Warn("sculpt: starting a stroke while another is open", "phase", br.phase)
	}
	br.phase = Stroking
	br.History.ClearRedo()
	return &Stroke{br: br, state: NewState()}
}

// End closes the stroke, returning the brush to [Idle]. The open snapshot
// already holds the pre-stroke values, so nothing else happens; releasing
// the pointer never rolls anything back, only an explicit undo does.
func (st *Stroke) End() {
	st.br.phase = Idle
}

// record records the pre-edit values of vertex i into the open snapshot,
// pushing the snapshot to the undo stack on the first touched vertex.
// Idempotent per stroke.
func (st *Stroke) record(i int) {
	if st.state.Has(i) {
		return
	}
	if st.state.Len() == 0 {
		st.br.History.PushState(st.state)
	}
	ms := st.br.Mesh
	st.state.Record(i, ms.Positions[i], ms.Colors[i])
}

// Apply applies one discrete application of the brush at the given surface
// point and unit surface normal, both supplied by the host from its own
// ray/surface intersection. Each application is weighted by falloff and
// intensity, so repeated calls within a stroke accumulate; throttling by
// pointer movement is up to the host.
//
// With [Brush.Symmetry] set, the whole operation is repeated at the
// x-negated point and normal. The two applications may overlap near the
// x = 0 seam; discrete radii are small enough that the overlap is tolerated
// rather than partitioned (drags, with their large static selections,
// partition instead - see [Brush.StartDrag]).
//
// Apply is a no-op in [Drag] mode.
func (st *Stroke) Apply(point, normal math32.Vector3) {
	br := st.br
	if br.Mode == Drag {
		return
	}
	touched := st.applyAt(point, normal)
	if br.Symmetry {
		touched = st.applyAt(mirrorX(point), mirrorX(normal)) || touched
	}
	if touched {
		br.Mesh.Update()
	}
}

// applyAt runs the mode transform over the vertices within the brush radius
// of point, reporting whether any vertex was touched.
func (st *Stroke) applyAt(point, normal math32.Vector3) bool {
	br := st.br
	ms := br.Mesh
	idxs := ms.VerticesInRadius(point, br.Radius, nil)
	if len(idxs) == 0 {
		return false
	}
	sign := br.sign()

	var plane math32.Plane
	if br.Mode == Flatten {
		plane.SetFromNormalAndCoplanarPoint(normal, point)
	}

	for _, i := range idxs {
		p := ms.Positions[i]
		w := br.Mode.Falloff(p.DistanceTo(point), br.Radius)
		if w <= 0 {
			continue
		}
		st.record(i)
		m := br.Intensity * w
		switch br.Mode {
		case Sculpt:
			ms.Positions[i] = p.Add(normal.MulScalar(m * sculptStrength * sign))
		case Smooth:
			cent, ok := ms.NeighborCentroid(i)
			if ok {
				ms.Positions[i] = p.Lerp(cent, m*sign)
			}
		case Flatten:
			ms.Positions[i] = p.Lerp(plane.ProjectPoint(p), m*sign)
		case Crease:
			toCenter := point.Sub(p)
			tangent := toCenter.Sub(normal.MulScalar(toCenter.Dot(normal)))
			p.SetAdd(tangent.MulScalar(m * creasePinch))
			ms.Positions[i] = p.Add(normal.MulScalar(m * creaseDepth * -sign))
		case Paint:
			target := br.Tint
			if br.Negative {
				target = math32.Vec3(1, 1, 1)
			}
			ms.Colors[i] = ms.Colors[i].Lerp(target, m)
		}
	}
	return true
}

// mirrorX reflects a point or direction across the x = 0 plane.
func mirrorX(v math32.Vector3) math32.Vector3 {
	v.X = -v.X
	return v
}

// Undo reverts the most recent stroke; no-op with nothing to undo.
// Do not call while a stroke is open.
func (br *Brush) Undo() {
	br.History.Undo()
}

// Redo re-applies the most recently undone stroke; no-op with nothing to
// redo. Do not call while a stroke is open.
func (br *Brush) Redo() {
	br.History.Redo()
}
