// Copyright 2025 Sculptkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sculpt

import (
	"log/slog"

	"github.com/sculptkit/core/math32"
)

// dragSelection is the static selection one drag center owns: the vertex
// indices, drag-falloff weights, and original positions captured when the
// gesture started. Updates rewrite positions from the originals, so the
// selection never drifts as deltas accumulate.
type dragSelection struct {
	center  math32.Vector3
	indexes []int
	weights []float32
	origs   []math32.Vector3
}

// collectDrag gathers the candidate vertices within the brush radius of
// center, with their drag-falloff weights and original positions.
func (br *Brush) collectDrag(center math32.Vector3) *dragSelection {
	ms := br.Mesh
	ds := &dragSelection{center: center}
	box := math32.Box3{}
	box.SetFromCenterAndSize(center, math32.Vector3Scalar(2*br.Radius))
	r2 := br.Radius * br.Radius
	for i, p := range ms.Positions {
		if !box.ContainsPoint(p) {
			continue
		}
		d2 := p.DistanceToSquared(center)
		if d2 >= r2 {
			continue
		}
		ds.indexes = append(ds.indexes, i)
		ds.weights = append(ds.weights, DragFalloff(math32.Sqrt(d2), br.Radius))
		ds.origs = append(ds.origs, p)
	}
	return ds
}

// ownedByMain is the symmetry tie-break, shared by both sides of the
// partition so the rule cannot diverge: a vertex belongs to the main center
// when it is at most as far from it as from the mirrored center. Ties go to
// the main side.
func ownedByMain(p, main, mirrored math32.Vector3) bool {
	return p.DistanceToSquared(main) <= p.DistanceToSquared(mirrored)
}

// keep filters the selection in place to the vertices for which own returns
// true.
func (ds *dragSelection) keep(own func(p math32.Vector3) bool) {
	n := 0
	for k, p := range ds.origs {
		if !own(p) {
			continue
		}
		ds.indexes[n] = ds.indexes[k]
		ds.weights[n] = ds.weights[k]
		ds.origs[n] = p
		n++
	}
	ds.indexes = ds.indexes[:n]
	ds.weights = ds.weights[:n]
	ds.origs = ds.origs[:n]
}

// partitionDrag assigns every candidate vertex exclusively to one of the
// two selections by nearest-center ownership. Both radii are the brush
// radius, so a vertex nearer the other center is always inside the other
// selection too: filtering each side by ownership loses no vertex. Without
// the partition a seam vertex would receive two independent per-frame
// deltas and tear the mesh at large radii.
func partitionDrag(main, mirrored *dragSelection) {
	main.keep(func(p math32.Vector3) bool {
		return ownedByMain(p, main.center, mirrored.center)
	})
	mirrored.keep(func(p math32.Vector3) bool {
		return !ownedByMain(p, main.center, mirrored.center)
	})
}

// apply writes original + delta·weight·scale for every owned vertex.
func (ds *dragSelection) apply(ms *Mesh, delta math32.Vector3, scale float32) {
	for k, i := range ds.indexes {
		ms.Positions[i] = ds.origs[k].Add(delta.MulScalar(ds.weights[k] * scale))
	}
}

// StartDrag begins a continuous drag gesture centered at the given surface
// point and returns its stroke handle for [Stroke.UpdateDrag] calls. The
// whole gesture owns exactly one history snapshot, recorded here from the
// captured selections. The candidate scan happens only once, so each update
// runs in time proportional to the selection, not the mesh.
//
// With [Brush.Symmetry] set, a second selection is captured around the
// x-negated center, and overlapping vertices are assigned exclusively to
// their nearest center (ties to the primary).
func (br *Brush) StartDrag(center math32.Vector3) *Stroke {
	if br.phase != Idle {
		slog.Warn("sculpt: starting a drag while another stroke is open", "phase", br.phase)
	}
	br.phase = Dragging
	br.History.ClearRedo()

	st := &Stroke{br: br, state: NewState()}
	st.main = br.collectDrag(center)
	if br.Symmetry {
		st.mirrored = br.collectDrag(mirrorX(center))
		partitionDrag(st.main, st.mirrored)
	}
	for _, i := range st.main.indexes {
		st.record(i)
	}
	if st.mirrored != nil {
		for _, i := range st.mirrored.indexes {
			st.record(i)
		}
	}
	return st
}

// UpdateDrag applies the per-frame displacement: every owned vertex moves
// to its captured original plus delta scaled by its falloff weight and the
// brush intensity (negated by the negative flag). The mirrored selection
// receives an x-negated delta. Call once per frame while the drag is held;
// it is a no-op on a stroke from [Brush.StartStroke].
func (st *Stroke) UpdateDrag(delta math32.Vector3) {
	br := st.br
	if st.main == nil {
		return
	}
	scale := br.Intensity * br.sign()
	st.main.apply(br.Mesh, delta, scale)
	if st.mirrored != nil {
		st.mirrored.apply(br.Mesh, mirrorX(delta), scale)
	}
	br.Mesh.Update()
}
