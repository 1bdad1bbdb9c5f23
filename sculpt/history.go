// Copyright 2025 Sculptkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sculpt

import "github.com/sculptkit/core/math32"

// StateDepth is the maximum number of undo states retained. Pushing a state
// beyond this depth evicts the oldest one, so undo cannot revert earlier
// than [StateDepth] strokes back.
const StateDepth = 15

// State is a sparse per-stroke snapshot: the pre-edit position and color of
// every vertex touched by one stroke, deduplicated by vertex index. It is
// built incrementally while the stroke is open and becomes effectively
// immutable once the next stroke begins or undo/redo consumes it.
type State struct {

	// Indexes are the touched vertex indices, in first-touched order.
	Indexes []int

	// Positions are the recorded positions, parallel to Indexes.
	Positions []math32.Vector3

	// Colors are the recorded colors, parallel to Indexes.
	Colors []math32.Vector3

	seen map[int]struct{}
}

// NewState returns an empty snapshot.
func NewState() *State {
	return &State{seen: make(map[int]struct{})}
}

// Len returns the number of recorded vertices.
func (st *State) Len() int {
	return len(st.Indexes)
}

// Has returns whether the vertex is already recorded in this snapshot.
func (st *State) Has(idx int) bool {
	_, has := st.seen[idx]
	return has
}

// Record appends the given values for the vertex. It is a no-op if the
// vertex is already recorded, so recording is idempotent per stroke.
func (st *State) Record(idx int, pos, color math32.Vector3) {
	if st.Has(idx) {
		return
	}
	st.seen[idx] = struct{}{}
	st.Indexes = append(st.Indexes, idx)
	st.Positions = append(st.Positions, pos)
	st.Colors = append(st.Colors, color)
}

// History is the bounded undo/redo manager for one mesh. Undo states hold
// only the vertices a stroke actually touched; undoing rebuilds the matching
// redo state by re-reading the current mesh values at those indices before
// overwriting them. That reconstruction is correct as long as nothing else
// mutates the touched vertices between the stroke and the undo, which the
// exclusive write-surface rule on [Mesh] guarantees.
type History struct {
	mesh  *Mesh
	undos []*State
	redos []*State
}

// NewHistory returns an empty history for the given mesh.
func NewHistory(ms *Mesh) *History {
	return &History{mesh: ms}
}

// PushState appends st to the undo stack, evicting the oldest state beyond
// [StateDepth], and clears the redo stack.
func (h *History) PushState(st *State) {
	h.undos = append(h.undos, st)
	if len(h.undos) > StateDepth {
		over := len(h.undos) - StateDepth
		h.undos = append(h.undos[:0], h.undos[over:]...)
	}
	h.ClearRedo()
}

// CurrentState returns the top of the undo stack, used by the brush to
// append touched-vertex records mid-stroke. It returns nil if empty.
func (h *History) CurrentState() *State {
	if len(h.undos) == 0 {
		return nil
	}
	return h.undos[len(h.undos)-1]
}

// ClearRedo drops all redo states. Any new stroke invalidates redo.
func (h *History) ClearRedo() {
	h.redos = nil
}

// UndoAvailable returns whether there is a state to undo.
func (h *History) UndoAvailable() bool {
	return len(h.undos) > 0
}

// RedoAvailable returns whether there is a state to redo.
func (h *History) RedoAvailable() bool {
	return len(h.redos) > 0
}

// Undo reverts the most recent stroke, writing its recorded values back
// into the mesh and pushing the displaced current values onto the redo
// stack. It is a no-op when the undo stack is empty.
func (h *History) Undo() {
	n := len(h.undos)
	if n == 0 {
		return
	}
	st := h.undos[n-1]
	h.undos = h.undos[:n-1]
	h.redos = append(h.redos, h.capture(st))
	h.apply(st)
}

// Redo re-applies the most recently undone stroke, symmetric to [History.Undo].
// It is a no-op when the redo stack is empty.
func (h *History) Redo() {
	n := len(h.redos)
	if n == 0 {
		return
	}
	st := h.redos[n-1]
	h.redos = h.redos[:n-1]
	h.undos = append(h.undos, h.capture(st))
	h.apply(st)
}

// capture snapshots the current mesh values at the indices recorded in src,
// forming the mirror state that reverses applying src.
func (h *History) capture(src *State) *State {
	st := NewState()
	for _, i := range src.Indexes {
		st.Record(i, h.mesh.Positions[i], h.mesh.Colors[i])
	}
	return st
}

// apply writes the recorded values back into the mesh and refreshes the
// derived data.
func (h *History) apply(st *State) {
	for k, i := range st.Indexes {
		h.mesh.Positions[i] = st.Positions[k]
		h.mesh.Colors[i] = st.Colors[k]
	}
	h.mesh.Update()
}
