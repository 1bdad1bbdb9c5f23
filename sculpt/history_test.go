// Copyright 2025 Sculptkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sculpt

import (
	"testing"

	"github.com/sculptkit/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRecordIdempotent(t *testing.T) {
	st := NewState()
	assert.Equal(t, 0, st.Len())
	assert.False(t, st.Has(3))

	st.Record(3, math32.Vec3(1, 2, 3), math32.Vec3(1, 0, 0))
	st.Record(5, math32.Vec3(4, 5, 6), math32.Vec3(0, 1, 0))
	st.Record(3, math32.Vec3(9, 9, 9), math32.Vec3(9, 9, 9)) // ignored

	assert.Equal(t, 2, st.Len())
	assert.True(t, st.Has(3))
	assert.Equal(t, []int{3, 5}, st.Indexes)
	assert.Equal(t, math32.Vec3(1, 2, 3), st.Positions[0])
}

func TestUndoEmptyIsNoOp(t *testing.T) {
	br := NewBrush(nil)
	before := clonePositions(br.Mesh)
	br.Undo()
	br.Redo()
	assert.Equal(t, before, br.Mesh.Positions)
}

// n strokes followed by n undos restore the exact pre-first-stroke buffers;
// n redos restore the exact post-last-stroke buffers.
func TestUndoRedoRoundTrip(t *testing.T) {
	br := NewBrush(nil)
	ms := br.Mesh
	origPos := clonePositions(ms)
	origCol := cloneColors(ms)

	points := []math32.Vector3{
		{X: 0, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: -1}, {X: -1, Y: 0, Z: 0},
	}
	modes := []Mode{Sculpt, Crease, Paint, Sculpt, Flatten}
	for k, pt := range points {
		br.SetMode(modes[k]).SetRadius(0.3).SetIntensity(0.5)
		st := br.StartStroke()
		st.Apply(pt, pt.Normal())
		st.End()
	}
	finalPos := clonePositions(ms)
	finalCol := cloneColors(ms)
	require.NotEqual(t, origPos, finalPos)

	for range points {
		br.Undo()
	}
	assert.Equal(t, origPos, ms.Positions)
	assert.Equal(t, origCol, ms.Colors)
	assert.False(t, br.History.UndoAvailable())

	for range points {
		br.Redo()
	}
	assert.Equal(t, finalPos, ms.Positions)
	assert.Equal(t, finalCol, ms.Colors)
	assert.False(t, br.History.RedoAvailable())
}

// Undo and redo refresh the derived data along with the buffers.
func TestUndoRefreshesDerived(t *testing.T) {
	br := NewBrush(nil)
	ms := br.Mesh
	origNorms := append([]math32.Vector3(nil), ms.Normals...)
	origBounds := ms.Bounds

	st := br.StartStroke()
	st.Apply(math32.Vec3(0, 0, 1), math32.Vec3(0, 0, 1))
	st.End()
	require.NotEqual(t, origBounds, ms.Bounds)

	br.Undo()
	assert.Equal(t, origNorms, ms.Normals)
	assert.Equal(t, origBounds, ms.Bounds)
}

// Pushing past the depth limit evicts the oldest state: after 16 strokes,
// 16 undos only rewind the last 15, leaving the first stroke applied.
func TestHistoryDepthEviction(t *testing.T) {
	br := NewBrush(nil)
	br.SetMode(Sculpt).SetRadius(0.3).SetIntensity(0.5)
	ms := br.Mesh

	point := math32.Vec3(0, 0, 1)
	normal := math32.Vec3(0, 0, 1)

	st := br.StartStroke()
	st.Apply(point, normal)
	st.End()
	afterFirst := clonePositions(ms)

	for k := 0; k < StateDepth; k++ {
		st := br.StartStroke()
		st.Apply(point, normal)
		st.End()
	}

	for k := 0; k < StateDepth+1; k++ {
		br.Undo()
	}
	assert.Equal(t, afterFirst, ms.Positions)
	assert.False(t, br.History.UndoAvailable())
}

// Starting any new stroke clears the redo stack, even one that touches
// nothing.
func TestRedoClearedByNewStroke(t *testing.T) {
	br := NewBrush(nil)

	st := br.StartStroke()
	st.Apply(math32.Vec3(0, 0, 1), math32.Vec3(0, 0, 1))
	st.End()
	br.Undo()
	require.True(t, br.History.RedoAvailable())

	st = br.StartStroke()
	st.End()
	assert.False(t, br.History.RedoAvailable())
}

func TestCurrentState(t *testing.T) {
	br := NewBrush(nil)
	h := br.History
	assert.Nil(t, h.CurrentState())

	st := br.StartStroke()
	st.Apply(math32.Vec3(0, 0, 1), math32.Vec3(0, 0, 1))
	st.End()

	cur := h.CurrentState()
	require.NotNil(t, cur)
	assert.Greater(t, cur.Len(), 0)
}
