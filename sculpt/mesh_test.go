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

// quadMesh returns two triangles sharing an edge, built from a vertex list
// with the shared edge duplicated, as an unwelded importer would produce it.
func quadMesh() *Mesh {
	positions := []math32.Vector3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, // first triangle
		{X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}, // second, duplicating the edge
	}
	return NewMesh(positions, []uint32{0, 1, 2, 3, 4, 5})
}

func TestNewMeshWeld(t *testing.T) {
	ms := quadMesh()
	assert.Equal(t, 4, ms.NumVertices())
	assert.Equal(t, []uint32{0, 1, 2, 1, 3, 2}, ms.Index)

	// every vertex has the default clay color
	for _, c := range ms.Colors {
		assert.Equal(t, DefaultColor, c)
	}

	// adjacency spans the welded seam
	assert.Equal(t, []int{1, 2}, ms.Neighbors[0])
	assert.Equal(t, []int{0, 2, 3}, ms.Neighbors[1])
	assert.Equal(t, []int{0, 1, 3}, ms.Neighbors[2])
	assert.Equal(t, []int{1, 2}, ms.Neighbors[3])
}

func TestNewMeshDegenerateTriangles(t *testing.T) {
	// the second triangle collapses to an edge under welding and is dropped
	positions := []math32.Vector3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
	}
	ms := NewMesh(positions, []uint32{0, 1, 2, 3, 4, 5})
	assert.Equal(t, 3, ms.NumVertices())
	assert.Equal(t, []uint32{0, 1, 2}, ms.Index)
}

func TestMeshNormalsAndBounds(t *testing.T) {
	ms := quadMesh()
	for _, n := range ms.Normals {
		assert.Equal(t, math32.Vec3(0, 0, 1), n)
	}
	assert.Equal(t, math32.B3(0, 0, 0, 1, 1, 0), ms.Bounds)
	assert.Equal(t, math32.Vec3(0.5, 0.5, 0), ms.BSphere.Center)
}

func TestUpdateIdempotent(t *testing.T) {
	ms := NewSphereMesh()
	normals := append([]math32.Vector3(nil), ms.Normals...)
	bounds := ms.Bounds
	bsphere := ms.BSphere
	ms.Update()
	assert.Equal(t, normals, ms.Normals)
	assert.Equal(t, bounds, ms.Bounds)
	assert.Equal(t, bsphere, ms.BSphere)
}

func TestSphereMesh(t *testing.T) {
	ms := NewSphereMesh()

	// welded: one pole vertex each, one column per distinct longitude
	segs := DefaultSphereSegments
	require.Equal(t, segs*(segs-1)+2, ms.NumVertices())
	require.Equal(t, 3*(2*segs*segs-2*segs), len(ms.Index))

	for i, p := range ms.Positions {
		assert.InDelta(t, 1, p.Length(), 1.0e-4, "vertex %d not on unit sphere", i)

		// outward normals closely track the radial direction
		assert.Greater(t, ms.Normals[i].Dot(p.Normal()), float32(0.95), "vertex %d normal not outward", i)

		// watertight: no isolated or seam-split vertices
		assert.GreaterOrEqual(t, len(ms.Neighbors[i]), 4, "vertex %d under-connected", i)
	}

	// adjacency is symmetric
	for i, nbs := range ms.Neighbors {
		for _, n := range nbs {
			assert.Contains(t, ms.Neighbors[n], i)
		}
	}

	assert.InDelta(t, -1, ms.Bounds.Min.Y, 1.0e-4)
	assert.InDelta(t, 1, ms.Bounds.Max.Y, 1.0e-4)
}

func TestNeighborCentroid(t *testing.T) {
	ms := quadMesh()
	cent, ok := ms.NeighborCentroid(0)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(0.5, 0.5, 0), cent)

	// isolated vertex: a mesh with an unreferenced position
	iso := NewMesh([]math32.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 5, Y: 5, Z: 5}}, []uint32{0, 1, 2})
	_, ok = iso.NeighborCentroid(3)
	assert.False(t, ok)
}

func TestVerticesInRadius(t *testing.T) {
	ms := quadMesh()
	got := ms.VerticesInRadius(math32.Vec3(0, 0, 0), 1.01, nil)
	assert.Equal(t, []int{0, 1, 2}, got)

	// exactly at radius is excluded
	got = ms.VerticesInRadius(math32.Vec3(0, 0, 0), 1, nil)
	assert.Equal(t, []int{0}, got)

	got = ms.VerticesInRadius(math32.Vec3(10, 10, 10), 0.5, nil)
	assert.Empty(t, got)
}

func TestNearestVertex(t *testing.T) {
	ms := quadMesh()
	assert.Equal(t, 3, ms.NearestVertex(math32.Vec3(1.2, 1.1, 0)))
	assert.Equal(t, 0, ms.NearestVertex(math32.Vec3(-5, -5, 0)))

	empty := &Mesh{}
	assert.Equal(t, -1, empty.NearestVertex(math32.Vec3(0, 0, 0)))
}
