// Copyright 2025 Sculptkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sculpt

import (
	"sort"

	"github.com/sculptkit/core/math32"
)

// DefaultColor is the clay tint assigned to every vertex of a mesh
// constructed without color data.
var DefaultColor = math32.Vec3(0.8, 0.56, 0.42)

// weldGrid is the quantization step used to merge coincident vertices at
// construction. Seam duplicates from tessellation land within a small
// fraction of this distance of each other.
const weldGrid = 1.0e-5

// Mesh owns the mutable vertex buffers and the static topology of the
// sculpted surface. Positions and Colors are written by the [Brush] through
// its strokes; Normals and Bounds are derived and refreshed by [Mesh.Update].
// The triangle index list and the adjacency built from it never change after
// construction, because sculpting never changes topology.
//
// The host may read the buffers for rendering between engine calls, but must
// not write them directly: history snapshots record values as the engine saw
// them, and outside writes would desynchronize undo from actual state.
type Mesh struct {

	// Positions are the vertex positions, indexed 0..NumVertices-1,
	// mutated in place by sculpting.
	Positions []math32.Vector3

	// Normals are the per-vertex normals, derived from face normals.
	// Valid only after [Mesh.Update].
	Normals []math32.Vector3

	// Colors are the per-vertex RGB values in [0, 1].
	Colors []math32.Vector3

	// Index is the triangle index list, immutable after construction.
	Index []uint32

	// Neighbors lists, per vertex, the indices of the vertices sharing an
	// edge with it. Built once from Index at construction.
	Neighbors [][]int

	// Bounds is the axis-aligned bounding box of the positions.
	// Valid only after [Mesh.Update].
	Bounds math32.Box3

	// BSphere is the bounding sphere enclosing Bounds.
	// Valid only after [Mesh.Update].
	BSphere math32.Sphere
}

// NewMesh builds a sculpting mesh from raw indexed triangle geometry.
// Coincident vertices are welded so that seams from tessellation or model
// import do not split the adjacency (smoothing across an unwelded seam
// leaves visible artifacts). Triangles that degenerate under welding are
// dropped. Texture coordinates are not carried; every vertex gets
// [DefaultColor]. Derived data is computed before returning.
//
// Pass the result of [SphereGeometry] (or use [NewSphereMesh]) for the
// default surface.
func NewMesh(positions []math32.Vector3, index []uint32) *Mesh {
	remap := make([]uint32, len(positions))
	lookup := make(map[weldKey]uint32, len(positions))
	verts := make([]math32.Vector3, 0, len(positions))
	for i, p := range positions {
		k := weldKeyFor(p)
		if vi, ok := lookup[k]; ok {
			remap[i] = vi
			continue
		}
		vi := uint32(len(verts))
		verts = append(verts, p)
		lookup[k] = vi
		remap[i] = vi
	}

	idx := make([]uint32, 0, len(index))
	for t := 0; t+2 < len(index); t += 3 {
		a, b, c := remap[index[t]], remap[index[t+1]], remap[index[t+2]]
		if a == b || b == c || a == c {
			continue
		}
		idx = append(idx, a, b, c)
	}

	ms := &Mesh{
		Positions: verts,
		Normals:   make([]math32.Vector3, len(verts)),
		Colors:    make([]math32.Vector3, len(verts)),
		Index:     idx,
	}
	for i := range ms.Colors {
		ms.Colors[i] = DefaultColor
	}
	ms.buildNeighbors()
	ms.Update()
	return ms
}

// weldKey quantizes a position onto the weld grid.
type weldKey [3]int32

func weldKeyFor(p math32.Vector3) weldKey {
	return weldKey{
		int32(math32.Round(p.X / weldGrid)),
		int32(math32.Round(p.Y / weldGrid)),
		int32(math32.Round(p.Z / weldGrid)),
	}
}

// buildNeighbors derives the per-vertex adjacency sets from the triangle
// index list. Neighbor lists are sorted so accumulation order, and thus
// floating point results, are deterministic.
func (ms *Mesh) buildNeighbors() {
	sets := make([]map[int]struct{}, len(ms.Positions))
	for i := range sets {
		sets[i] = make(map[int]struct{})
	}
	for t := 0; t+2 < len(ms.Index); t += 3 {
		a, b, c := int(ms.Index[t]), int(ms.Index[t+1]), int(ms.Index[t+2])
		sets[a][b] = struct{}{}
		sets[a][c] = struct{}{}
		sets[b][a] = struct{}{}
		sets[b][c] = struct{}{}
		sets[c][a] = struct{}{}
		sets[c][b] = struct{}{}
	}
	ms.Neighbors = make([][]int, len(ms.Positions))
	for i, set := range sets {
		nbs := make([]int, 0, len(set))
		for n := range set {
			nbs = append(nbs, n)
		}
		sort.Ints(nbs)
		ms.Neighbors[i] = nbs
	}
}

// NumVertices returns the number of vertices after welding.
func (ms *Mesh) NumVertices() int {
	return len(ms.Positions)
}

// Update recomputes the vertex normals from the face normals (summed per
// vertex and normalized) and refreshes the bounding volumes. It must be
// called after every batch of position writes, before rendering or
// hit-testing relies on the derived data. Calling it again without further
// writes leaves the derived data unchanged.
func (ms *Mesh) Update() {
	for i := range ms.Normals {
		ms.Normals[i].SetZero()
	}
	for t := 0; t+2 < len(ms.Index); t += 3 {
		a, b, c := ms.Index[t], ms.Index[t+1], ms.Index[t+2]
		fn := math32.Normal(ms.Positions[a], ms.Positions[b], ms.Positions[c])
		ms.Normals[a].SetAdd(fn)
		ms.Normals[b].SetAdd(fn)
		ms.Normals[c].SetAdd(fn)
	}
	for i := range ms.Normals {
		l := ms.Normals[i].Length()
		if l > 0 {
			ms.Normals[i].SetDivScalar(l)
		}
	}
	ms.Bounds.SetFromPoints(ms.Positions)
	ms.BSphere = ms.Bounds.GetBoundingSphere()
}

// NeighborCentroid returns the unweighted centroid of the adjacency
// neighbors of vertex i. ok is false for an isolated vertex.
func (ms *Mesh) NeighborCentroid(i int) (cent math32.Vector3, ok bool) {
	nbs := ms.Neighbors[i]
	if len(nbs) == 0 {
		return math32.Vector3{}, false
	}
	var sum math32.Vector3
	for _, n := range nbs {
		sum.SetAdd(ms.Positions[n])
	}
	return sum.DivScalar(float32(len(nbs))), true
}

// VerticesInRadius appends to out the indices of the vertices strictly
// within radius of point, and returns the extended slice. An axis-aligned
// box pre-filter rejects most of the mesh before the exact distance test.
func (ms *Mesh) VerticesInRadius(point math32.Vector3, radius float32, out []int) []int {
	box := math32.Box3{}
	box.SetFromCenterAndSize(point, math32.Vector3Scalar(2*radius))
	r2 := radius * radius
	for i, p := range ms.Positions {
		if !box.ContainsPoint(p) {
			continue
		}
		if p.DistanceToSquared(point) < r2 {
			out = append(out, i)
		}
	}
	return out
}

// NearestVertex returns the index of the vertex closest to point,
// or -1 for an empty mesh.
func (ms *Mesh) NearestVertex(point math32.Vector3) int {
	best := -1
	bestd := math32.Infinity
	for i, p := range ms.Positions {
		d := p.DistanceToSquared(point)
		if d < bestd {
			bestd = d
			best = i
		}
	}
	return best
}
