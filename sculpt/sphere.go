// Copyright 2025 Sculptkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sculpt

import "github.com/sculptkit/core/math32"

// DefaultSphereSegments is the tessellation of the default sculpting sphere,
// in segments around both the width and the height.
const DefaultSphereSegments = 48

// NewSphereMesh returns the default sculpting surface: a unit sphere at
// [DefaultSphereSegments] tessellation. The wrap seam and pole duplicates
// produced by the generator are welded by [NewMesh], so adjacency is
// watertight.
func NewSphereMesh() *Mesh {
	pos, idx := SphereGeometry(1, DefaultSphereSegments, DefaultSphereSegments)
	return NewMesh(pos, idx)
}

// SphereGeometry generates the raw positions and triangle indices of a
// full sphere with the given radius and number of radial segments in each
// dimension (minimum 3). The sphere is built from latitude/longitude bands:
// rows run from the top pole (y = radius) to the bottom pole, and each row
// wraps around with a duplicated seam column. Degenerate triangles at the
// poles are omitted.
func SphereGeometry(radius float32, widthSegs, heightSegs int) (positions []math32.Vector3, index []uint32) {
	if widthSegs < 3 {
		widthSegs = 3
	}
	if heightSegs < 3 {
		heightSegs = 3
	}
	nVtx := (widthSegs + 1) * (heightSegs + 1)
	positions = make([]math32.Vector3, 0, nVtx)
	index = make([]uint32, 0, 6*widthSegs*heightSegs)

	idx := uint32(0)
	vtxs := make([][]uint32, 0, heightSegs+1)
	for y := 0; y <= heightSegs; y++ {
		vtxsRow := make([]uint32, 0, widthSegs+1)
		v := float32(y) / float32(heightSegs)
		elev := v * math32.Pi
		for x := 0; x <= widthSegs; x++ {
			u := float32(x) / float32(widthSegs)
			ang := u * 2 * math32.Pi
			px := -radius * math32.Cos(ang) * math32.Sin(elev)
			py := radius * math32.Cos(elev)
			pz := radius * math32.Sin(ang) * math32.Sin(elev)
			positions = append(positions, math32.Vec3(px, py, pz))
			vtxsRow = append(vtxsRow, idx)
			idx++
		}
		vtxs = append(vtxs, vtxsRow)
	}

	for y := 0; y < heightSegs; y++ {
		for x := 0; x < widthSegs; x++ {
			v1 := vtxs[y][x+1]
			v2 := vtxs[y][x]
			v3 := vtxs[y+1][x]
			v4 := vtxs[y+1][x+1]
			if y != 0 {
				index = append(index, v1, v2, v4)
			}
			if y != heightSegs-1 {
				index = append(index, v2, v3, v4)
			}
		}
	}
	return positions, index
}
