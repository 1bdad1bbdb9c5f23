// Copyright 2025 Sculptkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sculpt

// Falloff is the default brush falloff curve: (1 - (d/r)²)³, which is 1 at
// the center, tapers to 0 at the radius, and has zero slope at the boundary
// so edits blend into the untouched surface without a visible rim.
// It returns 0 for dist >= radius or a non-positive radius.
func Falloff(dist, radius float32) float32 {
	if radius <= 0 || dist >= radius {
		return 0
	}
	x := dist / radius
	c := 1 - x*x
	return c * c * c
}

// DragFalloff is the falloff curve for continuous drags: 3x⁴ - 4x³ + 1 with
// x = d/r. Its plateau around the center is flatter and its edge smoother
// than [Falloff], which avoids visible stepping while a large selection is
// dragged frame after frame. It returns 0 for dist >= radius or a
// non-positive radius.
func DragFalloff(dist, radius float32) float32 {
	if radius <= 0 || dist >= radius {
		return 0
	}
	x := dist / radius
	return 3*x*x*x*x - 4*x*x*x + 1
}

// Falloff returns the falloff weight the given mode uses for a vertex at
// the given distance from the brush center.
func (m Mode) Falloff(dist, radius float32) float32 {
	if m == Drag {
		return DragFalloff(dist, radius)
	}
	return Falloff(dist, radius)
}
