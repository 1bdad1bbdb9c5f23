// Copyright 2025 Sculptkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Sculptkit functionality.

package math32

// Plane represents a plane in 3D space by its normal vector and a constant offset.
// When the the normal vector is the unit vector the offset is the distance from the origin.
type Plane struct {
	Norm Vector3
	Off  float32
}

// NewPlane creates and returns a new plane from a normal vector and a offset.
func NewPlane(normal Vector3, offset float32) Plane {
	return Plane{normal, offset}
}

// Set sets this plane normal vector and offset.
func (p *Plane) Set(normal Vector3, offset float32) {
	p.Norm = normal
	p.Off = offset
}

// SetFromNormalAndCoplanarPoint sets this plane from a normal vector and a point on the plane.
func (p *Plane) SetFromNormalAndCoplanarPoint(normal Vector3, point Vector3) {
	p.Norm = normal
	p.Off = -point.Dot(p.Norm)
}

// Normalize normalizes this plane normal vector and adjusts the offset.
// Note: will lead to a divide by zero if the plane is invalid.
func (p *Plane) Normalize() {
	invLen := 1.0 / p.Norm.Length()
	p.Norm.SetMulScalar(invLen)
	p.Off *= invLen
}

// DistanceToPoint returns the distance of the point to the plane.
func (p *Plane) DistanceToPoint(point Vector3) float32 {
	return p.Norm.Dot(point) + p.Off
}

// ProjectPoint projects the given point onto the plane,
// returning the closest point on the plane to it.
func (p *Plane) ProjectPoint(point Vector3) Vector3 {
	return point.Sub(p.Norm.MulScalar(p.DistanceToPoint(point)))
}
