// Copyright 2025 Sculptkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Sculptkit functionality.

package math32

// Sphere represents a 3D sphere defined by its center point and a radius
type Sphere struct {
	Center Vector3
	Radius float32
}

// NewSphere returns a new sphere with the given center and radius.
func NewSphere(center Vector3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// SetFromPoints sets the center and radius of this sphere to encompass the
// specified array of points, around the optional center, which is computed
// as the center of the bounding box of points if not specified.
func (s *Sphere) SetFromPoints(points []Vector3, optCenter *Vector3) {
	if optCenter != nil {
		s.Center = *optCenter
	} else {
		box := B3Empty()
		box.ExpandByPoints(points)
		s.Center = box.Center()
	}
	maxRadiusSq := float32(0)
	for i := 0; i < len(points); i++ {
		maxRadiusSq = Max(maxRadiusSq, s.Center.DistanceToSquared(points[i]))
	}
	s.Radius = Sqrt(maxRadiusSq)
}

// IsEmpty checks if this sphere is empty (radius <= 0).
func (s Sphere) IsEmpty() bool {
	return s.Radius <= 0
}

// ContainsPoint returns if this sphere contains the specified point.
func (s Sphere) ContainsPoint(point Vector3) bool {
	return point.DistanceToSquared(s.Center) <= s.Radius*s.Radius
}

// DistanceToPoint returns the distance from the sphere surface to the specified point.
func (s Sphere) DistanceToPoint(point Vector3) float32 {
	return point.DistanceTo(s.Center) - s.Radius
}

// IntersectSphere returns if other sphere intersects this one.
func (s Sphere) IntersectSphere(other Sphere) bool {
	radiusSum := s.Radius + other.Radius
	return other.Center.DistanceToSquared(s.Center) <= radiusSum*radiusSum
}

// Translate translates this sphere by the specified offset.
func (s *Sphere) Translate(offset Vector3) {
	s.Center.SetAdd(offset)
}
