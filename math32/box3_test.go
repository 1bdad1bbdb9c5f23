// Copyright 2025 Sculptkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())

	b.ExpandByPoint(Vec3(1, 2, 3))
	b.ExpandByPoint(Vec3(-1, 0, 1))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, B3(-1, 0, 1, 1, 2, 3), b)
	assert.Equal(t, Vector3{0, 1, 2}, b.Center())
	assert.Equal(t, Vector3{2, 2, 2}, b.Size())

	assert.True(t, b.ContainsPoint(Vec3(0, 1, 2)))
	assert.True(t, b.ContainsPoint(Vec3(1, 2, 3)))
	assert.False(t, b.ContainsPoint(Vec3(1.01, 2, 3)))

	b2 := Box3{}
	b2.SetFromCenterAndSize(Vec3(0, 1, 2), Vec3(2, 2, 2))
	assert.Equal(t, b, b2)

	b3 := Box3{}
	b3.SetFromPoints([]Vector3{Vec3(1, 2, 3), Vec3(-1, 0, 1)})
	assert.Equal(t, b, b3)

	assert.True(t, b.IntersectsBox(B3(0.5, 0.5, 0.5, 5, 5, 5)))
	assert.False(t, b.IntersectsBox(B3(2, 2, 2, 5, 5, 5)))

	assert.Equal(t, Vector3{1, 2, 3}, b.ClampPoint(Vec3(10, 10, 10)))
	assert.Equal(t, float32(2), b.DistanceToPoint(Vec3(3, 1, 2)))
}

func TestBox3Sphere(t *testing.T) {
	b := B3(-1, -1, -1, 1, 1, 1)
	sp := b.GetBoundingSphere()
	assert.Equal(t, Vector3{}, sp.Center)
	assert.InDelta(t, Sqrt(3), sp.Radius, 1.0e-6)
	assert.True(t, sp.ContainsPoint(Vec3(1, 1, 1)))
	assert.False(t, sp.ContainsPoint(Vec3(2, 2, 2)))
}

func TestSphere(t *testing.T) {
	s := Sphere{}
	s.SetFromPoints([]Vector3{Vec3(2, 0, 0), Vec3(-2, 0, 0), Vec3(0, 1, 0), Vec3(0, -1, 0)}, nil)
	assert.Equal(t, Vector3{}, s.Center)
	assert.Equal(t, float32(2), s.Radius)
	assert.Equal(t, float32(1), s.DistanceToPoint(Vec3(3, 0, 0)))
	assert.True(t, s.IntersectSphere(NewSphere(Vec3(4, 0, 0), 2)))
	assert.False(t, s.IntersectSphere(NewSphere(Vec3(5, 0, 0), 2)))
}
