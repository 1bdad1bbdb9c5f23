// Copyright 2025 Sculptkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sculpt is an interactive mesh sculpting engine: real-time
// deformation of a dense triangle mesh under brush strokes, with
// adjacency-based smoothing, multiple falloff curves, mirrored symmetry
// with exclusive vertex ownership, and a memory-bounded undo/redo history
// that records only the vertices each stroke touched.
//
// The engine is single-threaded and synchronous: the host feeds it surface
// points and normals from its own ray intersections (and per-frame deltas
// for drags), each call runs to completion, and the host reads the mesh
// buffers back for rendering between calls. There is no rendering, no
// raycasting, and no persistence here.
//
// Typical use:
//
//	br := sculpt.NewBrush(nil) // default unit sphere
//	br.SetMode(sculpt.Sculpt).SetRadius(0.25).SetIntensity(0.6)
//
//	st := br.StartStroke()
//	st.Apply(point, normal) // per throttled pointer move
//	st.End()
//
//	dr := br.StartDrag(center)
//	dr.UpdateDrag(delta) // per frame
//	dr.End()
//
//	br.Undo()
//	br.Redo()
package sculpt
