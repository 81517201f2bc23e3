// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mesh holds the static geometry drawn by the example.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// Components is the number of floats per vertex position.
const Components = 2

// Stride is the size in bytes of one tightly packed vertex.
const Stride = Components * 4

// Triangle returns the example triangle in normalized device coordinates,
// in clockwise order.
func Triangle() []mgl32.Vec2 {
	return []mgl32.Vec2{
		{-0.5, -0.5},
		{0.0, 0.5},
		{0.5, -0.5},
	}
}

// Flatten returns the vertices as a tightly packed float slice, ready for
// upload to an array buffer.
func Flatten(vs []mgl32.Vec2) []float32 {
	data := make([]float32, 0, len(vs)*Components)
	for _, v := range vs {
		data = append(data, v.X(), v.Y())
	}
	return data
}

// Bounds returns the axis aligned bounding box of vs. It returns zero vectors
// for an empty slice.
func Bounds(vs []mgl32.Vec2) (lo, hi mgl32.Vec2) {
	if len(vs) == 0 {
		return
	}
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = mgl32.Vec2{min(lo.X(), v.X()), min(lo.Y(), v.Y())}
		hi = mgl32.Vec2{max(hi.X(), v.X()), max(hi.Y(), v.Y())}
	}
	return lo, hi
}

// Contains reports whether p lies inside or on the edge of triangle a, b, c.
func Contains(a, b, c, p mgl32.Vec2) bool {
	d1 := edge(p, a, b)
	d2 := edge(p, b, c)
	d3 := edge(p, c, a)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

func edge(p, a, b mgl32.Vec2) float32 {
	ab, ap := b.Sub(a), p.Sub(a)
	return ab.X()*ap.Y() - ab.Y()*ap.X()
}

// Area returns the signed area of triangle a, b, c. It is negative for
// clockwise winding.
func Area(a, b, c mgl32.Vec2) float32 {
	return edge(c, a, b) / 2
}
