// Ink-Projector - map projections for vector paths
// Copyright (C) 2026  Tau Laboratory
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package basis provides the parametric curves that every path segment
// reduces to.
//
// A [Producer] maps a curve parameter t to a point.  All producers in this
// package are pure: they may be evaluated any number of times, in any
// order, and for t outside [0, 1].
package basis

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Producer maps a curve parameter to a point.
// The curve runs from Producer(0) to Producer(1).
type Producer func(t float64) vec.Vec2

// Line returns the straight segment from p0 to p1.
// The result is exact at t=0 and t=1.
func Line(p0, p1 vec.Vec2) Producer {
	return func(t float64) vec.Vec2 {
		return p0.Mul(1 - t).Add(p1.Mul(t))
	}
}

// QuadraticBezier returns the quadratic Bézier curve from p0 to p1 with
// control point c.
func QuadraticBezier(p0, c, p1 vec.Vec2) Producer {
	return func(t float64) vec.Vec2 {
		omt := 1 - t
		return p0.Mul(omt * omt).Add(c.Mul(2 * omt * t)).Add(p1.Mul(t * t))
	}
}

// CubicBezier returns the cubic Bézier curve from p0 to p1 with control
// points c1 and c2.
func CubicBezier(p0, c1, c2, p1 vec.Vec2) Producer {
	return func(t float64) vec.Vec2 {
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		return p0.Mul(omt2 * omt).
			Add(c1.Mul(3 * omt2 * t)).
			Add(c2.Mul(3 * omt * t2)).
			Add(p1.Mul(t2 * t))
	}
}

// Clamp returns a function which clamps each coordinate into b.
func Clamp(b rect.Rect) func(x, y float64) vec.Vec2 {
	return func(x, y float64) vec.Vec2 {
		return vec.Vec2{
			X: min(b.URx, max(b.LLx, x)),
			Y: min(b.URy, max(b.LLy, y)),
		}
	}
}

// apply maps v through the affine transformation m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

