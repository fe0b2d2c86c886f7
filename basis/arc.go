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

package basis

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Arc returns the elliptical arc from start to end, given in SVG endpoint
// form: radii, the rotation of the ellipse's x-axis in degrees and the
// large-arc and sweep flags.
//
// Radii which are too small to reach end from start are scaled up
// uniformly until the arc becomes feasible.  A zero radius, or identical
// end points, degrade the arc to a straight line.
func Arc(start, end, radii vec.Vec2, xAxisRotation float64, largeArc, sweep bool) Producer {
	rx := math.Abs(radii.X)
	ry := math.Abs(radii.Y)
	if rx == 0 || ry == 0 || start == end {
		return Line(start, end)
	}

	rot := matrix.RotateDeg(xAxisRotation)
	inv := matrix.RotateDeg(-xAxisRotation)

	// Half the chord, in the ellipse's own frame.
	p := apply(inv, start.Sub(end).Mul(0.5))
	px2 := p.X * p.X
	py2 := p.Y * p.Y

	if ratio := px2/(rx*rx) + py2/(ry*ry); ratio > 1 {
		s := math.Sqrt(ratio)
		rx *= s
		ry *= s
	}
	rx2 := rx * rx
	ry2 := ry * ry

	dq := rx2*py2 + ry2*px2
	q := math.Sqrt(max(0, (rx2*ry2-dq)/dq))
	if largeArc == sweep {
		q = -q
	}
	cp := vec.Vec2{X: q * rx * p.Y / ry, Y: -q * ry * p.X / rx}
	center := apply(rot, cp).Add(start.Add(end).Mul(0.5))

	u := vec.Vec2{X: (p.X - cp.X) / rx, Y: (p.Y - cp.Y) / ry}
	v := vec.Vec2{X: (-p.X - cp.X) / rx, Y: (-p.Y - cp.Y) / ry}
	theta := vectorAngle(vec.Vec2{X: 1, Y: 0}, u)
	delta := math.Mod(vectorAngle(u, v), 2*math.Pi)
	if delta < 0 {
		delta += 2 * math.Pi
	}
	if !sweep {
		delta -= 2 * math.Pi
	}

	return func(t float64) vec.Vec2 {
		sin, cos := math.Sincos(theta + t*delta)
		return center.Add(apply(rot, vec.Vec2{X: rx * cos, Y: ry * sin}))
	}
}

// vectorAngle returns the signed angle from u to v in [-π, π].
func vectorAngle(u, v vec.Vec2) float64 {
	return math.Atan2(u.X*v.Y-u.Y*v.X, u.Dot(v))
}
