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

package mapproj

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// PeirceScale is the side length of the unrotated Peirce quincuncial
// square on the unit sphere, 2·K(1/√2).
const PeirceScale = 3.7081493546027438

// carlsonTolerance bounds the relative spread of the arguments
// before the series correction in [carlsonRF] is applied.
const carlsonTolerance = 0.0025

// carlsonMaxIter caps the duplication steps of [carlsonRF].  Each step
// shrinks the spread of the arguments by a factor of four.
const carlsonMaxIter = 64

// PeirceQuincuncial returns the Peirce quincuncial projection, centred
// on the meridian refLong.  The square is turned by 45° so that its
// sides are parallel to the drawing area.
func PeirceQuincuncial(width, height, refLong float64) Transformation {
	scale := Linear(CircleBound(PeirceScale, PeirceScale), CenteredSquare(width, height))
	return func(long, lat float64) vec.Vec2 {
		p := peirce(long-refLong, lat)
		return scale(p.X, p.Y)
	}
}

// peirce maps a point of the sphere onto the quincuncial square.
// The northern hemisphere covers the inner square, the southern
// hemisphere is folded out into the four corner triangles.
func peirce(long, lat float64) vec.Vec2 {
	cosPhi := math.Cos(lat) / math.Sqrt2
	sinL, cosL := math.Sincos(long)

	cosA := min(1, cosPhi*(sinL+cosL))
	cosB := min(1, cosPhi*(sinL-cosL))
	sinA := math.Sqrt(max(0, 1-cosA*cosA))
	sinB := math.Sqrt(max(0, 1-cosB*cosB))

	sin2M := max(0, 1+cosA*cosB-sinA*sinB)
	sin2N := max(0, 1-cosA*cosB-sinA*sinB)

	sinM, cosM := math.Sqrt(sin2M), math.Sqrt(1-min(1, sin2M))
	if sinL < 0 {
		sinM = -sinM
	}
	sinN, cosN := math.Sqrt(sin2N), math.Sqrt(1-min(1, sin2N))
	if cosL > 0 {
		sinN = -sinN
	}

	x := ellipticF(cosM, sinM, math.Sqrt2/2)
	y := ellipticF(cosN, sinN, math.Sqrt2/2)

	if lat < 0 {
		switch {
		case long < -3*math.Pi/4:
			y = PeirceScale - y
		case long < -math.Pi/4:
			x = -PeirceScale - x
		case long < math.Pi/4:
			y = -PeirceScale - y
		case long < 3*math.Pi/4:
			x = PeirceScale - x
		default:
			y = PeirceScale - y
		}
	}

	return vec.Vec2{X: x - y, Y: x + y}
}

// ellipticF returns the incomplete elliptic integral of the first kind
// F(φ, k), given cos φ and sin φ.
func ellipticF(cosPhi, sinPhi, k float64) float64 {
	return sinPhi * carlsonRF(cosPhi*cosPhi, 1-k*k*sinPhi*sinPhi, 1)
}

// carlsonRF evaluates Carlson's symmetric elliptic integral R_F(x, y, z)
// by duplication.  Negative arguments, which only arise from rounding,
// are treated as zero.  The integral diverges if two or more arguments
// are zero; the result is then +Inf.  NaN arguments give NaN.
func carlsonRF(x, y, z float64) float64 {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z) {
		return math.NaN()
	}
	x, y, z = max(0, x), max(0, y), max(0, z)
	if math.IsInf(x, 1) || math.IsInf(y, 1) || math.IsInf(z, 1) {
		return 0
	}
	if x+y == 0 || x+z == 0 || y+z == 0 {
		return math.Inf(1)
	}

	var mean, dx, dy, dz float64
	for range carlsonMaxIter {
		sx, sy, sz := math.Sqrt(x), math.Sqrt(y), math.Sqrt(z)
		lambda := sx*(sy+sz) + sy*sz
		x = (x + lambda) / 4
		y = (y + lambda) / 4
		z = (z + lambda) / 4
		mean = (x + y + z) / 3
		dx = (mean - x) / mean
		dy = (mean - y) / mean
		dz = (mean - z) / mean
		if math.Abs(dx) <= carlsonTolerance &&
			math.Abs(dy) <= carlsonTolerance &&
			math.Abs(dz) <= carlsonTolerance {
			break
		}
	}

	e2 := dx*dy - dz*dz
	e3 := dx * dy * dz
	return (1 + (e2/24-0.1-3*e3/44)*e2 + e3/14) / math.Sqrt(mean)
}
