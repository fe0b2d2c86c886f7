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
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/Tau-Laboratory/Ink-Projector/basis"
)

// Pole selects the hemisphere of a polar projection.
type Pole int

// These are the supported poles.
const (
	North Pole = iota
	South
)

func (p Pole) String() string {
	switch p {
	case North:
		return "north"
	case South:
		return "south"
	default:
		return fmt.Sprintf("Pole(%d)", int(p))
	}
}

// maxNewtonSteps caps the iteration in [Mollweide].
const maxNewtonSteps = 100

// Mercator returns the Mercator projection centred on refLong.
// Latitudes beyond ±latLimit are clamped, so latLimit determines the
// vertical extent of the map.  latLimit must be in (0, π/2).
func Mercator(width, height, refLong, latLimit float64) Transformation {
	domain := rect.Rect{
		LLx: -math.Pi - refLong, LLy: -latLimit,
		URx: math.Pi - refLong, URy: latLimit,
	}
	clamp := basis.Clamp(domain)
	extreme := mercatorY(latLimit)
	scale := FitTo(rect.Rect{LLx: domain.LLx, LLy: -extreme, URx: domain.URx, URy: extreme}, width, height)
	return func(long, lat float64) vec.Vec2 {
		p := clamp(long-refLong, lat)
		return scale(p.X, mercatorY(p.Y))
	}
}

func mercatorY(lat float64) float64 {
	return math.Log(math.Tan(math.Pi/4 + lat/2))
}

// WinkelTripel returns the Winkel tripel projection with the given
// standard parallel of the equirectangular component.
func WinkelTripel(width, height, stdLat float64) Transformation {
	cosStd := math.Cos(stdLat)
	unscaled := func(long, lat float64) vec.Vec2 {
		cosLat := math.Cos(lat)
		s := sinc(math.Acos(cosLat * math.Cos(long/2)))
		return vec.Vec2{
			X: (long*cosStd + 2*cosLat*math.Sin(long/2)/s) / 2,
			Y: (lat + math.Sin(lat)/s) / 2,
		}
	}

	bound := rect.Rect{
		LLx: unscaled(-math.Pi, 0).X,
		LLy: unscaled(0, -math.Pi/2).Y,
		URx: unscaled(math.Pi, 0).X,
		URy: unscaled(0, math.Pi/2).Y,
	}
	scale := FitTo(bound, width, height)
	return func(long, lat float64) vec.Vec2 {
		p := unscaled(long, lat)
		return scale(p.X, p.Y)
	}
}

// sinc is the unnormalised cardinal sine.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

// Mollweide returns the Mollweide projection centred on refLong.
// The auxiliary angle is found by Newton's method, which stops once
// successive steps differ by at most precision.
func Mollweide(width, height, refLong, precision float64) Transformation {
	scale := FitTo(CircleBound(2, 1), width, height)
	return func(long, lat float64) vec.Vec2 {
		theta := mollweideTheta(lat, precision)
		sin, cos := math.Sincos(theta)
		return scale((long-refLong)*cos*2/math.Pi, sin)
	}
}

// mollweideTheta solves 2θ + sin 2θ = π sin(lat) for θ.
func mollweideTheta(lat, precision float64) float64 {
	if math.Abs(lat) >= math.Pi/2 {
		return lat
	}
	rhs := math.Pi * math.Sin(lat)
	step := func(theta float64) float64 {
		cos := math.Cos(theta)
		if cos == 0 {
			return lat
		}
		return theta - (2*theta+math.Sin(2*theta)-rhs)/(4*cos*cos)
	}

	prev := lat
	theta := step(prev)
	for i := 0; i < maxNewtonSteps && math.Abs(theta-prev) > precision; i++ {
		prev, theta = theta, step(theta)
	}
	return theta
}

// CylindricalEqualArea returns the cylindrical equal-area projection
// centred on refLong, with true scale along the parallels ±stdLat.
// The map has aspect ratio π·cos²(stdLat).
func CylindricalEqualArea(width, height, refLong, stdLat float64) Transformation {
	c := math.Cos(stdLat)
	from := rect.Rect{LLx: -math.Pi - refLong, LLy: -1, URx: math.Pi - refLong, URy: 1}
	scale := Linear(from, fitAspect(c*c*math.Pi, width, height))
	return func(long, lat float64) vec.Vec2 {
		return scale(long-refLong, math.Sin(lat))
	}
}

// EquidistantConic returns the equidistant conic projection with the
// standard parallels stdLatA and stdLatB.  The point (refLong, refLat)
// is the origin of the unscaled projection.
//
// If the cone degenerates into a cylinder (stdLatA = -stdLatB), the
// equirectangular projection is returned instead.
func EquidistantConic(width, height, refLong, refLat, stdLatA, stdLatB float64) Transformation {
	var n float64
	if stdLatA == stdLatB {
		n = math.Sin(stdLatA)
	} else {
		n = (math.Cos(stdLatA) - math.Cos(stdLatB)) / (stdLatB - stdLatA)
	}
	if n == 0 {
		return Equirectangular(width, height)
	}

	g := math.Cos(stdLatA)/n + stdLatA
	rho0 := g - refLat
	unscaled := func(long, lat float64) vec.Vec2 {
		rho := g - lat
		sin, cos := math.Sincos(n * (long - refLong))
		return vec.Vec2{X: rho * sin, Y: rho0 - rho*cos}
	}

	bound := rect.Rect{
		LLx: math.Inf(+1), LLy: math.Inf(+1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	corners := []vec.Vec2{
		{X: -math.Pi, Y: -math.Pi / 2},
		{X: -math.Pi, Y: math.Pi / 2},
		{X: math.Pi, Y: -math.Pi / 2},
		{X: math.Pi, Y: math.Pi / 2},
		{X: 0, Y: -math.Pi / 2},
		{X: 0, Y: math.Pi / 2},
	}
	for i, c := range corners {
		p := unscaled(c.X, c.Y)
		if i < 4 {
			// the edge midpoints only bound the vertical extent
			bound.LLx = min(bound.LLx, p.X)
			bound.URx = max(bound.URx, p.X)
		}
		bound.LLy = min(bound.LLy, p.Y)
		bound.URy = max(bound.URy, p.Y)
	}

	scale := FitTo(bound, width, height)
	return func(long, lat float64) vec.Vec2 {
		p := unscaled(long, lat)
		return scale(p.X, p.Y)
	}
}

// Orthographic returns the orthographic projection as seen from above
// origin, given as (longitude, latitude).  Points on the far side of the
// globe are pushed out to the rim of the disc.
func Orthographic(width, height float64, origin vec.Vec2) Transformation {
	scale := Linear(CircleBound(1, 1), CenteredSquare(width, height))
	sinLat0, cosLat0 := math.Sincos(origin.Y)
	return func(long, lat float64) vec.Vec2 {
		sinLat, cosLat := math.Sincos(lat)
		cosDL := math.Cos(long - origin.X)
		p := vec.Vec2{
			X: cosLat * math.Sin(long-origin.X),
			Y: cosLat0*sinLat - sinLat0*cosLat*cosDL,
		}

		if sinLat0*sinLat+cosLat0*cosLat*cosDL < 0 {
			if r := p.Length(); r != 0 {
				p = p.Mul(1 / r)
			} else {
				p = vec.Vec2{X: 0, Y: 1}
			}
		}
		return scale(p.X, p.Y)
	}
}

// polarFrame returns the radius and centre of the largest disc inside
// the drawing area.
func polarFrame(width, height float64) (float64, vec.Vec2) {
	r := min(width, height) / 2
	return r, vec.Vec2{X: max(0, width-height)/2 + r, Y: max(0, height-width)/2 + r}
}

// Stereographic returns the stereographic projection around the given
// pole.  The hemisphere beyond latLimit is clamped onto the rim of the
// disc, where latLimit is the latitude furthest from the pole that is
// still shown.
func Stereographic(width, height, latLimit float64, pole Pole) Transformation {
	r, center := polarFrame(width, height)

	domain := LongLatBound()
	sign := 1.0
	if pole == North {
		domain.URy = latLimit
	} else {
		domain.LLy = latLimit
		sign = -1
	}
	clamp := basis.Clamp(domain)
	norm := math.Tan(math.Pi/4 + sign*latLimit/2)

	return func(long, lat float64) vec.Vec2 {
		p := clamp(long, lat)
		radius := r * math.Tan(math.Pi/4+sign*p.Y/2) / norm
		sin, cos := math.Sincos(p.X)
		return center.Add(vec.Vec2{X: radius * cos, Y: radius * sin})
	}
}

// LambertAzimuthal returns the Lambert azimuthal equal-area projection
// around the given pole.  The whole sphere is shown; the opposite pole
// becomes the rim of the disc.
func LambertAzimuthal(width, height float64, pole Pole) Transformation {
	r, center := polarFrame(width, height)
	sign := 1.0
	if pole == South {
		sign = -1
	}
	return func(long, lat float64) vec.Vec2 {
		colat := math.Pi/2 + sign*lat
		radius := r * math.Sin(colat/2)
		sin, cos := math.Sincos(long)
		return center.Add(vec.Vec2{X: radius * cos, Y: radius * sin})
	}
}
