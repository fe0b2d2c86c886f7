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

// Package mapproj implements map projections from longitude and latitude
// to a rectangular drawing area, together with the inverse equirectangular
// transformation that turns drawing coordinates back into angles.
//
// Angles are in radians.  Longitudes range over [-π, π] and latitudes
// over [-π/2, π/2].  All projections are computed on the unit sphere and
// then scaled to fit the requested width and height.
package mapproj

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Transformation maps a pair of coordinates to a point.
// Forward projections take (longitude, latitude), the inverse
// transformation takes drawing coordinates.
type Transformation func(x, y float64) vec.Vec2

// LongLatBound returns the longitude-latitude domain.
func LongLatBound() rect.Rect {
	return rect.Rect{LLx: -math.Pi, LLy: -math.Pi / 2, URx: math.Pi, URy: math.Pi / 2}
}

// RectangleBound returns the rectangle of the given size with its lower
// left corner at the origin.
func RectangleBound(width, height float64) rect.Rect {
	return rect.Rect{URx: width, URy: height}
}

// CircleBound returns the smallest rectangle containing the origin-centred
// ellipse with radii rx and ry.
func CircleBound(rx, ry float64) rect.Rect {
	return rect.Rect{LLx: -rx, LLy: -ry, URx: rx, URy: ry}
}

// CenteredSquare returns the largest square inside the rectangle
// [0, width] × [0, height], centred in the rectangle.
func CenteredSquare(width, height float64) rect.Rect {
	side := min(width, height)
	x0 := max(0, width-height) / 2
	y0 := max(0, height-width) / 2
	return rect.Rect{LLx: x0, LLy: y0, URx: x0 + side, URy: y0 + side}
}

// LinearMatrix returns the affine map which takes the corners of from onto
// the corresponding corners of to.
func LinearMatrix(from, to rect.Rect) matrix.Matrix {
	sx := (to.URx - to.LLx) / (from.URx - from.LLx)
	sy := (to.URy - to.LLy) / (from.URy - from.LLy)
	return matrix.Matrix{sx, 0, 0, sy, to.LLx - from.LLx*sx, to.LLy - from.LLy*sy}
}

// Linear returns the transformation which rescales from onto to,
// independently along each axis.
func Linear(from, to rect.Rect) Transformation {
	m := LinearMatrix(from, to)
	return func(x, y float64) vec.Vec2 {
		return apply(m, x, y)
	}
}

// FitTo returns the transformation which scales from to the largest
// rectangle of the same aspect ratio that fits into width × height.
// The result is centred in the drawing area.
func FitTo(from rect.Rect, width, height float64) Transformation {
	aspect := (from.URx - from.LLx) / (from.URy - from.LLy)
	return Linear(from, fitAspect(aspect, width, height))
}

// fitAspect returns the largest centred rectangle with the given aspect
// ratio inside [0, width] × [0, height].
func fitAspect(aspect, width, height float64) rect.Rect {
	w, h := width, width/aspect
	if aspect*height <= width {
		w, h = height*aspect, height
	}
	x0 := (width - w) / 2
	y0 := (height - h) / 2
	return rect.Rect{LLx: x0, LLy: y0, URx: x0 + w, URy: y0 + h}
}

// InverseEquirectangular maps the drawing area width × height of an
// equirectangular map back to longitude and latitude.
func InverseEquirectangular(width, height float64) Transformation {
	return Linear(RectangleBound(width, height), LongLatBound())
}

// Equirectangular maps longitude and latitude linearly onto the drawing
// area width × height.
func Equirectangular(width, height float64) Transformation {
	return Linear(LongLatBound(), RectangleBound(width, height))
}

// Bounds samples tr on an nx × ny grid covering domain, and returns the
// bounding box of the images.  Grid sizes below 2 are treated as 2.
func Bounds(tr Transformation, domain rect.Rect, nx, ny int) rect.Rect {
	nx = max(nx, 2)
	ny = max(ny, 2)
	res := rect.Rect{
		LLx: math.Inf(+1), LLy: math.Inf(+1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for i := range nx {
		x := lerp(domain.LLx, domain.URx, i, nx)
		for j := range ny {
			p := tr(x, lerp(domain.LLy, domain.URy, j, ny))
			res.LLx = min(res.LLx, p.X)
			res.LLy = min(res.LLy, p.Y)
			res.URx = max(res.URx, p.X)
			res.URy = max(res.URy, p.Y)
		}
	}
	return res
}

// lerp returns the i-th of n evenly spaced values from a to b.
func lerp(a, b float64, i, n int) float64 {
	if i == n-1 {
		return b
	}
	return a + (b-a)*float64(i)/float64(n-1)
}

func apply(m matrix.Matrix, x, y float64) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*x + m[2]*y + m[4],
		Y: m[1]*x + m[3]*y + m[5],
	}
}
