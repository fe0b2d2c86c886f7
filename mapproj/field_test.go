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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// parallelTol is the tolerance used when checking that grid lines stay
// parallel to an axis.
const parallelTol = 1e-4

// field is a transformation sampled on a regular longitude-latitude grid.
// points[i][j] is the image of the i-th longitude and the j-th latitude.
type field struct {
	points [][]vec.Vec2
	bounds rect.Rect

	horizontalsParallel bool // meridians map to vertical lines
	verticalsParallel   bool // parallels map to horizontal lines
	horizontalMonotone  bool // x grows with longitude
	verticalMonotone    bool // y grows with latitude
}

func newField(tr Transformation, nx, ny int) *field {
	f := &field{
		points:              make([][]vec.Vec2, nx),
		horizontalsParallel: true,
		verticalsParallel:   true,
		horizontalMonotone:  true,
		verticalMonotone:    true,
	}
	domain := LongLatBound()
	for i := range nx {
		f.points[i] = make([]vec.Vec2, ny)
		for j := range ny {
			f.points[i][j] = tr(lerp(domain.LLx, domain.URx, i, nx), lerp(domain.LLy, domain.URy, j, ny))
		}
	}
	f.bounds = Bounds(tr, domain, nx, ny)

	for i, column := range f.points {
		for j, p := range column {
			if i > 0 {
				prev := f.points[i-1][j]
				f.verticalsParallel = f.verticalsParallel && math.Abs(p.Y-prev.Y) <= parallelTol
				f.horizontalMonotone = f.horizontalMonotone && p.X >= prev.X
			}
			if j > 0 {
				prev := column[j-1]
				f.horizontalsParallel = f.horizontalsParallel && math.Abs(p.X-prev.X) <= parallelTol
				f.verticalMonotone = f.verticalMonotone && p.Y >= prev.Y
			}
		}
	}
	return f
}

func (f *field) width() float64  { return f.bounds.URx - f.bounds.LLx }
func (f *field) height() float64 { return f.bounds.URy - f.bounds.LLy }
func (f *field) aspect() float64 { return f.width() / f.height() }

// centered reports whether the sampled bounds have equal margins inside
// width × height.
func (f *field) centered(width, height float64) bool {
	const delta = 1e-5
	dx := math.Abs(f.bounds.LLx - (width - f.bounds.URx))
	dy := math.Abs(f.bounds.LLy - (height - f.bounds.URy))
	return dx <= delta && dy <= delta
}

// radii returns the distance from center of the images of the first
// meridian, one value per latitude.
func (f *field) radii(center vec.Vec2) []float64 {
	res := make([]float64, len(f.points[0]))
	for j, p := range f.points[0] {
		res[j] = p.Sub(center).Length()
	}
	return res
}

// circles reports whether every parallel maps onto a circle around
// center.
func (f *field) circles(center vec.Vec2) bool {
	for i := 1; i < len(f.points); i++ {
		for j, p := range f.points[i] {
			r := p.Sub(center).Length()
			rPrev := f.points[i-1][j].Sub(center).Length()
			if math.Abs(r*r-rPrev*rPrev) > parallelTol {
				return false
			}
		}
	}
	return true
}
