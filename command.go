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

package projector

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Command is one drawing command of a [Path].
// All coordinates are absolute.
type Command interface {
	isCommand()
}

// MoveTo starts a new subpath at P.
type MoveTo struct {
	P vec.Vec2
}

// LineTo draws a straight line to P.
type LineTo struct {
	P vec.Vec2
}

// Horizontal draws a horizontal line to the given x coordinate.
type Horizontal struct {
	X float64
}

// Vertical draws a vertical line to the given y coordinate.
type Vertical struct {
	Y float64
}

// CubeTo draws a cubic Bézier curve to P.
type CubeTo struct {
	C1, C2 vec.Vec2 // control points
	P      vec.Vec2
}

// QuadTo draws a quadratic Bézier curve to P.
type QuadTo struct {
	C vec.Vec2 // control point
	P vec.Vec2
}

// ArcTo draws an elliptical arc to P, using the SVG endpoint
// parametrisation.
type ArcTo struct {
	P        vec.Vec2
	Radii    vec.Vec2
	Rotation float64 // x-axis rotation in degrees
	LargeArc bool
	Sweep    bool
}

// Close draws a straight line back to the start of the current subpath.
type Close struct{}

func (MoveTo) isCommand()     {}
func (LineTo) isCommand()     {}
func (Horizontal) isCommand() {}
func (Vertical) isCommand()   {}
func (CubeTo) isCommand()     {}
func (QuadTo) isCommand()     {}
func (ArcTo) isCommand()      {}
func (Close) isCommand()      {}

// Path is a sequence of drawing commands.
type Path []Command

// FromData converts a geom path into a [Path].
func FromData(d *path.Data) Path {
	if d == nil {
		return nil
	}
	res := make(Path, 0, len(d.Cmds))
	k := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			res = append(res, MoveTo{P: d.Coords[k]})
			k++
		case path.CmdLineTo:
			res = append(res, LineTo{P: d.Coords[k]})
			k++
		case path.CmdQuadTo:
			res = append(res, QuadTo{C: d.Coords[k], P: d.Coords[k+1]})
			k += 2
		case path.CmdCubeTo:
			res = append(res, CubeTo{C1: d.Coords[k], C2: d.Coords[k+1], P: d.Coords[k+2]})
			k += 3
		case path.CmdClose:
			res = append(res, Close{})
		}
	}
	return res
}

// checkFinite returns an error if any command of p has a NaN or
// infinite argument.
func checkFinite(p Path) error {
	for i, cmd := range p {
		var vals []float64
		switch c := cmd.(type) {
		case MoveTo:
			vals = []float64{c.P.X, c.P.Y}
		case LineTo:
			vals = []float64{c.P.X, c.P.Y}
		case Horizontal:
			vals = []float64{c.X}
		case Vertical:
			vals = []float64{c.Y}
		case CubeTo:
			vals = []float64{c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.P.X, c.P.Y}
		case QuadTo:
			vals = []float64{c.C.X, c.C.Y, c.P.X, c.P.Y}
		case ArcTo:
			vals = []float64{c.P.X, c.P.Y, c.Radii.X, c.Radii.Y, c.Rotation}
		}
		for _, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w in command %d (%T)", ErrNonFinite, i, cmd)
			}
		}
	}
	return nil
}

// extent returns a rectangle containing the whole path.  Bézier curves
// are covered by their control points.  Arcs are covered by a square
// around the start point which is large enough for any choice of flags.
// The second return value is false if p has no coordinates.
func extent(p Path) (rect.Rect, bool) {
	box := rect.Rect{
		LLx: math.Inf(+1), LLy: math.Inf(+1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	found := false
	add := func(v vec.Vec2) {
		box.LLx = min(box.LLx, v.X)
		box.LLy = min(box.LLy, v.Y)
		box.URx = max(box.URx, v.X)
		box.URy = max(box.URy, v.Y)
		found = true
	}

	var current vec.Vec2
	for _, cmd := range p {
		switch c := cmd.(type) {
		case MoveTo:
			add(c.P)
			current = c.P
		case LineTo:
			add(current)
			add(c.P)
			current = c.P
		case Horizontal:
			add(current)
			current.X = c.X
			add(current)
		case Vertical:
			add(current)
			current.Y = c.Y
			add(current)
		case CubeTo:
			add(current)
			add(c.C1)
			add(c.C2)
			add(c.P)
			current = c.P
		case QuadTo:
			add(current)
			add(c.C)
			add(c.P)
			current = c.P
		case ArcTo:
			// Radii too small for the chord are scaled up uniformly,
			// by at most half the chord over the smaller radius.
			var r float64
			rx, ry := math.Abs(c.Radii.X), math.Abs(c.Radii.Y)
			if rMin := min(rx, ry); rMin > 0 {
				r = max(rx, ry) * max(1, c.P.Sub(current).Length()/2/rMin)
			}
			add(current.Sub(vec.Vec2{X: 2 * r, Y: 2 * r}))
			add(current.Add(vec.Vec2{X: 2 * r, Y: 2 * r}))
			add(c.P)
			current = c.P
		}
	}
	return box, found
}
