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

// Package svgpath converts between SVG path data and the path types of
// the projector.
//
// [Parse] accepts the full path-data grammar (M, L, H, V, C, S, Q, T, A
// and Z, absolute and relative) and returns absolute commands.  The
// path data is read by the canvas package, which normalises the path:
// H and V become lines, S and T are expanded into full cubic and
// quadratic segments, collinear consecutive lines are merged and arc
// radii are scaled up where they cannot span the end points.
package svgpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/canvas"
	"seehuhn.de/go/geom/vec"

	projector "github.com/Tau-Laboratory/Ink-Projector"
)

// ErrSyntax is returned by [Parse] for malformed path data.
var ErrSyntax = errors.New("svgpath: syntax error")

// Parse converts SVG path data into a path.
func Parse(d string) (projector.Path, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return nil, nil
	}

	p, err := canvas.ParseSVG(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return FromCanvas(p), nil
}

// FromCanvas converts a canvas path into a path.
func FromCanvas(p *canvas.Path) projector.Path {
	var res projector.Path
	for _, seg := range p.Segments() {
		switch seg.Cmd {
		case canvas.MoveToCmd:
			res = append(res, projector.MoveTo{P: point(seg.End)})
		case canvas.LineToCmd:
			res = append(res, projector.LineTo{P: point(seg.End)})
		case canvas.QuadToCmd:
			res = append(res, projector.QuadTo{
				C: point(seg.CP1()),
				P: point(seg.End),
			})
		case canvas.CubeToCmd:
			res = append(res, projector.CubeTo{
				C1: point(seg.CP1()),
				C2: point(seg.CP2()),
				P:  point(seg.End),
			})
		case canvas.ArcToCmd:
			rx, ry, rot, large, sweep := seg.Arc()
			res = append(res, projector.ArcTo{
				P:        point(seg.End),
				Radii:    vec.Vec2{X: rx, Y: ry},
				Rotation: rot,
				LargeArc: large,
				Sweep:    sweep,
			})
		case canvas.CloseCmd:
			res = append(res, projector.Close{})
		}
	}
	return res
}

func point(p canvas.Point) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}
