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

package testcases

import (
	projector "github.com/Tau-Laboratory/Ink-Projector"
	"github.com/Tau-Laboratory/Ink-Projector/mapproj"
)

var curveCases = []TestCase{
	{
		Name: "quadratic",
		Path: projector.Path{
			projector.MoveTo{P: pt(40, 100)},
			projector.QuadTo{C: pt(180, 10), P: pt(320, 100)},
		},
		Target: "robinson",
		Width:  400,
		Height: 200,
	},
	{
		Name: "cubic_wave",
		Path: projector.Path{
			projector.MoveTo{P: pt(20, 90)},
			projector.CubeTo{C1: pt(100, 10), C2: pt(260, 170), P: pt(340, 90)},
		},
		Target: "winkel-tripel",
		Width:  400,
		Height: 250,
	},
	{
		Name:   "circle",
		Path:   circle(180, 90, 60),
		Target: "lambert-azimuthal-equal-area",
		Width:  300,
		Height: 300,
	},
	{
		Name:   "circle_stereographic",
		Path:   circle(180, 120, 40),
		Target: "stereographic",
		Params: mapproj.Params{LatLimit: 1.2},
		Width:  300,
		Height: 300,
	},
	{
		Name: "rotated_ellipse",
		Path: projector.Path{
			projector.MoveTo{P: pt(120, 90)},
			projector.ArcTo{P: pt(240, 90), Radii: pt(60, 25), Rotation: 30},
			projector.ArcTo{P: pt(120, 90), Radii: pt(60, 25), Rotation: 30},
			projector.Close{},
		},
		Target: "gall-peters",
		Width:  400,
		Height: 260,
	},
	{
		// radii too small for the chord are scaled up
		Name: "small_radii",
		Path: projector.Path{
			projector.MoveTo{P: pt(100, 60)},
			projector.ArcTo{P: pt(260, 120), Radii: pt(5, 5), LargeArc: true, Sweep: true},
		},
		Target: "hobo-dyer",
		Width:  400,
		Height: 260,
	},
	{
		Name: "s_curve",
		Path: projector.Path{
			projector.MoveTo{P: pt(30, 150)},
			projector.QuadTo{C: pt(100, 150), P: pt(180, 90)},
			projector.QuadTo{C: pt(260, 30), P: pt(330, 30)},
		},
		Target: "mollweide",
		Width:  400,
		Height: 200,
	},
}

// circle builds a full circle from two arcs.
func circle(cx, cy, r float64) projector.Path {
	return projector.Path{
		projector.MoveTo{P: pt(cx-r, cy)},
		projector.ArcTo{P: pt(cx+r, cy), Radii: pt(r, r)},
		projector.ArcTo{P: pt(cx-r, cy), Radii: pt(r, r)},
		projector.Close{},
	}
}
