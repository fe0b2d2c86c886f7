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

var subpathCases = []TestCase{
	{
		Name: "triangle",
		Path: projector.Path{
			projector.MoveTo{P: pt(60, 40)},
			projector.LineTo{P: pt(300, 40)},
			projector.LineTo{P: pt(180, 150)},
			projector.Close{},
		},
		Target: "robinson",
		Width:  400,
		Height: 200,
	},
	{
		Name: "square_with_hole",
		Path: projector.Path{
			projector.MoveTo{P: pt(90, 30)},
			projector.Horizontal{X: 270},
			projector.Vertical{Y: 150},
			projector.Horizontal{X: 90},
			projector.Close{},
			projector.MoveTo{P: pt(150, 70)},
			projector.Vertical{Y: 110},
			projector.Horizontal{X: 210},
			projector.Vertical{Y: 70},
			projector.Close{},
		},
		Target: "mollweide",
		Width:  400,
		Height: 200,
	},
	{
		// the open subpath fixes the start point until the first close
		Name: "open_then_closed",
		Path: projector.Path{
			projector.MoveTo{P: pt(20, 20)},
			projector.LineTo{P: pt(120, 60)},
			projector.MoveTo{P: pt(200, 120)},
			projector.LineTo{P: pt(340, 160)},
			projector.LineTo{P: pt(260, 170)},
			projector.Close{},
		},
		Target: "winkel-tripel",
		Width:  400,
		Height: 250,
	},
	{
		Name: "polar_islands",
		Path: projector.Path{
			projector.MoveTo{P: pt(40, 150)},
			projector.QuadTo{C: pt(60, 130), P: pt(80, 150)},
			projector.Close{},
			projector.MoveTo{P: pt(220, 160)},
			projector.CubeTo{C1: pt(230, 140), C2: pt(260, 140), P: pt(270, 165)},
			projector.Close{},
		},
		Target: "stereographic",
		Params: mapproj.Params{LatLimit: 0.2, Pole: mapproj.South},
		Width:  300,
		Height: 300,
	},
}
