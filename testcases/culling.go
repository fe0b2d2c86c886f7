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
	"math"

	"seehuhn.de/go/geom/rect"

	projector "github.com/Tau-Laboratory/Ink-Projector"
)

// eastern is the eastern hemisphere in longitude-latitude space.
var eastern = rect.Rect{LLx: 0, LLy: -math.Pi / 2, URx: math.Pi, URy: math.Pi / 2}

var cullingCases = []TestCase{
	{
		Name:    "west_square",
		Path:    square(20, 40, 100),
		Target:  "robinson",
		Width:   400,
		Height:  200,
		Bound:   eastern,
		Dropped: true,
	},
	{
		Name:   "east_square",
		Path:   square(220, 40, 100),
		Target: "robinson",
		Width:  400,
		Height: 200,
		Bound:  eastern,
	},
	{
		// the western part is clamped onto the bound
		Name:   "straddling",
		Path:   square(120, 40, 120),
		Target: "robinson",
		Width:  400,
		Height: 200,
		Bound:  eastern,
	},
	{
		// the curve bulges into the bound although both end points are
		// outside
		Name: "bulging_curve",
		Path: projector.Path{
			projector.MoveTo{P: pt(100, 20)},
			projector.CubeTo{C1: pt(260, 60), C2: pt(260, 120), P: pt(100, 160)},
		},
		Target: "mollweide",
		Width:  400,
		Height: 200,
		Bound:  eastern,
	},
	{
		Name:    "empty",
		Target:  "robinson",
		Width:   400,
		Height:  200,
		Dropped: true,
	},
	{
		Name:    "only_close",
		Path:    projector.Path{projector.Close{}},
		Target:  "robinson",
		Width:   400,
		Height:  200,
		Dropped: true,
	},
}

// square returns the closed axis-aligned square with top left corner
// (x, y) and side length size.
func square(x, y, size float64) projector.Path {
	return projector.Path{
		projector.MoveTo{P: pt(x, y)},
		projector.Horizontal{X: x + size},
		projector.Vertical{Y: y + size},
		projector.Horizontal{X: x},
		projector.Close{},
	}
}
