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

var lineCases = []TestCase{
	{
		Name:   "equator",
		Path:   projector.Path{projector.MoveTo{P: pt(0, 90)}, projector.Horizontal{X: 360}},
		Target: "mollweide",
		Width:  400,
		Height: 200,
	},
	{
		Name:   "prime_meridian",
		Path:   projector.Path{projector.MoveTo{P: pt(180, 0)}, projector.Vertical{Y: 180}},
		Target: "winkel-tripel",
		Width:  400,
		Height: 250,
	},
	{
		Name:   "meridian_arc",
		Path:   projector.Path{projector.MoveTo{P: pt(300, 0)}, projector.Vertical{Y: 180}},
		Target: "robinson",
		Width:  400,
		Height: 200,
	},
	{
		Name:   "diagonal",
		Path:   projector.Path{projector.MoveTo{P: pt(0, 0)}, projector.LineTo{P: pt(360, 180)}},
		Target: "orthographic",
		Params: mapproj.Params{Origin: pt(0.3, 0.5)},
		Width:  200,
		Height: 200,
	},
	{
		Name:   "graticule_mercator",
		Path:   Graticule(30),
		Target: "mercator",
		Params: mapproj.Params{LatLimit: 1.4},
		Width:  300,
		Height: 300,
	},
	{
		Name:   "graticule_peirce",
		Path:   Graticule(30),
		Target: "peirce-quincuncial",
		Width:  300,
		Height: 300,
	},
	{
		Name:   "graticule_conic",
		Path:   Graticule(15),
		Target: "equidistant-conic",
		Params: mapproj.Params{StdLat: 0.5, StdLatB: 1},
		Width:  360,
		Height: 180,
	},
}
