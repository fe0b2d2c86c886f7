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
	"strings"

	projector "github.com/Tau-Laboratory/Ink-Projector"
	"github.com/Tau-Laboratory/Ink-Projector/mapproj"
)

// catalogParams is valid for every projection in the catalog.
var catalogParams = mapproj.Params{
	StdLat:    0.5,
	StdLatB:   1,
	LatLimit:  1.4,
	Origin:    pt(0, 0.5),
	Pole:      mapproj.North,
	Precision: 1e-9,
}

// continent is a closed blob covering much of the northern hemisphere.
var continent = projector.Path{
	projector.MoveTo{P: pt(80, 60)},
	projector.CubeTo{C1: pt(120, 20), C2: pt(220, 10), P: pt(270, 50)},
	projector.QuadTo{C: pt(320, 90), P: pt(260, 120)},
	projector.LineTo{P: pt(170, 110)},
	projector.ArcTo{P: pt(80, 60), Radii: pt(60, 40), Sweep: true},
	projector.Close{},
}

// catalogCases projects the same geometry with every available
// projection.
func catalogCases() []TestCase {
	frame := square(0, 0, MapHeight)
	frame = append(frame, square(MapHeight, 0, MapHeight)...)

	var cases []TestCase
	for _, name := range mapproj.Names() {
		for _, g := range []struct {
			suffix string
			path   projector.Path
		}{
			{"continent", continent},
			{"frame", frame},
		} {
			cases = append(cases, TestCase{
				Name:   strings.ReplaceAll(name, "-", "_") + "_" + g.suffix,
				Path:   g.path,
				Target: name,
				Params: catalogParams,
				Width:  MapWidth,
				Height: MapHeight,
			})
		}
	}
	return cases
}
