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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	projector "github.com/Tau-Laboratory/Ink-Projector"
	"github.com/Tau-Laboratory/Ink-Projector/approx"
	"github.com/Tau-Laboratory/Ink-Projector/mapproj"
)

// Size of the equirectangular source map: one unit per degree.
const (
	MapWidth  = 360
	MapHeight = 180
)

// TestCase defines a single projection test.
type TestCase struct {
	Name    string         // lowercase a-z and _ only
	Path    projector.Path // the geometry, on a MapWidth × MapHeight equirectangular map
	Target  string         // target projection, see mapproj.Names
	Params  mapproj.Params // parameters of the target projection
	Width   float64        // target width
	Height  float64        // target height
	Bound   rect.Rect      // visibility bound (zero value means the whole sphere)
	Dropped bool           // whether the path is expected to be dropped
}

// Approximator is the approximator used for all test cases.
var Approximator = approx.Equidistant{
	Precision:     0.1,
	MaxResolution: 500,
	Increment:     1,
	ZLimit:        3,
	ZFill:         5,
}

// Projection returns the projection described by the test case.
func (tc TestCase) Projection() (*projector.Projection, error) {
	return projector.NewBuilder().
		FromEquirectangular(MapWidth, MapHeight).
		To(tc.Target, tc.Width, tc.Height, tc.Params).
		WithVisibilityBounds(tc.Bound).
		WithApproximator(Approximator).
		Build()
}

// Graticule returns the meridians and parallels of the source map, spaced
// step degrees apart.
func Graticule(step float64) projector.Path {
	var p projector.Path
	for x := 0.0; x <= MapWidth; x += step {
		p = append(p, projector.MoveTo{P: pt(x, 0)}, projector.Vertical{Y: MapHeight})
	}
	for y := 0.0; y <= MapHeight; y += step {
		p = append(p, projector.MoveTo{P: pt(0, y)}, projector.Horizontal{X: MapWidth})
	}
	return p
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
