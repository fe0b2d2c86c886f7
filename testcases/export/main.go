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

// Command export projects all test cases and writes the results to JSON,
// for comparison with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/rect"

	"github.com/Tau-Laboratory/Ink-Projector/mapproj"
	"github.com/Tau-Laboratory/Ink-Projector/svgpath"
	"github.com/Tau-Laboratory/Ink-Projector/testcases"
)

func main() {
	var out struct {
		Approximator jsonApproximator `json:"approximator"`
		TestCases    []jsonTestCase   `json:"testcases"`
	}

	a := testcases.Approximator
	out.Approximator = jsonApproximator{
		Precision:     a.Precision,
		MaxResolution: a.MaxResolution,
		Increment:     a.Increment,
		ZLimit:        a.ZLimit,
		ZFill:         a.ZFill,
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/projected.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonApproximator struct {
	Precision     float64 `json:"precision"`
	MaxResolution int     `json:"max_resolution"`
	Increment     int     `json:"increment"`
	ZLimit        float64 `json:"z_limit"`
	ZFill         int     `json:"z_fill"`
}

type jsonTestCase struct {
	Name    string     `json:"name"`
	Target  string     `json:"target"`
	Params  jsonParams `json:"params"`
	Width   float64    `json:"width"`
	Height  float64    `json:"height"`
	Bound   []float64  `json:"bound,omitempty"`
	Input   string     `json:"input"`
	Output  string     `json:"output"`
	Dropped bool       `json:"dropped"`
}

type jsonParams struct {
	RefLong   float64    `json:"ref_long,omitempty"`
	RefLat    float64    `json:"ref_lat,omitempty"`
	StdLat    float64    `json:"std_lat,omitempty"`
	StdLatB   float64    `json:"std_lat_b,omitempty"`
	LatLimit  float64    `json:"lat_limit,omitempty"`
	Origin    [2]float64 `json:"origin"`
	Pole      string     `json:"pole"`
	Precision float64    `json:"precision,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	name := category + "_" + tc.Name
	proj, err := tc.Projection()
	if err != nil {
		panic(err)
	}
	res, err := proj.Transform(name, tc.Path)
	if err != nil {
		panic(err)
	}

	jtc := jsonTestCase{
		Name:    name,
		Target:  tc.Target,
		Params:  paramsToJSON(tc.Params),
		Width:   tc.Width,
		Height:  tc.Height,
		Input:   svgpath.FormatPath(tc.Path),
		Output:  svgpath.Format(res),
		Dropped: len(res.Cmds) == 0,
	}
	if b := tc.Bound; b != (rect.Rect{}) {
		jtc.Bound = []float64{b.LLx, b.LLy, b.URx, b.URy}
	}
	return jtc
}

func paramsToJSON(p mapproj.Params) jsonParams {
	return jsonParams{
		RefLong:   p.RefLong,
		RefLat:    p.RefLat,
		StdLat:    p.StdLat,
		StdLatB:   p.StdLatB,
		LatLimit:  p.LatLimit,
		Origin:    [2]float64{p.Origin.X, p.Origin.Y},
		Pole:      p.Pole.String(),
		Precision: p.Precision,
	}
}
