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

// Command genpdf plots every test case as a one-page PDF.
// The projected graticule is drawn in grey, the projected path in black.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"github.com/Tau-Laboratory/Ink-Projector/testcases"
)

const plotDir = "testdata/plots"

// graticuleStep is the spacing of the graticule lines, in degrees.
const graticuleStep = 15

func main() {
	if err := os.MkdirAll(plotDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(plotDir, name+".pdf")
			if err := generatePDF(name, tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(name string, tc testcases.TestCase, pdfPath string) error {
	proj, err := tc.Projection()
	if err != nil {
		return err
	}
	projected, err := proj.Transform(name, tc.Path)
	if err != nil {
		return err
	}

	// the graticule ignores the visibility bound of the test case
	full := tc
	full.Bound = rect.Rect{}
	gproj, err := full.Projection()
	if err != nil {
		return err
	}
	graticule, err := gproj.Transform("graticule", testcases.Graticule(graticuleStep))
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: tc.Width,
		URy: tc.Height,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; projections use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, tc.Height})

	page.SetStrokeColor(color.DeviceGray(0.75))
	page.SetLineWidth(0.25)
	page.Rectangle(0, 0, tc.Width, tc.Height)
	page.Stroke()
	drawPath(page, graticule)
	page.Stroke()

	if len(projected.Cmds) > 0 {
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(1)
		drawPath(page, projected)
		page.Stroke()
	}

	return page.Close()
}

func drawPath(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
