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

package main

import (
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// zeroLength is the segment length below which a segment is drawn as a
// square dot.
const zeroLength = 1e-9

// renderPreview draws the projected paths as black lines on a white
// image of size width × height, scaled by scale.
func renderPreview(paths []*path.Data, width, height, scale, lineWidth float64) *image.Gray {
	w := max(1, int(math.Ceil(width*scale)))
	h := max(1, int(math.Ceil(height*scale)))

	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	r := vector.NewRasterizer(w, h)
	for _, p := range paths {
		strokeLines(r, p, scale, lineWidth/2)
	}
	r.Draw(dst, dst.Bounds(), image.Black, image.Point{})
	return dst
}

// strokeLines adds the outline of every segment of p to r.
// Projected paths consist of straight lines only.
func strokeLines(r *vector.Rasterizer, p *path.Data, scale, d float64) {
	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k].Mul(scale)
			start = current
			k++
		case path.CmdLineTo:
			q := p.Coords[k].Mul(scale)
			addSegment(r, current, q, d)
			current = q
			k++
		case path.CmdQuadTo:
			k += 2
		case path.CmdCubeTo:
			k += 3
		case path.CmdClose:
			addSegment(r, current, start, d)
			current = start
		}
	}
}

// addSegment adds the rectangle covering the segment from a to b with
// square caps of half-width d.  All rectangles have the same orientation,
// so that overlaps do not cancel under the nonzero rule.
func addSegment(r *vector.Rasterizer, a, b vec.Vec2, d float64) {
	t := vec.Vec2{X: 1, Y: 0}
	if l := b.Sub(a).Length(); l > zeroLength {
		t = b.Sub(a).Mul(1 / l)
	}
	n := vec.Vec2{X: -t.Y, Y: t.X}
	a = a.Sub(t.Mul(d))
	b = b.Add(t.Mul(d))

	corners := [4]vec.Vec2{
		a.Add(n.Mul(d)),
		b.Add(n.Mul(d)),
		b.Sub(n.Mul(d)),
		a.Sub(n.Mul(d)),
	}
	r.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, c := range corners[1:] {
		r.LineTo(float32(c.X), float32(c.Y))
	}
	r.ClosePath()
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
