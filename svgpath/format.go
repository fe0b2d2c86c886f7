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

package svgpath

import (
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	projector "github.com/Tau-Laboratory/Ink-Projector"
)

// Format writes d as SVG path data with absolute coordinates.
func Format(d *path.Data) string {
	w := &writer{}
	k := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			w.cmd('M', d.Coords[k])
			k++
		case path.CmdLineTo:
			w.cmd('L', d.Coords[k])
			k++
		case path.CmdQuadTo:
			w.cmd('Q', d.Coords[k:k+2]...)
			k += 2
		case path.CmdCubeTo:
			w.cmd('C', d.Coords[k:k+3]...)
			k += 3
		case path.CmdClose:
			w.cmd('Z')
		}
	}
	return w.String()
}

// FormatPath writes p as SVG path data.  Nil commands are skipped.
func FormatPath(p projector.Path) string {
	w := &writer{}
	for _, cmd := range p {
		switch c := cmd.(type) {
		case projector.MoveTo:
			w.cmd('M', c.P)
		case projector.LineTo:
			w.cmd('L', c.P)
		case projector.Horizontal:
			w.op('H')
			w.num(c.X)
		case projector.Vertical:
			w.op('V')
			w.num(c.Y)
		case projector.CubeTo:
			w.cmd('C', c.C1, c.C2, c.P)
		case projector.QuadTo:
			w.cmd('Q', c.C, c.P)
		case projector.ArcTo:
			w.op('A')
			w.num(c.Radii.X)
			w.num(c.Radii.Y)
			w.num(c.Rotation)
			w.flag(c.LargeArc)
			w.flag(c.Sweep)
			w.num(c.P.X)
			w.num(c.P.Y)
		case projector.Close:
			w.op('Z')
		}
	}
	return w.String()
}

type writer struct {
	strings.Builder
}

func (w *writer) op(c byte) {
	if w.Len() > 0 {
		w.WriteByte(' ')
	}
	w.WriteByte(c)
}

func (w *writer) cmd(c byte, pts ...vec.Vec2) {
	w.op(c)
	for _, p := range pts {
		w.num(p.X)
		w.num(p.Y)
	}
}

func (w *writer) num(x float64) {
	w.WriteByte(' ')
	w.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
}

func (w *writer) flag(b bool) {
	if b {
		w.WriteString(" 1")
	} else {
		w.WriteString(" 0")
	}
}
