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

package mapproj

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func near(a, b vec.Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestCenteredSquare(t *testing.T) {
	cases := []struct {
		w, h float64
		want rect.Rect
	}{
		{200, 100, rect.Rect{LLx: 50, LLy: 0, URx: 150, URy: 100}},
		{100, 200, rect.Rect{LLx: 0, LLy: 50, URx: 100, URy: 150}},
		{30, 30, rect.Rect{URx: 30, URy: 30}},
	}
	for _, tc := range cases {
		got := CenteredSquare(tc.w, tc.h)
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("%gx%g (-want +got):\n%s", tc.w, tc.h, d)
		}
	}
}

func TestLinear(t *testing.T) {
	from := rect.Rect{LLx: -1, LLy: -2, URx: 3, URy: 2}
	to := rect.Rect{LLx: 10, LLy: 100, URx: 30, URy: 0}
	tr := Linear(from, to)

	cases := []struct {
		in, want vec.Vec2
	}{
		{vec.Vec2{X: -1, Y: -2}, vec.Vec2{X: 10, Y: 100}},
		{vec.Vec2{X: 3, Y: 2}, vec.Vec2{X: 30, Y: 0}},
		{vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 20, Y: 50}},
		{vec.Vec2{X: 5, Y: 4}, vec.Vec2{X: 40, Y: -50}},
	}
	for _, tc := range cases {
		got := tr(tc.in.X, tc.in.Y)
		if !near(got, tc.want, 1e-12) {
			t.Errorf("%v: expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestFitTo(t *testing.T) {
	cases := []struct {
		name string
		from rect.Rect
		want rect.Rect
	}{
		{"wide", rect.Rect{LLx: -4, LLy: -1, URx: 4, URy: 1}, rect.Rect{LLx: 0, LLy: 25, URx: 200, URy: 75}},
		{"tall", rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 2}, rect.Rect{LLx: 75, LLy: 0, URx: 125, URy: 100}},
		{"exact", rect.Rect{LLx: 1, LLy: 1, URx: 3, URy: 2}, rect.Rect{URx: 200, URy: 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := FitTo(tc.from, 200, 100)
			ll := tr(tc.from.LLx, tc.from.LLy)
			ur := tr(tc.from.URx, tc.from.URy)
			got := rect.Rect{LLx: ll.X, LLy: ll.Y, URx: ur.X, URy: ur.Y}
			if d := cmp.Diff(tc.want, got, approx); d != "" {
				t.Errorf("(-want +got):\n%s", d)
			}
		})
	}
}

func TestInverseEquirectangular(t *testing.T) {
	inv := InverseEquirectangular(360, 180)
	fwd := Equirectangular(360, 180)

	cases := []struct {
		pixel, angles vec.Vec2
	}{
		{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: -math.Pi, Y: -math.Pi / 2}},
		{vec.Vec2{X: 360, Y: 180}, vec.Vec2{X: math.Pi, Y: math.Pi / 2}},
		{vec.Vec2{X: 180, Y: 90}, vec.Vec2{X: 0, Y: 0}},
		{vec.Vec2{X: 270, Y: 45}, vec.Vec2{X: math.Pi / 2, Y: -math.Pi / 4}},
	}
	for _, tc := range cases {
		got := inv(tc.pixel.X, tc.pixel.Y)
		if !near(got, tc.angles, 1e-12) {
			t.Errorf("inverse %v: expected %v, got %v", tc.pixel, tc.angles, got)
		}
		back := fwd(got.X, got.Y)
		if !near(back, tc.pixel, 1e-9) {
			t.Errorf("round trip %v: got %v", tc.pixel, back)
		}
	}
}

func TestBounds(t *testing.T) {
	tr := Transformation(func(x, y float64) vec.Vec2 {
		return vec.Vec2{X: x * x, Y: -y}
	})
	domain := rect.Rect{LLx: -2, LLy: -1, URx: 1, URy: 3}
	got := Bounds(tr, domain, 31, 5)
	want := rect.Rect{LLx: 0, LLy: -3, URx: 4, URy: 1}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}
