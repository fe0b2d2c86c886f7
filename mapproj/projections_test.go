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

	"seehuhn.de/go/geom/vec"
)

const (
	testWidth  = 200
	testHeight = 100
)

var testCenter = vec.Vec2{X: 100, Y: 50}

type fieldFlags struct {
	horizontalsParallel, verticalsParallel bool
	horizontalMonotone, verticalMonotone   bool
}

func checkField(t *testing.T, f *field, aspect float64, flags fieldFlags) {
	t.Helper()
	if !f.centered(testWidth, testHeight) {
		t.Errorf("bounds %v not centred", f.bounds)
	}
	if math.Abs(f.height()-testHeight) > 1e-7 {
		t.Errorf("height: expected %d, got %g", testHeight, f.height())
	}
	if math.Abs(f.aspect()-aspect) > 1e-7 {
		t.Errorf("aspect ratio: expected %g, got %g", aspect, f.aspect())
	}
	got := fieldFlags{f.horizontalsParallel, f.verticalsParallel, f.horizontalMonotone, f.verticalMonotone}
	if got != flags {
		t.Errorf("grid shape: expected %+v, got %+v", flags, got)
	}
}

func TestMercator(t *testing.T) {
	cutoff := 0.4 * math.Pi
	f := newField(Mercator(testWidth, testHeight, 0, cutoff), 20, 10)
	aspect := math.Pi / math.Log(math.Tan(math.Pi/4+cutoff/2))
	checkField(t, f, aspect, fieldFlags{true, true, true, true})
}

func TestMercatorCutoff(t *testing.T) {
	prev := math.Inf(+1)
	for _, cutoff := range []float64{0.4 * math.Pi, 0.49 * math.Pi, 0.499 * math.Pi} {
		f := newField(Mercator(testWidth, testHeight, 0, cutoff), 20, 10)
		if a := f.aspect(); a >= prev {
			t.Errorf("cutoff %g: aspect ratio %g did not decrease from %g", cutoff, a, prev)
		} else {
			prev = a
		}
	}
}

func TestMercatorClamp(t *testing.T) {
	tr := Mercator(testWidth, testHeight, 0, math.Pi/4)
	top := tr(0, math.Pi/4)
	for _, lat := range []float64{math.Pi / 3, math.Pi / 2} {
		if got := tr(0, lat); !near(got, top, 1e-12) {
			t.Errorf("latitude %g: expected %v, got %v", lat, top, got)
		}
	}
}

func TestWinkelTripel(t *testing.T) {
	f := newField(WinkelTripel(testWidth, testHeight, 0), 21, 11)
	checkField(t, f, 2, fieldFlags{false, false, true, true})
}

func TestWinkelTripelParallels(t *testing.T) {
	prev := math.Inf(+1)
	for _, std := range []float64{0, math.Acos(2 / math.Pi), 1, -math.Pi / 3, math.Pi / 2} {
		a := newField(WinkelTripel(testWidth, testHeight, std), 20, 10).aspect()
		if a >= prev {
			t.Errorf("standard parallel %g: aspect ratio %g did not decrease from %g", std, a, prev)
		}
		prev = a
	}
}

func TestRobinson(t *testing.T) {
	f := newField(Robinson(testWidth, testHeight, 0), 21, 11)
	if !f.centered(testWidth, testHeight) {
		t.Errorf("bounds %v not centred", f.bounds)
	}
	if math.Abs(f.height()-testHeight) > 1e-7 {
		t.Errorf("height: expected %d, got %g", testHeight, f.height())
	}
	aspect := robinsonX * math.Pi / robinsonY
	if math.Abs(f.aspect()-aspect) > 1e-7 {
		t.Errorf("aspect ratio: expected %g, got %g", aspect, f.aspect())
	}
	if !f.horizontalMonotone || !f.verticalMonotone {
		t.Error("grid is not monotone")
	}
	if !f.verticalsParallel {
		t.Error("parallels are not horizontal")
	}
}

func TestRobinsonTable(t *testing.T) {
	for i, row := range robinsonTable {
		lat := float64(5*i) * math.Pi / 180
		length, dist := robinsonFactors(-lat)
		if math.Abs(length-row[0]) > 1e-9 || math.Abs(dist+row[1]) > 1e-9 {
			t.Errorf("%d°: expected (%g, %g), got (%g, %g)", -5*i, row[0], -row[1], length, dist)
		}
	}
}

func TestMollweide(t *testing.T) {
	f := newField(Mollweide(testWidth, testHeight, 0, 0.001), 21, 11)
	checkField(t, f, 2, fieldFlags{false, true, true, true})
}

func TestMollweideTheta(t *testing.T) {
	for _, lat := range []float64{-math.Pi / 2, -1.2, -0.3, 0, 0.7, 1.5, math.Pi / 2} {
		theta := mollweideTheta(lat, 1e-12)
		lhs := 2*theta + math.Sin(2*theta)
		rhs := math.Pi * math.Sin(lat)
		if math.Abs(lhs-rhs) > 1e-9 {
			t.Errorf("latitude %g: 2θ+sin2θ = %g, expected %g", lat, lhs, rhs)
		}
	}
}

func TestCylindricalEqualArea(t *testing.T) {
	f := newField(CylindricalEqualArea(testWidth, testHeight, 0, 0), 20, 10)
	if !f.centered(testWidth, testHeight) {
		t.Errorf("bounds %v not centred", f.bounds)
	}
	if math.Abs(f.width()-testWidth) > 1e-7 {
		t.Errorf("width: expected %d, got %g", testWidth, f.width())
	}
	if math.Abs(f.aspect()-math.Pi) > 1e-7 {
		t.Errorf("aspect ratio: expected %g, got %g", math.Pi, f.aspect())
	}
	want := fieldFlags{true, true, true, true}
	got := fieldFlags{f.horizontalsParallel, f.verticalsParallel, f.horizontalMonotone, f.verticalMonotone}
	if got != want {
		t.Errorf("grid shape: expected %+v, got %+v", want, got)
	}
}

func TestCylindricalEqualAreaAspect(t *testing.T) {
	lats := []float64{0.1 * math.Pi, 0.25 * math.Pi, math.Pi / 3, math.Pi / 2}
	for _, lat := range EqualAreaPresets {
		lats = append(lats, lat)
	}
	for _, lat := range lats {
		f := newField(CylindricalEqualArea(testWidth, testHeight, 0, lat), 20, 10)
		c := math.Cos(lat)
		if want := math.Pi * c * c; math.Abs(f.aspect()-want) > 1e-7 {
			t.Errorf("standard latitude %g: expected aspect %g, got %g", lat, want, f.aspect())
		}
	}
}

func TestEquidistantConic(t *testing.T) {
	f := newField(EquidistantConic(testWidth, testHeight, 0, 0, math.Pi/3, 2*math.Pi/3), 21, 11)
	if !f.centered(testWidth, testHeight) {
		t.Errorf("bounds %v not centred", f.bounds)
	}
	if math.Abs(f.height()-testHeight) > 1e-7 {
		t.Errorf("height: expected %d, got %g", testHeight, f.height())
	}
	got := fieldFlags{f.horizontalsParallel, f.verticalsParallel, f.horizontalMonotone, f.verticalMonotone}
	if got != (fieldFlags{}) {
		t.Errorf("grid shape: expected %+v, got %+v", fieldFlags{}, got)
	}
}

// TestEquidistantConicDegenerate checks that standard parallels which
// turn the cone into a cylinder give the equirectangular grid.
func TestEquidistantConicDegenerate(t *testing.T) {
	for _, std := range [][2]float64{{0, 0}, {-1, 1}} {
		f := newField(EquidistantConic(testWidth, testHeight, 0, 0, std[0], std[1]), 21, 11)
		checkField(t, f, 2, fieldFlags{true, true, true, true})
		for i, column := range f.points {
			for j, p := range column {
				want := vec.Vec2{X: float64(10 * i), Y: float64(10 * j)}
				if !near(p, want, 1e-9) {
					t.Errorf("%v: grid point (%d, %d): expected %v, got %v", std, i, j, want, p)
				}
			}
		}
	}
}

func TestOrthographic(t *testing.T) {
	f := newField(Orthographic(testWidth, testHeight, vec.Vec2{X: 0, Y: -math.Pi / 2}), 21, 11)
	checkField(t, f, 1, fieldFlags{})
	if !f.circles(testCenter) {
		t.Error("parallels are not circles")
	}
}

func TestOrthographicPoles(t *testing.T) {
	south := newField(Orthographic(testWidth, testHeight, vec.Vec2{X: 0, Y: -math.Pi / 2}), 21, 11)
	radii := south.radii(testCenter)
	for i, r := range radii {
		if i > 0 && i <= 5 && r <= radii[i-1] {
			t.Errorf("south %d: radius %g not larger than %g", i, r, radii[i-1])
		}
		if i >= 5 && math.Abs(r-50) > 1e-9 {
			t.Errorf("south %d: expected radius 50, got %g", i, r)
		}
	}

	north := newField(Orthographic(testWidth, testHeight, vec.Vec2{X: 0, Y: math.Pi / 2}), 21, 11)
	radii = north.radii(testCenter)
	for i, r := range radii {
		if i > 5 && r >= radii[i-1] {
			t.Errorf("north %d: radius %g not smaller than %g", i, r, radii[i-1])
		}
		if i <= 5 && math.Abs(r-50) > 1e-9 {
			t.Errorf("north %d: expected radius 50, got %g", i, r)
		}
	}
}

func TestOrthographicEquator(t *testing.T) {
	f := newField(Orthographic(testWidth, testHeight, vec.Vec2{}), 21, 11)
	if p := f.points[10][5]; !near(p, testCenter, 1e-9) {
		t.Errorf("centre: expected %v, got %v", testCenter, p)
	}
	for _, p := range []vec.Vec2{f.points[0][0], f.points[20][0], f.points[0][10], f.points[20][10]} {
		if r := p.Sub(testCenter).Length(); math.Abs(r-50) > 1e-9 {
			t.Errorf("corner %v: expected radius 50, got %g", p, r)
		}
	}
}

func TestStereographic(t *testing.T) {
	f := newField(Stereographic(testWidth, testHeight, 0, North), 21, 11)
	checkField(t, f, 1, fieldFlags{})
	if !f.circles(testCenter) {
		t.Error("parallels are not circles")
	}
}

func TestStereographicLimits(t *testing.T) {
	for _, limit := range []float64{-math.Pi / 3, 0, math.Pi / 4, math.Pi / 6} {
		cutoff := int(math.Floor((limit + math.Pi/2) / math.Pi * 11))
		f := newField(Stereographic(testWidth, testHeight, limit, North), 21, 11)
		radii := f.radii(testCenter)
		for i, r := range radii {
			if i > 0 && i <= cutoff && r <= radii[i-1] {
				t.Errorf("limit %g, %d: radius %g not larger than %g", limit, i, r, radii[i-1])
			}
			if i > cutoff && math.Abs(r-50) > 1e-9 {
				t.Errorf("limit %g, %d: expected radius 50, got %g", limit, i, r)
			}
		}
	}

	f := newField(Stereographic(testWidth, testHeight, 0, South), 21, 11)
	radii := f.radii(testCenter)
	for i, r := range radii {
		if i > 5 && r >= radii[i-1] {
			t.Errorf("south %d: radius %g not smaller than %g", i, r, radii[i-1])
		}
		if i <= 5 && math.Abs(r-50) > 1e-9 {
			t.Errorf("south %d: expected radius 50, got %g", i, r)
		}
	}
}

func TestLambertAzimuthal(t *testing.T) {
	f := newField(LambertAzimuthal(testWidth, testHeight, North), 21, 11)
	checkField(t, f, 1, fieldFlags{})
	if !f.circles(testCenter) {
		t.Error("parallels are not circles")
	}

	for _, pole := range []Pole{North, South} {
		radii := newField(LambertAzimuthal(testWidth, testHeight, pole), 21, 11).radii(testCenter)
		for i := 1; i < len(radii); i++ {
			grows := radii[i] > radii[i-1]
			if grows != (pole == North) {
				t.Errorf("%s pole %d: radius went from %g to %g", pole, i, radii[i-1], radii[i])
			}
		}
	}
}
