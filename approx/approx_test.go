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

package approx

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"github.com/Tau-Laboratory/Ink-Projector/basis"
)

var pointComparer = cmp.Comparer(func(a, b vec.Vec2) bool {
	return a.Sub(b).Length() <= 1e-9
})

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func circle(center vec.Vec2, radius float64) basis.Producer {
	return func(t float64) vec.Vec2 {
		sin, cos := math.Sincos(2 * math.Pi * t)
		return center.Add(pt(radius*cos, radius*sin))
	}
}

// jumpParabola is a parabola with a step of height 10 at t=0.5.
func jumpParabola(t float64) vec.Vec2 {
	s := 10 * t
	if t < 0.5 {
		return pt(s, s*s)
	}
	return pt(s, s*s+10)
}

// polyline evaluates the piecewise linear curve through points, with the
// points spaced evenly in parameter.
func polyline(points []vec.Vec2) basis.Producer {
	segments := float64(len(points) - 1)
	return func(t float64) vec.Vec2 {
		if t >= 1 {
			return points[len(points)-1]
		}
		i, frac := math.Modf(t * segments)
		a, b := points[int(i)], points[int(i)+1]
		return a.Add(b.Sub(a).Mul(frac))
	}
}

func TestEquidistantLine(t *testing.T) {
	for _, precision := range []float64{0.1, 1e-6, 10} {
		e := Equidistant{Precision: precision, MaxResolution: 100, Increment: 1}
		got := e.Approximate(basis.Line(pt(0, 0), pt(100, -10)))
		want := []vec.Vec2{pt(0, 0), pt(100, -10)}
		if d := cmp.Diff(want, got, pointComparer); d != "" {
			t.Errorf("precision %g (-want +got):\n%s", precision, d)
		}
	}
}

func TestEquidistantMinimalResolution(t *testing.T) {
	for _, maxRes := range []int{-3, 0, 1, 2} {
		e := Equidistant{Precision: 0.1, MaxResolution: maxRes, Increment: 1}
		got := e.Approximate(circle(pt(0, 0), 100))
		if len(got) != 2 {
			t.Errorf("max resolution %d: expected 2 points, got %d", maxRes, len(got))
		}
	}
}

func TestEquidistantResolutionCap(t *testing.T) {
	e := Equidistant{Precision: 0.1, MaxResolution: 3, Increment: 1}
	got := e.Approximate(circle(pt(0, 0), 100))
	want := []vec.Vec2{pt(100, 0), pt(-100, 0), pt(100, 0)}
	if d := cmp.Diff(want, got, pointComparer); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestEquidistantPrecision(t *testing.T) {
	const maxRes = 5000
	f := circle(pt(0, 0), 100)
	e := Equidistant{Precision: 1e-4, MaxResolution: maxRes, Increment: 1}
	points := e.Approximate(f)
	if len(points) >= maxRes {
		t.Fatalf("expected fewer than %d points, got %d", maxRes, len(points))
	}

	g := polyline(points)
	const n = maxRes + 10
	for i := range n {
		s := float64(i) / (n - 1)
		if d := f(s).Sub(g(s)).Length(); d > 1e-3 {
			t.Fatalf("t=%g: polyline is %g away from the circle", s, d)
		}
	}
}

func TestEquidistantIncrement(t *testing.T) {
	f := circle(pt(0, 0), 10)
	e := Equidistant{Precision: 0.05, MaxResolution: 1000, Increment: 7}
	points := e.Approximate(f)
	if (len(points)-2)%7 != 0 {
		t.Errorf("expected 2+7k points, got %d", len(points))
	}
	if points[0] != f(0) || points[len(points)-1] != f(1) {
		t.Errorf("end points not preserved")
	}
}

func TestJumpFill(t *testing.T) {
	e := Equidistant{
		Precision:     0.001,
		MaxResolution: 40,
		Increment:     1,
		ZLimit:        3,
		ZFill:         5,
	}
	points := e.Approximate(jumpParabola)
	if len(points) != 45 {
		t.Fatalf("expected 45 points, got %d", len(points))
	}

	// The step lies between regular samples 19 and 20.
	const jump = 20
	regular := append(append([]vec.Vec2{}, points[:jump]...), points[jump+5:]...)
	for i, p := range regular {
		want := 10 * float64(i) / 39
		if math.Abs(p.X-want) > 1e-9 {
			t.Errorf("regular point %d: expected x=%g, got %g", i, want, p.X)
		}
	}

	low := points[jump-1].X
	high := points[jump+5].X
	size := (high - low) / 6
	for i, p := range points[jump : jump+5] {
		want := low + float64(i+1)*size
		if math.Abs(p.X-want) > 1e-9 {
			t.Errorf("fill point %d: expected x=%g, got %g", i, want, p.X)
		}
	}
}

func TestJumpFillDisabled(t *testing.T) {
	for _, e := range []Equidistant{
		{Precision: 0.001, MaxResolution: 40, Increment: 1, ZLimit: 0, ZFill: 5},
		{Precision: 0.001, MaxResolution: 40, Increment: 1, ZLimit: 3, ZFill: 0},
	} {
		if got := len(e.Approximate(jumpParabola)); got != 40 {
			t.Errorf("%+v: expected 40 points, got %d", e, got)
		}
	}
}

// TestJumpFillUniformGaps checks that equal gaps leave the samples alone.
func TestJumpFillUniformGaps(t *testing.T) {
	f := basis.Line(pt(0, 0), pt(8, 0))
	points := []vec.Vec2{pt(0, 0), pt(2, 0), pt(4, 0), pt(6, 0), pt(8, 0)}
	got := jumpFill(f, points, 0.5, 3)
	if d := cmp.Diff(points, got, pointComparer); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestEquidistantValidate(t *testing.T) {
	good := Equidistant{Precision: 0.1, MaxResolution: 50, Increment: 1, ZLimit: 3, ZFill: 4}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		edit func(*Equidistant)
		want error
	}{
		{"zero precision", func(e *Equidistant) { e.Precision = 0 }, ErrPrecision},
		{"nan precision", func(e *Equidistant) { e.Precision = math.NaN() }, ErrPrecision},
		{"low resolution", func(e *Equidistant) { e.MaxResolution = 1 }, ErrResolution},
		{"huge resolution", func(e *Equidistant) { e.MaxResolution = MaxResolutionLimit + 1 }, ErrResolution},
		{"increment", func(e *Equidistant) { e.Increment = 0 }, ErrIncrement},
		{"negative limit", func(e *Equidistant) { e.ZLimit = -1 }, ErrLimit},
		{"negative fill", func(e *Equidistant) { e.ZFill = -1 }, ErrZFill},
		{"huge fill", func(e *Equidistant) { e.ZFill = MaxZFill + 1 }, ErrZFill},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := good
			tc.edit(&e)
			if err := e.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBisectionLine(t *testing.T) {
	b := Bisection{Precision: 0.01}
	got := b.Approximate(basis.Line(pt(1, 1), pt(5, -3)))
	want := []vec.Vec2{pt(1, 1), pt(5, -3)}
	if d := cmp.Diff(want, got, pointComparer); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestBisectionCircle(t *testing.T) {
	f := circle(pt(0, 0), 100)
	b := Bisection{Precision: 0.01}
	points := b.Approximate(f)
	if points[0] != f(0) || points[len(points)-1] != f(1) {
		t.Fatal("end points not preserved")
	}
	// A circle is refined uniformly, so every point lies on it and
	// neighbouring points are close.
	for i, p := range points {
		if r := p.Length(); math.Abs(r-100) > 1e-9 {
			t.Errorf("point %d: radius %g", i, r)
		}
	}
	for i := 1; i < len(points); i++ {
		if d := points[i].Sub(points[i-1]).Length(); d > 5 {
			t.Errorf("gap %d too wide: %g", i, d)
		}
	}
}

func TestBisectionDepth(t *testing.T) {
	// The step can never be resolved, so refinement stops at the depth
	// limit: 2^depth intervals near the step at most.
	b := Bisection{Precision: 1e-6, MaxDepth: 4}
	points := b.Approximate(func(t float64) vec.Vec2 {
		if t < 1.0/3 {
			return pt(0, 0)
		}
		return pt(0, 1)
	})
	if len(points) > 1<<4+1 {
		t.Errorf("expected at most %d points, got %d", 1<<4+1, len(points))
	}
}

func TestFunc(t *testing.T) {
	var a Approximator = Func(func(f basis.Producer) []vec.Vec2 {
		return []vec.Vec2{f(0), f(1)}
	})
	got := a.Approximate(basis.Line(pt(0, 0), pt(1, 2)))
	if len(got) != 2 || got[1] != pt(1, 2) {
		t.Errorf("unexpected result %v", got)
	}
}

func BenchmarkEquidistant(b *testing.B) {
	e := Equidistant{Precision: 0.01, MaxResolution: 500, Increment: 1, ZLimit: 3, ZFill: 4}
	f := circle(pt(0, 0), 100)
	for b.Loop() {
		e.Approximate(f)
	}
}

func BenchmarkJumpFill(b *testing.B) {
	e := Equidistant{Precision: 0.001, MaxResolution: 40, Increment: 1, ZLimit: 3, ZFill: 5}
	for b.Loop() {
		e.Approximate(jumpParabola)
	}
}
