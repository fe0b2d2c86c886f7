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

// Package spline implements natural cubic spline interpolation over a
// fixed table of knots.
package spline

import (
	"errors"
	"sort"
)

var (
	errShortTable = errors.New("spline: need at least two knots")
	errLength     = errors.New("spline: x and y differ in length")
	errOrder      = errors.New("spline: knots must be strictly increasing")
)

// Natural is a cubic spline with zero second derivative at both ends.
// A Natural is immutable once built and safe for concurrent use.
type Natural struct {
	x []float64 // knot positions, strictly increasing
	y []float64 // values at the knots
	z []float64 // second derivatives at the knots
}

// New builds the natural cubic spline through the points (x[i], y[i]).
// The slices are copied.
func New(x, y []float64) (*Natural, error) {
	n := len(x)
	if n != len(y) {
		return nil, errLength
	}
	if n < 2 {
		return nil, errShortTable
	}
	for i := 1; i < n; i++ {
		if !(x[i] > x[i-1]) {
			return nil, errOrder
		}
	}

	s := &Natural{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
		z: make([]float64, n),
	}

	h := make([]float64, n-1)    // knot spacing
	dydx := make([]float64, n-1) // secant slopes
	for i := range n - 1 {
		h[i] = s.x[i+1] - s.x[i]
		dydx[i] = (s.y[i+1] - s.y[i]) / h[i]
	}

	// Tridiagonal solve for the second derivatives: forward elimination,
	// then back substitution.  z[0] = z[n-1] = 0.
	w := make([]float64, n-1)
	for i := 1; i < n-1; i++ {
		m := h[i-1]*(2-w[i-1]) + 2*h[i]
		w[i] = h[i] / m
		s.z[i] = (6*(dydx[i]-dydx[i-1]) - h[i-1]*s.z[i-1]) / m
	}
	for i := n - 2; i >= 0; i-- {
		s.z[i] -= w[i] * s.z[i+1]
	}

	return s, nil
}

// MustNew is like New but panics on error.  It is intended for
// package-level tables.
func MustNew(x, y []float64) *Natural {
	s, err := New(x, y)
	if err != nil {
		panic(err)
	}
	return s
}

// Eval returns the value of the spline at x0.  Values outside the knot
// range are extrapolated using the first or last polynomial piece.
func (s *Natural) Eval(x0 float64) float64 {
	n := len(s.x)
	i := sort.SearchFloat64s(s.x, x0)
	i = min(max(i, 1), n-1)

	x1, x0k := s.x[i], s.x[i-1]
	y1, y0 := s.y[i], s.y[i-1]
	z1, z0 := s.z[i], s.z[i-1]
	h := x1 - x0k

	a := x1 - x0
	b := x0 - x0k
	return z0/(6*h)*a*a*a +
		z1/(6*h)*b*b*b +
		(y1/h-z1*h/6)*b +
		(y0/h-z0*h/6)*a
}

// Len returns the number of knots.
func (s *Natural) Len() int {
	return len(s.x)
}
