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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/Tau-Laboratory/Ink-Projector/basis"
)

// DefaultMaxDepth is the recursion limit used when Bisection.MaxDepth is
// zero.
const DefaultMaxDepth = 14

// Bisection approximates a curve by repeatedly halving parameter intervals
// whose midpoint strays more than Precision from the chord.
//
// The sample spacing adapts to the curve, but for some map projections a
// single bad midpoint test stops refinement too early.  [Equidistant] is
// the better default.
type Bisection struct {
	// Precision is the largest allowed distance between the curve and the
	// chord at the middle of an interval.
	Precision float64

	// MaxDepth limits how often an interval is halved.
	// Zero selects DefaultMaxDepth.
	MaxDepth int
}

// Validate checks the parameters.
func (b Bisection) Validate() error {
	var errs []error
	if !(b.Precision > 0) || math.IsInf(b.Precision, 0) {
		errs = append(errs, fmt.Errorf("%w, got %g", ErrPrecision, b.Precision))
	}
	if b.MaxDepth < 0 || b.MaxDepth > MaxDepthLimit {
		errs = append(errs, fmt.Errorf("%w: need 0-%d, got %d", ErrDepth, MaxDepthLimit, b.MaxDepth))
	}
	return errors.Join(errs...)
}

type knot struct {
	t float64
	p vec.Vec2
}

// Approximate implements the [Approximator] interface.
func (b Bisection) Approximate(f basis.Producer) []vec.Vec2 {
	depth := b.MaxDepth
	if depth == 0 {
		depth = DefaultMaxDepth
	}

	low := knot{0, f(0)}
	pending := []knot{{1, f(1)}} // upper ends of the intervals still open
	points := []vec.Vec2{low.p}
	for len(pending) > 0 {
		high := pending[len(pending)-1]
		tMid := (low.t + high.t) / 2
		mid := f(tMid)
		chord := low.p.Add(high.p).Mul(0.5)
		if mid.Sub(chord).Length() > b.Precision && len(pending) <= depth {
			pending = append(pending, knot{tMid, mid})
			continue
		}
		pending = pending[:len(pending)-1]
		low = high
		points = append(points, low.p)
	}
	return points
}
