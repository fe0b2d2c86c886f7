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

// Package approx turns parametric curves into polylines.
//
// An [Approximator] samples a [basis.Producer] on [0, 1] and returns the
// points of a polyline which follows the curve to within a tolerance.  The
// first point corresponds to t=0 and the last point to t=1.
package approx

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"github.com/Tau-Laboratory/Ink-Projector/basis"
)

// Limits on the approximator parameters.  They bound the number of
// producer evaluations per segment.
const (
	MaxResolutionLimit = 1 << 16
	MaxZFill           = 1024
	MaxDepthLimit      = 30
)

var (
	ErrPrecision  = errors.New("approx: precision must be positive and finite")
	ErrResolution = errors.New("approx: maximal resolution out of range")
	ErrIncrement  = errors.New("approx: increment must be at least 1")
	ErrLimit      = errors.New("approx: z-limit must be non-negative and finite")
	ErrZFill      = errors.New("approx: z-fill count out of range")
	ErrDepth      = errors.New("approx: recursion depth out of range")
)

// Approximator converts a curve into a polyline.
type Approximator interface {
	Approximate(f basis.Producer) []vec.Vec2
}

// Func adapts an ordinary function to the Approximator interface.
type Func func(f basis.Producer) []vec.Vec2

// Approximate calls fn(f).
func (fn Func) Approximate(f basis.Producer) []vec.Vec2 {
	return fn(f)
}

// Equidistant samples a curve at evenly spaced parameters.
//
// Starting with two samples, the number of samples is raised by Increment
// until every midpoint between neighbouring samples lies within Precision
// of the straight line through them, or until MaxResolution is reached.
//
// If ZLimit is positive, gaps between neighbouring samples whose length
// deviates from the mean gap length by more than ZLimit standard
// deviations are refined with ZFill extra samples each.  Such gaps
// usually mark a discontinuity of the curve.
type Equidistant struct {
	// Precision is the largest allowed distance between a midpoint of the
	// curve and the midpoint of the corresponding chord.
	Precision float64

	// MaxResolution caps the number of evenly spaced samples.
	// Values below 2 are treated as 2.
	MaxResolution int

	// Increment is the step by which the resolution grows.
	Increment int

	// ZLimit is the z-score above which a gap is refined.
	// Zero disables the refinement.
	ZLimit float64

	// ZFill is the number of samples inserted into each refined gap.
	ZFill int
}

// Validate checks the parameters.
func (e Equidistant) Validate() error {
	var errs []error
	if !(e.Precision > 0) || math.IsInf(e.Precision, 0) {
		errs = append(errs, fmt.Errorf("%w, got %g", ErrPrecision, e.Precision))
	}
	if e.MaxResolution < 2 || e.MaxResolution > MaxResolutionLimit {
		errs = append(errs, fmt.Errorf("%w: need 2-%d, got %d",
			ErrResolution, MaxResolutionLimit, e.MaxResolution))
	}
	if e.Increment < 1 {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrIncrement, e.Increment))
	}
	if !(e.ZLimit >= 0) || math.IsInf(e.ZLimit, 0) {
		errs = append(errs, fmt.Errorf("%w, got %g", ErrLimit, e.ZLimit))
	}
	if e.ZFill < 0 || e.ZFill > MaxZFill {
		errs = append(errs, fmt.Errorf("%w: need 0-%d, got %d", ErrZFill, MaxZFill, e.ZFill))
	}
	return errors.Join(errs...)
}

// Approximate implements the [Approximator] interface.
func (e Equidistant) Approximate(f basis.Producer) []vec.Vec2 {
	maxRes := max(2, e.MaxResolution)
	inc := max(1, e.Increment)

	var points []vec.Vec2
	imprecise := true
	for res := 2; res < maxRes; res += inc {
		points = sample(f, res)
		imprecise = false
		n := float64(res - 1)
		for i := range res - 1 {
			mid := f(float64(2*i+1) / (2 * n))
			chord := points[i].Add(points[i+1]).Mul(0.5)
			if mid.Sub(chord).Length() > e.Precision {
				imprecise = true
				break
			}
		}
		if !imprecise {
			break
		}
	}
	if imprecise {
		points = sample(f, maxRes)
	}

	if e.ZLimit > 0 && e.ZFill > 0 {
		points = jumpFill(f, points, e.ZLimit, e.ZFill)
	}
	return points
}

// sample evaluates f at n evenly spaced parameters, including both ends.
func sample(f basis.Producer, n int) []vec.Vec2 {
	points := make([]vec.Vec2, n)
	d := float64(n - 1)
	for i := range n {
		points[i] = f(float64(i) / d)
	}
	return points
}

// jumpFill refines the gaps between points whose length is unusual
// compared to the other gaps.  points must be evenly spaced in parameter.
func jumpFill(f basis.Producer, points []vec.Vec2, zLimit float64, zFill int) []vec.Vec2 {
	if len(points) < 2 {
		return points
	}

	gaps := len(points) - 1
	dist := make([]float64, gaps)
	var mean float64
	for i := range gaps {
		dist[i] = points[i+1].Sub(points[i]).Length()
		mean += dist[i]
	}
	mean /= float64(gaps)

	var variance float64
	for _, d := range dist {
		variance += (d - mean) * (d - mean)
	}
	std := math.Sqrt(variance / float64(gaps))
	if std == 0 {
		return points
	}

	step := 1 / (float64(1+zFill) * float64(gaps))
	// Walk backwards so that insertions leave lower indices valid.
	for i := gaps - 1; i >= 0; i-- {
		if !(math.Abs(dist[i]-mean)/std > zLimit) {
			continue
		}
		start := float64(i) / float64(gaps)
		fill := make([]vec.Vec2, zFill)
		for j := range zFill {
			fill[j] = f(start + float64(j+1)*step)
		}
		points = slices.Insert(points, i+1, fill...)
	}
	return points
}
