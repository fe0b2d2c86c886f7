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

// Package projector re-projects vector paths from one map projection to
// another.
//
// Every segment of an input path is turned into a parametric curve,
// mapped to longitude and latitude by the inverse of the source
// projection, clamped to the visible region, mapped through the target
// projection and finally resampled into straight line segments.
package projector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/Tau-Laboratory/Ink-Projector/approx"
	"github.com/Tau-Laboratory/Ink-Projector/basis"
	"github.com/Tau-Laboratory/Ink-Projector/mapproj"
)

var (
	// ErrBound indicates a visibility bound with lower corner above or
	// right of the upper corner.
	ErrBound = errors.New("projector: malformed visibility bound")

	// ErrNonFinite indicates a NaN or infinite coordinate in an input path.
	ErrNonFinite = errors.New("projector: non-finite coordinate")

	errNoInverse      = errors.New("projector: missing inverse transformation")
	errNoForward      = errors.New("projector: missing forward transformation")
	errNoApproximator = errors.New("projector: missing approximator")
)

// Config describes a projection between two maps.
type Config struct {
	// Inverse maps input coordinates to longitude and latitude.
	Inverse mapproj.Transformation

	// Bound is the visible region in longitude-latitude space.
	// Paths outside are dropped and curves are clamped to it.
	// The zero value selects the whole sphere.
	Bound rect.Rect

	// Forward maps longitude and latitude to output coordinates.
	Forward mapproj.Transformation

	// Approximator resamples the projected curves.
	Approximator approx.Approximator

	// Logger receives a record for every dropped path and command.
	// Nil discards them.
	Logger *slog.Logger
}

// Projection transforms paths.  It is immutable and safe for concurrent
// use.
type Projection struct {
	inverse mapproj.Transformation
	bound   rect.Rect
	clamp   func(x, y float64) vec.Vec2
	forward mapproj.Transformation
	approx  approx.Approximator
	logger  *slog.Logger
}

// New checks the configuration and returns the corresponding Projection.
func New(cfg Config) (*Projection, error) {
	var errs []error
	if cfg.Inverse == nil {
		errs = append(errs, errNoInverse)
	}
	if cfg.Forward == nil {
		errs = append(errs, errNoForward)
	}
	if cfg.Approximator == nil {
		errs = append(errs, errNoApproximator)
	} else if v, ok := cfg.Approximator.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	bound := cfg.Bound
	if bound == (rect.Rect{}) {
		bound = mapproj.LongLatBound()
	}
	if !(bound.LLx <= bound.URx && bound.LLy <= bound.URy) {
		errs = append(errs, fmt.Errorf("%w: %v", ErrBound, bound))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = newNopLogger()
	}
	return &Projection{
		inverse: cfg.Inverse,
		bound:   bound,
		clamp:   basis.Clamp(bound),
		forward: cfg.Forward,
		approx:  cfg.Approximator,
		logger:  logger,
	}, nil
}

// Bound returns the visible region in longitude-latitude space.
func (p *Projection) Bound() rect.Rect {
	return p.bound
}

// Point maps a single input point to the output space.
func (p *Projection) Point(v vec.Vec2) vec.Vec2 {
	ll := p.inverse(v.X, v.Y)
	ll = p.clamp(ll.X, ll.Y)
	return p.forward(ll.X, ll.Y)
}

// compose returns the projected version of the curve f.
func (p *Projection) compose(f basis.Producer) basis.Producer {
	return func(t float64) vec.Vec2 {
		return p.Point(f(t))
	}
}

// Transform projects the path in.  The label identifies the path in log
// records.
//
// Empty paths and paths which lie entirely outside the visible region are
// dropped: the result is an empty path and the error is nil.  An error
// is returned only if the path contains non-finite coordinates.
func (p *Projection) Transform(label string, in Path) (*path.Data, error) {
	out := &path.Data{}
	if len(in) == 0 {
		p.drop(label, "empty path")
		return out, nil
	}
	if err := checkFinite(in); err != nil {
		return nil, fmt.Errorf("path %q: %w", label, err)
	}
	box, ok := extent(in)
	if !ok {
		p.drop(label, "no coordinates")
		return out, nil
	}
	if !p.visible(box) {
		p.drop(label, "outside visibility bound")
		return out, nil
	}

	var current, start vec.Vec2
	hasStart := false
	segment := func(f basis.Producer, end vec.Vec2) {
		points := p.approx.Approximate(p.compose(f))
		if len(points) > 0 {
			for _, q := range points[1:] {
				out.LineTo(q)
			}
		}
		current = end
	}

	for _, cmd := range in {
		switch c := cmd.(type) {
		case MoveTo:
			if !hasStart {
				start = c.P
				hasStart = true
			}
			current = c.P
			out.MoveTo(p.Point(c.P))
		case LineTo:
			segment(basis.Line(current, c.P), c.P)
		case Horizontal:
			end := vec.Vec2{X: c.X, Y: current.Y}
			segment(basis.Line(current, end), end)
		case Vertical:
			end := vec.Vec2{X: current.X, Y: c.Y}
			segment(basis.Line(current, end), end)
		case CubeTo:
			segment(basis.CubicBezier(current, c.C1, c.C2, c.P), c.P)
		case QuadTo:
			segment(basis.QuadraticBezier(current, c.C, c.P), c.P)
		case ArcTo:
			f := basis.Arc(current, c.P, c.Radii, c.Rotation, c.LargeArc, c.Sweep)
			segment(f, c.P)
		case Close:
			if !hasStart {
				start = current
			}
			segment(basis.Line(current, start), start)
			out.Close()
			hasStart = false
		default:
			p.logger.Warn("unsupported command",
				slog.String("path", label),
				slog.String("command", fmt.Sprintf("%T", cmd)))
		}
	}
	return out, nil
}

func (p *Projection) drop(label, reason string) {
	p.logger.Info("path dropped",
		slog.String("path", label),
		slog.String("reason", reason))
}

// visible reports whether the longitude-latitude image of the input
// rectangle box meets the visibility bound.
func (p *Projection) visible(box rect.Rect) bool {
	ll := rect.Rect{
		LLx: math.Inf(+1), LLy: math.Inf(+1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, c := range []vec.Vec2{
		{X: box.LLx, Y: box.LLy},
		{X: box.URx, Y: box.LLy},
		{X: box.LLx, Y: box.URy},
		{X: box.URx, Y: box.URy},
	} {
		q := p.inverse(c.X, c.Y)
		ll.LLx = min(ll.LLx, q.X)
		ll.LLy = min(ll.LLy, q.Y)
		ll.URx = max(ll.URx, q.X)
		ll.URy = max(ll.URy, q.Y)
	}

	b := p.bound
	if ll.LLx > b.URx || b.LLx > ll.URx {
		return false
	}
	if ll.LLy > b.URy || b.LLy > ll.URy {
		return false
	}
	return true
}

// TransformAll projects the given paths concurrently, using at most
// workers goroutines.  If workers is not positive, GOMAXPROCS is used.
// The results are in the order of the input.  labels may be nil, in
// which case the paths are labelled by their index.
//
// The first error stops the remaining work.
func (p *Projection) TransformAll(ctx context.Context, labels []string, paths []Path, workers int) ([]*path.Data, error) {
	if labels != nil && len(labels) != len(paths) {
		return nil, fmt.Errorf("projector: %d labels for %d paths", len(labels), len(paths))
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	res := make([]*path.Data, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range paths {
		label := fmt.Sprint(i)
		if labels != nil {
			label = labels[i]
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := p.Transform(label, in)
			if err != nil {
				return err
			}
			res[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
