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

package projector

import (
	"errors"
	"log/slog"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/Tau-Laboratory/Ink-Projector/approx"
	"github.com/Tau-Laboratory/Ink-Projector/mapproj"
)

// Builder assembles a [Config] step by step.
//
//	p, err := projector.NewBuilder().
//		FromEquirectangular(360, 180).
//		ToRobinson(400, 200, 0).
//		WithEquidistantApproximator(0.1, 200, 1, 3, 5).
//		Build()
type Builder struct {
	cfg  Config
	errs []error
}

// NewBuilder returns a Builder for a projection of the whole sphere.
func NewBuilder() *Builder {
	return &Builder{cfg: Config{Bound: mapproj.LongLatBound()}}
}

// FromEquirectangular sets the source to an equirectangular map of the
// given size.
func (b *Builder) FromEquirectangular(width, height float64) *Builder {
	b.cfg.Inverse = mapproj.InverseEquirectangular(width, height)
	return b
}

// To sets the target to the named projection, see [mapproj.New].
func (b *Builder) To(name string, width, height float64, p mapproj.Params) *Builder {
	tr, err := mapproj.New(name, width, height, p)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.cfg.Forward = tr
	return b
}

// The typed target methods below go through [Builder.To], so their
// arguments are checked like those of [mapproj.New].

// ToEquirectangular sets the target to an equirectangular map.
func (b *Builder) ToEquirectangular(width, height float64) *Builder {
	return b.To("equirectangular", width, height, mapproj.Params{})
}

// ToMercator sets the target to the Mercator projection.
// latLimit must lie in (0, π/2).
func (b *Builder) ToMercator(width, height, refLong, latLimit float64) *Builder {
	return b.To("mercator", width, height, mapproj.Params{RefLong: refLong, LatLimit: latLimit})
}

// ToWinkelTripel sets the target to the Winkel tripel projection.
func (b *Builder) ToWinkelTripel(width, height, stdLat float64) *Builder {
	return b.To("winkel-tripel", width, height, mapproj.Params{StdLat: stdLat})
}

// ToRobinson sets the target to the Robinson projection.
func (b *Builder) ToRobinson(width, height, refLong float64) *Builder {
	return b.To("robinson", width, height, mapproj.Params{RefLong: refLong})
}

// ToMollweide sets the target to the Mollweide projection.
// A precision of zero selects [mapproj.DefaultPrecision].
func (b *Builder) ToMollweide(width, height, refLong, precision float64) *Builder {
	return b.To("mollweide", width, height, mapproj.Params{RefLong: refLong, Precision: precision})
}

// ToCylindricalEqualArea sets the target to the cylindrical equal-area
// projection with standard parallel stdLat.
func (b *Builder) ToCylindricalEqualArea(width, height, refLong, stdLat float64) *Builder {
	return b.To("cylindrical-equal-area", width, height, mapproj.Params{RefLong: refLong, StdLat: stdLat})
}

// ToLambert sets the target to the Lambert cylindrical equal-area projection.
func (b *Builder) ToLambert(width, height, refLong float64) *Builder {
	return b.preset("lambert", width, height, refLong)
}

// ToBehrmann sets the target to the Behrmann projection.
func (b *Builder) ToBehrmann(width, height, refLong float64) *Builder {
	return b.preset("behrmann", width, height, refLong)
}

// ToSmythEqualSurface sets the target to Smyth's equal surface projection.
func (b *Builder) ToSmythEqualSurface(width, height, refLong float64) *Builder {
	return b.preset("smyth-equal-surface", width, height, refLong)
}

// ToTrystanEdwards sets the target to the Trystan Edwards projection.
func (b *Builder) ToTrystanEdwards(width, height, refLong float64) *Builder {
	return b.preset("trystan-edwards", width, height, refLong)
}

// ToHoboDyer sets the target to the Hobo-Dyer projection.
func (b *Builder) ToHoboDyer(width, height, refLong float64) *Builder {
	return b.preset("hobo-dyer", width, height, refLong)
}

// ToGallPeters sets the target to the Gall-Peters projection.
func (b *Builder) ToGallPeters(width, height, refLong float64) *Builder {
	return b.preset("gall-peters", width, height, refLong)
}

// ToBalthasart sets the target to the Balthasart projection.
func (b *Builder) ToBalthasart(width, height, refLong float64) *Builder {
	return b.preset("balthasart", width, height, refLong)
}

// ToToblerWorldInASquare sets the target to Tobler's world in a square.
func (b *Builder) ToToblerWorldInASquare(width, height, refLong float64) *Builder {
	return b.preset("tobler-world-in-a-square", width, height, refLong)
}

func (b *Builder) preset(name string, width, height, refLong float64) *Builder {
	return b.To(name, width, height, mapproj.Params{RefLong: refLong})
}

// ToPeirceQuincuncial sets the target to the Peirce quincuncial projection.
func (b *Builder) ToPeirceQuincuncial(width, height, refLong float64) *Builder {
	return b.To("peirce-quincuncial", width, height, mapproj.Params{RefLong: refLong})
}

// ToEquidistantConic sets the target to the equidistant conic projection.
func (b *Builder) ToEquidistantConic(width, height, refLong, refLat, stdLatA, stdLatB float64) *Builder {
	return b.To("equidistant-conic", width, height, mapproj.Params{
		RefLong: refLong,
		RefLat:  refLat,
		StdLat:  stdLatA,
		StdLatB: stdLatB,
	})
}

// ToOrthographic sets the target to the orthographic projection seen
// from above origin.
func (b *Builder) ToOrthographic(width, height float64, origin vec.Vec2) *Builder {
	return b.To("orthographic", width, height, mapproj.Params{Origin: origin})
}

// ToStereographic sets the target to the stereographic projection.
// latLimit must lie in (-π/2, π/2).
func (b *Builder) ToStereographic(width, height, latLimit float64, pole mapproj.Pole) *Builder {
	return b.To("stereographic", width, height, mapproj.Params{LatLimit: latLimit, Pole: pole})
}

// ToLambertAzimuthal sets the target to the Lambert azimuthal equal-area
// projection.
func (b *Builder) ToLambertAzimuthal(width, height float64, pole mapproj.Pole) *Builder {
	return b.To("lambert-azimuthal-equal-area", width, height, mapproj.Params{Pole: pole})
}

// WithVisibilityBounds restricts the projection to the given
// longitude-latitude rectangle.  The zero rectangle is not an empty
// bound: like a zero [Config.Bound] it selects the whole sphere, see
// [mapproj.LongLatBound].  A rectangle with the lower corner above or
// right of the upper corner makes [Builder.Build] fail with [ErrBound].
func (b *Builder) WithVisibilityBounds(bound rect.Rect) *Builder {
	b.cfg.Bound = bound
	return b
}

// WithEquidistantApproximator selects the equidistant approximator.
// A zLimit or zFill of zero disables the jump fill.
func (b *Builder) WithEquidistantApproximator(precision float64, maxResolution, increment int, zLimit float64, zFill int) *Builder {
	b.cfg.Approximator = approx.Equidistant{
		Precision:     precision,
		MaxResolution: maxResolution,
		Increment:     increment,
		ZLimit:        zLimit,
		ZFill:         zFill,
	}
	return b
}

// WithLinearApproximator selects the recursive bisection approximator.
func (b *Builder) WithLinearApproximator(precision float64) *Builder {
	b.cfg.Approximator = approx.Bisection{Precision: precision}
	return b
}

// WithApproximator selects an arbitrary approximator.
func (b *Builder) WithApproximator(a approx.Approximator) *Builder {
	b.cfg.Approximator = a
	return b
}

// WithLogger sets the logger for dropped paths and commands.
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	b.cfg.Logger = l
	return b
}

// WithLogFunc sends diagnostics to fn, see [FuncLogger].
func (b *Builder) WithLogFunc(fn func(string)) *Builder {
	return b.WithLogger(FuncLogger(fn))
}

// Config returns the configuration collected so far.
func (b *Builder) Config() Config {
	return b.cfg
}

// Build returns the configured projection.
func (b *Builder) Build() (*Projection, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	return New(b.cfg)
}
