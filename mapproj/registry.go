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
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

var (
	// ErrUnknownProjection is returned by [New] for names not listed by
	// [Names].
	ErrUnknownProjection = errors.New("mapproj: unknown projection")

	// ErrParams is returned by [New] if the parameters are outside the
	// domain of the projection.
	ErrParams = errors.New("mapproj: invalid projection parameters")
)

// DefaultPrecision is the Newton step tolerance used by [New] for the
// Mollweide projection if none is given.
const DefaultPrecision = 1e-9

// Standard parallels of the named cylindrical equal-area projections.
const (
	LambertLat        = 0
	BehrmannLat       = 0.523598776 // 30°
	SmythLat          = 0.6470185995563307
	TrystanEdwardsLat = 0.6527531402 // 37.4°
	HoboDyerLat       = 0.6544984695 // 37.5°
	GallPetersLat     = 0.785398163  // 45°
	BalthasartLat     = 0.872664626  // 50°
	ToblerLat         = 0.971344958023442
)

// EqualAreaPresets maps the names of the cylindrical equal-area
// variants to their standard parallels.
var EqualAreaPresets = map[string]float64{
	"lambert":                  LambertLat,
	"behrmann":                 BehrmannLat,
	"smyth-equal-surface":      SmythLat,
	"trystan-edwards":          TrystanEdwardsLat,
	"hobo-dyer":                HoboDyerLat,
	"gall-peters":              GallPetersLat,
	"balthasart":               BalthasartLat,
	"tobler-world-in-a-square": ToblerLat,
}

// Params collects the arguments of all projections.
// Each projection reads only the fields it needs.
type Params struct {
	// RefLong is the central meridian.
	RefLong float64

	// RefLat is the latitude of the origin of the equidistant conic
	// projection.
	RefLat float64

	// StdLat is the standard parallel.  The equidistant conic projection
	// uses StdLat and StdLatB.
	StdLat  float64
	StdLatB float64

	// LatLimit is the latitude cut-off of the Mercator and stereographic
	// projections.
	LatLimit float64

	// Origin is the (longitude, latitude) of the centre of the
	// orthographic projection.
	Origin vec.Vec2

	// Pole selects the hemisphere of the polar projections.
	Pole Pole

	// Precision is the Newton step tolerance of the Mollweide projection.
	// Zero selects DefaultPrecision.
	Precision float64
}

type factory func(w, h float64, p Params) (Transformation, error)

var registry = map[string]factory{
	"equirectangular": func(w, h float64, p Params) (Transformation, error) {
		return Equirectangular(w, h), nil
	},
	"mercator": func(w, h float64, p Params) (Transformation, error) {
		if !(p.LatLimit > 0 && p.LatLimit < math.Pi/2) {
			return nil, fmt.Errorf("%w: mercator latitude limit %g not in (0, π/2)",
				ErrParams, p.LatLimit)
		}
		return Mercator(w, h, p.RefLong, p.LatLimit), nil
	},
	"winkel-tripel": func(w, h float64, p Params) (Transformation, error) {
		return WinkelTripel(w, h, p.StdLat), nil
	},
	"robinson": func(w, h float64, p Params) (Transformation, error) {
		return Robinson(w, h, p.RefLong), nil
	},
	"mollweide": func(w, h float64, p Params) (Transformation, error) {
		precision := p.Precision
		if precision == 0 {
			precision = DefaultPrecision
		}
		if !(precision > 0) {
			return nil, fmt.Errorf("%w: mollweide precision %g", ErrParams, p.Precision)
		}
		return Mollweide(w, h, p.RefLong, precision), nil
	},
	"cylindrical-equal-area": func(w, h float64, p Params) (Transformation, error) {
		if math.Abs(p.StdLat) >= math.Pi/2 {
			return nil, fmt.Errorf("%w: standard latitude %g not in (-π/2, π/2)",
				ErrParams, p.StdLat)
		}
		return CylindricalEqualArea(w, h, p.RefLong, p.StdLat), nil
	},
	"equidistant-conic": func(w, h float64, p Params) (Transformation, error) {
		return EquidistantConic(w, h, p.RefLong, p.RefLat, p.StdLat, p.StdLatB), nil
	},
	"orthographic": func(w, h float64, p Params) (Transformation, error) {
		return Orthographic(w, h, p.Origin), nil
	},
	"stereographic": func(w, h float64, p Params) (Transformation, error) {
		if err := checkPole(p.Pole); err != nil {
			return nil, err
		}
		if math.Abs(p.LatLimit) >= math.Pi/2 {
			return nil, fmt.Errorf("%w: stereographic latitude limit %g not in (-π/2, π/2)",
				ErrParams, p.LatLimit)
		}
		return Stereographic(w, h, p.LatLimit, p.Pole), nil
	},
	"lambert-azimuthal-equal-area": func(w, h float64, p Params) (Transformation, error) {
		if err := checkPole(p.Pole); err != nil {
			return nil, err
		}
		return LambertAzimuthal(w, h, p.Pole), nil
	},
	"peirce-quincuncial": func(w, h float64, p Params) (Transformation, error) {
		return PeirceQuincuncial(w, h, p.RefLong), nil
	},
}

func init() {
	for name, lat := range EqualAreaPresets {
		registry[name] = func(w, h float64, p Params) (Transformation, error) {
			return CylindricalEqualArea(w, h, p.RefLong, lat), nil
		}
	}
}

func checkPole(p Pole) error {
	if p != North && p != South {
		return fmt.Errorf("%w: %s", ErrParams, p)
	}
	return nil
}

// New returns the projection with the given name, scaled to fit into
// width × height.
func New(name string, width, height float64, p Params) (Transformation, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownProjection, name)
	}
	if !(width > 0 && height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: drawing area %gx%g", ErrParams, width, height)
	}
	return f(width, height, p)
}

// Names returns the names accepted by [New], in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// ParsePole converts "north" or "south" to a [Pole].
func ParsePole(s string) (Pole, error) {
	switch s {
	case "north", "n":
		return North, nil
	case "south", "s":
		return South, nil
	}
	return 0, fmt.Errorf("%w: unknown pole %q", ErrParams, s)
}
