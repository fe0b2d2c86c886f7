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

package main

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	projector "github.com/Tau-Laboratory/Ink-Projector"
	"github.com/Tau-Laboratory/Ink-Projector/approx"
	"github.com/Tau-Laboratory/Ink-Projector/mapproj"
)

// Config holds the settings of one projection run.
// Angles are given in degrees.
type Config struct {
	Input        string             `mapstructure:"input"`
	Output       string             `mapstructure:"output"`
	Workers      int                `mapstructure:"workers"`
	Verbose      bool               `mapstructure:"verbose"`
	Source       SourceConfig       `mapstructure:"source"`
	Target       TargetConfig       `mapstructure:"target"`
	Bound        BoundConfig        `mapstructure:"bound"`
	Approximator ApproximatorConfig `mapstructure:"approximator"`
	Preview      PreviewConfig      `mapstructure:"preview"`
}

// SourceConfig describes the equirectangular input map.
type SourceConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// TargetConfig selects the output projection by its [mapproj.Names]
// entry.  Angles are given in degrees and Pole is "north" or "south";
// each projection reads only the fields it needs.
type TargetConfig struct {
	Projection string  `mapstructure:"projection"`
	Width      float64 `mapstructure:"width"`
	Height     float64 `mapstructure:"height"`
	RefLong    float64 `mapstructure:"ref_long"`
	RefLat     float64 `mapstructure:"ref_lat"`
	StdLat     float64 `mapstructure:"std_lat"`
	StdLatB    float64 `mapstructure:"std_lat_b"`
	LatLimit   float64 `mapstructure:"lat_limit"`
	OriginLong float64 `mapstructure:"origin_long"`
	OriginLat  float64 `mapstructure:"origin_lat"`
	Pole       string  `mapstructure:"pole"`
	Precision  float64 `mapstructure:"precision"`
}

// BoundConfig is the visible region.
type BoundConfig struct {
	LongMin float64 `mapstructure:"long_min"`
	LatMin  float64 `mapstructure:"lat_min"`
	LongMax float64 `mapstructure:"long_max"`
	LatMax  float64 `mapstructure:"lat_max"`
}

// ApproximatorConfig selects the curve approximator.  Kind is
// "equidistant" or "bisection"; MaxDepth applies to "bisection" only, the
// remaining limits to "equidistant" only.
type ApproximatorConfig struct {
	Kind          string  `mapstructure:"kind"`
	Precision     float64 `mapstructure:"precision"`
	MaxResolution int     `mapstructure:"max_resolution"`
	Increment     int     `mapstructure:"increment"`
	ZLimit        float64 `mapstructure:"z_limit"`
	ZFill         int     `mapstructure:"z_fill"`
	MaxDepth      int     `mapstructure:"max_depth"`
}

// PreviewConfig controls the optional PNG preview.  No preview is
// written if File is empty.
type PreviewConfig struct {
	File      string  `mapstructure:"file"`
	Scale     float64 `mapstructure:"scale"`
	LineWidth float64 `mapstructure:"line_width"`
}

// newFlags returns the command line flags.  Flags override the
// configuration file and the environment.
func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("inkproject", pflag.ContinueOnError)
	flags.String("config", "", "configuration file (default ./inkproject.yaml)")
	flags.StringP("input", "i", "-", "file with one SVG path per line, - for stdin")
	flags.StringP("output", "o", "-", "output file, - for stdout")
	flags.StringP("projection", "p", "robinson", "target projection")
	flags.String("preview", "", "write a PNG preview to this file")
	flags.IntP("workers", "j", 0, "number of concurrent workers (0: one per CPU)")
	flags.BoolP("verbose", "v", false, "log dropped paths to stderr")
	return flags
}

// Load reads the configuration from the file named by the --config flag
// (or ./inkproject.yaml), the environment and the command line.
func Load(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()

	// Defaults
	v.SetDefault("input", "-")
	v.SetDefault("output", "-")
	v.SetDefault("workers", 0)
	v.SetDefault("verbose", false)
	v.SetDefault("source.width", 360)
	v.SetDefault("source.height", 180)
	v.SetDefault("target.projection", "robinson")
	v.SetDefault("target.width", 360)
	v.SetDefault("target.height", 180)
	v.SetDefault("target.ref_long", 0)
	v.SetDefault("target.ref_lat", 0)
	v.SetDefault("target.lat_limit", 85)
	v.SetDefault("target.std_lat", 30)
	v.SetDefault("target.std_lat_b", 60)
	v.SetDefault("target.origin_long", 0)
	v.SetDefault("target.origin_lat", 0)
	v.SetDefault("target.pole", "north")
	v.SetDefault("target.precision", 0)
	v.SetDefault("bound.long_min", -180)
	v.SetDefault("bound.lat_min", -90)
	v.SetDefault("bound.long_max", 180)
	v.SetDefault("bound.lat_max", 90)
	v.SetDefault("approximator.kind", "equidistant")
	v.SetDefault("approximator.precision", 0.1)
	v.SetDefault("approximator.max_resolution", 500)
	v.SetDefault("approximator.increment", 1)
	v.SetDefault("approximator.z_limit", 3)
	v.SetDefault("approximator.z_fill", 5)
	v.SetDefault("approximator.max_depth", approx.DefaultMaxDepth)
	v.SetDefault("preview.file", "")
	v.SetDefault("preview.scale", 1)
	v.SetDefault("preview.line_width", 1)

	// Config file: explicit file must exist, the default one is optional
	v.SetConfigType("yaml")
	if file, _ := flags.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("inkproject")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// Environment variables: INKPROJECT_TARGET_WIDTH → target.width
	v.SetEnvPrefix("INKPROJECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"input":             "input",
		"output":            "output",
		"target.projection": "projection",
		"preview.file":      "preview",
		"workers":           "workers",
		"verbose":           "verbose",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings which are not checked when the projection
// is built.
func (c *Config) Validate() error {
	var errs []string

	if c.Input == "" {
		errs = append(errs, "input is required")
	}
	if c.Output == "" {
		errs = append(errs, "output is required")
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Sprintf("workers must not be negative, got %d", c.Workers))
	}
	if !positive(c.Source.Width) || !positive(c.Source.Height) {
		errs = append(errs, fmt.Sprintf("source size must be positive, got %gx%g",
			c.Source.Width, c.Source.Height))
	}
	if !slices.Contains(mapproj.Names(), c.Target.Projection) {
		errs = append(errs, fmt.Sprintf("unknown target.projection %q", c.Target.Projection))
	}
	if !positive(c.Target.Width) || !positive(c.Target.Height) {
		errs = append(errs, fmt.Sprintf("target size must be positive, got %gx%g",
			c.Target.Width, c.Target.Height))
	}
	if _, err := mapproj.ParsePole(c.Target.Pole); err != nil {
		errs = append(errs, fmt.Sprintf("target.pole must be north or south, got %q", c.Target.Pole))
	}
	if c.Bound.LongMin > c.Bound.LongMax || c.Bound.LatMin > c.Bound.LatMax {
		errs = append(errs, "bound minimum exceeds maximum")
	}
	switch c.Approximator.Kind {
	case "equidistant", "bisection":
	default:
		errs = append(errs, fmt.Sprintf("approximator.kind must be equidistant or bisection, got %q",
			c.Approximator.Kind))
	}
	if c.Preview.File != "" {
		if !positive(c.Preview.Scale) {
			errs = append(errs, fmt.Sprintf("preview.scale must be positive, got %g", c.Preview.Scale))
		}
		if !positive(c.Preview.LineWidth) {
			errs = append(errs, fmt.Sprintf("preview.line_width must be positive, got %g",
				c.Preview.LineWidth))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Params returns the projection parameters in radians.
func (c *Config) Params() mapproj.Params {
	t := c.Target
	pole, _ := mapproj.ParsePole(t.Pole)
	return mapproj.Params{
		RefLong:   rad(t.RefLong),
		RefLat:    rad(t.RefLat),
		StdLat:    rad(t.StdLat),
		StdLatB:   rad(t.StdLatB),
		LatLimit:  rad(t.LatLimit),
		Origin:    vec.Vec2{X: rad(t.OriginLong), Y: rad(t.OriginLat)},
		Pole:      pole,
		Precision: t.Precision,
	}
}

// VisibilityBound returns the visible region in radians.
func (c *Config) VisibilityBound() rect.Rect {
	return rect.Rect{
		LLx: rad(c.Bound.LongMin),
		LLy: rad(c.Bound.LatMin),
		URx: rad(c.Bound.LongMax),
		URy: rad(c.Bound.LatMax),
	}
}

// Approx returns the configured approximator.
func (c *Config) Approx() approx.Approximator {
	a := c.Approximator
	if a.Kind == "bisection" {
		return approx.Bisection{Precision: a.Precision, MaxDepth: a.MaxDepth}
	}
	return approx.Equidistant{
		Precision:     a.Precision,
		MaxResolution: a.MaxResolution,
		Increment:     a.Increment,
		ZLimit:        a.ZLimit,
		ZFill:         a.ZFill,
	}
}

// Builder returns a builder for the configured projection.
func (c *Config) Builder() *projector.Builder {
	return projector.NewBuilder().
		FromEquirectangular(c.Source.Width, c.Source.Height).
		To(c.Target.Projection, c.Target.Width, c.Target.Height, c.Params()).
		WithVisibilityBounds(c.VisibilityBound()).
		WithApproximator(c.Approx())
}
