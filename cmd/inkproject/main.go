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

// Command inkproject re-projects SVG path data from an equirectangular
// map onto another map projection.
//
// The input contains one SVG path per line.  Empty lines and lines
// starting with '#' are skipped.  For every input path one line of
// projected path data is written; paths outside the visible region give
// an empty line.
//
// Settings are read from inkproject.yaml (or the file given by --config),
// from INKPROJECT_* environment variables and from the command line.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"seehuhn.de/go/geom/path"

	projector "github.com/Tau-Laboratory/Ink-Projector"
	"github.com/Tau-Laboratory/Ink-Projector/svgpath"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := newFlags()
	flags.SetOutput(stderr)
	cfg, err := Load(flags, args)
	if err != nil {
		return err
	}

	b := cfg.Builder()
	if cfg.Verbose {
		b = b.WithLogger(slog.New(slog.NewTextHandler(stderr, nil)))
	}
	proj, err := b.Build()
	if err != nil {
		return err
	}

	in := stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	labels, paths, err := readPaths(in)
	if err != nil {
		return err
	}

	results, err := proj.TransformAll(context.Background(), labels, paths, cfg.Workers)
	if err != nil {
		return err
	}

	out := stdout
	if cfg.Output != "-" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := writePaths(out, results); err != nil {
		return err
	}

	if cfg.Preview.File != "" {
		img := renderPreview(results, cfg.Target.Width, cfg.Target.Height,
			cfg.Preview.Scale, cfg.Preview.LineWidth)
		if err := writePNG(cfg.Preview.File, img); err != nil {
			return err
		}
	}
	return nil
}

// readPaths parses one SVG path per line.  Each path is labelled with
// its line number.
func readPaths(r io.Reader) ([]string, []projector.Path, error) {
	var labels []string
	var paths []projector.Path

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := svgpath.Parse(line)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		labels = append(labels, fmt.Sprintf("line %d", lineNo))
		paths = append(paths, p)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return labels, paths, nil
}

func writePaths(w io.Writer, results []*path.Data) error {
	bw := bufio.NewWriter(w)
	for _, p := range results {
		bw.WriteString(svgpath.Format(p))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
