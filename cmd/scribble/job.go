// seehuhn.de/go/scribble - scribble strokes between glyph contours
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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
	"context"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"seehuhn.de/go/scribble"
	"seehuhn.de/go/scribble/config"
	"seehuhn.de/go/scribble/glyph"
)

// job is a loaded job file together with the generated strokes.
type job struct {
	fname  string
	cfg    *config.Resolved
	result *glyph.Result
}

// runJob loads a job file and generates the strokes of all its groups.
func runJob(ctx context.Context, fname string) (*job, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := config.Resolve(fname)
	if err != nil {
		return nil, err
	}
	logger.Debug("job loaded", "file", fname, "glyph", cfg.Glyph.Name,
		"contours", len(cfg.Glyph.Contours), "groups", cfg.Registry.Len())

	var opts []scribble.Option
	if cfg.Seeded {
		opts = append(opts, scribble.WithRand(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))))
	}
	result, err := cfg.Glyph.Scribble(cfg.Registry, opts...)
	if err != nil {
		return nil, err
	}

	prog.done(fmt.Sprintf("Generated %d strokes for glyph %q", len(result.Strokes), cfg.Glyph.Name))
	if n := len(result.Skipped); n > 0 {
		logger.Warnf("%d contour groups could not be drawn", n)
	}
	return &job{fname: fname, cfg: cfg, result: result}, nil
}

// outputName replaces the extension of the job file name.
func outputName(fname, ext string) string {
	return strings.TrimSuffix(fname, filepath.Ext(fname)) + ext
}
