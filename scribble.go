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

package scribble

import (
	"math/rand/v2"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scribble/contour"
	"seehuhn.de/go/scribble/flatten"
	"seehuhn.de/go/scribble/noise"
	"seehuhn.de/go/scribble/weave"
)

// Noise field settings.
const (
	// noiseOctaves is the number of octaves of the jitter field.
	noiseOctaves = 4

	// noiseTile is the tile period of the jitter field along both axes.
	noiseTile = 1000.0 / 600.0

	// noiseScale converts Params.Noise into a displacement in font units.
	noiseScale = 10
)

// Stroke is a generated scribble.
type Stroke struct {
	// Points is the woven zigzag polyline.
	Points []vec.Vec2

	// A and B are the sampled and displaced contours.  For closed contours
	// the start point is repeated at the end.
	A, B []vec.Vec2

	// Steps lists the step count used for each segment of both contours.
	Steps flatten.StepMap

	// Width is the stroke width in font units.
	Width float64
}

// Path returns the stroke polyline as an open path.
func (s *Stroke) Path() path.Path {
	return weave.Path(s.Points)
}

// IsEmpty reports whether there is nothing to draw.
func (s *Stroke) IsEmpty() bool {
	return len(s.Points) == 0
}

type config struct {
	rng     *rand.Rand
	filter  bool
	octaves int
}

// Option configures [Generate].
type Option func(*config)

// WithRand sets the random source for the noise gradients.
// Use this to make noisy strokes reproducible.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

// WithoutRepeatFilter keeps zero-length segments instead of dropping them.
func WithoutRepeatFilter() Option {
	return func(c *config) { c.filter = false }
}

// WithOctaves overrides the number of noise octaves.
func WithOctaves(n int) Option {
	return func(c *config) { c.octaves = n }
}

// Generate computes the scribble stroke between the contours a and b.
//
// Contour a is sampled with the point distance from p, and b is sampled
// with the step counts found for a.  If the two contours do not have the
// same number of segments, the returned error wraps a
// [*flatten.AlignmentError]; callers should treat such a pair as
// temporarily unrenderable.  Empty contours give an empty stroke.
func Generate(a, b *contour.Contour, p Params, opts ...Option) (*Stroke, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	cfg := &config{
		filter:  true,
		octaves: noiseOctaves,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	ra, err := flatten.Flatten(a, flatten.Distance(p.Distance), cfg.filter)
	if err != nil {
		return nil, err
	}
	rb, err := flatten.Flatten(b, flatten.Reference{Steps: ra.Steps}, cfg.filter)
	if err != nil {
		return nil, err
	}

	res := &Stroke{
		Steps: ra.Steps,
		Width: float64(p.Width),
	}
	if len(ra.Points) == 0 || len(rb.Points) == 0 {
		return res, nil
	}

	fieldOpts := []noise.Option{
		noise.Octaves(cfg.octaves),
		noise.Tile(noiseTile, noiseTile),
	}
	if cfg.rng != nil {
		fieldOpts = append(fieldOpts, noise.Rand(cfg.rng))
	}
	field, err := noise.New(fieldOpts...)
	if err != nil {
		return nil, err
	}

	intensity := float64(p.Noise * noiseScale)
	res.A = noise.Displace(ra.Points, ra.Closed, field, intensity)
	res.B = noise.Displace(rb.Points, rb.Closed, field, intensity)
	res.Points = weave.Weave(res.A, res.B, p.Offset, p.Side == SideB)

	Logger().Debug("stroke generated",
		"a", a.ID, "b", b.ID,
		"segments", ra.Steps.Len(),
		"points", len(res.Points))
	return res, nil
}
