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

// Package noise implements fractal gradient (Perlin) noise and its use to
// jitter polylines, emulating the texture of a hand-held pen.
package noise

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

var (
	// ErrDimension is returned when a point has the wrong number of
	// coordinates for the field.
	ErrDimension = errors.New("wrong number of coordinates")

	// ErrConfig is returned by New for unusable field parameters.
	ErrConfig = errors.New("invalid noise parameters")
)

// MaxDimension is the largest supported field dimension.
const MaxDimension = 4

// lattice identifies a grid point.  Unused trailing coordinates are zero.
type lattice [MaxDimension]int

// Field is a coherent pseudo-random scalar field.
//
// Gradients are drawn from the field's random source the first time a grid
// point is needed and are kept for the lifetime of the field.  Values are
// deterministic for a given field and point, but two fields generally
// differ.  A Field is not safe for concurrent use.
type Field struct {
	dim     int
	octaves int
	tile    [MaxDimension]float64
	unbias  bool
	scale   float64
	rng     *rand.Rand

	gradient map[lattice][MaxDimension]float64
}

// Option configures a Field.
type Option func(*Field)

// Dimension sets the number of coordinates of the field.  The default is 2.
func Dimension(n int) Option {
	return func(f *Field) { f.dim = n }
}

// Octaves sets the number of octaves summed.  The default is 1.
func Octaves(n int) Option {
	return func(f *Field) { f.octaves = n }
}

// Tile makes the field periodic with the given period along each axis.
// A period of 0 leaves the corresponding axis unbounded.
func Tile(periods ...float64) Option {
	return func(f *Field) {
		f.tile = [MaxDimension]float64{}
		copy(f.tile[:], periods)
	}
}

// Unbias spreads the histogram of noise values towards the extremes.
func Unbias() Option {
	return func(f *Field) { f.unbias = true }
}

// Rand sets the random source used for the gradients.  By default every
// field gets its own randomly seeded source.
func Rand(r *rand.Rand) Option {
	return func(f *Field) { f.rng = r }
}

// New returns a new noise field.
func New(opts ...Option) (*Field, error) {
	f := &Field{
		dim:     2,
		octaves: 1,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.dim < 1 || f.dim > MaxDimension {
		return nil, fmt.Errorf("%w: dimension %d", ErrConfig, f.dim)
	}
	if f.octaves < 1 || f.octaves > maxOctaves {
		return nil, fmt.Errorf("%w: %d octaves", ErrConfig, f.octaves)
	}
	for i, p := range f.tile {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("%w: tile period %g", ErrConfig, p)
		}
		if i >= f.dim && p != 0 {
			return nil, fmt.Errorf("%w: %d tile periods for dimension %d", ErrConfig, i+1, f.dim)
		}
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	f.scale = 2 / math.Sqrt(float64(f.dim))
	f.gradient = make(map[lattice][MaxDimension]float64)
	return f, nil
}

// Dim returns the dimension of the field.
func (f *Field) Dim() int {
	return f.dim
}

// Noise returns the field value at p, approximately in the range [-1, 1].
// The number of coordinates must match the dimension of the field.
func (f *Field) Noise(p ...float64) (float64, error) {
	if len(p) != f.dim {
		return 0, fmt.Errorf("%w: expected %d, got %d", ErrDimension, f.dim, len(p))
	}

	var q [MaxDimension]float64
	ret := 0.0
	for o := range f.octaves {
		o2 := float64(int(1) << o)
		for i, x := range p {
			x *= o2
			if f.tile[i] != 0 {
				x = floorMod(x, f.tile[i]*o2)
			}
			q[i] = x
		}
		ret += f.plain(q[:f.dim]) / o2
	}
	ret /= 2 - math.Pow(2, float64(1-f.octaves))

	if f.unbias {
		r := (ret + 1) / 2
		for range (f.octaves + 1) / 2 {
			r = smoothstep(r)
		}
		ret = 2*r - 1
	}
	return ret, nil
}

// At returns the value of a two-dimensional field at (x, y).
// It panics if the field is not two-dimensional.
func (f *Field) At(x, y float64) float64 {
	v, err := f.Noise(x, y)
	if err != nil {
		panic(err)
	}
	return v
}

// plain computes single-octave gradient noise.
func (f *Field) plain(p []float64) float64 {
	dim := len(p)

	var lo lattice
	for i, x := range p {
		lo[i] = int(math.Floor(x))
	}

	// Corner c has coordinate i at lo[i] + bit (dim-1-i) of c, so that
	// neighbouring entries differ in the last coordinate.
	var dots [1 << MaxDimension]float64
	n := 1 << dim
	for c := range n {
		var corner lattice
		for i := range dim {
			corner[i] = lo[i] + (c>>(dim-1-i))&1
		}
		g := f.gradientAt(corner)
		dot := 0.0
		for i := range dim {
			dot += g[i] * (p[i] - float64(corner[i]))
		}
		dots[c] = dot
	}

	// Interpolate along the last axis first.
	for d := dim - 1; d >= 0; d-- {
		s := smoothstep(p[d] - float64(lo[d]))
		n /= 2
		for j := range n {
			dots[j] = lerp(s, dots[2*j], dots[2*j+1])
		}
	}
	return dots[0] * f.scale
}

// gradientAt returns the unit gradient vector of a grid point.
func (f *Field) gradientAt(key lattice) [MaxDimension]float64 {
	if g, ok := f.gradient[key]; ok {
		return g
	}

	var g [MaxDimension]float64
	if f.dim == 1 {
		g[0] = 2*f.rng.Float64() - 1
	} else {
		// normalised Gaussian vectors are uniform on the sphere
		sum := 0.0
		for i := range f.dim {
			g[i] = f.rng.NormFloat64()
			sum += g[i] * g[i]
		}
		scale := 1 / math.Sqrt(sum)
		for i := range f.dim {
			g[i] *= scale
		}
	}
	f.gradient[key] = g
	return g
}

// smoothstep is the cubic Hermite fade curve t²(3-2t).
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// floorMod returns x modulo m with the sign of m.
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// maxOctaves limits the octave count so that 1<<o stays exact.
const maxOctaves = 30
