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
	"errors"
	"fmt"
	"math"
)

// ErrParams is returned for stroke parameters outside of their valid range.
var ErrParams = errors.New("invalid stroke parameters")

// Side selects which contour the zigzag starts on.
type Side int

const (
	// SideA starts each zigzag step on contour B and ends it on A.
	SideA Side = iota

	// SideB exchanges the roles of the two contours.
	SideB
)

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Limits for the stroke parameters.
const (
	MinWidth  = 1
	MaxWidth  = 20
	MaxOffset = 4
	MaxNoise  = 10
)

// Params holds the settings of one contour group.
type Params struct {
	// Width is the stroke width in font units, between MinWidth and MaxWidth.
	Width int

	// Distance is the target spacing of the sample points on contour A.
	Distance float64

	// Side selects the contour the zigzag starts on.
	Side Side

	// Offset shifts contour B against contour A by this many points,
	// between 0 and MaxOffset.
	Offset int

	// Noise is the jitter intensity, between 0 and MaxNoise.
	// Each unit corresponds to ten font units of displacement.
	Noise int
}

// DefaultParams returns the settings used for new contour groups.
func DefaultParams() Params {
	return Params{
		Width:    4,
		Distance: 35,
		Side:     SideA,
	}
}

// Validate checks that all parameters are in range.
func (p Params) Validate() error {
	if p.Width < MinWidth || p.Width > MaxWidth {
		return fmt.Errorf("%w: width %d not in [%d, %d]", ErrParams, p.Width, MinWidth, MaxWidth)
	}
	if !(p.Distance > 0) || math.IsInf(p.Distance, 1) {
		return fmt.Errorf("%w: distance %g", ErrParams, p.Distance)
	}
	if p.Side != SideA && p.Side != SideB {
		return fmt.Errorf("%w: side %s", ErrParams, p.Side)
	}
	if p.Offset < 0 || p.Offset > MaxOffset {
		return fmt.Errorf("%w: offset %d not in [0, %d]", ErrParams, p.Offset, MaxOffset)
	}
	if p.Noise < 0 || p.Noise > MaxNoise {
		return fmt.Errorf("%w: noise %d not in [0, %d]", ErrParams, p.Noise, MaxNoise)
	}
	return nil
}
