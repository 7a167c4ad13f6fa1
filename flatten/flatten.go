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

// Package flatten samples contours into polylines.
//
// Each line or curve segment is split into a number of steps, and one point
// is emitted per step.  The step count is either derived from the segment
// length ([Distance]) or replayed from the step map of another contour
// ([Reference]).  Replaying a step map makes two interpolation-compatible
// contours produce point-for-point corresponding polylines.
package flatten

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scribble/contour"
)

// ErrPolicy is returned for an unusable step policy.
var ErrPolicy = errors.New("invalid step policy")

// Policy selects how many points are emitted for each segment.
// It is either a [Distance] or a [Reference].
type Policy interface {
	isPolicy()
}

// Distance chooses the step count of each segment so that consecutive
// points are approximately this far apart.  Must be positive.
type Distance float64

func (Distance) isPolicy() {}

// Reference replays the step counts recorded while flattening another
// contour.
type Reference struct {
	Steps StepMap
}

func (Reference) isPolicy() {}

// Result is a flattened contour.
type Result struct {
	// Points lists the polyline vertices, starting with the MoveTo point.
	// For closed contours the final vertex, which coincides with the
	// start, is not repeated.
	Points []vec.Vec2

	// Closed reports whether the source contour was closed.
	Closed bool

	// Steps holds the step count used for each line or curve segment.
	Steps StepMap
}

// Polyline returns the vertices with the start point appended once more if
// the contour is closed, so that the returned points trace the full loop.
func (r *Result) Polyline() []vec.Vec2 {
	if !r.Closed || len(r.Points) < 2 {
		return r.Points
	}
	pts := make([]vec.Vec2, len(r.Points), len(r.Points)+1)
	copy(pts, r.Points)
	return append(pts, r.Points[0])
}

// Flatten samples the contour c according to the given policy.
//
// If filterRepeated is set, line segments (and curves which degenerate to
// lines) ending at the current point are dropped entirely: they neither
// emit points nor occupy a segment index.
//
// An empty contour gives an empty result.  In Reference mode, an
// [*AlignmentError] is returned if the contour and the step map disagree
// about the number of segments.
func Flatten(c *contour.Contour, policy Policy, filterRepeated bool) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	s := &sampler{filter: filterRepeated}
	switch p := policy.(type) {
	case Distance:
		d := float64(p)
		if !(d > 0) || math.IsInf(d, 1) {
			return nil, fmt.Errorf("%w: distance %g", ErrPolicy, d)
		}
		s.distance = d
	case Reference:
		s.ref = &p.Steps
	default:
		return nil, fmt.Errorf("%w: %T", ErrPolicy, policy)
	}

	res := &Result{}
	for _, seg := range c.Segments {
		var err error
		switch seg.Kind {
		case contour.MoveTo:
			s.current = seg.Pts[0]
			s.first = seg.Pts[0]
			s.points = append(s.points, seg.Pts[0])
		case contour.LineTo:
			err = s.lineTo(seg.Pts[0])
		case contour.CurveTo:
			err = s.curveTo(seg.Pts[0], seg.Pts[1], seg.Pts[2])
		case contour.Close:
			err = s.lineTo(s.first)
			res.Closed = true
			// An explicit closing line leaves a second copy of the
			// start point when repeated points are kept.
			for n := len(s.points); n > 1 && s.points[n-1] == s.first; n-- {
				s.points = s.points[:n-1]
			}
		case contour.End:
			// nothing to add
		}
		if err != nil {
			return nil, fmt.Errorf("contour %q: %w", c.ID, err)
		}
	}

	if s.ref != nil && s.index != s.ref.Len() {
		err := &AlignmentError{Index: s.index + 1, Want: s.ref.Len(), Got: s.index}
		return nil, fmt.Errorf("contour %q: %w", c.ID, err)
	}

	res.Points = s.points
	res.Steps = StepMap{steps: s.steps}
	return res, nil
}

// sampler holds the state while walking the segments of one contour.
type sampler struct {
	distance float64  // Distance mode
	ref      *StepMap // Reference mode
	filter   bool

	index   int // 1-based index of the last line/curve segment
	current vec.Vec2
	first   vec.Vec2

	points []vec.Vec2
	steps  []int
}

func (s *sampler) lineTo(p vec.Vec2) error {
	if s.filter && p == s.current {
		return nil
	}
	s.index++

	n, err := s.stepCount(func() float64 { return p.Sub(s.current).Length() })
	if err != nil {
		return err
	}
	a := s.current
	for k := 1; k < n; k++ {
		t := float64(k) / float64(n)
		s.points = append(s.points, a.Add(p.Sub(a).Mul(t)))
	}
	s.points = append(s.points, p)
	s.current = p
	return nil
}

func (s *sampler) curveTo(c1, c2, p vec.Vec2) error {
	if c1 == s.current && c2 == p {
		// a straight line written as a curve
		return s.lineTo(p)
	}
	s.index++

	p0 := s.current
	n, err := s.stepCount(func() float64 { return cubicLength(p0, c1, c2, p) })
	if err != nil {
		return err
	}
	for k := 1; k < n; k++ {
		t := float64(k) / float64(n)
		s.points = append(s.points, cubicPoint(t, p0, c1, c2, p))
	}
	s.points = append(s.points, p)
	s.current = p
	return nil
}

// stepCount returns the number of steps for the current segment and
// records it.  The length is only evaluated in Distance mode.
func (s *sampler) stepCount(length func() float64) (int, error) {
	var n int
	if s.ref != nil {
		var ok bool
		n, ok = s.ref.Steps(s.index)
		if !ok || n < 1 {
			return 0, &AlignmentError{Index: s.index, Want: s.ref.Len(), Got: s.index}
		}
	} else {
		n = max(1, int(math.RoundToEven(length()/s.distance)))
	}
	s.steps = append(s.steps, n)
	return n, nil
}

// cubicPoint evaluates the cubic Bézier curve at parameter t.
func cubicPoint(t float64, p0, p1, p2, p3 vec.Vec2) vec.Vec2 {
	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
}

// cubicLength estimates the arc length of a cubic Bézier curve by summing
// the chords of a uniform subdivision.
func cubicLength(p0, p1, p2, p3 vec.Vec2) float64 {
	length := 0.0
	prev := p0
	for i := 1; i <= lengthPrecision; i++ {
		pt := cubicPoint(float64(i)/lengthPrecision, p0, p1, p2, p3)
		length += pt.Sub(prev).Length()
		prev = pt
	}
	return length
}

// lengthPrecision is the number of chords used to estimate curve lengths.
const lengthPrecision = 10
