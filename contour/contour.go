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

// Package contour represents single glyph outline contours as a sequence of
// move, line, cubic curve, close and end segments.
package contour

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrMalformed is returned for contours which do not consist of exactly one
// leading MoveTo, followed by drawing segments and a final Close or End.
var ErrMalformed = errors.New("malformed contour")

// Kind identifies the type of a contour segment.
type Kind uint8

// These are the segment kinds.
const (
	MoveTo Kind = iota
	LineTo
	CurveTo
	Close
	End
)

func (k Kind) String() string {
	switch k {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case CurveTo:
		return "C"
	case Close:
		return "Z"
	case End:
		return "E"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// NumPoints returns the number of points a segment of kind k carries.
func (k Kind) NumPoints() int {
	switch k {
	case MoveTo, LineTo:
		return 1
	case CurveTo:
		return 3
	default:
		return 0
	}
}

// Segment is one element of a contour.
// For CurveTo, Pts holds the two control points followed by the end point.
type Segment struct {
	Kind Kind
	Pts  []vec.Vec2
}

// Contour is a single open or closed outline path.
//
// The builder methods append a segment and return the receiver, so that
// contours can be written as chains:
//
//	c := contour.New("").
//		MoveTo(vec.Vec2{X: 0, Y: 0}).
//		LineTo(vec.Vec2{X: 100, Y: 0}).
//		Close()
type Contour struct {
	// ID identifies the contour within its glyph.
	ID string

	Segments []Segment
}

// New returns an empty contour with the given identifier.
// If id is empty, a random identifier is allocated.
func New(id string) *Contour {
	if id == "" {
		id = uuid.NewString()
	}
	return &Contour{ID: id}
}

// MoveTo starts the contour at p.
func (c *Contour) MoveTo(p vec.Vec2) *Contour {
	c.Segments = append(c.Segments, Segment{Kind: MoveTo, Pts: []vec.Vec2{p}})
	return c
}

// LineTo appends a straight line to p.
func (c *Contour) LineTo(p vec.Vec2) *Contour {
	c.Segments = append(c.Segments, Segment{Kind: LineTo, Pts: []vec.Vec2{p}})
	return c
}

// CurveTo appends a cubic Bézier curve with control points c1, c2 ending at p.
func (c *Contour) CurveTo(c1, c2, p vec.Vec2) *Contour {
	c.Segments = append(c.Segments, Segment{Kind: CurveTo, Pts: []vec.Vec2{c1, c2, p}})
	return c
}

// Close closes the contour back to its starting point.
func (c *Contour) Close() *Contour {
	c.Segments = append(c.Segments, Segment{Kind: Close})
	return c
}

// End terminates the contour without a closing edge.
func (c *Contour) End() *Contour {
	c.Segments = append(c.Segments, Segment{Kind: End})
	return c
}

// IsClosed reports whether the contour ends with a Close segment.
func (c *Contour) IsClosed() bool {
	n := len(c.Segments)
	return n > 0 && c.Segments[n-1].Kind == Close
}

// Validate checks the structure of the contour.
// An empty contour is valid: it has nothing to draw.
func (c *Contour) Validate() error {
	if len(c.Segments) == 0 {
		return nil
	}
	if c.Segments[0].Kind != MoveTo {
		return fmt.Errorf("contour %q: %w: starts with %s", c.ID, ErrMalformed, c.Segments[0].Kind)
	}
	last := len(c.Segments) - 1
	for i, seg := range c.Segments {
		if len(seg.Pts) != seg.Kind.NumPoints() {
			return fmt.Errorf("contour %q: %w: segment %d (%s) has %d points",
				c.ID, ErrMalformed, i, seg.Kind, len(seg.Pts))
		}
		switch seg.Kind {
		case MoveTo:
			if i != 0 {
				return fmt.Errorf("contour %q: %w: MoveTo at segment %d", c.ID, ErrMalformed, i)
			}
		case Close, End:
			if i != last {
				return fmt.Errorf("contour %q: %w: %s at segment %d", c.ID, ErrMalformed, seg.Kind, i)
			}
		case LineTo, CurveTo:
			// ok
		default:
			return fmt.Errorf("contour %q: %w: unknown segment kind %d", c.ID, ErrMalformed, seg.Kind)
		}
	}
	if k := c.Segments[last].Kind; k != Close && k != End {
		return fmt.Errorf("contour %q: %w: missing Close or End", c.ID, ErrMalformed)
	}
	return nil
}

// Compatible reports whether a and b have the same segment structure.
// Only compatible contours can be sampled point-for-point against each
// other.
func Compatible(a, b *Contour) bool {
	return FirstDifference(a, b) < 0
}

// FirstDifference returns the index of the first segment where the kinds
// of a and b differ, or where one of the contours has ended.  If the
// contours are compatible, -1 is returned.
func FirstDifference(a, b *Contour) int {
	n := min(len(a.Segments), len(b.Segments))
	for i := range n {
		if a.Segments[i].Kind != b.Segments[i].Kind {
			return i
		}
	}
	if len(a.Segments) != len(b.Segments) {
		return n
	}
	return -1
}

// Path returns the contour as a geometry path.
func (c *Contour) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, seg := range c.Segments {
			var ok bool
			switch seg.Kind {
			case MoveTo:
				ok = yield(path.CmdMoveTo, seg.Pts)
			case LineTo:
				ok = yield(path.CmdLineTo, seg.Pts)
			case CurveTo:
				ok = yield(path.CmdCubeTo, seg.Pts)
			case Close:
				ok = yield(path.CmdClose, nil)
			case End:
				return
			}
			if !ok {
				return
			}
		}
	}
}

// FromPath converts a geometry path holding a single subpath into a
// contour.  Quadratic segments are raised to cubics.  A path which does not
// end with a close command becomes an open contour.
func FromPath(id string, p path.Path) (*Contour, error) {
	c := New(id)
	var current vec.Vec2
	for cmd, pts := range p {
		if len(c.Segments) > 0 && c.Segments[len(c.Segments)-1].Kind == Close {
			return nil, fmt.Errorf("contour %q: %w: segments after close", c.ID, ErrMalformed)
		}
		switch cmd {
		case path.CmdMoveTo:
			if len(c.Segments) > 0 {
				return nil, fmt.Errorf("contour %q: %w: more than one subpath", c.ID, ErrMalformed)
			}
			c.MoveTo(pts[0])
			current = pts[0]
		case path.CmdLineTo:
			c.LineTo(pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			// raise the degree: C1 = P0 + 2/3 (Q - P0), C2 = P2 + 2/3 (Q - P2)
			q, end := pts[0], pts[1]
			c1 := current.Add(q.Sub(current).Mul(2.0 / 3))
			c2 := end.Add(q.Sub(end).Mul(2.0 / 3))
			c.CurveTo(c1, c2, end)
			current = end
		case path.CmdCubeTo:
			c.CurveTo(pts[0], pts[1], pts[2])
			current = pts[2]
		case path.CmdClose:
			c.Close()
		}
	}
	if n := len(c.Segments); n > 0 && c.Segments[n-1].Kind != Close {
		c.End()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// FromPolyline builds a contour of straight lines through pts.
func FromPolyline(id string, pts []vec.Vec2, closed bool) *Contour {
	c := New(id)
	if len(pts) == 0 {
		return c
	}
	c.MoveTo(pts[0])
	for _, p := range pts[1:] {
		c.LineTo(p)
	}
	if closed {
		c.Close()
	} else {
		c.End()
	}
	return c
}

// Bounds returns the bounding box of all on-curve and control points.
// The result is the zero rectangle for an empty contour.
func (c *Contour) Bounds() rect.Rect {
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, seg := range c.Segments {
		for _, p := range seg.Pts {
			b.LLx = min(b.LLx, p.X)
			b.LLy = min(b.LLy, p.Y)
			b.URx = max(b.URx, p.X)
			b.URy = max(b.URy, p.Y)
		}
	}
	if b.LLx > b.URx {
		return rect.Rect{}
	}
	return b
}
