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

// Package glyph keeps track of the contour pairs of a glyph which are
// connected by scribble strokes.
package glyph

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/scribble"
	"seehuhn.de/go/scribble/contour"
	"seehuhn.de/go/scribble/flatten"
)

// Glyph is a named set of contours.
type Glyph struct {
	Name     string
	Contours []*contour.Contour
}

// Contour returns the contour with the given id, or nil.
func (g *Glyph) Contour(id string) *contour.Contour {
	for _, c := range g.Contours {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Bounds returns the bounding box of all contours.
func (g *Glyph) Bounds() rect.Rect {
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, c := range g.Contours {
		if len(c.Segments) == 0 {
			continue
		}
		cb := c.Bounds()
		b.LLx = min(b.LLx, cb.LLx)
		b.LLy = min(b.LLy, cb.LLy)
		b.URx = max(b.URx, cb.URx)
		b.URy = max(b.URy, cb.URy)
	}
	if b.LLx > b.URx {
		return rect.Rect{}
	}
	return b
}

// GroupStroke is the stroke generated for one contour group.
type GroupStroke struct {
	Group  Group
	Stroke *scribble.Stroke
}

// Skipped records a contour group which could not be drawn.
type Skipped struct {
	Key string
	Err error
}

// Result holds the strokes of all groups of a glyph.
type Result struct {
	Strokes []GroupStroke
	Skipped []Skipped
}

// Scribble generates the strokes for all groups in reg.
//
// Groups whose contours no longer line up, for example because one of them
// was edited after the group was created, are reported in Result.Skipped
// and the remaining groups are still drawn.  Any other failure aborts the
// whole glyph.
func (g *Glyph) Scribble(reg *Registry, opts ...scribble.Option) (*Result, error) {
	res := &Result{}
	for _, pair := range reg.Pairs(g) {
		s, err := scribble.Generate(pair.A, pair.B, pair.Group.Params, opts...)
		if errors.Is(err, flatten.ErrAlignment) {
			scribble.Logger().Warn("contour group cannot be drawn",
				"glyph", g.Name, "group", pair.Group.Key(), "error", err)
			res.Skipped = append(res.Skipped, Skipped{Key: pair.Group.Key(), Err: err})
			continue
		} else if err != nil {
			return nil, fmt.Errorf("glyph %q, group %q: %w", g.Name, pair.Group.Key(), err)
		}
		res.Strokes = append(res.Strokes, GroupStroke{Group: pair.Group, Stroke: s})
	}
	return res, nil
}
