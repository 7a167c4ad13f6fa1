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

package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scribble"
	"seehuhn.de/go/scribble/contour"
	"seehuhn.de/go/scribble/export"
	"seehuhn.de/go/scribble/glyph"
	"seehuhn.de/go/scribble/preview"
)

// Resolved contains a job with all defaults filled in.
type Resolved struct {
	Glyph    *glyph.Glyph
	Registry *glyph.Registry

	// Seed initialises the noise generator.  If Seeded is false, the
	// noise differs between runs.
	Seed   uint64
	Seeded bool

	// Colour is the stroke colour, used for both preview and PDF output.
	Colour color.NRGBA

	// Preview selects whether a preview image is wanted.
	Preview        bool
	PreviewOptions preview.Options
}

// Resolve converts the job into a glyph and a group registry.
func (j *Job) Resolve() (*Resolved, error) {
	g := &glyph.Glyph{Name: strings.TrimSpace(j.Glyph)}
	seen := make(map[string]bool)
	for i, cc := range j.Contours {
		c, err := cc.Contour()
		if err != nil {
			return nil, fmt.Errorf("contour %d: %w", i+1, err)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("%w: duplicate contour id %q", ErrInvalid, c.ID)
		}
		if !validID(c.ID) {
			return nil, fmt.Errorf("%w: contour id %q contains white space", ErrInvalid, c.ID)
		}
		seen[c.ID] = true
		g.Contours = append(g.Contours, c)
	}

	// Saved groups are restored without looking at the contours.  Groups
	// whose contours were removed or edited are skipped when drawing.
	reg := &glyph.Registry{}
	for i, gc := range j.Groups {
		if len(gc.Contours) != 2 {
			return nil, fmt.Errorf("%w: group %d needs two contours, got %d",
				ErrInvalid, i+1, len(gc.Contours))
		}
		a, b := gc.Contours[0], gc.Contours[1]
		if a == b || !validID(a) || !validID(b) {
			return nil, fmt.Errorf("%w: group %d: cannot pair %q with %q",
				ErrInvalid, i+1, a, b)
		}
		p, err := gc.Params()
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i+1, err)
		}
		if err := reg.Restore(glyph.Key(a, b), p); err != nil {
			return nil, fmt.Errorf("group %d: %w", i+1, err)
		}
	}

	opt := preview.DefaultOptions()
	if j.Colour != "" {
		col, err := ParseColour(j.Colour)
		if err != nil {
			return nil, err
		}
		opt.Stroke = col
	}
	if j.Preview.Width > 0 {
		opt.Width = j.Preview.Width
	}
	if j.Preview.Height > 0 {
		opt.Height = j.Preview.Height
	}
	if j.Preview.Margin > 0 {
		opt.Margin = j.Preview.Margin
	}

	res := &Resolved{
		Glyph:          g,
		Registry:       reg,
		Colour:         opt.Stroke,
		Preview:        j.Preview.Enabled == nil || *j.Preview.Enabled,
		PreviewOptions: opt,
	}
	if j.Seed != nil {
		res.Seed, res.Seeded = *j.Seed, true
	}
	return res, nil
}

// validID reports whether s can be used as a contour id in a group key.
func validID(s string) bool {
	return s != "" && !strings.ContainsFunc(s, unicode.IsSpace)
}

// SetGroups replaces the groups of the job with the groups in reg.
func (j *Job) SetGroups(reg *glyph.Registry) {
	j.Groups = nil
	for _, grp := range reg.Groups() {
		j.Groups = append(j.Groups, NewGroupConfig(grp))
	}
}

// Params returns the stroke parameters of the group, with defaults for
// unset values.
func (gc *GroupConfig) Params() (scribble.Params, error) {
	p := scribble.DefaultParams()
	if gc.Width != nil {
		p.Width = *gc.Width
	}
	if gc.Distance != nil {
		p.Distance = *gc.Distance
	}
	if gc.Offset != nil {
		p.Offset = *gc.Offset
	}
	if gc.Noise != nil {
		p.Noise = *gc.Noise
	}
	if gc.Side != "" {
		side, err := ParseSide(gc.Side)
		if err != nil {
			return p, err
		}
		p.Side = side
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// ParseSide parses the side names "A" and "B".
func ParseSide(s string) (scribble.Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return scribble.SideA, nil
	case "B":
		return scribble.SideB, nil
	default:
		return 0, fmt.Errorf("%w: unknown side %q", ErrInvalid, s)
	}
}

// NewGroupConfig records the contours and parameters of a group.
func NewGroupConfig(g glyph.Group) GroupConfig {
	p := g.Params
	return GroupConfig{
		Contours: []string{g.A, g.B},
		Width:    &p.Width,
		Distance: &p.Distance,
		Side:     p.Side.String(),
		Offset:   &p.Offset,
		Noise:    &p.Noise,
	}
}

// Contour converts the job file representation into a contour.
// Contours without an id are assigned a random one.
func (cc *ContourConfig) Contour() (*contour.Contour, error) {
	c := contour.New(cc.ID)
	for i, sc := range cc.Segments {
		kind, ok := kinds[strings.ToUpper(strings.TrimSpace(sc.Cmd))]
		if !ok {
			return nil, fmt.Errorf("%w: segment %d: unknown command %q", ErrInvalid, i+1, sc.Cmd)
		}
		if len(sc.Pts) != kind.NumPoints() {
			return nil, fmt.Errorf("%w: segment %d: %s needs %d points, got %d",
				ErrInvalid, i+1, kind, kind.NumPoints(), len(sc.Pts))
		}
		seg := contour.Segment{Kind: kind}
		for _, xy := range sc.Pts {
			if len(xy) != 2 {
				return nil, fmt.Errorf("%w: segment %d: point %v is not an [x, y] pair",
					ErrInvalid, i+1, xy)
			}
			seg.Pts = append(seg.Pts, vec.Vec2{X: xy[0], Y: xy[1]})
		}
		c.Segments = append(c.Segments, seg)
	}
	if len(c.Segments) > 0 {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("contour %q: %w", c.ID, err)
		}
	}
	return c, nil
}

var kinds = map[string]contour.Kind{
	"M": contour.MoveTo,
	"L": contour.LineTo,
	"C": contour.CurveTo,
	"Z": contour.Close,
	"E": contour.End,
}

// NewContourConfig converts a contour into its job file representation.
func NewContourConfig(c *contour.Contour) ContourConfig {
	cc := ContourConfig{ID: c.ID}
	for _, seg := range c.Segments {
		sc := SegmentConfig{Cmd: seg.Kind.String()}
		for _, p := range seg.Pts {
			sc.Pts = append(sc.Pts, []float64{p.X, p.Y})
		}
		cc.Segments = append(cc.Segments, sc)
	}
	return cc
}

// SetLayer stores the contours of l in the job.  An existing layer with the
// same name is replaced.
func (j *Job) SetLayer(l *export.Layer) {
	lc := LayerConfig{Name: l.Name}
	for _, c := range l.Contours {
		lc.Contours = append(lc.Contours, NewContourConfig(c))
	}
	for i := range j.Layers {
		if j.Layers[i].Name == l.Name {
			j.Layers[i] = lc
			return
		}
	}
	j.Layers = append(j.Layers, lc)
}

// ParseColour parses a colour of the form "#rrggbb".
func ParseColour(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok || len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: colour %q is not of the form #rrggbb", ErrInvalid, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: colour %q: %w", ErrInvalid, s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
