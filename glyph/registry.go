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

package glyph

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"seehuhn.de/go/scribble"
	"seehuhn.de/go/scribble/contour"
)

var (
	// ErrIncompatible is returned when two contours cannot be paired.
	ErrIncompatible = errors.New("incompatible contours")

	// ErrUnknownGroup is returned for group keys not in the registry.
	ErrUnknownGroup = errors.New("unknown contour group")
)

// Group pairs two contours of a glyph.  A and B are the contour ids in
// sorted order.
type Group struct {
	A, B   string
	Params scribble.Params
}

// Key returns the key of the group.
func (g Group) Key() string {
	return Key(g.A, g.B)
}

// Key returns the group key for two contour ids: the ids in sorted order,
// separated by a space.
func Key(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + " " + b
}

// splitKey returns the two contour ids of a group key.
func splitKey(key string) (string, string, bool) {
	a, b, ok := strings.Cut(key, " ")
	return a, b, ok && a != "" && b != ""
}

// Registry holds the contour groups of one glyph.
// The zero value is an empty registry, ready to use.
type Registry struct {
	groups map[string]*Group
}

// Add creates a new group for the contours a and b of g, or replaces the
// parameters of an existing group.  The contours must both exist, be
// distinct, and have the same segment structure.
func (r *Registry) Add(g *Glyph, a, b string, p scribble.Params) (*Group, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if a == b {
		return nil, fmt.Errorf("%w: contour %q paired with itself", ErrIncompatible, a)
	}
	ca, cb := g.Contour(a), g.Contour(b)
	if ca == nil || cb == nil {
		missing := a
		if ca != nil {
			missing = b
		}
		return nil, fmt.Errorf("%w: glyph %q has no contour %q", ErrIncompatible, g.Name, missing)
	}
	if i := contour.FirstDifference(ca, cb); i >= 0 {
		return nil, fmt.Errorf("%w: segment %d is %s in %q but %s in %q",
			ErrIncompatible, i+1, kindAt(ca, i), a, kindAt(cb, i), b)
	}

	if b < a {
		a, b = b, a
	}
	grp := &Group{A: a, B: b, Params: p}
	if r.groups == nil {
		r.groups = make(map[string]*Group)
	}
	r.groups[grp.Key()] = grp
	c := *grp
	return &c, nil
}

// kindAt describes segment i of c.
func kindAt(c *contour.Contour, i int) string {
	if i >= len(c.Segments) {
		return "missing"
	}
	return c.Segments[i].Kind.String()
}

// Remove deletes a group.  It reports whether the group existed.
func (r *Registry) Remove(key string) bool {
	_, ok := r.groups[key]
	delete(r.groups, key)
	return ok
}

// Get returns a copy of the group with the given key.
func (r *Registry) Get(key string) (Group, bool) {
	grp, ok := r.groups[key]
	if !ok {
		return Group{}, false
	}
	return *grp, true
}

// Len returns the number of groups.
func (r *Registry) Len() int {
	return len(r.groups)
}

// Update applies edit to the parameters of all listed groups.
// If any group is unknown, or if the edit gives invalid parameters for any
// of the groups, nothing is changed.
func (r *Registry) Update(edit func(*scribble.Params), keys ...string) error {
	updated := make([]scribble.Params, len(keys))
	for i, key := range keys {
		grp, ok := r.groups[key]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownGroup, key)
		}
		p := grp.Params
		edit(&p)
		if err := p.Validate(); err != nil {
			return fmt.Errorf("group %q: %w", key, err)
		}
		updated[i] = p
	}
	for i, key := range keys {
		r.groups[key].Params = updated[i]
	}
	return nil
}

// Groups returns copies of all groups, ordered by key.
func (r *Registry) Groups() []Group {
	res := make([]Group, 0, len(r.groups))
	for _, key := range slices.Sorted(maps.Keys(r.groups)) {
		res = append(res, *r.groups[key])
	}
	return res
}

// Pair is a group together with its contours.
type Pair struct {
	Group Group
	A, B  *contour.Contour
}

// Pairs resolves the contour ids of all groups against g, in key order.
// Groups referring to contours which are no longer present are left out.
func (r *Registry) Pairs(g *Glyph) []Pair {
	var res []Pair
	for _, grp := range r.Groups() {
		a, b := g.Contour(grp.A), g.Contour(grp.B)
		if a == nil || b == nil {
			scribble.Logger().Debug("group refers to missing contour",
				"glyph", g.Name, "group", grp.Key())
			continue
		}
		res = append(res, Pair{Group: grp, A: a, B: b})
	}
	return res
}

// Restore adds a group by key without checking the contours.  This is used
// when loading saved groups, which may refer to contours that have since
// been edited or removed.
func (r *Registry) Restore(key string, p scribble.Params) error {
	a, b, ok := splitKey(key)
	if !ok || a == b {
		return fmt.Errorf("%w: malformed key %q", ErrUnknownGroup, key)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("group %q: %w", key, err)
	}
	if b < a {
		a, b = b, a
	}
	if r.groups == nil {
		r.groups = make(map[string]*Group)
	}
	grp := &Group{A: a, B: b, Params: p}
	r.groups[grp.Key()] = grp
	return nil
}
