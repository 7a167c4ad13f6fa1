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

package noise

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Sampler is a two-dimensional scalar field.
type Sampler interface {
	At(x, y float64) float64
}

// Displace jitters the vertices of a polyline sideways.
//
// Every vertex except the first is moved by intensity times the field value
// at the midpoint of the edge leading to it.  The direction is the edge
// angle plus 90, where the 90 is added to the angle in radians unchanged;
// generated strokes depend on this exact arithmetic.
//
// For closed polylines the closing edge is treated the same way, and the
// start point moved along this edge is appended as an extra vertex.
func Displace(pts []vec.Vec2, closed bool, s Sampler, intensity float64) []vec.Vec2 {
	if len(pts) == 0 {
		return nil
	}

	out := make([]vec.Vec2, 0, len(pts)+1)
	out = append(out, pts[0])
	for i := 1; i < len(pts); i++ {
		out = append(out, displaceEdge(pts[i-1], pts[i], s, intensity))
	}
	if closed && len(pts) > 1 {
		out = append(out, displaceEdge(pts[len(pts)-1], pts[0], s, intensity))
	}
	return out
}

// displaceEdge returns the displaced end point of the edge prev→next.
func displaceEdge(prev, next vec.Vec2, s Sampler, intensity float64) vec.Vec2 {
	if intensity == 0 {
		return next
	}
	mid := prev.Add(next).Mul(0.5)
	angle := math.Atan2(next.Y-prev.Y, next.X-prev.X) + 90
	amount := intensity * s.At(mid.X, mid.Y)
	return vec.Vec2{
		X: next.X + math.Cos(angle)*amount,
		Y: next.Y + math.Sin(angle)*amount,
	}
}
