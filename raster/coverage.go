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

package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Coverage is computed from signed areas.  Every edge piece inside a pixel
// adds two numbers to that pixel:
//
//	cover: the signed height of the piece (positive for downward edges)
//	area:  cover times the fraction of the pixel to the right of the piece
//
// Scanning a row from left to right, the winding of pixel i is the sum of
// cover over all pixels left of i, plus area[i].  The fill rule then turns
// this winding into a coverage value.

// edge is a line segment in device space.
type edge struct {
	x0, y0, x1, y1 float64
	slope          float64 // dx/dy
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// devBox is the device space bounding box of the collected edges.
type devBox struct {
	xMin, yMin, xMax, yMax float64
	empty                  bool
}

func (b *devBox) add(p vec.Vec2) {
	if b.empty {
		b.xMin, b.xMax, b.yMin, b.yMax = p.X, p.X, p.Y, p.Y
		b.empty = false
		return
	}
	b.xMin = min(b.xMin, p.X)
	b.xMax = max(b.xMax, p.X)
	b.yMin = min(b.yMin, p.Y)
	b.yMax = max(b.yMax, p.Y)
}

type fillRule uint8

const (
	nonZero fillRule = iota
	evenOdd
)

func (r *Rasteriser) startEdges() {
	r.edges = r.edges[:0]
	r.box = devBox{empty: true}
}

// addEdge records the user space segment a→b.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	da, db := r.device(a), r.device(b)
	dy := db.Y - da.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: da.X, y0: da.Y,
		x1: db.X, y1: db.Y,
		slope: (db.X - da.X) / dy,
	})
	r.box.add(da)
	r.box.add(db)
}

// pixelRange returns the clipped integer bounding box of the edges.
func (r *Rasteriser) pixelRange() (x0, x1, y0, y1 int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	x0 = max(int(math.Floor(r.box.xMin)), int(r.Clip.LLx))
	x1 = min(int(math.Floor(r.box.xMax))+1, int(r.Clip.URx))
	y0 = max(int(math.Floor(r.box.yMin)), int(r.Clip.LLy))
	y1 = min(int(math.Floor(r.box.yMax))+1, int(r.Clip.URy))
	return x0, x1, y0, y1, x0 < x1 && y0 < y1
}

// scan converts the collected edges into coverage.
func (r *Rasteriser) scan(rule fillRule, emit EmitFunc) {
	x0, x1, y0, y1, ok := r.pixelRange()
	if !ok {
		return
	}
	if (x1-x0)*(y1-y0) < r.smallArea {
		r.scanBuffered(x0, x1, y0, y1, rule, emit)
	} else {
		r.scanActive(x0, x1, y0, y1, rule, emit)
	}
}

// scanBuffered accumulates all edges into one buffer covering the whole
// bounding box, then integrates the rows.
func (r *Rasteriser) scanBuffered(x0, x1, y0, y1 int, rule fillRule, emit EmitFunc) {
	w, h := x1-x0, y1-y0
	r.cover = resize(r.cover, w*h)
	r.area = resize(r.area, w*h)
	r.rowUsed = resize(r.rowUsed, h)

	for i := range r.edges {
		e := &r.edges[i]
		first := max(int(math.Floor(e.top())), y0)
		last := min(int(math.Floor(e.bottom())), y1-1)
		for y := first; y <= last; y++ {
			row := (y - y0) * w
			accumulate(e, y, r.cover[row:row+w], r.area[row:row+w], x0, x1)
			r.rowUsed[y-y0] = true
		}
	}

	for j := range h {
		if !r.rowUsed[j] {
			continue
		}
		row := j * w
		r.emitRow(y0+j, x0, r.cover[row:row+w], r.area[row:row+w], rule, emit)
	}
}

// scanActive processes one row at a time, keeping a list of the edges which
// intersect the current row.
func (r *Rasteriser) scanActive(x0, x1, y0, y1 int, rule fillRule, emit EmitFunc) {
	w := x1 - x0
	r.cover = resize(r.cover, w)
	r.area = resize(r.area, w)

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for next < len(r.edges) && r.edges[next].bottom() <= float64(y0) {
		next++
	}
	for y := y0; y < y1; y++ {
		rowTop, rowBottom := float64(y), float64(y+1)
		for next < len(r.edges) && r.edges[next].top() < rowBottom {
			r.active = append(r.active, next)
			next++
		}

		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= rowTop {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if !touched {
				clear(r.cover)
				clear(r.area)
				touched = true
			}
			accumulate(e, y, r.cover, r.area, x0, x1)
			i++
		}
		if touched {
			r.emitRow(y, x0, r.cover, r.area, rule, emit)
		}
		if len(r.active) == 0 && next == len(r.edges) {
			break
		}
	}
}

// emitRow integrates one row and passes the non-zero part on.
func (r *Rasteriser) emitRow(y, x0 int, cover, area []float32, rule fillRule, emit EmitFunc) {
	switch rule {
	case nonZero:
		integrateNonZero(cover, area)
	case evenOdd:
		integrateEvenOdd(cover, area)
	}
	if span, offs := trimZeros(cover); span != nil {
		emit(y, x0+offs, span)
	}
}

// accumulate adds the contribution of edge e in pixel row y to the row
// buffers, which hold pixels x0, ..., x1-1.
func accumulate(e *edge, y int, cover, area []float32, x0, x1 int) {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return
	}
	dir := 1.0
	if e.y1 < e.y0 {
		dir = -1
	}

	xTop := e.x0 + e.slope*(yTop-e.y0)
	xBot := e.x0 + e.slope*(yBot-e.y0)
	colTop := int(math.Floor(xTop))
	colBot := int(math.Floor(xBot))
	if colTop == colBot {
		addPiece(cover, area, x0, x1, colTop, dir*(yBot-yTop), (xTop+xBot)/2)
		return
	}

	// Split the edge where it crosses vertical pixel boundaries, walking
	// from yTop to yBot.
	step := 1
	if colBot < colTop {
		step = -1
	}
	ya, xa := yTop, xTop
	for col := colTop; col != colBot; col += step {
		bx := float64(col + max(step, 0)) // boundary on the far side of col
		yb := yTop + (bx-xTop)/(xBot-xTop)*(yBot-yTop)
		yb = min(max(yb, ya), yBot)
		addPiece(cover, area, x0, x1, col, dir*(yb-ya), (xa+bx)/2)
		ya, xa = yb, bx
	}
	addPiece(cover, area, x0, x1, colBot, dir*(yBot-ya), (xa+xBot)/2)
}

// addPiece records an edge piece of signed height h at average horizontal
// position xMid, inside pixel column col.
func addPiece(cover, area []float32, x0, x1, col int, h, xMid float64) {
	switch {
	case col >= x1 || h == 0:
		return
	case col < x0:
		// left of the box: the whole first pixel is to the right
		cover[0] += float32(h)
		area[0] += float32(h)
	default:
		frac := min(max(xMid-float64(col), 0), 1)
		cover[col-x0] += float32(h)
		area[col-x0] += float32(h * (1 - frac))
	}
}

// integrateNonZero turns accumulated cover and area into coverage under
// the nonzero rule.  The result overwrites cover.
func integrateNonZero(cover, area []float32) {
	var sum float32
	for i, c := range cover {
		w := sum + area[i]
		sum += c
		if w < 0 {
			w = -w
		}
		cover[i] = min(w, 1)
	}
}

// integrateEvenOdd turns accumulated cover and area into coverage under
// the even-odd rule.  The result overwrites cover.
func integrateEvenOdd(cover, area []float32) {
	var sum float32
	for i, c := range cover {
		w := sum + area[i]
		sum += c
		if w < 0 {
			w = -w
		}
		// triangle wave with period 2: 0 at even, 1 at odd windings
		m := w - 2*float32(int(w/2))
		if m > 1 {
			m = 2 - m
		}
		cover[i] = m
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, and the offset of its first element.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// resize returns a zeroed slice of length n, reusing the storage of buf.
func resize[T any](buf []T, n int) []T {
	buf = slices.Grow(buf[:0], n)[:n]
	clear(buf)
	return buf
}
