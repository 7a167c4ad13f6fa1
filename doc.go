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

// Package scribble generates zigzag "scribble" strokes between two contours
// of a glyph, in the manner of Noordzij's pen drawings.
//
// Both contours are sampled into polylines with point-for-point
// correspondence: contour A is flattened with a target point distance, and
// the step counts used for A are replayed on contour B.  The two polylines
// are optionally jittered with coherent noise and then woven into a single
// open polyline which alternates between the contours.
//
// The building blocks live in sub-packages:
//   - [seehuhn.de/go/scribble/contour]: the contour model
//   - [seehuhn.de/go/scribble/flatten]: contour sampling
//   - [seehuhn.de/go/scribble/noise]: gradient noise and displacement
//   - [seehuhn.de/go/scribble/weave]: interleaving of two polylines
//
// [Generate] runs the whole pipeline for one pair of contours.  Contour
// groups of a whole glyph are managed by [seehuhn.de/go/scribble/glyph].
// The packages [seehuhn.de/go/scribble/preview] and
// [seehuhn.de/go/scribble/export] turn the generated strokes into images,
// layers and PDF files, and [seehuhn.de/go/scribble/config] reads the job
// files used by the scribble command.
//
// The library is silent by default.  Use [SetLogger] to receive debug and
// warning messages.
package scribble
