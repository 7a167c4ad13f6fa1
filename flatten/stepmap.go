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

package flatten

import (
	"errors"
	"fmt"
	"iter"
)

// ErrAlignment is matched by all AlignmentError values.
var ErrAlignment = errors.New("contours are not aligned")

// AlignmentError reports that a contour could not be sampled with the step
// counts recorded for its partner contour.  This happens when the two
// contours of a group do not have the same number of drawable segments.
type AlignmentError struct {
	// Index is the 1-based segment index where the mismatch was detected.
	Index int

	// Want is the number of segments recorded in the step map,
	// Got is the number of segments found in the contour so far.
	Want, Got int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("segment %d: step map has %d segments, contour has %d",
		e.Index, e.Want, e.Got)
}

// Is makes errors.Is(err, ErrAlignment) succeed.
func (e *AlignmentError) Is(target error) bool {
	return target == ErrAlignment
}

// StepMap records how many points were emitted for each line or curve
// segment of a contour.  Segment indices start at 1; MoveTo does not
// occupy an index.
//
// A StepMap is immutable once returned by Flatten.  It is the contract
// which lets a second contour reproduce the vertex layout of the first.
type StepMap struct {
	steps []int // steps[i] belongs to segment i+1
}

// NewStepMap returns a map with the given per-segment step counts, in
// segment order.
func NewStepMap(steps ...int) StepMap {
	return StepMap{steps: append([]int(nil), steps...)}
}

// Len returns the number of segments recorded.
func (m StepMap) Len() int {
	return len(m.steps)
}

// Steps returns the step count of the 1-based segment index.
func (m StepMap) Steps(index int) (int, bool) {
	if index < 1 || index > len(m.steps) {
		return 0, false
	}
	return m.steps[index-1], true
}

// Total returns the sum of all step counts.
func (m StepMap) Total() int {
	total := 0
	for _, n := range m.steps {
		total += n
	}
	return total
}

// All iterates over the segment indices and their step counts.
func (m StepMap) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i, n := range m.steps {
			if !yield(i+1, n) {
				return
			}
		}
	}
}
