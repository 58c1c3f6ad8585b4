// RadioKPledgeImageGeneration - pledge thermometer images
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

package pledge

import (
	"image"
	"image/color"
	"iter"
)

// Span is a half-open range of pixel indices along one axis.
// The zero Span, with End == 0, means that no interior was found.
type Span struct {
	Start int // first interior index
	End   int // exclusive end of the fillable interior
}

// Found reports whether s describes an interior.
func (s Span) Found() bool {
	return s.End != 0
}

// Len returns the number of indices in s.
func (s Span) Len() int {
	return max(0, s.End-s.Start)
}

// scanState is the state of the FindBounds state machine.
type scanState int

const (
	seekingEdge       scanState = iota // no edge pixel seen yet
	seekingStart                       // inside the opening edge run
	inInterior                         // between the edge runs
	inTrailingEdgeRun                  // inside a run which may close the interior
)

// FindBounds locates the interior of an outline along a single scan line.
//
// The pixels of seq must be ordered by increasing index.  The interior starts
// at the first pixel after the opening run of edge-coloured pixels.  An edge
// run seen after that only ends the interior once it is followed by another
// non-edge pixel; isolated edge-coloured pixels inside the interior are
// therefore absorbed into the interior.  A run which is still open at the end
// of seq is ignored.
//
// The returned End is the index preceding the committed closing run, so that
// [Start, End) never includes the pixel adjacent to the outline.  If no
// interior was found, the zero Span is returned.
func FindBounds(seq iter.Seq2[int, color.NRGBA], edge color.NRGBA) Span {
	var span Span
	state := seekingEdge
	run := 0

	for idx, pix := range seq {
		isEdge := pix == edge

		switch state {
		case seekingEdge, seekingStart:
			if isEdge {
				state = seekingStart
			} else if state == seekingStart {
				span.Start = idx
				state = inInterior
			}

		case inInterior:
			if isEdge {
				run = 1
				state = inTrailingEdgeRun
			}

		case inTrailingEdgeRun:
			if isEdge {
				run++
				continue
			}
			// The run was followed by more content: commit it as the end.
			span.End = idx - run - 1
			run = 0
			state = inInterior
		}
	}

	return span
}

// Column returns the pixels of column x of img, from top to bottom.
// Indices are relative to img.Bounds().Min.Y.
func Column(img *image.NRGBA, x int) iter.Seq2[int, color.NRGBA] {
	return func(yield func(int, color.NRGBA) bool) {
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if !yield(y-b.Min.Y, img.NRGBAAt(x, y)) {
				return
			}
		}
	}
}

// Row returns the pixels of row y of img, from left to right.
// Indices are relative to img.Bounds().Min.X.
func Row(img *image.NRGBA, y int) iter.Seq2[int, color.NRGBA] {
	return func(yield func(int, color.NRGBA) bool) {
		b := img.Bounds()
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			s := img.Pix[i : i+4 : i+4]
			if !yield(x-b.Min.X, color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}) {
				return
			}
			i += 4
		}
	}
}
