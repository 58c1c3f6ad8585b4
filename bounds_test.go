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
	"image/color"
	"iter"
	"slices"
	"testing"
)

var (
	black       = color.NRGBA{A: 255}
	transparent = color.NRGBA{}
	red         = color.NRGBA{R: 255, A: 255}
	grey        = color.NRGBA{R: 50, G: 50, B: 50, A: 255}
)

// scan turns a slice of pixels into a scan line starting at index 0.
func scan(pix ...color.NRGBA) iter.Seq2[int, color.NRGBA] {
	return slices.All(pix)
}

func TestFindBounds(t *testing.T) {
	E, A, B, C := black, red, grey, transparent

	cases := []struct {
		name string
		pix  []color.NRGBA
		want Span
	}{
		{"empty", nil, Span{}},
		{"no_edge", []color.NRGBA{C, A, B, C, A}, Span{}},
		{"only_edge", []color.NRGBA{E, E, E}, Span{}},
		{"unterminated_interior", []color.NRGBA{C, E, E, A, B, C}, Span{Start: 3}},
		{"unterminated_run", []color.NRGBA{E, E, A, B, E, E}, Span{Start: 2}},
		{"closing_run", []color.NRGBA{E, E, A, B, E, E, C}, Span{Start: 2, End: 3}},
		{"margins", []color.NRGBA{C, C, E, A, A, A, E, C, C}, Span{Start: 3, End: 5}},
		{"thin_interior", []color.NRGBA{E, C, E, C}, Span{Start: 1, End: 1}},
		{"isolated_edge_pixel", []color.NRGBA{E, C, C, E, C, C, C, E, E, C}, Span{Start: 1, End: 6}},
		{"edge_touches_border", []color.NRGBA{C, E, C, C, E, C, C, E}, Span{Start: 2, End: 3}},
		{"two_outlines", []color.NRGBA{E, C, C, E, C, E, C, C, E, C}, Span{Start: 1, End: 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FindBounds(scan(tc.pix...), black)
			if got != tc.want {
				t.Errorf("FindBounds() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestFindBoundsEdgeColor(t *testing.T) {
	pix := []color.NRGBA{red, transparent, transparent, red, transparent}

	if got := FindBounds(scan(pix...), black); got.Found() {
		t.Errorf("black edge: got %+v, want not found", got)
	}
	want := Span{Start: 1, End: 2}
	if got := FindBounds(scan(pix...), red); got != want {
		t.Errorf("red edge: got %+v, want %+v", got, want)
	}

	// Equality is exact, a partially transparent black does not match.
	pix[0] = color.NRGBA{A: 254}
	if got := FindBounds(scan(pix[:1]...), black); got != (Span{}) {
		t.Errorf("near-black: got %+v", got)
	}
}

func TestFindBoundsOffsetIndices(t *testing.T) {
	seq := func(yield func(int, color.NRGBA) bool) {
		pix := []color.NRGBA{black, transparent, transparent, transparent, black, transparent}
		for i, p := range pix {
			if !yield(100+i, p) {
				return
			}
		}
	}
	want := Span{Start: 101, End: 103}
	if got := FindBounds(seq, black); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSpan(t *testing.T) {
	cases := []struct {
		s     Span
		found bool
		n     int
	}{
		{Span{}, false, 0},
		{Span{Start: 4}, false, 0},
		{Span{Start: 2, End: 2}, true, 0},
		{Span{Start: 3, End: 13}, true, 10},
	}
	for _, tc := range cases {
		if got := tc.s.Found(); got != tc.found {
			t.Errorf("%+v.Found() = %t, want %t", tc.s, got, tc.found)
		}
		if got := tc.s.Len(); got != tc.n {
			t.Errorf("%+v.Len() = %d, want %d", tc.s, got, tc.n)
		}
	}
}
