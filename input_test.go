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
	"errors"
	"image/color"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"10000", 10000, true},
		{"$4500", 4500, true},
		{"0", 0, true},
		{"$0", 0, true},
		{"", 0, false},
		{"$", 0, false},
		{"$$5", 0, false},
		{"-5", 0, false},
		{"12.50", 0, false},
		{"1e3", 0, false},
		{"4500$", 0, false},
		{"+4500", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Errorf("ParseAmount(%q) = %d, %v, want %d", tc.in, got, err, tc.want)
			}
		} else if !errors.Is(err, ErrBadAmount) {
			t.Errorf("ParseAmount(%q): got error %v, want %v", tc.in, err, ErrBadAmount)
		}
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"255,40,105", color.NRGBA{R: 255, G: 40, B: 105, A: 255}, true},
		{"200,0,0,100", color.NRGBA{R: 200, A: 100}, true},
		{"0,0,0,0", color.NRGBA{}, true},
		{"1,2,3,4,5", color.NRGBA{R: 1, G: 2, B: 3, A: 4}, true},
		{"", color.NRGBA{}, false},
		{"1,2", color.NRGBA{}, false},
		{"256,0,0", color.NRGBA{}, false},
		{"1,2,x", color.NRGBA{}, false},
		{"1,2,3,", color.NRGBA{}, false},
		{" 1,2,3", color.NRGBA{}, false},
		{"-1,2,3", color.NRGBA{}, false},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Errorf("ParseColor(%q) = %v, %v, want %v", tc.in, got, err, tc.want)
			}
		} else if !errors.Is(err, ErrBadColor) {
			t.Errorf("ParseColor(%q): got error %v, want %v", tc.in, err, ErrBadColor)
		}
	}
}

func TestFormatColor(t *testing.T) {
	for _, c := range []color.NRGBA{DefaultFillColor, DefaultEdgeColor, {R: 1, G: 2, B: 3}} {
		got, err := ParseColor(FormatColor(c))
		if err != nil {
			t.Fatal(err)
		}
		if got != c {
			t.Errorf("%v: round trip gave %v", c, got)
		}
	}
}
