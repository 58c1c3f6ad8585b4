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
	"image"
	"image/color"
	"math/bits"
)

// ErrZeroGoal is returned by [Progress.Validate] when the goal is zero.
var ErrZeroGoal = errors.New("donation goal must be positive")

// Progress describes how far a fundraiser has come.
// Current may exceed Goal, which counts as complete.
type Progress struct {
	Goal    uint64
	Current uint64
}

// Validate checks that p can be passed to [Filler.Fill].
func (p Progress) Validate() error {
	if p.Goal == 0 {
		return ErrZeroGoal
	}
	return nil
}

// Complete reports whether the goal has been reached.
func (p Progress) Complete() bool {
	return p.Current >= p.Goal
}

// EmptyHeight returns how many of the height interior rows, counted from the
// top, remain unfilled at progress p.  The result is truncated towards zero.
// If the goal has been reached, the result is 0 and clamped is true.
//
// The goal must be positive.
func EmptyHeight(height int, p Progress) (empty int, clamped bool) {
	if p.Complete() {
		return 0, true
	}
	if height <= 0 {
		return 0, false
	}
	// 128-bit product; hi < Goal since height*(Goal-Current) < height*Goal.
	hi, lo := bits.Mul64(uint64(height), p.Goal-p.Current)
	q, _ := bits.Div64(hi, lo, p.Goal)
	return int(q), false
}

// Result summarises a call to [Filler.Fill].
type Result struct {
	// Vertical is the interior found on the centre column, in image
	// coordinates relative to Bounds().Min.Y.
	Vertical Span

	// EmptyHeight is the number of interior rows left unfilled.
	EmptyHeight int

	// Clamped is set if the current amount reached or exceeded the goal.
	Clamped bool

	// Rows is the number of scanned rows which had an interior.
	Rows int

	// Painted is the number of pixels changed to the fill colour.
	Painted int
}

// Filler paints the interior of a thermometer template.
// The zero value is not useful; use [NewFiller].
type Filler struct {
	// EdgeColor is the exact colour of the thermometer outline.
	EdgeColor color.NRGBA

	// FillColor is used for the filled part of the interior.
	FillColor color.NRGBA
}

// NewFiller returns a Filler which uses the default colours.
func NewFiller() *Filler {
	return &Filler{
		EdgeColor: DefaultEdgeColor,
		FillColor: DefaultFillColor,
	}
}

// Fill paints the lower part of the thermometer in img, in place.
//
// The vertical extent of the interior is taken from the centre column of the
// image.  The top EmptyHeight rows of the interior are left alone; for every
// other row, the horizontal extent of the interior is located and all fully
// transparent pixels in it are set to f.FillColor.  Rows without a detectable
// interior are skipped.  Running Fill again with the same progress changes
// nothing.
//
// p.Goal must be positive.
func (f *Filler) Fill(img *image.NRGBA, p Progress) Result {
	var res Result

	b := img.Bounds()
	if b.Empty() {
		return res
	}

	res.Vertical = FindBounds(Column(img, b.Min.X+b.Dx()/2), f.EdgeColor)
	res.EmptyHeight, res.Clamped = EmptyHeight(res.Vertical.Len(), p)

	fill := [4]uint8{f.FillColor.R, f.FillColor.G, f.FillColor.B, f.FillColor.A}
	for y := res.Vertical.Start + res.EmptyHeight; y < res.Vertical.End; y++ {
		row := b.Min.Y + y
		h := FindBounds(Row(img, row), f.EdgeColor)
		if !h.Found() {
			continue
		}
		res.Rows++

		end := img.PixOffset(b.Min.X+h.End, row)
		for i := img.PixOffset(b.Min.X+h.Start, row); i < end; i += 4 {
			if img.Pix[i+3] != 0 {
				continue
			}
			copy(img.Pix[i:i+4], fill[:])
			res.Painted++
		}
	}

	return res
}
