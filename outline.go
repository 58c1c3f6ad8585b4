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
	"image/draw"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Outline draws filled vector shapes into template images using a single,
// exact colour.  Template outlines must not be anti-aliased, since
// [FindBounds] matches the edge colour exactly; coverage values are therefore
// thresholded instead of blended.
//
// An Outline is not safe for concurrent use.
type Outline struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Color is used for all covered pixels.
	Color color.NRGBA

	// Threshold is the minimum coverage, out of 255, for a pixel to be
	// painted.  Zero means half coverage.
	Threshold uint8

	z    *vector.Rasterizer
	mask *image.Alpha
}

// NewOutline returns an Outline for the given clip rectangle, which draws in
// the default edge colour.
func NewOutline(clip rect.Rect) *Outline {
	return &Outline{
		CTM:   matrix.Identity,
		Clip:  clip,
		Color: DefaultEdgeColor,
	}
}

// Fill paints the interior of p into dst, using the non-zero winding rule.
// A hole is cut by a subpath with opposite orientation.
func (o *Outline) Fill(dst *image.NRGBA, p *path.Data) {
	x0, y0 := int(o.Clip.LLx), int(o.Clip.LLy)
	w, h := int(o.Clip.URx)-x0, int(o.Clip.URy)-y0
	if w <= 0 || h <= 0 {
		return
	}

	if o.z == nil {
		o.z = vector.NewRasterizer(w, h)
	} else {
		o.z.Reset(w, h)
	}
	o.z.DrawOp = draw.Src

	dev := func(v vec.Vec2) (float32, float32) {
		x := o.CTM[0]*v.X + o.CTM[2]*v.Y + o.CTM[4]
		y := o.CTM[1]*v.X + o.CTM[3]*v.Y + o.CTM[5]
		return float32(x - o.Clip.LLx), float32(y - o.Clip.LLy)
	}

	open := false
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				o.z.ClosePath()
			}
			o.z.MoveTo(dev(p.Coords[coordIdx]))
			open = true
			coordIdx++

		case path.CmdLineTo:
			o.z.LineTo(dev(p.Coords[coordIdx]))
			coordIdx++

		case path.CmdQuadTo:
			bx, by := dev(p.Coords[coordIdx])
			cx, cy := dev(p.Coords[coordIdx+1])
			o.z.QuadTo(bx, by, cx, cy)
			coordIdx += 2

		case path.CmdCubeTo:
			bx, by := dev(p.Coords[coordIdx])
			cx, cy := dev(p.Coords[coordIdx+1])
			dx, dy := dev(p.Coords[coordIdx+2])
			o.z.CubeTo(bx, by, cx, cy, dx, dy)
			coordIdx += 3

		case path.CmdClose:
			o.z.ClosePath()
			open = false
		}
	}
	if open {
		o.z.ClosePath()
	}

	if o.mask == nil || o.mask.Rect.Dx() != w || o.mask.Rect.Dy() != h {
		o.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	}
	o.z.Draw(o.mask, o.mask.Bounds(), image.Opaque, image.Point{})

	threshold := o.Threshold
	if threshold == 0 {
		threshold = 128
	}

	r := dst.Bounds()
	for y := range h {
		dy := y + y0
		if dy < r.Min.Y || dy >= r.Max.Y {
			continue
		}
		cov := o.mask.Pix[y*o.mask.Stride : y*o.mask.Stride+w]
		for x, a := range cov {
			dx := x + x0
			if a < threshold || dx < r.Min.X || dx >= r.Max.X {
				continue
			}
			dst.SetNRGBA(dx, dy, o.Color)
		}
	}
}
