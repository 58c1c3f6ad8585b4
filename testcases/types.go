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

// Package testcases defines synthetic thermometer templates.
//
// Each template is a tube with a rounded top, standing on a round bulb.  The
// outline is described by an outer contour and an inner contour of opposite
// orientation, so that a non-zero fill leaves a ring of the given wall
// thickness.
package testcases

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	pledge "github.com/cheeem/RadioKPledgeImageGeneration"
)

// TestCase defines a single thermometer template.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Shape  Shape         // the thermometer geometry
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
}

// Shape gives the dimensions of a thermometer in user space.
// The tube is centred on X and extends from Top down into the bulb.
type Shape struct {
	X, Top   float64 // centre line and top of the tube
	Tube     float64 // outer width of the tube
	BulbY    float64 // centre of the bulb
	BulbR    float64 // outer radius of the bulb, must exceed Tube/2
	Wall     float64 // thickness of the outline
	Segments int     // line segments per half circle, 0 means 32
}

// Path returns the outline of the thermometer as a ring.
func (s Shape) Path() *path.Data {
	p := &path.Data{}
	s.contour(p, 0, false)
	s.contour(p, s.Wall, true)
	return p
}

// contour appends the thermometer boundary, shrunk by inset, to p.
func (s Shape) contour(p *path.Data, inset float64, reverse bool) {
	n := s.Segments
	if n <= 0 {
		n = 32
	}

	a := s.Tube/2 - inset    // tube half width
	r := s.BulbR - inset     // bulb radius
	capY := s.Top + s.Tube/2 // centre of the rounded top
	d := math.Sqrt(r*r - a*a)

	var pts []vec.Vec2
	pts = append(pts, vec.Vec2{X: s.X - a, Y: capY})

	// down the left side and around the bulb
	start := math.Atan2(-d, -a)
	end := math.Atan2(-d, a) - 2*math.Pi
	steps := int(math.Ceil(float64(n) * (start - end) / math.Pi))
	for i := range steps + 1 {
		phi := start + (end-start)*float64(i)/float64(steps)
		pts = append(pts, vec.Vec2{X: s.X + r*math.Cos(phi), Y: s.BulbY + r*math.Sin(phi)})
	}

	// up the right side and over the top
	for i := range n + 1 {
		phi := -math.Pi * float64(i) / float64(n)
		pts = append(pts, vec.Vec2{X: s.X + a*math.Cos(phi), Y: capY + a*math.Sin(phi)})
	}

	if reverse {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}

	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.Close()
}

// Template renders the outline of tc in the default edge colour onto a
// transparent canvas.
func Template(tc TestCase) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, tc.Width, tc.Height))

	o := pledge.NewOutline(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
	if tc.CTM != (matrix.Matrix{}) {
		o.CTM = tc.CTM
	}
	o.Fill(img, tc.Shape.Path())
	return img
}
