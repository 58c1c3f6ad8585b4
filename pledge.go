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

// Package pledge fills the interior of a thermometer drawn in a template image
// in proportion to the progress towards a donation goal.
//
// The template is an 8-bit RGBA image in which the thermometer is outlined in
// a single edge colour and the empty interior is fully transparent.  The
// interior is located by scanning rows and columns for runs of the edge
// colour, see [FindBounds].  Only transparent interior pixels are ever
// painted, so outline and decoration pixels survive unchanged.
package pledge

//go:generate go run ./testcases/export

import "image/color"

// Default colours and file names.
var (
	DefaultFillColor = color.NRGBA{R: 173, G: 216, B: 230, A: 255}
	DefaultEdgeColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

const (
	DefaultInput  = "Thermometer.png"
	DefaultOutput = "RadioKPledgeThermometer.png"
)
