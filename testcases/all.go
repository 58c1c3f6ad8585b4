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

package testcases

import "seehuhn.de/go/geom/matrix"

// All contains all test cases, grouped by category.
// The category name is used as a prefix in generated file names.
var All = map[string][]TestCase{
	"basic":  basicCases,
	"scaled": scaledCases,
}

var basicCases = []TestCase{
	{
		Name:   "small",
		Width:  40,
		Height: 100,
		Shape:  Shape{X: 20, Top: 6, Tube: 14, BulbY: 80, BulbR: 13, Wall: 3},
	},
	{
		Name:   "tall",
		Width:  64,
		Height: 300,
		Shape:  Shape{X: 32, Top: 10, Tube: 24, BulbY: 260, BulbR: 26, Wall: 4},
	},
	{
		Name:   "thick_wall",
		Width:  80,
		Height: 200,
		Shape:  Shape{X: 40, Top: 8, Tube: 30, BulbY: 160, BulbR: 30, Wall: 8},
	},
	{
		Name:   "coarse",
		Width:  50,
		Height: 120,
		Shape:  Shape{X: 25, Top: 5, Tube: 18, BulbY: 95, BulbR: 16, Wall: 3, Segments: 6},
	},
}

var scaledCases = []TestCase{
	{
		Name:   "double",
		Width:  80,
		Height: 200,
		Shape:  Shape{X: 20, Top: 3, Tube: 8, BulbY: 80, BulbR: 8, Wall: 1.5},
		CTM:    matrix.Scale(2, 2),
	},
	{
		Name:   "shifted",
		Width:  100,
		Height: 160,
		Shape:  Shape{X: 0, Top: 0, Tube: 20, BulbY: 110, BulbR: 18, Wall: 4},
		CTM:    matrix.Identity.Translate(50, 20),
	},
}
