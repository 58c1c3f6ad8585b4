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
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Errors returned when parsing command-line values.
var (
	ErrBadAmount = errors.New("amount must be a number")
	ErrBadColor  = errors.New("RGBA values must be between 0-255 and in the format r,g,b or r,g,b,a")
)

// ParseAmount parses a non-negative whole amount of money.
// A single leading dollar sign is permitted, as in "$4500".
func ParseAmount(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "$"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrBadAmount)
	}
	return v, nil
}

// ParseColor parses a colour given as "r,g,b" or "r,g,b,a", with every
// component in the range 0-255.  If alpha is omitted, the colour is opaque.
// Components after the fourth are ignored.
func ParseColor(s string) (color.NRGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 3 {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}

	c := [4]uint8{3: 255}
	for i := range min(len(parts), 4) {
		v, err := strconv.ParseUint(parts[i], 10, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
		}
		c[i] = uint8(v)
	}
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}

// FormatColor is the inverse of [ParseColor].
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("%d,%d,%d,%d", c.R, c.G, c.B, c.A)
}
