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
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Errors returned when reading templates.
var (
	ErrNotPNG  = errors.New("initial image must be a PNG")
	ErrNotRGBA = errors.New("image is not 8-bit RGBA")
)

// Decode reads a PNG template from r.
// Only 8-bit RGBA images are accepted.  Palette, grey, grey with alpha,
// RGB and 16-bit images yield ErrNotRGBA, even where image/png would
// convert them to [image.NRGBA].
func Decode(r io.Reader) (*image.NRGBA, error) {
	br := bufio.NewReader(r)

	// signature (8), chunk length (4), "IHDR" (4), width (4), height (4),
	// bit depth (1), colour type (1)
	hdr, err := br.Peek(26)
	if err == nil && string(hdr[12:16]) == "IHDR" &&
		(hdr[24] != 8 || hdr[25] != pngColorRGBA) {
		return nil, ErrNotRGBA
	}

	img, err := png.Decode(br)
	if err != nil {
		return nil, err
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		return nil, ErrNotRGBA
	}
	return nrgba, nil
}

// pngColorRGBA is the IHDR colour type of truecolour images with alpha.
const pngColorRGBA = 6

// Load reads the PNG template stored in the named file.
func Load(name string) (*image.NRGBA, error) {
	if !strings.EqualFold(filepath.Ext(name), ".png") {
		return nil, fmt.Errorf("%s: %w", name, ErrNotPNG)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s could not be decoded: %w", name, err)
	}
	return img, nil
}

// Encode writes img to w in PNG format.
func Encode(w io.Writer, img *image.NRGBA) error {
	return png.Encode(w, img)
}

// Save writes img to the named file in PNG format.
// The file name is adjusted using [OutputPath] first; the name actually
// used is returned.
func Save(name string, img *image.NRGBA) (string, error) {
	name = OutputPath(name)

	f, err := os.Create(name)
	if err != nil {
		return name, err
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return name, fmt.Errorf("failed to save %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return name, fmt.Errorf("failed to save %s: %w", name, err)
	}
	return name, nil
}

// OutputPath returns name with its extension replaced by ".png".
// A name without extension gets ".png" appended.
func OutputPath(name string) string {
	ext := filepath.Ext(name)
	if ext == ".png" {
		return name
	}
	return strings.TrimSuffix(name, ext) + ".png"
}
