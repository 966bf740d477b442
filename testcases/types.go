// seehuhn.de/go/mapworld - convert map sketches to simulator worlds
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

import (
	"image"

	"seehuhn.de/go/mapworld/obstacle"
)

// TestCase is a small map sketch together with the wall rectangles
// which the extractor must find in it.
type TestCase struct {
	Name   string   // lowercase a-z and _ only
	Sketch []string // one string per image row, see Levels
	Want   []obstacle.Rect
}

// Levels maps sketch characters to pixel intensities.
// The values around the default thresholds (5 and 250) allow to test the
// boundaries of the grey zone.
var Levels = map[byte]uint8{
	'#': 0,
	'b': 5,   // darkest value which is still a wall
	'd': 6,   // lightest grey just above the wall threshold
	'+': 128, // mid grey
	'l': 249, // darkest grey just below the floor threshold
	'w': 250, // darkest value which is floor
	'.': 255,
}

// Width returns the sketch width in pixels.
func (tc TestCase) Width() int {
	if len(tc.Sketch) == 0 {
		return 0
	}
	return len(tc.Sketch[0])
}

// Height returns the sketch height in pixels.
func (tc TestCase) Height() int {
	return len(tc.Sketch)
}

// Image renders the sketch into a grayscale image.
// Unknown characters are drawn as floor.
func (tc TestCase) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, tc.Width(), tc.Height()))
	for y, row := range tc.Sketch {
		line := img.Pix[y*img.Stride:]
		for x := range len(row) {
			v, ok := Levels[row[x]]
			if !ok {
				v = 255
			}
			line[x] = v
		}
	}
	return img
}

// rects is a helper to write expected results as [left, right, y] triples.
func rects(spans ...[3]int) []obstacle.Rect {
	res := make([]obstacle.Rect, len(spans))
	for i, s := range spans {
		res[i] = obstacle.Rect{Left: s[0], Right: s[1], Top: s[2], Bottom: s[2]}
	}
	return res
}
