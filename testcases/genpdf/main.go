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

// Command genpdf draws the expected walls of every sketch test case as a
// PDF and a PNG file, for visual inspection of the test data.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/mapworld/preview"
	"seehuhn.de/go/mapworld/testcases"
)

const refDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := preview.PDF(pdfPath, tc.Want, tc.Width(), tc.Height()); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writePNG(tc, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writePNG(tc testcases.TestCase, pngPath string) error {
	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := preview.PNG(f, tc.Want, tc.Width(), tc.Height()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
