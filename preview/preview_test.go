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

package preview

import (
	"bytes"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/mapworld/obstacle"
	"seehuhn.de/go/mapworld/testcases"
)

// greyFree reports whether every pixel is either wall or floor.
func greyFree(img *image.Gray, e *obstacle.Extractor) bool {
	for _, v := range img.Pix {
		if v > e.Black && v < e.White {
			return false
		}
	}
	return true
}

// TestRoundTrip checks that the preview of the extracted rectangles
// reproduces the wall pixels of every sketch without grey pixels.
func TestRoundTrip(t *testing.T) {
	e := obstacle.NewExtractor()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			img := tc.Image()
			if !greyFree(img, e) {
				continue
			}
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				got := Image(e.Extract(img), tc.Width(), tc.Height())
				require.Equal(t, img.Bounds(), got.Bounds())

				mismatches := 0
				for y := range tc.Height() {
					for x := range tc.Width() {
						wantWall := img.GrayAt(x, y).Y <= e.Black
						gotWall := got.GrayAt(x, y).Y < 128
						if wantWall != gotWall {
							if mismatches < 10 {
								t.Errorf("pixel (%d,%d): want wall=%t, got value %d",
									x, y, wantWall, got.GrayAt(x, y).Y)
							}
							mismatches++
						}
					}
				}
			})
		}
	}
}

func TestImageExact(t *testing.T) {
	rects := []obstacle.Rect{
		{Left: 1, Right: 2, Top: 0, Bottom: 0},
		{Left: 0, Right: 0, Top: 2, Bottom: 2},
	}
	got := Image(rects, 4, 3)
	want := []uint8{
		255, 0, 0, 255,
		255, 255, 255, 255,
		0, 255, 255, 255,
	}
	assert.Equal(t, want, got.Pix)
}

func TestImageEmpty(t *testing.T) {
	got := Image(nil, 3, 2)
	assert.Equal(t, image.Rect(0, 0, 3, 2), got.Bounds())
	for _, v := range got.Pix {
		assert.Equal(t, uint8(255), v)
	}

	got = Image([]obstacle.Rect{{Left: 0, Right: 1}}, 0, 0)
	assert.True(t, got.Bounds().Empty())
}

func TestPNG(t *testing.T) {
	rects := []obstacle.Rect{{Left: 0, Right: 3, Top: 1, Bottom: 1}}
	buf := &bytes.Buffer{}
	require.NoError(t, PNG(buf, rects, 4, 2))

	img, err := png.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
	r, _, _, _ := img.At(2, 1).RGBA()
	assert.Equal(t, uint32(0), r)
	r, _, _, _ = img.At(2, 0).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
}

func TestPDF(t *testing.T) {
	tc := testcases.All["thick"][0]
	rects := obstacle.NewExtractor().Extract(tc.Image())

	fname := filepath.Join(t.TempDir(), "preview.pdf")
	require.NoError(t, PDF(fname, rects, tc.Width(), tc.Height()))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestPDFError(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "missing", "preview.pdf")
	assert.Error(t, PDF(fname, nil, 10, 10))
}
