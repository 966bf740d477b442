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

// Package preview renders extracted wall rectangles back into images.
//
// A preview is drawn in the pixel coordinates of the source grid: each
// rectangle covers the cells Left..Right of row Top..Bottom.  Walls are
// black on a white background, so that a preview of a clean sketch
// reproduces the sketch.
package preview

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/mapworld/obstacle"
)

// Image rasterises the rectangles onto a new width×height grid.
func Image(rects []obstacle.Rect, width, height int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, max(width, 0), max(height, 0)))
	for i := range dst.Pix {
		dst.Pix[i] = 0xFF
	}
	if width <= 0 || height <= 0 || len(rects) == 0 {
		return dst
	}

	r := vector.NewRasterizer(width, height)
	for _, rc := range rects {
		x0, y0 := float32(rc.Left), float32(rc.Top)
		x1, y1 := float32(rc.Right+1), float32(rc.Bottom+1)
		r.MoveTo(x0, y0)
		r.LineTo(x1, y0)
		r.LineTo(x1, y1)
		r.LineTo(x0, y1)
		r.ClosePath()
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Gray{Y: 0}), image.Point{})
	return dst
}

// PNG writes the preview image in PNG format.
func PNG(w io.Writer, rects []obstacle.Rect, width, height int) error {
	return png.Encode(w, Image(rects, width, height))
}

// PDF writes a single page PDF file showing the rectangles.
// One cell corresponds to one PDF point.
func PDF(path string, rects []obstacle.Rect, width, height int) error {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}

	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(1))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	// PDF origin is bottom-left; grid rows count from the top.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	if len(rects) > 0 {
		page.SetFillColor(pdfcolor.DeviceGray(0))
		for _, rc := range rects {
			page.Rectangle(float64(rc.Left), float64(rc.Top),
				float64(rc.Right-rc.Left+1), float64(rc.Bottom-rc.Top+1))
		}
		page.Fill()
	}

	return page.Close()
}
