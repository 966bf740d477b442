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

package obstacle

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// MinExtent is the smallest wall length and width, in pixels.
// Runs of one or two pixels would otherwise give flat boxes.
const MinExtent = 2.0

// Wall is a wall segment in pixel space.
type Wall struct {
	Center vec.Vec2 // midpoint of the run
	Size   vec.Vec2 // length along x, width along y
}

// Wall returns the pixel-space wall for r.
//
// The length is Right-Left, not the pixel count of the run, clamped
// to [MinExtent].
func (r Rect) Wall() Wall {
	length := float64(r.Right - r.Left)
	if length < MinExtent {
		length = MinExtent
	}
	width := float64(r.Bottom - r.Top)
	if width < MinExtent {
		width = MinExtent
	}
	return Wall{
		Center: vec.Vec2{
			X: float64(r.Left+r.Right) / 2,
			Y: float64(r.Top+r.Bottom) / 2,
		},
		Size: vec.Vec2{X: length, Y: width},
	}
}

// Box is a wall in world units.
type Box struct {
	Center vec.Vec2
	Size   vec.Vec2
	Height float64
}

// Scaled converts w to world units. Horizontal coordinates are multiplied
// by cellScale; height is used as is.
func (w Wall) Scaled(cellScale, height float64) Box {
	return Box{
		Center: w.Center.Mul(cellScale),
		Size:   w.Size.Mul(cellScale),
		Height: height,
	}
}

// Footprint returns the area covered by b on the ground plane.
func (b Box) Footprint() rect.Rect {
	half := b.Size.Mul(0.5)
	return rect.Rect{
		LLx: b.Center.X - half.X,
		LLy: b.Center.Y - half.Y,
		URx: b.Center.X + half.X,
		URy: b.Center.Y + half.Y,
	}
}

// Extent returns the smallest rectangle which contains the footprints of
// all walls of rects, in world units.  Coordinates are in the image frame
// (y pointing down, x not mirrored).  The result is the zero rectangle if
// rects is empty.
func Extent(rects []Rect, cellScale float64) rect.Rect {
	var res rect.Rect
	for i, r := range rects {
		fp := r.Wall().Scaled(cellScale, 0).Footprint()
		if i == 0 {
			res = fp
			continue
		}
		res.LLx = min(res.LLx, fp.LLx)
		res.LLy = min(res.LLy, fp.LLy)
		res.URx = max(res.URx, fp.URx)
		res.URy = max(res.URy, fp.URy)
	}
	return res
}
