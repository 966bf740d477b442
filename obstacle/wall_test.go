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

package obstacle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/mapworld/obstacle"
)

func TestWall(t *testing.T) {
	cases := []struct {
		name string
		in   obstacle.Rect
		want obstacle.Wall
	}{
		{
			name: "single_pixel",
			in:   obstacle.Rect{Left: 4, Right: 4, Top: 7, Bottom: 7},
			want: obstacle.Wall{Center: vec.Vec2{X: 4, Y: 7}, Size: vec.Vec2{X: 2, Y: 2}},
		},
		{
			name: "two_pixels",
			in:   obstacle.Rect{Left: 1, Right: 2, Top: 1, Bottom: 1},
			want: obstacle.Wall{Center: vec.Vec2{X: 1.5, Y: 1}, Size: vec.Vec2{X: 2, Y: 2}},
		},
		{
			name: "long_run",
			in:   obstacle.Rect{Left: 10, Right: 30, Top: 0, Bottom: 0},
			want: obstacle.Wall{Center: vec.Vec2{X: 20, Y: 0}, Size: vec.Vec2{X: 20, Y: 2}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.in.Wall())
		})
	}
}

func TestScaledMinimum(t *testing.T) {
	const cellScale = 0.1
	for left := range 5 {
		for right := left; right < 5; right++ {
			r := obstacle.Rect{Left: left, Right: right, Top: 3, Bottom: 3}
			box := r.Wall().Scaled(cellScale, 1.0)
			assert.GreaterOrEqual(t, box.Size.X, obstacle.MinExtent*cellScale)
			assert.GreaterOrEqual(t, box.Size.Y, obstacle.MinExtent*cellScale)
		}
	}
}

func TestScaledExample(t *testing.T) {
	r := obstacle.Rect{Left: 1, Right: 2, Top: 1, Bottom: 1}
	box := r.Wall().Scaled(0.1, 1.0)

	assert.InDelta(t, 0.15, box.Center.X, 1e-12)
	assert.InDelta(t, 0.1, box.Center.Y, 1e-12)
	assert.Equal(t, vec.Vec2{X: 2.0 * 0.1, Y: 2.0 * 0.1}, box.Size)
	assert.Equal(t, 1.0, box.Height)
}

func TestFootprint(t *testing.T) {
	box := obstacle.Box{
		Center: vec.Vec2{X: 1, Y: 2},
		Size:   vec.Vec2{X: 4, Y: 2},
		Height: 1,
	}
	want := rect.Rect{LLx: -1, LLy: 1, URx: 3, URy: 3}
	assert.Equal(t, want, box.Footprint())
}

func TestExtent(t *testing.T) {
	assert.Equal(t, rect.Rect{}, obstacle.Extent(nil, 0.1))

	rects := []obstacle.Rect{
		{Left: 2, Right: 8, Top: 0, Bottom: 0}, // center (5,0), size 6×2
		{Left: 0, Right: 0, Top: 4, Bottom: 4}, // center (0,4), size 2×2
	}
	want := rect.Rect{LLx: -1, LLy: -1, URx: 8, URy: 5}
	assert.Equal(t, want, obstacle.Extent(rects, 1))

	got := obstacle.Extent(rects, 0.5)
	assert.InDelta(t, -0.5, got.LLx, 1e-12)
	assert.InDelta(t, -0.5, got.LLy, 1e-12)
	assert.InDelta(t, 4, got.URx, 1e-12)
	assert.InDelta(t, 2.5, got.URy, 1e-12)
}
