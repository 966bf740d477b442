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

// Package obstacle finds wall segments in grayscale map sketches.
//
// The scan works one image row at a time. Every maximal horizontal run of
// dark pixels becomes one [Rect], so a wall which is n pixels thick turns
// into n separate one-row rectangles. Rows are never merged.
package obstacle

import (
	"errors"
	"image"

	"go.uber.org/zap"
)

// Default thresholds for hand-drawn sketches.
const (
	DefaultBlack = 5
	DefaultWhite = 250
)

// ErrThresholds is returned by [Extractor.Validate] if the black threshold
// is not below the white threshold.
var ErrThresholds = errors.New("black threshold must be below white threshold")

// Rect is a run of wall pixels, in pixel coordinates relative to the
// top-left corner of the image. Left and Right are inclusive column
// indices. Top always equals Bottom.
type Rect struct {
	Left, Right int
	Top, Bottom int
}

// Extractor converts the dark pixels of a grayscale image into wall
// rectangles. An Extractor holds no scan state and can be shared.
type Extractor struct {
	// Black is the highest intensity which starts a wall.
	Black uint8

	// White is the lowest intensity which ends a wall.
	// Pixels strictly between Black and White neither start nor end
	// a run; the scan keeps whatever state it is in.
	White uint8

	// Logger receives a debug message for every grey pixel.
	// Nil disables logging.
	Logger *zap.Logger
}

// NewExtractor returns an Extractor with the default thresholds.
func NewExtractor() *Extractor {
	return &Extractor{
		Black: DefaultBlack,
		White: DefaultWhite,
	}
}

// Validate checks that the thresholds are usable.
func (e *Extractor) Validate() error {
	if e.Black >= e.White {
		return ErrThresholds
	}
	return nil
}

// Scan walks g row by row, from left to right, and calls emit once for
// every wall run it finds. Calls happen in scan order.
func (e *Extractor) Scan(g *image.Gray, emit func(r Rect)) {
	b := g.Bounds()
	width, height := b.Dx(), b.Dy()
	for y := range height {
		row := g.Pix[g.PixOffset(b.Min.X, b.Min.Y+y):]

		inWall := false
		var cur Rect
		for x := range width {
			v := row[x]
			if v > e.Black && v < e.White {
				e.logGrey(x, y, v)
			}

			switch {
			case !inWall && v <= e.Black:
				inWall = true
				cur = Rect{Left: x, Right: x, Top: y, Bottom: y}
			case inWall && v >= e.White:
				inWall = false
				cur.Right = x - 1
				emit(cur)
			case inWall && x == width-1:
				inWall = false
				cur.Right = x
				emit(cur)
			}
		}

		// A run which starts in the last column is still open here.
		if inWall {
			emit(cur)
		}
	}
}

// Extract returns all wall runs of g in scan order.
// The result is empty, but not nil, if g contains no dark pixels.
func (e *Extractor) Extract(g *image.Gray) []Rect {
	rects := []Rect{}
	e.Scan(g, func(r Rect) {
		rects = append(rects, r)
	})
	return rects
}

func (e *Extractor) logGrey(x, y int, v uint8) {
	if e.Logger == nil {
		return
	}
	if ce := e.Logger.Check(zap.DebugLevel, "grey pixel"); ce != nil {
		ce.Write(zap.Int("x", x), zap.Int("y", y), zap.Uint8("value", v))
	}
}
