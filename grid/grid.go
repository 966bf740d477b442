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

// Package grid loads map sketches as grayscale pixel grids.
//
// Images can be given in any format registered with the image package.
// Importing grid registers PNG, JPEG and GIF from the standard library,
// BMP, TIFF and WebP from golang.org/x/image, and the netpbm formats
// (PBM, PGM, PPM) which are commonly used for ROS occupancy maps.
package grid

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jbuchbinder/gopnm"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned by [Save] for file name extensions
// which have no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// JPEGQuality is used when processed images are saved as JPEG.
const JPEGQuality = 95

// Load reads and decodes the named image file and converts it to
// grayscale.
func Load(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map image: %w", err)
	}
	defer f.Close()

	g, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Decode decodes an image from r and converts it to grayscale.
// The string return value is the format name, as reported by
// [image.Decode].
func Decode(r io.Reader) (*image.Gray, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode map image: %w", err)
	}
	return ToGray(img), format, nil
}

// ToGray converts img to an 8-bit grayscale image with its top-left
// corner at the origin. Gray images which already start at the origin
// are returned unchanged.
func ToGray(img image.Image) *image.Gray {
	b := img.Bounds()
	if g, ok := img.(*image.Gray); ok && b.Min == (image.Point{}) {
		return g
	}
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Bounds(), img, b.Min, draw.Src)
	return g
}

// Resize scales img to width×height pixels using nearest-neighbour
// sampling, so that no new grey levels are introduced. If width or height
// is not positive, the image is only converted to grayscale.
func Resize(img image.Image, width, height int) *image.Gray {
	if width <= 0 || height <= 0 {
		return ToGray(img)
	}
	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Invert returns a copy of g with all intensities reversed.
func Invert(g *image.Gray) *image.Gray {
	b := g.Bounds()
	res := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := g.Pix[g.PixOffset(b.Min.X, y):]
		dst := res.Pix[res.PixOffset(b.Min.X, y):]
		for x := range b.Dx() {
			dst[x] = 255 - src[x]
		}
	}
	return res
}

// CanSave reports whether [Save] supports the given file name extension.
// The extension may be given with or without the leading dot.
func CanSave(ext string) bool {
	_, ok := encoders[normExt(ext)]
	return ok
}

// Save writes img to the named file. The format is chosen by the file
// name extension.
func Save(path string, img image.Image) error {
	enc, ok := encoders[normExt(filepath.Ext(path))]
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	err = enc(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

type encodeFunc func(w io.Writer, img image.Image) error

var encoders = map[string]encodeFunc{
	"png":  png.Encode,
	"jpg":  encodeJPEG,
	"jpeg": encodeJPEG,
	"gif":  encodeGIF,
	"bmp":  bmp.Encode,
	"tif":  encodeTIFF,
	"tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
}

func encodeGIF(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, nil)
}

func normExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
