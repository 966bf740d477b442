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

// Package mapworld converts map sketches into Gazebo scene files.
//
// A sketch is a grayscale image in which dark pixels mark walls.  The
// image is resampled to a square grid, every horizontal run of wall pixels
// becomes one rectangle, and the rectangles are written as box-shaped
// links of a static SDF model.
//
// The building blocks live in sub-packages: [obstacle] finds the
// rectangles, [sdf] writes the scene, [grid] loads and resamples images,
// [preview] draws the rectangles back into an image, and [config] holds
// the parameters.  [Convert] runs the whole pipeline.
package mapworld

//go:generate go run ./testcases/export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/mapworld/config"
	"seehuhn.de/go/mapworld/grid"
	"seehuhn.de/go/mapworld/obstacle"
	"seehuhn.de/go/mapworld/preview"
	"seehuhn.de/go/mapworld/sdf"
)

// Options describes one conversion.
type Options struct {
	// Input is the path of the sketch image.
	Input string

	// Output is the path of the scene file.  If empty, the input path is
	// used with the extension of the variant.
	Output string

	Config  config.Config
	Variant sdf.Variant

	// Logger receives progress messages.  If nil, nothing is logged.
	Logger *zap.Logger

	// Preview, if set, is the path of a PNG or PDF file which shows the
	// extracted rectangles.
	Preview string
}

// Result summarises a conversion.
type Result struct {
	Rects []obstacle.Rect

	// Output is the path of the scene file.
	Output string

	// Processed is the path of the resampled grid image, or the empty
	// string if it was not kept.
	Processed string

	// Preview is the path of the preview file, if one was written.
	Preview string

	// Extent is the ground area covered by the walls, in metres, in the
	// image frame.  See [obstacle.Extent].
	Extent rect.Rect
}

// Convert reads a sketch image, extracts the walls and writes the scene
// file.  If the input cannot be read, no output is written.
func Convert(opts *Options) (*Result, error) {
	cfg := &opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	img, err := grid.Load(opts.Input)
	if err != nil {
		return nil, err
	}
	if cfg.Negate {
		img = grid.Invert(img)
	}
	g := grid.Resize(img, cfg.Size, cfg.Size)
	log.Info("loaded sketch",
		zap.String("input", opts.Input),
		zap.Int("width", g.Bounds().Dx()),
		zap.Int("height", g.Bounds().Dy()))

	base := strings.TrimSuffix(opts.Input, filepath.Ext(opts.Input))
	res := &Result{
		Output: opts.Output,
	}
	if res.Output == "" {
		res.Output = OutputPath(base, opts.Variant)
	}

	if cfg.KeepProcessed {
		res.Processed = ProcessedPath(base, cfg.Ext())
		if err := grid.Save(res.Processed, g); err != nil {
			return nil, err
		}
		log.Debug("saved processed grid", zap.String("path", res.Processed))
	}

	ext := cfg.Extractor()
	ext.Logger = log
	res.Rects = ext.Extract(g)
	res.Extent = obstacle.Extent(res.Rects, cfg.CellScale)
	log.Info("extracted walls",
		zap.Int("count", len(res.Rects)),
		zap.Float64("extent_x", res.Extent.URx-res.Extent.LLx),
		zap.Float64("extent_y", res.Extent.URy-res.Extent.LLy))

	if err := cfg.Encoder(opts.Variant).WriteFile(res.Output, res.Rects); err != nil {
		return nil, err
	}
	log.Info("wrote scene",
		zap.String("path", res.Output),
		zap.Stringer("variant", opts.Variant))

	if opts.Preview != "" {
		if err := writePreview(opts.Preview, res.Rects, g.Bounds().Dx(), g.Bounds().Dy()); err != nil {
			return nil, err
		}
		res.Preview = opts.Preview
		log.Info("wrote preview", zap.String("path", res.Preview))
	}

	return res, nil
}

// OutputPath returns the scene file name for the given input name,
// without extension.
func OutputPath(name string, v sdf.Variant) string {
	return name + v.Ext()
}

// ProcessedPath returns the file name used for the resampled grid.  If
// images cannot be written in the requested format, PNG is used.
func ProcessedPath(name, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if !grid.CanSave(ext) {
		ext = "png"
	}
	return name + "_proc." + ext
}

func writePreview(path string, rects []obstacle.Rect, width, height int) (err error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		if err := preview.PDF(path, rects, width, height); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
		if err != nil {
			os.Remove(path)
		}
	}()
	return preview.PNG(f, rects, width, height)
}
