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

// Package convcmd implements the command line interface shared by the
// img2sdf and img2world commands.
package convcmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"seehuhn.de/go/mapworld"
	"seehuhn.de/go/mapworld/config"
	"seehuhn.de/go/mapworld/obstacle"
	"seehuhn.de/go/mapworld/sdf"
)

// Run parses args, performs the conversion and returns the process exit
// code.  Usage information and log messages go to stderr.
func Run(prog string, v sdf.Variant, args []string, stderr io.Writer) int {
	opts, verbose, err := parse(prog, v, args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 2
	}

	log := NewLogger(stderr, verbose).Named(prog)
	defer log.Sync()
	opts.Logger = log

	res, err := mapworld.Convert(opts)
	if err != nil {
		log.Error("conversion failed", zap.Error(err))
		return 1
	}
	log.Info("done",
		zap.String("output", res.Output),
		zap.Int("walls", len(res.Rects)))
	return 0
}

// NewLogger returns a development style console logger writing to w.
// Debug messages are only shown if verbose is set.
func NewLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core)
}

// parse turns the command line into conversion options.
//
// Settings are applied in order: built-in defaults, the -config file,
// the -map metadata, and finally the flags given on the command line.
func parse(prog string, v sdf.Variant, args []string, stderr io.Writer) (*mapworld.Options, bool, error) {
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] -name <image>\n\n", prog)
		fmt.Fprintf(stderr, "Convert a map sketch into a Gazebo %s file.\n\n", v.Ext())
		fs.PrintDefaults()
	}

	name := fs.String("name", "", "input image `path`, without extension")
	typ := fs.String("type", config.DefaultInputType, "input image file `extension`")
	size := fs.Int("size", config.DefaultSize, "grid size in cells (0 keeps the image size)")
	scale := fs.Float64("scale", sdf.DefaultCellScale, "world size of one grid cell, in metres")
	height := fs.Float64("height", sdf.DefaultWallHeight, "wall height, in metres")
	black := fs.Uint("black", obstacle.DefaultBlack, "largest intensity treated as wall")
	white := fs.Uint("white", obstacle.DefaultWhite, "smallest intensity treated as floor")
	confPath := fs.String("config", "", "YAML configuration `file`")
	mapPath := fs.String("map", "", "ROS map_server YAML `file`")
	keep := fs.Bool("keep-proc", false, "write the resampled grid as <name>_proc.<type>")
	indent := fs.Int("indent", 0, "indent XML output by `n` spaces")
	output := fs.String("o", "", "output `file` (default <name>"+v.Ext()+")")
	prev := fs.String("preview", "", "write a PNG or PDF preview of the walls to `file`")
	verbose := fs.Bool("v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}
	if fs.NArg() > 0 {
		return nil, false, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := config.Default()
	if *confPath != "" {
		var err error
		cfg, err = config.Load(*confPath)
		if err != nil {
			return nil, false, err
		}
	}

	input := ""
	if *mapPath != "" {
		meta, err := config.LoadMapMeta(*mapPath)
		if err != nil {
			return nil, false, err
		}
		meta.Apply(cfg)
		input = meta.ImagePath()
		cfg.InputType = strings.TrimPrefix(filepath.Ext(input), ".")
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "type":
			cfg.InputType = *typ
		case "size":
			cfg.Size = *size
		case "scale":
			cfg.CellScale = *scale
		case "height":
			cfg.WallHeight = *height
		case "black":
			cfg.Black, err = toLevel("black", *black, err)
		case "white":
			cfg.White, err = toLevel("white", *white, err)
		case "keep-proc":
			cfg.KeepProcessed = *keep
		case "indent":
			cfg.Indent = *indent
		}
	})
	if err != nil {
		return nil, false, err
	}

	if *name != "" {
		input = *name + "." + cfg.Ext()
	}
	if input == "" {
		return nil, false, errors.New("missing -name or -map")
	}

	opts := &mapworld.Options{
		Input:   input,
		Output:  *output,
		Config:  *cfg,
		Variant: v,
		Preview: *prev,
	}
	return opts, *verbose, nil
}

// toLevel converts a flag value to a pixel intensity.  An earlier error
// is passed through.
func toLevel(name string, x uint, err error) (uint8, error) {
	if err != nil {
		return 0, err
	}
	if x > 255 {
		return 0, fmt.Errorf("-%s must be at most 255, got %d", name, x)
	}
	return uint8(x), nil
}
