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

// Package config holds the conversion parameters and reads them from YAML
// files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/mapworld/obstacle"
	"seehuhn.de/go/mapworld/sdf"
)

// Defaults used by [Default].
const (
	DefaultSize      = 200
	DefaultInputType = "jpg"
)

const maxFileSize = 1 << 20

// Config describes one conversion run.
type Config struct {
	// Black is the largest intensity which is treated as wall.
	Black uint8 `yaml:"black"`

	// White is the smallest intensity which is treated as floor.
	White uint8 `yaml:"white"`

	// Size is the side length, in cells, of the square grid the input
	// image is resampled to.  Zero keeps the native image size.
	Size int `yaml:"size"`

	// CellScale is the world size of one grid cell, in metres.
	CellScale float64 `yaml:"cell_scale"`

	// WallHeight is the height of the generated walls, in metres.
	WallHeight float64 `yaml:"wall_height"`

	// InputType is the file extension of the input image, without the dot.
	InputType string `yaml:"input_type"`

	// KeepProcessed requests that the resampled grid is written next to
	// the input as <name>_proc.<type>.
	KeepProcessed bool `yaml:"keep_processed"`

	// Negate inverts the input, so that bright pixels are walls.
	Negate bool `yaml:"negate"`

	// Indent is the number of spaces used to indent the XML output.
	// Zero gives compact output.
	Indent int `yaml:"indent"`
}

// Default returns the standard configuration for hand-drawn sketches.
func Default() *Config {
	return &Config{
		Black:      obstacle.DefaultBlack,
		White:      obstacle.DefaultWhite,
		Size:       DefaultSize,
		CellScale:  sdf.DefaultCellScale,
		WallHeight: sdf.DefaultWallHeight,
		InputType:  DefaultInputType,
	}
}

// Load reads a YAML configuration file.
// Fields omitted from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := readYAML(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// readYAML checks the extension and size of a YAML file and returns its
// contents.
func readYAML(path string) ([]byte, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .yaml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Black >= c.White {
		return fmt.Errorf("%w: black=%d, white=%d", obstacle.ErrThresholds, c.Black, c.White)
	}
	if c.Size < 0 {
		return fmt.Errorf("size must be non-negative, got %d", c.Size)
	}
	if !(c.CellScale > 0) {
		return fmt.Errorf("cell_scale must be positive, got %g", c.CellScale)
	}
	if !(c.WallHeight > 0) {
		return fmt.Errorf("wall_height must be positive, got %g", c.WallHeight)
	}
	if c.Ext() == "" {
		return errors.New("input_type must not be empty")
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must be non-negative, got %d", c.Indent)
	}
	return nil
}

// Ext returns the input file extension without a leading dot.
func (c *Config) Ext() string {
	return strings.TrimPrefix(c.InputType, ".")
}

// Extractor returns a rectangle extractor using the configured thresholds.
func (c *Config) Extractor() *obstacle.Extractor {
	e := obstacle.NewExtractor()
	e.Black = c.Black
	e.White = c.White
	return e
}

// Encoder returns a scene encoder for the given variant, using the
// configured scale, wall height and indentation.
func (c *Config) Encoder(v sdf.Variant) *sdf.Encoder {
	enc := sdf.NewEncoder(v)
	enc.CellScale = c.CellScale
	enc.WallHeight = c.WallHeight
	enc.Indent = c.Indent
	return enc
}
