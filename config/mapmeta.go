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

package config

import (
	"fmt"
	"math"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MapMeta is the metadata file of a ROS map_server occupancy grid.
type MapMeta struct {
	Image          string     `yaml:"image"`
	Resolution     float64    `yaml:"resolution"`
	Origin         [3]float64 `yaml:"origin"`
	Negate         int        `yaml:"negate"`
	OccupiedThresh float64    `yaml:"occupied_thresh"`
	FreeThresh     float64    `yaml:"free_thresh"`

	path string
}

// LoadMapMeta reads a map_server YAML file.
func LoadMapMeta(path string) (*MapMeta, error) {
	data, err := readYAML(path)
	if err != nil {
		return nil, err
	}

	meta := &MapMeta{}
	if err := yaml.Unmarshal(data, meta); err != nil {
		return nil, fmt.Errorf("failed to parse map YAML: %w", err)
	}
	meta.path = path

	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("invalid map metadata: %w", err)
	}
	return meta, nil
}

// Validate checks the map metadata.
func (m *MapMeta) Validate() error {
	if m.Image == "" {
		return fmt.Errorf("image must be set")
	}
	if !(m.Resolution > 0) {
		return fmt.Errorf("resolution must be positive, got %g", m.Resolution)
	}
	if m.Negate != 0 && m.Negate != 1 {
		return fmt.Errorf("negate must be 0 or 1, got %d", m.Negate)
	}
	if !(m.FreeThresh >= 0 && m.FreeThresh < m.OccupiedThresh && m.OccupiedThresh <= 1) {
		return fmt.Errorf("need 0 <= free_thresh < occupied_thresh <= 1, got %g and %g",
			m.FreeThresh, m.OccupiedThresh)
	}
	return nil
}

// ImagePath returns the location of the map image.
// Relative paths are interpreted relative to the directory of the YAML file.
func (m *MapMeta) ImagePath() string {
	if filepath.IsAbs(m.Image) || m.path == "" {
		return m.Image
	}
	return filepath.Join(filepath.Dir(m.path), m.Image)
}

// Apply copies the map parameters into c.
//
// map_server assigns occupancy p = (255-v)/255 to a pixel of intensity v
// (p = v/255 if the map is negated).  Cells with p > occupied_thresh are
// walls and cells with p < free_thresh are floor.  The map is used at its
// native size, with one cell per pixel.
func (m *MapMeta) Apply(c *Config) {
	c.Black, c.White = m.Thresholds()
	c.CellScale = m.Resolution
	c.Negate = m.Negate == 1
	c.Size = 0
}

// Thresholds converts the occupancy thresholds into pixel intensities
// for the extractor.  Pixel values refer to the image after negation has
// been applied.
func (m *MapMeta) Thresholds() (black, white uint8) {
	occ := round6(255 * (1 - m.OccupiedThresh))
	free := round6(255 * (1 - m.FreeThresh))

	// largest v with v < occ, and smallest v with v > free
	b := math.Ceil(occ) - 1
	w := math.Floor(free) + 1
	return clamp(b), clamp(w)
}

// round6 removes rounding noise, so that thresholds which land exactly on
// an intensity are treated as exact.
func round6(x float64) float64 {
	return math.Round(x*1e6) / 1e6
}

func clamp(x float64) uint8 {
	switch {
	case x < 0:
		return 0
	case x > 255:
		return 255
	default:
		return uint8(x)
	}
}
