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

// Package sdf writes wall rectangles as SDF documents for the Gazebo
// simulator.
//
// Every rectangle becomes one link of a single static model. The link
// carries a box-shaped collision and visual, both of the same size.
// Numbers are written by [FormatFloat], so that output files can be
// compared byte for byte with existing world files.
package sdf

import (
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"

	"seehuhn.de/go/mapworld/obstacle"
)

// Default scale values: 10 cells per metre, 1 m high walls.
const (
	DefaultCellScale  = 0.1
	DefaultWallHeight = 1.0
)

// Variant selects the kind of document to write.
type Variant int

const (
	// Model writes only the wall model (".sdf" files).
	Model Variant = iota

	// World adds a light source, a ground plane, physics settings and
	// per-link inertia (".world" files).
	World
)

func (v Variant) String() string {
	switch v {
	case Model:
		return "model"
	case World:
		return "world"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Ext returns the file name extension for the variant, including the dot.
func (v Variant) Ext() string {
	if v == World {
		return ".world"
	}
	return ".sdf"
}

// Encoder converts wall rectangles into SDF documents.
type Encoder struct {
	// CellScale converts pixels to world units.
	CellScale float64

	// WallHeight is the height of all walls, in world units.
	WallHeight float64

	Variant Variant

	// Indent is the number of spaces per nesting level.
	// Zero writes everything on one line.
	Indent int
}

// NewEncoder returns an Encoder for the given variant, with the default
// scale values.
func NewEncoder(v Variant) *Encoder {
	return &Encoder{
		CellScale:  DefaultCellScale,
		WallHeight: DefaultWallHeight,
		Variant:    v,
	}
}

// Document builds the element tree for the given rectangles.
// The document starts with an XML declaration.
func (e *Encoder) Document(rects []obstacle.Rect) *etree.Document {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalText = true
	doc.WriteSettings.CanonicalAttrVal = true
	doc.CreateProcInst("xml", `version='1.0' encoding='UTF-8'`)
	if e.Indent <= 0 {
		doc.CreateCharData("\n")
	}

	root := doc.CreateElement("sdf")
	root.CreateAttr("version", "1.6")
	world := root.CreateElement("world")
	world.CreateAttr("name", "GridMap")

	if e.Variant == World {
		addDefaultScene(world)
	}

	model := world.CreateElement("model")
	model.CreateAttr("name", "GridMap")
	addPose(model, "0 0 0 0 -0 0")

	for _, r := range rects {
		e.addLink(model, r)
	}

	model.CreateElement("static").SetText("1")

	if e.Indent > 0 {
		doc.Indent(e.Indent)
	}
	return doc
}

// Encode writes the document for rects to w.
func (e *Encoder) Encode(w io.Writer, rects []obstacle.Rect) error {
	_, err := e.Document(rects).WriteTo(w)
	return err
}

// WriteFile writes the document for rects to the named file.
// If writing fails, the partial file is removed.
func (e *Encoder) WriteFile(path string, rects []obstacle.Rect) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene file: %w", err)
	}

	err = e.Encode(f, rects)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// LinkName returns the link name used for the wall with pixel-space
// center (x, y).
func LinkName(w obstacle.Wall) string {
	return "Wall_(" + FormatFloat(w.Center.X) + "," + FormatFloat(w.Center.Y) + ")"
}

func (e *Encoder) addLink(model *etree.Element, r obstacle.Rect) {
	w := r.Wall()
	box := w.Scaled(e.CellScale, e.WallHeight)
	name := LinkName(w)

	size := formatVec(box.Size.X, box.Size.Y, box.Height)
	// The leading minus mirrors the x axis. It is applied to the text,
	// so a wall at x=0 gets "-0.0".
	pose := "-" + FormatFloat(box.Center.X) + " " +
		formatVec(box.Center.Y, e.WallHeight/2) + " 0 -0 0"

	link := model.CreateElement("link")
	link.CreateAttr("name", name)

	collision := link.CreateElement("collision")
	collision.CreateAttr("name", name+"_Collision")
	addGeometry(collision, size, pose)

	if e.Variant == World {
		addInertial(link, name)
	}

	visual := link.CreateElement("visual")
	visual.CreateAttr("name", name+"_Visual")
	addGeometry(visual, size, pose)

	material := visual.CreateElement("material")
	script := material.CreateElement("script")
	script.CreateElement("uri").SetText("file://media/materials/scripts/gazebo.material")
	script.CreateElement("name").SetText("Gazebo/Grey")
	material.CreateElement("ambient").SetText("1 1 1 1")

	meta := visual.CreateElement("meta")
	meta.CreateElement("layer").SetText("0")

	addPose(link, "0 0 "+FormatFloat(e.WallHeight/2)+" 0 -0 0")
}

func addGeometry(parent *etree.Element, size, pose string) {
	geometry := parent.CreateElement("geometry")
	box := geometry.CreateElement("box")
	box.CreateElement("size").SetText(size)
	addPose(parent, pose)
}

func addPose(parent *etree.Element, text string) {
	pose := parent.CreateElement("pose")
	pose.CreateAttr("frame", "")
	pose.SetText(text)
}
