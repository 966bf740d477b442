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

package sdf_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/mapworld/obstacle"
	"seehuhn.de/go/mapworld/sdf"
)

func span(left, right, y int) obstacle.Rect {
	return obstacle.Rect{Left: left, Right: right, Top: y, Bottom: y}
}

// The golden files fix the expected output byte for byte.
func TestGolden(t *testing.T) {
	cases := []struct {
		file       string
		cellScale  float64
		wallHeight float64
		rects      []obstacle.Rect
	}{
		{"empty.sdf", 0.1, 1.0, nil},
		{"example.sdf", 0.1, 1.0, []obstacle.Rect{span(1, 2, 1)}},
		{"room.sdf", 0.1, 1.0, []obstacle.Rect{
			span(0, 4, 0), span(0, 0, 1), span(4, 4, 1), span(0, 4, 2),
		}},
		{"scaled.sdf", 0.05, 2.5, []obstacle.Rect{span(3, 17, 5), span(0, 0, 199)}},
	}
	for _, c := range cases {
		t.Run(c.file, func(t *testing.T) {
			want, err := os.ReadFile(filepath.Join("testdata", c.file))
			require.NoError(t, err)

			enc := sdf.NewEncoder(sdf.Model)
			enc.CellScale = c.cellScale
			enc.WallHeight = c.wallHeight

			buf := &bytes.Buffer{}
			require.NoError(t, enc.Encode(buf, c.rects))
			assert.Equal(t, string(want), buf.String())
		})
	}
}

func TestDeterministic(t *testing.T) {
	rects := []obstacle.Rect{span(0, 9, 0), span(3, 3, 4), span(7, 12, 4)}
	for _, v := range []sdf.Variant{sdf.Model, sdf.World} {
		enc := sdf.NewEncoder(v)
		a, b := &bytes.Buffer{}, &bytes.Buffer{}
		require.NoError(t, enc.Encode(a, rects))
		require.NoError(t, enc.Encode(b, rects))
		assert.Equal(t, a.Bytes(), b.Bytes(), v.String())
	}
}

func TestLinks(t *testing.T) {
	rects := []obstacle.Rect{span(1, 2, 1), span(0, 20, 3), span(5, 5, 9)}
	doc := sdf.NewEncoder(sdf.Model).Document(rects)

	links := doc.FindElements("/sdf/world/model/link")
	require.Len(t, links, len(rects))

	wantNames := []string{"Wall_(1.5,1.0)", "Wall_(10.0,3.0)", "Wall_(5.0,9.0)"}
	for i, link := range links {
		assert.Equal(t, wantNames[i], link.SelectAttrValue("name", ""))
		assert.NotNil(t, link.FindElement("collision/geometry/box/size"))
		assert.NotNil(t, link.FindElement("visual/material/script/name"))
		assert.Nil(t, link.SelectElement("inertial"))
	}

	size := links[0].FindElement("collision/geometry/box/size").Text()
	assert.Equal(t, "0.2 0.2 1.0", size)

	static := doc.FindElement("/sdf/world/model/static")
	require.NotNil(t, static)
	assert.Equal(t, "1", static.Text())
}

func TestWorldVariant(t *testing.T) {
	doc := sdf.NewEncoder(sdf.World).Document([]obstacle.Rect{span(2, 8, 0)})

	world := doc.FindElement("/sdf/world")
	require.NotNil(t, world)

	var uris []string
	for _, inc := range world.SelectElements("include") {
		uris = append(uris, inc.SelectElement("uri").Text())
	}
	assert.Equal(t, []string{"model://sun", "model://ground_plane"}, uris)

	physics := world.SelectElement("physics")
	require.NotNil(t, physics)
	assert.Equal(t, "ode", physics.SelectAttrValue("type", ""))
	assert.Equal(t, "150", physics.FindElement("ode/solver/iters").Text())
	assert.Equal(t, "0.2", physics.FindElement("ode/constraints/erp").Text())

	// the model follows the default scene
	children := world.ChildElements()
	assert.Equal(t, "model", children[len(children)-1].Tag)

	link := doc.FindElement("/sdf/world/model/link")
	require.NotNil(t, link)
	inertial := link.SelectElement("inertial")
	require.NotNil(t, inertial)
	assert.Equal(t, "Wall_(5.0,0.0)_Inertial", inertial.SelectAttrValue("name", ""))
	assert.Equal(t, "5", inertial.SelectElement("mass").SelectAttrValue("value", ""))
	assert.Equal(t, "0.007", inertial.SelectElement("inertia").SelectAttrValue("izz", ""))

	// inertial sits between collision and visual
	var order []string
	for _, c := range link.ChildElements() {
		order = append(order, c.Tag)
	}
	assert.Equal(t, []string{"collision", "inertial", "visual", "pose"}, order)
}

func TestIndent(t *testing.T) {
	enc := sdf.NewEncoder(sdf.Model)
	enc.Indent = 2

	buf := &bytes.Buffer{}
	require.NoError(t, enc.Encode(buf, []obstacle.Rect{span(1, 2, 1)}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml version='1.0' encoding='UTF-8'?>\n<sdf"))
	assert.Contains(t, out, "\n  <world name=\"GridMap\">\n")

	// indentation does not change the content
	compact := &bytes.Buffer{}
	require.NoError(t, sdf.NewEncoder(sdf.Model).Encode(compact, []obstacle.Rect{span(1, 2, 1)}))
	a, b := etree.NewDocument(), etree.NewDocument()
	require.NoError(t, a.ReadFromString(out))
	require.NoError(t, b.ReadFromString(compact.String()))
	a.Unindent()
	b.Unindent()
	as, err := a.WriteToString()
	require.NoError(t, err)
	bs, err := b.WriteToString()
	require.NoError(t, err)
	assert.Equal(t, bs, as)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.sdf")

	enc := sdf.NewEncoder(sdf.Model)
	require.NoError(t, enc.WriteFile(path, []obstacle.Rect{span(1, 2, 1)}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("testdata", "example.sdf"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "map.sdf")
	err := sdf.NewEncoder(sdf.Model).WriteFile(path, nil)
	assert.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestVariant(t *testing.T) {
	assert.Equal(t, ".sdf", sdf.Model.Ext())
	assert.Equal(t, ".world", sdf.World.Ext())
	assert.Equal(t, "world", sdf.World.String())
	assert.Equal(t, "Variant(7)", sdf.Variant(7).String())
}
