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

// Package launch writes roslaunch files which open a generated world in
// Gazebo and spawn TurtleBot3 robots at random positions.
package launch

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/beevik/etree"

	"seehuhn.de/go/mapworld/sdf"
)

// Default values for a [Generator].
const (
	DefaultMapSize      = 7.5
	DefaultModel        = "turtlebot3"
	DefaultWorldPackage = "turtlebot3_gazebo"
)

// Generator creates launch files for a range of levels.
type Generator struct {
	// Robots is the number of robots to spawn.
	Robots int

	// MapSize bounds the spawn area: x is drawn from [-MapSize, 0] and
	// y from [0, MapSize].
	MapSize float64

	// Model is the Gazebo model name of the spawned robots.
	Model string

	// WorldPackage is the ROS package which holds the world files.
	WorldPackage string

	Rand *rand.Rand
}

// NewGenerator returns a generator for the given number of robots.
// The random positions are derived from seed.
func NewGenerator(robots int, seed uint64) *Generator {
	return &Generator{
		Robots:       robots,
		MapSize:      DefaultMapSize,
		Model:        DefaultModel,
		WorldPackage: DefaultWorldPackage,
		Rand:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// FileName returns the path of the launch file for a level, relative to
// the output directory.
func FileName(level int) string {
	name := "turtlebot3_level" + strconv.Itoa(level)
	return filepath.Join("level"+strconv.Itoa(level), name+".launch")
}

// Document builds the launch file for one level.
// Each call draws new robot positions.
func (g *Generator) Document(level int) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)

	root := doc.CreateElement("launch")
	addArg(root, "model", "$(env TURTLEBOT3_MODEL)")

	for i := range g.Robots {
		x, y := g.position()
		sfx := g.suffix(i)
		addArg(root, "x_pos"+sfx, sdf.FormatFloat(x))
		addArg(root, "y_pos"+sfx, sdf.FormatFloat(y))
		addArg(root, "z_pos"+sfx, "0.0")
	}
	addArg(root, "gravity", "false")

	include := root.CreateElement("include")
	include.CreateAttr("file", "$(find gazebo_ros)/launch/empty_world.launch")
	world := fmt.Sprintf("$(find %s)/worlds/turtlebot3_level%d.world", g.WorldPackage, level)
	addValue(include, "world_name", world)
	addValue(include, "paused", "false")
	addValue(include, "use_sim_time", "true")
	addValue(include, "gui", "true")
	addValue(include, "headless", "false")
	addValue(include, "debug", "false")

	param := root.CreateElement("param")
	param.CreateAttr("name", "robot_description")
	param.CreateAttr("command", "$(find xacro)/xacro --inorder "+
		"$(find turtlebot3_description)/urdf/turtlebot3_$(arg model).urdf.xacro")

	for i := range g.Robots {
		g.addRobot(root, i)
	}

	doc.IndentTabs()
	return doc
}

// WriteFile writes the launch file for one level below dir and returns
// its path.  The level directory is created if needed.
func (g *Generator) WriteFile(dir string, level int) (string, error) {
	path := filepath.Join(dir, FileName(level))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create level directory: %w", err)
	}

	if err := g.Document(level).WriteToFile(path); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// position draws a spawn position, rounded to 0.1.
func (g *Generator) position() (x, y float64) {
	x = round1(-g.MapSize * g.Rand.Float64())
	y = round1(g.MapSize * g.Rand.Float64())
	return x, y
}

// suffix makes argument and node names unique when more than one robot
// is spawned.  A single robot uses the plain names.
func (g *Generator) suffix(i int) string {
	if g.Robots == 1 {
		return ""
	}
	return "_" + strconv.Itoa(i)
}

func (g *Generator) addRobot(root *etree.Element, i int) {
	sfx := g.suffix(i)

	rsp := root.CreateElement("node")
	rsp.CreateAttr("name", "robot_state_publisher"+sfx)
	rsp.CreateAttr("pkg", "robot_state_publisher")
	rsp.CreateAttr("type", "robot_state_publisher")
	freq := rsp.CreateElement("param")
	freq.CreateAttr("name", "publish_frequency")
	freq.CreateAttr("type", "double")
	freq.CreateAttr("value", "50.0")
	if sfx != "" {
		prefix := rsp.CreateElement("param")
		prefix.CreateAttr("name", "tf_prefix")
		prefix.CreateAttr("value", g.Model+sfx)
	}

	spawn := root.CreateElement("node")
	spawn.CreateAttr("name", "spawn_urdf"+sfx)
	spawn.CreateAttr("pkg", "gazebo_ros")
	spawn.CreateAttr("type", "spawn_model")
	spawn.CreateAttr("args", fmt.Sprintf(
		"-urdf -model %s -x $(arg x_pos%s) -y $(arg y_pos%s) -z $(arg z_pos%s) -param robot_description",
		g.Model+sfx, sfx, sfx, sfx))
}

func addArg(parent *etree.Element, name, def string) {
	arg := parent.CreateElement("arg")
	arg.CreateAttr("name", name)
	arg.CreateAttr("default", def)
}

func addValue(parent *etree.Element, name, value string) {
	arg := parent.CreateElement("arg")
	arg.CreateAttr("name", name)
	arg.CreateAttr("value", value)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
