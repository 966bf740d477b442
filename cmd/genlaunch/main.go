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

// Command genlaunch writes roslaunch files for a range of levels.
//
// For every level N in [-from, -to) the file
// <dir>/levelN/turtlebot3_levelN.launch is created.  It opens the world
// turtlebot3_levelN.world and spawns the requested number of robots at
// random positions.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"seehuhn.de/go/mapworld/internal/convcmd"
	"seehuhn.de/go/mapworld/launch"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("genlaunch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	robots := fs.Int("robots", 2, "number of robots per level")
	from := fs.Int("from", 4, "first level")
	to := fs.Int("to", 7, "level after the last one")
	dir := fs.String("dir", ".", "output `directory`")
	seed := fs.Uint64("seed", 0, "random seed (0 uses the current time)")
	mapSize := fs.Float64("map-size", launch.DefaultMapSize, "extent of the spawn area, in metres")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		return 2
	}
	if *robots < 0 || !(*mapSize >= 0) {
		fmt.Fprintln(stderr, "genlaunch: -robots and -map-size must not be negative")
		return 2
	}

	log := convcmd.NewLogger(stderr, *verbose).Named("genlaunch")
	defer log.Sync()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Debug("random seed", zap.Uint64("seed", *seed))

	g := launch.NewGenerator(*robots, *seed)
	g.MapSize = *mapSize
	for level := *from; level < *to; level++ {
		path, err := g.WriteFile(*dir, level)
		if err != nil {
			log.Error("cannot write launch file", zap.Int("level", level), zap.Error(err))
			return 1
		}
		log.Info("wrote launch file", zap.String("path", path))
	}
	return 0
}
