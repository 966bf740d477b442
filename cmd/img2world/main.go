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

// Command img2world converts a map sketch into a complete Gazebo world.
//
// In addition to the wall model written by img2sdf, the world contains a
// sun, a ground plane and ODE physics settings.  The result is written to
// <name>.world.
package main

import (
	"os"

	"seehuhn.de/go/mapworld/internal/convcmd"
	"seehuhn.de/go/mapworld/sdf"
)

func main() {
	os.Exit(convcmd.Run("img2world", sdf.World, os.Args[1:], os.Stderr))
}
