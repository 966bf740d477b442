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

package sdf

import "github.com/beevik/etree"

// addInertial adds a fixed mass and inertia tensor to a wall link.
func addInertial(link *etree.Element, name string) {
	inertial := link.CreateElement("inertial")
	inertial.CreateAttr("name", name+"_Inertial")

	mass := inertial.CreateElement("mass")
	mass.CreateAttr("value", "5")

	origin := inertial.CreateElement("origin")
	origin.CreateAttr("xyz", "0 0 0")
	origin.CreateAttr("rpy", "0 0 0")

	inertia := inertial.CreateElement("inertia")
	for _, kv := range [][2]string{
		{"ixx", "0.004"},
		{"ixy", "0.001"},
		{"ixz", "0"},
		{"iyy", "0.006"},
		{"iyz", "0"},
		{"izz", "0.007"},
	} {
		inertia.CreateAttr(kv[0], kv[1])
	}
}

// addDefaultScene adds sun, ground plane and ODE physics settings to a
// world element.
func addDefaultScene(world *etree.Element) {
	for _, uri := range []string{"model://sun", "model://ground_plane"} {
		include := world.CreateElement("include")
		include.CreateElement("uri").SetText(uri)
	}

	physics := world.CreateElement("physics")
	physics.CreateAttr("type", "ode")
	addValues(physics,
		"real_time_update_rate", "1000.0",
		"max_step_size", "0.001",
		"real_time_factor", "1",
	)

	ode := physics.CreateElement("ode")
	addValues(ode.CreateElement("solver"),
		"type", "quick",
		"iters", "150",
		"precon_iters", "0",
		"sor", "1.4",
		"use_dynamic_moi_rescaling", "1",
	)
	addValues(ode.CreateElement("constraints"),
		"cfm", "0.00001",
		"erp", "0.2",
		"contact_max_correcting_vel", "2000.000000",
		"contact_surface_layer", "0.01000",
	)
}

// addValues adds one text element per tag/value pair.
func addValues(parent *etree.Element, tagValue ...string) {
	for i := 0; i+1 < len(tagValue); i += 2 {
		parent.CreateElement(tagValue[i]).SetText(tagValue[i+1])
	}
}
