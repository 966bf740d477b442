package testcases

import (
	"strings"

	"seehuhn.de/go/mapworld/obstacle"
)

var largeCases = []TestCase{
	room("room_200", 200, 3),
	room("room_64_thin", 64, 1),
}

// room builds a square room of the given size, enclosed by walls of
// the given thickness.
func room(name string, size, thickness int) TestCase {
	solid := strings.Repeat("#", size)
	hollow := strings.Repeat("#", thickness) +
		strings.Repeat(".", size-2*thickness) +
		strings.Repeat("#", thickness)

	tc := TestCase{Name: name, Want: []obstacle.Rect{}}
	for y := range size {
		if y < thickness || y >= size-thickness {
			tc.Sketch = append(tc.Sketch, solid)
			tc.Want = append(tc.Want, obstacle.Rect{Left: 0, Right: size - 1, Top: y, Bottom: y})
			continue
		}
		tc.Sketch = append(tc.Sketch, hollow)
		tc.Want = append(tc.Want,
			obstacle.Rect{Left: 0, Right: thickness - 1, Top: y, Bottom: y},
			obstacle.Rect{Left: size - thickness, Right: size - 1, Top: y, Bottom: y})
	}
	return tc
}
