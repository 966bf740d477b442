// Command export writes the sketch test cases as image files, together
// with a JSON file listing the expected wall rectangles.  The files can be
// fed to other map converters for comparison.
// Run from the mapworld module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/mapworld/grid"
	"seehuhn.de/go/mapworld/testcases"
)

const outDir = "testdata/sketches"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fname := filepath.Join(outDir, name+".png")
			if err := grid.Save(fname, tc.Image()); err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, toJSON(name, tc))
		}
	}

	f, err := os.Create(filepath.Join(outDir, "testcases.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string     `json:"name"`
	Image  string     `json:"image"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Rects  []jsonRect `json:"rects"`
}

type jsonRect struct {
	Left   int `json:"left"`
	Right  int `json:"right"`
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

func toJSON(name string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   name,
		Image:  name + ".png",
		Width:  tc.Width(),
		Height: tc.Height(),
		Rects:  make([]jsonRect, len(tc.Want)),
	}
	for i, r := range tc.Want {
		jtc.Rects[i] = jsonRect{Left: r.Left, Right: r.Right, Top: r.Top, Bottom: r.Bottom}
	}
	return jtc
}
