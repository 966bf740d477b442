package testcases

// Vertically adjacent runs are reported separately, one per row.
var thickCases = []TestCase{
	{
		Name: "block",
		Sketch: []string{
			"###.",
			"###.",
			"###.",
		},
		Want: rects(
			[3]int{0, 2, 0},
			[3]int{0, 2, 1},
			[3]int{0, 2, 2},
		),
	},
	{
		Name: "room",
		Sketch: []string{
			"#####",
			"#...#",
			"#####",
		},
		Want: rects(
			[3]int{0, 4, 0},
			[3]int{0, 0, 1},
			[3]int{4, 4, 1},
			[3]int{0, 4, 2},
		),
	},
}
