package testcases

var basicCases = []TestCase{
	{
		Name: "empty",
		Sketch: []string{
			"....",
			"....",
			"....",
			"....",
		},
		Want: rects(),
	},
	{
		Name: "single_run",
		Sketch: []string{
			"....",
			".##.",
			"....",
			"....",
		},
		Want: rects([3]int{1, 2, 1}),
	},
	{
		Name: "two_runs",
		Sketch: []string{
			"#..##.",
		},
		Want: rects([3]int{0, 0, 0}, [3]int{3, 4, 0}),
	},
	{
		Name: "diagonal",
		Sketch: []string{
			"#...",
			".#..",
			"..#.",
			"...#",
		},
		Want: rects(
			[3]int{0, 0, 0},
			[3]int{1, 1, 1},
			[3]int{2, 2, 2},
			[3]int{3, 3, 3},
		),
	},
}
