package testcases

var edgeCases = []TestCase{
	{
		Name:   "right_edge",
		Sketch: []string{"..##"},
		Want:   rects([3]int{2, 3, 0}),
	},
	{
		Name:   "last_column_only",
		Sketch: []string{"...#"},
		Want:   rects([3]int{3, 3, 0}),
	},
	{
		Name:   "left_edge",
		Sketch: []string{"#..."},
		Want:   rects([3]int{0, 0, 0}),
	},
	{
		Name:   "full_row",
		Sketch: []string{"####"},
		Want:   rects([3]int{0, 3, 0}),
	},
	{
		Name: "single_column",
		Sketch: []string{
			"#",
			".",
			"#",
		},
		Want: rects([3]int{0, 0, 0}, [3]int{0, 0, 2}),
	},
	{
		Name:   "threshold_values",
		Sketch: []string{"bbw.dd.#l"},
		Want:   rects([3]int{0, 1, 0}, [3]int{7, 8, 0}),
	},
}
