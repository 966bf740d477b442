package testcases

// Grey pixels keep the current state: they extend a wall which is open
// and are ignored otherwise.
var greyCases = []TestCase{
	{
		Name:   "inside_wall",
		Sketch: []string{"#++#."},
		Want:   rects([3]int{0, 3, 0}),
	},
	{
		Name:   "before_wall",
		Sketch: []string{"++#."},
		Want:   rects([3]int{2, 2, 0}),
	},
	{
		Name:   "trailing_grey",
		Sketch: []string{"#+."},
		Want:   rects([3]int{0, 1, 0}),
	},
	{
		Name:   "grey_to_edge",
		Sketch: []string{".#++"},
		Want:   rects([3]int{1, 3, 0}),
	},
	{
		Name:   "only_grey",
		Sketch: []string{"d+l"},
		Want:   rects(),
	},
}
