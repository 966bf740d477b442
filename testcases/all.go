package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in fixture filenames.
var All = map[string][]TestCase{
	"basic": basicCases,
	"edge":  edgeCases,
	"grey":  greyCases,
	"thick": thickCases,
	"large": largeCases,
}
