package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Base life expectancy: 76.1 years (male), 81.1 years (female)",
	"Lifestyle factors are independent and their impacts add up",
	"Each factor contributes a fixed number of years per choice",
	"Years remaining never go below zero",
	"Estimates are illustrative, not medical advice",
}
