package models

// RunStats summarizes the outcomes of a run
type RunStats struct {
	// Jackpots is the number of rolls where every die matched
	Jackpots int

	// FaceTotals counts every face across all rolls and dice
	FaceTotals []FaceTotal

	// Combinations counts rolls by their faces regardless of die order
	Combinations []Tally

	// Permutations counts rolls by their faces in die order
	Permutations []Tally
}

// FaceTotal is how often a face came up over a whole run
type FaceTotal struct {
	Face  string
	Count int

	// Frequency is Count divided by the number of cells in the table
	Frequency float64
}

// Tally is a distinct outcome and the number of rolls that produced it
type Tally struct {
	Key   []string
	Count int
}
