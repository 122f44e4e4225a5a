package models

import (
	"time"
)

// Run is a recorded simulation: the dice that were rolled, every outcome
// and the statistics derived from them
type Run struct {
	// ID is the unique identifier for the run
	ID string

	// Name is an optional label supplied by whoever started the run
	Name string

	// Seed is the random seed the run was played with
	Seed int64

	// Rolls is the number of times every die was rolled
	Rolls int

	// Dice describes each die in column order
	Dice []DieSpec

	// Outcomes is the wide outcome table, one row per roll
	Outcomes [][]string

	// Stats holds the analysis of Outcomes
	Stats RunStats

	// CreatedAt is when the run was played
	CreatedAt time.Time
}

// DieSpec describes a die by its faces and any non-default weights
type DieSpec struct {
	// Faces are the distinct faces, in order
	Faces []string

	// Weights maps a face to its weight; missing faces weigh 1
	Weights map[string]float64 `json:",omitempty"`
}
