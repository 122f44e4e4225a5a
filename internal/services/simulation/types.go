package simulation

import (
	"github.com/KirkDiggler/montecarlo/internal/common/clock"
	"github.com/KirkDiggler/montecarlo/internal/common/uuid"
	"github.com/KirkDiggler/montecarlo/internal/models"
	runRepo "github.com/KirkDiggler/montecarlo/internal/repositories/run"
)

const (
	defaultMaxRolls  = 100000
	defaultMaxDice   = 10
	defaultListLimit = 10
)

// Config holds configuration for the simulation service
type Config struct {
	// Maximum number of rolls per run
	MaxRolls int

	// Maximum number of dice per run
	MaxDice int

	// Repository dependencies
	RunRepo runRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// RunSimulationInput contains parameters for a simulation
type RunSimulationInput struct {
	// Name is an optional label for the run
	Name string

	// Dice to roll, in column order
	Dice []models.DieSpec

	// Rolls is the number of times to roll every die
	Rolls int

	// Seed for the random source; 0 picks one from the clock
	Seed int64
}

// RunSimulationOutput contains the stored run
type RunSimulationOutput struct {
	Run *models.Run
}

// RerunSimulationInput identifies the run to play again
type RerunSimulationInput struct {
	RunID string
}

// GetRunInput contains parameters for fetching a run
type GetRunInput struct {
	RunID string
}

// GetRunOutput contains the requested run
type GetRunOutput struct {
	Run *models.Run
}

// ListRunsInput contains parameters for listing runs
type ListRunsInput struct {
	// Limit caps the result; 0 uses the default of 10
	Limit int
}

// ListRunsOutput contains recent runs, newest first
type ListRunsOutput struct {
	Runs []*models.Run
}

// DeleteRunInput contains parameters for deleting a run
type DeleteRunInput struct {
	RunID string
}

// DeleteRunOutput contains the result of deleting a run
type DeleteRunOutput struct {
	Success bool
}
