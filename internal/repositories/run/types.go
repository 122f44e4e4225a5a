package run

import (
	"errors"

	"github.com/KirkDiggler/montecarlo/internal/models"
)

// ErrRunNotFound is returned when a run is not found
var ErrRunNotFound = errors.New("run not found")

type SaveRunInput struct {
	Run *models.Run
}

type GetRunInput struct {
	RunID string
}

type ListRunsInput struct {
	// Limit caps the number of runs returned; 0 means all
	Limit int
}

type ListRunsOutput struct {
	Runs []*models.Run
}

type DeleteRunInput struct {
	RunID string
}
