package run

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/montecarlo/internal/repositories/run Repository

import (
	"context"

	"github.com/KirkDiggler/montecarlo/internal/models"
)

// Repository defines the interface for simulation run persistence
type Repository interface {
	// SaveRun persists a run
	SaveRun(ctx context.Context, input *SaveRunInput) error

	// GetRun retrieves a run by ID
	GetRun(ctx context.Context, input *GetRunInput) (*models.Run, error)

	// ListRuns retrieves runs, newest first
	ListRuns(ctx context.Context, input *ListRunsInput) (*ListRunsOutput, error)

	// DeleteRun removes a run
	DeleteRun(ctx context.Context, input *DeleteRunInput) error
}
