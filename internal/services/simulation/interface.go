package simulation

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/montecarlo/internal/services/simulation Service

// Service defines the interface for simulation operations
type Service interface {
	// RunSimulation builds the dice, plays the game, analyzes it and stores the run
	RunSimulation(ctx context.Context, input *RunSimulationInput) (*RunSimulationOutput, error)

	// RerunSimulation plays a stored run's dice again with a fresh seed
	RerunSimulation(ctx context.Context, input *RerunSimulationInput) (*RunSimulationOutput, error)

	// GetRun returns a stored run
	GetRun(ctx context.Context, input *GetRunInput) (*GetRunOutput, error)

	// ListRuns returns recent runs, newest first
	ListRuns(ctx context.Context, input *ListRunsInput) (*ListRunsOutput, error)

	// DeleteRun removes a stored run
	DeleteRun(ctx context.Context, input *DeleteRunInput) (*DeleteRunOutput, error)
}
