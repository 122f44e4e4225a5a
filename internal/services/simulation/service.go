package simulation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/KirkDiggler/montecarlo/internal/common/clock"
	"github.com/KirkDiggler/montecarlo/internal/common/uuid"
	"github.com/KirkDiggler/montecarlo/internal/models"
	runRepo "github.com/KirkDiggler/montecarlo/internal/repositories/run"
)

// service implements the Service interface
type service struct {
	maxRolls      int
	maxDice       int
	runRepo       runRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new simulation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RunRepo == nil {
		return nil, ErrNilRunRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	maxRolls := cfg.MaxRolls
	if maxRolls <= 0 {
		maxRolls = defaultMaxRolls
	}

	maxDice := cfg.MaxDice
	if maxDice <= 0 {
		maxDice = defaultMaxDice
	}

	return &service{
		maxRolls:      maxRolls,
		maxDice:       maxDice,
		runRepo:       cfg.RunRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// RunSimulation builds the dice, plays the game, analyzes it and stores the run
func (s *service) RunSimulation(ctx context.Context, input *RunSimulationInput) (*RunSimulationOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.Dice) == 0 {
		return nil, ErrNoDice
	}

	if len(input.Dice) > s.maxDice {
		return nil, fmt.Errorf("%w: %d is more than %d", ErrTooManyDice, len(input.Dice), s.maxDice)
	}

	if input.Rolls < 0 {
		return nil, ErrInvalidRolls
	}

	if input.Rolls > s.maxRolls {
		return nil, fmt.Errorf("%w: %d is more than %d", ErrTooManyRolls, input.Rolls, s.maxRolls)
	}

	now := s.clock.Now()
	seed := input.Seed
	if seed == 0 {
		seed = now.UnixNano()
	}

	// All dice in a run draw from one source so the seed reproduces the run
	source := rand.New(rand.NewSource(seed))

	var res *result
	var err error
	if allNumeric(input.Dice) {
		res, err = simulate(input.Dice, numericFaces, input.Rolls, source)
	} else {
		res, err = simulate(input.Dice, stringFaces, input.Rolls, source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to simulate: %w", err)
	}

	run := &models.Run{
		ID:        s.uuidGenerator.NewUUID(),
		Name:      input.Name,
		Seed:      seed,
		Rolls:     input.Rolls,
		Dice:      res.dice,
		Outcomes:  res.outcomes,
		Stats:     res.stats,
		CreatedAt: now,
	}

	if err := s.runRepo.SaveRun(ctx, &runRepo.SaveRunInput{Run: run}); err != nil {
		return nil, err
	}

	return &RunSimulationOutput{
		Run: run,
	}, nil
}

// RerunSimulation plays a stored run's dice again with a fresh seed
func (s *service) RerunSimulation(ctx context.Context, input *RerunSimulationInput) (*RunSimulationOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	previous, err := s.GetRun(ctx, &GetRunInput{RunID: input.RunID})
	if err != nil {
		return nil, err
	}

	return s.RunSimulation(ctx, &RunSimulationInput{
		Name:  previous.Run.Name,
		Dice:  previous.Run.Dice,
		Rolls: previous.Run.Rolls,
	})
}

// GetRun returns a stored run
func (s *service) GetRun(ctx context.Context, input *GetRunInput) (*GetRunOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	run, err := s.runRepo.GetRun(ctx, &runRepo.GetRunInput{RunID: input.RunID})
	if err != nil {
		if errors.Is(err, runRepo.ErrRunNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, err
	}

	return &GetRunOutput{
		Run: run,
	}, nil
}

// ListRuns returns recent runs, newest first
func (s *service) ListRuns(ctx context.Context, input *ListRunsInput) (*ListRunsOutput, error) {
	limit := defaultListLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	output, err := s.runRepo.ListRuns(ctx, &runRepo.ListRunsInput{Limit: limit})
	if err != nil {
		return nil, err
	}

	return &ListRunsOutput{
		Runs: output.Runs,
	}, nil
}

// DeleteRun removes a stored run
func (s *service) DeleteRun(ctx context.Context, input *DeleteRunInput) (*DeleteRunOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	err := s.runRepo.DeleteRun(ctx, &runRepo.DeleteRunInput{RunID: input.RunID})
	if err != nil {
		if errors.Is(err, runRepo.ErrRunNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, err
	}

	return &DeleteRunOutput{
		Success: true,
	}, nil
}
