package run

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/KirkDiggler/montecarlo/internal/models"
)

// memoryRepository implements the Repository interface in process memory.
// Runs are stored as JSON so callers never share state with the store.
type memoryRepository struct {
	mu   sync.RWMutex
	runs map[string][]byte
}

// NewMemory creates a run repository that lives for the life of the process
func NewMemory() *memoryRepository {
	return &memoryRepository{
		runs: make(map[string][]byte),
	}
}

// SaveRun stores a copy of a run
func (m *memoryRepository) SaveRun(ctx context.Context, input *SaveRunInput) error {
	if input == nil || input.Run == nil {
		return errors.New("input and run cannot be nil")
	}

	if input.Run.ID == "" {
		return errors.New("run ID cannot be empty")
	}

	runJSON, err := json.Marshal(input.Run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs[input.Run.ID] = runJSON
	return nil
}

// GetRun retrieves a copy of a run by ID
func (m *memoryRepository) GetRun(ctx context.Context, input *GetRunInput) (*models.Run, error) {
	if input == nil || input.RunID == "" {
		return nil, errors.New("input and run ID cannot be empty")
	}

	m.mu.RLock()
	runJSON, ok := m.runs[input.RunID]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrRunNotFound
	}

	return decodeRun(runJSON)
}

// ListRuns retrieves copies of stored runs, newest first
func (m *memoryRepository) ListRuns(ctx context.Context, input *ListRunsInput) (*ListRunsOutput, error) {
	m.mu.RLock()
	runs := make([]*models.Run, 0, len(m.runs))
	for _, runJSON := range m.runs {
		run, err := decodeRun(runJSON)
		if err != nil {
			m.mu.RUnlock()
			return nil, err
		}
		runs = append(runs, run)
	}
	m.mu.RUnlock()

	slices.SortFunc(runs, func(a, b *models.Run) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	if input != nil && input.Limit > 0 && len(runs) > input.Limit {
		runs = runs[:input.Limit]
	}

	return &ListRunsOutput{
		Runs: runs,
	}, nil
}

// DeleteRun removes a run
func (m *memoryRepository) DeleteRun(ctx context.Context, input *DeleteRunInput) error {
	if input == nil || input.RunID == "" {
		return errors.New("input and run ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.runs[input.RunID]; !ok {
		return ErrRunNotFound
	}
	delete(m.runs, input.RunID)
	return nil
}

func decodeRun(runJSON []byte) (*models.Run, error) {
	var run models.Run
	if err := json.Unmarshal(runJSON, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}
	return &run, nil
}
