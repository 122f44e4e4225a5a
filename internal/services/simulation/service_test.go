package simulation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/montecarlo/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/montecarlo/internal/common/uuid/mocks"
	"github.com/KirkDiggler/montecarlo/internal/dice"
	"github.com/KirkDiggler/montecarlo/internal/models"
	runRepo "github.com/KirkDiggler/montecarlo/internal/repositories/run"
	runMocks "github.com/KirkDiggler/montecarlo/internal/repositories/run/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SimulationServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockRunRepo *runMocks.MockRepository
	mockClock   *mocks.MockClock
	mockUUID    *uuidMocks.MockUUID
	service     Service
	ctx         context.Context

	// Test data
	testTime  time.Time
	testRunID string
	sixSided  []string

	// Reusable test inputs
	runInput *RunSimulationInput
}

func (s *SimulationServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRunRepo = runMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testRunID = "test-run-id"
	s.sixSided = []string{"1", "2", "3", "4", "5", "6"}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.runInput = &RunSimulationInput{
		Name: "loaded pair",
		Dice: []models.DieSpec{
			{Faces: s.sixSided},
			{Faces: s.sixSided, Weights: map[string]float64{"6": 10}},
		},
		Rolls: 200,
		Seed:  42,
	}

	svc, err := New(&Config{
		RunRepo:       s.mockRunRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		MaxRolls:      1000,
		MaxDice:       4,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *SimulationServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSimulationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SimulationServiceTestSuite))
}

// expectSave captures the run handed to the repository
func (s *SimulationServiceTestSuite) expectSave(saved **models.Run) {
	s.mockUUID.EXPECT().NewUUID().Return(s.testRunID)
	s.mockRunRepo.EXPECT().
		SaveRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *runRepo.SaveRunInput) error {
			*saved = input.Run
			return nil
		})
}

func (s *SimulationServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilRunRepo)

	_, err = New(&Config{RunRepo: s.mockRunRepo, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{RunRepo: s.mockRunRepo, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *SimulationServiceTestSuite) TestRunSimulation_HappyPath() {
	var saved *models.Run
	s.expectSave(&saved)

	output, err := s.service.RunSimulation(s.ctx, s.runInput)
	s.Require().NoError(err)
	s.Require().NotNil(output.Run)
	s.Same(saved, output.Run)

	run := output.Run
	s.Equal(s.testRunID, run.ID)
	s.Equal("loaded pair", run.Name)
	s.Equal(int64(42), run.Seed)
	s.Equal(200, run.Rolls)
	s.Equal(s.testTime, run.CreatedAt)

	s.Require().Len(run.Dice, 2)
	s.Equal(s.sixSided, run.Dice[0].Faces)
	s.Nil(run.Dice[0].Weights)
	s.Equal(map[string]float64{"6": 10}, run.Dice[1].Weights)

	s.Len(run.Outcomes, 200)
	for _, row := range run.Outcomes {
		s.Require().Len(row, 2)
		s.Contains(s.sixSided, row[0])
		s.Contains(s.sixSided, row[1])
	}

	s.Require().Len(run.Stats.FaceTotals, 6)
	cells := 0
	for _, total := range run.Stats.FaceTotals {
		cells += total.Count
	}
	s.Equal(400, cells)

	s.Equal(200, sumTallies(run.Stats.Combinations))
	s.Equal(200, sumTallies(run.Stats.Permutations))
	s.GreaterOrEqual(len(run.Stats.Permutations), len(run.Stats.Combinations))

	jackpots := 0
	for _, row := range run.Outcomes {
		if row[0] == row[1] {
			jackpots++
		}
	}
	s.Equal(jackpots, run.Stats.Jackpots)
}

func (s *SimulationServiceTestSuite) TestRunSimulation_SameSeedSameOutcomes() {
	var first, second *models.Run
	s.expectSave(&first)
	s.expectSave(&second)

	_, err := s.service.RunSimulation(s.ctx, s.runInput)
	s.Require().NoError(err)
	_, err = s.service.RunSimulation(s.ctx, s.runInput)
	s.Require().NoError(err)

	s.Equal(first.Outcomes, second.Outcomes)
	s.Equal(first.Stats, second.Stats)
}

func (s *SimulationServiceTestSuite) TestRunSimulation_SeedFromClock() {
	var saved *models.Run
	s.expectSave(&saved)

	s.runInput.Seed = 0
	_, err := s.service.RunSimulation(s.ctx, s.runInput)
	s.Require().NoError(err)
	s.Equal(s.testTime.UnixNano(), saved.Seed)
}

func (s *SimulationServiceTestSuite) TestRunSimulation_NumericFacesSortNumerically() {
	var saved *models.Run
	s.expectSave(&saved)

	_, err := s.service.RunSimulation(s.ctx, &RunSimulationInput{
		Dice: []models.DieSpec{
			{Faces: []string{"10"}},
			{Faces: []string{"2"}},
		},
		Rolls: 3,
		Seed:  1,
	})
	s.Require().NoError(err)

	s.Equal([]models.Tally{{Key: []string{"2", "10"}, Count: 3}}, saved.Stats.Combinations)
	s.Equal([]models.Tally{{Key: []string{"10", "2"}, Count: 3}}, saved.Stats.Permutations)
}

func (s *SimulationServiceTestSuite) TestRunSimulation_StringFaces() {
	var saved *models.Run
	s.expectSave(&saved)

	_, err := s.service.RunSimulation(s.ctx, &RunSimulationInput{
		Dice: []models.DieSpec{
			{Faces: []string{"H", "T"}, Weights: map[string]float64{"T": 0}},
			{Faces: []string{"H", "T"}, Weights: map[string]float64{"T": 0}},
			{Faces: []string{"H", "T"}, Weights: map[string]float64{"T": 0}},
		},
		Rolls: 10,
		Seed:  7,
	})
	s.Require().NoError(err)

	s.Equal(10, saved.Stats.Jackpots)
	s.Equal([]models.Tally{{Key: []string{"H", "H", "H"}, Count: 10}}, saved.Stats.Combinations)
	s.Equal([]models.FaceTotal{
		{Face: "H", Count: 30, Frequency: 1},
		{Face: "T", Count: 0, Frequency: 0},
	}, saved.Stats.FaceTotals)
}

func (s *SimulationServiceTestSuite) TestRunSimulation_NonCanonicalNumbersStayStrings() {
	var saved *models.Run
	s.expectSave(&saved)

	_, err := s.service.RunSimulation(s.ctx, &RunSimulationInput{
		Dice:  []models.DieSpec{{Faces: []string{"01", "1"}}},
		Rolls: 5,
		Seed:  3,
	})
	s.Require().NoError(err)
	s.Equal([]string{"01", "1"}, saved.Dice[0].Faces)
}

func (s *SimulationServiceTestSuite) TestRunSimulation_ZeroRolls() {
	var saved *models.Run
	s.expectSave(&saved)

	s.runInput.Rolls = 0
	_, err := s.service.RunSimulation(s.ctx, s.runInput)
	s.Require().NoError(err)

	s.Empty(saved.Outcomes)
	s.Equal(0, saved.Stats.Jackpots)
	s.Empty(saved.Stats.Combinations)
	for _, total := range saved.Stats.FaceTotals {
		s.Equal(0.0, total.Frequency)
	}
}

func (s *SimulationServiceTestSuite) TestRunSimulation_InvalidInput() {
	tests := []struct {
		name  string
		input *RunSimulationInput
		err   error
	}{
		{name: "nil input", input: nil, err: ErrNilInput},
		{name: "no dice", input: &RunSimulationInput{Rolls: 1}, err: ErrNoDice},
		{
			name: "too many dice",
			input: &RunSimulationInput{
				Dice:  make([]models.DieSpec, 5),
				Rolls: 1,
			},
			err: ErrTooManyDice,
		},
		{
			name:  "negative rolls",
			input: &RunSimulationInput{Dice: []models.DieSpec{{Faces: s.sixSided}}, Rolls: -1},
			err:   ErrInvalidRolls,
		},
		{
			name:  "too many rolls",
			input: &RunSimulationInput{Dice: []models.DieSpec{{Faces: s.sixSided}}, Rolls: 1001},
			err:   ErrTooManyRolls,
		},
		{
			name:  "duplicate face",
			input: &RunSimulationInput{Dice: []models.DieSpec{{Faces: []string{"1", "2", "3", "3"}}}, Rolls: 1},
			err:   dice.ErrDuplicateFace,
		},
		{
			name:  "empty die",
			input: &RunSimulationInput{Dice: []models.DieSpec{{}}, Rolls: 1},
			err:   dice.ErrInvalidInputType,
		},
		{
			name: "unknown weighted face",
			input: &RunSimulationInput{
				Dice:  []models.DieSpec{{Faces: s.sixSided, Weights: map[string]float64{"7": 2}}},
				Rolls: 1,
			},
			err: dice.ErrUnknownFace,
		},
		{
			name: "unknown non-numeric weighted face",
			input: &RunSimulationInput{
				Dice:  []models.DieSpec{{Faces: s.sixSided, Weights: map[string]float64{"six": 2}}},
				Rolls: 1,
			},
			err: dice.ErrUnknownFace,
		},
		{
			name: "all weights zero",
			input: &RunSimulationInput{
				Dice:  []models.DieSpec{{Faces: []string{"a", "b"}, Weights: map[string]float64{"a": 0, "b": 0}}},
				Rolls: 1,
			},
			err: dice.ErrInvalidWeight,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			output, err := s.service.RunSimulation(s.ctx, tt.input)
			s.ErrorIs(err, tt.err)
			s.Nil(output)
		})
	}
}

func (s *SimulationServiceTestSuite) TestRunSimulation_SaveFails() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testRunID)
	s.mockRunRepo.EXPECT().
		SaveRun(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	_, err := s.service.RunSimulation(s.ctx, s.runInput)
	s.EqualError(err, "redis down")
}

func (s *SimulationServiceTestSuite) TestRerunSimulation() {
	previous := &models.Run{
		ID:    "previous-run-id",
		Name:  "coins",
		Seed:  99,
		Rolls: 4,
		Dice: []models.DieSpec{
			{Faces: []string{"H", "T"}},
			{Faces: []string{"H", "T"}, Weights: map[string]float64{"H": 3}},
		},
	}
	s.mockRunRepo.EXPECT().
		GetRun(gomock.Any(), &runRepo.GetRunInput{RunID: "previous-run-id"}).
		Return(previous, nil)

	var saved *models.Run
	s.expectSave(&saved)

	output, err := s.service.RerunSimulation(s.ctx, &RerunSimulationInput{RunID: "previous-run-id"})
	s.Require().NoError(err)

	s.Equal(s.testRunID, output.Run.ID)
	s.Equal("coins", output.Run.Name)
	s.Equal(4, output.Run.Rolls)
	s.Equal(previous.Dice, output.Run.Dice)
	s.Equal(s.testTime.UnixNano(), output.Run.Seed)
}

func (s *SimulationServiceTestSuite) TestRerunSimulation_NotFound() {
	s.mockRunRepo.EXPECT().
		GetRun(gomock.Any(), &runRepo.GetRunInput{RunID: "missing"}).
		Return(nil, runRepo.ErrRunNotFound)

	_, err := s.service.RerunSimulation(s.ctx, &RerunSimulationInput{RunID: "missing"})
	s.ErrorIs(err, ErrRunNotFound)
}

func (s *SimulationServiceTestSuite) TestGetRun() {
	expected := &models.Run{ID: s.testRunID}
	s.mockRunRepo.EXPECT().
		GetRun(gomock.Any(), &runRepo.GetRunInput{RunID: s.testRunID}).
		Return(expected, nil)

	output, err := s.service.GetRun(s.ctx, &GetRunInput{RunID: s.testRunID})
	s.Require().NoError(err)
	s.Same(expected, output.Run)
}

func (s *SimulationServiceTestSuite) TestGetRun_NotFound() {
	s.mockRunRepo.EXPECT().
		GetRun(gomock.Any(), &runRepo.GetRunInput{RunID: s.testRunID}).
		Return(nil, runRepo.ErrRunNotFound)

	_, err := s.service.GetRun(s.ctx, &GetRunInput{RunID: s.testRunID})
	s.ErrorIs(err, ErrRunNotFound)
}

func (s *SimulationServiceTestSuite) TestListRuns_DefaultLimit() {
	runs := []*models.Run{{ID: "b"}, {ID: "a"}}
	s.mockRunRepo.EXPECT().
		ListRuns(gomock.Any(), &runRepo.ListRunsInput{Limit: 10}).
		Return(&runRepo.ListRunsOutput{Runs: runs}, nil)

	output, err := s.service.ListRuns(s.ctx, &ListRunsInput{})
	s.Require().NoError(err)
	s.Equal(runs, output.Runs)
}

func (s *SimulationServiceTestSuite) TestListRuns_Limit() {
	s.mockRunRepo.EXPECT().
		ListRuns(gomock.Any(), &runRepo.ListRunsInput{Limit: 3}).
		Return(&runRepo.ListRunsOutput{Runs: []*models.Run{}}, nil)

	output, err := s.service.ListRuns(s.ctx, &ListRunsInput{Limit: 3})
	s.Require().NoError(err)
	s.Empty(output.Runs)
}

func (s *SimulationServiceTestSuite) TestDeleteRun() {
	s.mockRunRepo.EXPECT().
		DeleteRun(gomock.Any(), &runRepo.DeleteRunInput{RunID: s.testRunID}).
		Return(nil)

	output, err := s.service.DeleteRun(s.ctx, &DeleteRunInput{RunID: s.testRunID})
	s.Require().NoError(err)
	s.True(output.Success)
}

func (s *SimulationServiceTestSuite) TestDeleteRun_NotFound() {
	s.mockRunRepo.EXPECT().
		DeleteRun(gomock.Any(), &runRepo.DeleteRunInput{RunID: s.testRunID}).
		Return(runRepo.ErrRunNotFound)

	_, err := s.service.DeleteRun(s.ctx, &DeleteRunInput{RunID: s.testRunID})
	s.ErrorIs(err, ErrRunNotFound)
}

func sumTallies(tallies []models.Tally) int {
	total := 0
	for _, t := range tallies {
		total += t.Count
	}
	return total
}
