package analyzer

import (
	"math"
	"testing"

	"github.com/KirkDiggler/montecarlo/internal/dice"
	"github.com/KirkDiggler/montecarlo/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fixedGame serves a fixed outcome table
type fixedGame struct {
	outcomes [][]int
	faces    []int
}

func (g *fixedGame) Show(form game.Form) (*game.Table[int], error) {
	if g.outcomes == nil {
		return nil, nil
	}
	return &game.Table[int]{Form: game.FormWide, Wide: g.outcomes}, nil
}

func (g *fixedGame) Outcomes() [][]int {
	return g.outcomes
}

func (g *fixedGame) Faces() []int {
	return g.faces
}

type AnalyzerTestSuite struct {
	suite.Suite

	faces []int
	die1  *dice.Die[int]
	die2  *dice.Die[int]
	game  *game.Game[int]

	analyzer        *Analyzer[int]
	jackpotAnalyzer *Analyzer[int]
	fixedAnalyzer   *Analyzer[int]
}

func (s *AnalyzerTestSuite) SetupTest() {
	s.faces = []int{1, 2, 3, 4, 5, 6}

	var err error
	s.die1, err = dice.New(&dice.Config[int]{Faces: s.faces, Seed: 21})
	s.Require().NoError(err)
	s.die2, err = dice.New(&dice.Config[int]{Faces: s.faces, Seed: 22})
	s.Require().NoError(err)

	s.game, err = game.New(&game.Config[int]{Dice: []*dice.Die[int]{s.die1, s.die2}})
	s.Require().NoError(err)
	s.Require().NoError(s.game.Play(50))

	s.analyzer, err = New[int](s.game)
	s.Require().NoError(err)

	// Two identical columns force a jackpot on every roll
	s.jackpotAnalyzer, err = New[int](&fixedGame{
		outcomes: [][]int{{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}},
		faces:    s.faces,
	})
	s.Require().NoError(err)

	s.fixedAnalyzer, err = New[int](&fixedGame{
		outcomes: [][]int{{1, 2, 2}, {2, 1, 2}, {2, 2, 1}, {3, 3, 3}, {1, 2, 2}},
		faces:    []int{1, 2, 3, 4},
	})
	s.Require().NoError(err)
}

func TestAnalyzerTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyzerTestSuite))
}

func (s *AnalyzerTestSuite) TestNew_InvalidArgument() {
	_, err := New[int](nil)
	s.ErrorIs(err, ErrInvalidArgument)

	var missing *game.Game[int]
	_, err = New[int](missing)
	s.ErrorIs(err, ErrInvalidArgument)
}

func (s *AnalyzerTestSuite) TestJackpot() {
	regular := s.analyzer.Jackpot()
	s.GreaterOrEqual(regular, 0)
	s.LessOrEqual(regular, 50)

	s.Equal(5, s.jackpotAnalyzer.Jackpot())
	s.Equal(1, s.fixedAnalyzer.Jackpot())
}

func (s *AnalyzerTestSuite) TestFaceCountsPerRoll() {
	counts := s.analyzer.FaceCountsPerRoll()
	s.Require().NotNil(counts)
	s.Equal(50, counts.Len())
	s.Equal(s.faces, counts.Faces)

	for _, row := range counts.Rows {
		sum := 0
		for _, n := range row {
			sum += n
		}
		s.Equal(2, sum)
	}
}

func (s *AnalyzerTestSuite) TestFaceCountsPerRoll_IncludesUnseenFaces() {
	counts := s.fixedAnalyzer.FaceCountsPerRoll()
	s.Require().NotNil(counts)

	s.Equal([]int{1, 2, 3, 4}, counts.Faces)
	s.Equal([]int{1, 2, 0, 0}, counts.Rows[0])
	s.Equal([]int{0, 0, 3, 0}, counts.Rows[3])
	s.Equal(2, counts.Count(1, 2))
	s.Equal(0, counts.Count(1, 4))
	s.Equal([]int{4, 8, 3, 0}, counts.Totals())
}

func (s *AnalyzerTestSuite) TestComboCount() {
	combos := s.analyzer.ComboCount()
	s.Require().NotNil(combos)
	s.Equal(50, combos.Total())

	for _, e := range combos.Entries {
		s.LessOrEqual(e.Key[0], e.Key[1])
	}
}

func (s *AnalyzerTestSuite) TestComboCount_IgnoresOrder() {
	combos := s.fixedAnalyzer.ComboCount()
	s.Require().NotNil(combos)

	s.Equal([]Tally[int]{
		{Key: []int{1, 2, 2}, Count: 4},
		{Key: []int{3, 3, 3}, Count: 1},
	}, combos.Entries)
	s.Equal(4, combos.Count(1, 2, 2))
	s.Equal(0, combos.Count(2, 2, 1))
}

func (s *AnalyzerTestSuite) TestPermutationCount() {
	perms := s.analyzer.PermutationCount()
	s.Require().NotNil(perms)
	s.Equal(50, perms.Total())
	s.GreaterOrEqual(perms.Len(), s.analyzer.ComboCount().Len())
}

func (s *AnalyzerTestSuite) TestPermutationCount_KeepsOrder() {
	perms := s.fixedAnalyzer.PermutationCount()
	s.Require().NotNil(perms)

	s.Equal([]Tally[int]{
		{Key: []int{1, 2, 2}, Count: 2},
		{Key: []int{2, 1, 2}, Count: 1},
		{Key: []int{2, 2, 1}, Count: 1},
		{Key: []int{3, 3, 3}, Count: 1},
	}, perms.Entries)
	s.Equal(5, perms.Total())
	s.Greater(perms.Len(), s.fixedAnalyzer.ComboCount().Len())
}

func (s *AnalyzerTestSuite) TestStringFaces() {
	coin, err := dice.New(&dice.Config[string]{Faces: []string{"H", "T"}, Seed: 5})
	s.Require().NoError(err)
	g, err := game.New(&game.Config[string]{Dice: []*dice.Die[string]{coin, coin, coin}})
	s.Require().NoError(err)
	s.Require().NoError(g.Play(20))

	a, err := New[string](g)
	s.Require().NoError(err)

	s.Equal(20, a.ComboCount().Total())
	s.LessOrEqual(a.ComboCount().Len(), 4)
	s.Equal(20, a.PermutationCount().Total())
	s.LessOrEqual(a.PermutationCount().Len(), 8)
	s.Equal([]string{"H", "T"}, a.FaceCountsPerRoll().Faces)
}

func (s *AnalyzerTestSuite) TestReplayIsReflected() {
	s.Require().NoError(s.game.Play(7))

	s.Equal(7, s.analyzer.FaceCountsPerRoll().Len())
	s.Equal(7, s.analyzer.ComboCount().Total())
	s.Equal(7, s.analyzer.PermutationCount().Total())
}

func (s *AnalyzerTestSuite) TestUnplayed() {
	unplayed, err := game.New(&game.Config[int]{Dice: []*dice.Die[int]{s.die1, s.die2}})
	s.Require().NoError(err)

	a, err := New[int](unplayed)
	s.Require().NoError(err)

	s.Equal(0, a.Jackpot())
	s.Nil(a.FaceCountsPerRoll())
	s.Nil(a.ComboCount())
	s.Nil(a.PermutationCount())
}

func TestTallyRows_NegativeZero(t *testing.T) {
	negZero := math.Copysign(0, -1)

	freq := tallyRows([][]float64{{0, negZero}, {negZero, 0}, {0, 0}})

	require.Equal(t, 1, freq.Len())
	assert.Equal(t, 3, freq.Count(0, 0))
	assert.Equal(t, keyID([]float64{0}), keyID([]float64{negZero}))
}
