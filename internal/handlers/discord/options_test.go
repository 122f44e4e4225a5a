package discord

import (
	"testing"

	"github.com/KirkDiggler/montecarlo/internal/dice"
	"github.com/KirkDiggler/montecarlo/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFaces(t *testing.T) {
	faces, err := parseFaces(" 1, 2,3 ,,6 ")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "6"}, faces)

	_, err = parseFaces(" , ")
	assert.ErrorIs(t, err, dice.ErrInvalidInputType)
}

func TestParseWeights(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    map[string]float64
		wantErr error
	}{
		{name: "empty", raw: "  ", want: nil},
		{name: "pairs", raw: "6=10, 1 = 0.5", want: map[string]float64{"6": 10, "1": 0.5}},
		{name: "zero weight", raw: "tails=0", want: map[string]float64{"tails": 0}},
		{name: "missing equals", raw: "6", wantErr: dice.ErrInvalidWeight},
		{name: "missing face", raw: "=2", wantErr: dice.ErrInvalidWeight},
		{name: "not a number", raw: "6=lots", wantErr: dice.ErrInvalidWeight},
		{name: "negative", raw: "6=-1", wantErr: dice.ErrInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWeights(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdenticalDice(t *testing.T) {
	weights := map[string]float64{"6": 10}
	specs := identicalDice([]string{"1", "6"}, weights, 2)

	want := models.DieSpec{Faces: []string{"1", "6"}, Weights: map[string]float64{"6": 10}}
	assert.Equal(t, []models.DieSpec{want, want}, specs)

	specs[0].Weights["6"] = 1
	specs[0].Faces[0] = "x"
	assert.Equal(t, 10.0, specs[1].Weights["6"])
	assert.Equal(t, "1", specs[1].Faces[0])
	assert.Equal(t, 10.0, weights["6"])
}
