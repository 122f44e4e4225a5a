package discord

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/KirkDiggler/montecarlo/internal/dice"
	"github.com/KirkDiggler/montecarlo/internal/models"
)

// parseFaces splits a comma separated face list, dropping blanks
func parseFaces(raw string) ([]string, error) {
	var faces []string
	for _, part := range strings.Split(raw, ",") {
		face := strings.TrimSpace(part)
		if face == "" {
			continue
		}
		faces = append(faces, face)
	}

	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: no faces in %q", dice.ErrInvalidInputType, raw)
	}
	return faces, nil
}

// parseWeights reads "face=weight" pairs, e.g. "6=10, 1=0.5"
func parseWeights(raw string) (map[string]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	weights := make(map[string]float64)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		face, value, ok := strings.Cut(part, "=")
		face = strings.TrimSpace(face)
		if !ok || face == "" {
			return nil, fmt.Errorf("%w: expected face=weight, got %q", dice.ErrInvalidWeight, part)
		}

		weight, err := dice.ParseWeight(value)
		if err != nil {
			return nil, fmt.Errorf("face %s: %w", face, err)
		}
		weights[face] = weight
	}
	return weights, nil
}

// identicalDice builds count dice that share one face list and weighting
func identicalDice(faces []string, weights map[string]float64, count int) []models.DieSpec {
	specs := make([]models.DieSpec, count)
	for i := range specs {
		specs[i] = models.DieSpec{
			Faces:   slices.Clone(faces),
			Weights: maps.Clone(weights),
		}
	}
	return specs
}
