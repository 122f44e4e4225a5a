// Package experiment loads simulation experiments from YAML files.
//
// An experiment names the dice to roll and how many times:
//
//	name: loaded pair
//	rolls: 10000
//	seed: 42
//	dice:
//	  - faces: [1, 2, 3, 4, 5, 6]
//	    count: 2
//	    weights:
//	      - face: 6
//	        weight: 10
//
// Faces are either all numbers or all strings. Weights accept numbers or
// numeric strings.
package experiment

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"

	"github.com/KirkDiggler/montecarlo/internal/dice"
	"github.com/KirkDiggler/montecarlo/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrInvalidExperiment is returned when an experiment file is structurally wrong
var ErrInvalidExperiment = errors.New("invalid experiment")

// MaxDice caps the number of dice an experiment expands to
const MaxDice = 1000

// Experiment is a parsed experiment file
type Experiment struct {
	Name  string
	Rolls int
	Seed  int64

	// Dice holds one entry per die, with count already expanded
	Dice []models.DieSpec
}

type experimentFile struct {
	Name  string     `yaml:"name"`
	Rolls int        `yaml:"rolls"`
	Seed  int64      `yaml:"seed"`
	Dice  []dieEntry `yaml:"dice"`
}

type dieEntry struct {
	Faces   any           `yaml:"faces"`
	Count   *int          `yaml:"count"`
	Weights []weightEntry `yaml:"weights"`
}

type weightEntry struct {
	Face   any `yaml:"face"`
	Weight any `yaml:"weight"`
}

// Load reads and parses an experiment file
func Load(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read experiment: %w", err)
	}
	return Parse(data)
}

// Parse parses an experiment document
func Parse(data []byte) (*Experiment, error) {
	var file experimentFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExperiment, err)
	}

	if file.Rolls < 0 {
		return nil, fmt.Errorf("%w: rolls cannot be negative", ErrInvalidExperiment)
	}

	if len(file.Dice) == 0 {
		return nil, fmt.Errorf("%w: at least one die is required", ErrInvalidExperiment)
	}

	exp := &Experiment{
		Name:  file.Name,
		Rolls: file.Rolls,
		Seed:  file.Seed,
	}

	for i, entry := range file.Dice {
		spec, err := parseDie(entry)
		if err != nil {
			return nil, fmt.Errorf("die %d: %w", i, err)
		}

		count := 1
		if entry.Count != nil {
			count = *entry.Count
		}
		if count < 1 {
			return nil, fmt.Errorf("%w: die %d count must be at least 1", ErrInvalidExperiment, i)
		}
		if count > MaxDice-len(exp.Dice) {
			return nil, fmt.Errorf("%w: more than %d dice", ErrInvalidExperiment, MaxDice)
		}

		for range count {
			exp.Dice = append(exp.Dice, models.DieSpec{
				Faces:   slices.Clone(spec.Faces),
				Weights: maps.Clone(spec.Weights),
			})
		}
	}

	return exp, nil
}

func parseDie(entry dieEntry) (models.DieSpec, error) {
	faces, err := faceLabels(entry.Faces)
	if err != nil {
		return models.DieSpec{}, err
	}

	spec := models.DieSpec{Faces: faces}
	for _, w := range entry.Weights {
		label, err := faceLabel(w.Face)
		if err != nil {
			return models.DieSpec{}, fmt.Errorf("%w: %v", dice.ErrUnknownFace, w.Face)
		}

		weight, err := dice.ParseWeight(w.Weight)
		if err != nil {
			return models.DieSpec{}, fmt.Errorf("face %s: %w", label, err)
		}

		if spec.Weights == nil {
			spec.Weights = make(map[string]float64)
		}
		spec.Weights[label] = weight
	}

	return spec, nil
}

// faceLabels accepts a sequence of numbers or a sequence of strings
func faceLabels(raw any) ([]string, error) {
	numbers, err := dice.FacesOf[float64](raw)
	if err == nil {
		labels := make([]string, len(numbers))
		for i, n := range numbers {
			labels[i] = formatNumber(n)
		}
		return labels, nil
	}

	labels, stringErr := dice.FacesOf[string](raw)
	if stringErr == nil {
		return labels, nil
	}

	// Report the numeric error; it names the first offending element
	return nil, err
}

func faceLabel(raw any) (string, error) {
	labels, err := faceLabels([]any{raw})
	if err != nil {
		return "", err
	}
	return labels[0], nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
