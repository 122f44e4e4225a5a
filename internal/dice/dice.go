package dice

import (
	"cmp"
	"fmt"
	"math"
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/montecarlo/internal/dice Source

// Source provides the uniform random numbers a die draws from.
// *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a number in [0.0, 1.0)
	Float64() float64
}

// Config for a die
type Config[F cmp.Ordered] struct {
	// Faces are the distinct values the die can show, in display order
	Faces []F

	// Optional random source; takes precedence over Seed
	Source Source

	// Optional seed for testing
	Seed int64
}

// FaceWeight pairs a face with its current weight
type FaceWeight[F cmp.Ordered] struct {
	Face   F
	Weight float64
}

// Die is a weighted die with an arbitrary set of faces.
// A Die is not safe for concurrent use.
type Die[F cmp.Ordered] struct {
	faces   []F
	weights []float64
	index   map[F]int
	random  Source
}

// New creates a die with every face weighted 1.0
func New[F cmp.Ordered](cfg *Config[F]) (*Die[F], error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config cannot be nil", ErrInvalidInputType)
	}

	if len(cfg.Faces) == 0 {
		return nil, fmt.Errorf("%w: at least one face is required", ErrInvalidInputType)
	}

	faces := make([]F, len(cfg.Faces))
	weights := make([]float64, len(cfg.Faces))
	index := make(map[F]int, len(cfg.Faces))
	for i, face := range cfg.Faces {
		// NaN never equals itself so it can't be looked up again
		if face != face {
			return nil, fmt.Errorf("%w: face %d is NaN", ErrInvalidInputType, i)
		}
		if _, ok := index[face]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateFace, face)
		}
		index[face] = i
		faces[i] = face
		weights[i] = 1.0
	}

	random := cfg.Source
	if random == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		random = rand.New(rand.NewSource(seed))
	}

	return &Die[F]{
		faces:   faces,
		weights: weights,
		index:   index,
		random:  random,
	}, nil
}

// SetWeight replaces the weight of a single face
func (d *Die[F]) SetWeight(face F, weight float64) error {
	i, ok := d.index[face]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownFace, face)
	}

	if err := validateWeight(weight); err != nil {
		return err
	}

	d.weights[i] = weight
	return nil
}

// SetWeightValue is SetWeight for untyped input such as decoded config or
// user text. Numeric strings are accepted.
func (d *Die[F]) SetWeightValue(face F, weight any) error {
	if _, ok := d.index[face]; !ok {
		return fmt.Errorf("%w: %v", ErrUnknownFace, face)
	}

	w, err := ParseWeight(weight)
	if err != nil {
		return err
	}

	return d.SetWeight(face, w)
}

// Roll draws n faces with replacement, each with probability proportional
// to its weight at the time of the call
func (d *Die[F]) Roll(n int) ([]F, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRollCount, n)
	}

	cumulative := make([]float64, len(d.weights))
	total := 0.0
	for i, w := range d.weights {
		total += w
		cumulative[i] = total
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: weights sum to %v", ErrInvalidWeight, total)
	}

	results := make([]F, n)
	for i := range results {
		results[i] = d.faces[d.pick(cumulative, total)]
	}

	return results, nil
}

// pick returns the index of the first cumulative weight above a uniform
// point in [0, total)
func (d *Die[F]) pick(cumulative []float64, total float64) int {
	target := d.random.Float64() * total

	last := 0
	for i, c := range cumulative {
		if d.weights[i] == 0 {
			continue
		}
		if target < c {
			return i
		}
		last = i
	}

	// Only reachable through float rounding at the very top of the range
	return last
}

// Show returns a copy of the face weights in face order
func (d *Die[F]) Show() []FaceWeight[F] {
	out := make([]FaceWeight[F], len(d.faces))
	for i, face := range d.faces {
		out[i] = FaceWeight[F]{Face: face, Weight: d.weights[i]}
	}
	return out
}

// Faces returns a copy of the die's faces in order
func (d *Die[F]) Faces() []F {
	out := make([]F, len(d.faces))
	copy(out, d.faces)
	return out
}

// Weight returns the current weight for a face
func (d *Die[F]) Weight(face F) (float64, bool) {
	i, ok := d.index[face]
	if !ok {
		return 0, false
	}
	return d.weights[i], true
}

// Len returns the number of faces
func (d *Die[F]) Len() int {
	return len(d.faces)
}

// Has reports whether face belongs to the die
func (d *Die[F]) Has(face F) bool {
	_, ok := d.index[face]
	return ok
}
