package game

import (
	"cmp"
	"fmt"

	"github.com/KirkDiggler/montecarlo/internal/dice"
)

// Game rolls an ordered set of dice together and keeps the outcomes of the
// most recent play
type Game[F cmp.Ordered] struct {
	dice     []*dice.Die[F]
	outcomes [][]F
}

// New creates a game over the given dice
func New[F cmp.Ordered](cfg *Config[F]) (*Game[F], error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	dd := make([]*dice.Die[F], len(cfg.Dice))
	for i, d := range cfg.Dice {
		if d == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilDie, i)
		}
		dd[i] = d
	}

	return &Game[F]{
		dice: dd,
	}, nil
}

// Play rolls every die once per roll, n times, replacing any previous
// outcomes. On error the previous outcomes are kept.
func (g *Game[F]) Play(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRollCount, n)
	}

	outcomes := make([][]F, n)
	for roll := range outcomes {
		row := make([]F, len(g.dice))
		for i, d := range g.dice {
			faces, err := d.Roll(1)
			if err != nil {
				return fmt.Errorf("failed to roll die %d: %w", i, err)
			}
			row[i] = faces[0]
		}
		outcomes[roll] = row
	}

	g.outcomes = outcomes
	return nil
}

// Show returns a copy of the outcomes in the requested form, or nil if the
// game has not been played
func (g *Game[F]) Show(form Form) (*Table[F], error) {
	if form != FormWide && form != FormNarrow {
		return nil, fmt.Errorf("%w: %q", ErrInvalidForm, form)
	}

	if g.outcomes == nil {
		return nil, nil
	}

	if form == FormWide {
		return &Table[F]{
			Form: FormWide,
			Wide: g.Outcomes(),
		}, nil
	}

	narrow := make([]Observation[F], 0, len(g.outcomes)*len(g.dice))
	for roll, row := range g.outcomes {
		for die, face := range row {
			narrow = append(narrow, Observation[F]{
				Roll: roll,
				Die:  die,
				Face: face,
			})
		}
	}

	return &Table[F]{
		Form:   FormNarrow,
		Narrow: narrow,
	}, nil
}

// Outcomes returns a deep copy of the wide outcome table, or nil if the game
// has not been played
func (g *Game[F]) Outcomes() [][]F {
	if g.outcomes == nil {
		return nil
	}

	out := make([][]F, len(g.outcomes))
	for i, row := range g.outcomes {
		out[i] = make([]F, len(row))
		copy(out[i], row)
	}
	return out
}

// Played reports whether Play has succeeded at least once
func (g *Game[F]) Played() bool {
	return g.outcomes != nil
}

// Dice returns the game's dice in column order
func (g *Game[F]) Dice() []*dice.Die[F] {
	out := make([]*dice.Die[F], len(g.dice))
	copy(out, g.dice)
	return out
}

// Faces returns the union of every die's faces in first-seen order
func (g *Game[F]) Faces() []F {
	seen := make(map[F]struct{})
	var out []F
	for _, d := range g.dice {
		for _, face := range d.Faces() {
			if _, ok := seen[face]; ok {
				continue
			}
			seen[face] = struct{}{}
			out = append(out, face)
		}
	}
	return out
}
