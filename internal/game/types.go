package game

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/KirkDiggler/montecarlo/internal/dice"
)

// Form selects the shape of a shown outcome table
type Form string

const (
	// FormWide has one row per roll and one column per die
	FormWide Form = "wide"

	// FormNarrow has one row per (roll, die) pair
	FormNarrow Form = "narrow"
)

// ParseForm maps user input to a Form. An empty string means wide.
func ParseForm(s string) (Form, error) {
	switch Form(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormWide:
		return FormWide, nil
	case FormNarrow:
		return FormNarrow, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidForm, s)
	}
}

// Config holds the dice a game is played with
type Config[F cmp.Ordered] struct {
	// Dice in column order. Dice may be shared with other games.
	Dice []*dice.Die[F]
}

// Observation is one row of the narrow table
type Observation[F cmp.Ordered] struct {
	// Roll is the 0-based roll number
	Roll int

	// Die is the 0-based die position
	Die int

	// Face is the face the die showed on that roll
	Face F
}

// Table is a read-only copy of a game's outcomes
type Table[F cmp.Ordered] struct {
	// Form is the shape this table was shown in
	Form Form

	// Wide holds rows of faces, one per roll. Set for FormWide.
	Wide [][]F

	// Narrow holds one observation per (roll, die). Set for FormNarrow.
	Narrow []Observation[F]
}

// Len returns the number of rows in the table's form
func (t *Table[F]) Len() int {
	if t == nil {
		return 0
	}
	if t.Form == FormNarrow {
		return len(t.Narrow)
	}
	return len(t.Wide)
}
