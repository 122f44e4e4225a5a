package analyzer

import (
	"cmp"
	"reflect"
	"slices"
)

// Analyzer computes statistics over a game's most recent outcomes.
// Every call reads the game's current table, so a replayed game is
// reflected immediately.
type Analyzer[F cmp.Ordered] struct {
	game Game[F]
}

// New creates an analyzer for g. g is held by reference and never played
// or modified.
func New[F cmp.Ordered](g Game[F]) (*Analyzer[F], error) {
	if isNil(g) {
		return nil, ErrInvalidArgument
	}

	return &Analyzer[F]{
		game: g,
	}, nil
}

// Jackpot counts rolls where every die showed the same face
func (a *Analyzer[F]) Jackpot() int {
	jackpots := 0
	for _, row := range a.game.Outcomes() {
		if len(row) > 0 && distinct(row) == 1 {
			jackpots++
		}
	}
	return jackpots
}

// FaceCountsPerRoll counts each face within each roll. Columns cover every
// face of every die, including faces that never came up. Returns nil if the
// game has not been played.
func (a *Analyzer[F]) FaceCountsPerRoll() *FaceCounts[F] {
	outcomes := a.game.Outcomes()
	if outcomes == nil {
		return nil
	}

	faces := a.game.Faces()
	column := make(map[F]int, len(faces))
	for i, face := range faces {
		column[face] = i
	}

	rows := make([][]int, len(outcomes))
	for roll, row := range outcomes {
		counts := make([]int, len(faces))
		for _, face := range row {
			if i, ok := column[face]; ok {
				counts[i]++
			}
		}
		rows[roll] = counts
	}

	return &FaceCounts[F]{
		Faces: faces,
		Rows:  rows,
	}
}

// ComboCount counts distinct combinations: each roll's faces sorted, so
// order across dice does not matter. Returns nil if the game has not been
// played.
func (a *Analyzer[F]) ComboCount() *Frequency[F] {
	outcomes := a.game.Outcomes()
	if outcomes == nil {
		return nil
	}

	keys := make([][]F, len(outcomes))
	for i, row := range outcomes {
		key := slices.Clone(row)
		slices.Sort(key)
		keys[i] = key
	}
	return tallyRows(keys)
}

// PermutationCount counts distinct permutations: each roll's faces in die
// order. Returns nil if the game has not been played.
func (a *Analyzer[F]) PermutationCount() *Frequency[F] {
	outcomes := a.game.Outcomes()
	if outcomes == nil {
		return nil
	}

	keys := make([][]F, len(outcomes))
	for i, row := range outcomes {
		keys[i] = slices.Clone(row)
	}
	return tallyRows(keys)
}

func distinct[F cmp.Ordered](row []F) int {
	seen := make(map[F]struct{}, len(row))
	for _, face := range row {
		seen[face] = struct{}{}
	}
	return len(seen)
}

// isNil catches both a nil interface and a typed nil pointer
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
