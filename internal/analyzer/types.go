package analyzer

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/montecarlo/internal/game"
)

// Game is what the analyzer needs from a played game. *game.Game satisfies it.
type Game[F cmp.Ordered] interface {
	// Show returns the outcome table in the requested form, nil if unplayed
	Show(form game.Form) (*game.Table[F], error)

	// Outcomes returns the wide outcome table, nil if unplayed
	Outcomes() [][]F

	// Faces returns the union of every die's faces
	Faces() []F
}

// FaceCounts holds, for every roll, how often each face came up
type FaceCounts[F cmp.Ordered] struct {
	// Faces are the columns: every face any die can show
	Faces []F

	// Rows holds one count per face for each roll
	Rows [][]int
}

// Len returns the number of rolls
func (c *FaceCounts[F]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Rows)
}

// Count returns how many times face showed on a roll
func (c *FaceCounts[F]) Count(roll int, face F) int {
	if c == nil || roll < 0 || roll >= len(c.Rows) {
		return 0
	}
	i := slices.Index(c.Faces, face)
	if i < 0 {
		return 0
	}
	return c.Rows[roll][i]
}

// Totals sums every face column across all rolls
func (c *FaceCounts[F]) Totals() []int {
	if c == nil {
		return nil
	}
	totals := make([]int, len(c.Faces))
	for _, row := range c.Rows {
		for i, n := range row {
			totals[i] += n
		}
	}
	return totals
}

// Tally is a distinct outcome key and how many rolls produced it
type Tally[F cmp.Ordered] struct {
	Key   []F
	Count int
}

// Frequency is a table of distinct outcome keys, most frequent first
type Frequency[F cmp.Ordered] struct {
	Entries []Tally[F]
}

// Len returns the number of distinct keys
func (f *Frequency[F]) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Entries)
}

// Total returns the sum of every count
func (f *Frequency[F]) Total() int {
	if f == nil {
		return 0
	}
	total := 0
	for _, e := range f.Entries {
		total += e.Count
	}
	return total
}

// Count returns the count for one key, 0 if it never occurred
func (f *Frequency[F]) Count(key ...F) int {
	if f == nil {
		return 0
	}
	for _, e := range f.Entries {
		if slices.Equal(e.Key, key) {
			return e.Count
		}
	}
	return 0
}

// tallyRows counts identical keys and orders them by count, then by key
func tallyRows[F cmp.Ordered](keys [][]F) *Frequency[F] {
	counts := make(map[string]*Tally[F])
	var order []*Tally[F]
	for _, key := range keys {
		id := keyID(key)
		t, ok := counts[id]
		if !ok {
			t = &Tally[F]{Key: key}
			counts[id] = t
			order = append(order, t)
		}
		t.Count++
	}

	entries := make([]Tally[F], len(order))
	for i, t := range order {
		entries[i] = *t
	}
	slices.SortFunc(entries, func(a, b Tally[F]) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return slices.Compare(a.Key, b.Key)
	})

	return &Frequency[F]{Entries: entries}
}

// keyID renders a key as a map key. %#v quotes strings so no two distinct
// keys collide. Faces that compare equal, like -0 and 0, share an ID.
func keyID[F cmp.Ordered](key []F) string {
	var zero F
	var b strings.Builder
	for i, v := range key {
		if i > 0 {
			b.WriteByte(',')
		}
		if v == zero {
			v = zero
		}
		fmt.Fprintf(&b, "%#v", v)
	}
	return b.String()
}
