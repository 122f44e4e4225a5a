package simulation

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/montecarlo/internal/analyzer"
	"github.com/KirkDiggler/montecarlo/internal/dice"
	"github.com/KirkDiggler/montecarlo/internal/game"
	"github.com/KirkDiggler/montecarlo/internal/models"
)

// result is what a simulation produces before it becomes a run
type result struct {
	dice     []models.DieSpec
	outcomes [][]string
	stats    models.RunStats
}

// faceCodec converts between stored face labels and typed faces
type faceCodec[F cmp.Ordered] struct {
	parse  func(string) (F, error)
	format func(F) string
}

var stringFaces = faceCodec[string]{
	parse:  func(s string) (string, error) { return s, nil },
	format: func(s string) string { return s },
}

var numericFaces = faceCodec[float64]{
	parse: func(s string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	},
	format: formatNumber,
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// allNumeric reports whether every face label is a number written in its
// canonical form, so numeric faces survive a round trip unchanged
func allNumeric(specs []models.DieSpec) bool {
	for _, spec := range specs {
		for _, face := range spec.Faces {
			f, err := strconv.ParseFloat(face, 64)
			if err != nil || formatNumber(f) != face {
				return false
			}
		}
	}
	return true
}

// simulate plays the dice and analyzes the outcomes
func simulate[F cmp.Ordered](specs []models.DieSpec, codec faceCodec[F], rolls int, source dice.Source) (*result, error) {
	dd := make([]*dice.Die[F], len(specs))
	for i, spec := range specs {
		d, err := buildDie(spec, codec, source)
		if err != nil {
			return nil, fmt.Errorf("die %d: %w", i, err)
		}
		dd[i] = d
	}

	g, err := game.New(&game.Config[F]{Dice: dd})
	if err != nil {
		return nil, err
	}

	if err := g.Play(rolls); err != nil {
		return nil, err
	}

	a, err := analyzer.New[F](g)
	if err != nil {
		return nil, err
	}

	table, err := g.Show(game.FormWide)
	if err != nil {
		return nil, err
	}

	outcomes := make([][]string, len(table.Wide))
	for i, row := range table.Wide {
		outcomes[i] = formatKey(row, codec)
	}

	return &result{
		dice:     describeDice(dd, codec),
		outcomes: outcomes,
		stats: models.RunStats{
			Jackpots:     a.Jackpot(),
			FaceTotals:   faceTotals(a.FaceCountsPerRoll(), len(dd), codec),
			Combinations: tallies(a.ComboCount(), codec),
			Permutations: tallies(a.PermutationCount(), codec),
		},
	}, nil
}

func buildDie[F cmp.Ordered](spec models.DieSpec, codec faceCodec[F], source dice.Source) (*dice.Die[F], error) {
	faces := make([]F, len(spec.Faces))
	for i, label := range spec.Faces {
		face, err := codec.parse(label)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", dice.ErrInvalidInputType, label)
		}
		faces[i] = face
	}

	d, err := dice.New(&dice.Config[F]{Faces: faces, Source: source})
	if err != nil {
		return nil, err
	}

	for label, weight := range spec.Weights {
		face, err := codec.parse(label)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", dice.ErrUnknownFace, label)
		}
		if err := d.SetWeight(face, weight); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// describeDice records faces and every weight that isn't the default
func describeDice[F cmp.Ordered](dd []*dice.Die[F], codec faceCodec[F]) []models.DieSpec {
	specs := make([]models.DieSpec, len(dd))
	for i, d := range dd {
		spec := models.DieSpec{}
		for _, fw := range d.Show() {
			label := codec.format(fw.Face)
			spec.Faces = append(spec.Faces, label)
			if fw.Weight != 1.0 {
				if spec.Weights == nil {
					spec.Weights = make(map[string]float64)
				}
				spec.Weights[label] = fw.Weight
			}
		}
		specs[i] = spec
	}
	return specs
}

func faceTotals[F cmp.Ordered](counts *analyzer.FaceCounts[F], nDice int, codec faceCodec[F]) []models.FaceTotal {
	if counts == nil {
		return nil
	}

	cells := counts.Len() * nDice
	totals := counts.Totals()
	out := make([]models.FaceTotal, len(counts.Faces))
	for i, face := range counts.Faces {
		out[i] = models.FaceTotal{
			Face:  codec.format(face),
			Count: totals[i],
		}
		if cells > 0 {
			out[i].Frequency = float64(totals[i]) / float64(cells)
		}
	}
	return out
}

func tallies[F cmp.Ordered](freq *analyzer.Frequency[F], codec faceCodec[F]) []models.Tally {
	if freq == nil {
		return nil
	}

	out := make([]models.Tally, len(freq.Entries))
	for i, e := range freq.Entries {
		out[i] = models.Tally{
			Key:   formatKey(e.Key, codec),
			Count: e.Count,
		}
	}
	return out
}

func formatKey[F cmp.Ordered](key []F, codec faceCodec[F]) []string {
	out := make([]string, len(key))
	for i, face := range key {
		out[i] = codec.format(face)
	}
	return out
}
