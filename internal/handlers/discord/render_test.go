package discord

import (
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/montecarlo/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRun() *models.Run {
	return &models.Run{
		ID:    "0b9d4f4e-3f59-4a8e-9a59-3f9d0c2d8e11",
		Seed:  42,
		Rolls: 200,
		Dice: []models.DieSpec{
			{Faces: []string{"1", "2", "3"}, Weights: map[string]float64{"3": 4}},
			{Faces: []string{"1", "2", "3"}, Weights: map[string]float64{"3": 4}},
			{Faces: []string{"H", "T"}},
		},
		Stats: models.RunStats{
			Jackpots: 10,
			FaceTotals: []models.FaceTotal{
				{Face: "1", Count: 50, Frequency: 0.25},
				{Face: "2", Count: 150, Frequency: 0.75},
			},
			Combinations: []models.Tally{
				{Key: []string{"1", "2"}, Count: 120},
				{Key: []string{"2", "2"}, Count: 80},
			},
		},
		CreatedAt: time.Unix(1700000000, 0).UTC(),
	}
}

func TestRenderRun(t *testing.T) {
	embed := renderRun(testRun(), "Loaded", "Suspiciously lucky.")

	assert.Equal(t, "Loaded", embed.Title)
	assert.Equal(t, "Suspiciously lucky.", embed.Description)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "run 0b9d4f4e • seed 42", embed.Footer.Text)

	values := make(map[string]string)
	for _, f := range embed.Fields {
		values[f.Name] = f.Value
	}

	assert.Equal(t, "2 × [1, 2, 3] weighted 3=4\n[H, T]", values["Dice"])
	assert.Equal(t, "200", values["Rolls"])
	assert.Equal(t, "10 (5.00%)", values["Jackpots"])
	assert.Equal(t, "`1` 50 (25.00%)\n`2` 150 (75.00%)", values["Face Frequencies"])
	assert.Equal(t, "`(1, 2)` × 120 (60.00%)\n`(2, 2)` × 80 (40.00%)", values["Top Combinations"])

	_, ok := values["Top Permutations"]
	assert.False(t, ok, "empty sections are left out")
}

func TestRenderRun_ZeroRolls(t *testing.T) {
	run := &models.Run{ID: "not-a-uuid", Dice: []models.DieSpec{{Faces: []string{"a"}}}}

	embed := renderRun(run, "t", "m")
	assert.Equal(t, "run not-a-uuid • seed 0", embed.Footer.Text)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "0", embed.Fields[2].Value)
}

func TestRenderHistory(t *testing.T) {
	empty := renderHistory(nil)
	assert.Contains(t, empty.Description, "No runs yet")

	named := testRun()
	named.Name = "loaded"
	embed := renderHistory([]*models.Run{named, testRun()})

	lines := strings.Split(strings.TrimSpace(embed.Description), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "`0b9d4f4e` **loaded** • 200 rolls • 10 (5.00%) jackpots • <t:1700000000:R>", lines[0])
	assert.Contains(t, lines[1], "**3 dice**")
}

func TestRerunButton(t *testing.T) {
	button := rerunButton("abc")
	assert.Equal(t, "rerun:abc", button.CustomID)
	assert.Equal(t, "Roll Again", button.Label)
}

func TestFaceLines_Truncated(t *testing.T) {
	var totals []models.FaceTotal
	for range maxFaceLines + 3 {
		totals = append(totals, models.FaceTotal{Face: "x", Count: 1})
	}

	lines := strings.Split(faceLines(totals), "\n")
	assert.Len(t, lines, maxFaceLines+1)
	assert.Equal(t, "…and 3 more", lines[maxFaceLines])
}

func TestTallyLines_Limit(t *testing.T) {
	var tallies []models.Tally
	for range maxTallyLines + 2 {
		tallies = append(tallies, models.Tally{Key: []string{"a"}, Count: 1})
	}

	assert.Len(t, strings.Split(tallyLines(tallies, 0), "\n"), maxTallyLines)
	assert.Equal(t, "`(a)` × 1", strings.Split(tallyLines(tallies, 0), "\n")[0])
}

func TestTruncate(t *testing.T) {
	short := "hello"
	assert.Equal(t, short, truncate(short))

	long := strings.Repeat("é", maxFieldLength)
	got := truncate(long)
	assert.LessOrEqual(t, len(got), maxFieldLength)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.True(t, strings.HasPrefix(got, "éé"))
}
