package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/montecarlo/internal/common/uuid"
	"github.com/KirkDiggler/montecarlo/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const maxTallyRows = 10

var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorMuted   = lipgloss.Color("#6B7280")

	titleStyle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// renderRun prints a run's summary and statistics, plus up to outcomes rows
// of the outcome table
func renderRun(run *models.Run, outcomes int) string {
	title := run.Name
	if title == "" {
		title = "Run"
	}

	sections := []string{
		titleStyle.Render(title),
		mutedStyle.Render(fmt.Sprintf("id %s • seed %d • %s", run.ID, run.Seed, run.CreatedAt.Format("2006-01-02 15:04:05 MST"))),
		fmt.Sprintf("%d dice × %d rolls, %s jackpots", len(run.Dice), run.Rolls, percent(run.Stats.Jackpots, run.Rolls)),
		sectionStyle.Render("Dice"),
		diceTable(run.Dice).Render(),
	}

	if len(run.Stats.FaceTotals) > 0 {
		sections = append(sections, sectionStyle.Render("Face Frequencies"), faceTable(run.Stats.FaceTotals).Render())
	}

	if len(run.Stats.Combinations) > 0 {
		sections = append(sections, sectionStyle.Render("Combinations"), tallyTable(run.Stats.Combinations, run.Rolls).Render())
	}

	if len(run.Stats.Permutations) > 0 {
		sections = append(sections, sectionStyle.Render("Permutations"), tallyTable(run.Stats.Permutations, run.Rolls).Render())
	}

	if outcomes > 0 && len(run.Outcomes) > 0 {
		sections = append(sections, sectionStyle.Render("Outcomes"), outcomeTable(run.Outcomes, outcomes).Render())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHistory prints one row per run
func renderHistory(runs []*models.Run) string {
	if len(runs) == 0 {
		return mutedStyle.Render("no runs yet")
	}

	t := newTable("ID", "Name", "Dice", "Rolls", "Jackpots", "Created")
	for _, run := range runs {
		t.Row(
			uuid.Short(run.ID),
			run.Name,
			strconv.Itoa(len(run.Dice)),
			strconv.Itoa(run.Rolls),
			percent(run.Stats.Jackpots, run.Rolls),
			run.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return t.Render()
}

func diceTable(specs []models.DieSpec) *table.Table {
	t := newTable("#", "Faces", "Weights")
	for i, spec := range specs {
		var weights []string
		for _, face := range slices.Sorted(maps.Keys(spec.Weights)) {
			weights = append(weights, face+"="+strconv.FormatFloat(spec.Weights[face], 'f', -1, 64))
		}
		t.Row(strconv.Itoa(i+1), strings.Join(spec.Faces, " "), strings.Join(weights, " "))
	}
	return t
}

func faceTable(totals []models.FaceTotal) *table.Table {
	t := newTable("Face", "Count", "Frequency")
	for _, ft := range totals {
		t.Row(ft.Face, strconv.Itoa(ft.Count), fmt.Sprintf("%.4f", ft.Frequency))
	}
	return t
}

func tallyTable(tallies []models.Tally, rolls int) *table.Table {
	t := newTable("Outcome", "Count", "Share")
	for i, tally := range tallies {
		if i == maxTallyRows {
			t.Row(fmt.Sprintf("… %d more", len(tallies)-maxTallyRows), "", "")
			break
		}
		t.Row("("+strings.Join(tally.Key, ", ")+")", strconv.Itoa(tally.Count), share(tally.Count, rolls))
	}
	return t
}

func outcomeTable(outcomes [][]string, limit int) *table.Table {
	headers := []string{"Roll"}
	for i := range outcomes[0] {
		headers = append(headers, fmt.Sprintf("Die %d", i+1))
	}

	t := newTable(headers...)
	for i, row := range outcomes {
		if i == limit {
			break
		}
		t.Row(append([]string{strconv.Itoa(i + 1)}, row...)...)
	}
	return t
}

func percent(n, total int) string {
	if total == 0 {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%d (%s)", n, share(n, total))
}

func share(n, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", 100*float64(n)/float64(total))
}
