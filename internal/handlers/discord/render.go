package discord

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/montecarlo/internal/common/uuid"
	"github.com/KirkDiggler/montecarlo/internal/models"
	"github.com/bwmarrin/discordgo"
)

const (
	// ButtonRerunPrefix starts the custom ID of a Roll Again button; the run ID follows
	ButtonRerunPrefix = "rerun:"

	// Discord rejects embed field values longer than this
	maxFieldLength = 1024

	maxFaceLines  = 12
	maxTallyLines = 5
)

// renderRun builds the embed for a finished run
func renderRun(run *models.Run, title, message string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Dice",
			Value:  truncate(describeDice(run.Dice)),
			Inline: false,
		},
		{
			Name:   "Rolls",
			Value:  strconv.Itoa(run.Rolls),
			Inline: true,
		},
		{
			Name:   "Jackpots",
			Value:  formatJackpots(run.Stats.Jackpots, run.Rolls),
			Inline: true,
		},
	}

	if lines := faceLines(run.Stats.FaceTotals); lines != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Face Frequencies",
			Value: truncate(lines),
		})
	}

	if lines := tallyLines(run.Stats.Combinations, run.Rolls); lines != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Top Combinations",
			Value: truncate(lines),
		})
	}

	if lines := tallyLines(run.Stats.Permutations, run.Rolls); lines != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Top Permutations",
			Value: truncate(lines),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       colorSuccess,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("run %s • seed %d", uuid.Short(run.ID), run.Seed),
		},
	}
}

// renderHistory builds the embed listing recent runs
func renderHistory(runs []*models.Run) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Recent Runs",
		Color: colorInfo,
	}

	if len(runs) == 0 {
		embed.Description = "No runs yet. Try `/montecarlo roll`."
		return embed
	}

	var sb strings.Builder
	for _, run := range runs {
		name := run.Name
		if name == "" {
			name = fmt.Sprintf("%d dice", len(run.Dice))
		}
		fmt.Fprintf(&sb, "`%s` **%s** • %d rolls • %s jackpots • <t:%d:R>\n",
			uuid.Short(run.ID), name, run.Rolls, formatJackpots(run.Stats.Jackpots, run.Rolls), run.CreatedAt.Unix())
	}
	embed.Description = sb.String()
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: "Use /montecarlo show id:<run> for details",
	}

	return embed
}

// rerunButton offers to roll a stored run's dice again
func rerunButton(runID string) discordgo.Button {
	return discordgo.Button{
		Label:    "Roll Again",
		Style:    discordgo.PrimaryButton,
		CustomID: ButtonRerunPrefix + runID,
		Emoji: &discordgo.ComponentEmoji{
			Name: "🎲",
		},
	}
}

// describeDice collapses consecutive identical dice into one line
func describeDice(specs []models.DieSpec) string {
	var lines []string
	for i := 0; i < len(specs); {
		j := i + 1
		for j < len(specs) && sameDie(specs[i], specs[j]) {
			j++
		}
		line := describeDie(specs[i])
		if n := j - i; n > 1 {
			line = fmt.Sprintf("%d × %s", n, line)
		}
		lines = append(lines, line)
		i = j
	}
	return strings.Join(lines, "\n")
}

func describeDie(spec models.DieSpec) string {
	line := "[" + strings.Join(spec.Faces, ", ") + "]"
	if len(spec.Weights) == 0 {
		return line
	}

	var weights []string
	for _, face := range slices.Sorted(maps.Keys(spec.Weights)) {
		weights = append(weights, face+"="+strconv.FormatFloat(spec.Weights[face], 'f', -1, 64))
	}
	return line + " weighted " + strings.Join(weights, ", ")
}

func sameDie(a, b models.DieSpec) bool {
	return slices.Equal(a.Faces, b.Faces) && maps.Equal(a.Weights, b.Weights)
}

func formatJackpots(jackpots, rolls int) string {
	if rolls == 0 {
		return strconv.Itoa(jackpots)
	}
	return fmt.Sprintf("%d (%.2f%%)", jackpots, 100*float64(jackpots)/float64(rolls))
}

func faceLines(totals []models.FaceTotal) string {
	var sb strings.Builder
	for i, ft := range totals {
		if i == maxFaceLines {
			fmt.Fprintf(&sb, "…and %d more", len(totals)-maxFaceLines)
			break
		}
		fmt.Fprintf(&sb, "`%s` %d (%.2f%%)\n", ft.Face, ft.Count, 100*ft.Frequency)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func tallyLines(tallies []models.Tally, rolls int) string {
	var sb strings.Builder
	for i, t := range tallies {
		if i == maxTallyLines {
			break
		}
		fmt.Fprintf(&sb, "`(%s)` × %d", strings.Join(t.Key, ", "), t.Count)
		if rolls > 0 {
			fmt.Fprintf(&sb, " (%.2f%%)", 100*float64(t.Count)/float64(rolls))
		}
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func truncate(s string) string {
	if len(s) <= maxFieldLength {
		return s
	}
	cut := maxFieldLength - len("…")
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
