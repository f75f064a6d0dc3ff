package summary

import (
	"fmt"
	"strings"

	"github.com/digestbot/steamdigest/internal/models"
)

// summaryPromptLimit bounds how much of the text summary is echoed into
// the image prompt
const summaryPromptLimit = 400

// buildImagePrompt composes an image prompt from the day's highlights and
// the already-generated text summary.
func buildImagePrompt(summary string, report *models.Report) string {
	var sb strings.Builder
	sb.WriteString("A vibrant cartoon illustration celebrating a group of friends' daily gaming session. ")

	stats := report.GroupStats
	if stats.MostPlayedGame != nil {
		fmt.Fprintf(&sb, "The scene centers on the game %q. ", stats.MostPlayedGame.Name)
	}

	if len(stats.GamesPlayedTogether) > 0 {
		names := make([]string, 0, len(stats.GamesPlayedTogether))
		for _, rollup := range stats.GamesPlayedTogether {
			names = append(names, rollup.Name)
		}
		fmt.Fprintf(&sb, "Friends are shown playing together: %s. ", strings.Join(names, ", "))
	}

	var active int
	for _, username := range report.IndividualStats.Users {
		if report.IndividualStats.Stats[username].TotalMinutes > 0 {
			active++
		}
	}
	if active > 0 {
		fmt.Fprintf(&sb, "%d players were active. ", active)
	}

	if summary != "" {
		runes := []rune(summary)
		if len(runes) > summaryPromptLimit {
			runes = runes[:summaryPromptLimit]
		}
		fmt.Fprintf(&sb, "Capture the mood of this recap: %s ", string(runes))
	}

	sb.WriteString("Colorful, energetic, playful style. No text, letters or logos in the image.")

	return sb.String()
}
