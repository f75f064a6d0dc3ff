package summary

import (
	"fmt"
	"strings"

	"github.com/digestbot/steamdigest/internal/models"
)

// buildFallbackSummary renders a deterministic Markdown digest, used when
// the LLM is unavailable or unconfigured.
func buildFallbackSummary(report *models.Report) string {
	if !report.HasActivity {
		return quietDayMessage
	}

	parts := []string{"🎮 **Daily Gaming Digest**"}

	diff := report.IndividualStats
	var activeUsers []string
	for _, username := range diff.Users {
		if diff.Stats[username].TotalMinutes > 0 {
			activeUsers = append(activeUsers, username)
		}
	}
	if len(activeUsers) > 0 {
		parts = append(parts, fmt.Sprintf("**Active Players:** %s", strings.Join(activeUsers, ", ")))
	}

	stats := report.GroupStats
	if stats.TotalGroupMinutes > 0 {
		parts = append(parts, fmt.Sprintf("**Total Group Time:** %s", formatMinutes(stats.TotalGroupMinutes)))
	}

	if stats.MostPlayedGame != nil {
		parts = append(parts, fmt.Sprintf("**Most Played:** %s", stats.MostPlayedGame.Name))
	}

	if len(stats.GamesPlayedTogether) > 0 {
		names := make([]string, 0, len(stats.GamesPlayedTogether))
		for _, game := range stats.GamesPlayedTogether {
			names = append(names, game.Name)
		}
		parts = append(parts, fmt.Sprintf("**Co-op Games:** %s", strings.Join(names, ", ")))
	}

	for _, username := range diff.Users {
		userDiff := diff.Stats[username]
		if len(userDiff.NewGames) > 0 {
			parts = append(parts, fmt.Sprintf("**%s's New Games:** %s", username, strings.Join(userDiff.NewGames, ", ")))
		}
		if len(userDiff.FirstTimePlayed) > 0 {
			parts = append(parts, fmt.Sprintf("**%s Tried for First Time:** %s", username, strings.Join(userDiff.FirstTimePlayed, ", ")))
		}
	}

	return strings.Join(parts, "\n")
}

func formatMinutes(total int) string {
	hours := total / 60
	minutes := total % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
