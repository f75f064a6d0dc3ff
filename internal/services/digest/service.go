package digest

import (
	"context"
	"sort"

	"github.com/digestbot/steamdigest/internal/common/clock"
	"github.com/digestbot/steamdigest/internal/models"
	"github.com/rs/zerolog"
)

// service implements the Service interface
type service struct {
	clock  clock.Clock
	logger zerolog.Logger
}

// New creates a new digest service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		clock:  cfg.Clock,
		logger: cfg.Logger,
	}, nil
}

// Diff computes per-user activity between two snapshots. Every user in the
// new snapshot gets an entry; users only present in the old snapshot are
// dropped, and games only present in the old record are ignored.
func (s *service) Diff(_ context.Context, input *DiffInput) (*DiffOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	diff := models.NewDailyDiff()

	// Usernames are processed in sorted order so tie-breaks downstream are
	// deterministic across runs.
	for _, username := range sortedKeys(input.New) {
		record := input.New[username]
		oldRecord, hasBaseline := input.Old[username]

		var oldGames map[string]*models.GameRecord
		if hasBaseline {
			oldGames = oldRecord.Games
		}

		diff.Add(username, s.diffUser(username, record, oldGames, hasBaseline))
	}

	return &DiffOutput{Diff: diff}, nil
}

func (s *service) diffUser(username string, record *models.UserRecord, oldGames map[string]*models.GameRecord, hasBaseline bool) *models.UserDiff {
	userDiff := models.NewUserDiff()
	if record == nil {
		return userDiff
	}

	for _, gameName := range sortedKeys(record.Games) {
		game := record.Games[gameName]

		var oldPlaytime int
		var oldAchievements []string
		oldGame, hadGame := oldGames[gameName]
		if hadGame {
			oldPlaytime = oldGame.PlaytimeForever
			oldAchievements = oldGame.Achievements
		}

		var delta int
		if hasBaseline {
			delta = game.PlaytimeForever - oldPlaytime
		} else {
			// No prior snapshot for this user: recent activity stands in
			// for "played since last run". Lifetime playtime is never a
			// delta, so no two-week signal means no activity.
			delta = game.Playtime2Weeks
		}

		if delta < 0 {
			// Lifetime playtime went backwards, likely an upstream counter
			// reset. Treat as no activity.
			s.logger.Debug().
				Str("user", username).
				Str("game", gameName).
				Int("delta", delta).
				Msg("Negative playtime delta clamped to zero")
			delta = 0
		}

		if delta > 0 {
			userDiff.Played[gameName] = delta
			userDiff.TotalMinutes += delta
			userDiff.GamesPlayed++

			if unlocked := newAchievements(game.Achievements, oldAchievements); len(unlocked) > 0 {
				userDiff.Achievements[gameName] = unlocked
			}

			// The game existed before but had never been played
			if hadGame && oldPlaytime == 0 {
				userDiff.FirstTimePlayed = append(userDiff.FirstTimePlayed, gameName)
			}
		}

		// New ownership is tracked regardless of whether it was played
		if !hadGame {
			userDiff.NewGames = append(userDiff.NewGames, gameName)
		}
	}

	return userDiff
}

// Aggregate reduces a daily diff into group-wide statistics. An empty diff
// yields zeroed totals with no most/longest entries.
func (s *service) Aggregate(_ context.Context, input *AggregateInput) (*AggregateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Diff == nil {
		return nil, ErrNilDiff
	}

	stats := &models.GroupStats{
		GamesPlayedTogether: []*models.GameRollup{},
		NewGamesDiscovered:  []string{},
	}

	rollups := make(map[string]*models.GameRollup)
	var rollupOrder []string
	newGames := make(map[string]struct{})

	mostActiveMinutes := -1
	var longest *models.Session

	for _, username := range input.Diff.Users {
		userDiff := input.Diff.Stats[username]

		stats.TotalGroupMinutes += userDiff.TotalMinutes
		if userDiff.TotalMinutes > mostActiveMinutes {
			mostActiveMinutes = userDiff.TotalMinutes
			stats.MostActivePlayer = username
		}

		for _, gameName := range sortedKeys(userDiff.Played) {
			minutes := userDiff.Played[gameName]

			rollup, ok := rollups[gameName]
			if !ok {
				rollup = &models.GameRollup{Name: gameName}
				rollups[gameName] = rollup
				rollupOrder = append(rollupOrder, gameName)
			}
			rollup.Players = append(rollup.Players, username)
			rollup.TotalMinutes += minutes

			if longest == nil || minutes > longest.Minutes {
				longest = &models.Session{
					Player:  username,
					Game:    gameName,
					Minutes: minutes,
				}
			}
		}

		for _, unlocked := range userDiff.Achievements {
			stats.TotalAchievements += len(unlocked)
		}

		for _, gameName := range userDiff.NewGames {
			newGames[gameName] = struct{}{}
		}
	}

	for _, gameName := range rollupOrder {
		rollup := rollups[gameName]

		if stats.MostPlayedGame == nil || rollup.TotalMinutes > stats.MostPlayedGame.TotalMinutes {
			stats.MostPlayedGame = rollup
		}

		if len(rollup.Players) > 1 {
			stats.GamesPlayedTogether = append(stats.GamesPlayedTogether, rollup)
		}
	}

	stats.LongestSession = longest

	for gameName := range newGames {
		stats.NewGamesDiscovered = append(stats.NewGamesDiscovered, gameName)
	}
	sort.Strings(stats.NewGamesDiscovered)

	return &AggregateOutput{Stats: stats}, nil
}

// BuildReport composes Diff and Aggregate and stamps the result
func (s *service) BuildReport(ctx context.Context, input *BuildReportInput) (*BuildReportOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	diffOut, err := s.Diff(ctx, &DiffInput{Old: input.Old, New: input.New})
	if err != nil {
		return nil, err
	}

	aggOut, err := s.Aggregate(ctx, &AggregateInput{Diff: diffOut.Diff})
	if err != nil {
		return nil, err
	}

	hasActivity := false
	for _, username := range diffOut.Diff.Users {
		if diffOut.Diff.Stats[username].TotalMinutes > 0 {
			hasActivity = true
			break
		}
	}

	return &BuildReportOutput{
		Report: &models.Report{
			IndividualStats: diffOut.Diff,
			GroupStats:      aggOut.Stats,
			HasActivity:     hasActivity,
			GeneratedAt:     s.clock.Now(),
		},
	}, nil
}

// newAchievements returns the identifiers present in current but not in
// old, sorted. No ordering is assumed on either side.
func newAchievements(current, old []string) []string {
	if len(current) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(old))
	for _, id := range old {
		seen[id] = struct{}{}
	}

	var unlocked []string
	for _, id := range current {
		if _, ok := seen[id]; !ok {
			unlocked = append(unlocked, id)
		}
	}
	sort.Strings(unlocked)

	return unlocked
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
