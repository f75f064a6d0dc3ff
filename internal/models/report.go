package models

import "time"

// UserDiff captures one user's activity between two snapshots
type UserDiff struct {
	// Played maps game name to minutes played since the last run
	Played map[string]int `json:"played"`

	// Achievements maps game name to achievements unlocked since the last run
	Achievements map[string][]string `json:"achievements,omitempty"`

	// TotalMinutes is the sum of Played across all games
	TotalMinutes int `json:"total_minutes"`

	// NewGames lists games absent from the previous snapshot
	NewGames []string `json:"new_games"`

	// FirstTimePlayed lists games that had zero playtime in the previous
	// snapshot and were played this run
	FirstTimePlayed []string `json:"first_time_played"`

	// GamesPlayed is the number of distinct games with positive playtime
	GamesPlayed int `json:"games_played"`
}

// NewUserDiff creates a user diff with initialized maps
func NewUserDiff() *UserDiff {
	return &UserDiff{
		Played:          make(map[string]int),
		Achievements:    make(map[string][]string),
		NewGames:        []string{},
		FirstTimePlayed: []string{},
	}
}

// DailyDiff is the per-user activity computed between two snapshots.
// Users records insertion order so tie-breaks stay deterministic.
type DailyDiff struct {
	// Users lists usernames in the order they were processed
	Users []string `json:"users"`

	// Stats maps username to that user's diff
	Stats map[string]*UserDiff `json:"stats"`
}

// NewDailyDiff creates an empty daily diff
func NewDailyDiff() *DailyDiff {
	return &DailyDiff{
		Users: []string{},
		Stats: make(map[string]*UserDiff),
	}
}

// Add appends a user's diff, preserving insertion order
func (d *DailyDiff) Add(username string, diff *UserDiff) {
	if _, ok := d.Stats[username]; !ok {
		d.Users = append(d.Users, username)
	}
	d.Stats[username] = diff
}

// GameRollup accumulates a game's activity across all users
type GameRollup struct {
	// Name is the game name
	Name string `json:"name"`

	// Players lists users who played the game, in first-seen order
	Players []string `json:"players"`

	// TotalMinutes is the summed playtime delta across all players
	TotalMinutes int `json:"total_minutes"`
}

// Session is a single user's playtime in a single game this run
type Session struct {
	// Player is the username
	Player string `json:"player"`

	// Game is the game name
	Game string `json:"game"`

	// Minutes is the playtime delta
	Minutes int `json:"minutes"`
}

// GroupStats holds the group-wide statistics reduced from a daily diff
type GroupStats struct {
	// TotalGroupMinutes is the sum of every user's total minutes
	TotalGroupMinutes int `json:"total_group_minutes"`

	// MostActivePlayer is the username with the most minutes, empty when
	// the diff had no users
	MostActivePlayer string `json:"most_active_player,omitempty"`

	// MostPlayedGame is the game with the highest rolled-up minutes
	MostPlayedGame *GameRollup `json:"most_played_game,omitempty"`

	// GamesPlayedTogether lists games touched by two or more users
	GamesPlayedTogether []*GameRollup `json:"games_played_together"`

	// LongestSession is the single largest (user, game) playtime delta
	LongestSession *Session `json:"longest_session,omitempty"`

	// TotalAchievements counts achievements unlocked across all users
	TotalAchievements int `json:"total_achievements"`

	// NewGamesDiscovered is the union of every user's new games
	NewGamesDiscovered []string `json:"new_games_discovered"`
}

// Report is the complete activity report consumed by the summarizer
type Report struct {
	// IndividualStats is the per-user diff
	IndividualStats *DailyDiff `json:"individual_stats"`

	// GroupStats is the group-wide reduction
	GroupStats *GroupStats `json:"group_stats"`

	// HasActivity is true when at least one user has positive minutes
	HasActivity bool `json:"has_activity"`

	// GeneratedAt is when the report was built
	GeneratedAt time.Time `json:"generated_at"`
}
