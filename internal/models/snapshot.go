package models

// Snapshot is a complete point-in-time record of every tracked user's
// owned games and playtime, keyed by username.
type Snapshot map[string]*UserRecord

// UserRecord holds one user's library state within a snapshot
type UserRecord struct {
	// SteamID is the user's 64-bit Steam identifier
	SteamID string `json:"steam_id"`

	// Games maps game name to its per-game stats
	Games map[string]*GameRecord `json:"games"`
}

// GameRecord holds the tracked stats for a single game
type GameRecord struct {
	// AppID is the Steam application ID for the game
	AppID string `json:"app_id"`

	// PlaytimeForever is cumulative lifetime playtime in minutes
	PlaytimeForever int `json:"playtime_forever"`

	// Playtime2Weeks is playtime over the last two weeks in minutes
	Playtime2Weeks int `json:"playtime_2weeks,omitempty"`

	// Achievements contains the identifiers unlocked as of this snapshot
	Achievements []string `json:"achievements,omitempty"`
}

// NewUserRecord creates a user record with an initialized game map
func NewUserRecord(steamID string) *UserRecord {
	return &UserRecord{
		SteamID: steamID,
		Games:   make(map[string]*GameRecord),
	}
}

// NewGameRecord creates a game record with optional fields zeroed
func NewGameRecord(appID string, playtimeForever int) *GameRecord {
	return &GameRecord{
		AppID:           appID,
		PlaytimeForever: playtimeForever,
	}
}
