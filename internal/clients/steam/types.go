package steam

// GetOwnedGamesInput contains parameters for fetching a user's library
type GetOwnedGamesInput struct {
	SteamID string
}

// GetOwnedGamesOutput contains a user's complete game library
type GetOwnedGamesOutput struct {
	Games []OwnedGame
}

// OwnedGame is one library entry
type OwnedGame struct {
	// AppID is the Steam application ID
	AppID string

	// Name is the game's display name
	Name string

	// PlaytimeForever is cumulative lifetime playtime in minutes
	PlaytimeForever int
}

// GetRecentlyPlayedGamesInput contains parameters for fetching recent activity
type GetRecentlyPlayedGamesInput struct {
	SteamID string
}

// GetRecentlyPlayedGamesOutput contains games played in the last two weeks
type GetRecentlyPlayedGamesOutput struct {
	Games []RecentGame
}

// RecentGame is one recently played entry
type RecentGame struct {
	// AppID is the Steam application ID
	AppID string

	// Playtime2Weeks is playtime over the last two weeks in minutes
	Playtime2Weeks int
}

// GetPlayerAchievementsInput contains parameters for fetching achievements
type GetPlayerAchievementsInput struct {
	SteamID string
	AppID   string
}

// GetPlayerAchievementsOutput contains a user's unlocked achievements for
// one game. Games without an achievement API yield an empty list.
type GetPlayerAchievementsOutput struct {
	Unlocked []string
}

// Wire shapes for the Steam Web API JSON envelope

type ownedGamesResponse struct {
	Response struct {
		GameCount int `json:"game_count"`
		Games     []struct {
			AppID           int    `json:"appid"`
			Name            string `json:"name"`
			PlaytimeForever int    `json:"playtime_forever"`
		} `json:"games"`
	} `json:"response"`
}

type recentGamesResponse struct {
	Response struct {
		TotalCount int `json:"total_count"`
		Games      []struct {
			AppID          int `json:"appid"`
			Playtime2Weeks int `json:"playtime_2weeks"`
		} `json:"games"`
	} `json:"response"`
}

type achievementsResponse struct {
	PlayerStats struct {
		Success      bool `json:"success"`
		Achievements []struct {
			APIName  string `json:"apiname"`
			Achieved int    `json:"achieved"`
		} `json:"achievements"`
	} `json:"playerstats"`
}
