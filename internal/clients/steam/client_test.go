package steam

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

type SteamClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	client  Client
}

func (s *SteamClientTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))

	client, err := New(&Config{
		APIKey:  "test-key",
		BaseURL: s.server.URL,
		Logger:  zerolog.Nop(),
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *SteamClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestSteamClientTestSuite(t *testing.T) {
	suite.Run(t, new(SteamClientTestSuite))
}

func (s *SteamClientTestSuite) TestGetOwnedGames() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(ownedGamesPath, r.URL.Path)
		s.Equal("test-key", r.URL.Query().Get("key"))
		s.Equal("76561198000000001", r.URL.Query().Get("steamid"))
		s.Equal("true", r.URL.Query().Get("include_appinfo"))

		w.Write([]byte(`{"response":{"game_count":2,"games":[
			{"appid":1234,"name":"Chess","playtime_forever":130},
			{"appid":5678,"playtime_forever":0}
		]}}`))
	}

	out, err := s.client.GetOwnedGames(context.Background(), &GetOwnedGamesInput{
		SteamID: "76561198000000001",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Games, 2)

	s.Equal(OwnedGame{AppID: "1234", Name: "Chess", PlaytimeForever: 130}, out.Games[0])
	// Entries without a name fall back to the app ID
	s.Equal("App 5678", out.Games[1].Name)
}

func (s *SteamClientTestSuite) TestGetOwnedGamesEmptyLibrary() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{}}`))
	}

	out, err := s.client.GetOwnedGames(context.Background(), &GetOwnedGamesInput{
		SteamID: "76561198000000001",
	})
	s.Require().NoError(err)
	s.Empty(out.Games)
}

func (s *SteamClientTestSuite) TestGetOwnedGamesServerError() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}

	_, err := s.client.GetOwnedGames(context.Background(), &GetOwnedGamesInput{
		SteamID: "76561198000000001",
	})
	s.Error(err)
}

func (s *SteamClientTestSuite) TestGetRecentlyPlayedGames() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(recentGamesPath, r.URL.Path)

		w.Write([]byte(`{"response":{"total_count":1,"games":[
			{"appid":1234,"playtime_2weeks":45}
		]}}`))
	}

	out, err := s.client.GetRecentlyPlayedGames(context.Background(), &GetRecentlyPlayedGamesInput{
		SteamID: "76561198000000001",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Games, 1)
	s.Equal(RecentGame{AppID: "1234", Playtime2Weeks: 45}, out.Games[0])
}

func (s *SteamClientTestSuite) TestGetPlayerAchievements() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(achievementsPath, r.URL.Path)
		s.Equal("1234", r.URL.Query().Get("appid"))

		w.Write([]byte(`{"playerstats":{"success":true,"achievements":[
			{"apiname":"first_win","achieved":1},
			{"apiname":"ten_wins","achieved":0},
			{"apiname":"hundred_wins","achieved":1}
		]}}`))
	}

	out, err := s.client.GetPlayerAchievements(context.Background(), &GetPlayerAchievementsInput{
		SteamID: "76561198000000001",
		AppID:   "1234",
	})
	s.Require().NoError(err)
	s.Equal([]string{"first_win", "hundred_wins"}, out.Unlocked)
}

func (s *SteamClientTestSuite) TestGetPlayerAchievementsBadRequestMeansNone() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}

	out, err := s.client.GetPlayerAchievements(context.Background(), &GetPlayerAchievementsInput{
		SteamID: "76561198000000001",
		AppID:   "1234",
	})
	s.Require().NoError(err)
	s.Empty(out.Unlocked)
}

func (s *SteamClientTestSuite) TestGetPlayerAchievementsUnsuccessfulStats() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"playerstats":{"success":false}}`))
	}

	out, err := s.client.GetPlayerAchievements(context.Background(), &GetPlayerAchievementsInput{
		SteamID: "76561198000000001",
		AppID:   "1234",
	})
	s.Require().NoError(err)
	s.Empty(out.Unlocked)
}

func (s *SteamClientTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *SteamClientTestSuite) TestInputValidation() {
	_, err := s.client.GetOwnedGames(context.Background(), nil)
	s.Error(err)

	_, err = s.client.GetRecentlyPlayedGames(context.Background(), &GetRecentlyPlayedGamesInput{})
	s.Error(err)

	_, err = s.client.GetPlayerAchievements(context.Background(), &GetPlayerAchievementsInput{SteamID: "1"})
	s.Error(err)
}
