package fetch

import (
	"context"
	"errors"
	"testing"

	"github.com/digestbot/steamdigest/internal/clients/steam"
	steamMocks "github.com/digestbot/steamdigest/internal/clients/steam/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FetchServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSteamClient *steamMocks.MockClient
	service         Service
	ctx             context.Context
}

func (s *FetchServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSteamClient = steamMocks.NewMockClient(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{
		SteamClient:       s.mockSteamClient,
		FetchAchievements: true,
		Logger:            zerolog.Nop(),
	})
	s.Require().NoError(err)
	s.service = svc
}

func TestFetchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FetchServiceTestSuite))
}

func (s *FetchServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilSteamClient)
}

func (s *FetchServiceTestSuite) TestFetchSnapshotMergesRecentActivity() {
	s.mockSteamClient.EXPECT().
		GetOwnedGames(s.ctx, &steam.GetOwnedGamesInput{SteamID: "111"}).
		Return(&steam.GetOwnedGamesOutput{Games: []steam.OwnedGame{
			{AppID: "10", Name: "Chess", PlaytimeForever: 130},
			{AppID: "12", Name: "Go", PlaytimeForever: 500},
		}}, nil)

	s.mockSteamClient.EXPECT().
		GetRecentlyPlayedGames(s.ctx, &steam.GetRecentlyPlayedGamesInput{SteamID: "111"}).
		Return(&steam.GetRecentlyPlayedGamesOutput{Games: []steam.RecentGame{
			{AppID: "10", Playtime2Weeks: 45},
		}}, nil)

	// Achievements are only requested for the recently played game
	s.mockSteamClient.EXPECT().
		GetPlayerAchievements(s.ctx, &steam.GetPlayerAchievementsInput{SteamID: "111", AppID: "10"}).
		Return(&steam.GetPlayerAchievementsOutput{Unlocked: []string{"first_win"}}, nil)

	out, err := s.service.FetchSnapshot(s.ctx, &FetchSnapshotInput{
		Users: map[string]string{"alice": "111"},
	})
	s.Require().NoError(err)

	record := out.Snapshot["alice"]
	s.Require().NotNil(record)
	s.Equal("111", record.SteamID)
	s.Require().Len(record.Games, 2)

	chess := record.Games["Chess"]
	s.Equal("10", chess.AppID)
	s.Equal(130, chess.PlaytimeForever)
	s.Equal(45, chess.Playtime2Weeks)
	s.Equal([]string{"first_win"}, chess.Achievements)

	goGame := record.Games["Go"]
	s.Equal(500, goGame.PlaytimeForever)
	s.Zero(goGame.Playtime2Weeks)
	s.Empty(goGame.Achievements)
}

func (s *FetchServiceTestSuite) TestFetchSnapshotDegradesFailedUser() {
	s.mockSteamClient.EXPECT().
		GetOwnedGames(s.ctx, &steam.GetOwnedGamesInput{SteamID: "111"}).
		Return(nil, errors.New("steam is down"))

	s.mockSteamClient.EXPECT().
		GetOwnedGames(s.ctx, &steam.GetOwnedGamesInput{SteamID: "222"}).
		Return(&steam.GetOwnedGamesOutput{Games: []steam.OwnedGame{
			{AppID: "10", Name: "Chess", PlaytimeForever: 20},
		}}, nil)

	s.mockSteamClient.EXPECT().
		GetRecentlyPlayedGames(s.ctx, &steam.GetRecentlyPlayedGamesInput{SteamID: "222"}).
		Return(&steam.GetRecentlyPlayedGamesOutput{}, nil)

	out, err := s.service.FetchSnapshot(s.ctx, &FetchSnapshotInput{
		Users: map[string]string{"alice": "111", "bob": "222"},
	})
	s.Require().NoError(err)

	// Alice degrades to an empty library, bob is intact
	s.Empty(out.Snapshot["alice"].Games)
	s.Equal("111", out.Snapshot["alice"].SteamID)
	s.Len(out.Snapshot["bob"].Games, 1)
}

func (s *FetchServiceTestSuite) TestFetchSnapshotAllUsersFailed() {
	s.mockSteamClient.EXPECT().
		GetOwnedGames(s.ctx, gomock.Any()).
		Return(nil, errors.New("steam is down")).
		Times(2)

	_, err := s.service.FetchSnapshot(s.ctx, &FetchSnapshotInput{
		Users: map[string]string{"alice": "111", "bob": "222"},
	})
	s.ErrorIs(err, ErrAllUsersFailed)
}

func (s *FetchServiceTestSuite) TestFetchSnapshotToleratesRecentGamesFailure() {
	s.mockSteamClient.EXPECT().
		GetOwnedGames(s.ctx, gomock.Any()).
		Return(&steam.GetOwnedGamesOutput{Games: []steam.OwnedGame{
			{AppID: "10", Name: "Chess", PlaytimeForever: 130},
		}}, nil)

	s.mockSteamClient.EXPECT().
		GetRecentlyPlayedGames(s.ctx, gomock.Any()).
		Return(nil, errors.New("temporary failure"))

	out, err := s.service.FetchSnapshot(s.ctx, &FetchSnapshotInput{
		Users: map[string]string{"alice": "111"},
	})
	s.Require().NoError(err)

	chess := out.Snapshot["alice"].Games["Chess"]
	s.Equal(130, chess.PlaytimeForever)
	s.Zero(chess.Playtime2Weeks)
}

func (s *FetchServiceTestSuite) TestFetchSnapshotToleratesAchievementFailure() {
	s.mockSteamClient.EXPECT().
		GetOwnedGames(s.ctx, gomock.Any()).
		Return(&steam.GetOwnedGamesOutput{Games: []steam.OwnedGame{
			{AppID: "10", Name: "Chess", PlaytimeForever: 130},
		}}, nil)

	s.mockSteamClient.EXPECT().
		GetRecentlyPlayedGames(s.ctx, gomock.Any()).
		Return(&steam.GetRecentlyPlayedGamesOutput{Games: []steam.RecentGame{
			{AppID: "10", Playtime2Weeks: 45},
		}}, nil)

	s.mockSteamClient.EXPECT().
		GetPlayerAchievements(s.ctx, gomock.Any()).
		Return(nil, errors.New("restricted profile"))

	out, err := s.service.FetchSnapshot(s.ctx, &FetchSnapshotInput{
		Users: map[string]string{"alice": "111"},
	})
	s.Require().NoError(err)
	s.Empty(out.Snapshot["alice"].Games["Chess"].Achievements)
}

func (s *FetchServiceTestSuite) TestFetchSnapshotSkipsAchievementsWhenDisabled() {
	svc, err := New(&Config{
		SteamClient:       s.mockSteamClient,
		FetchAchievements: false,
		Logger:            zerolog.Nop(),
	})
	s.Require().NoError(err)

	s.mockSteamClient.EXPECT().
		GetOwnedGames(s.ctx, gomock.Any()).
		Return(&steam.GetOwnedGamesOutput{Games: []steam.OwnedGame{
			{AppID: "10", Name: "Chess", PlaytimeForever: 130},
		}}, nil)

	s.mockSteamClient.EXPECT().
		GetRecentlyPlayedGames(s.ctx, gomock.Any()).
		Return(&steam.GetRecentlyPlayedGamesOutput{Games: []steam.RecentGame{
			{AppID: "10", Playtime2Weeks: 45},
		}}, nil)

	out, err := svc.FetchSnapshot(s.ctx, &FetchSnapshotInput{
		Users: map[string]string{"alice": "111"},
	})
	s.Require().NoError(err)
	s.Empty(out.Snapshot["alice"].Games["Chess"].Achievements)
}

func (s *FetchServiceTestSuite) TestFetchSnapshotNilInput() {
	_, err := s.service.FetchSnapshot(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *FetchServiceTestSuite) TestFetchSnapshotNoUsers() {
	out, err := s.service.FetchSnapshot(s.ctx, &FetchSnapshotInput{
		Users: map[string]string{},
	})
	s.Require().NoError(err)
	s.Empty(out.Snapshot)
}
