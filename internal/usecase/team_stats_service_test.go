package usecase_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/riskibarqy/matchday-api/internal/infrastructure/repository/memory"
	usecasemock "github.com/riskibarqy/matchday-api/internal/mocks/usecase"
	"github.com/riskibarqy/matchday-api/internal/usecase"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStatsService(provider usecase.FootballProvider) *usecase.TeamStatsService {
	repo := memory.NewLeagueRepository(memory.SeedLeagues())
	generator := usecase.NewFallbackGenerator(rand.New(rand.NewPCG(5, 6)), 8)
	return usecase.NewTeamStatsService(repo, provider, generator, nil)
}

func goals(v int) *int { return &v }

func playedFixture(id int64, daysAgo int, homeID int64, home string, awayID int64, away string, hg, ag int) usecase.ExternalFixture {
	kickoff := fixedNow.AddDate(0, 0, -daysAgo)
	return usecase.ExternalFixture{
		ID:           id,
		Date:         kickoff.Format(time.RFC3339),
		KickoffAt:    kickoff,
		Status:       "FT",
		HomeTeamID:   homeID,
		HomeTeamName: home,
		AwayTeamID:   awayID,
		AwayTeamName: away,
		HomeGoals:    goals(hg),
		AwayGoals:    goals(ag),
	}
}

func TestTeamStatsService_RequiresTeam(t *testing.T) {
	t.Parallel()

	service := newStatsService(usecasemock.NewFootballProvider(t))
	_, err := service.Lookup(context.Background(), usecase.TeamStatsQuery{LeagueKey: "premier"})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamStatsService_UnknownLeague(t *testing.T) {
	t.Parallel()

	service := newStatsService(usecasemock.NewFootballProvider(t))
	_, err := service.Lookup(context.Background(), usecase.TeamStatsQuery{TeamName: "Arsenal", LeagueKey: "laliga"})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamStatsService_TeamNotFound(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballProvider(t)
	provider.
		On("ListTeams", mock.Anything, usecase.TeamQuery{Search: "Atlantis FC"}).
		Return([]usecase.ExternalTeam{}, nil).
		Once()

	service := newStatsService(provider)
	_, err := service.Lookup(context.Background(), usecase.TeamStatsQuery{TeamName: "Atlantis FC"})
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamStatsService_LiveStatsAndForm(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballProvider(t)
	provider.
		On("ListTeams", mock.Anything, usecase.TeamQuery{Search: "arsenal"}).
		Return([]usecase.ExternalTeam{
			{ID: 1, Name: "Arsenal Tula"},
			{ID: 42, Name: "Arsenal", Logo: "https://media.api-sports.io/football/teams/42.png"},
		}, nil).
		Once()
	provider.
		On("GetTeamStatistics", mock.Anything, usecase.TeamStatisticsQuery{LeagueID: 39, Season: 2025, TeamID: 1}).
		Return(usecase.ExternalTeamStatistics{
			GoalsFor:   goals(18),
			Played:     goals(8),
			Wins:       goals(6),
			Possession: "58%",
		}, true, nil).
		Once()
	provider.
		On("ListFixtures", mock.Anything, usecase.FixtureQuery{TeamID: 1, Last: 5}).
		Return([]usecase.ExternalFixture{
			playedFixture(10, 3, 1, "Arsenal Tula", 2, "Spartak", 2, 0),
			playedFixture(11, 10, 3, "Zenit", 1, "Arsenal Tula", 1, 1),
			playedFixture(12, 17, 1, "Arsenal Tula", 4, "CSKA", 0, 1),
			{ID: 13, Status: "NS", HomeTeamID: 1, AwayTeamID: 5},
		}, nil).
		Once()

	service := newStatsService(provider)
	got, err := service.Lookup(context.Background(), usecase.TeamStatsQuery{TeamName: "arsenal"})
	require.NoError(t, err)

	require.Equal(t, int64(1), got.Team.ID, "first candidate containing the query wins")
	require.Equal(t, usecase.StatusLive, got.Meta.Status)
	require.True(t, got.Meta.StatsFound)
	require.NotNil(t, got.Stats)
	require.Equal(t, 18, got.Stats.GoalsFor)
	require.Equal(t, 0, got.Stats.GoalsAgainst)
	require.Equal(t, 58, got.Stats.Possession)

	require.Len(t, got.LastMatches, 3)
	require.Equal(t, 3, got.Meta.MatchesFound)
	require.Equal(t, "LDW", got.Form.String(), "form is oldest to newest")
	require.Equal(t, "CSKA", got.LastMatches[0].Opponent)
	require.Equal(t, "0-1", got.LastMatches[0].Score)
}

func TestTeamStatsService_StatisticsEmpty(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballProvider(t)
	provider.
		On("ListTeams", mock.Anything, usecase.TeamQuery{TeamID: 400}).
		Return([]usecase.ExternalTeam{{ID: 400, Name: "FC København"}}, nil).
		Once()
	provider.
		On("GetTeamStatistics", mock.Anything, mock.Anything).
		Return(usecase.ExternalTeamStatistics{}, false, nil).
		Once()
	provider.
		On("ListFixtures", mock.Anything, mock.Anything).
		Return([]usecase.ExternalFixture{}, nil).
		Once()

	service := newStatsService(provider)
	got, err := service.Lookup(context.Background(), usecase.TeamStatsQuery{TeamID: 400, LeagueKey: "superliga"})
	require.NoError(t, err)

	require.Nil(t, got.Stats)
	require.Equal(t, "Live statistics not available - may require upgraded API plan", got.Message)
	require.False(t, got.Meta.StatsFound)
	require.Equal(t, int64(119), got.Meta.LeagueID)
	require.Equal(t, "FC København", got.Team.Name)
	require.Empty(t, got.Form)
}

func TestTeamStatsService_SeasonFormWhenRecentFixturesFail(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballProvider(t)
	provider.
		On("ListTeams", mock.Anything, usecase.TeamQuery{TeamID: 42}).
		Return([]usecase.ExternalTeam{{ID: 42, Name: "Arsenal"}}, nil).
		Once()
	provider.
		On("GetTeamStatistics", mock.Anything, mock.Anything).
		Return(usecase.ExternalTeamStatistics{Played: goals(8), Form: "WWDLLWDW"}, true, nil).
		Once()
	provider.
		On("ListFixtures", mock.Anything, mock.Anything).
		Return(nil, errors.New("upstream status 503")).
		Once()

	service := newStatsService(provider)
	got, err := service.Lookup(context.Background(), usecase.TeamStatsQuery{TeamID: 42})
	require.NoError(t, err)

	require.Equal(t, usecase.StatusLive, got.Meta.Status)
	require.True(t, got.Meta.StatsFound)
	require.Empty(t, got.LastMatches)
	require.Equal(t, "LLWDW", got.Form.String())
	require.Len(t, got.Meta.UpstreamErrors, 1)
}

func TestTeamStatsService_StatisticsFailureServesFallback(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballProvider(t)
	provider.
		On("ListTeams", mock.Anything, mock.Anything).
		Return([]usecase.ExternalTeam{{ID: 42, Name: "Arsenal"}}, nil).
		Once()
	provider.
		On("GetTeamStatistics", mock.Anything, mock.Anything).
		Return(usecase.ExternalTeamStatistics{}, false, errors.New("upstream status 503")).
		Once()
	provider.
		On("ListFixtures", mock.Anything, mock.Anything).
		Return(nil, errors.New("upstream status 503")).
		Once()

	service := newStatsService(provider)
	got, err := service.Lookup(context.Background(), usecase.TeamStatsQuery{TeamName: "Arsenal"})
	require.NoError(t, err)

	require.Equal(t, usecase.StatusFallback, got.Meta.Status)
	require.NotEmpty(t, got.Note)
	require.NotNil(t, got.Stats)
	require.Equal(t, 20, got.Stats.MatchesPlayed)
	require.Len(t, got.Form, 5)
	require.Len(t, got.Meta.UpstreamErrors, 2)
}

func TestTeamStatsService_SearchFailureServesSyntheticPayload(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballProvider(t)
	provider.
		On("ListTeams", mock.Anything, mock.Anything).
		Return(nil, errors.New("dial tcp: timeout")).
		Once()

	service := newStatsService(provider)
	got, err := service.Lookup(context.Background(), usecase.TeamStatsQuery{TeamName: "Liverpool"})
	require.NoError(t, err)

	require.Equal(t, usecase.StatusFallback, got.Meta.Status)
	require.Equal(t, "Liverpool", got.Team.Name)
	require.NotEmpty(t, got.Note)
	require.NotEmpty(t, got.Error)
	require.NotNil(t, got.Stats)
	provider.AssertNotCalled(t, "GetTeamStatistics", mock.Anything, mock.Anything)
}

func TestTeamStatsService_NoCredentials(t *testing.T) {
	t.Parallel()

	service := newStatsService(nil)
	got, err := service.Lookup(context.Background(), usecase.TeamStatsQuery{TeamName: "Chelsea"})
	require.NoError(t, err)

	require.Equal(t, usecase.StatusDemo, got.Meta.Status)
	require.NotEmpty(t, got.Note)
	require.Equal(t, "premier", got.League.Key)
	require.NotNil(t, got.Stats)
}
