package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/matchday-api/internal/infrastructure/repository/memory"
	usecasemock "github.com/riskibarqy/matchday-api/internal/mocks/usecase"
	"github.com/riskibarqy/matchday-api/internal/usecase"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTeamService(provider usecase.FootballProvider) *usecase.TeamService {
	return usecase.NewTeamService(memory.NewLeagueRepository(memory.SeedLeagues()), provider, 2, nil)
}

func TestTeamService_ListAppliesPolicyAndSorts(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballProvider(t)
	provider.
		On("ListTeams", mock.Anything, usecase.TeamQuery{LeagueID: 119, Season: 2025}).
		Return([]usecase.ExternalTeam{
			{ID: 397, Name: "Brondby", VenueName: "Brøndby Stadion"},
			{ID: 400, Name: "FC Copenhagen"},
			{ID: 9999, Name: "Malmö FF"},
			{ID: 8888, Name: "Hvidovre"},
		}, nil).
		Once()

	got, err := newTeamService(provider).List(context.Background(), usecase.TeamsQuery{LeagueKey: "superliga"})
	require.NoError(t, err)

	require.Equal(t, usecase.StatusLive, got.Meta.Status)
	require.Len(t, got.Teams, 2)
	require.Equal(t, "Brondby", got.Teams[0].Name)
	require.Equal(t, "Brøndby Stadion", got.Teams[0].Venue.Name)
	require.Equal(t, "FC Copenhagen", got.Teams[1].Name)
	require.Equal(t, "Superliga", got.Teams[1].League)
}

func TestTeamService_UnknownLeague(t *testing.T) {
	t.Parallel()

	_, err := newTeamService(usecasemock.NewFootballProvider(t)).List(context.Background(), usecase.TeamsQuery{LeagueKey: "serie-a"})
	require.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestTeamService_UpstreamFailureUsesStaticRoster(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballProvider(t)
	provider.
		On("ListTeams", mock.Anything, mock.Anything).
		Return(nil, errors.New("upstream status 429")).
		Once()

	got, err := newTeamService(provider).List(context.Background(), usecase.TeamsQuery{LeagueKey: "premier", Search: "man"})
	require.NoError(t, err)

	require.Equal(t, usecase.StatusFallback, got.Meta.Status)
	require.NotEmpty(t, got.Note)
	names := make([]string, 0, len(got.Teams))
	for _, item := range got.Teams {
		names = append(names, item.Name)
	}
	require.Equal(t, []string{"Manchester City", "Manchester United"}, names)
}

func TestTeamService_ListAllLeaguesWithoutCredentials(t *testing.T) {
	t.Parallel()

	got, err := newTeamService(nil).List(context.Background(), usecase.TeamsQuery{})
	require.NoError(t, err)

	require.Equal(t, usecase.AllLeaguesKey, got.League)
	require.Equal(t, usecase.StatusDemo, got.Meta.Status)
	require.Len(t, got.Teams, 32)
	for i := 1; i < len(got.Teams); i++ {
		require.LessOrEqual(t, strings.ToLower(got.Teams[i-1].Name), strings.ToLower(got.Teams[i].Name))
	}
}

func TestTeamService_GetByID(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballProvider(t)
	provider.
		On("ListTeams", mock.Anything, usecase.TeamQuery{TeamID: 42}).
		Return([]usecase.ExternalTeam{{ID: 42, Name: "Arsenal", Founded: 1886}}, nil).
		Once()
	provider.
		On("ListTeams", mock.Anything, usecase.TeamQuery{TeamID: 7}).
		Return([]usecase.ExternalTeam{}, nil).
		Once()

	service := newTeamService(provider)

	got, err := service.Get(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, "Arsenal", got.Team.Name)
	require.Equal(t, 1886, got.Team.Founded)

	_, err = service.Get(context.Background(), 7)
	require.ErrorIs(t, err, usecase.ErrNotFound)

	_, err = service.Get(context.Background(), 0)
	require.ErrorIs(t, err, usecase.ErrInvalidInput)
}
