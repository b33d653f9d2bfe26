package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	basecache "github.com/riskibarqy/matchday-api/internal/platform/cache"
	usecasemock "github.com/riskibarqy/matchday-api/internal/mocks/usecase"
	"github.com/riskibarqy/matchday-api/internal/usecase"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFootballProvider_CachesLeagueRoster(t *testing.T) {
	t.Parallel()

	next := usecasemock.NewFootballProvider(t)
	query := usecase.TeamQuery{LeagueID: 119, Season: 2025}
	next.
		On("ListTeams", mock.Anything, query).
		Return([]usecase.ExternalTeam{{ID: 400, Name: "FC Copenhagen", VenueCapacity: 38065}}, nil).
		Once()

	provider := NewFootballProvider(next, basecache.NewStore(basecache.NewMemory(), time.Hour, "test:"))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := provider.ListTeams(ctx, query)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "FC Copenhagen", got[0].Name)
		require.Equal(t, 38065, got[0].VenueCapacity)
	}
}

func TestFootballProvider_SearchBypassesCache(t *testing.T) {
	t.Parallel()

	next := usecasemock.NewFootballProvider(t)
	query := usecase.TeamQuery{Search: "arsenal"}
	next.
		On("ListTeams", mock.Anything, query).
		Return([]usecase.ExternalTeam{{ID: 42, Name: "Arsenal"}}, nil).
		Twice()

	provider := NewFootballProvider(next, basecache.NewStore(nil, time.Hour, ""))
	for i := 0; i < 2; i++ {
		_, err := provider.ListTeams(context.Background(), query)
		require.NoError(t, err)
	}
}

func TestFootballProvider_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	next := usecasemock.NewFootballProvider(t)
	query := usecase.TeamQuery{LeagueID: 39, Season: 2025}
	next.
		On("ListTeams", mock.Anything, query).
		Return(nil, errors.New("upstream status 503")).
		Once()
	next.
		On("ListTeams", mock.Anything, query).
		Return([]usecase.ExternalTeam{{ID: 33, Name: "Manchester United"}}, nil).
		Once()

	provider := NewFootballProvider(next, basecache.NewStore(nil, time.Hour, ""))
	ctx := context.Background()

	_, err := provider.ListTeams(ctx, query)
	require.Error(t, err)

	got, err := provider.ListTeams(ctx, query)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestRosterKey(t *testing.T) {
	t.Parallel()

	if _, ok := rosterKey(usecase.TeamQuery{TeamID: 42}); ok {
		t.Fatal("team id lookups must not be cached")
	}
	if _, ok := rosterKey(usecase.TeamQuery{LeagueID: 39}); ok {
		t.Fatal("lookups without season must not be cached")
	}
	key, ok := rosterKey(usecase.TeamQuery{LeagueID: 39, Season: 2025})
	if !ok || key != "teams:league:39:season:2025" {
		t.Fatalf("unexpected key %q", key)
	}
}
