package cache

import (
	"context"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	basecache "github.com/riskibarqy/matchday-api/internal/platform/cache"
	"github.com/riskibarqy/matchday-api/internal/usecase"
)

// FootballProvider caches league roster lookups. Fixtures, statistics and
// free-text searches always go to the wrapped provider.
type FootballProvider struct {
	next  usecase.FootballProvider
	cache *basecache.Store
}

var _ usecase.FootballProvider = (*FootballProvider)(nil)

func NewFootballProvider(next usecase.FootballProvider, cache *basecache.Store) *FootballProvider {
	return &FootballProvider{next: next, cache: cache}
}

func (p *FootballProvider) ListFixtures(ctx context.Context, query usecase.FixtureQuery) ([]usecase.ExternalFixture, error) {
	return p.next.ListFixtures(ctx, query)
}

func (p *FootballProvider) GetTeamStatistics(ctx context.Context, query usecase.TeamStatisticsQuery) (usecase.ExternalTeamStatistics, bool, error) {
	return p.next.GetTeamStatistics(ctx, query)
}

func (p *FootballProvider) ListTeams(ctx context.Context, query usecase.TeamQuery) ([]usecase.ExternalTeam, error) {
	key, ok := rosterKey(query)
	if !ok || p.cache == nil {
		return p.next.ListTeams(ctx, query)
	}

	raw, err := p.cache.GetOrLoad(ctx, key, func(ctx context.Context) ([]byte, error) {
		items, err := p.next.ListTeams(ctx, query)
		if err != nil {
			return nil, err
		}
		return sonic.Marshal(items)
	})
	if err != nil {
		return nil, err
	}

	var items []usecase.ExternalTeam
	if err := sonic.Unmarshal(raw, &items); err != nil {
		_ = p.cache.Delete(ctx, key)
		return p.next.ListTeams(ctx, query)
	}
	return items, nil
}

// rosterKey is set only for plain league/season listings.
func rosterKey(query usecase.TeamQuery) (string, bool) {
	if query.LeagueID <= 0 || query.Season <= 0 || query.TeamID > 0 || strings.TrimSpace(query.Search) != "" {
		return "", false
	}
	return "teams:league:" + strconv.FormatInt(query.LeagueID, 10) + ":season:" + strconv.Itoa(query.Season), true
}
