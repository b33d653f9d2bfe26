package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/matchday-api/internal/domain/league"
)

type LeagueRepository struct {
	mu     sync.RWMutex
	items  map[string]league.League
	orders []string
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	items := make(map[string]league.League, len(leagues))
	orders := make([]string, 0, len(leagues))

	for _, l := range leagues {
		key := league.NormalizeKey(l.Key)
		if _, exists := items[key]; !exists {
			orders = append(orders, key)
		}
		l.Key = key
		items[key] = l
	}

	return &LeagueRepository{
		items:  items,
		orders: orders,
	}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, key := range r.orders {
		out = append(out, r.items[key])
	}

	return out, nil
}

func (r *LeagueRepository) GetByKey(_ context.Context, key string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[league.NormalizeKey(key)]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}
