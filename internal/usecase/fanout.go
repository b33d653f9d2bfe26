package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/matchday-api/internal/domain/league"
)

// forEachLeague runs fn for every league on a bounded ants pool and waits
// for all of them. fn must handle its own errors.
func forEachLeague(ctx context.Context, poolSize int, leagues []league.League, fn func(ctx context.Context, idx int, l league.League)) error {
	if len(leagues) == 0 {
		return nil
	}
	if poolSize < 1 {
		poolSize = 1
	}
	if poolSize > len(leagues) {
		poolSize = len(leagues)
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, l := range leagues {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			fn(ctx, i, l)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return fmt.Errorf("submit league %s to worker pool: %w", l.Key, err)
		}
	}

	workers.Wait()
	return nil
}
