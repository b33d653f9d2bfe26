package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/matchday-api/internal/domain/fixture"
	"github.com/riskibarqy/matchday-api/internal/domain/league"
	"github.com/riskibarqy/matchday-api/internal/platform/logging"
)

const (
	DefaultWindowDays = 30
	MaxWindowDays     = 365
	AllLeaguesKey     = "all"

	defaultTargetCount = 5
	defaultMaxResults  = 10

	messageDemoMode        = "Demo mode: API credentials not configured"
	messageNoFixtures      = "No upcoming fixtures found"
	noteSyntheticRoster    = "Synthetic fixtures generated from the static roster"
	noteSyntheticFallback  = "Live fixtures unavailable; showing generated fixtures"
	noteNoDemoForLeague    = "No demo fixtures available for this league"
	noteAllLeaguesLiveOnly = "Synthetic fixtures are not generated when listing all leagues"
)

// ResolveStatus labels where a payload came from.
type ResolveStatus string

const (
	StatusLive     ResolveStatus = "live"
	StatusFallback ResolveStatus = "fallback"
	StatusDemo     ResolveStatus = "demo"
	StatusEmpty    ResolveStatus = "empty"
)

func (s ResolveStatus) Synthetic() bool {
	return s == StatusFallback || s == StatusDemo
}

type ResolveMeta struct {
	Status         ResolveStatus
	Attempts       int
	UpstreamErrors []string
	SeasonsTried   []int
}

type MatchesResult struct {
	League     string
	LeagueName string
	Days       int
	Matches    []fixture.Match
	Message    string
	Note       string
	Meta       ResolveMeta
}

type FixtureResolverConfig struct {
	TargetCount    int
	MaxResults     int
	NextCount      int
	WorkerPoolSize int
	Now            func() time.Time
}

// FixtureResolver finds upcoming fixtures for a league by walking the
// season and query-shape ladder, and synthesizes fixtures when nothing
// usable comes back.
type FixtureResolver struct {
	leagues   league.Repository
	provider  FootballProvider
	generator *FallbackGenerator
	cfg       FixtureResolverConfig
	logger    *logging.Logger
}

// NewFixtureResolver builds a resolver. provider may be nil when upstream
// credentials are missing.
func NewFixtureResolver(
	leagues league.Repository,
	provider FootballProvider,
	generator *FallbackGenerator,
	cfg FixtureResolverConfig,
	logger *logging.Logger,
) *FixtureResolver {
	if cfg.TargetCount < 1 {
		cfg.TargetCount = defaultTargetCount
	}
	if cfg.MaxResults < 1 {
		cfg.MaxResults = defaultMaxResults
	}
	if cfg.NextCount < 1 {
		cfg.NextCount = defaultNextFixtures
	}
	if cfg.WorkerPoolSize < 1 {
		cfg.WorkerPoolSize = 1
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if generator == nil {
		generator = NewFallbackGenerator(nil, 0)
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &FixtureResolver{
		leagues:   leagues,
		provider:  provider,
		generator: generator,
		cfg:       cfg,
		logger:    logger,
	}
}

// Resolve returns upcoming matches for one league. Only an unknown league
// or an out-of-range window is reported as an error; upstream problems end
// up in the result metadata.
func (r *FixtureResolver) Resolve(ctx context.Context, leagueKey string, days int) (MatchesResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureResolver.Resolve")
	defer span.End()

	if err := validateWindow(days); err != nil {
		return MatchesResult{}, err
	}

	l, err := lookupLeague(ctx, r.leagues, leagueKey)
	if err != nil {
		return MatchesResult{}, err
	}

	return r.resolveLeague(ctx, l, days, true), nil
}

// ResolveAll resolves every configured league concurrently and merges the
// live results in kickoff order.
func (r *FixtureResolver) ResolveAll(ctx context.Context, days int) (MatchesResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureResolver.ResolveAll")
	defer span.End()

	if err := validateWindow(days); err != nil {
		return MatchesResult{}, err
	}

	leagues, err := r.leagues.List(ctx)
	if err != nil {
		return MatchesResult{}, fmt.Errorf("list leagues: %w", err)
	}

	results := make([]MatchesResult, len(leagues))
	err = forEachLeague(ctx, r.cfg.WorkerPoolSize, leagues, func(ctx context.Context, idx int, l league.League) {
		results[idx] = r.resolveLeague(ctx, l, days, false)
	})
	if err != nil {
		return MatchesResult{}, err
	}

	merged := MatchesResult{
		League:     AllLeaguesKey,
		LeagueName: "All leagues",
		Days:       days,
		Matches:    make([]fixture.Match, 0),
		Meta:       ResolveMeta{Status: StatusEmpty},
	}
	seasons := make(map[int]struct{})
	for i, res := range results {
		merged.Matches = append(merged.Matches, res.Matches...)
		merged.Meta.Attempts += res.Meta.Attempts
		for _, upstreamErr := range res.Meta.UpstreamErrors {
			merged.Meta.UpstreamErrors = append(merged.Meta.UpstreamErrors, leagues[i].Key+": "+upstreamErr)
		}
		for _, season := range res.Meta.SeasonsTried {
			if _, ok := seasons[season]; !ok {
				seasons[season] = struct{}{}
				merged.Meta.SeasonsTried = append(merged.Meta.SeasonsTried, season)
			}
		}
	}
	sort.Ints(merged.Meta.SeasonsTried)
	sortByKickoff(merged.Matches)

	switch {
	case r.provider == nil:
		merged.Meta.Status = StatusDemo
		merged.Message = messageDemoMode
		merged.Note = noteAllLeaguesLiveOnly
	case len(merged.Matches) > 0:
		merged.Meta.Status = StatusLive
	default:
		merged.Message = messageNoFixtures
	}

	return merged, nil
}

func (r *FixtureResolver) resolveLeague(ctx context.Context, l league.League, days int, allowSynthetic bool) MatchesResult {
	now := r.cfg.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	result := MatchesResult{
		League:     l.Key,
		LeagueName: l.Name,
		Days:       days,
		Matches:    make([]fixture.Match, 0),
	}

	if r.provider == nil {
		result.Meta.Status = StatusDemo
		result.Message = messageDemoMode
		if !allowSynthetic {
			return result
		}
		if l.FallbackEligible {
			result.Matches = r.generator.Fixtures(l, l.Roster, now)
			result.Note = noteSyntheticRoster
		} else {
			result.Note = noteNoDemoForLeague
		}
		return result
	}

	valid, upstreamDown := r.runAttempts(ctx, l, today, days, &result.Meta)
	if len(valid) > 0 {
		result.Meta.Status = StatusLive
		for _, f := range valid {
			result.Matches = append(result.Matches, FormatMatch(f, today))
		}
		return result
	}

	if !allowSynthetic || !l.FallbackEligible {
		result.Meta.Status = StatusEmpty
		result.Message = messageNoFixtures
		return result
	}

	result.Meta.Status = StatusFallback
	result.Message = messageNoFixtures
	result.Note = noteSyntheticFallback
	roster := l.Roster
	if !upstreamDown {
		roster = r.fallbackRoster(ctx, l, &result.Meta)
	}
	result.Matches = r.generator.Fixtures(l, roster, now)
	r.logger.InfoContext(ctx, "serving synthetic fixtures",
		"league", l.Key,
		"attempts", result.Meta.Attempts,
		"count", len(result.Matches),
	)
	return result
}

// runAttempts walks the attempt ladder until the accumulated valid set
// reaches the target size. The result is deduplicated by fixture id and
// capped at MaxResults. The ladder stops early, reporting upstreamDown, once
// the provider marks itself unavailable.
func (r *FixtureResolver) runAttempts(ctx context.Context, l league.League, today time.Time, days int, meta *ResolveMeta) (valid []ExternalFixture, upstreamDown bool) {
	from := today
	to := today.AddDate(0, 0, days)

	seen := make(map[int64]struct{})
	seasonSeen := make(map[int]struct{})
	valid = make([]ExternalFixture, 0, r.cfg.MaxResults)

	for _, a := range buildAttempts(l, today) {
		if ctx.Err() != nil {
			meta.UpstreamErrors = append(meta.UpstreamErrors, ctx.Err().Error())
			break
		}

		meta.Attempts++
		if _, ok := seasonSeen[a.season]; !ok {
			seasonSeen[a.season] = struct{}{}
			meta.SeasonsTried = append(meta.SeasonsTried, a.season)
		}

		fixtures, err := r.provider.ListFixtures(ctx, a.query(l, from, to, r.cfg.NextCount))
		if err != nil {
			meta.UpstreamErrors = append(meta.UpstreamErrors, a.String()+": "+err.Error())
			r.logger.WarnContext(ctx, "fixture attempt failed",
				"league", l.Key,
				"season", a.season,
				"shape", string(a.shape),
				"error", err,
			)
			if isDependencyUnavailable(err) {
				upstreamDown = true
				break
			}
			continue
		}

		accepted := 0
		for _, f := range fixtures {
			if !isValidFixture(l, f, today, days) {
				continue
			}
			if _, dup := seen[f.ID]; dup {
				continue
			}
			seen[f.ID] = struct{}{}
			valid = append(valid, f)
			accepted++
		}
		r.logger.DebugContext(ctx, "fixture attempt finished",
			"league", l.Key,
			"season", a.season,
			"shape", string(a.shape),
			"returned", len(fixtures),
			"accepted", accepted,
		)

		if len(valid) >= r.cfg.TargetCount {
			break
		}
	}

	if len(valid) > r.cfg.MaxResults {
		valid = valid[:r.cfg.MaxResults]
	}
	return valid, upstreamDown
}

// fallbackRoster prefers the live league roster filtered by the membership
// policy and falls back to the static roster.
func (r *FixtureResolver) fallbackRoster(ctx context.Context, l league.League, meta *ResolveMeta) []string {
	teams, err := r.provider.ListTeams(ctx, TeamQuery{LeagueID: l.ID, Season: l.Season})
	if err != nil {
		meta.UpstreamErrors = append(meta.UpstreamErrors, "roster: "+err.Error())
		return l.Roster
	}

	names := make([]string, 0, len(teams))
	for _, t := range teams {
		if t.Name == "" || !l.Policy.AdmitsTeam(t.Name) {
			continue
		}
		names = append(names, t.Name)
	}
	if len(distinctNames(names)) < 2 {
		return l.Roster
	}
	return names
}

func validateWindow(days int) error {
	if days < 0 || days > MaxWindowDays {
		return fmt.Errorf("%w: days must be between 0 and %d", ErrInvalidInput, MaxWindowDays)
	}
	return nil
}

func lookupLeague(ctx context.Context, repo league.Repository, key string) (league.League, error) {
	key = league.NormalizeKey(key)
	if key == "" {
		return league.League{}, fmt.Errorf("%w: league is required", ErrInvalidInput)
	}

	l, exists, err := repo.GetByKey(ctx, key)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: unknown league %q", ErrInvalidInput, key)
	}
	return l, nil
}

func sortByKickoff(matches []fixture.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i].KickoffAt, matches[j].KickoffAt
		if a.IsZero() != b.IsZero() {
			return b.IsZero()
		}
		return a.Before(b)
	})
}
