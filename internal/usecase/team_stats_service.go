package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/matchday-api/internal/domain/league"
	"github.com/riskibarqy/matchday-api/internal/domain/teamstats"
	"github.com/riskibarqy/matchday-api/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

const (
	DefaultStatsLeague = "premier"

	recentFixturesLimit     = 5
	messageStatsUnavailable = "Live statistics not available - may require upgraded API plan"
	noteSyntheticStats      = "Statistics are generated and do not reflect real results"
)

type TeamStatsQuery struct {
	TeamName  string
	TeamID    int64
	LeagueKey string
}

type TeamRef struct {
	ID   int64
	Name string
	Logo string
}

type TeamStatsMeta struct {
	Status         ResolveStatus
	LeagueID       int64
	Season         int
	StatsFound     bool
	MatchesFound   int
	UpstreamErrors []string
}

type TeamStatsResult struct {
	Team        TeamRef
	League      league.League
	Stats       *teamstats.Stats
	LastMatches []teamstats.LastMatch
	Form        teamstats.Form
	Error       string
	Message     string
	Note        string
	Meta        TeamStatsMeta
}

// TeamStatsService resolves a team and gathers its season statistics and
// recent form.
type TeamStatsService struct {
	leagues   league.Repository
	provider  FootballProvider
	generator *FallbackGenerator
	logger    *logging.Logger
}

func NewTeamStatsService(leagues league.Repository, provider FootballProvider, generator *FallbackGenerator, logger *logging.Logger) *TeamStatsService {
	if generator == nil {
		generator = NewFallbackGenerator(nil, 0)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamStatsService{
		leagues:   leagues,
		provider:  provider,
		generator: generator,
		logger:    logger,
	}
}

func (s *TeamStatsService) Lookup(ctx context.Context, query TeamStatsQuery) (TeamStatsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.Lookup")
	defer span.End()

	name := strings.TrimSpace(query.TeamName)
	if name == "" && query.TeamID <= 0 {
		return TeamStatsResult{}, fmt.Errorf("%w: teamName or teamId is required", ErrInvalidInput)
	}

	leagueKey := query.LeagueKey
	if strings.TrimSpace(leagueKey) == "" {
		leagueKey = DefaultStatsLeague
	}
	l, err := lookupLeague(ctx, s.leagues, leagueKey)
	if err != nil {
		return TeamStatsResult{}, err
	}

	result := TeamStatsResult{
		Team:        TeamRef{ID: query.TeamID, Name: name},
		League:      l,
		LastMatches: make([]teamstats.LastMatch, 0),
		Form:        make(teamstats.Form, 0),
		Meta: TeamStatsMeta{
			LeagueID: l.ID,
			Season:   l.Season,
		},
	}

	if s.provider == nil {
		result.Error = ErrConfigurationMissing.Error()
		result.Message = messageDemoMode
		s.fillSynthetic(&result, StatusDemo)
		return result, nil
	}

	ref, err := s.resolveTeam(ctx, name, query.TeamID, &result.Meta)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return TeamStatsResult{}, err
		}
		s.logger.WarnContext(ctx, "team search failed", "team", name, "error", err)
		result.Error = err.Error()
		result.Meta.UpstreamErrors = append(result.Meta.UpstreamErrors, err.Error())
		s.fillSynthetic(&result, StatusFallback)
		return result, nil
	}
	result.Team = ref

	var (
		stats    ExternalTeamStatistics
		found    bool
		statsErr error
		recent   []ExternalFixture
		formErr  error
		wg       conc.WaitGroup
	)
	wg.Go(func() {
		stats, found, statsErr = s.provider.GetTeamStatistics(ctx, TeamStatisticsQuery{
			LeagueID: l.ID,
			Season:   l.Season,
			TeamID:   ref.ID,
		})
	})
	wg.Go(func() {
		recent, formErr = s.provider.ListFixtures(ctx, FixtureQuery{TeamID: ref.ID, Last: recentFixturesLimit})
	})
	wg.Wait()

	if formErr != nil {
		s.logger.WarnContext(ctx, "recent fixtures failed", "team_id", ref.ID, "error", formErr)
		result.Meta.UpstreamErrors = append(result.Meta.UpstreamErrors, "recent fixtures: "+formErr.Error())
	} else {
		result.LastMatches = recentMatches(recent, ref.ID)
		result.Form = formOf(result.LastMatches)
	}
	result.Meta.MatchesFound = len(result.LastMatches)

	switch {
	case statsErr != nil:
		s.logger.WarnContext(ctx, "team statistics failed", "team_id", ref.ID, "error", statsErr)
		result.Meta.UpstreamErrors = append(result.Meta.UpstreamErrors, "statistics: "+statsErr.Error())
		result.Error = statsErr.Error()
		synthetic, form := s.generator.Stats()
		result.Stats = &synthetic
		if len(result.Form) == 0 {
			result.Form = form
		}
		result.Note = noteSyntheticStats
		result.Meta.Status = StatusFallback
	case !found:
		result.Message = messageStatsUnavailable
		result.Meta.Status = StatusLive
	default:
		formatted := FormatStats(stats)
		result.Stats = &formatted
		result.Meta.StatsFound = true
		result.Meta.Status = StatusLive
		if len(result.Form) == 0 {
			result.Form = teamstats.ParseForm(stats.Form, recentFixturesLimit)
		}
	}

	return result, nil
}

// resolveTeam maps a name or id to an upstream team. Lookups by id degrade
// to the bare id on failure; searches by name surface ErrNotFound when the
// upstream has no candidates.
func (s *TeamStatsService) resolveTeam(ctx context.Context, name string, teamID int64, meta *TeamStatsMeta) (TeamRef, error) {
	if teamID > 0 {
		ref := TeamRef{ID: teamID, Name: name}
		items, err := s.provider.ListTeams(ctx, TeamQuery{TeamID: teamID})
		if err != nil {
			meta.UpstreamErrors = append(meta.UpstreamErrors, "team: "+err.Error())
			return ref, nil
		}
		if len(items) > 0 {
			ref.Name = items[0].Name
			ref.Logo = items[0].Logo
		}
		return ref, nil
	}

	items, err := s.provider.ListTeams(ctx, TeamQuery{Search: name})
	if err != nil {
		return TeamRef{}, err
	}
	if len(items) == 0 {
		return TeamRef{}, fmt.Errorf("%w: team %q", ErrNotFound, name)
	}

	picked := pickTeam(items, name)
	return TeamRef{ID: picked.ID, Name: picked.Name, Logo: picked.Logo}, nil
}

func (s *TeamStatsService) fillSynthetic(result *TeamStatsResult, status ResolveStatus) {
	stats, form := s.generator.Stats()
	result.Stats = &stats
	result.Form = form
	result.Note = noteSyntheticStats
	result.Meta.Status = status
}

// pickTeam prefers a case-insensitive substring match in either direction
// and otherwise takes the first candidate.
func pickTeam(items []ExternalTeam, query string) ExternalTeam {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, item := range items {
		candidate := strings.ToLower(strings.TrimSpace(item.Name))
		if candidate == "" {
			continue
		}
		if strings.Contains(candidate, q) || strings.Contains(q, candidate) {
			return item
		}
	}
	return items[0]
}

// recentMatches keeps played fixtures only, oldest first.
func recentMatches(fixtures []ExternalFixture, teamID int64) []teamstats.LastMatch {
	played := make([]ExternalFixture, 0, len(fixtures))
	for _, f := range fixtures {
		if f.HomeGoals == nil || f.AwayGoals == nil {
			continue
		}
		played = append(played, f)
	}
	sort.SliceStable(played, func(i, j int) bool {
		return played[i].KickoffAt.Before(played[j].KickoffAt)
	})

	out := make([]teamstats.LastMatch, 0, len(played))
	for _, f := range played {
		if m, ok := FormatLastMatch(f, teamID); ok {
			out = append(out, m)
		}
	}
	return out
}

func formOf(matches []teamstats.LastMatch) teamstats.Form {
	form := make(teamstats.Form, 0, len(matches))
	for _, m := range matches {
		form = append(form, m.Result)
	}
	return form
}
