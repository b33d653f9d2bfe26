package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/matchday-api/internal/domain/league"
	"github.com/riskibarqy/matchday-api/internal/domain/team"
	"github.com/riskibarqy/matchday-api/internal/platform/logging"
)

const (
	noteStaticRoster  = "Static roster shown; live team data unavailable"
	messageNoTeams    = "No teams found"
	messageTeamIDOnly = "Team details unavailable; returning id only"
)

type TeamsQuery struct {
	LeagueKey string
	Search    string
}

type TeamsResult struct {
	League  string
	Search  string
	Teams   []team.Team
	Message string
	Note    string
	Meta    ResolveMeta
}

type TeamDetailResult struct {
	Team    team.Team
	Message string
	Meta    ResolveMeta
}

// TeamService lists league rosters and single clubs.
type TeamService struct {
	leagues        league.Repository
	provider       FootballProvider
	workerPoolSize int
	logger         *logging.Logger
}

func NewTeamService(leagues league.Repository, provider FootballProvider, workerPoolSize int, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		leagues:        leagues,
		provider:       provider,
		workerPoolSize: workerPoolSize,
		logger:         logger,
	}
}

// List returns the teams of one league, or of every league when no league
// key is given, sorted by name.
func (s *TeamService) List(ctx context.Context, query TeamsQuery) (TeamsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	search := strings.TrimSpace(query.Search)
	if strings.TrimSpace(query.LeagueKey) != "" {
		l, err := lookupLeague(ctx, s.leagues, query.LeagueKey)
		if err != nil {
			return TeamsResult{}, err
		}
		result := s.listLeague(ctx, l, search)
		sortTeamsByName(result.Teams)
		return result, nil
	}

	leagues, err := s.leagues.List(ctx)
	if err != nil {
		return TeamsResult{}, fmt.Errorf("list leagues: %w", err)
	}

	results := make([]TeamsResult, len(leagues))
	err = forEachLeague(ctx, s.workerPoolSize, leagues, func(ctx context.Context, idx int, l league.League) {
		results[idx] = s.listLeague(ctx, l, search)
	})
	if err != nil {
		return TeamsResult{}, err
	}

	merged := TeamsResult{
		League: AllLeaguesKey,
		Search: search,
		Teams:  make([]team.Team, 0),
		Meta:   ResolveMeta{Status: StatusEmpty},
	}
	for i, res := range results {
		merged.Teams = append(merged.Teams, res.Teams...)
		for _, upstreamErr := range res.Meta.UpstreamErrors {
			merged.Meta.UpstreamErrors = append(merged.Meta.UpstreamErrors, leagues[i].Key+": "+upstreamErr)
		}
		merged.Meta.Attempts += res.Meta.Attempts
		merged.Meta.Status = mergeStatus(merged.Meta.Status, res.Meta.Status)
	}
	sortTeamsByName(merged.Teams)

	switch merged.Meta.Status {
	case StatusDemo:
		merged.Message = messageDemoMode
		merged.Note = noteStaticRoster
	case StatusFallback:
		merged.Note = noteStaticRoster
	case StatusEmpty:
		merged.Message = messageNoTeams
	}
	return merged, nil
}

func (s *TeamService) listLeague(ctx context.Context, l league.League, search string) TeamsResult {
	result := TeamsResult{
		League: l.Key,
		Search: search,
		Teams:  make([]team.Team, 0),
	}

	if s.provider == nil {
		result.Teams = staticRoster(l, search)
		result.Meta.Status = StatusDemo
		result.Message = messageDemoMode
		result.Note = noteStaticRoster
		return result
	}

	result.Meta.Attempts = 1
	result.Meta.SeasonsTried = []int{l.Season}
	items, err := s.provider.ListTeams(ctx, TeamQuery{LeagueID: l.ID, Season: l.Season, Search: search})
	if err != nil {
		s.logger.WarnContext(ctx, "list teams failed", "league", l.Key, "error", err)
		result.Meta.UpstreamErrors = []string{err.Error()}
		result.Meta.Status = StatusFallback
		result.Teams = staticRoster(l, search)
		result.Note = noteStaticRoster
		return result
	}

	for _, item := range items {
		if !l.Policy.AdmitsTeam(item.Name) {
			continue
		}
		result.Teams = append(result.Teams, FormatTeam(item, l.Name))
	}
	if len(result.Teams) == 0 {
		result.Meta.Status = StatusEmpty
		result.Message = messageNoTeams
		return result
	}

	result.Meta.Status = StatusLive
	return result
}

// Get returns a single club by upstream id. Upstream failures degrade to a
// team carrying only its id.
func (s *TeamService) Get(ctx context.Context, teamID int64) (TeamDetailResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	if teamID <= 0 {
		return TeamDetailResult{}, fmt.Errorf("%w: teamId must be a positive integer", ErrInvalidInput)
	}

	result := TeamDetailResult{Team: team.Team{ID: teamID}}
	if s.provider == nil {
		result.Meta.Status = StatusDemo
		result.Message = messageDemoMode
		return result, nil
	}

	result.Meta.Attempts = 1
	items, err := s.provider.ListTeams(ctx, TeamQuery{TeamID: teamID})
	if err != nil {
		s.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		result.Meta.Status = StatusFallback
		result.Meta.UpstreamErrors = []string{err.Error()}
		result.Message = messageTeamIDOnly
		return result, nil
	}
	if len(items) == 0 {
		return TeamDetailResult{}, fmt.Errorf("%w: team id=%d", ErrNotFound, teamID)
	}

	result.Team = FormatTeam(items[0], "")
	result.Meta.Status = StatusLive
	return result, nil
}

func staticRoster(l league.League, search string) []team.Team {
	out := make([]team.Team, 0, len(l.Roster))
	for _, name := range distinctNames(l.Roster) {
		if search != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(search)) {
			continue
		}
		out = append(out, team.Team{
			Name:    name,
			Country: l.Country,
			League:  l.Name,
		})
	}
	return out
}

func sortTeamsByName(teams []team.Team) {
	sort.SliceStable(teams, func(i, j int) bool {
		return strings.ToLower(teams[i].Name) < strings.ToLower(teams[j].Name)
	})
}

// mergeStatus combines per-league statuses: any live result wins, then
// fallback, then demo.
func mergeStatus(current, next ResolveStatus) ResolveStatus {
	rank := map[ResolveStatus]int{StatusEmpty: 0, StatusDemo: 1, StatusFallback: 2, StatusLive: 3}
	if rank[next] > rank[current] {
		return next
	}
	return current
}
