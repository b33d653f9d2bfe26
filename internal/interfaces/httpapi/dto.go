package httpapi

import (
	"github.com/riskibarqy/matchday-api/internal/domain/fixture"
	"github.com/riskibarqy/matchday-api/internal/domain/league"
	"github.com/riskibarqy/matchday-api/internal/domain/team"
	"github.com/riskibarqy/matchday-api/internal/domain/teamstats"
	"github.com/riskibarqy/matchday-api/internal/usecase"
)

type debugDTO struct {
	Status         string   `json:"status"`
	Attempts       int      `json:"attempts"`
	UpstreamErrors []string `json:"upstreamErrors"`
	SeasonsTried   []int    `json:"seasonsTried"`
}

type matchDTO struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"`
	HomeTeam   string `json:"homeTeam"`
	AwayTeam   string `json:"awayTeam"`
	HomeTeamID int64  `json:"homeTeamId"`
	AwayTeamID int64  `json:"awayTeamId"`
	HomeGoals  *int   `json:"homeGoals"`
	AwayGoals  *int   `json:"awayGoals"`
	Venue      string `json:"venue"`
	Round      string `json:"round"`
	League     string `json:"league"`
	Country    string `json:"country"`
	Status     string `json:"status"`
	DaysUntil  *int   `json:"daysUntil,omitempty"`
}

type matchesResponse struct {
	Success    bool       `json:"success"`
	Count      int        `json:"count"`
	League     string     `json:"league"`
	LeagueName string     `json:"leagueName,omitempty"`
	Days       int        `json:"days"`
	Matches    []matchDTO `json:"matches"`
	Message    string     `json:"message,omitempty"`
	Note       string     `json:"note,omitempty"`
	Debug      debugDTO   `json:"debug"`
}

type venueDTO struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}

type teamDTO struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Code    string   `json:"code,omitempty"`
	Country string   `json:"country,omitempty"`
	Founded int      `json:"founded,omitempty"`
	Logo    string   `json:"logo,omitempty"`
	Venue   venueDTO `json:"venue"`
	League  string   `json:"league,omitempty"`
}

type teamsResponse struct {
	Success bool      `json:"success"`
	Count   int       `json:"count"`
	League  string    `json:"league"`
	Search  string    `json:"search"`
	Teams   []teamDTO `json:"teams"`
	Message string    `json:"message,omitempty"`
	Note    string    `json:"note,omitempty"`
	Debug   debugDTO  `json:"debug"`
}

type teamDetailResponse struct {
	Success bool     `json:"success"`
	Data    teamDTO  `json:"data"`
	Message string   `json:"message,omitempty"`
	Debug   debugDTO `json:"debug"`
}

type statsDTO struct {
	GoalsFor      int `json:"goalsFor"`
	GoalsAgainst  int `json:"goalsAgainst"`
	MatchesPlayed int `json:"matchesPlayed"`
	Wins          int `json:"wins"`
	Draws         int `json:"draws"`
	Losses        int `json:"losses"`
	Possession    int `json:"possession"`
}

type lastMatchDTO struct {
	Result   string `json:"result"`
	Opponent string `json:"opponent"`
	Score    string `json:"score"`
	Date     string `json:"date"`
	Home     bool   `json:"home"`
}

type teamStatsDebugDTO struct {
	Status         string   `json:"status"`
	League         int64    `json:"league"`
	Season         int      `json:"season"`
	StatsFound     bool     `json:"statsFound"`
	MatchesFound   int      `json:"matchesFound"`
	UpstreamErrors []string `json:"upstreamErrors"`
}

type teamStatsResponse struct {
	Success     bool              `json:"success"`
	Team        string            `json:"team"`
	TeamID      int64             `json:"teamId,omitempty"`
	Logo        string            `json:"logo,omitempty"`
	League      string            `json:"league"`
	LeagueName  string            `json:"leagueName"`
	Stats       *statsDTO         `json:"stats"`
	LastMatches []lastMatchDTO    `json:"lastMatches"`
	Form        []string          `json:"form"`
	Error       string            `json:"error,omitempty"`
	Message     string            `json:"message,omitempty"`
	Note        string            `json:"note,omitempty"`
	Debug       teamStatsDebugDTO `json:"debug"`
}

type leagueDTO struct {
	Key              string `json:"key"`
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Country          string `json:"country"`
	Season           int    `json:"season"`
	FallbackEligible bool   `json:"fallbackEligible"`
}

type leaguesResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Leagues []leagueDTO `json:"leagues"`
}

type healthResponse struct {
	Status             string `json:"status"`
	UpstreamConfigured bool   `json:"upstreamConfigured"`
}

func debugFromMeta(meta usecase.ResolveMeta) debugDTO {
	out := debugDTO{
		Status:         string(meta.Status),
		Attempts:       meta.Attempts,
		UpstreamErrors: meta.UpstreamErrors,
		SeasonsTried:   meta.SeasonsTried,
	}
	if out.UpstreamErrors == nil {
		out.UpstreamErrors = []string{}
	}
	if out.SeasonsTried == nil {
		out.SeasonsTried = []int{}
	}
	return out
}

func matchToDTO(m fixture.Match) matchDTO {
	return matchDTO{
		ID:         m.ID,
		Date:       m.Date,
		HomeTeam:   m.HomeTeam,
		AwayTeam:   m.AwayTeam,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		HomeGoals:  m.HomeGoals,
		AwayGoals:  m.AwayGoals,
		Venue:      m.Venue,
		Round:      m.Round,
		League:     m.League,
		Country:    m.Country,
		Status:     m.Status,
		DaysUntil:  m.DaysUntil,
	}
}

func matchesResponseFromResult(result usecase.MatchesResult) matchesResponse {
	items := make([]matchDTO, 0, len(result.Matches))
	for _, m := range result.Matches {
		items = append(items, matchToDTO(m))
	}
	return matchesResponse{
		Success:    true,
		Count:      len(items),
		League:     result.League,
		LeagueName: result.LeagueName,
		Days:       result.Days,
		Matches:    items,
		Message:    result.Message,
		Note:       result.Note,
		Debug:      debugFromMeta(result.Meta),
	}
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:      t.ID,
		Name:    t.Name,
		Code:    t.Code,
		Country: t.Country,
		Founded: t.Founded,
		Logo:    t.Logo,
		Venue: venueDTO{
			Name:     t.Venue.Name,
			City:     t.Venue.City,
			Capacity: t.Venue.Capacity,
		},
		League: t.League,
	}
}

func teamsResponseFromResult(result usecase.TeamsResult) teamsResponse {
	items := make([]teamDTO, 0, len(result.Teams))
	for _, t := range result.Teams {
		items = append(items, teamToDTO(t))
	}
	return teamsResponse{
		Success: true,
		Count:   len(items),
		League:  result.League,
		Search:  result.Search,
		Teams:   items,
		Message: result.Message,
		Note:    result.Note,
		Debug:   debugFromMeta(result.Meta),
	}
}

func teamDetailResponseFromResult(result usecase.TeamDetailResult) teamDetailResponse {
	return teamDetailResponse{
		Success: true,
		Data:    teamToDTO(result.Team),
		Message: result.Message,
		Debug:   debugFromMeta(result.Meta),
	}
}

func statsToDTO(s *teamstats.Stats) *statsDTO {
	if s == nil {
		return nil
	}
	return &statsDTO{
		GoalsFor:      s.GoalsFor,
		GoalsAgainst:  s.GoalsAgainst,
		MatchesPlayed: s.MatchesPlayed,
		Wins:          s.Wins,
		Draws:         s.Draws,
		Losses:        s.Losses,
		Possession:    s.Possession,
	}
}

func teamStatsResponseFromResult(result usecase.TeamStatsResult) teamStatsResponse {
	matches := make([]lastMatchDTO, 0, len(result.LastMatches))
	for _, m := range result.LastMatches {
		matches = append(matches, lastMatchDTO{
			Result:   string(m.Result),
			Opponent: m.Opponent,
			Score:    m.Score,
			Date:     m.Date,
			Home:     m.Home,
		})
	}
	upstreamErrors := result.Meta.UpstreamErrors
	if upstreamErrors == nil {
		upstreamErrors = []string{}
	}

	return teamStatsResponse{
		Success:     true,
		Team:        result.Team.Name,
		TeamID:      result.Team.ID,
		Logo:        result.Team.Logo,
		League:      result.League.Key,
		LeagueName:  result.League.Name,
		Stats:       statsToDTO(result.Stats),
		LastMatches: matches,
		Form:        result.Form.Strings(),
		Error:       result.Error,
		Message:     result.Message,
		Note:        result.Note,
		Debug: teamStatsDebugDTO{
			Status:         string(result.Meta.Status),
			League:         result.Meta.LeagueID,
			Season:         result.Meta.Season,
			StatsFound:     result.Meta.StatsFound,
			MatchesFound:   result.Meta.MatchesFound,
			UpstreamErrors: upstreamErrors,
		},
	}
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		Key:              l.Key,
		ID:               l.ID,
		Name:             l.Name,
		Country:          l.Country,
		Season:           l.Season,
		FallbackEligible: l.FallbackEligible,
	}
}
