package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/matchday-api/internal/domain/fixture"
	"github.com/riskibarqy/matchday-api/internal/domain/team"
	"github.com/riskibarqy/matchday-api/internal/domain/teamstats"
)

const (
	placeholderTBA    = "TBA"
	defaultPossession = 50
)

// FormatMatch flattens an upstream fixture. today anchors daysUntil.
func FormatMatch(f ExternalFixture, today time.Time) fixture.Match {
	match := fixture.Match{
		ID:         f.ID,
		Date:       strings.TrimSpace(f.Date),
		KickoffAt:  f.KickoffAt,
		HomeTeam:   orPlaceholder(f.HomeTeamName),
		AwayTeam:   orPlaceholder(f.AwayTeamName),
		HomeTeamID: f.HomeTeamID,
		AwayTeamID: f.AwayTeamID,
		HomeGoals:  copyInt(f.HomeGoals),
		AwayGoals:  copyInt(f.AwayGoals),
		Venue:      orPlaceholder(f.Venue),
		Round:      orPlaceholder(f.Round),
		League:     strings.TrimSpace(f.LeagueName),
		Country:    strings.TrimSpace(f.LeagueCountry),
		Status:     fixture.NormalizeStatus(f.Status),
	}

	if !f.KickoffAt.IsZero() {
		if match.Date == "" {
			match.Date = f.KickoffAt.Format(time.RFC3339)
		}
		days := fixture.DaysBetween(today, f.KickoffAt)
		match.DaysUntil = &days
	}

	return match
}

func FormatTeam(t ExternalTeam, leagueName string) team.Team {
	return team.Team{
		ID:      t.ID,
		Name:    orPlaceholder(t.Name),
		Code:    strings.TrimSpace(t.Code),
		Country: strings.TrimSpace(t.Country),
		Founded: t.Founded,
		Logo:    strings.TrimSpace(t.Logo),
		Venue: team.Venue{
			Name:     strings.TrimSpace(t.VenueName),
			City:     strings.TrimSpace(t.VenueCity),
			Capacity: t.VenueCapacity,
		},
		League: leagueName,
	}
}

func FormatStats(s ExternalTeamStatistics) teamstats.Stats {
	return teamstats.Stats{
		GoalsFor:      intOrZero(s.GoalsFor),
		GoalsAgainst:  intOrZero(s.GoalsAgainst),
		MatchesPlayed: intOrZero(s.Played),
		Wins:          intOrZero(s.Wins),
		Draws:         intOrZero(s.Draws),
		Losses:        intOrZero(s.Losses),
		Possession:    ParsePossession(s.Possession),
	}
}

// ParsePossession turns "54%" or "54.6" into a whole percentage, defaulting
// to 50 for anything unparseable or out of range.
func ParsePossession(raw string) int {
	value := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if value == "" {
		return defaultPossession
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed < 0 || parsed > 100 {
		return defaultPossession
	}
	return int(parsed + 0.5)
}

// FormatLastMatch describes a played fixture from teamID's side. Fixtures
// without a final score are reported as not played.
func FormatLastMatch(f ExternalFixture, teamID int64) (teamstats.LastMatch, bool) {
	if f.HomeGoals == nil || f.AwayGoals == nil {
		return teamstats.LastMatch{}, false
	}

	home := f.HomeTeamID == teamID
	goalsFor, goalsAgainst := *f.HomeGoals, *f.AwayGoals
	opponent := f.AwayTeamName
	if !home {
		goalsFor, goalsAgainst = goalsAgainst, goalsFor
		opponent = f.HomeTeamName
	}

	date := strings.TrimSpace(f.Date)
	if date == "" && !f.KickoffAt.IsZero() {
		date = f.KickoffAt.Format(time.RFC3339)
	}

	return teamstats.LastMatch{
		Result:   teamstats.OutcomeFor(goalsFor, goalsAgainst),
		Opponent: orPlaceholder(opponent),
		Score:    strconv.Itoa(*f.HomeGoals) + "-" + strconv.Itoa(*f.AwayGoals),
		Date:     date,
		Home:     home,
	}, true
}

func orPlaceholder(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return placeholderTBA
	}
	return v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
