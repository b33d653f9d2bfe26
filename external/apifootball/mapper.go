package apifootball

import (
	"strings"
	"time"

	"github.com/riskibarqy/matchday-api/internal/usecase"
)

func mapFixture(item fixtureItem) usecase.ExternalFixture {
	return usecase.ExternalFixture{
		ID:            item.Fixture.ID,
		Date:          strings.TrimSpace(item.Fixture.Date),
		KickoffAt:     parseKickoff(item.Fixture.Date, item.Fixture.Timestamp),
		Venue:         derefString(item.Fixture.Venue.Name),
		Status:        strings.TrimSpace(item.Fixture.Status.Short),
		HomeTeamID:    item.Teams.Home.ID,
		HomeTeamName:  strings.TrimSpace(item.Teams.Home.Name),
		AwayTeamID:    item.Teams.Away.ID,
		AwayTeamName:  strings.TrimSpace(item.Teams.Away.Name),
		LeagueID:      item.League.ID,
		LeagueName:    strings.TrimSpace(item.League.Name),
		LeagueCountry: strings.TrimSpace(item.League.Country),
		Round:         strings.TrimSpace(item.League.Round),
		HomeGoals:     item.Goals.Home,
		AwayGoals:     item.Goals.Away,
	}
}

func mapFixtures(items []fixtureItem) []usecase.ExternalFixture {
	out := make([]usecase.ExternalFixture, 0, len(items))
	for _, item := range items {
		if item.Fixture.ID <= 0 {
			continue
		}
		out = append(out, mapFixture(item))
	}
	return out
}

func mapTeam(item teamItem) usecase.ExternalTeam {
	return usecase.ExternalTeam{
		ID:            item.Team.ID,
		Name:          strings.TrimSpace(item.Team.Name),
		Code:          derefString(item.Team.Code),
		Country:       derefString(item.Team.Country),
		Founded:       derefInt(item.Team.Founded),
		Logo:          strings.TrimSpace(item.Team.Logo),
		VenueName:     derefString(item.Venue.Name),
		VenueCity:     derefString(item.Venue.City),
		VenueCapacity: derefInt(item.Venue.Capacity),
	}
}

func mapTeams(items []teamItem) []usecase.ExternalTeam {
	out := make([]usecase.ExternalTeam, 0, len(items))
	for _, item := range items {
		if item.Team.ID <= 0 {
			continue
		}
		out = append(out, mapTeam(item))
	}
	return out
}

func mapTeamStatistics(item teamStatisticsItem) usecase.ExternalTeamStatistics {
	out := usecase.ExternalTeamStatistics{
		GoalsFor:     item.Goals.For.Total.Total,
		GoalsAgainst: item.Goals.Against.Total.Total,
		Played:       item.Fixtures.Played.Total,
		Wins:         item.Fixtures.Wins.Total,
		Draws:        item.Fixtures.Draws.Total,
		Losses:       item.Fixtures.Loses.Total,
		Form:         derefString(item.Form),
	}
	if item.BallPossession != nil {
		out.Possession = strings.TrimSpace(item.BallPossession.Average)
	}
	return out
}

// hasStatistics reports whether the upstream filled the statistics block at
// all. Accounts without coverage get an object with every counter null.
func hasStatistics(item teamStatisticsItem) bool {
	return item.Team.ID > 0 || item.Fixtures.Played.Total != nil || item.Goals.For.Total.Total != nil
}

// parseKickoff prefers the ISO date and falls back to the unix timestamp.
func parseKickoff(date string, timestamp int64) time.Time {
	date = strings.TrimSpace(date)
	if date != "" {
		if parsed, err := time.Parse(time.RFC3339, date); err == nil {
			return parsed.UTC()
		}
	}
	if timestamp > 0 {
		return time.Unix(timestamp, 0).UTC()
	}
	return time.Time{}
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
