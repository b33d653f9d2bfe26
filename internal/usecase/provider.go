package usecase

import (
	"context"
	"time"
)

// FootballProvider is the upstream fixtures and statistics source.
type FootballProvider interface {
	ListFixtures(ctx context.Context, query FixtureQuery) ([]ExternalFixture, error)
	ListTeams(ctx context.Context, query TeamQuery) ([]ExternalTeam, error)
	// GetTeamStatistics returns found=false when the upstream answered with
	// an empty statistics block.
	GetTeamStatistics(ctx context.Context, query TeamStatisticsQuery) (stats ExternalTeamStatistics, found bool, err error)
}

// FixtureQuery maps onto /fixtures parameters. Zero values are omitted.
type FixtureQuery struct {
	LeagueID int64
	Season   int
	From     time.Time
	To       time.Time
	Next     int
	Last     int
	Statuses []string
	TeamID   int64
}

// TeamQuery maps onto /teams parameters. Zero values are omitted.
type TeamQuery struct {
	LeagueID int64
	Season   int
	Search   string
	TeamID   int64
}

type TeamStatisticsQuery struct {
	LeagueID int64
	Season   int
	TeamID   int64
}

type ExternalFixture struct {
	ID            int64
	Date          string
	KickoffAt     time.Time
	Venue         string
	Status        string
	HomeTeamID    int64
	HomeTeamName  string
	AwayTeamID    int64
	AwayTeamName  string
	LeagueID      int64
	LeagueName    string
	LeagueCountry string
	Round         string
	HomeGoals     *int
	AwayGoals     *int
}

type ExternalTeam struct {
	ID            int64
	Name          string
	Code          string
	Country       string
	Founded       int
	Logo          string
	VenueName     string
	VenueCity     string
	VenueCapacity int
}

// ExternalTeamStatistics keeps optional counters as pointers so missing
// upstream fields stay distinguishable from zero.
type ExternalTeamStatistics struct {
	GoalsFor     *int
	GoalsAgainst *int
	Played       *int
	Wins         *int
	Draws        *int
	Losses       *int
	Possession   string
	Form         string
}
