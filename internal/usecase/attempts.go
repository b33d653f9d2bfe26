package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/matchday-api/internal/domain/fixture"
	"github.com/riskibarqy/matchday-api/internal/domain/league"
)

type attemptShape string

const (
	shapeRange  attemptShape = "range"
	shapeNext   attemptShape = "next"
	shapeStatus attemptShape = "status"
)

const defaultNextFixtures = 10

// fixtureAttemptShapes is tried in order for every candidate season.
var fixtureAttemptShapes = []attemptShape{shapeRange, shapeNext, shapeStatus}

type attempt struct {
	season int
	shape  attemptShape
}

func (a attempt) String() string {
	return fmt.Sprintf("season=%d shape=%s", a.season, a.shape)
}

// query builds the upstream request for the attempt. from and to are the
// date-only window bounds.
func (a attempt) query(l league.League, from, to time.Time, next int) FixtureQuery {
	q := FixtureQuery{LeagueID: l.ID, Season: a.season}
	switch a.shape {
	case shapeRange:
		q.From = from
		q.To = to
	case shapeNext:
		q.Next = next
	case shapeStatus:
		q.Statuses = []string{fixture.StatusNotStarted, fixture.StatusToBeDefined}
	}
	return q
}

// candidateSeasons returns the configured season, then the current and the
// previous calendar year, without duplicates.
func candidateSeasons(l league.League, now time.Time) []int {
	candidates := []int{l.Season, now.Year(), now.Year() - 1}
	out := make([]int, 0, len(candidates))
	seen := make(map[int]struct{}, len(candidates))
	for _, season := range candidates {
		if season <= 0 {
			continue
		}
		if _, ok := seen[season]; ok {
			continue
		}
		seen[season] = struct{}{}
		out = append(out, season)
	}
	return out
}

func buildAttempts(l league.League, now time.Time) []attempt {
	seasons := candidateSeasons(l, now)
	out := make([]attempt, 0, len(seasons)*len(fixtureAttemptShapes))
	for _, season := range seasons {
		for _, shape := range fixtureAttemptShapes {
			out = append(out, attempt{season: season, shape: shape})
		}
	}
	return out
}

// isValidFixture applies the league membership checks to one upstream
// fixture and keeps it inside the [today, today+days] window. today must be
// truncated to midnight.
func isValidFixture(l league.League, f ExternalFixture, today time.Time, days int) bool {
	if f.LeagueID != l.ID {
		return false
	}
	if !strings.EqualFold(strings.TrimSpace(f.LeagueCountry), l.Country) {
		return false
	}
	if !l.Policy.NameMatches(l.Name, f.LeagueName) {
		return false
	}
	if !isUpcoming(f, today) || !withinWindow(f, today, days) {
		return false
	}
	return l.Policy.AdmitsPairing(f.HomeTeamName, f.AwayTeamName)
}

// withinWindow rejects fixtures dated past the requested window. The next-N
// query shape ignores the date range upstream. Undated fixtures pass.
func withinWindow(f ExternalFixture, today time.Time, days int) bool {
	if f.KickoffAt.IsZero() {
		return true
	}
	return fixture.DaysBetween(today, f.KickoffAt) <= days
}

func isUpcoming(f ExternalFixture, today time.Time) bool {
	if f.Status != "" && fixture.IsOpenStatus(f.Status) {
		return true
	}
	if f.KickoffAt.IsZero() {
		return false
	}
	return fixture.DaysBetween(today, f.KickoffAt) >= 0
}
