package usecase

import (
	"testing"
	"time"

	"github.com/riskibarqy/matchday-api/internal/domain/league"
)

func testLeague() league.League {
	return league.League{
		Key:     "superliga",
		ID:      119,
		Country: "Denmark",
		Name:    "Superliga",
		Season:  2025,
		Policy: league.MembershipPolicy{
			RequireNameMatch: true,
			AllowTeams:       []string{"FC København", "Brøndby IF"},
			DenyTeams:        []string{"Malmö FF"},
		},
	}
}

func TestCandidateSeasons_DeduplicatesInOrder(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	got := candidateSeasons(league.League{Season: 2025}, now)
	want := []int{2025, 2026}
	if len(got) != len(want) {
		t.Fatalf("unexpected seasons: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: want %d got %d", i, want[i], got[i])
		}
	}

	got = candidateSeasons(league.League{Season: 2023}, now)
	if len(got) != 3 || got[0] != 2023 || got[1] != 2026 || got[2] != 2025 {
		t.Fatalf("unexpected seasons: %v", got)
	}
}

func TestBuildAttempts_SeasonMajorOrder(t *testing.T) {
	now := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	attempts := buildAttempts(league.League{Season: 2024}, now)

	if len(attempts) != 9 {
		t.Fatalf("expected 9 attempts, got %d", len(attempts))
	}
	if attempts[0] != (attempt{season: 2024, shape: shapeRange}) {
		t.Fatalf("unexpected first attempt: %v", attempts[0])
	}
	if attempts[2] != (attempt{season: 2024, shape: shapeStatus}) {
		t.Fatalf("unexpected third attempt: %v", attempts[2])
	}
	if attempts[3] != (attempt{season: 2026, shape: shapeRange}) {
		t.Fatalf("unexpected fourth attempt: %v", attempts[3])
	}
}

func TestAttemptQuery_Shapes(t *testing.T) {
	l := testLeague()
	from := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	rangeQuery := attempt{season: 2025, shape: shapeRange}.query(l, from, to, 10)
	if !rangeQuery.From.Equal(from) || !rangeQuery.To.Equal(to) || rangeQuery.Next != 0 {
		t.Fatalf("unexpected range query: %+v", rangeQuery)
	}

	nextQuery := attempt{season: 2025, shape: shapeNext}.query(l, from, to, 10)
	if nextQuery.Next != 10 || !nextQuery.From.IsZero() {
		t.Fatalf("unexpected next query: %+v", nextQuery)
	}

	statusQuery := attempt{season: 2026, shape: shapeStatus}.query(l, from, to, 10)
	if len(statusQuery.Statuses) != 2 || statusQuery.Season != 2026 || statusQuery.LeagueID != 119 {
		t.Fatalf("unexpected status query: %+v", statusQuery)
	}
}

func TestIsValidFixture(t *testing.T) {
	l := testLeague()
	today := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	base := ExternalFixture{
		ID:            1,
		Status:        "NS",
		KickoffAt:     today.AddDate(0, 0, 2),
		HomeTeamName:  "FC København",
		AwayTeamName:  "Randers FC",
		LeagueID:      119,
		LeagueName:    "Superliga",
		LeagueCountry: "Denmark",
	}

	tests := []struct {
		name   string
		mutate func(f *ExternalFixture)
		want   bool
	}{
		{name: "valid", mutate: func(*ExternalFixture) {}, want: true},
		{name: "wrong league id", mutate: func(f *ExternalFixture) { f.LeagueID = 120 }, want: false},
		{name: "wrong country", mutate: func(f *ExternalFixture) { f.LeagueCountry = "Sweden" }, want: false},
		{name: "wrong league name", mutate: func(f *ExternalFixture) { f.LeagueName = "1. Division" }, want: false},
		{name: "finished in the past", mutate: func(f *ExternalFixture) {
			f.Status = "FT"
			f.KickoffAt = today.AddDate(0, 0, -3)
		}, want: false},
		{name: "live today still upcoming by date", mutate: func(f *ExternalFixture) {
			f.Status = "1H"
			f.KickoffAt = today.Add(14 * time.Hour)
		}, want: true},
		{name: "tbd without date", mutate: func(f *ExternalFixture) {
			f.Status = "TBD"
			f.KickoffAt = time.Time{}
		}, want: true},
		{name: "past the window", mutate: func(f *ExternalFixture) { f.KickoffAt = today.AddDate(0, 0, 40) }, want: false},
		{name: "last day of the window", mutate: func(f *ExternalFixture) { f.KickoffAt = today.AddDate(0, 0, 7).Add(20 * time.Hour) }, want: true},
		{name: "denied team", mutate: func(f *ExternalFixture) { f.AwayTeamName = "Malmö FF" }, want: false},
		{name: "no allowed team", mutate: func(f *ExternalFixture) {
			f.HomeTeamName = "Hvidovre"
			f.AwayTeamName = "Lyngby"
		}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := base
			tc.mutate(&f)
			if got := isValidFixture(l, f, today, 7); got != tc.want {
				t.Fatalf("isValidFixture=%v want=%v", got, tc.want)
			}
		})
	}
}
