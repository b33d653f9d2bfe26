package usecase

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/riskibarqy/matchday-api/internal/domain/league"
)

func seededGenerator(seed uint64, max int) *FallbackGenerator {
	return NewFallbackGenerator(rand.New(rand.NewPCG(seed, seed^0xabcdef)), max)
}

func TestFallbackGenerator_FixturesNeverReuseTeams(t *testing.T) {
	l := league.League{Key: "premier", ID: 39, Country: "England", Name: "Premier League", Season: 2025}
	roster := []string{
		"Arsenal", "Aston Villa", "Bournemouth", "Brentford", "Brighton",
		"Burnley", "Chelsea", "Crystal Palace", "Everton", "Fulham",
		"Leeds", "Liverpool", "Manchester City", "Manchester United", "Newcastle",
		"Nottingham Forest", "Sunderland", "Tottenham", "West Ham", "Wolves",
	}
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	for seed := uint64(1); seed <= 25; seed++ {
		matches := seededGenerator(seed, 8).Fixtures(l, roster, now)
		if len(matches) == 0 || len(matches) > 8 {
			t.Fatalf("seed %d: expected 1..8 fixtures, got %d", seed, len(matches))
		}

		used := make(map[string]bool)
		for i, m := range matches {
			if m.HomeTeam == m.AwayTeam {
				t.Fatalf("seed %d: team plays itself: %s", seed, m.HomeTeam)
			}
			if used[m.HomeTeam] || used[m.AwayTeam] {
				t.Fatalf("seed %d: team reused in batch: %s / %s", seed, m.HomeTeam, m.AwayTeam)
			}
			used[m.HomeTeam] = true
			used[m.AwayTeam] = true

			if m.ID != int64(SyntheticFixtureIDBase+i) {
				t.Fatalf("seed %d: unexpected id %d at %d", seed, m.ID, i)
			}
			if m.Status != "NS" || m.Venue != "TBA" || m.League != "Premier League" || m.Country != "England" {
				t.Fatalf("seed %d: unexpected synthetic fields: %+v", seed, m)
			}
			if !m.KickoffAt.After(now) {
				t.Fatalf("seed %d: kickoff %s is not in the future", seed, m.KickoffAt)
			}
			if m.DaysUntil == nil || *m.DaysUntil < 1 {
				t.Fatalf("seed %d: unexpected daysUntil %v", seed, m.DaysUntil)
			}
		}
	}
}

func TestFallbackGenerator_OddRosterAndDuplicates(t *testing.T) {
	l := league.League{Name: "Superliga", Country: "Denmark"}
	matches := seededGenerator(7, 8).Fixtures(l, []string{"AGF", "agf", "OB", "Vejle BK", " "}, time.Now())

	if len(matches) != 1 {
		t.Fatalf("expected a single pairing from three distinct teams, got %d", len(matches))
	}
}

func TestFallbackGenerator_TooFewTeamsYieldsSingleDemoFixture(t *testing.T) {
	l := league.League{Name: "UEFA Conference League", Country: "World"}

	for _, roster := range [][]string{nil, {"Only Team"}} {
		matches := seededGenerator(3, 8).Fixtures(l, roster, time.Now())
		if len(matches) != 1 {
			t.Fatalf("expected exactly one demo fixture, got %d", len(matches))
		}
		if matches[0].ID != SyntheticFixtureIDBase || matches[0].HomeTeam == matches[0].AwayTeam {
			t.Fatalf("unexpected demo fixture: %+v", matches[0])
		}
	}
}

func TestFallbackGenerator_RespectsMaxFixtures(t *testing.T) {
	roster := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	matches := seededGenerator(11, 2).Fixtures(league.League{}, roster, time.Now())
	if len(matches) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(matches))
	}
}

func TestFallbackGenerator_StatsRanges(t *testing.T) {
	gen := seededGenerator(42, 8)
	for i := 0; i < 200; i++ {
		stats, form := gen.Stats()

		if stats.GoalsFor < 8 || stats.GoalsFor > 22 {
			t.Fatalf("goalsFor out of range: %d", stats.GoalsFor)
		}
		if stats.GoalsAgainst < 5 || stats.GoalsAgainst > 20 {
			t.Fatalf("goalsAgainst out of range: %d", stats.GoalsAgainst)
		}
		if stats.Wins < 4 || stats.Wins > 12 || stats.Draws < 2 || stats.Draws > 6 {
			t.Fatalf("wins/draws out of range: %+v", stats)
		}
		if stats.MatchesPlayed != 20 || stats.Wins+stats.Draws+stats.Losses != 20 {
			t.Fatalf("results do not add up: %+v", stats)
		}
		if stats.Possession < 40 || stats.Possession > 60 {
			t.Fatalf("possession out of range: %d", stats.Possession)
		}
		if len(form) != 5 {
			t.Fatalf("expected 5-result form, got %v", form)
		}
		for _, o := range form {
			if o != "W" && o != "D" && o != "L" {
				t.Fatalf("unexpected outcome %q", o)
			}
		}
	}
}

func TestFallbackGenerator_DeterministicWithSeed(t *testing.T) {
	roster := []string{"A", "B", "C", "D", "E", "F"}
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	first := seededGenerator(99, 8).Fixtures(league.League{}, roster, now)
	second := seededGenerator(99, 8).Fixtures(league.League{}, roster, now)
	for i := range first {
		if first[i].HomeTeam != second[i].HomeTeam || !first[i].KickoffAt.Equal(second[i].KickoffAt) {
			t.Fatalf("expected identical batches for the same seed")
		}
	}
}
