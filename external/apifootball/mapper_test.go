package apifootball

import (
	"testing"
	"time"
)

func TestParseKickoff(t *testing.T) {
	t.Parallel()

	want := time.Date(2026, 10, 20, 17, 0, 0, 0, time.UTC)
	if got := parseKickoff("2026-10-20T19:00:00+02:00", 0); !got.Equal(want) {
		t.Fatalf("unexpected iso kickoff %s", got)
	}
	if got := parseKickoff("not a date", want.Unix()); !got.Equal(want) {
		t.Fatalf("expected timestamp fallback, got %s", got)
	}
	if got := parseKickoff("", 0); !got.IsZero() {
		t.Fatalf("expected zero kickoff, got %s", got)
	}
}

func TestMapTeams_SkipsRowsWithoutID(t *testing.T) {
	t.Parallel()

	var valid teamItem
	valid.Team.ID = 400
	valid.Team.Name = " FC Copenhagen "
	city := "København"
	valid.Venue.City = &city

	got := mapTeams([]teamItem{{}, valid})
	if len(got) != 1 {
		t.Fatalf("expected one team, got %d", len(got))
	}
	if got[0].Name != "FC Copenhagen" || got[0].VenueCity != "København" {
		t.Fatalf("unexpected mapped team %+v", got[0])
	}
	if got[0].Code != "" || got[0].Founded != 0 {
		t.Fatalf("null fields should map to zero values: %+v", got[0])
	}
}

func TestHasStatistics(t *testing.T) {
	t.Parallel()

	if hasStatistics(teamStatisticsItem{}) {
		t.Fatal("empty statistics block should report false")
	}
	var item teamStatisticsItem
	played := 3
	item.Fixtures.Played.Total = &played
	if !hasStatistics(item) {
		t.Fatal("statistics with a played count should report true")
	}
}
