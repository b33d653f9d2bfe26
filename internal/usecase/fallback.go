package usecase

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/matchday-api/internal/domain/fixture"
	"github.com/riskibarqy/matchday-api/internal/domain/league"
	"github.com/riskibarqy/matchday-api/internal/domain/teamstats"
)

const (
	SyntheticFixtureIDBase = 999000

	defaultFallbackFixtures = 8
	syntheticMatchesPlayed  = 20
	syntheticFormLength     = 5
)

var syntheticKickoffHours = []int{13, 15, 17, 20}

// FallbackGenerator produces labelled synthetic fixtures and statistics.
type FallbackGenerator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	maxFixtures int
}

func NewFallbackGenerator(rng *rand.Rand, maxFixtures int) *FallbackGenerator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	}
	if maxFixtures < 1 {
		maxFixtures = defaultFallbackFixtures
	}
	return &FallbackGenerator{rng: rng, maxFixtures: maxFixtures}
}

// Fixtures pairs teams off without repetition. With fewer than two distinct
// teams a single placeholder fixture is returned.
func (g *FallbackGenerator) Fixtures(l league.League, teams []string, now time.Time) []fixture.Match {
	g.mu.Lock()
	defer g.mu.Unlock()

	names := distinctNames(teams)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if len(names) < 2 {
		kickoff := today.AddDate(0, 0, 1).Add(15 * time.Hour)
		return []fixture.Match{g.syntheticMatch(l, 0, "Home Team", "Away Team", kickoff, today, 1)}
	}

	g.rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	pairs := len(names) / 2
	if pairs > g.maxFixtures {
		pairs = g.maxFixtures
	}

	round := 1 + g.rng.IntN(38)
	out := make([]fixture.Match, 0, pairs)
	for i := 0; i < pairs; i++ {
		dayOffset := 1 + i/2 + g.rng.IntN(3)
		hour := syntheticKickoffHours[g.rng.IntN(len(syntheticKickoffHours))]
		kickoff := today.AddDate(0, 0, dayOffset).Add(time.Duration(hour) * time.Hour)
		out = append(out, g.syntheticMatch(l, i, names[2*i], names[2*i+1], kickoff, today, round))
	}

	return out
}

func (g *FallbackGenerator) syntheticMatch(l league.League, i int, home, away string, kickoff, today time.Time, round int) fixture.Match {
	days := fixture.DaysBetween(today, kickoff)
	return fixture.Match{
		ID:        int64(SyntheticFixtureIDBase + i),
		Date:      kickoff.Format(time.RFC3339),
		KickoffAt: kickoff,
		HomeTeam:  home,
		AwayTeam:  away,
		Venue:     placeholderTBA,
		Round:     fmt.Sprintf("Regular Season - %d", round),
		League:    l.Name,
		Country:   l.Country,
		Status:    fixture.StatusNotStarted,
		DaysUntil: &days,
	}
}

// Stats returns plausible season numbers and a random five-result form.
func (g *FallbackGenerator) Stats() (teamstats.Stats, teamstats.Form) {
	g.mu.Lock()
	defer g.mu.Unlock()

	wins := 4 + g.rng.IntN(9)
	draws := 2 + g.rng.IntN(5)
	stats := teamstats.Stats{
		GoalsFor:      8 + g.rng.IntN(15),
		GoalsAgainst:  5 + g.rng.IntN(16),
		MatchesPlayed: syntheticMatchesPlayed,
		Wins:          wins,
		Draws:         draws,
		Losses:        syntheticMatchesPlayed - wins - draws,
		Possession:    40 + g.rng.IntN(21),
	}

	return stats, g.randomForm()
}

func (g *FallbackGenerator) randomForm() teamstats.Form {
	outcomes := []teamstats.Outcome{teamstats.OutcomeWin, teamstats.OutcomeDraw, teamstats.OutcomeLoss}
	form := make(teamstats.Form, 0, syntheticFormLength)
	for i := 0; i < syntheticFormLength; i++ {
		form = append(form, outcomes[g.rng.IntN(len(outcomes))])
	}
	return form
}

func distinctNames(teams []string) []string {
	seen := make(map[string]struct{}, len(teams))
	out := make([]string, 0, len(teams))
	for _, name := range teams {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}
