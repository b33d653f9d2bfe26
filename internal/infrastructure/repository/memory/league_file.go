package memory

import (
	"fmt"
	"os"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/matchday-api/internal/domain/league"
)

type leagueFileEntry struct {
	Key              string            `json:"key"`
	ID               int64             `json:"id"`
	Country          string            `json:"country"`
	Name             string            `json:"name"`
	Season           int               `json:"season"`
	FallbackEligible *bool             `json:"fallbackEligible"`
	Policy           *leagueFilePolicy `json:"policy"`
	Roster           []string          `json:"roster"`
}

type leagueFilePolicy struct {
	RequireNameMatch bool     `json:"requireNameMatch"`
	AllowTeams       []string `json:"allowTeams"`
	DenyTeams        []string `json:"denyTeams"`
}

// LoadLeagueFile reads a JSON array of leagues and merges it over base by
// key. Fields omitted in the file keep their base value; unknown keys add new
// leagues.
func LoadLeagueFile(path string, base []league.League) ([]league.League, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read league file %s: %w", path, err)
	}

	var entries []leagueFileEntry
	if err := sonic.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode league file %s: %w", path, err)
	}

	return MergeLeagues(base, entries)
}

func MergeLeagues(base []league.League, entries []leagueFileEntry) ([]league.League, error) {
	out := append([]league.League(nil), base...)
	index := make(map[string]int, len(out))
	for i, l := range out {
		index[league.NormalizeKey(l.Key)] = i
	}

	for _, entry := range entries {
		key := league.NormalizeKey(entry.Key)
		current := league.League{Key: key}
		pos, exists := index[key]
		if exists {
			current = out[pos]
		}

		applyLeagueEntry(&current, entry)
		if err := current.Validate(); err != nil {
			return nil, err
		}

		if exists {
			out[pos] = current
			continue
		}
		index[key] = len(out)
		out = append(out, current)
	}

	return out, nil
}

func applyLeagueEntry(l *league.League, entry leagueFileEntry) {
	if entry.ID > 0 {
		l.ID = entry.ID
	}
	if entry.Country != "" {
		l.Country = entry.Country
	}
	if entry.Name != "" {
		l.Name = entry.Name
	}
	if entry.Season > 0 {
		l.Season = entry.Season
	}
	if entry.FallbackEligible != nil {
		l.FallbackEligible = *entry.FallbackEligible
	}
	if entry.Policy != nil {
		l.Policy = league.MembershipPolicy{
			RequireNameMatch: entry.Policy.RequireNameMatch,
			AllowTeams:       entry.Policy.AllowTeams,
			DenyTeams:        entry.Policy.DenyTeams,
		}
	}
	if len(entry.Roster) > 0 {
		l.Roster = entry.Roster
	}
}

// ApplySeasons overrides league seasons from a key to season map.
func ApplySeasons(leagues []league.League, seasons map[string]int64) []league.League {
	if len(seasons) == 0 {
		return leagues
	}
	out := append([]league.League(nil), leagues...)
	for i := range out {
		if season, ok := seasons[league.NormalizeKey(out[i].Key)]; ok {
			out[i].Season = int(season)
		}
	}
	return out
}
