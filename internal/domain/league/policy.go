package league

import "strings"

// MembershipPolicy holds the data-driven rules deciding whether an upstream
// fixture or team really belongs to a league.
type MembershipPolicy struct {
	RequireNameMatch bool
	AllowTeams       []string
	DenyTeams        []string
}

// NameMatches reports whether an upstream league name satisfies the policy.
func (p MembershipPolicy) NameMatches(configured, upstream string) bool {
	if !p.RequireNameMatch {
		return true
	}
	return containsFold(upstream, configured)
}

// Allows reports whether team passes the allowlist. An empty allowlist
// allows every team.
func (p MembershipPolicy) Allows(team string) bool {
	if len(p.AllowTeams) == 0 {
		return true
	}
	return matchesAny(team, p.AllowTeams)
}

// Denies reports whether team is on the denylist.
func (p MembershipPolicy) Denies(team string) bool {
	return matchesAny(team, p.DenyTeams)
}

// AdmitsPairing applies the team rules to both sides of a fixture: no side
// may be denied, and at least one side must be allowed.
func (p MembershipPolicy) AdmitsPairing(home, away string) bool {
	if p.Denies(home) || p.Denies(away) {
		return false
	}
	if len(p.AllowTeams) == 0 {
		return true
	}
	return matchesAny(home, p.AllowTeams) || matchesAny(away, p.AllowTeams)
}

// AdmitsTeam applies the team rules to a single club.
func (p MembershipPolicy) AdmitsTeam(team string) bool {
	return !p.Denies(team) && p.Allows(team)
}

// matchesAny compares names case-insensitively in both directions, so
// "AGF" matches "AGF Aarhus" and the other way round.
func matchesAny(team string, names []string) bool {
	team = strings.TrimSpace(team)
	if team == "" {
		return false
	}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if containsFold(team, name) || containsFold(name, team) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(substr)))
}
