package memory

import "github.com/riskibarqy/matchday-api/internal/domain/league"

const (
	LeagueKeyPremier    = "premier"
	LeagueKeySuperliga  = "superliga"
	LeagueKeyChampions  = "champions"
	LeagueKeyConference = "conference"

	defaultSeason = 2025
)

func SeedLeagues() []league.League {
	return []league.League{
		{
			Key:              LeagueKeyPremier,
			ID:               39,
			Country:          "England",
			Name:             "Premier League",
			Season:           defaultSeason,
			FallbackEligible: true,
			Roster:           premierRoster(),
		},
		{
			Key:              LeagueKeySuperliga,
			ID:               119,
			Country:          "Denmark",
			Name:             "Superliga",
			Season:           defaultSeason,
			FallbackEligible: true,
			Policy: league.MembershipPolicy{
				RequireNameMatch: true,
				AllowTeams:       superligaAllowlist(),
				DenyTeams:        []string{"Malmö FF", "Rosenborg", "Molde", "Bodø/Glimt", "Djurgården"},
			},
			Roster: superligaRoster(),
		},
		{
			Key:     LeagueKeyChampions,
			ID:      2,
			Country: "World",
			Name:    "UEFA Champions League",
			Season:  defaultSeason,
		},
		{
			Key:     LeagueKeyConference,
			ID:      848,
			Country: "World",
			Name:    "UEFA Conference League",
			Season:  defaultSeason,
		},
	}
}

func premierRoster() []string {
	return []string{
		"Arsenal", "Aston Villa", "Bournemouth", "Brentford", "Brighton",
		"Burnley", "Chelsea", "Crystal Palace", "Everton", "Fulham",
		"Leeds", "Liverpool", "Manchester City", "Manchester United", "Newcastle",
		"Nottingham Forest", "Sunderland", "Tottenham", "West Ham", "Wolves",
	}
}

func superligaRoster() []string {
	return []string{
		"FC København", "FC Midtjylland", "Brøndby IF", "AGF Aarhus",
		"Silkeborg IF", "FC Nordsjælland", "Randers FC", "Viborg FF",
		"OB Odense", "AaB Aalborg", "Vejle BK", "SønderjyskE",
	}
}

// superligaAllowlist adds the transliterated spellings the upstream uses.
func superligaAllowlist() []string {
	return append(superligaRoster(),
		"FC Copenhagen", "Brondby", "Nordsjaelland", "Sonderjyske", "Aarhus", "Aalborg", "Odense", "Fredericia",
	)
}
