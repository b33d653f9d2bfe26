package httpapi

import "github.com/riskibarqy/matchday-api/internal/usecase"

// The payload helpers render use-case results in the same JSON shapes the
// HTTP endpoints return, for callers outside the router such as the CLI.

func MatchesPayload(result usecase.MatchesResult) any {
	return matchesResponseFromResult(result)
}

func TeamsPayload(result usecase.TeamsResult) any {
	return teamsResponseFromResult(result)
}

func TeamDetailPayload(result usecase.TeamDetailResult) any {
	return teamDetailResponseFromResult(result)
}

func TeamStatsPayload(result usecase.TeamStatsResult) any {
	return teamStatsResponseFromResult(result)
}
