package fixture

import (
	"math"
	"strings"
	"time"
)

const (
	StatusNotStarted  = "NS"
	StatusToBeDefined = "TBD"
)

// Match is the flattened fixture served to clients.
type Match struct {
	ID         int64
	Date       string
	KickoffAt  time.Time
	HomeTeam   string
	AwayTeam   string
	HomeTeamID int64
	AwayTeamID int64
	HomeGoals  *int
	AwayGoals  *int
	Venue      string
	Round      string
	League     string
	Country    string
	Status     string
	DaysUntil  *int
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusNotStarted
	}
	return status
}

// IsOpenStatus reports whether a fixture has not kicked off yet.
func IsOpenStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusNotStarted, StatusToBeDefined:
		return true
	default:
		return false
	}
}

// DaysBetween counts whole calendar days from today to day, both truncated
// to midnight in today's location.
func DaysBetween(today, day time.Time) int {
	loc := today.Location()
	from := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	d := day.In(loc)
	to := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return int(math.Round(to.Sub(from).Hours() / 24))
}
