package league

import (
	"fmt"
	"strings"
)

// League is one competition the service can resolve fixtures for.
type League struct {
	Key              string
	ID               int64
	Country          string
	Name             string
	Season           int
	FallbackEligible bool
	Policy           MembershipPolicy
	Roster           []string
}

func (l League) Validate() error {
	if strings.TrimSpace(l.Key) == "" {
		return fmt.Errorf("league key is required")
	}
	if l.ID <= 0 {
		return fmt.Errorf("league %s: id must be > 0", l.Key)
	}
	if strings.TrimSpace(l.Country) == "" {
		return fmt.Errorf("league %s: country is required", l.Key)
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league %s: name is required", l.Key)
	}
	if l.Season <= 0 {
		return fmt.Errorf("league %s: season must be > 0", l.Key)
	}

	return nil
}

// NormalizeKey lowercases and trims a league key from user input.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
