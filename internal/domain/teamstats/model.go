package teamstats

import "strings"

// Stats is the season summary for one team.
type Stats struct {
	GoalsFor      int
	GoalsAgainst  int
	MatchesPlayed int
	Wins          int
	Draws         int
	Losses        int
	Possession    int
}

type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeDraw Outcome = "D"
	OutcomeLoss Outcome = "L"
)

// OutcomeFor derives the result from the team's point of view.
func OutcomeFor(goalsFor, goalsAgainst int) Outcome {
	switch {
	case goalsFor > goalsAgainst:
		return OutcomeWin
	case goalsFor < goalsAgainst:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

// LastMatch is one played fixture seen from the requested team.
type LastMatch struct {
	Result   Outcome
	Opponent string
	Score    string
	Date     string
	Home     bool
}

// Form is ordered oldest to newest.
type Form []Outcome

func (f Form) String() string {
	var b strings.Builder
	for _, o := range f {
		b.WriteString(string(o))
	}
	return b.String()
}

func (f Form) Strings() []string {
	out := make([]string, 0, len(f))
	for _, o := range f {
		out = append(out, string(o))
	}
	return out
}

// ParseForm reads an upstream season form string such as "WWDLW", oldest
// result first, keeping at most the last limit results. Characters other
// than W, D and L are skipped.
func ParseForm(raw string, limit int) Form {
	form := make(Form, 0, len(raw))
	for _, r := range strings.ToUpper(raw) {
		switch Outcome(string(r)) {
		case OutcomeWin, OutcomeDraw, OutcomeLoss:
			form = append(form, Outcome(string(r)))
		}
	}
	if limit > 0 && len(form) > limit {
		form = form[len(form)-limit:]
	}
	return form
}
