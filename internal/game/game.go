package game

// Location identifies which side of a game a team played on.
type Location int

const (
	Away Location = iota
	Home
)

// String returns the location label used in the output table.
func (l Location) String() string {
	if l == Home {
		return "Home"
	}
	return "Away"
}

// TeamLine represents one team's score line in one game.
//
// PeriodLabels and PeriodScores are parallel sequences extracted from
// different parts of the markup (the game's shared header row vs. the team's
// own score row), so their lengths are not guaranteed to match.
type TeamLine struct {
	Date         string
	Team         string
	Location     Location
	Total        string
	PeriodLabels []string
	PeriodScores []string
}

// Scores pairs the line's period labels with its scores positionally.
// On a length mismatch the pairing stops at the shorter sequence, so the
// longer side's tail is dropped.
func (t TeamLine) Scores() map[string]string {
	n := len(t.PeriodLabels)
	if len(t.PeriodScores) < n {
		n = len(t.PeriodScores)
	}
	scores := make(map[string]string, n)
	for i := 0; i < n; i++ {
		scores[t.PeriodLabels[i]] = t.PeriodScores[i]
	}
	return scores
}
